// Package man renders manual pages from a command-grammar forest. The
// output reproduces the markdown conventions expected by the downstream
// man-page tooling byte for byte.
package man

import (
	"strings"

	"github.com/abhiramnarayana/grman/internal/grammar"
	"github.com/abhiramnarayana/grman/internal/types"
)

const (
	numberPlaceholder   = "NUM"
	argumentPlaceholder = "ARG"
)

// Synopsis returns the usage-line fragment for a grammar subtree. Every
// fragment carries its own leading space; concatenating sibling fragments
// yields the full usage line.
func Synopsis(node grammar.Node) string {
	var builder strings.Builder
	writeSynopsis(&builder, node, 0)
	return builder.String()
}

func writeSynopsis(builder *strings.Builder, node grammar.Node, depth int) {
	identifier := node.ID()
	childCount := node.ChildCount()

	switch grammar.Kind(node) {
	case types.KindStr:
		if description := node.Description(); description != "" {
			builder.WriteString(" ")
			builder.WriteString(description)
		}
	case types.KindUint, types.KindInt:
		writePlaceholder(builder, identifier, numberPlaceholder)
	case types.KindDyn, types.KindRe:
		writePlaceholder(builder, identifier, argumentPlaceholder)
	case types.KindOr:
		if childCount == 0 {
			return
		}
		builder.WriteString(" (")
		for index := 0; index < childCount; index++ {
			child, childError := node.Child(index)
			if childError != nil {
				continue
			}
			if index > 0 {
				builder.WriteString(" |")
			}
			writeSynopsis(builder, child, depth+1)
		}
		builder.WriteString(" )")
	case types.KindSeq, types.KindCmd:
		for index := 0; index < childCount; index++ {
			child, childError := node.Child(index)
			if childError != nil {
				continue
			}
			writeSynopsis(builder, child, depth+1)
		}
	case types.KindOption, types.KindMany:
		if childCount == 0 {
			return
		}
		builder.WriteString(" [")
		for index := 0; index < childCount; index++ {
			child, childError := node.Child(index)
			if childError != nil {
				continue
			}
			writeSynopsis(builder, child, depth+1)
		}
		builder.WriteString(" ]")
	case types.KindSubset:
		// Each subset member is optional on its own, so every member gets
		// its own brackets.
		for index := 0; index < childCount; index++ {
			child, childError := node.Child(index)
			if childError != nil {
				continue
			}
			builder.WriteString(" [")
			writeSynopsis(builder, child, depth+1)
			builder.WriteString(" ]")
		}
	default:
		// Unknown node kinds contribute no output.
	}
}

func writePlaceholder(builder *strings.Builder, identifier, fallback string) {
	builder.WriteString(" _")
	if identifier != types.NoID {
		builder.WriteString(identifier)
	} else {
		builder.WriteString(fallback)
	}
	builder.WriteString("_")
}

type optionSyntaxMode int

const (
	optionSynopsisMode optionSyntaxMode = iota
	optionListMode
)

// writeOptionSyntax renders one top-level option node. In synopsis mode it
// produces a single bracketed flag line; in list mode a "####" heading with
// every flag spelling comma-joined, an upper-cased value placeholder, and
// the option's help paragraph.
func writeOptionSyntax(builder *strings.Builder, optionNode grammar.Node, mode optionSyntaxMode) {
	child, childError := optionNode.Child(0)
	if childError != nil {
		return
	}

	if mode == optionSynopsisMode {
		builder.WriteString("[")
	} else {
		builder.WriteString("#### ")
	}

	argumentName := types.NoID
	switch grammar.Kind(child) {
	case types.KindOr:
		writeFlagAlternatives(builder, child, mode)
	case types.KindSeq:
		if child.ChildCount() < 2 {
			return
		}
		if flagsNode, flagsError := child.Child(0); flagsError == nil && grammar.Kind(flagsNode) == types.KindOr {
			writeFlagAlternatives(builder, flagsNode, mode)
		}
		if valueNode, valueError := child.Child(1); valueError == nil {
			if identifier := valueNode.ID(); identifier != types.NoID {
				argumentName = identifier
			}
		}
	}

	if argumentName != types.NoID {
		builder.WriteString(" _")
		builder.WriteString(strings.ToUpper(argumentName))
		builder.WriteString("_")
	}

	if mode == optionSynopsisMode {
		builder.WriteString("]\n")
		return
	}
	builder.WriteString("\n\n")
	if helpText := optionNode.Help(); helpText != "" {
		builder.WriteString(helpText)
		builder.WriteString("\n\n")
	}
}

// writeFlagAlternatives prints the flag spellings of an alternation. Synopsis
// mode shows only the first spelling; list mode comma-joins all of them.
func writeFlagAlternatives(builder *strings.Builder, alternation grammar.Node, mode optionSyntaxMode) {
	first := true
	for index := 0; index < alternation.ChildCount(); index++ {
		flagNode, flagError := alternation.Child(index)
		if flagError != nil {
			continue
		}
		description := flagNode.Description()
		if description == "" {
			continue
		}
		if mode == optionSynopsisMode && !first {
			continue
		}
		if !first {
			builder.WriteString(", ")
		}
		builder.WriteString("**")
		builder.WriteString(description)
		builder.WriteString("**")
		first = false
	}
}
