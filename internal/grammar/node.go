// Package grammar provides a read-only view over the command-grammar forest
// that drives documentation rendering, together with the built-in grcli
// grammar and a YAML loader for externally produced forests.
package grammar

import (
	"fmt"

	"github.com/abhiramnarayana/grman/internal/types"
)

// Node is a read-only view over one node of the command grammar tree. The
// renderer never mutates nodes and never assumes child lookups succeed: a
// failing Child lookup is skipped, not treated as fatal.
type Node interface {
	// TypeName returns the grammar type-name string (for example "str" or "or").
	TypeName() string
	// ID returns the node identifier, or types.NoID when none was assigned.
	ID() string
	// Help returns the human-readable help attached to the node, if any.
	Help() string
	// ChildCount returns the number of direct children.
	ChildCount() int
	// Child returns the child at the given index. An error marks a dangling
	// reference; callers skip the child and continue.
	Child(index int) (Node, error)
	// Description returns the display form of a literal node (the token or
	// pattern), or the empty string when the node has none.
	Description() string
}

// Kind is a convenience wrapper classifying a node through its type name.
func Kind(node Node) types.NodeKind {
	return types.KindFromTypeName(node.TypeName())
}

type treeNode struct {
	typeName    string
	identifier  string
	helpText    string
	description string
	children    []Node
}

func (node *treeNode) TypeName() string { return node.typeName }

func (node *treeNode) ID() string { return node.identifier }

func (node *treeNode) Help() string { return node.helpText }

func (node *treeNode) ChildCount() int { return len(node.children) }

func (node *treeNode) Child(index int) (Node, error) {
	if index < 0 || index >= len(node.children) || node.children[index] == nil {
		return nil, fmt.Errorf("grammar node %q has no child %d", node.identifier, index)
	}
	return node.children[index], nil
}

func (node *treeNode) Description() string { return node.description }

var _ Node = (*treeNode)(nil)

// NewNode constructs a grammar node from raw parts. It is the general form
// behind the typed builders and the YAML loader.
func NewNode(typeName, identifier, helpText, description string, children ...Node) Node {
	return &treeNode{
		typeName:    typeName,
		identifier:  identifier,
		helpText:    helpText,
		description: description,
		children:    children,
	}
}

// Str builds a literal token node whose display description is the token itself.
func Str(identifier, token string) Node {
	return NewNode(types.KindStr.String(), identifier, "", token)
}

// Uint builds an unsigned integer argument node.
func Uint(identifier string) Node {
	return NewNode(types.KindUint.String(), identifier, "", "")
}

// Int builds a signed integer argument node.
func Int(identifier string) Node {
	return NewNode(types.KindInt.String(), identifier, "", "")
}

// Dyn builds a dynamically completed argument node.
func Dyn(identifier string) Node {
	return NewNode(types.KindDyn.String(), identifier, "", "")
}

// Re builds a regular-expression argument node whose display description is the pattern.
func Re(identifier, pattern string) Node {
	return NewNode(types.KindRe.String(), identifier, "", pattern)
}

// Or builds an alternation node.
func Or(identifier string, children ...Node) Node {
	return NewNode(types.KindOr.String(), identifier, "", "", children...)
}

// Seq builds an ordered sequence node.
func Seq(identifier string, children ...Node) Node {
	return NewNode(types.KindSeq.String(), identifier, "", "", children...)
}

// Cmd builds a command expression node. The identifier carries the full
// command path; only the prefix before the first space names the command.
func Cmd(identifier, helpText string, children ...Node) Node {
	return NewNode(types.KindCmd.String(), identifier, helpText, "", children...)
}

// Option builds an optional group around the provided children.
func Option(children ...Node) Node {
	return NewNode(types.KindOption.String(), types.NoID, "", "", children...)
}

// Many builds a repeated group around the provided children.
func Many(children ...Node) Node {
	return NewNode(types.KindMany.String(), types.NoID, "", "", children...)
}

// Subset builds an unordered subset node; each member renders individually bracketed.
func Subset(children ...Node) Node {
	return NewNode(types.KindSubset.String(), types.NoID, "", "", children...)
}

// WithHelp returns the node with the provided help attached. Builder-made
// nodes are updated in place; foreign Node implementations are wrapped.
func WithHelp(node Node, helpText string) Node {
	if built, ok := node.(*treeNode); ok {
		built.helpText = helpText
		return built
	}
	return &helpOverride{Node: node, helpText: helpText}
}

type helpOverride struct {
	Node
	helpText string
}

func (override *helpOverride) Help() string { return override.helpText }
