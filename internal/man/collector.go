package man

import (
	"errors"
	"fmt"

	"github.com/abhiramnarayana/grman/internal/grammar"
	"github.com/abhiramnarayana/grman/internal/types"
)

// maxCollectedArguments caps the transient argument list for one page. A
// grammar with more distinct argument ids than this is treated the same way
// the original treated a failed allocation: the whole collection fails.
const maxCollectedArguments = 256

// ErrTooManyArguments reports that argument collection exceeded its capacity.
var ErrTooManyArguments = errors.New("argument collection exceeded capacity")

// ArgumentEntry pairs a collected identifier with the node that introduced it.
type ArgumentEntry struct {
	ID   string
	Node grammar.Node
}

var collectibleKinds = map[types.NodeKind]struct{}{
	types.KindUint: {},
	types.KindInt:  {},
	types.KindDyn:  {},
	types.KindRe:   {},
}

// CollectArguments gathers the unique user-facing argument nodes of a
// subtree in pre-order, depth-first, first-occurrence order. Qualifying does
// not stop descent: children of collected nodes are still visited.
func CollectArguments(node grammar.Node) ([]ArgumentEntry, error) {
	var entries []ArgumentEntry
	if collectError := collectInto(node, &entries); collectError != nil {
		return nil, collectError
	}
	return entries, nil
}

// CollectVariantArguments collects over every variant under an alternation
// into one shared, deduplicated list. Variants whose lookup fails are skipped.
func CollectVariantArguments(alternation grammar.Node) ([]ArgumentEntry, error) {
	var entries []ArgumentEntry
	for index := 0; index < alternation.ChildCount(); index++ {
		variant, variantError := alternation.Child(index)
		if variantError != nil {
			continue
		}
		if collectError := collectInto(variant, &entries); collectError != nil {
			return nil, collectError
		}
	}
	return entries, nil
}

func collectInto(node grammar.Node, entries *[]ArgumentEntry) error {
	identifier := node.ID()
	if identifier != types.NoID && isCollectibleKind(grammar.Kind(node)) && !containsArgument(*entries, identifier) {
		if len(*entries) >= maxCollectedArguments {
			return fmt.Errorf("%w: more than %d distinct argument ids", ErrTooManyArguments, maxCollectedArguments)
		}
		*entries = append(*entries, ArgumentEntry{ID: identifier, Node: node})
	}
	for index := 0; index < node.ChildCount(); index++ {
		child, childError := node.Child(index)
		if childError != nil {
			continue
		}
		if collectError := collectInto(child, entries); collectError != nil {
			return collectError
		}
	}
	return nil
}

func isCollectibleKind(kind types.NodeKind) bool {
	_, collectible := collectibleKinds[kind]
	return collectible
}

func containsArgument(entries []ArgumentEntry, identifier string) bool {
	for _, entry := range entries {
		if entry.ID == identifier {
			return true
		}
	}
	return false
}
