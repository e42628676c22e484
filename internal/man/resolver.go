package man

import (
	"errors"
	"fmt"
	"strings"

	"github.com/abhiramnarayana/grman/internal/grammar"
	"github.com/abhiramnarayana/grman/internal/types"
)

// ErrCommandNotFound reports that no top-level node matched the requested name.
var ErrCommandNotFound = errors.New("unknown command")

// Resolution describes the subtree to document for one requested command.
// For the sequence shape, Target is the alternation holding the variants and
// Blurb is the leading literal's help. For the standalone command shape,
// Target is the command node itself.
type Resolution struct {
	Name       string
	Blurb      string
	Standalone bool
	Target     grammar.Node
}

// Resolve locates the subtree for a requested command name among the
// top-level forest nodes. Two shapes are recognized, tried per node in
// order; the first match wins. Comparison is exact and case-sensitive.
func Resolve(forest []grammar.Node, requestedName string) (Resolution, error) {
	for _, node := range forest {
		switch grammar.Kind(node) {
		case types.KindSeq:
			if resolution, matched := matchSequenceShape(node, requestedName); matched {
				return resolution, nil
			}
		case types.KindCmd:
			if resolution, matched := matchCommandShape(node, requestedName); matched {
				return resolution, nil
			}
		}
	}
	return Resolution{}, fmt.Errorf("%w '%s'", ErrCommandNotFound, requestedName)
}

// matchSequenceShape matches a sequence whose first child is a literal and
// whose second child is an alternation carrying the command name as its id.
func matchSequenceShape(node grammar.Node, requestedName string) (Resolution, bool) {
	if node.ChildCount() < 2 {
		return Resolution{}, false
	}
	literalNode, literalError := node.Child(0)
	if literalError != nil {
		return Resolution{}, false
	}
	alternationNode, alternationError := node.Child(1)
	if alternationError != nil {
		return Resolution{}, false
	}
	name := alternationNode.ID()
	if name == types.NoID || name != requestedName {
		return Resolution{}, false
	}
	return Resolution{
		Name:   name,
		Blurb:  literalNode.Help(),
		Target: alternationNode,
	}, true
}

// matchCommandShape matches a command node whose id, up to the first space,
// equals the requested name. The remainder of the id is the usage tail.
func matchCommandShape(node grammar.Node, requestedName string) (Resolution, bool) {
	fullID := node.ID()
	if fullID == types.NoID {
		return Resolution{}, false
	}
	name, _, _ := strings.Cut(fullID, " ")
	if name != requestedName {
		return Resolution{}, false
	}
	return Resolution{
		Name:       name,
		Blurb:      node.Help(),
		Standalone: true,
		Target:     node,
	}, true
}

// ListCommands returns the documentable command names in forest order,
// first occurrence kept.
func ListCommands(forest []grammar.Node) []string {
	seen := make(map[string]struct{})
	var names []string
	appendName := func(name string) {
		if name == types.NoID {
			return
		}
		if _, duplicate := seen[name]; duplicate {
			return
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	for _, node := range forest {
		switch grammar.Kind(node) {
		case types.KindSeq:
			if node.ChildCount() < 2 {
				continue
			}
			alternationNode, alternationError := node.Child(1)
			if alternationError != nil {
				continue
			}
			appendName(alternationNode.ID())
		case types.KindCmd:
			name, _, _ := strings.Cut(node.ID(), " ")
			appendName(name)
		}
	}
	return names
}
