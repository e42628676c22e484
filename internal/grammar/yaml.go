package grammar

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Forest is the pair of top-level node lists documentation is rendered from:
// the command forest for per-command pages and the option list for the
// shell's global page.
type Forest struct {
	Commands []Node
	Options  []Node
}

type nodeSpec struct {
	Type        string     `yaml:"type"`
	ID          string     `yaml:"id"`
	Help        string     `yaml:"help"`
	Description string     `yaml:"description"`
	Children    []nodeSpec `yaml:"children"`
}

type forestSpec struct {
	Commands []nodeSpec `yaml:"commands"`
	Options  []nodeSpec `yaml:"options"`
}

// LoadForest reads a grammar forest from a YAML file. Type names are kept
// verbatim; unrecognized ones simply classify as unknown during rendering.
func LoadForest(filePath string) (Forest, error) {
	fileContents, readError := os.ReadFile(filePath)
	if readError != nil {
		return Forest{}, fmt.Errorf("read grammar file %s: %w", filePath, readError)
	}
	var parsed forestSpec
	if unmarshalError := yaml.Unmarshal(fileContents, &parsed); unmarshalError != nil {
		return Forest{}, fmt.Errorf("parse grammar file %s: %w", filePath, unmarshalError)
	}
	return Forest{
		Commands: buildNodes(parsed.Commands),
		Options:  buildNodes(parsed.Options),
	}, nil
}

func buildNodes(specs []nodeSpec) []Node {
	if len(specs) == 0 {
		return nil
	}
	nodes := make([]Node, 0, len(specs))
	for _, spec := range specs {
		nodes = append(nodes, buildNode(spec))
	}
	return nodes
}

func buildNode(spec nodeSpec) Node {
	return NewNode(spec.Type, spec.ID, spec.Help, spec.Description, buildNodes(spec.Children)...)
}
