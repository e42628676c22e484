package grammar_test

import (
	"testing"

	"github.com/abhiramnarayana/grman/internal/grammar"
	"github.com/abhiramnarayana/grman/internal/man"
)

func TestBuiltinForestResolvesEveryCommand(t *testing.T) {
	t.Parallel()

	forest := grammar.Builtin()
	expectedNames := []string{"interface", "address", "route", "nexthop", "ping", "traceroute"}

	names := man.ListCommands(forest.Commands)
	if len(names) != len(expectedNames) {
		t.Fatalf("unexpected command names: got %v, want %v", names, expectedNames)
	}
	for index := range expectedNames {
		if names[index] != expectedNames[index] {
			t.Fatalf("unexpected command names: got %v, want %v", names, expectedNames)
		}
	}

	for _, commandName := range expectedNames {
		if _, resolveError := man.Resolve(forest.Commands, commandName); resolveError != nil {
			t.Errorf("builtin forest does not resolve %q: %v", commandName, resolveError)
		}
	}
}

func TestBuiltinOptionsAreRenderable(t *testing.T) {
	t.Parallel()

	forest := grammar.Builtin()
	if len(forest.Options) == 0 {
		t.Fatal("builtin forest has no global options")
	}
	for index, optionNode := range forest.Options {
		if optionNode.Help() == "" {
			t.Errorf("option %d carries no help text", index)
		}
		if _, childError := optionNode.Child(0); childError != nil {
			t.Errorf("option %d has no inspectable first child: %v", index, childError)
		}
	}
}
