package man_test

import (
	"errors"
	"testing"

	"github.com/abhiramnarayana/grman/internal/grammar"
	"github.com/abhiramnarayana/grman/internal/man"
)

func sequenceShape(literalWord, commandName, blurb string, variants ...grammar.Node) grammar.Node {
	return grammar.Seq("",
		grammar.WithHelp(grammar.Str("", literalWord), blurb),
		grammar.Or(commandName, variants...),
	)
}

func TestResolveSequenceShapeExactMatch(t *testing.T) {
	t.Parallel()

	forest := []grammar.Node{
		sequenceShape("router", "router", "Not the one.", grammar.Str("", "show")),
		sequenceShape("route", "route", "Manage IP routes.", grammar.Str("", "show")),
	}

	resolution, resolveError := man.Resolve(forest, "route")
	if resolveError != nil {
		t.Fatalf("unexpected error: %v", resolveError)
	}
	if resolution.Name != "route" {
		t.Errorf("unexpected name: %q", resolution.Name)
	}
	if resolution.Blurb != "Manage IP routes." {
		t.Errorf("unexpected blurb: %q", resolution.Blurb)
	}
	if resolution.Standalone {
		t.Error("sequence shape must not resolve as standalone")
	}
	if resolution.Target == nil || resolution.Target.ID() != "route" {
		t.Error("resolution target is not the matching alternation")
	}
}

func TestResolveCommandShapeUsesPrefixBeforeFirstSpace(t *testing.T) {
	t.Parallel()

	forest := []grammar.Node{
		grammar.Cmd("ping IFACE", "Send echo requests."),
	}

	testCases := []struct {
		name          string
		requestedName string
		expectMatch   bool
	}{
		{name: "prefix_matches", requestedName: "ping", expectMatch: true},
		{name: "full_id_does_not_match", requestedName: "ping IFACE", expectMatch: false},
		{name: "case_sensitive", requestedName: "Ping", expectMatch: false},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			resolution, resolveError := man.Resolve(forest, testCase.requestedName)
			if !testCase.expectMatch {
				if !errors.Is(resolveError, man.ErrCommandNotFound) {
					t.Fatalf("expected ErrCommandNotFound, got %v", resolveError)
				}
				return
			}
			if resolveError != nil {
				t.Fatalf("unexpected error: %v", resolveError)
			}
			if !resolution.Standalone {
				t.Error("command shape must resolve as standalone")
			}
			if resolution.Name != "ping" {
				t.Errorf("unexpected name: %q", resolution.Name)
			}
			if resolution.Blurb != "Send echo requests." {
				t.Errorf("unexpected blurb: %q", resolution.Blurb)
			}
		})
	}
}

func TestResolveSkipsUnrecognizedTopLevelNodes(t *testing.T) {
	t.Parallel()

	forest := []grammar.Node{
		grammar.Or("route", grammar.Str("", "decoy")),
		grammar.Uint("route"),
		sequenceShape("route", "route", "The real one.", grammar.Str("", "show")),
	}

	resolution, resolveError := man.Resolve(forest, "route")
	if resolveError != nil {
		t.Fatalf("unexpected error: %v", resolveError)
	}
	if resolution.Blurb != "The real one." {
		t.Errorf("resolved the wrong node: blurb %q", resolution.Blurb)
	}
}

func TestResolveUnknownCommand(t *testing.T) {
	t.Parallel()

	forest := []grammar.Node{
		sequenceShape("route", "route", "", grammar.Str("", "show")),
	}
	_, resolveError := man.Resolve(forest, "bridge")
	if !errors.Is(resolveError, man.ErrCommandNotFound) {
		t.Fatalf("expected ErrCommandNotFound, got %v", resolveError)
	}
}

func TestListCommands(t *testing.T) {
	t.Parallel()

	forest := []grammar.Node{
		sequenceShape("interface", "interface", "", grammar.Str("", "show")),
		grammar.Cmd("ping DEST [vrf VRF]", ""),
		grammar.Or("noise"),
		sequenceShape("route", "route", "", grammar.Str("", "show")),
	}

	names := man.ListCommands(forest)
	expected := []string{"interface", "ping", "route"}
	if len(names) != len(expected) {
		t.Fatalf("unexpected names: got %v, want %v", names, expected)
	}
	for index := range expected {
		if names[index] != expected[index] {
			t.Fatalf("unexpected names: got %v, want %v", names, expected)
		}
	}
}
