package types_test

import (
	"testing"

	"github.com/abhiramnarayana/grman/internal/types"
)

func TestKindRoundTrip(t *testing.T) {
	t.Parallel()

	typeNames := []string{"str", "uint", "int", "dyn", "re", "or", "seq", "cmd", "option", "many", "subset"}
	for _, typeName := range typeNames {
		kind := types.KindFromTypeName(typeName)
		if kind == types.KindUnknown {
			t.Errorf("type name %q unexpectedly classified as unknown", typeName)
		}
		if kind.String() != typeName {
			t.Errorf("round trip failed for %q: got %q", typeName, kind.String())
		}
	}
}

func TestUnknownKindString(t *testing.T) {
	t.Parallel()

	if types.KindFromTypeName("mystery") != types.KindUnknown {
		t.Error("unrecognized type name must classify as unknown")
	}
	if types.KindUnknown.String() != "unknown" {
		t.Errorf("unexpected string for unknown kind: %q", types.KindUnknown.String())
	}
}
