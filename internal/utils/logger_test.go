package utils_test

import (
	"testing"

	"github.com/abhiramnarayana/grman/internal/utils"
)

func TestNewTraversalLogger(t *testing.T) {
	t.Parallel()

	quietLogger, quietError := utils.NewTraversalLogger(false)
	if quietError != nil || quietLogger == nil {
		t.Fatalf("unexpected quiet logger result: %v", quietError)
	}
	if quietLogger.Core().Enabled(0) {
		t.Error("quiet logger must not emit at info level")
	}

	verboseLogger, verboseError := utils.NewTraversalLogger(true)
	if verboseError != nil || verboseLogger == nil {
		t.Fatalf("unexpected verbose logger result: %v", verboseError)
	}
	if !verboseLogger.Core().Enabled(-1) {
		t.Error("verbose logger must emit at debug level")
	}
}
