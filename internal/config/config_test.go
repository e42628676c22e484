package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/abhiramnarayana/grman/internal/config"
)

func TestDefaultSettings(t *testing.T) {
	t.Parallel()

	settings := config.Default()
	if settings.Product != "grcli" {
		t.Errorf("unexpected product: %q", settings.Product)
	}
	if settings.Project != "grout" {
		t.Errorf("unexpected project: %q", settings.Project)
	}
	if settings.Section != 1 {
		t.Errorf("unexpected section: %d", settings.Section)
	}
	if settings.SocketPath != "/run/grout.sock" {
		t.Errorf("unexpected socket path: %q", settings.SocketPath)
	}
	if len(settings.Environment) != 2 {
		t.Fatalf("unexpected environment entries: %d", len(settings.Environment))
	}
	if settings.Environment[0].Name != "DPRC" || settings.Environment[1].Name != "GROUT_SOCK_PATH" {
		t.Errorf("unexpected environment entry order: %+v", settings.Environment)
	}
}

func TestLoadWithoutFileReturnsDefaults(t *testing.T) {
	workingDirectory := t.TempDir()
	previousDirectory, getwdError := os.Getwd()
	if getwdError != nil {
		t.Fatalf("unexpected error: %v", getwdError)
	}
	if chdirError := os.Chdir(workingDirectory); chdirError != nil {
		t.Fatalf("unexpected error: %v", chdirError)
	}
	t.Cleanup(func() {
		if chdirError := os.Chdir(previousDirectory); chdirError != nil {
			t.Errorf("unexpected error: %v", chdirError)
		}
	})

	settings, loadError := config.Load("")
	if loadError != nil {
		t.Fatalf("unexpected error: %v", loadError)
	}
	if settings.Product != config.Default().Product {
		t.Errorf("expected defaults, got product %q", settings.Product)
	}
}

func TestLoadExplicitMissingFileFails(t *testing.T) {
	t.Parallel()

	if _, loadError := config.Load(filepath.Join(t.TempDir(), "absent.yaml")); loadError == nil {
		t.Error("expected an error for a missing explicit config file")
	}
}

func TestLoadOverridesFromFile(t *testing.T) {
	t.Parallel()

	filePath := filepath.Join(t.TempDir(), "grman.yaml")
	fileContents := "product: vcli\nversion: \"2.0\"\nsocket_path: /tmp/v.sock\n"
	if writeError := os.WriteFile(filePath, []byte(fileContents), 0o644); writeError != nil {
		t.Fatalf("failed to write config file: %v", writeError)
	}

	settings, loadError := config.Load(filePath)
	if loadError != nil {
		t.Fatalf("unexpected error: %v", loadError)
	}
	if settings.Product != "vcli" {
		t.Errorf("unexpected product: %q", settings.Product)
	}
	if settings.Version != "2.0" {
		t.Errorf("unexpected version: %q", settings.Version)
	}
	if settings.SocketPath != "/tmp/v.sock" {
		t.Errorf("unexpected socket path: %q", settings.SocketPath)
	}
	if settings.Project != "grout" {
		t.Errorf("unrelated defaults must survive the merge, got project %q", settings.Project)
	}
}

func TestExpandedEnvironmentSubstitutesSocketPath(t *testing.T) {
	t.Parallel()

	settings := config.Default()
	settings.SocketPath = "/tmp/test.sock"

	expanded := settings.ExpandedEnvironment()
	var socketEntryFound bool
	for _, variable := range expanded {
		if strings.Contains(variable.Description, config.SocketPathPlaceholder) {
			t.Errorf("placeholder left unexpanded in %q", variable.Name)
		}
		if variable.Name == "GROUT_SOCK_PATH" {
			socketEntryFound = true
			if !strings.Contains(variable.Description, "/tmp/test.sock") {
				t.Errorf("socket path not substituted: %q", variable.Description)
			}
		}
	}
	if !socketEntryFound {
		t.Error("expected a GROUT_SOCK_PATH entry")
	}
}
