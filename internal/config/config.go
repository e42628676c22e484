// Package config loads the static strings the documentation emitter needs:
// product naming, version, control-socket path, environment variable
// descriptions, and the bug-report footer.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/abhiramnarayana/grman/internal/utils"
)

const (
	// DefaultFileName is the config file looked up in the working directory
	// when no explicit path is provided.
	DefaultFileName = "grman.yaml"

	// SocketPathPlaceholder is expanded to the configured socket path inside
	// environment variable descriptions.
	SocketPathPlaceholder = "{socket_path}"

	defaultProduct    = "grcli"
	defaultProject    = "grout"
	defaultSection    = 1
	defaultSocketPath = "/run/grout.sock"
	defaultShellHelp  = "grout command line interface"
	defaultSeeAlso    = "**grout**(8)"
	defaultBugReport  = "Report bugs to the grout project issue tracker at " +
		"<https://github.com/DPDK/grout/issues>."

	dprcDescription = "Set the DPRC - Datapath Resource Container: This value should match the one used " +
		"by DPDK during the scan of the fslmc bus. It is recommended to set this on any NXP " +
		"QorIQ targets. This serves as the entry point for grcli to enable autocompletion of " +
		"fslmc devices manageable by grout. While grcli can configure grout without this " +
		"environment setting, autocompletion of the devargs will not be available."
	socketPathDescription = "Path to the control plane API socket. If not set, defaults to _" +
		SocketPathPlaceholder + "_."
)

// EnvironmentVariable documents one environment variable on the global page.
type EnvironmentVariable struct {
	Name        string `mapstructure:"name"`
	Description string `mapstructure:"description"`
}

// Settings holds every static string the emitter consumes. All fields have
// defaults; a YAML config file may override any of them.
type Settings struct {
	Product     string                `mapstructure:"product"`
	Project     string                `mapstructure:"project"`
	Version     string                `mapstructure:"version"`
	Section     int                   `mapstructure:"section"`
	SocketPath  string                `mapstructure:"socket_path"`
	ShellHelp   string                `mapstructure:"shell_help"`
	SeeAlso     string                `mapstructure:"see_also"`
	BugReport   string                `mapstructure:"bug_report"`
	Environment []EnvironmentVariable `mapstructure:"environment"`
}

// Default returns the settings used when no config file overrides them.
func Default() Settings {
	return Settings{
		Product:    defaultProduct,
		Project:    defaultProject,
		Version:    utils.GetApplicationVersion(),
		Section:    defaultSection,
		SocketPath: defaultSocketPath,
		ShellHelp:  defaultShellHelp,
		SeeAlso:    defaultSeeAlso,
		BugReport:  defaultBugReport,
		Environment: []EnvironmentVariable{
			{Name: "DPRC", Description: dprcDescription},
			{Name: "GROUT_SOCK_PATH", Description: socketPathDescription},
		},
	}
}

// Load merges an optional YAML config file over the defaults. An explicit
// path must exist; the implicit working-directory file is optional.
func Load(explicitFilePath string) (Settings, error) {
	settings := Default()

	filePath := explicitFilePath
	explicit := filePath != ""
	if !explicit {
		filePath = DefaultFileName
	}
	if _, statError := os.Stat(filePath); statError != nil {
		if explicit {
			return Settings{}, fmt.Errorf("config file %s: %w", filePath, statError)
		}
		return settings, nil
	}

	loader := viper.New()
	loader.SetConfigFile(filePath)
	loader.SetConfigType("yaml")
	if readError := loader.ReadInConfig(); readError != nil {
		return Settings{}, fmt.Errorf("read config file %s: %w", filePath, readError)
	}
	if unmarshalError := loader.Unmarshal(&settings); unmarshalError != nil {
		return Settings{}, fmt.Errorf("parse config file %s: %w", filePath, unmarshalError)
	}
	return settings, nil
}

// ExpandedEnvironment returns the environment variable entries with the
// socket path placeholder substituted.
func (settings Settings) ExpandedEnvironment() []EnvironmentVariable {
	expanded := make([]EnvironmentVariable, 0, len(settings.Environment))
	for _, variable := range settings.Environment {
		variable.Description = strings.ReplaceAll(
			variable.Description, SocketPathPlaceholder, settings.SocketPath,
		)
		expanded = append(expanded, variable)
	}
	return expanded
}
