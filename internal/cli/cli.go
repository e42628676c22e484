// Package cli provides the command line interface.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/abhiramnarayana/grman/internal/config"
	"github.com/abhiramnarayana/grman/internal/grammar"
	"github.com/abhiramnarayana/grman/internal/man"
	"github.com/abhiramnarayana/grman/internal/services/clipboard"
	"github.com/abhiramnarayana/grman/internal/utils"
)

const (
	rootUse              = "grman"
	rootShortDescription = "grcli manual page generator"
	rootLongDescription  = `grman renders manual pages from the grcli command grammar.
Use "page" for a single command's page, "main" for the shell's global
option page, "all" to write every page to a directory, and "list" to
enumerate documentable commands. Pages are emitted as man-flavored
markdown suitable for go-md2man style tooling.`

	pageUse              = "page <command>"
	pageAlias            = "p"
	pageShortDescription = "render the manual page of one command (" + pageAlias + ")"
	pageUsageExample     = `  # Render the route page to stdout
  grman page route

  # Write the interface page to a file and copy it to the clipboard
  grman page interface --output grcli-interface.1.md --copy`

	mainUse              = "main"
	mainShortDescription = "render the shell's global option page"

	allUse              = "all"
	allShortDescription = "render every page into a directory"
	allUsageExample     = `  # Write grcli.1.md and one grcli-<command>.1.md per command
  grman all --output-dir ./man`

	listUse              = "list"
	listShortDescription = "list documentable command names"

	configFlagName    = "config"
	grammarFlagName   = "grammar"
	verboseFlagName   = "verbose"
	versionFlagName   = "version"
	copyFlagName      = "copy"
	outputFlagName    = "output"
	outputDirFlagName = "output-dir"

	configFlagDescription    = "path to a grman configuration file"
	grammarFlagDescription   = "path to a YAML grammar forest to document instead of the built-in one"
	verboseFlagDescription   = "log traversal details"
	versionFlagDescription   = "display application version"
	copyFlagDescription      = "copy the rendered page to the system clipboard"
	outputFlagDescription    = "write the rendered page to a file instead of stdout"
	outputDirFlagDescription = "directory to write the rendered pages into"

	versionTemplate = "grman version: %s\n"

	commandPageFileNameFormat = "%s-%s.%d.md"
	mainPageFileNameFormat    = "%s.%d.md"

	pageFileMode      = 0o644
	outputDirFileMode = 0o755
)

type globalOptions struct {
	configPath  string
	grammarPath string
	verbose     bool
}

type deliveryOptions struct {
	outputPath    string
	copyRequested bool
}

// Execute runs the grman application.
func Execute() error {
	return createRootCommand().Execute()
}

// createRootCommand builds the root Cobra command.
func createRootCommand() *cobra.Command {
	var showVersion bool
	options := &globalOptions{}

	rootCommand := &cobra.Command{
		Use:           rootUse,
		Short:         rootShortDescription,
		Long:          rootLongDescription,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			return command.Help()
		},
		PersistentPreRun: func(command *cobra.Command, arguments []string) {
			if showVersion {
				fmt.Printf(versionTemplate, utils.GetApplicationVersion())
				os.Exit(0)
			}
		},
	}
	rootCommand.PersistentFlags().BoolVar(&showVersion, versionFlagName, false, versionFlagDescription)
	rootCommand.PersistentFlags().StringVar(&options.configPath, configFlagName, "", configFlagDescription)
	rootCommand.PersistentFlags().StringVar(&options.grammarPath, grammarFlagName, "", grammarFlagDescription)
	rootCommand.PersistentFlags().BoolVar(&options.verbose, verboseFlagName, false, verboseFlagDescription)
	rootCommand.AddCommand(
		createPageCommand(options),
		createMainCommand(options),
		createAllCommand(options),
		createListCommand(options),
	)
	rootCommand.InitDefaultHelpCmd()
	rootCommand.InitDefaultCompletionCmd()
	return rootCommand
}

// createPageCommand returns the page subcommand.
func createPageCommand(options *globalOptions) *cobra.Command {
	var delivery deliveryOptions

	pageCommand := &cobra.Command{
		Use:     pageUse,
		Aliases: []string{pageAlias},
		Short:   pageShortDescription,
		Example: pageUsageExample,
		Args:    cobra.ExactArgs(1),
		RunE: func(command *cobra.Command, arguments []string) error {
			environment, setupError := setupEnvironment(options)
			if setupError != nil {
				return setupError
			}
			page, renderError := environment.renderer.CommandPage(environment.forest.Commands, arguments[0])
			if renderError != nil {
				return renderError
			}
			return deliverPage(command, page, delivery)
		},
	}
	addDeliveryFlags(pageCommand, &delivery)
	return pageCommand
}

// createMainCommand returns the main subcommand rendering the global option page.
func createMainCommand(options *globalOptions) *cobra.Command {
	var delivery deliveryOptions

	mainCommand := &cobra.Command{
		Use:   mainUse,
		Short: mainShortDescription,
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			environment, setupError := setupEnvironment(options)
			if setupError != nil {
				return setupError
			}
			return deliverPage(command, environment.renderer.MainPage(environment.forest.Options), delivery)
		},
	}
	addDeliveryFlags(mainCommand, &delivery)
	return mainCommand
}

// createAllCommand returns the all subcommand, rendering every page concurrently.
func createAllCommand(options *globalOptions) *cobra.Command {
	var outputDirectory string

	allCommand := &cobra.Command{
		Use:     allUse,
		Short:   allShortDescription,
		Example: allUsageExample,
		Args:    cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			environment, setupError := setupEnvironment(options)
			if setupError != nil {
				return setupError
			}
			return renderAllPages(command, environment, outputDirectory)
		},
	}
	allCommand.Flags().StringVar(&outputDirectory, outputDirFlagName, "", outputDirFlagDescription)
	_ = allCommand.MarkFlagRequired(outputDirFlagName)
	return allCommand
}

// createListCommand returns the list subcommand.
func createListCommand(options *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   listUse,
		Short: listShortDescription,
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			environment, setupError := setupEnvironment(options)
			if setupError != nil {
				return setupError
			}
			for _, commandName := range man.ListCommands(environment.forest.Commands) {
				fmt.Fprintln(command.OutOrStdout(), commandName)
			}
			return nil
		},
	}
}

func addDeliveryFlags(command *cobra.Command, delivery *deliveryOptions) {
	command.Flags().StringVar(&delivery.outputPath, outputFlagName, "", outputFlagDescription)
	command.Flags().BoolVar(&delivery.copyRequested, copyFlagName, false, copyFlagDescription)
}

// renderEnvironment bundles everything a page-producing command needs.
type renderEnvironment struct {
	settings config.Settings
	forest   grammar.Forest
	renderer *man.Renderer
}

// setupEnvironment loads settings, the grammar forest, and the traversal logger.
func setupEnvironment(options *globalOptions) (renderEnvironment, error) {
	settings, settingsError := config.Load(options.configPath)
	if settingsError != nil {
		return renderEnvironment{}, settingsError
	}
	logger, loggerError := utils.NewTraversalLogger(options.verbose)
	if loggerError != nil {
		return renderEnvironment{}, fmt.Errorf(utils.LoggerInitializationFailedMessageFormat, loggerError)
	}
	forest := grammar.Builtin()
	if options.grammarPath != "" {
		loadedForest, loadError := grammar.LoadForest(options.grammarPath)
		if loadError != nil {
			return renderEnvironment{}, loadError
		}
		forest = loadedForest
	}
	return renderEnvironment{
		settings: settings,
		forest:   forest,
		renderer: man.NewRenderer(settings, logger),
	}, nil
}

// deliverPage writes a rendered page to its destination and optionally to
// the system clipboard.
func deliverPage(command *cobra.Command, page string, delivery deliveryOptions) error {
	if delivery.outputPath != "" {
		if writeError := os.WriteFile(delivery.outputPath, []byte(page), pageFileMode); writeError != nil {
			return fmt.Errorf("write page to %s: %w", delivery.outputPath, writeError)
		}
	} else {
		fmt.Fprint(command.OutOrStdout(), page)
	}
	if delivery.copyRequested {
		if copyError := clipboard.NewService().Copy(page); copyError != nil {
			return fmt.Errorf("copy page to clipboard: %w", copyError)
		}
	}
	return nil
}

// renderAllPages renders the global page and one page per documentable
// command into the output directory, one goroutine per page. Each render
// owns its own argument collection, so pages are independent.
func renderAllPages(command *cobra.Command, environment renderEnvironment, outputDirectory string) error {
	if mkdirError := os.MkdirAll(outputDirectory, outputDirFileMode); mkdirError != nil {
		return fmt.Errorf("create output directory %s: %w", outputDirectory, mkdirError)
	}

	group, _ := errgroup.WithContext(command.Context())

	mainPagePath := filepath.Join(
		outputDirectory,
		fmt.Sprintf(mainPageFileNameFormat, environment.settings.Product, environment.settings.Section),
	)
	group.Go(func() error {
		return writePageFile(mainPagePath, environment.renderer.MainPage(environment.forest.Options))
	})

	for _, commandName := range man.ListCommands(environment.forest.Commands) {
		commandName := commandName
		pagePath := filepath.Join(
			outputDirectory,
			fmt.Sprintf(commandPageFileNameFormat, environment.settings.Product, commandName, environment.settings.Section),
		)
		group.Go(func() error {
			page, renderError := environment.renderer.CommandPage(environment.forest.Commands, commandName)
			if renderError != nil {
				return renderError
			}
			return writePageFile(pagePath, page)
		})
	}

	return group.Wait()
}

func writePageFile(filePath, page string) error {
	if writeError := os.WriteFile(filePath, []byte(page), pageFileMode); writeError != nil {
		return fmt.Errorf("write page to %s: %w", filePath, writeError)
	}
	return nil
}
