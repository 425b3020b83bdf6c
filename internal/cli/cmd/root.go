// Package cmd provides Cobra CLI commands for jsonpeek.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/jsonpeek/internal/cli"
	"github.com/bnema/jsonpeek/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info

	flagEphemeral bool
	flagLogLevel  string
	flagColor     string

	rootCmd = &cobra.Command{
		Use:   "jsonpeek",
		Short: "Format, highlight and keep a history of JSON snippets",
		Long: `jsonpeek - a JSON formatter for the terminal.

Paste or pipe JSON in, get it back indented and highlighted, copied to the
clipboard and remembered in a short history.

Features:
  - Syntax highlighting for terminals and HTML
  - Compress to minified JSON
  - History of the last 10 submissions, restorable with one key
  - Export the formatted output to a file
  - Scan HTML pages and highlight every JSON <pre> block

Run 'jsonpeek popup' for the interactive view, or use the one-shot
subcommands in scripts.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			if skipAppInit(cmd) {
				return nil
			}

			var err error
			app, err = cli.NewApp(cli.AppOptions{
				Ephemeral: flagEphemeral,
				LogLevel:  flagLogLevel,
			})
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagEphemeral, "ephemeral", false, "keep history and options in memory for this run")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "auto", "colorize output (auto, always, never)")
}

func skipAppInit(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "help", "completion", "gen-docs":
		return true
	}
	// config schema and init must work with a broken or missing config file.
	if parent := cmd.Parent(); parent != nil && parent.Name() == "config" {
		return cmd.Name() == "schema" || cmd.Name() == "init"
	}
	return false
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
