package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bnema/jsonpeek/internal/cli/styles"
	"github.com/bnema/jsonpeek/internal/domain/entity"
	"github.com/bnema/jsonpeek/internal/infrastructure/config"
)

var (
	configSchemaWrite bool
	configInitForce   bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Show where configuration and data live, print the config schema, or write a default config file.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file and database locations",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of config.toml",
	Long: `Print the JSON schema describing config.toml. With --write the schema is
saved next to the config file so editors can pick it up.`,
	Args: cobra.NoArgs,
	RunE: runConfigSchema,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with all defaults",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd, configSchemaCmd, configInitCmd)
	configSchemaCmd.Flags().BoolVarP(&configSchemaWrite, "write", "w", false, "write the schema next to the config file")
	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false, "overwrite an existing config file")
}

// configRenderer works before the app exists, for commands that skip init.
func configRenderer() *styles.ConfigRenderer {
	if a := GetApp(); a != nil {
		return styles.NewConfigRenderer(a.Theme)
	}
	return styles.NewConfigRenderer(styles.NewTheme(entity.ThemeLight))
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	configFile, err := config.GetConfigFile()
	if err != nil {
		return err
	}
	if mgr := a.ConfigManager(); mgr != nil && mgr.GetConfigFile() != "" {
		configFile = mgr.GetConfigFile()
	}

	dbFile := a.Config.Storage.Path
	if a.Ephemeral {
		dbFile += " (unused, --ephemeral)"
	}
	fmt.Fprintln(cmd.OutOrStdout(), configRenderer().RenderPaths(configFile, dbFile))
	return nil
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	if configSchemaWrite {
		path, err := config.WriteSchemaFile()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.ErrOrStderr(), configRenderer().RenderWritten("schema", path))
		return nil
	}

	data, err := config.GenerateSchema()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	r := configRenderer()

	configFile, err := config.GetConfigFile()
	if err != nil {
		return err
	}

	if _, statErr := os.Stat(configFile); statErr == nil && !configInitForce {
		fmt.Fprintln(cmd.OutOrStdout(), r.RenderExists(configFile))
		return nil
	} else if statErr != nil && !errors.Is(statErr, fs.ErrNotExist) {
		return fmt.Errorf("failed to stat config file: %w", statErr)
	}

	if err := os.MkdirAll(filepath.Dir(configFile), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := config.WriteConfigOrdered(config.DefaultConfig(), configFile); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), r.RenderWritten("config", configFile))
	return nil
}
