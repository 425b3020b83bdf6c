package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/jsonpeek/internal/cli/styles"
)

var aboutCmd = &cobra.Command{
	Use:     "about",
	Aliases: []string{"version"},
	Short:   "Show version and build information",
	Args:    cobra.NoArgs,
	RunE:    runAbout,
}

func init() {
	rootCmd.AddCommand(aboutCmd)
}

func runAbout(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	renderer := styles.NewAboutRenderer(a.Theme)
	fmt.Fprintln(cmd.OutOrStdout(), renderer.Render(a.BuildInfo))
	return nil
}
