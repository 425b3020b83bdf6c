package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/jsonpeek/internal/cli/styles"
	"github.com/bnema/jsonpeek/internal/domain/entity"
)

var (
	optionsTheme  string
	optionsIndent int
	optionsReset  bool
)

var optionsCmd = &cobra.Command{
	Use:   "options",
	Short: "Show or change display options",
	Long: `Show the stored theme and indent, or change them.

Examples:
  jsonpeek options
  jsonpeek options --theme dark
  jsonpeek options --indent 4
  jsonpeek options --reset`,
	Args: cobra.NoArgs,
	RunE: runOptions,
}

func init() {
	rootCmd.AddCommand(optionsCmd)
	optionsCmd.Flags().StringVar(&optionsTheme, "theme", "", "highlight theme (light, dark)")
	optionsCmd.Flags().IntVar(&optionsIndent, "indent", entity.DefaultIndent, "indent width (0 for compact)")
	optionsCmd.Flags().BoolVar(&optionsReset, "reset", false, "delete stored options and use the defaults")
	optionsCmd.MarkFlagsMutuallyExclusive("reset", "theme")
	optionsCmd.MarkFlagsMutuallyExclusive("reset", "indent")
}

func runOptions(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	ctx := a.Ctx()

	var opts entity.Options
	if optionsReset {
		opts, err = a.Options.Reset(ctx)
		if err != nil {
			return fmt.Errorf("failed to reset options: %w", err)
		}
	} else if opts, err = a.Options.Load(ctx); err != nil {
		return fmt.Errorf("failed to load options: %w", err)
	}

	changed := false
	if cmd.Flags().Changed("theme") {
		opts.Theme = entity.Theme(optionsTheme)
		changed = true
	}
	if cmd.Flags().Changed("indent") {
		opts.Indent = optionsIndent
		changed = true
	}
	if changed {
		if opts, err = a.Options.Save(ctx, opts); err != nil {
			return fmt.Errorf("failed to save options: %w", err)
		}
	}

	t := a.Theme
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %s\n", t.Subtle.Render("theme "), t.Highlight.Render(string(opts.Theme)))
	fmt.Fprintf(out, "%s %s\n", t.Subtle.Render("indent"), t.Highlight.Render(fmt.Sprint(opts.Indent)))
	if opts.Theme != opts.EffectiveTheme() {
		fmt.Fprintln(out, t.WarningStyle.Render(fmt.Sprintf("%s unknown theme %q renders as %s", styles.IconWarning, opts.Theme, opts.EffectiveTheme())))
	}
	return nil
}
