package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/jsonpeek/internal/application/port"
	"github.com/bnema/jsonpeek/internal/domain/highlight"
)

var (
	formatHTML   bool
	formatIndent int
	formatNoCopy bool
	formatPaste  bool
)

var formatCmd = &cobra.Command{
	Use:   "format [file|-]",
	Short: "Format and highlight JSON",
	Long: `Parse JSON from a file, stdin or the clipboard and print it indented
and highlighted.

The raw input is saved to history and the formatted text is copied to the
clipboard unless --no-copy is given.

Examples:
  jsonpeek format data.json
  curl -s https://api.example.com | jsonpeek format
  jsonpeek format --paste --indent 4
  jsonpeek format --html data.json > snippet.html`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFormat,
}

func init() {
	rootCmd.AddCommand(formatCmd)
	formatCmd.Flags().BoolVar(&formatHTML, "html", false, "print HTML with classed spans instead of ANSI colors")
	formatCmd.Flags().IntVarP(&formatIndent, "indent", "i", 0, "indent width for this run (default: stored option)")
	formatCmd.Flags().BoolVar(&formatNoCopy, "no-copy", false, "do not copy the result to the clipboard")
	formatCmd.Flags().BoolVar(&formatPaste, "paste", false, "read the input from the clipboard")
	formatCmd.MarkFlagsMutuallyExclusive("paste", "no-copy")
}

func runFormat(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	if formatPaste && len(args) > 0 {
		return fmt.Errorf("--paste does not take a file argument")
	}

	var clip port.Clipboard
	if !formatNoCopy {
		clip = a.Clipboard
	}
	run, err := newOneShot(a, clip)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("indent") {
		opts := run.ctrl.Options()
		opts.Indent = min(max(formatIndent, 0), highlight.MaxIndent)
		run.ctrl.SetOptions(opts)
	}

	ctx := a.Ctx()
	var raw string
	if formatPaste {
		if err := run.ctrl.Paste(ctx); err != nil {
			return err
		}
		raw = run.buf.Input.Value()
	} else {
		raw, err = readInput(cmd, args)
		if err != nil {
			return err
		}
	}
	if err := run.ctrl.SubmitFormat(ctx, raw); err != nil {
		return err
	}

	styled, _ := run.buf.Output.Styled()
	writeStyled(cmd, a.Theme, styled, formatHTML)
	run.report(cmd, a.Theme)
	return nil
}
