package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/jsonpeek/internal/application/port"
)

var compressNoCopy bool

var compressCmd = &cobra.Command{
	Use:   "compress [file|-]",
	Short: "Minify JSON",
	Long: `Parse JSON from a file or stdin and print it with all insignificant
whitespace removed. The result is copied to the clipboard. Compressed input
is not added to history.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCompress,
}

func init() {
	rootCmd.AddCommand(compressCmd)
	compressCmd.Flags().BoolVar(&compressNoCopy, "no-copy", false, "do not copy the result to the clipboard")
}

func runCompress(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	var clip port.Clipboard
	if !compressNoCopy {
		clip = a.Clipboard
	}
	run, err := newOneShot(a, clip)
	if err != nil {
		return err
	}

	raw, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	if err := run.ctrl.SubmitCompress(a.Ctx(), raw); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), run.buf.Output.Text())
	run.report(cmd, a.Theme)
	return nil
}
