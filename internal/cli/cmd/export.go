package cmd

import (
	"github.com/spf13/cobra"

	"github.com/bnema/jsonpeek/internal/infrastructure/filesystem"
)

var exportDir string

var exportCmd = &cobra.Command{
	Use:   "export [file|-]",
	Short: "Format JSON and save it as formatted.json",
	Long: `Format JSON from a file or stdin and write the result to formatted.json
in the export directory (export.dir in the config, or --dir).

The input is saved to history like 'jsonpeek format' does. Nothing is copied
to the clipboard.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportDir, "dir", "d", "", "directory to write into (default: export.dir)")
}

func runExport(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	if exportDir != "" {
		a.Exporter = filesystem.NewExporter(exportDir)
	}

	run, err := newOneShot(a, nil)
	if err != nil {
		return err
	}

	raw, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	ctx := a.Ctx()
	if err := run.ctrl.SubmitFormat(ctx, raw); err != nil {
		return err
	}
	if _, err := run.ctrl.SubmitExport(ctx); err != nil {
		return err
	}

	run.report(cmd, a.Theme)
	return nil
}
