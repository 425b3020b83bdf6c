package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/bnema/jsonpeek/internal/application/usecase"
	"github.com/bnema/jsonpeek/internal/cli/styles"
	"github.com/bnema/jsonpeek/internal/domain/entity"
	"github.com/bnema/jsonpeek/internal/infrastructure/filesystem"
)

const htmlMIMEType = "text/html"

var (
	scanOutDir string
	scanIndent int
	scanJobs   int
)

var scanCmd = &cobra.Command{
	Use:   "scan FILE...",
	Short: "Highlight JSON inside <pre> blocks of HTML pages",
	Long: `Scan HTML documents and replace every <pre> block that holds raw JSON
with a highlighted, indented rendering. Each block also gets a "Format JSON"
button and the page gets the token stylesheet.

With a single file and no --out-dir the page is written to stdout.
Several files are processed in parallel and need --out-dir. Output files
keep the base name of their input, so two inputs sharing one are rejected.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)
	scanCmd.Flags().StringVarP(&scanOutDir, "out-dir", "o", "", "directory for the rewritten pages")
	scanCmd.Flags().IntVarP(&scanIndent, "indent", "i", 0, "indent width (default: stored option)")
	scanCmd.Flags().IntVarP(&scanJobs, "jobs", "j", runtime.NumCPU(), "number of files scanned at once")
}

func runScan(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	if scanOutDir == "" && len(args) > 1 {
		return fmt.Errorf("--out-dir is required when scanning more than one file")
	}
	names, err := outputNames(args)
	if err != nil {
		return err
	}
	ctx := a.Ctx()

	indent := scanIndent
	if !cmd.Flags().Changed("indent") {
		opts, err := a.Options.Load(ctx)
		if err != nil {
			return fmt.Errorf("failed to load options: %w", err)
		}
		indent = opts.Indent
	}

	sources := make([]usecase.ScanSource, 0, len(args))
	for _, path := range args {
		sources = append(sources, usecase.ScanSource{
			Name: path,
			Open: func() (io.ReadCloser, error) { return os.Open(path) },
		})
	}

	results, err := a.Scanner.ScanAll(ctx, sources, indent, scanJobs)
	if err != nil {
		return err
	}

	if scanOutDir == "" {
		return results[0].Render(cmd.OutOrStdout())
	}

	exporter := filesystem.NewExporter(scanOutDir)
	for i, res := range results {
		var buf bytes.Buffer
		if err := res.Render(&buf); err != nil {
			return fmt.Errorf("%s: %w", args[i], err)
		}
		dest, err := exporter.Export(ctx, entity.Artifact{
			Name:     names[i],
			MIMEType: htmlMIMEType,
			Data:     buf.Bytes(),
		})
		if err != nil {
			return fmt.Errorf("%s: %w", args[i], err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "%s %s %s\n",
			a.Theme.SuccessStyle.Render(styles.IconCheck),
			a.Theme.Subtle.Render(dest),
			a.Theme.Highlight.Render(fmt.Sprintf("%d blocks", res.Augmented())),
		)
	}
	return nil
}

// outputNames maps each input to its file name under --out-dir and rejects
// inputs that would overwrite each other.
func outputNames(args []string) ([]string, error) {
	names := make([]string, len(args))
	seen := make(map[string]string, len(args))
	for i, path := range args {
		name := filepath.Base(path)
		if prev, ok := seen[name]; ok {
			return nil, fmt.Errorf("%s and %s would both be written as %s", prev, path, name)
		}
		seen[name] = path
		names[i] = name
	}
	return names, nil
}
