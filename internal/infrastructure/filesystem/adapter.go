// Package filesystem writes exported artifacts to disk.
package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/jsonpeek/internal/application/port"
	"github.com/bnema/jsonpeek/internal/domain/entity"
	"github.com/bnema/jsonpeek/internal/logging"
)

const (
	exportDirPerm  = 0o755
	exportFilePerm = 0o644
)

// Exporter implements port.Exporter by writing artifacts into a directory.
type Exporter struct {
	dir string
}

// NewExporter creates an exporter rooted at dir. An empty dir means the
// current working directory.
func NewExporter(dir string) *Exporter {
	if dir == "" {
		dir = "."
	}
	return &Exporter{dir: dir}
}

// Export writes the artifact atomically (temp file then rename) and returns
// the final path. An existing file with the same name is replaced.
func (e *Exporter) Export(ctx context.Context, artifact entity.Artifact) (string, error) {
	log := logging.FromContext(ctx)

	name := filepath.Base(artifact.Name)
	if name == "." || name == string(filepath.Separator) || name == "" {
		name = entity.ExportFileName
	}

	if err := os.MkdirAll(e.dir, exportDirPerm); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	tmp, err := os.CreateTemp(e.dir, "."+name+".*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpPath) }

	if _, err := tmp.Write(artifact.Data); err != nil {
		_ = tmp.Close()
		cleanup()
		return "", fmt.Errorf("failed to write export: %w", err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return "", fmt.Errorf("failed to close export: %w", err)
	}
	if err := os.Chmod(tmpPath, exportFilePerm); err != nil {
		cleanup()
		return "", fmt.Errorf("failed to set export permissions: %w", err)
	}

	dest := filepath.Join(e.dir, name)
	if err := os.Rename(tmpPath, dest); err != nil {
		cleanup()
		return "", fmt.Errorf("failed to move export into place: %w", err)
	}

	log.Info().Str("path", dest).Int("bytes", len(artifact.Data)).Str("mime", artifact.MIMEType).Msg("exported")
	return dest, nil
}

var _ port.Exporter = (*Exporter)(nil)
