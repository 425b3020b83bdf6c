// Package permission probes which capabilities the process has.
package permission

import (
	"context"
	"os"
	"path/filepath"

	"github.com/bnema/jsonpeek/internal/application/port"
	"github.com/bnema/jsonpeek/internal/domain/entity"
	"github.com/bnema/jsonpeek/internal/logging"
)

// Checker implements port.PermissionChecker.
// Storage permission means the directory that holds the database is writable
// (or can be created). Clipboard permission follows the config switch.
type Checker struct {
	dataDir          string
	clipboardEnabled bool
	ephemeral        bool
}

// NewChecker creates a checker for the given data directory.
// An ephemeral checker always grants storage since nothing touches disk.
func NewChecker(dataDir string, clipboardEnabled, ephemeral bool) *Checker {
	return &Checker{dataDir: dataDir, clipboardEnabled: clipboardEnabled, ephemeral: ephemeral}
}

func (c *Checker) HasPermission(ctx context.Context, perm entity.PermissionType) bool {
	switch perm {
	case entity.PermissionTypeStorage:
		if c.ephemeral {
			return true
		}
		ok := writable(nearestExisting(c.dataDir))
		if !ok {
			logging.FromContext(ctx).Debug().Str("dir", c.dataDir).Msg("data directory is not writable")
		}
		return ok
	case entity.PermissionTypeClipboard:
		return c.clipboardEnabled
	default:
		return false
	}
}

// nearestExisting walks up from dir to the first path that exists,
// since MkdirAll will create the rest.
func nearestExisting(dir string) string {
	for {
		if _, err := os.Stat(dir); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}

var _ port.PermissionChecker = (*Checker)(nil)
