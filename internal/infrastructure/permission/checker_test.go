package permission

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/jsonpeek/internal/domain/entity"
)

func TestChecker_Storage(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	assert.True(t, NewChecker(dir, true, false).HasPermission(ctx, entity.PermissionTypeStorage))
	assert.True(t, NewChecker(filepath.Join(dir, "not", "yet", "created"), true, false).
		HasPermission(ctx, entity.PermissionTypeStorage))
}

func TestChecker_StorageReadOnly(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root bypasses permission bits")
	}
	ctx := context.Background()
	dir := t.TempDir()
	ro := filepath.Join(dir, "ro")
	require.NoError(t, os.Mkdir(ro, 0o500))
	t.Cleanup(func() { _ = os.Chmod(ro, 0o700) })

	assert.False(t, NewChecker(filepath.Join(ro, "data"), true, false).HasPermission(ctx, entity.PermissionTypeStorage))
	assert.True(t, NewChecker(filepath.Join(ro, "data"), true, true).HasPermission(ctx, entity.PermissionTypeStorage))
}

func TestChecker_Clipboard(t *testing.T) {
	ctx := context.Background()
	assert.True(t, NewChecker("", true, false).HasPermission(ctx, entity.PermissionTypeClipboard))
	assert.False(t, NewChecker("", false, false).HasPermission(ctx, entity.PermissionTypeClipboard))
	assert.False(t, NewChecker("", true, false).HasPermission(ctx, entity.PermissionType("camera")))
}
