package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/jsonpeek/internal/domain/entity"
)

func TestExporter_WritesArtifact(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	exp := NewExporter(dir)

	path, err := exp.Export(context.Background(), entity.NewExportArtifact("{\n  \"a\": 1\n}"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "formatted.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": 1\n}", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestExporter_ReplacesExisting(t *testing.T) {
	dir := t.TempDir()
	exp := NewExporter(dir)

	_, err := exp.Export(context.Background(), entity.NewExportArtifact("[1]"))
	require.NoError(t, err)
	path, err := exp.Export(context.Background(), entity.NewExportArtifact("[2]"))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[2]", string(data))
}

func TestExporter_StripsDirectoryFromName(t *testing.T) {
	dir := t.TempDir()
	path, err := NewExporter(dir).Export(context.Background(), entity.Artifact{
		Name: "../../escape.json",
		Data: []byte("{}"),
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "escape.json"), path)
}
