package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotator_RollsOverAndKeepsBackups(t *testing.T) {
	dir := t.TempDir()
	r, err := NewRotator(RotatorConfig{Dir: dir, Name: "popup.log", MaxSizeMB: 1, MaxBackups: 2})
	require.NoError(t, err)
	defer r.Close()

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	step := 0
	r.now = func() time.Time {
		step++
		return base.Add(time.Duration(step) * time.Second)
	}

	chunk := bytes.Repeat([]byte("x"), 700*1024)
	for range 5 {
		_, err := r.Write(chunk)
		require.NoError(t, err)
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var backups int
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), "popup.log.") {
			backups++
		}
	}
	assert.Equal(t, 2, backups, "only MaxBackups backups survive")

	info, err := os.Stat(filepath.Join(dir, "popup.log"))
	require.NoError(t, err)
	assert.Equal(t, int64(len(chunk)), info.Size())
}

func TestRotator_Compress(t *testing.T) {
	dir := t.TempDir()
	r, err := NewRotator(RotatorConfig{Dir: dir, Name: "popup.log", MaxSizeMB: 1, Compress: true})
	require.NoError(t, err)
	defer r.Close()

	chunk := bytes.Repeat([]byte("y"), 600*1024)
	for range 2 {
		_, err := r.Write(chunk)
		require.NoError(t, err)
	}

	matches, err := filepath.Glob(filepath.Join(dir, "popup.log.*.gz"))
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestNewRotator_RequiresName(t *testing.T) {
	_, err := NewRotator(RotatorConfig{Dir: t.TempDir()})
	assert.Error(t, err)
}
