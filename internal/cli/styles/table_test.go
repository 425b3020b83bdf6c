package styles_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/jsonpeek/internal/cli/styles"
	"github.com/bnema/jsonpeek/internal/domain/entity"
)

func TestHistoryRows(t *testing.T) {
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	entries := []entity.HistoryEntry{
		entity.NewHistoryEntry("{\n  \"a\": 1\n}", at),
		{Content: `"x": 5`},
		{Content: strings.Repeat("a", 200)},
	}

	rows := styles.HistoryRows(entries)
	require.Len(t, rows, 3)

	assert.Equal(t, "1", rows[0][0])
	assert.Equal(t, `{ "a": 1 }`, rows[0][2])
	assert.Equal(t, "-", rows[1][1], "legacy entries have no timestamp")
	assert.True(t, strings.HasSuffix(rows[2][2], "..."))
}

func TestRenderHistoryTable_Empty(t *testing.T) {
	out := styles.RenderHistoryTable(styles.NewTheme(entity.ThemeLight), nil)
	assert.Contains(t, out, "No history yet")
}
