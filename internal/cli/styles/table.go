package styles

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/jsonpeek/internal/domain/entity"
	"github.com/bnema/jsonpeek/internal/domain/highlight"
)

const historyPreviewWidth = 60

// NewStyledTable creates a themed table model.
func NewStyledTable(theme *Theme, columns []table.Column, rows []table.Row, width, height int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(height),
		table.WithWidth(width),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Foreground(theme.Accent).
		Bold(true)
	s.Selected = s.Cell.
		Foreground(theme.Text)
	s.Cell = s.Cell.
		Foreground(theme.Text)

	t.SetStyles(s)
	return t
}

// HistoryTableColumns returns columns for the history list table.
func HistoryTableColumns() []table.Column {
	return []table.Column{
		{Title: "#", Width: 3},
		{Title: "Saved", Width: 20},
		{Title: "Content", Width: historyPreviewWidth},
	}
}

// HistoryRows converts history entries to table rows, newest first.
func HistoryRows(entries []entity.HistoryEntry) []table.Row {
	rows := make([]table.Row, 0, len(entries))
	for i, e := range entries {
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			FormatSavedAt(e),
			highlight.Truncate(strings.Join(strings.Fields(e.Content), " "), historyPreviewWidth-3),
		})
	}
	return rows
}

// RenderHistoryTable renders entries as a static table.
func RenderHistoryTable(theme *Theme, entries []entity.HistoryEntry) string {
	if len(entries) == 0 {
		return theme.Subtle.Render("No history yet")
	}
	width := 0
	for _, c := range HistoryTableColumns() {
		width += c.Width + 2
	}
	// header plus one line per row
	t := NewStyledTable(theme, HistoryTableColumns(), HistoryRows(entries), width, len(entries)+1)
	return t.View()
}

// FormatSavedAt returns the display form of an entry timestamp.
func FormatSavedAt(e entity.HistoryEntry) string {
	at := e.Time()
	if at.IsZero() {
		return "-"
	}
	return at.Local().Format("2006-01-02 15:04:05")
}
