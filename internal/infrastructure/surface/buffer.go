// Package surface provides an in-memory implementation of the popup surface.
// One-shot CLI commands drive the popup controller through it and read the
// results back.
package surface

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/jsonpeek/internal/application/port"
	"github.com/bnema/jsonpeek/internal/domain/entity"
	"github.com/bnema/jsonpeek/internal/domain/highlight"
)

// Buffer holds every element handle of a headless popup.
type Buffer struct {
	Input    *TextBox
	Output   *Display
	Error    *Messages
	Toast    *Messages
	History  *HistoryList
	Format   *Button
	Compress *Button
	Export   *Button
}

// NewBuffer creates a buffer surface with every handle present.
func NewBuffer() *Buffer {
	return &Buffer{
		Input:    &TextBox{},
		Output:   &Display{},
		Error:    &Messages{},
		Toast:    &Messages{},
		History:  &HistoryList{},
		Format:   &Button{},
		Compress: &Button{},
		Export:   &Button{},
	}
}

// Surface returns the port view of the buffer.
func (b *Buffer) Surface() port.Surface {
	s := port.Surface{
		Input:           b.Input,
		Output:          b.Output,
		ErrorMessage:    b.Error,
		HistoryList:     b.History,
		FormatTrigger:   b.Format,
		CompressTrigger: b.Compress,
		ExportTrigger:   b.Export,
	}
	// A nil *Messages must stay a nil interface so the toast is skipped.
	if b.Toast != nil {
		s.Toast = b.Toast
	}
	return s
}

// TextBox is an editable text value.
type TextBox struct {
	value string
}

func (t *TextBox) Value() string { return t.value }

func (t *TextBox) SetValue(text string) { t.value = text }

// Display records what the controller last showed.
type Display struct {
	styled    highlight.Styled
	text      string
	hasStyled bool
}

func (d *Display) ShowStyled(out highlight.Styled) {
	d.styled = out
	d.text = out.Plain()
	d.hasStyled = true
}

func (d *Display) ShowText(text string) {
	d.styled = highlight.Styled{}
	d.text = text
	d.hasStyled = false
}

func (d *Display) Clear() {
	d.styled = highlight.Styled{}
	d.text = ""
	d.hasStyled = false
}

// Text returns the displayed text without markup.
func (d *Display) Text() string { return d.text }

// Styled returns the highlighted output, if the last update was highlighted.
func (d *Display) Styled() (highlight.Styled, bool) { return d.styled, d.hasStyled }

// Messages records transient messages. Durations are kept but never waited on.
type Messages struct {
	current  string
	duration time.Duration
	log      []string
}

func (m *Messages) Show(message string, d time.Duration) {
	m.current = message
	m.duration = d
	m.log = append(m.log, message)
}

func (m *Messages) Clear() { m.current = "" }

// Current returns the message still on display.
func (m *Messages) Current() string { return m.current }

// Duration returns how long the current message was meant to stay up.
func (m *Messages) Duration() time.Duration { return m.duration }

// All returns every message shown so far.
func (m *Messages) All() []string { return append([]string(nil), m.log...) }

// HistoryList records the rendered history.
type HistoryList struct {
	entries     []entity.HistoryEntry
	unavailable string
	onSelect    func(ctx context.Context, entry entity.HistoryEntry)
}

func (h *HistoryList) ShowEntries(entries []entity.HistoryEntry) {
	h.entries = append([]entity.HistoryEntry(nil), entries...)
	h.unavailable = ""
}

func (h *HistoryList) ShowUnavailable(reason string) {
	h.entries = nil
	h.unavailable = reason
}

func (h *HistoryList) OnSelect(action func(ctx context.Context, entry entity.HistoryEntry)) {
	h.onSelect = action
}

// Entries returns the entries on display, newest first.
func (h *HistoryList) Entries() []entity.HistoryEntry { return h.entries }

// Unavailable returns the reason shown instead of entries, if any.
func (h *HistoryList) Unavailable() string { return h.unavailable }

// Select activates the entry at index i, as a click on the list would.
func (h *HistoryList) Select(ctx context.Context, i int) error {
	if i < 0 || i >= len(h.entries) {
		return fmt.Errorf("history entry %d out of range (have %d)", i, len(h.entries))
	}
	if h.onSelect == nil {
		return fmt.Errorf("history list is not bound")
	}
	h.onSelect(ctx, h.entries[i])
	return nil
}

// Button is a trigger activated with Press.
type Button struct {
	action func(ctx context.Context)
}

func (b *Button) Bind(action func(ctx context.Context)) { b.action = action }

// Press runs the bound action. It reports false when nothing is bound.
func (b *Button) Press(ctx context.Context) bool {
	if b.action == nil {
		return false
	}
	b.action(ctx)
	return true
}
