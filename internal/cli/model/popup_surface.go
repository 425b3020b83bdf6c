package model

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textarea"

	"github.com/bnema/jsonpeek/internal/application/port"
	"github.com/bnema/jsonpeek/internal/domain/entity"
	"github.com/bnema/jsonpeek/internal/domain/highlight"
)

// popupSurface is the state the popup controller writes into. The model
// owns it by pointer so handle writes survive bubbletea's value copies.
type popupSurface struct {
	input textarea.Model

	styled    highlight.Styled
	plain     string
	hasStyled bool
	outputRev int

	errMsg message
	toast  message

	entries     []entity.HistoryEntry
	unavailable string
	onSelect    func(ctx context.Context, entry entity.HistoryEntry)

	format   func(ctx context.Context)
	compress func(ctx context.Context)
	export   func(ctx context.Context)
}

// message is a transient line that dismisses itself after duration.
// id increases on every Show so stale dismiss ticks are ignored.
type message struct {
	text     string
	duration time.Duration
	id       int
	pending  bool
}

func (m *message) Show(text string, d time.Duration) {
	m.text = text
	m.duration = d
	m.id++
	m.pending = true
}

func (m *message) Clear() {
	m.text = ""
	m.pending = false
}

type inputHandle struct{ s *popupSurface }

func (h inputHandle) Value() string { return h.s.input.Value() }
func (h inputHandle) SetValue(text string) { h.s.input.SetValue(text) }

type outputHandle struct{ s *popupSurface }

func (h outputHandle) ShowStyled(out highlight.Styled) {
	h.s.styled = out
	h.s.plain = out.Plain()
	h.s.hasStyled = true
	h.s.outputRev++
}

func (h outputHandle) ShowText(text string) {
	h.s.styled = highlight.Styled{}
	h.s.plain = text
	h.s.hasStyled = false
	h.s.outputRev++
}

func (h outputHandle) Clear() {
	h.ShowText("")
}

type historyHandle struct{ s *popupSurface }

func (h historyHandle) ShowEntries(entries []entity.HistoryEntry) {
	h.s.entries = entries
	h.s.unavailable = ""
}

func (h historyHandle) ShowUnavailable(reason string) {
	h.s.entries = nil
	h.s.unavailable = reason
}

func (h historyHandle) OnSelect(action func(ctx context.Context, entry entity.HistoryEntry)) {
	h.s.onSelect = action
}

type triggerHandle struct{ slot *func(ctx context.Context) }

func (h triggerHandle) Bind(action func(ctx context.Context)) { *h.slot = action }

// handles returns the port view of the surface.
func (s *popupSurface) handles() port.Surface {
	return port.Surface{
		Input:           inputHandle{s},
		Output:          outputHandle{s},
		ErrorMessage:    &s.errMsg,
		HistoryList:     historyHandle{s},
		FormatTrigger:   triggerHandle{&s.format},
		CompressTrigger: triggerHandle{&s.compress},
		ExportTrigger:   triggerHandle{&s.export},
		Toast:           &s.toast,
	}
}

func fire(ctx context.Context, action func(ctx context.Context)) {
	if action != nil {
		action(ctx)
	}
}
