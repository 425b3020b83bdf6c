// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/jsonpeek/internal/application/port"
	"github.com/bnema/jsonpeek/internal/application/usecase"
	"github.com/bnema/jsonpeek/internal/cli/styles"
	"github.com/bnema/jsonpeek/internal/domain/highlight"
	"github.com/bnema/jsonpeek/internal/logging"
)

// pane is the focused area of the popup.
type pane int

const (
	paneInput pane = iota
	paneOutput
	paneHistory
	paneCount
)

const (
	defaultWidth  = 80
	defaultHeight = 30
	inputLines    = 6
	previewWidth  = 60
)

// ControllerFactory builds an initialized controller over the popup surface.
type ControllerFactory func(ctx context.Context, surface port.Surface) (*usecase.PopupController, error)

// SettingsMsg carries popup settings reloaded from the config file.
type SettingsMsg struct {
	Settings usecase.PopupSettings
}

// dismissMsg hides a transient message unless a newer one replaced it.
type dismissMsg struct {
	toast bool
	id    int
}

// PopupModel is the interactive format/compress/export view.
type PopupModel struct {
	// UI components
	output viewport.Model
	help   help.Model
	keys   styles.PopupKeyMap

	// State
	surface   *popupSurface
	focus     pane
	cursor    int
	renderRev int
	showHelp  bool
	width     int
	height    int

	// Dependencies
	ctx   context.Context
	ctrl  *usecase.PopupController
	theme *styles.Theme
}

// NewPopupModel creates the popup and initializes its controller.
// A controller that fails to initialize (missing elements) is returned as error.
func NewPopupModel(ctx context.Context, theme *styles.Theme, factory ControllerFactory) (PopupModel, error) {
	log := logging.FromContext(ctx)
	log.Debug().Msg("creating popup model")

	input := textarea.New()
	input.Placeholder = "Paste JSON here"
	input.ShowLineNumbers = false
	input.CharLimit = 0
	input.MaxHeight = 0
	input.Focus()

	s := &popupSurface{input: input}
	ctrl, err := factory(ctx, s.handles())
	if err != nil {
		return PopupModel{}, fmt.Errorf("failed to initialize popup: %w", err)
	}

	m := PopupModel{
		output:  viewport.New(defaultWidth, 1),
		help:    styles.NewStyledHelp(theme),
		keys:    styles.DefaultPopupKeyMap(),
		surface: s,
		focus:   paneInput,
		ctx:     ctx,
		ctrl:    ctrl,
		theme:   theme,
	}
	m.resize(defaultWidth, defaultHeight)
	return m, nil
}

// Init implements tea.Model.
func (m PopupModel) Init() tea.Cmd {
	return textarea.Blink
}

// Update implements tea.Model.
func (m PopupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		m.syncOutput()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case dismissMsg:
		target := &m.surface.errMsg
		if msg.toast {
			target = &m.surface.toast
		}
		if target.id == msg.id {
			target.Clear()
		}
		return m, nil

	case SettingsMsg:
		m.ctrl.SetSettings(msg.Settings)
		logging.FromContext(m.ctx).Debug().Msg("popup settings reloaded")
		return m, nil
	}

	return m.forward(msg)
}

func (m PopupModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil
	case key.Matches(msg, m.keys.Focus):
		m.setFocus((m.focus + 1) % paneCount)
		return m, nil
	case key.Matches(msg, m.keys.Format):
		fire(m.ctx, m.surface.format)
		return m.afterAction()
	case key.Matches(msg, m.keys.Compress):
		fire(m.ctx, m.surface.compress)
		return m.afterAction()
	case key.Matches(msg, m.keys.Export):
		fire(m.ctx, m.surface.export)
		return m.afterAction()
	case key.Matches(msg, m.keys.Paste):
		_ = m.ctrl.Paste(m.ctx)
		return m.afterAction()
	}

	if m.focus == paneHistory {
		return m.handleHistoryKey(msg)
	}
	return m.forward(msg)
}

func (m PopupModel) handleHistoryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := len(m.surface.entries)
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < n-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Select):
		if m.cursor < n && m.surface.onSelect != nil {
			m.surface.onSelect(m.ctx, m.surface.entries[m.cursor])
			return m.afterAction()
		}
	}
	return m, nil
}

// forward passes a message to the focused component.
func (m PopupModel) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case paneInput:
		m.surface.input, cmd = m.surface.input.Update(msg)
	case paneOutput:
		m.output, cmd = m.output.Update(msg)
	}
	return m, cmd
}

// afterAction refreshes the output and schedules dismissal of any message
// the controller just showed.
func (m PopupModel) afterAction() (tea.Model, tea.Cmd) {
	m.syncOutput()
	if m.cursor >= len(m.surface.entries) {
		m.cursor = max(len(m.surface.entries)-1, 0)
	}

	var cmds []tea.Cmd
	if cmd := scheduleDismiss(&m.surface.errMsg, false); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if cmd := scheduleDismiss(&m.surface.toast, true); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func scheduleDismiss(msg *message, toast bool) tea.Cmd {
	if !msg.pending {
		return nil
	}
	msg.pending = false
	id := msg.id
	return tea.Tick(msg.duration, func(time.Time) tea.Msg {
		return dismissMsg{toast: toast, id: id}
	})
}

// syncOutput re-renders the viewport when the controller changed the output.
func (m *PopupModel) syncOutput() {
	s := m.surface
	var content string
	if s.hasStyled {
		content = s.styled.Paint(styles.NewThemePalette(m.theme))
	} else {
		content = lipgloss.NewStyle().Width(m.output.Width).Render(s.plain)
	}
	m.output.SetContent(content)
	if s.outputRev != m.renderRev {
		m.output.GotoTop()
		m.renderRev = s.outputRev
	}
}

func (m *PopupModel) setFocus(p pane) {
	m.focus = p
	if p == paneInput {
		m.surface.input.Focus()
	} else {
		m.surface.input.Blur()
	}
}

func (m *PopupModel) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width

	inner := max(width-4, 10)
	m.surface.input.SetWidth(inner)
	m.surface.input.SetHeight(inputLines)

	// title, buttons, message line, history box, help and borders
	reserved := inputLines + 16
	m.output.Width = inner
	m.output.Height = max(height-reserved, 3)
}

// View implements tea.Model.
func (m PopupModel) View() string {
	t := m.theme
	sections := []string{
		t.Title.Render("jsonpeek") + "  " + t.Subtle.Render(fmt.Sprintf("indent %d · %s", m.ctrl.Options().Indent, t.Name)),
		m.box(m.surface.input.View(), m.focus == paneInput),
		m.renderButtons(),
		m.renderMessages(),
		m.box(m.output.View(), m.focus == paneOutput),
		m.box(m.renderHistory(), m.focus == paneHistory),
	}

	m.help.ShowAll = m.showHelp
	sections = append(sections, m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m PopupModel) box(content string, focused bool) string {
	style := m.theme.Input
	if focused {
		style = m.theme.InputFocused
	}
	return style.Width(max(m.width-2, 10)).Render(content)
}

func (m PopupModel) renderButtons() string {
	t := m.theme
	label := func(b key.Binding, name string) string {
		return t.InactiveButton.Render(name) + " " + t.HelpKey.Render(b.Help().Key)
	}
	return strings.Join([]string{
		label(m.keys.Format, "Format"),
		label(m.keys.Compress, "Compress"),
		label(m.keys.Export, "Export"),
	}, "  ")
}

func (m PopupModel) renderMessages() string {
	t := m.theme
	var parts []string
	if s := m.surface.errMsg.text; s != "" {
		parts = append(parts, t.ErrorStyle.Render(styles.IconX+" "+s))
	}
	if s := m.surface.toast.text; s != "" {
		parts = append(parts, t.Toast.Render(s))
	}
	return strings.Join(parts, "  ")
}

func (m PopupModel) renderHistory() string {
	t := m.theme
	s := m.surface
	header := t.Subtitle.Render(styles.IconClock + " History")

	if s.unavailable != "" {
		return header + "\n" + t.WarningStyle.Render(s.unavailable)
	}
	if len(s.entries) == 0 {
		return header + "\n" + t.Subtle.Render("No history yet")
	}

	lines := []string{header}
	for i, e := range s.entries {
		preview := highlight.Truncate(strings.Join(strings.Fields(e.Content), " "), previewWidth)
		line := fmt.Sprintf("%s  %s", t.ListItemDesc.Render(styles.FormatSavedAt(e)), preview)
		if m.focus == paneHistory && i == m.cursor {
			lines = append(lines, t.ListItemSelected.Render(line))
			continue
		}
		lines = append(lines, t.ListItem.Render(line))
	}
	return strings.Join(lines, "\n")
}
