package styles_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/bnema/jsonpeek/internal/cli/styles"
	"github.com/bnema/jsonpeek/internal/domain/entity"
)

func press(m tea.Model, k tea.KeyMsg) (styles.ConfirmModel, tea.Cmd) {
	next, cmd := m.Update(k)
	return next.(styles.ConfirmModel), cmd
}

func TestConfirm_DefaultsToNo(t *testing.T) {
	m := styles.NewConfirm(styles.NewTheme(entity.ThemeLight), "Clear history?")
	assert.Contains(t, m.View(), "Clear history?")

	m, cmd := press(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.Done())
	assert.False(t, m.Result())
	assert.NotNil(t, cmd)
}

func TestConfirm_Yes(t *testing.T) {
	m := styles.NewConfirm(styles.NewTheme(entity.ThemeLight), "Clear history?")

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	assert.True(t, m.Result())
}

func TestConfirm_ToggleThenCancel(t *testing.T) {
	m := styles.NewConfirm(styles.NewTheme(entity.ThemeDark), "Clear history?")

	m, cmd := press(m, tea.KeyMsg{Type: tea.KeyRight})
	assert.True(t, m.Yes)
	assert.Nil(t, cmd)

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, m.Canceled)
	assert.False(t, m.Result())
}
