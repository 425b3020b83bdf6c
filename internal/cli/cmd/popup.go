package cmd

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/jsonpeek/internal/application/port"
	"github.com/bnema/jsonpeek/internal/application/usecase"
	"github.com/bnema/jsonpeek/internal/cli/model"
	"github.com/bnema/jsonpeek/internal/logging"
)

var popupCmd = &cobra.Command{
	Use:   "popup",
	Short: "Open the interactive formatter",
	Long: `Open a full-screen view with a JSON input, the highlighted output and the
recent history.

Press C-r to format, C-x to compress, C-s to export, C-y to paste from the
clipboard and tab to move between panes. Selecting a history entry loads it
back into the input. Message durations follow config.toml and are applied
live when the file changes.`,
	Args: cobra.NoArgs,
	RunE: runPopup,
}

func init() {
	rootCmd.AddCommand(popupCmd)
}

func runPopup(_ *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	if closeLog, err := a.RedirectLogs("popup.log"); err == nil {
		defer closeLog()
	} else {
		logging.FromContext(a.Ctx()).Warn().Err(err).Msg("logging to stderr")
	}
	ctx := logging.WithComponent(a.Ctx(), "tui")

	m, err := model.NewPopupModel(ctx, a.Theme, func(ctx context.Context, s port.Surface) (*usecase.PopupController, error) {
		return a.NewPopup(ctx, s, a.Clipboard)
	})
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen())

	if err := a.WatchConfig(ctx, func(s usecase.PopupSettings) {
		p.Send(model.SettingsMsg{Settings: s})
	}); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("config watching disabled")
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("popup failed: %w", err)
	}
	return nil
}
