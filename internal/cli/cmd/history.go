package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/jsonpeek/internal/cli/styles"
)

var (
	historyLimit int
	historyJSON  bool
	historyHTML  bool
	historyYes   bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent JSON submissions",
	Long: `List the most recent formatted inputs, newest first.

By default the list is as long as history.display_limit in the config.
Use --limit 0 to show every stored entry.`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

var historySelectCmd = &cobra.Command{
	Use:   "select N",
	Short: "Render history entry N again",
	Long: `Load entry N (1 is the newest) and print it formatted with the stored
options. Entries saved as bare member lists are wrapped in braces first.`,
	Args: cobra.ExactArgs(1),
	RunE: runHistorySelect,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all history entries",
	Args:  cobra.NoArgs,
	RunE:  runHistoryClear,
}

var historyRepairCmd = &cobra.Command{
	Use:   "repair",
	Short: "Reset a corrupt history slot to an empty list",
	Args:  cobra.NoArgs,
	RunE:  runHistoryRepair,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historySelectCmd, historyClearCmd, historyRepairCmd)

	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", -1, "number of entries to show (0 for all)")
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "print entries as JSON")
	historySelectCmd.Flags().BoolVar(&historyHTML, "html", false, "print HTML with classed spans instead of ANSI colors")
	historyClearCmd.Flags().BoolVarP(&historyYes, "yes", "y", false, "skip confirmation prompt")
}

func runHistory(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	limit := historyLimit
	if limit < 0 {
		limit = a.Config.History.DisplayLimit
	}

	entries, err := a.History.Load(a.Ctx(), limit)
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}

	if historyJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	fmt.Fprintln(cmd.OutOrStdout(), styles.RenderHistoryTable(a.Theme, entries))
	return nil
}

func runHistorySelect(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 {
		return fmt.Errorf("invalid entry number %q", args[0])
	}

	ctx := a.Ctx()
	entries, err := a.History.Load(ctx, 0)
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}
	if n > len(entries) {
		return fmt.Errorf("history has %d entries", len(entries))
	}

	run, err := newOneShot(a, nil)
	if err != nil {
		return err
	}
	if err := run.ctrl.SelectHistoryEntry(ctx, entries[n-1]); err != nil {
		return err
	}

	styled, _ := run.buf.Output.Styled()
	writeStyled(cmd, a.Theme, styled, historyHTML)
	return nil
}

func runHistoryClear(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	if !historyYes {
		result, err := tea.NewProgram(styles.NewConfirm(a.Theme, "Delete all history entries?")).Run()
		if err != nil {
			return fmt.Errorf("confirmation failed: %w", err)
		}
		if confirm, ok := result.(styles.ConfirmModel); !ok || !confirm.Result() {
			return nil
		}
	}

	if err := a.History.Clear(a.Ctx()); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), a.Theme.SuccessStyle.Render(styles.IconTrash+" History cleared"))
	return nil
}

func runHistoryRepair(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	repaired, err := a.History.RepairIfCorrupt(a.Ctx())
	if err != nil {
		return fmt.Errorf("failed to repair history: %w", err)
	}
	if repaired {
		fmt.Fprintln(cmd.OutOrStdout(), a.Theme.WarningStyle.Render(styles.IconWarning+" History was corrupt and has been reset"))
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), a.Theme.SuccessStyle.Render(styles.IconCheck+" History is healthy"))
	return nil
}
