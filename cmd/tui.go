package cmd

import (
	"fmt"

	"github.com/theirongolddev/foodinme/internal/fileutil"
	"github.com/theirongolddev/foodinme/internal/tui"
	"github.com/theirongolddev/foodinme/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var flagTUIDays int

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive dashboard",
	RunE:  runTUI,
}

func init() {
	tuiCmd.Flags().IntVarP(&flagTUIDays, "days", "n", 0, "History span in days (default from config)")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.close()

	theme.SetActive(e.cfg.Appearance.Theme)

	// Force TrueColor so background styling always produces ANSI codes
	lipgloss.SetColorProfile(termenv.TrueColor)

	days := e.cfg.TUI.HistoryDays
	if flagTUIDays > 0 {
		days = flagTUIDays
	}

	app := tui.NewApp(tui.Source{
		Ledger:   e.ledger,
		Catalog:  e.catalog,
		UserDir:  e.files.Path(fileutil.UserDirName),
		UseCache: !flagNoCache,
		Log:      e.log,
	}, days)

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
