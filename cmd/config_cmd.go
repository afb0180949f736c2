// Package cmd implements the foodinme CLI commands.
package cmd

import (
	"fmt"

	"github.com/theirongolddev/foodinme/internal/config"
	"github.com/theirongolddev/foodinme/internal/pipeline"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.close()
	cfg := e.cfg
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Fprintln(out, "  Status: loaded")
	} else {
		fmt.Fprintln(out, "  Status: using defaults (no config file)")
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [General]")
	fmt.Fprintf(out, "    Data directory:  %s\n", e.files.Root)
	if cfg.General.DataDir == "" && flagDataDir == "" {
		fmt.Fprintln(out, "                     (default, beside the executable)")
	}
	fmt.Fprintf(out, "    Default percent: %s\n", formatPlain(cfg.General.DefaultPercent))
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [Report]")
	fmt.Fprintf(out, "    Detailed: %v\n", cfg.Report.Detailed)
	fmt.Fprintf(out, "    Format:   %s\n", cfg.Report.Format)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [Appearance]")
	fmt.Fprintf(out, "    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [TUI]")
	fmt.Fprintf(out, "    History days: %d\n", cfg.TUI.HistoryDays)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [Goal]")
	if goal, err := e.ledger.Goal(); err == nil {
		fmt.Fprintf(out, "    %s\n", goal)
	} else {
		fmt.Fprintf(out, "    %s\n", err)
	}
	fmt.Fprintln(out)

	fmt.Fprintf(out, "  Cache: %s\n", pipeline.CachePath())
	fmt.Fprintf(out, "  Environment overrides: %s, %s\n", config.EnvDataDir, config.EnvTheme)
	fmt.Fprintln(out, "  Run `foodinme setup` to reconfigure.")
	return nil
}
