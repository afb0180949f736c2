package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/theirongolddev/foodinme/internal/config"
	"github.com/theirongolddev/foodinme/internal/model"
	"github.com/theirongolddev/foodinme/internal/tui/theme"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	Args:  cobra.NoArgs,
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

// setupValues are the form fields, kept as strings where huh edits text.
type setupValues struct {
	dataDir     string
	percent     string
	format      string
	detailed    bool
	theme       string
	historyDays string
	goal        string
}

func newSetupValues(cfg config.Config, goal string) setupValues {
	return setupValues{
		dataDir:     cfg.General.DataDir,
		percent:     formatPlain(cfg.General.DefaultPercent),
		format:      cfg.Report.Format,
		detailed:    cfg.Report.Detailed,
		theme:       cfg.Appearance.Theme,
		historyDays: strconv.Itoa(cfg.TUI.HistoryDays),
		goal:        goal,
	}
}

// apply copies the form values onto cfg. Values were validated by the form.
func (v setupValues) apply(cfg *config.Config) {
	cfg.General.DataDir = v.dataDir
	cfg.General.DefaultPercent, _ = strconv.ParseFloat(v.percent, 64)
	cfg.Report.Format = v.format
	cfg.Report.Detailed = v.detailed
	cfg.Appearance.Theme = v.theme
	cfg.TUI.HistoryDays, _ = strconv.Atoi(v.historyDays)
}

func runSetup(cmd *cobra.Command, _ []string) error {
	if !isatty.IsTerminal(os.Stdin.Fd()) {
		return errors.New("setup needs an interactive terminal; edit " + config.ConfigPath() + " instead")
	}

	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.close()

	// The file on disk, not the env-overlaid view, is what gets saved.
	cfg, err := config.LoadFile(config.ConfigPath())
	if err != nil {
		cfg = config.DefaultConfig()
	}

	goalText := ""
	if g, err := e.ledger.Goal(); err == nil {
		goalText = fmt.Sprintf("%s-%s-%s-%s",
			model.FormatGoal(g.Calories), model.FormatGoal(g.Carbs),
			model.FormatGoal(g.Fats), model.FormatGoal(g.Proteins))
	}
	vals := newSetupValues(cfg, goalText)

	if err := newSetupForm(&vals, e.files.Root).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Fprintln(cmd.OutOrStdout(), "  Setup cancelled, nothing saved.")
			return nil
		}
		return err
	}

	vals.apply(&cfg)
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  Saved to %s\n", config.ConfigPath())

	if vals.goal != "" && vals.goal != goalText {
		goal, _ := parseGoal(vals.goal)
		// The goal lives with the data, which may have just moved.
		target := newEnv(cfg, resolveDataDir(cfg), e.log)
		if err := setGoal(target, out, goal); err != nil {
			return err
		}
	}

	fmt.Fprintln(out, "  Run `foodinme setup` anytime to reconfigure.")
	fmt.Fprintln(out)
	return nil
}

func newSetupForm(v *setupValues, currentRoot string) *huh.Form {
	themes := huh.NewOptions(theme.Names()...)
	formats := make([]huh.Option[string], 0, len(config.ReportFormats))
	for _, f := range config.ReportFormats {
		formats = append(formats, huh.NewOption(f, f))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to foodinme!").
				Description("Data is currently read from "+currentRoot),
			huh.NewInput().
				Title("Data directory").
				Description("Leave blank to keep data/ beside the executable.").
				Value(&v.dataDir),
			huh.NewInput().
				Title("Daily goal").
				Description("calories-carbs-fats-proteins, e.g. 2000-250-70-100. Blank to skip.").
				Value(&v.goal).
				Validate(func(s string) error {
					if s == "" {
						return nil
					}
					if _, err := parseGoal(s); err != nil {
						return errors.New("expected four whole numbers separated by '-'")
					}
					return nil
				}),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Default percent for eat").
				Value(&v.percent).
				Validate(func(s string) error {
					n, err := strconv.ParseFloat(s, 64)
					if err != nil || n < 0 {
						return errors.New("enter a non-negative number")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Report format").
				Options(formats...).
				Value(&v.format),
			huh.NewConfirm().
				Title("Detailed reports by default?").
				Value(&v.detailed),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themes...).
				Value(&v.theme),
			huh.NewInput().
				Title("Dashboard history (days)").
				Value(&v.historyDays).
				Validate(func(s string) error {
					n, err := strconv.Atoi(s)
					if err != nil || n < 1 {
						return errors.New("enter a whole number of days, at least 1")
					}
					return nil
				}),
		),
	)
}

// formatPlain renders a float without a trailing ".0".
func formatPlain(f float64) string {
	return model.FormatGoal(f)
}
