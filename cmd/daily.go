package cmd

import (
	"fmt"
	"io"

	"github.com/theirongolddev/foodinme/internal/cli"
	"github.com/theirongolddev/foodinme/internal/model"
	"github.com/theirongolddev/foodinme/internal/pipeline"

	"github.com/spf13/cobra"
)

var (
	flagDays int
	flagItem string
)

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Daily totals table",
	Args:  cobra.NoArgs,
	RunE:  runDaily,
}

func init() {
	dailyCmd.Flags().IntVarP(&flagDays, "days", "n", 0, "Number of days to show (default from config)")
	dailyCmd.Flags().StringVar(&flagItem, "item", "", "Only days that include this item (substring match)")
	rootCmd.AddCommand(dailyCmd)
}

func runDaily(cmd *cobra.Command, _ []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.close()

	days := e.cfg.TUI.HistoryDays
	if flagDays > 0 {
		days = flagDays
	}

	result, err := e.loadDays()
	if err != nil {
		return err
	}

	var goal *model.Nutrition
	if g, err := e.ledger.Goal(); err == nil {
		goal = &g
	}

	until := model.Today()
	since := model.DateOf(until.Time().AddDate(0, 0, -(days - 1)))
	filtered := pipeline.FilterByItem(result.Days, flagItem)

	renderDaily(cmd.OutOrStdout(), pipeline.AggregateDays(filtered, since, until), goal, days)
	return nil
}

func renderDaily(out io.Writer, days []model.DayStats, goal *model.Nutrition, span int) {
	summary := pipeline.Summarize(days, goal)
	if summary.ActiveDays == 0 {
		fmt.Fprintln(out, "\n  No entries for the selected period.")
		return
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, cli.RenderTitle(fmt.Sprintf("DAILY TOTALS  Last %dd", span)))
	fmt.Fprintln(out)

	headers := []string{"Date", "Day", "Entries", "Calories", "Carbs", "Fats", "Proteins"}
	if goal != nil {
		headers = append(headers, "vs Goal")
	}

	rows := make([][]string, 0, len(days)+2)
	calories := make([]float64, len(days))
	for i, d := range days {
		// days is newest first; the sparkline reads left to right.
		calories[len(days)-1-i] = d.Total.Calories
		row := []string{
			d.Date.String(),
			cli.FormatDayOfWeek(int(d.Date.Time().Weekday())),
			cli.FormatNumber(int64(d.Entries)),
			cli.FormatCalories(d.Total.Calories),
			cli.FormatGrams(d.Total.Carbs),
			cli.FormatGrams(d.Total.Fats),
			cli.FormatGrams(d.Total.Proteins),
		}
		if goal != nil {
			delta := ""
			if d.Entries > 0 {
				delta = cli.FormatDelta(d.Total.Calories, goal.Calories)
			}
			row = append(row, delta)
		}
		rows = append(rows, row)
	}

	avg := summary.PerDay
	rows = append(rows, cli.SeparatorRow)
	avgRow := []string{
		"Average",
		"",
		"",
		cli.FormatCalories(avg.Calories),
		cli.FormatGrams(avg.Carbs),
		cli.FormatGrams(avg.Fats),
		cli.FormatGrams(avg.Proteins),
	}
	if goal != nil {
		avgRow = append(avgRow, cli.FormatDelta(avg.Calories, goal.Calories))
	}
	rows = append(rows, avgRow)

	fmt.Fprint(out, cli.RenderTable(cli.Table{Headers: headers, Rows: rows}))
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  Calories  %s\n", cli.RenderSparkline(calories))
	fmt.Fprintf(out, "  %s\n", cli.RenderMuted(fmt.Sprintf("%d of %d days with entries; lightest %s, heaviest %s",
		summary.ActiveDays, summary.TotalDays, summary.BestDay, summary.HeaviestDay)))
	if goal != nil {
		fmt.Fprintf(out, "  %s\n", cli.RenderMuted(fmt.Sprintf("%d of %d active days at or under %s calories",
			summary.DaysOnGoal, summary.ActiveDays, cli.FormatCalories(goal.Calories))))
	}
}
