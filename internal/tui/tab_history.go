package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/foodinme/internal/cli"
	"github.com/theirongolddev/foodinme/internal/model"
	"github.com/theirongolddev/foodinme/internal/tui/components"
	"github.com/theirongolddev/foodinme/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

const topItems = 8

func (a App) renderHistoryTab(cw, h int) string {
	t := theme.Active
	s := a.summary

	onGoal := components.Metric{Label: "On goal", Value: "-"}
	if s.HasGoal {
		onGoal.Value = fmt.Sprintf("%d / %d", s.DaysOnGoal, s.ActiveDays)
		onGoal.Delta = "days at or under"
	}
	avg := components.Metric{Label: "Avg calories", Value: cli.FormatCalories(s.PerDay.Calories)}
	if s.HasGoal && s.ActiveDays > 0 {
		avg.Delta = cli.FormatDelta(s.PerDay.Calories, s.Goal.Calories) + " vs goal"
		avg.DeltaColor = t.GoalColor(s.PerDay.Calories / s.Goal.Calories)
	}

	metrics := []components.Metric{
		avg,
		{Label: "Active days", Value: fmt.Sprintf("%d / %d", s.ActiveDays, s.TotalDays)},
		onGoal,
		{Label: "Entries", Value: cli.FormatNumber(int64(s.Entries))},
	}

	var b strings.Builder
	b.WriteString(components.MetricCardRow(metrics, cw))
	b.WriteString("\n")

	// Chart gets whatever height is left above the items card.
	chartH := h - 4 - (topItems + 4)
	if chartH < 6 {
		chartH = 6
	}
	values := make([]float64, len(a.history))
	for i, d := range a.history {
		values[len(values)-1-i] = d.Total.Calories
	}
	goal := 0.0
	if a.goal != nil {
		goal = a.goal.Calories
	}
	chart := components.BarChart(values, chartDateLabels(a.history),
		theme.Active.NutrientColors()[0], goal, components.CardInnerWidth(cw), chartH)
	b.WriteString(components.ContentCard(fmt.Sprintf("Calories, last %d days", a.historyDays), chart, cw))
	b.WriteString("\n")

	b.WriteString(components.ContentCard("Top items", a.renderTopItems(components.CardInnerWidth(cw)), cw))
	return b.String()
}

func (a App) renderTopItems(innerW int) string {
	t := theme.Active
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)

	if len(a.items) == 0 {
		return mutedStyle.Render("Nothing recorded in this range.")
	}

	nameW := innerW - 3*11
	if nameW < 12 {
		nameW = 12
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-*s %10s %10s %10s", nameW, "Item", "Days", "Calories", "Share")))
	for i, it := range a.items {
		if i == topItems {
			break
		}
		b.WriteString("\n")
		b.WriteString(rowStyle.Render(fmt.Sprintf("%-*s %10d %10s %10s",
			nameW, truncStr(model.DisplayName(it.Name), nameW),
			it.Days,
			cli.FormatCalories(it.Total.Calories),
			fmt.Sprintf("%.1f%%", it.SharePercent))))
	}
	return b.String()
}
