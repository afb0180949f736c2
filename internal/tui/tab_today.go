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

func (a App) renderTodayTab(cw int) string {
	t := theme.Active
	day := a.today

	remaining := components.Metric{Label: "Remaining", Value: "-"}
	if a.goal != nil {
		left := a.goal.Calories - day.Total.Calories
		remaining.Value = cli.FormatCalories(left)
		remaining.Delta = "of " + cli.FormatCalories(a.goal.Calories) + " kcal"
		remaining.DeltaColor = t.GoalColor(day.Total.Calories / a.goal.Calories)
	}

	metrics := []components.Metric{
		{Label: "Calories", Value: cli.FormatCalories(day.Total.Calories)},
		remaining,
		{Label: "Entries", Value: cli.FormatNumber(int64(day.Entries))},
		{Label: "Items", Value: cli.FormatNumber(int64(len(day.Items)))},
	}

	var b strings.Builder
	b.WriteString(components.MetricCardRow(metrics, cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("Against your daily goal", a.renderGoalBars(cw), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("What you ate", a.renderTodayItems(components.CardInnerWidth(cw)), cw))
	return b.String()
}

func (a App) renderGoalBars(cw int) string {
	t := theme.Active
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	if a.goal == nil {
		msg := "No goal set. Press g to set one."
		if a.goalErr != nil {
			msg = a.goalErr.Error() + " Press g to set one."
		}
		return mutedStyle.Render(msg)
	}

	consumed := a.today.Total
	rows := []struct {
		label    string
		consumed float64
		goal     float64
		unit     func(float64) string
	}{
		{"Calories", consumed.Calories, a.goal.Calories, cli.FormatCalories},
		{"Carbs", consumed.Carbs, a.goal.Carbs, cli.FormatGrams},
		{"Fats", consumed.Fats, a.goal.Fats, cli.FormatGrams},
		{"Proteins", consumed.Proteins, a.goal.Proteins, cli.FormatGrams},
	}

	const labelW = 9
	const valueW = 20
	barW := components.CardInnerWidth(cw) - labelW - valueW - 10
	if barW < 10 {
		barW = 10
	}

	lines := make([]string, len(rows))
	for i, r := range rows {
		value := fmt.Sprintf("%*s", valueW, r.unit(r.consumed)+" / "+r.unit(r.goal))
		lines[i] = components.GoalBar(r.label, r.consumed, r.goal, value, labelW, barW)
	}
	return strings.Join(lines, "\n")
}

func (a App) renderTodayItems(innerW int) string {
	t := theme.Active
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)

	if len(a.today.Items) == 0 {
		return mutedStyle.Render(fmt.Sprintf("Nothing recorded for %s yet.", a.today.Date))
	}

	nameW := innerW - 4*11
	if nameW < 12 {
		nameW = 12
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-*s %10s %10s %10s %10s",
		nameW, "Item", "Calories", "Carbs", "Fats", "Proteins")))
	for _, it := range a.today.Items {
		b.WriteString("\n")
		b.WriteString(rowStyle.Render(itemRow(it.Name, it.Nutrition, nameW)))
	}
	return b.String()
}

func itemRow(name string, n model.Nutrition, nameW int) string {
	return fmt.Sprintf("%-*s %10s %10s %10s %10s",
		nameW, truncStr(model.DisplayName(name), nameW),
		cli.FormatCalories(n.Calories),
		cli.FormatGrams(n.Carbs),
		cli.FormatGrams(n.Fats),
		cli.FormatGrams(n.Proteins))
}
