package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/foodinme/internal/tui/components"
	"github.com/theirongolddev/foodinme/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderFoodsTab(cw, h int) string {
	t := theme.Active
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)

	title := fmt.Sprintf("Food inventory (%d)", len(a.foods))
	if len(a.foods) == 0 {
		return components.ContentCard(title,
			mutedStyle.Render(`No foods yet. Add one with "foodinme add-food name-calories-carbs-fats-proteins".`), cw)
	}

	innerW := components.CardInnerWidth(cw)
	nameW := innerW - 4*11
	if nameW < 12 {
		nameW = 12
	}

	// Card border, title and header row take four lines.
	visible := h - 4
	if visible < 1 {
		visible = 1
	}
	end := a.foodsOffset + visible
	if end > len(a.foods) {
		end = len(a.foods)
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-*s %10s %10s %10s %10s",
		nameW, "Name", "Calories", "Carbs", "Fats", "Proteins")))
	for _, f := range a.foods[a.foodsOffset:end] {
		b.WriteString("\n")
		b.WriteString(rowStyle.Render(itemRow(f.Name, f.Nutrition, nameW)))
	}
	if end < len(a.foods) {
		title += fmt.Sprintf("  %d-%d, j/k to scroll", a.foodsOffset+1, end)
	}

	return components.ContentCard(title, b.String(), cw)
}
