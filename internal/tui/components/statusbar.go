package components

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/foodinme/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar: key hints on the left,
// load time and skipped-file count on the right.
func RenderStatusBar(width int, dataAge string, skipped int, refreshing bool) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface).
		Width(width)

	warnStyle := lipgloss.NewStyle().
		Foreground(t.Orange).
		Background(t.Surface)

	left := " [?]help  [r]efresh  [q]uit"

	var right []string
	if skipped > 0 {
		right = append(right, warnStyle.Render(fmt.Sprintf("%d skipped", skipped)))
	}
	switch {
	case refreshing:
		right = append(right, "refreshing…")
	case dataAge != "":
		right = append(right, "Data: "+dataAge)
	}
	rightStr := strings.Join(right, "  ") + " "

	padding := width - lipgloss.Width(left) - lipgloss.Width(rightStr)
	if padding < 0 {
		padding = 0
	}

	return style.Render(left + strings.Repeat(" ", padding) + rightStr)
}
