package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/theirongolddev/foodinme/internal/tui/theme"
)

func init() {
	// Force TrueColor output so ANSI codes are generated in tests
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestLayoutRowSumsToTotal(t *testing.T) {
	for _, tc := range []struct{ total, n int }{{80, 3}, {81, 4}, {7, 7}, {100, 1}} {
		widths := LayoutRow(tc.total, tc.n)
		sum := 0
		for _, w := range widths {
			sum += w
		}
		if sum != tc.total {
			t.Errorf("LayoutRow(%d, %d) = %v, sums to %d", tc.total, tc.n, widths, sum)
		}
	}
	if LayoutRow(10, 0) != nil {
		t.Error("LayoutRow with n=0 should be nil")
	}
}

func TestCardRowPadsShortCards(t *testing.T) {
	theme.SetActive("flexoki-dark")

	shortCard := ContentCard("Short", "Content", 22)
	tallCard := ContentCard("Tall", "Line 1\nLine 2\nLine 3\nLine 4\nLine 5", 22)

	shortLines := lipgloss.Height(shortCard)
	tallLines := lipgloss.Height(tallCard)
	if shortLines >= tallLines {
		t.Fatal("test setup error: short card should be shorter than tall card")
	}

	joined := CardRow([]string{tallCard, shortCard})
	lines := strings.Split(joined, "\n")
	if len(lines) != tallLines {
		t.Fatalf("joined height = %d, want %d", len(lines), tallLines)
	}

	want := lipgloss.Width(tallCard) + lipgloss.Width(shortCard)
	for i, line := range lines {
		if w := lipgloss.Width(line); w != want {
			t.Errorf("line %d width = %d, want %d", i, w, want)
		}
		// Padding below the short card still carries background styling.
		if i >= shortLines && !strings.Contains(line, "\x1b[") {
			t.Errorf("line %d has no ANSI codes", i)
		}
	}
}

func TestMetricCardRowWidth(t *testing.T) {
	theme.SetActive("flexoki-dark")

	row := MetricCardRow([]Metric{
		{Label: "Calories", Value: "1,250"},
		{Label: "Remaining", Value: "750", Delta: "of 2,000", DeltaColor: theme.Active.Green},
		{Label: "Entries", Value: "4"},
	}, 90)

	if w := lipgloss.Width(row); w != 90 {
		t.Errorf("row width = %d, want 90", w)
	}
	if !strings.Contains(row, "Remaining") || !strings.Contains(row, "of 2,000") {
		t.Errorf("row missing content:\n%s", row)
	}
}

func TestTabVisualWidthMatchesRender(t *testing.T) {
	for active := range Tabs {
		bar := RenderTabBar(active, 0)
		want := 0
		for i, tab := range Tabs {
			want += TabVisualWidth(tab, i == active)
		}
		want += len(Tabs) - 1
		if got := lipgloss.Width(bar); got != want {
			t.Errorf("active=%d: rendered width %d, want %d", active, got, want)
		}
	}
}

func TestTabIdxByKey(t *testing.T) {
	if got := TabIdxByKey('h'); got != 1 {
		t.Errorf("TabIdxByKey('h') = %d, want 1", got)
	}
	if got := TabIdxByKey('z'); got != -1 {
		t.Errorf("TabIdxByKey('z') = %d, want -1", got)
	}
}

func TestBarChartKeepsMostRecent(t *testing.T) {
	theme.SetActive("flexoki-dark")

	values := make([]float64, 60)
	labels := make([]string, 60)
	for i := range values {
		values[i] = float64(i * 10)
		labels[i] = "x"
	}
	labels[59] = "END"

	chart := BarChart(values, labels, theme.Active.Accent, 0, 40, 8)
	if !strings.Contains(chart, "END") {
		t.Errorf("newest label should survive trimming:\n%s", chart)
	}
}

func TestBarChartGoalLine(t *testing.T) {
	theme.SetActive("flexoki-dark")

	chart := BarChart([]float64{1000, 2500, 1800}, []string{"a", "b", "c"}, theme.Active.Accent, 2000, 40, 10)
	if !strings.Contains(chart, "┄") {
		t.Errorf("expected goal line:\n%s", chart)
	}

	plain := BarChart([]float64{1000, 2500, 1800}, nil, theme.Active.Accent, 0, 40, 10)
	if strings.Contains(plain, "┄") {
		t.Errorf("no goal line expected without a goal:\n%s", plain)
	}
}

func TestGoalBar(t *testing.T) {
	theme.SetActive("flexoki-dark")

	over := GoalBar("Calories", 2500, 2000, "2,500 / 2,000", 10, 20)
	if !strings.Contains(over, "125%") {
		t.Errorf("over-goal bar should show 125%%: %q", over)
	}

	none := GoalBar("Fats", 30, 0, "30", 10, 20)
	if !strings.Contains(none, "n/a") {
		t.Errorf("zero goal should read n/a: %q", none)
	}
}

func TestFormatChartLabel(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{500, "500"},
		{1000, "1k"},
		{1500, "1.5k"},
		{20000, "20k"},
		{0.5, "0.50"},
	}
	for _, tt := range tests {
		if got := formatChartLabel(tt.in); got != tt.want {
			t.Errorf("formatChartLabel(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
