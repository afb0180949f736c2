package cli

import (
	"strings"
	"testing"
)

func TestRenderTable(t *testing.T) {
	out := RenderTable(Table{
		Title:   "Foods",
		Headers: []string{"Name", "Calories"},
		Rows: [][]string{
			{"oats", "150"},
			SeparatorRow,
			{"Total", "150"},
		},
	})

	for _, want := range []string{"Foods", "Name", "Calories", "oats", "Total", "╭", "╯"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
	// title, top, header, header rule, row, separator, row, bottom
	if lines := strings.Count(out, "\n"); lines != 8 {
		t.Errorf("line count = %d, want 8:\n%s", lines, out)
	}
}

func TestRenderTable_Empty(t *testing.T) {
	if out := RenderTable(Table{}); out != "" {
		t.Errorf("empty table = %q", out)
	}
}

func TestRenderGoalBar(t *testing.T) {
	if got := RenderGoalBar(10, 0, 20); got != "" {
		t.Errorf("zero goal = %q, want empty", got)
	}
	half := RenderGoalBar(1000, 2000, 10)
	if !strings.Contains(half, "50.0%") {
		t.Errorf("half bar = %q", half)
	}
	over := RenderGoalBar(3000, 2000, 10)
	if !strings.Contains(over, "150.0%") || strings.Contains(over, "░") {
		t.Errorf("over bar = %q, want full bar at 150%%", over)
	}
}

func TestRenderSparkline(t *testing.T) {
	if got := RenderSparkline([]float64{0, 50, 100}); got != "▁▄█" {
		t.Errorf("sparkline = %q", got)
	}
	if got := RenderSparkline([]float64{0, 0}); got != "▁▁" {
		t.Errorf("flat sparkline = %q", got)
	}
}
