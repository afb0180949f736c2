package theme

import "testing"

func TestByNameFallsBack(t *testing.T) {
	if got := ByName("tokyo-night").Name; got != "tokyo-night" {
		t.Errorf("ByName(tokyo-night) = %s", got)
	}
	if got := ByName("no-such-theme").Name; got != FlexokiDark.Name {
		t.Errorf("unknown theme should fall back to %s, got %s", FlexokiDark.Name, got)
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if len(names) != len(All) || names[0] != "flexoki-dark" {
		t.Errorf("Names() = %v", names)
	}
}

func TestGoalColor(t *testing.T) {
	th := FlexokiDark
	tests := []struct {
		ratio float64
		want  string
	}{
		{0.5, string(th.Green)},
		{0.95, string(th.Yellow)},
		{1.0, string(th.Yellow)},
		{1.2, string(th.Red)},
	}
	for _, tt := range tests {
		if got := string(th.GoalColor(tt.ratio)); got != tt.want {
			t.Errorf("GoalColor(%v) = %s, want %s", tt.ratio, got, tt.want)
		}
	}
}
