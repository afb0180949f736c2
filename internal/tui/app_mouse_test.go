package tui

import (
	"testing"

	"github.com/theirongolddev/foodinme/internal/tui/components"

	tea "github.com/charmbracelet/bubbletea"
)

func TestTabAtXMatchesTabWidths(t *testing.T) {
	for active := range components.Tabs {
		a := App{activeTab: active}
		pos := 0

		for i, tab := range components.Tabs {
			w := components.TabVisualWidth(tab, i == active)
			x := pos + w/2 // midpoint inside this tab
			if got := a.tabAtX(x); got != i {
				t.Fatalf("active=%d x=%d -> tab=%d, want %d", active, x, got, i)
			}
			pos += w + 1 // separator
		}

		if got := a.tabAtX(pos + 5); got != -1 {
			t.Errorf("active=%d: x past the last tab -> %d, want -1", active, got)
		}
	}
}

func TestMouseClickSelectsTab(t *testing.T) {
	a := loadedApp(t)

	// "Today" is active (7 cols), separator, then "[H]istory".
	x := components.TabVisualWidth(components.Tabs[0], true) + 2
	m, _ := a.Update(tea.MouseMsg{X: x, Y: 0, Button: tea.MouseButtonLeft})
	if got := m.(App).activeTab; got != tabHistory {
		t.Errorf("activeTab = %d, want %d", got, tabHistory)
	}

	// Clicks below the tab bar are ignored.
	m, _ = a.Update(tea.MouseMsg{X: x, Y: 3, Button: tea.MouseButtonLeft})
	if got := m.(App).activeTab; got != tabToday {
		t.Errorf("activeTab = %d, want %d", got, tabToday)
	}
}
