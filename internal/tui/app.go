// Package tui provides the interactive Bubble Tea dashboard for foodinme.
package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/theirongolddev/foodinme/internal/catalog"
	"github.com/theirongolddev/foodinme/internal/ledger"
	"github.com/theirongolddev/foodinme/internal/model"
	"github.com/theirongolddev/foodinme/internal/pipeline"
	"github.com/theirongolddev/foodinme/internal/store"
	"github.com/theirongolddev/foodinme/internal/tui/components"
	"github.com/theirongolddev/foodinme/internal/tui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// Source is where the dashboard reads its data from.
type Source struct {
	Ledger   *ledger.Ledger
	Catalog  *catalog.Catalog
	UserDir  string
	UseCache bool
	Log      *zap.Logger
}

// DataLoadedMsg carries everything the dashboard shows. Err is set when the
// ledger directory could not be read at all; GoalErr when no usable goal
// exists.
type DataLoadedMsg struct {
	Days       []model.DayStats
	Goal       *model.Nutrition
	GoalErr    error
	Foods      []model.FoodItem
	FileErrors int
	LoadTime   time.Duration
	Err        error
}

// ProgressMsg reports ledger file parsing progress.
type ProgressMsg struct {
	Current int
	Total   int
}

// RefreshDataMsg is sent when a background data refresh completes.
type RefreshDataMsg struct {
	Data DataLoadedMsg
}

// App is the root Bubble Tea model.
type App struct {
	src         Source
	historyDays int
	now         func() model.Date

	// Data
	days       []model.DayStats
	goal       *model.Nutrition
	goalErr    error
	foods      []model.FoodItem
	fileErrors int
	loadErr    error
	loaded     bool
	loadTime   time.Duration
	refreshing bool

	// Pre-computed for the current history span
	today   model.DayStats
	history []model.DayStats // newest first, gaps filled
	summary model.SummaryStats
	items   []model.ItemStats

	// UI state
	width       int
	height      int
	activeTab   int
	showHelp    bool
	foodsOffset int

	// Goal entry (huh form), shown on first run or with g
	goalForm *huh.Form
	goalVals *goalValues

	// Loading, fed by the loader goroutine through loadSub
	spinner     spinner.Model
	progress    int
	progressMax int
	loadSub     chan tea.Msg
}

const (
	minTerminalWidth = 60
	maxContentWidth  = 140
	minContentHeight = 5

	minHistoryDays  = 7
	maxHistoryDays  = 365
	historyDaysStep = 7
)

const (
	tabToday = iota
	tabHistory
	tabFoods
)

// NewApp creates the dashboard model. historyDays is the initial span of
// the History tab.
func NewApp(src Source, historyDays int) App {
	if src.Log == nil {
		src.Log = zap.NewNop()
	}
	if historyDays < 1 {
		historyDays = minHistoryDays
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent).Background(theme.Active.Surface)

	return App{
		src:         src,
		historyDays: historyDays,
		now:         model.Today,
		spinner:     sp,
		loadSub:     make(chan tea.Msg, 1),
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnableMouseCellMotion,
		loadDataCmd(a.src, a.loadSub),
		a.spinner.Tick,
	)
}

func (a *App) apply(msg DataLoadedMsg) {
	a.days = msg.Days
	a.goal = msg.Goal
	a.goalErr = msg.GoalErr
	a.foods = msg.Foods
	a.fileErrors = msg.FileErrors
	a.loadErr = msg.Err
	a.loadTime = msg.LoadTime
	a.recompute()
}

func (a *App) recompute() {
	today := a.now()

	a.today = model.DayStats{Date: today}
	for _, d := range a.days {
		if d.Date == today {
			a.today = d
			break
		}
	}

	since := model.DateOf(today.Time().AddDate(0, 0, -(a.historyDays - 1)))
	a.history = pipeline.AggregateDays(a.days, since, today)
	a.summary = pipeline.Summarize(a.history, a.goal)
	a.items = pipeline.AggregateItems(pipeline.FilterByDate(a.days, since, today))

	if a.foodsOffset > len(a.foods)-1 {
		a.foodsOffset = len(a.foods) - 1
	}
	if a.foodsOffset < 0 {
		a.foodsOffset = 0
	}
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.goalForm != nil {
			a.goalForm = a.goalForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.MouseMsg:
		if !a.loaded || a.showHelp || a.goalForm != nil {
			return a, nil
		}

		switch msg.Button {
		case tea.MouseButtonWheelUp:
			if a.activeTab == tabFoods {
				a.scrollFoods(-1)
			}
		case tea.MouseButtonWheelDown:
			if a.activeTab == tabFoods {
				a.scrollFoods(1)
			}
		case tea.MouseButtonLeft:
			// The tab bar is the first line.
			if msg.Y == 0 {
				if tab := a.tabAtX(msg.X); tab >= 0 {
					a.activeTab = tab
				}
			}
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		if !a.loaded {
			return a, nil
		}

		// The goal form intercepts all keys while open; esc skips it
		if a.goalForm != nil {
			if key == "esc" {
				a.goalForm = nil
				return a, nil
			}
			return a.updateGoalForm(msg)
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		switch key {
		case "q":
			return a, tea.Quit
		case "r":
			if !a.refreshing {
				a.refreshing = true
				return a, refreshDataCmd(a.src)
			}
			return a, nil
		case "g":
			return a.openGoalForm()
		case "left":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
			return a, nil
		case "right", "tab":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
			return a, nil
		}

		if a.activeTab == tabHistory {
			switch key {
			case "+", "=":
				a.setHistoryDays(a.historyDays + historyDaysStep)
				return a, nil
			case "-":
				a.setHistoryDays(a.historyDays - historyDaysStep)
				return a, nil
			}
		}

		if a.activeTab == tabFoods {
			switch key {
			case "j", "down":
				a.scrollFoods(1)
				return a, nil
			case "k", "up":
				a.scrollFoods(-1)
				return a, nil
			}
		}

		if runes := []rune(key); len(runes) == 1 {
			if idx := components.TabIdxByKey(runes[0]); idx >= 0 {
				a.activeTab = idx
			}
		}
		return a, nil

	case DataLoadedMsg:
		a.apply(msg)
		a.loaded = true

		// First run: no goal file yet
		if errors.Is(msg.GoalErr, model.ErrMissingFile) {
			return a.openGoalForm()
		}
		return a, nil

	case ProgressMsg:
		a.progress = msg.Current
		a.progressMax = msg.Total
		return a, waitForLoadMsg(a.loadSub)

	case RefreshDataMsg:
		a.refreshing = false
		if msg.Data.Err == nil {
			a.apply(msg.Data)
		} else {
			a.loadErr = msg.Data.Err
		}
		return a, nil

	case spinner.TickMsg:
		if !a.loaded {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	// Forward everything else (cursor blinks etc.) to the goal form
	if a.goalForm != nil {
		return a.updateGoalForm(msg)
	}

	return a, nil
}

func (a *App) setHistoryDays(n int) {
	if n < minHistoryDays {
		n = minHistoryDays
	}
	if n > maxHistoryDays {
		n = maxHistoryDays
	}
	a.historyDays = n
	a.recompute()
}

func (a *App) scrollFoods(delta int) {
	a.foodsOffset += delta
	if a.foodsOffset > len(a.foods)-1 {
		a.foodsOffset = len(a.foods) - 1
	}
	if a.foodsOffset < 0 {
		a.foodsOffset = 0
	}
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if !a.loaded {
		return a.viewLoading()
	}

	if a.goalForm != nil {
		return a.goalForm.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  foodinme needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewLoading() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(2, 4)

	logoStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	subtitleStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	countStyle := lipgloss.NewStyle().
		Foreground(t.TextPrimary).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(logoStyle.Render("◈ foodinme"))
	b.WriteString(subtitleStyle.Render(" · Nutrition Tracker"))
	b.WriteString("\n\n")

	if a.progressMax > 0 {
		barW := 40
		if barW > a.width-30 {
			barW = a.width - 30
		}
		if barW < 20 {
			barW = 20
		}
		pct := float64(a.progress) / float64(a.progressMax)
		b.WriteString(a.spinner.View())
		b.WriteString(subtitleStyle.Render(" Reading ledger\n\n"))
		b.WriteString(components.ProgressBar(pct, barW))
		b.WriteString("\n")
		b.WriteString(countStyle.Render(fmt.Sprintf("%d", a.progress)))
		b.WriteString(subtitleStyle.Render(" / "))
		b.WriteString(countStyle.Render(fmt.Sprintf("%d", a.progressMax)))
		b.WriteString(subtitleStyle.Render(" days"))
	} else {
		b.WriteString(a.spinner.View())
		b.WriteString(subtitleStyle.Render(" Looking for ledger files..."))
	}

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Cyan).Background(t.Surface).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	bindings := []struct{ key, desc string }{
		{"t h f", "Jump to Today / History / Foods"},
		{"← →", "Previous / Next tab"},
		{"+ -", "Widen / narrow history by a week"},
		{"j k", "Scroll the food list"},
		{"g", "Edit daily goal"},
		{"r", "Reload data"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")
	for _, bind := range bindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-6s", bind.key)),
			descStyle.Render(bind.desc))
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()

	infoStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	accentStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)

	info := infoStyle.Render(" ") + accentStyle.Render(a.today.Date.String()) +
		infoStyle.Render(" │ ") + accentStyle.Render(fmt.Sprintf("%dd", a.historyDays))
	if a.goal != nil {
		info += infoStyle.Render(" │ goal ") + accentStyle.Render(model.FormatGoal(a.goal.Calories)+" kcal")
	} else {
		info += infoStyle.Render(" │ no goal set")
	}

	header := components.RenderTabBar(a.activeTab, w) + "\n" +
		lipgloss.NewStyle().Background(t.Surface).Width(w).Render(info)

	dataAge := fmt.Sprintf("%.1fs", a.loadTime.Seconds())
	statusBar := components.RenderStatusBar(w, dataAge, a.fileErrors, a.refreshing)

	contentH := a.height - lipgloss.Height(header) - lipgloss.Height(statusBar)
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.activeTab {
	case tabToday:
		content = a.renderTodayTab(cw)
	case tabHistory:
		content = a.renderHistoryTab(cw, contentH)
	case tabFoods:
		content = a.renderFoodsTab(cw, contentH)
	}
	if a.loadErr != nil {
		content = components.ContentCard("Could not read ledger", a.loadErr.Error(), cw) + "\n" + content
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
	return lipgloss.Place(w, a.height, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Loading ────────────────────────────────────────────────────

// loadDataCmd starts loading in a background goroutine. It streams
// ProgressMsg updates and a final DataLoadedMsg through sub.
func loadDataCmd(src Source, sub chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		go func() {
			// Non-blocking send so workers aren't stalled; the next
			// update catches up.
			progressFn := func(current, total int) {
				select {
				case sub <- ProgressMsg{Current: current, Total: total}:
				default:
				}
			}
			sub <- loadData(src, progressFn)
		}()

		return <-sub
	}
}

// waitForLoadMsg blocks until the next message arrives from the loader goroutine.
func waitForLoadMsg(sub chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return <-sub
	}
}

// refreshDataCmd reloads in the background without progress UI.
func refreshDataCmd(src Source) tea.Cmd {
	return func() tea.Msg {
		return RefreshDataMsg{Data: loadData(src, nil)}
	}
}

// loadData reads the ledger days, the goal and the catalog.
func loadData(src Source, progressFn pipeline.ProgressFunc) DataLoadedMsg {
	start := time.Now()
	var msg DataLoadedMsg

	result, err := loadDays(src, progressFn)
	if err != nil {
		msg.Err = err
	} else {
		msg.Days = result.Days
		msg.FileErrors = len(result.FileErrors)
	}

	if goal, err := src.Ledger.Goal(); err != nil {
		msg.GoalErr = err
	} else {
		msg.Goal = &goal
	}

	foods, err := src.Catalog.List()
	if err != nil {
		src.Log.Warn("reading catalog", zap.Error(err))
	}
	msg.Foods = foods

	msg.LoadTime = time.Since(start)
	return msg
}

func loadDays(src Source, progressFn pipeline.ProgressFunc) (*pipeline.LoadResult, error) {
	if src.UseCache {
		cache, err := store.Open(pipeline.CachePath())
		if err != nil {
			src.Log.Warn("cache unavailable, doing full parse", zap.Error(err))
		} else {
			cr, loadErr := pipeline.LoadWithCache(src.UserDir, cache, progressFn)
			_ = cache.Close()
			if loadErr == nil {
				return &cr.LoadResult, nil
			}
			src.Log.Warn("cache error, falling back to full parse", zap.Error(loadErr))
		}
	}
	return pipeline.Load(src.UserDir, progressFn)
}

// ─── Helpers ────────────────────────────────────────────────────

// chartDateLabels builds compact x-axis labels for days given newest first.
// The first label and each month boundary show the month abbreviation;
// everything else is the day number. Labels come back oldest first.
func chartDateLabels(days []model.DayStats) []string {
	n := len(days)
	labels := make([]string, n)
	prevMonth := time.Month(0)
	for i := 0; i < n; i++ {
		d := days[n-1-i].Date
		switch {
		case i == 0 || (d.Month != prevMonth && i != n-1):
			labels[i] = d.Time().Format("Jan")
		default:
			labels[i] = fmt.Sprintf("%d", d.Day)
		}
		prevMonth = d.Month
	}
	return labels
}

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// fillLinesWithBackground pads each line to width w with the background
// color so gaps between cards are not left unstyled.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
	}
	return strings.Join(lines, "\n")
}

// ─── Mouse Support ──────────────────────────────────────────────

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes follow the widths RenderTabBar draws.
func (a App) tabAtX(x int) int {
	pos := 0
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)
		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW
		// One-column separator between tabs.
		pos++
	}
	return -1
}
