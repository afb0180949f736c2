package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/theirongolddev/foodinme/internal/catalog"
	"github.com/theirongolddev/foodinme/internal/fileutil"
	"github.com/theirongolddev/foodinme/internal/ledger"
	"github.com/theirongolddev/foodinme/internal/model"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap/zaptest"
)

var fixedToday = model.NewDate(2024, time.March, 10)

func fixtureDays() []model.DayStats {
	return []model.DayStats{
		{
			Date:    fixedToday,
			Entries: 3,
			Total:   model.Nutrition{Calories: 1250, Carbs: 140, Fats: 40, Proteins: 60},
			Items: []model.ItemTotal{
				{Name: "oatmeal", Nutrition: model.Nutrition{Calories: 300, Carbs: 54, Fats: 5, Proteins: 10}},
				{Name: "peanut_butter", Nutrition: model.Nutrition{Calories: 950, Carbs: 86, Fats: 35, Proteins: 50}},
			},
		},
		{
			Date:    model.NewDate(2024, time.March, 8),
			Entries: 1,
			Total:   model.Nutrition{Calories: 2400, Carbs: 300, Fats: 90, Proteins: 80},
			Items: []model.ItemTotal{
				{Name: "pizza", Nutrition: model.Nutrition{Calories: 2400, Carbs: 300, Fats: 90, Proteins: 80}},
			},
		},
	}
}

func newTestApp(src Source) App {
	a := NewApp(src, 7)
	a.now = func() model.Date { return fixedToday }
	return a
}

func update(t *testing.T, a App, msg tea.Msg) App {
	t.Helper()
	m, _ := a.Update(msg)
	return m.(App)
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// loadedApp returns a dashboard sized 120x40 holding fixtureDays and a goal.
func loadedApp(t *testing.T) App {
	t.Helper()
	goal := model.Nutrition{Calories: 2000, Carbs: 250, Fats: 70, Proteins: 100}
	a := newTestApp(Source{})
	a = update(t, a, tea.WindowSizeMsg{Width: 120, Height: 40})
	return update(t, a, DataLoadedMsg{
		Days: fixtureDays(),
		Goal: &goal,
		Foods: []model.FoodItem{
			{Name: "oatmeal", Nutrition: model.Nutrition{Calories: 150, Carbs: 27, Fats: 2.5, Proteins: 5}},
			{Name: "pizza", Nutrition: model.Nutrition{Calories: 285, Carbs: 36, Fats: 10, Proteins: 12}},
		},
	})
}

func TestDataLoadedComputesToday(t *testing.T) {
	a := loadedApp(t)

	if !a.loaded {
		t.Fatal("app should be loaded")
	}
	if a.goalForm != nil {
		t.Error("goal form should stay closed when a goal exists")
	}
	if a.today.Entries != 3 || a.today.Total.Calories != 1250 {
		t.Errorf("today = %+v", a.today)
	}
	if len(a.history) != 7 {
		t.Fatalf("history has %d days, want 7", len(a.history))
	}
	if a.history[0].Date != fixedToday {
		t.Errorf("history should be newest first, got %s", a.history[0].Date)
	}
	if a.summary.ActiveDays != 2 || a.summary.DaysOnGoal != 1 {
		t.Errorf("summary = %+v", a.summary)
	}
	if len(a.items) != 3 || a.items[0].Name != "pizza" {
		t.Errorf("items = %+v", a.items)
	}

	view := a.View()
	for _, want := range []string{"Calories", "Remaining", "750", "oatmeal", "peanut butter", "3-10-2024"} {
		if !strings.Contains(view, want) {
			t.Errorf("Today view missing %q", want)
		}
	}
}

func TestTodayWithoutEntries(t *testing.T) {
	a := newTestApp(Source{})
	a = update(t, a, tea.WindowSizeMsg{Width: 100, Height: 40})
	a = update(t, a, DataLoadedMsg{GoalErr: model.NewError(model.KindParse, "Invalid goal file.", nil)})

	if a.goalForm != nil {
		t.Error("an invalid goal file should not open the first-run form")
	}
	view := a.View()
	if !strings.Contains(view, "Nothing recorded for 3-10-2024 yet.") {
		t.Error("expected empty-day message")
	}
	if !strings.Contains(view, "Invalid goal file.") {
		t.Error("expected goal error in place of the bars")
	}
}

func TestMissingGoalOpensForm(t *testing.T) {
	a := newTestApp(Source{})
	a = update(t, a, tea.WindowSizeMsg{Width: 100, Height: 40})
	a = update(t, a, DataLoadedMsg{
		GoalErr: model.NewError(model.KindMissingFile, "Missing goal file.", nil),
	})

	if a.goalForm == nil {
		t.Fatal("first run should open the goal form")
	}
	if view := a.View(); !strings.Contains(view, "Daily nutrition goal") {
		t.Errorf("expected goal form view, got:\n%s", view)
	}

	// esc skips the form; other keys no longer reach it.
	a = update(t, a, tea.KeyMsg{Type: tea.KeyEsc})
	if a.goalForm != nil {
		t.Error("esc should close the goal form")
	}
	a = update(t, a, keyRune('g'))
	if a.goalForm == nil {
		t.Error("g should reopen the goal form")
	}
}

func TestSaveGoal(t *testing.T) {
	log := zaptest.NewLogger(t)
	files := fileutil.New(t.TempDir(), log)
	cat := catalog.New(files, log)
	led := ledger.New(files, cat, log)

	a := newTestApp(Source{Ledger: led, Catalog: cat, Log: log})
	a.goalVals = &goalValues{calories: "2000", carbs: " 250", fats: "70", proteins: "100"}
	a.saveGoal()

	if a.goal == nil || a.goal.Calories != 2000 || a.goal.Carbs != 250 {
		t.Fatalf("goal = %+v", a.goal)
	}
	stored, err := led.Goal()
	if err != nil {
		t.Fatal(err)
	}
	if stored != *a.goal {
		t.Errorf("stored goal = %+v, want %+v", stored, *a.goal)
	}

	// A non-integer leaves the stored goal alone.
	a.goalVals = &goalValues{calories: "2000.5", carbs: "1", fats: "1", proteins: "1"}
	a.saveGoal()
	if !errors.Is(a.goalErr, errWholeNumber) {
		t.Errorf("goalErr = %v, want errWholeNumber", a.goalErr)
	}
	if again, _ := led.Goal(); again != stored {
		t.Errorf("goal changed to %+v", again)
	}
}

func TestNewGoalValuesPrefills(t *testing.T) {
	v := newGoalValues(&model.Nutrition{Calories: 1800, Carbs: 200, Fats: 60, Proteins: 120})
	if v.calories != "1800" || v.proteins != "120" {
		t.Errorf("prefill = %+v", *v)
	}
	if blank := newGoalValues(nil); *blank != (goalValues{}) {
		t.Errorf("nil goal should give empty values, got %+v", *blank)
	}
}

func TestTabKeys(t *testing.T) {
	a := loadedApp(t)

	a = update(t, a, keyRune('h'))
	if a.activeTab != tabHistory {
		t.Fatalf("h -> tab %d", a.activeTab)
	}
	if view := a.View(); !strings.Contains(view, "Calories, last 7 days") || !strings.Contains(view, "Top items") {
		t.Error("History view missing its cards")
	}

	a = update(t, a, tea.KeyMsg{Type: tea.KeyRight})
	if a.activeTab != tabFoods {
		t.Fatalf("right -> tab %d", a.activeTab)
	}
	a = update(t, a, tea.KeyMsg{Type: tea.KeyRight})
	if a.activeTab != tabToday {
		t.Fatalf("right should wrap, got tab %d", a.activeTab)
	}
	a = update(t, a, tea.KeyMsg{Type: tea.KeyLeft})
	if a.activeTab != tabFoods {
		t.Fatalf("left should wrap, got tab %d", a.activeTab)
	}
	if view := a.View(); !strings.Contains(view, "Food inventory (2)") {
		t.Error("Foods view missing title")
	}
}

func TestHistorySpanKeys(t *testing.T) {
	a := loadedApp(t)
	a = update(t, a, keyRune('h'))

	a = update(t, a, keyRune('+'))
	if a.historyDays != 14 || len(a.history) != 14 {
		t.Errorf("after + historyDays=%d len=%d, want 14", a.historyDays, len(a.history))
	}
	a = update(t, a, keyRune('-'))
	a = update(t, a, keyRune('-'))
	if a.historyDays != minHistoryDays {
		t.Errorf("span should clamp at %d, got %d", minHistoryDays, a.historyDays)
	}

	// + only widens the span on the History tab.
	a = update(t, a, keyRune('t'))
	a = update(t, a, keyRune('+'))
	if a.historyDays != minHistoryDays {
		t.Errorf("+ on Today changed span to %d", a.historyDays)
	}
}

func TestFoodsScrollClamps(t *testing.T) {
	a := loadedApp(t)
	a = update(t, a, keyRune('f'))

	for i := 0; i < 5; i++ {
		a = update(t, a, keyRune('j'))
	}
	if a.foodsOffset != 1 {
		t.Errorf("offset = %d, want 1", a.foodsOffset)
	}
	a = update(t, a, tea.KeyMsg{Type: tea.KeyUp})
	a = update(t, a, tea.KeyMsg{Type: tea.KeyUp})
	if a.foodsOffset != 0 {
		t.Errorf("offset = %d, want 0", a.foodsOffset)
	}
}

func TestHelpToggle(t *testing.T) {
	a := loadedApp(t)

	a = update(t, a, keyRune('?'))
	if !a.showHelp || !strings.Contains(a.View(), "Keyboard Shortcuts") {
		t.Fatal("? should show help")
	}
	a = update(t, a, keyRune('h'))
	if a.showHelp {
		t.Error("any key should dismiss help")
	}
	if a.activeTab != tabToday {
		t.Error("the dismissing key should not switch tabs")
	}
}

func TestKeysIgnoredBeforeLoad(t *testing.T) {
	a := newTestApp(Source{})
	a = update(t, a, keyRune('h'))
	if a.activeTab != tabToday {
		t.Error("keys before load should be ignored")
	}
	if _, cmd := a.Update(tea.KeyMsg{Type: tea.KeyCtrlC}); cmd == nil {
		t.Error("ctrl+c should quit even while loading")
	}
}

func TestRefreshKeepsDataOnError(t *testing.T) {
	a := loadedApp(t)
	a.refreshing = true

	a = update(t, a, RefreshDataMsg{Data: DataLoadedMsg{Err: errors.New("disk gone")}})
	if a.refreshing {
		t.Error("refreshing should clear")
	}
	if a.today.Entries != 3 {
		t.Error("failed refresh should keep previous data")
	}
	if !strings.Contains(a.View(), "disk gone") {
		t.Error("refresh error should be shown")
	}
}

func TestProgressMsg(t *testing.T) {
	a := newTestApp(Source{})
	a = update(t, a, tea.WindowSizeMsg{Width: 100, Height: 30})
	a = update(t, a, ProgressMsg{Current: 5, Total: 20})

	if a.progress != 5 || a.progressMax != 20 {
		t.Errorf("progress = %d/%d", a.progress, a.progressMax)
	}
	if view := a.View(); !strings.Contains(view, "Reading ledger") {
		t.Error("loading view should show progress")
	}
}

func TestViewTooNarrow(t *testing.T) {
	a := loadedApp(t)
	a = update(t, a, tea.WindowSizeMsg{Width: 40, Height: 20})
	if !strings.Contains(a.View(), "Terminal too narrow") {
		t.Error("expected narrow-terminal message")
	}
}

func TestLoadData(t *testing.T) {
	log := zaptest.NewLogger(t)
	files := fileutil.New(t.TempDir(), log)
	cat := catalog.New(files, log)
	led := ledger.New(files, cat, log)

	if err := cat.Add(model.FoodItem{Name: "apple", Nutrition: model.Nutrition{Calories: 95, Carbs: 25, Fats: 0.3, Proteins: 0.5}}); err != nil {
		t.Fatal(err)
	}
	if _, err := led.RecordConsumption("apple", 200, fixedToday); err != nil {
		t.Fatal(err)
	}

	src := Source{Ledger: led, Catalog: cat, UserDir: files.Path(fileutil.UserDirName), Log: log}
	msg := loadData(src, nil)

	if msg.Err != nil {
		t.Fatal(msg.Err)
	}
	if len(msg.Days) != 1 || msg.Days[0].Total.Calories != 190 {
		t.Errorf("days = %+v", msg.Days)
	}
	if !errors.Is(msg.GoalErr, model.ErrMissingFile) || msg.Goal != nil {
		t.Errorf("goal = %v, goalErr = %v", msg.Goal, msg.GoalErr)
	}
	if len(msg.Foods) != 1 || msg.Foods[0].Name != "apple" {
		t.Errorf("foods = %+v", msg.Foods)
	}
}

func TestChartDateLabels(t *testing.T) {
	days := []model.DayStats{
		{Date: model.NewDate(2024, time.February, 2)},
		{Date: model.NewDate(2024, time.February, 1)},
		{Date: model.NewDate(2024, time.January, 31)},
		{Date: model.NewDate(2024, time.January, 30)},
	}
	got := chartDateLabels(days)
	want := []string{"Jan", "31", "Feb", "2"}
	if strings.Join(got, " ") != strings.Join(want, " ") {
		t.Errorf("chartDateLabels = %v, want %v", got, want)
	}
}
