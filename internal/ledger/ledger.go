// Package ledger records consumption events in per-date files and
// aggregates them into daily totals compared against the user's goal.
package ledger

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/theirongolddev/foodinme/internal/catalog"
	"github.com/theirongolddev/foodinme/internal/fileutil"
	"github.com/theirongolddev/foodinme/internal/model"

	"go.uber.org/zap"
)

// GoalFileName is the goal file inside the user directory.
const GoalFileName = "goals.csv"

// Ledger is the consumption store. Day files are append-only.
type Ledger struct {
	files   *fileutil.Store
	catalog *catalog.Catalog
	log     *zap.Logger
}

// New returns a Ledger that resolves food names through cat.
func New(files *fileutil.Store, cat *catalog.Catalog, log *zap.Logger) *Ledger {
	if log == nil {
		log = zap.NewNop()
	}
	return &Ledger{files: files, catalog: cat, log: log.Named("ledger")}
}

// GoalPath returns the goal file path.
func (l *Ledger) GoalPath() string {
	return l.files.UserPath(GoalFileName)
}

// DayPath returns the ledger file path for date.
func (l *Ledger) DayPath(date model.Date) string {
	return l.files.UserPath(date.Filename())
}

// RecordConsumption appends consumedPercent of the catalog item named name
// to date's ledger. Nothing is written unless the percent, the date and the
// lookup are all valid.
func (l *Ledger) RecordConsumption(name string, consumedPercent float64, date model.Date) (model.FoodItem, error) {
	if consumedPercent < 0 {
		return model.FoodItem{}, model.NewError(model.KindParse,
			fmt.Sprintf("Invalid consumed_percentage: %s", model.FormatGoal(consumedPercent)), nil)
	}
	if !date.Valid() {
		return model.FoodItem{}, model.NewError(model.KindParse,
			fmt.Sprintf("Invalid consumed date %s", date), nil)
	}

	item, ok, err := l.catalog.Get(name)
	if err != nil {
		return model.FoodItem{}, err
	}
	if !ok {
		return model.FoodItem{}, model.NewError(model.KindNotFound,
			fmt.Sprintf(`Unable to find food item named "%s". Did you add it to the list with the "add-food" command?`, name), nil)
	}

	eaten := model.FoodItem{
		Name:      item.Name,
		Nutrition: item.Nutrition.Scale(consumedPercent / 100.0),
	}
	if err := l.appendEntry(date, eaten); err != nil {
		return eaten, err
	}
	l.log.Debug("recorded consumption",
		zap.String("name", eaten.Name),
		zap.Float64("percent", consumedPercent),
		zap.Stringer("date", date))
	return eaten, nil
}

func (l *Ledger) appendEntry(date model.Date, item model.FoodItem) error {
	dir, err := l.files.UserDir()
	if err != nil {
		return err
	}
	path := filepath.Join(dir, date.Filename())

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644)
	if err != nil {
		return model.NewError(model.KindIO, "opening "+date.Filename(), err)
	}
	defer f.Close()

	if _, err := f.WriteString(item.CSV() + "\n"); err != nil {
		return model.NewError(model.KindIO, "appending to "+date.Filename(), err)
	}
	return f.Close()
}

// Aggregate is the sum of one day's ledger. Items is only populated when
// detail was requested, one entry per distinct name in first-seen order.
type Aggregate struct {
	Total   model.Nutrition   `json:"total" yaml:"total"`
	Entries int               `json:"entries" yaml:"entries"`
	Items   []model.ItemTotal `json:"items,omitempty" yaml:"items,omitempty"`
}

// Aggregate sums the ledger for dateString ("M-D-YYYY").
func (l *Ledger) Aggregate(dateString string, wantDetail bool) (Aggregate, error) {
	path := l.files.UserPath(dateString + ".csv")
	if !fileutil.Exists(path) {
		return Aggregate{}, model.NewError(model.KindNotFound,
			fmt.Sprintf("No entries recorded for %s", dateString), nil)
	}
	return AggregateFile(path, wantDetail)
}

// AggregateFile sums the ledger file at path. A line that does not parse
// fails the whole aggregation; blank lines are skipped.
func AggregateFile(path string, wantDetail bool) (Aggregate, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Aggregate{}, model.NewError(model.KindNotFound,
				fmt.Sprintf("No entries recorded for %s", strings.TrimSuffix(filepath.Base(path), ".csv")), err)
		}
		return Aggregate{}, model.NewError(model.KindIO, "opening "+filepath.Base(path), err)
	}
	defer f.Close()

	var agg Aggregate
	index := make(map[string]int)

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), catalog.MaxLineBytes)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		item, err := model.ParseFoodItem(line, model.FieldDelimiter)
		if err != nil {
			return Aggregate{}, model.NewError(model.KindParse,
				fmt.Sprintf(`Failed to parse "%s" from %s as a food item`, line, filepath.Base(path)), err)
		}

		agg.Entries++
		agg.Total = agg.Total.Add(item.Nutrition)

		if wantDetail {
			if i, ok := index[item.Name]; ok {
				agg.Items[i].Nutrition = agg.Items[i].Nutrition.Add(item.Nutrition)
			} else {
				index[item.Name] = len(agg.Items)
				agg.Items = append(agg.Items, model.ItemTotal{Name: item.Name, Nutrition: item.Nutrition})
			}
		}
	}
	if err := sc.Err(); err != nil {
		return Aggregate{}, model.NewError(model.KindIO, "reading "+filepath.Base(path), err)
	}
	return agg, nil
}

// SetGoal overwrites the goal file with a single line.
func (l *Ledger) SetGoal(goal model.Nutrition) error {
	if _, err := l.files.UserDir(); err != nil {
		return err
	}
	line := strings.Join([]string{
		model.FormatGoal(goal.Calories),
		model.FormatGoal(goal.Carbs),
		model.FormatGoal(goal.Fats),
		model.FormatGoal(goal.Proteins),
	}, model.FieldDelimiter)

	if err := os.WriteFile(l.GoalPath(), []byte(line), 0o644); err != nil {
		return model.NewError(model.KindIO, "writing "+GoalFileName, err)
	}
	l.log.Debug("goal updated", zap.String("goal", line))
	return nil
}

// Goal reads the goal file, which must hold exactly four numeric fields.
func (l *Ledger) Goal() (model.Nutrition, error) {
	f, err := os.Open(l.GoalPath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return model.Nutrition{}, model.NewError(model.KindMissingFile,
				`Missing goal file. Consider setting your nutrition goals with the "set-goal" command.`, err)
		}
		return model.Nutrition{}, model.NewError(model.KindIO, "opening "+GoalFileName, err)
	}
	defer f.Close()

	invalid := func(cause error) error {
		return model.NewError(model.KindParse,
			`Invalid goal file. Reset your nutrition goal with the "set-goal" command.`, cause)
	}

	r := bufio.NewReader(f)
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return model.Nutrition{}, invalid(err)
	}

	fields := strings.Split(strings.TrimSpace(line), model.FieldDelimiter)
	if len(fields) != 4 {
		return model.Nutrition{}, invalid(nil)
	}
	var v [4]float64
	for i, field := range fields {
		n, err := model.ParseQuantity(field)
		if err != nil {
			return model.Nutrition{}, invalid(err)
		}
		v[i] = n
	}
	return model.Nutrition{Calories: v[0], Carbs: v[1], Fats: v[2], Proteins: v[3]}, nil
}
