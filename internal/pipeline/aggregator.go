package pipeline

import (
	"sort"
	"strings"

	"github.com/theirongolddev/foodinme/internal/model"
)

// FilterByDate returns days dated within [since, until], inclusive. A zero
// bound is open.
func FilterByDate(days []model.DayStats, since, until model.Date) []model.DayStats {
	if since == (model.Date{}) && until == (model.Date{}) {
		return days
	}

	var result []model.DayStats
	for _, d := range days {
		if since != (model.Date{}) && d.Date.Before(since) {
			continue
		}
		if until != (model.Date{}) && until.Before(d.Date) {
			continue
		}
		result = append(result, d)
	}
	return result
}

// AggregateDays returns one entry per calendar day in [since, until], most
// recent first. Days without a ledger file appear with zero totals so charts
// show gaps.
func AggregateDays(days []model.DayStats, since, until model.Date) []model.DayStats {
	dayMap := make(map[model.Date]model.DayStats)
	for _, d := range FilterByDate(days, since, until) {
		dayMap[d.Date] = d
	}

	for t := since.Time(); !until.Before(model.DateOf(t)); t = t.AddDate(0, 0, 1) {
		key := model.DateOf(t)
		if _, ok := dayMap[key]; !ok {
			dayMap[key] = model.DayStats{Date: key}
		}
	}

	result := make([]model.DayStats, 0, len(dayMap))
	for _, d := range dayMap {
		result = append(result, d)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[j].Date.Before(result[i].Date)
	})
	return result
}

// Summarize totals days and averages them over the days with entries. When
// goal is non-nil, DaysOnGoal counts active days at or under its calories.
func Summarize(days []model.DayStats, goal *model.Nutrition) model.SummaryStats {
	stats := model.SummaryStats{TotalDays: len(days)}
	if goal != nil {
		stats.HasGoal = true
		stats.Goal = *goal
	}

	var best, heaviest *model.DayStats
	for i := range days {
		d := &days[i]
		if d.Entries == 0 {
			continue
		}
		stats.ActiveDays++
		stats.Entries += d.Entries
		stats.Total = stats.Total.Add(d.Total)

		if goal != nil && d.Total.Calories <= goal.Calories {
			stats.DaysOnGoal++
		}
		if best == nil || d.Total.Calories < best.Total.Calories {
			best = d
		}
		if heaviest == nil || d.Total.Calories > heaviest.Total.Calories {
			heaviest = d
		}
	}

	if stats.ActiveDays > 0 {
		stats.PerDay = stats.Total.Scale(1 / float64(stats.ActiveDays))
		stats.BestDay = best.Date
		stats.HeaviestDay = heaviest.Date
	}
	return stats
}

// AggregateItems totals each item name across days, sorted by calories
// descending.
func AggregateItems(days []model.DayStats) []model.ItemStats {
	itemMap := make(map[string]*model.ItemStats)
	var totalCalories float64

	for _, d := range days {
		for _, it := range d.Items {
			is, ok := itemMap[it.Name]
			if !ok {
				is = &model.ItemStats{Name: it.Name}
				itemMap[it.Name] = is
			}
			is.Days++
			is.Total = is.Total.Add(it.Nutrition)
			totalCalories += it.Nutrition.Calories
		}
	}

	items := make([]model.ItemStats, 0, len(itemMap))
	for _, is := range itemMap {
		if totalCalories > 0 {
			is.SharePercent = is.Total.Calories / totalCalories * 100
		}
		items = append(items, *is)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Total.Calories != items[j].Total.Calories {
			return items[i].Total.Calories > items[j].Total.Calories
		}
		return items[i].Name < items[j].Name
	})
	return items
}

// FilterByItem returns days that include an item whose name contains
// substr, ignoring case.
func FilterByItem(days []model.DayStats, substr string) []model.DayStats {
	if substr == "" {
		return days
	}
	var result []model.DayStats
	for _, d := range days {
		for _, it := range d.Items {
			if containsIgnoreCase(it.Name, substr) {
				result = append(result, d)
				break
			}
		}
	}
	return result
}

func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
