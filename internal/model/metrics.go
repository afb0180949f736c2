package model

// ItemTotal is the accumulated nutrition of one item name within a day.
type ItemTotal struct {
	Name      string    `json:"name" yaml:"name"`
	Nutrition Nutrition `json:"nutrition" yaml:"nutrition"`
}

// DayStats holds the aggregate of one ledger file.
type DayStats struct {
	Date     Date
	FilePath string
	Entries  int
	Total    Nutrition
	Items    []ItemTotal
}

// SummaryStats holds the aggregate across a range of days.
type SummaryStats struct {
	TotalDays   int
	ActiveDays  int
	Entries     int
	Total       Nutrition
	PerDay      Nutrition // averaged over active days
	DaysOnGoal  int       // active days at or under the calorie goal
	HasGoal     bool
	Goal        Nutrition
	BestDay     Date // active day with the fewest calories
	HeaviestDay Date // active day with the most calories
}

// ItemStats holds one item name's totals across a range of days.
type ItemStats struct {
	Name         string
	Days         int // days the item appears on
	Total        Nutrition
	SharePercent float64 // of all calories in the range
}
