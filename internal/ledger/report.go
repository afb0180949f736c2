package ledger

import (
	"fmt"

	"github.com/theirongolddev/foodinme/internal/model"
)

// Report is one day's consumption, with the goal comparison when a goal is
// available. GoalErr carries the reason the comparison is missing; it is
// informational and never fails the report.
type Report struct {
	Date       model.Date
	Consumed   model.Nutrition
	Entries    int
	Goal       *model.Nutrition
	GoalErr    error
	Comparison string
	Items      []model.ItemTotal
	Detailed   bool
}

// Report aggregates date's ledger and compares it against the stored goal.
func (l *Ledger) Report(date model.Date, wantDetail bool) (Report, error) {
	if !date.Valid() {
		return Report{}, model.NewError(model.KindParse, fmt.Sprintf("Invalid report date %s", date), nil)
	}

	agg, err := l.Aggregate(date.String(), wantDetail)
	if err != nil {
		return Report{}, err
	}

	r := Report{
		Date:     date,
		Consumed: agg.Total,
		Entries:  agg.Entries,
		Items:    agg.Items,
		Detailed: wantDetail,
	}

	goal, err := l.Goal()
	if err != nil {
		r.GoalErr = err
		return r, nil
	}
	r.Goal = &goal
	r.Comparison = agg.Total.Compare(goal)
	return r, nil
}
