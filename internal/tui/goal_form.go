package tui

import (
	"errors"
	"strconv"
	"strings"

	"github.com/theirongolddev/foodinme/internal/model"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"go.uber.org/zap"
)

// goalValues holds the goal form's text fields. It is shared by pointer so
// the form keeps writing into the same values as App is copied.
type goalValues struct {
	calories string
	carbs    string
	fats     string
	proteins string
}

func newGoalValues(goal *model.Nutrition) *goalValues {
	if goal == nil {
		return &goalValues{}
	}
	return &goalValues{
		calories: model.FormatGoal(goal.Calories),
		carbs:    model.FormatGoal(goal.Carbs),
		fats:     model.FormatGoal(goal.Fats),
		proteins: model.FormatGoal(goal.Proteins),
	}
}

// nutrition converts the fields to a goal; every field must be a whole number.
func (v *goalValues) nutrition() (model.Nutrition, error) {
	var out [4]float64
	for i, s := range []string{v.calories, v.carbs, v.fats, v.proteins} {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return model.Nutrition{}, errWholeNumber
		}
		out[i] = float64(n)
	}
	return model.Nutrition{Calories: out[0], Carbs: out[1], Fats: out[2], Proteins: out[3]}, nil
}

var errWholeNumber = errors.New("enter a whole number")

func validateWhole(s string) error {
	if _, err := strconv.Atoi(strings.TrimSpace(s)); err != nil {
		return errWholeNumber
	}
	return nil
}

func newGoalForm(v *goalValues, firstRun bool) *huh.Form {
	desc := "Targets are compared against each day's totals."
	if firstRun {
		desc = "No daily goal has been recorded yet. " + desc + " Press esc to skip."
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Daily nutrition goal").
				Description(desc),
			huh.NewInput().Title("Calories").Value(&v.calories).Validate(validateWhole),
			huh.NewInput().Title("Carbohydrates (g)").Value(&v.carbs).Validate(validateWhole),
			huh.NewInput().Title("Fats (g)").Value(&v.fats).Validate(validateWhole),
			huh.NewInput().Title("Proteins (g)").Value(&v.proteins).Validate(validateWhole),
		),
	).WithShowHelp(false)
}

func (a App) openGoalForm() (tea.Model, tea.Cmd) {
	a.goalVals = newGoalValues(a.goal)
	a.goalForm = newGoalForm(a.goalVals, a.goal == nil)
	if a.width > 0 {
		a.goalForm = a.goalForm.WithWidth(a.width).WithHeight(a.height)
	}
	return a, a.goalForm.Init()
}

func (a App) updateGoalForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.goalForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.goalForm = f
	}

	switch a.goalForm.State {
	case huh.StateCompleted:
		a.goalForm = nil
		a.saveGoal()
		return a, nil
	case huh.StateAborted:
		a.goalForm = nil
		return a, nil
	}

	return a, cmd
}

func (a *App) saveGoal() {
	goal, err := a.goalVals.nutrition()
	if err == nil {
		err = a.src.Ledger.SetGoal(goal)
	}
	if err != nil {
		a.src.Log.Warn("saving goal", zap.Error(err))
		a.goalErr = err
		return
	}
	a.goal = &goal
	a.goalErr = nil
	a.recompute()
}
