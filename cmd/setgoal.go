package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/theirongolddev/foodinme/internal/model"

	"github.com/spf13/cobra"
)

var setGoalCmd = &cobra.Command{
	Use:   "set-goal CAL-CARBS-FATS-PROTEINS",
	Short: "Set your daily nutrition goal",
	Long:  setGoalUsage,
	Args:  cobra.ExactArgs(1),
	RunE:  runSetGoal,
}

func init() {
	rootCmd.AddCommand(setGoalCmd)
}

func runSetGoal(cmd *cobra.Command, args []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.close()

	goal, err := parseGoal(args[0])
	if err != nil {
		return err
	}
	return setGoal(e, cmd.OutOrStdout(), goal)
}

// parseGoal reads four whole numbers separated by "-".
func parseGoal(text string) (model.Nutrition, error) {
	parts := strings.Split(text, model.CommandDelimiter)
	if len(parts) != 4 {
		return model.Nutrition{}, usageError{setGoalUsage}
	}
	var v [4]float64
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return model.Nutrition{}, usageError{setGoalUsage}
		}
		v[i] = float64(n)
	}
	return model.Nutrition{Calories: v[0], Carbs: v[1], Fats: v[2], Proteins: v[3]}, nil
}

func setGoal(e *appEnv, out io.Writer, goal model.Nutrition) error {
	if err := e.ledger.SetGoal(goal); err != nil {
		return err
	}
	fmt.Fprintln(out, "Your new daily nutrition goal has been recorded!")
	return nil
}
