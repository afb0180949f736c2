package cmd

import (
	"fmt"

	"github.com/theirongolddev/foodinme/internal/cli"
	"github.com/theirongolddev/foodinme/internal/model"

	"github.com/spf13/cobra"
)

var foodsCmd = &cobra.Command{
	Use:   "foods",
	Short: "List the food catalog",
	Args:  cobra.NoArgs,
	RunE:  runFoods,
}

func init() {
	rootCmd.AddCommand(foodsCmd)
}

func runFoods(cmd *cobra.Command, _ []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.close()

	items, err := e.catalog.List()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(items) == 0 {
		fmt.Fprintln(out, "\n  No food items yet. Add one with `foodinme add-food`.")
		return nil
	}

	rows := make([][]string, 0, len(items))
	for _, it := range items {
		rows = append(rows, []string{
			model.DisplayName(it.Name),
			cli.FormatCalories(it.Nutrition.Calories),
			cli.FormatGrams(it.Nutrition.Carbs),
			cli.FormatGrams(it.Nutrition.Fats),
			cli.FormatGrams(it.Nutrition.Proteins),
		})
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, cli.RenderTitle(fmt.Sprintf("FOOD CATALOG  %d items", len(items))))
	fmt.Fprintln(out)
	fmt.Fprint(out, cli.RenderTable(cli.Table{
		Headers: []string{"Name", "Calories", "Carbs", "Fats", "Proteins"},
		Rows:    rows,
	}))
	return nil
}
