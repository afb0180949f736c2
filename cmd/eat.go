package cmd

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/theirongolddev/foodinme/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagPercent float64
	flagDate    string
)

var eatCmd = &cobra.Command{
	Use:     "eat NAME [percent=N] [date=M-D-YYYY]",
	Aliases: []string{"drink"},
	Short:   "Record a food item as eaten",
	Long:    eatUsage,
	Args:    cobra.RangeArgs(1, 3),
	RunE:    runEat,
}

func init() {
	eatCmd.Flags().Float64VarP(&flagPercent, "percent", "p", 100, "Percent of the item consumed")
	eatCmd.Flags().StringVar(&flagDate, "date", "", "Date consumed as M-D-YYYY (default today)")
	rootCmd.AddCommand(eatCmd)
}

func runEat(cmd *cobra.Command, args []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.close()

	req := eatRequest{percent: e.cfg.General.DefaultPercent, date: model.Today()}
	if cmd.Flags().Changed("percent") {
		req.percent = flagPercent
	}
	if flagDate != "" {
		d, err := model.ParseDate(flagDate)
		if err != nil {
			return usageError{eatUsage}
		}
		req.date = d
	}

	req, err = parseEatArgs(args, req)
	if err != nil {
		return err
	}
	return recordEaten(e, cmd.OutOrStdout(), req)
}

type eatRequest struct {
	name    string
	percent float64
	date    model.Date
}

// parseEatArgs reads "NAME [percent=N] [date=M-D-YYYY]" over the defaults
// in req. Any malformed option yields the eat usage.
func parseEatArgs(args []string, req eatRequest) (eatRequest, error) {
	if len(args) < 1 || len(args) > 3 {
		return req, usageError{eatUsage}
	}
	req.name = args[0]

	for _, opt := range args[1:] {
		parts := strings.Split(opt, "=")
		if len(parts) != 2 {
			return req, usageError{eatUsage}
		}
		switch strings.ToLower(parts[0]) {
		case "date":
			d, err := model.ParseDate(parts[1])
			if err != nil {
				return req, usageError{eatUsage}
			}
			req.date = d
		case "percent":
			pct, err := model.ParseQuantity(parts[1])
			if err != nil || math.IsNaN(pct) || math.IsInf(pct, 0) {
				return req, usageError{eatUsage}
			}
			req.percent = pct
		default:
			return req, usageError{eatUsage}
		}
	}
	return req, nil
}

func recordEaten(e *appEnv, out io.Writer, req eatRequest) error {
	if _, err := e.ledger.RecordConsumption(req.name, req.percent, req.date); err != nil {
		return err
	}
	fmt.Fprintln(out, "Success!")
	return nil
}
