package cmd

import (
	"fmt"
	"io"

	"github.com/theirongolddev/foodinme/internal/cli"
	"github.com/theirongolddev/foodinme/internal/config"
	"github.com/theirongolddev/foodinme/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagDetail bool
	flagFormat string
)

var reportCmd = &cobra.Command{
	Use:   "report [M-D-YYYY]",
	Short: "Report a day's consumption against your goal",
	Long:  reportUsage,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().BoolVar(&flagDetail, "detail", false, "Include a per-item breakdown")
	reportCmd.Flags().StringVarP(&flagFormat, "format", "f", "", "Output format: text, json, yaml or markdown")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.close()

	date := model.Today()
	if len(args) == 1 {
		date, err = parseReportDate(args[0])
		if err != nil {
			return err
		}
	}

	detail := e.cfg.Report.Detailed
	if cmd.Flags().Changed("detail") {
		detail = flagDetail
	}
	format := e.cfg.Report.Format
	if flagFormat != "" {
		if !config.ValidFormat(flagFormat) {
			return fmt.Errorf("unknown report format %q", flagFormat)
		}
		format = flagFormat
	}

	return showReport(e, cmd.OutOrStdout(), date, detail, format)
}

func parseReportDate(s string) (model.Date, error) {
	d, err := model.ParseDate(s)
	if err != nil {
		return model.Date{}, usageError{reportUsage}
	}
	return d, nil
}

func showReport(e *appEnv, out io.Writer, date model.Date, detail bool, format string) error {
	r, err := e.ledger.Report(date, detail)
	if err != nil {
		return err
	}
	return cli.WriteReport(out, r, format)
}
