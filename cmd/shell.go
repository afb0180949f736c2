package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/theirongolddev/foodinme/internal/model"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Interactive prompt (the default when no command is given)",
	Args:  cobra.NoArgs,
	RunE:  runShell,
}

func init() {
	rootCmd.AddCommand(shellCmd)
}

func runShell(cmd *cobra.Command, _ []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.close()

	return newShell(e, cmd.InOrStdin(), cmd.OutOrStdout()).run()
}

// shell is the line-oriented interactive loop. No command failure ends it;
// only "quit" or end of input does.
type shell struct {
	env *appEnv
	in  *bufio.Reader
	out io.Writer
}

func newShell(e *appEnv, in io.Reader, out io.Writer) *shell {
	return &shell{env: e, in: bufio.NewReader(in), out: out}
}

func (s *shell) run() error {
	for {
		fmt.Fprintln(s.out, shellPrompt)

		line, err := s.in.ReadString('\n')
		if err != nil && line == "" {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		line = strings.TrimRight(line, "\r\n")
		if strings.ToLower(line) == "quit" {
			return nil
		}

		s.dispatch(line)
		fmt.Fprintln(s.out, shellSeparator)
	}
}

func (s *shell) dispatch(line string) {
	args := strings.Fields(line)
	command := ""
	if len(args) > 0 {
		command = strings.ToLower(args[0])
	}

	var err error
	switch command {
	case "help":
		topic := ""
		if len(args) == 2 {
			topic = strings.ToLower(args[1])
		}
		fmt.Fprintln(s.out, helpFor(topic))
	case "add-food", "add-drink":
		if len(args) != 2 {
			err = usageError{addFoodUsage}
			break
		}
		err = addFood(s.env, s.out, args[1], lineConfirm(s.in, s.out))
	case "eat", "drink":
		var req eatRequest
		req, err = parseEatArgs(args[1:], eatRequest{
			percent: s.env.cfg.General.DefaultPercent,
			date:    model.Today(),
		})
		if err == nil {
			err = recordEaten(s.env, s.out, req)
		}
	case "report":
		if len(args) != 2 {
			err = usageError{reportUsage}
			break
		}
		var date model.Date
		if date, err = parseReportDate(args[1]); err == nil {
			err = showReport(s.env, s.out, date, s.env.cfg.Report.Detailed, "text")
		}
	case "set-goal":
		if len(args) != 2 {
			err = usageError{setGoalUsage}
			break
		}
		var goal model.Nutrition
		if goal, err = parseGoal(args[1]); err == nil {
			err = setGoal(s.env, s.out, goal)
		}
	default:
		fmt.Fprintf(s.out, "Invalid command: %s\n", line)
		fmt.Fprintln(s.out, generalUsage)
	}

	if err != nil {
		s.env.log.Debug("shell command failed", zap.String("line", line), zap.Error(err))
		fmt.Fprintln(s.out, err.Error())
	}
}
