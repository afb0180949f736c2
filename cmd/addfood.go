package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/theirongolddev/foodinme/internal/model"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var flagOverwrite bool

var addFoodCmd = &cobra.Command{
	Use:     "add-food NAME-CAL-CARBS-FATS-PROTEINS",
	Aliases: []string{"add-drink"},
	Short:   "Add a food item to the catalog",
	Long:    addFoodUsage,
	Args:    cobra.ExactArgs(1),
	RunE:    runAddFood,
}

func init() {
	addFoodCmd.Flags().BoolVarP(&flagOverwrite, "overwrite", "y", false, "Overwrite an existing item without asking")
	rootCmd.AddCommand(addFoodCmd)
}

func runAddFood(cmd *cobra.Command, args []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.close()

	confirm := promptConfirm(cmd.InOrStdin(), cmd.OutOrStdout())
	if flagOverwrite {
		confirm = func(string) (bool, error) { return true, nil }
	}
	return addFood(e, cmd.OutOrStdout(), args[0], confirm)
}

// confirmFunc asks a yes/no question.
type confirmFunc func(question string) (bool, error)

// addFood stores text as a new item, asking before it replaces an existing
// one. Input is lower-cased before parsing.
func addFood(e *appEnv, out io.Writer, text string, confirm confirmFunc) error {
	name, _, _ := strings.Cut(text, model.CommandDelimiter)

	_, err := e.catalog.TryAdd(strings.ToLower(text), false)
	if err == nil {
		fmt.Fprintf(out, "Success! %s was added to the food inventory.\n", name)
		return nil
	}
	if !errors.Is(err, model.ErrPreexisting) {
		return err
	}

	ok, err := confirm(fmt.Sprintf("%s already exists. Overwrite with new values?", name))
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintf(out, "%s was not updated.\n", name)
		return nil
	}
	if _, err := e.catalog.TryAdd(strings.ToLower(text), true); err != nil {
		return err
	}
	fmt.Fprintf(out, "%s was updated with new values!\n", name)
	return nil
}

// promptConfirm uses a huh confirm on a terminal and a y/yes line prompt
// otherwise.
func promptConfirm(in io.Reader, out io.Writer) confirmFunc {
	if f, ok := in.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return func(question string) (bool, error) {
			var yes bool
			err := huh.NewConfirm().
				Title(question).
				Affirmative("Overwrite").
				Negative("Keep").
				Value(&yes).
				Run()
			if errors.Is(err, huh.ErrUserAborted) {
				return false, nil
			}
			return yes, err
		}
	}
	return lineConfirm(bufio.NewReader(in), out)
}

// lineConfirm prints the question and reads one answer line from r.
func lineConfirm(r *bufio.Reader, out io.Writer) confirmFunc {
	return func(question string) (bool, error) {
		fmt.Fprintln(out, question)
		answer, err := r.ReadString('\n')
		if err != nil && answer == "" {
			if errors.Is(err, io.EOF) {
				return false, nil
			}
			return false, err
		}
		return accepted(answer), nil
	}
}

// accepted reports whether answer is "y" or "yes", ignoring case.
func accepted(answer string) bool {
	s := strings.ToLower(strings.TrimSpace(answer))
	return s == "y" || s == "yes"
}
