package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/theirongolddev/foodinme/internal/ledger"
	"github.com/theirongolddev/foodinme/internal/model"

	"github.com/charmbracelet/glamour"
	md "github.com/nao1215/markdown"
	"gopkg.in/yaml.v3"
)

// ReportDoc is the structured form of a report used by the json and yaml
// formats.
type ReportDoc struct {
	Date       string            `json:"date" yaml:"date"`
	Entries    int               `json:"entries" yaml:"entries"`
	Consumed   model.Nutrition   `json:"consumed" yaml:"consumed"`
	Goal       *model.Nutrition  `json:"goal,omitempty" yaml:"goal,omitempty"`
	Comparison []string          `json:"comparison,omitempty" yaml:"comparison,omitempty"`
	GoalError  string            `json:"goal_error,omitempty" yaml:"goal_error,omitempty"`
	Items      []model.ItemTotal `json:"items,omitempty" yaml:"items,omitempty"`
}

// NewReportDoc converts a ledger report.
func NewReportDoc(r ledger.Report) ReportDoc {
	doc := ReportDoc{
		Date:     r.Date.String(),
		Entries:  r.Entries,
		Consumed: r.Consumed,
		Goal:     r.Goal,
		Items:    r.Items,
	}
	if r.Comparison != "" {
		doc.Comparison = strings.Split(r.Comparison, ", ")
	}
	if r.GoalErr != nil {
		doc.GoalError = r.GoalErr.Error()
	}
	return doc
}

// WriteReport renders r to w in the named format: text, json, yaml or
// markdown.
func WriteReport(w io.Writer, r ledger.Report, format string) error {
	var out string
	switch format {
	case "", "text":
		out = ReportText(r)
	case "json":
		data, err := json.MarshalIndent(NewReportDoc(r), "", "  ")
		if err != nil {
			return fmt.Errorf("encoding report: %w", err)
		}
		out = string(data) + "\n"
	case "yaml":
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(NewReportDoc(r)); err != nil {
			return fmt.Errorf("encoding report: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encoding report: %w", err)
		}
		out = buf.String()
	case "markdown":
		rendered, err := RenderMarkdown(ReportMarkdown(r))
		if err != nil {
			return err
		}
		out = rendered
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
	_, err := io.WriteString(w, out)
	return err
}

// ReportText renders the plain report: totals, the goal comparison one
// nutrient per line (or why it is unavailable), then the optional breakdown.
func ReportText(r ledger.Report) string {
	var b strings.Builder
	c := r.Consumed
	fmt.Fprintf(&b, "On %s, you reported consuming %s calories, %s grams of carbs, %s grams of fats and %s grams of protein\n",
		r.Date, model.FormatQuantity(c.Calories), model.FormatQuantity(c.Carbs),
		model.FormatQuantity(c.Fats), model.FormatQuantity(c.Proteins))

	if r.Goal != nil {
		b.WriteString("Compared to your daily goals, this represents:\n")
		b.WriteString(strings.ReplaceAll(r.Comparison, ", ", "\n"))
		b.WriteString("\n")
	} else if r.GoalErr != nil {
		b.WriteString(r.GoalErr.Error())
		b.WriteString("\n")
	}

	if r.Detailed {
		b.WriteString("Detailed breakdown of each item:\n")
		for _, it := range r.Items {
			fmt.Fprintf(&b, "%s: %s\n", model.DisplayName(it.Name), it.Nutrition)
		}
	}
	return b.String()
}

// ReportMarkdown renders r as a markdown document.
func ReportMarkdown(r ledger.Report) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Nutrition report for %s", r.Date))
	doc.PlainText(fmt.Sprintf("%d entries recorded.", r.Entries))

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Nutrient", "Consumed", "Goal", "Difference"},
	}
	goal := model.Nutrition{}
	if r.Goal != nil {
		goal = *r.Goal
	}
	for _, row := range []struct {
		label          string
		consumed, want float64
	}{
		{"Calories", r.Consumed.Calories, goal.Calories},
		{"Carbs (g)", r.Consumed.Carbs, goal.Carbs},
		{"Fats (g)", r.Consumed.Fats, goal.Fats},
		{"Proteins (g)", r.Consumed.Proteins, goal.Proteins},
	} {
		goalCell, diffCell := "-", "-"
		if r.Goal != nil {
			goalCell = model.FormatQuantity(row.want)
			diffCell = FormatDelta(row.consumed, row.want)
		}
		table.Rows = append(table.Rows, []string{row.label, model.FormatQuantity(row.consumed), goalCell, diffCell})
	}
	doc.Table(table)

	if r.GoalErr != nil {
		doc.PlainText(md.Italic(r.GoalErr.Error()))
	}

	if r.Detailed && len(r.Items) > 0 {
		doc.H2("Items")
		items := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight},
			Header:    []string{"Item", "Calories", "Carbs", "Fats", "Proteins"},
		}
		for _, it := range r.Items {
			n := it.Nutrition
			items.Rows = append(items.Rows, []string{
				model.DisplayName(it.Name),
				model.FormatQuantity(n.Calories),
				model.FormatQuantity(n.Carbs),
				model.FormatQuantity(n.Fats),
				model.FormatQuantity(n.Proteins),
			})
		}
		doc.Table(items)
	}

	return doc.String()
}

// RenderMarkdown styles markdown for the terminal.
func RenderMarkdown(src string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return "", fmt.Errorf("creating markdown renderer: %w", err)
	}
	out, err := r.Render(src)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return out, nil
}
