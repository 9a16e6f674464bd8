package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"cslines/internal/driver"
	"cslines/internal/format"
	"cslines/internal/linebreak"
	"cslines/internal/source"
)

var explainCmd = &cobra.Command{
	Use:   "explain [flags] file.cs",
	Short: "Show the line-break decision for every token pair",
	Long: `explain evaluates the line-break rules for each adjacent token pair of a
file and prints which rule decided, the adjustment it produced and the number
of line breaks before and after formatting. Only pairs that will change or
carry a forced adjustment are listed unless --all is given.`,
	Args: cobra.ExactArgs(1),
	RunE: runExplain,
}

func init() {
	addFormatFlags(explainCmd)
	explainCmd.Flags().String("format", "text", "output format (text|json|yaml)")
	explainCmd.Flags().Bool("all", false, "list every token pair")
}

// explainRow is one printed decision.
type explainRow struct {
	Offset   uint32           `json:"offset" yaml:"offset"`
	Position string           `json:"position" yaml:"position"`
	PrevKind string           `json:"prev_kind" yaml:"prev_kind"`
	PrevText string           `json:"prev_text" yaml:"prev_text"`
	CurrKind string           `json:"curr_kind" yaml:"curr_kind"`
	CurrText string           `json:"curr_text" yaml:"curr_text"`
	Mode     linebreak.Mode   `json:"mode" yaml:"mode"`
	Count    int              `json:"count" yaml:"count"`
	Rule     linebreak.RuleID `json:"rule" yaml:"rule"`
	Existing int              `json:"existing" yaml:"existing"`
	Lines    int              `json:"lines" yaml:"lines"`
	Changed  bool             `json:"changed" yaml:"changed"`
	Verbatim bool             `json:"verbatim,omitempty" yaml:"verbatim,omitempty"`
}

const explainTextWidth = 24

// lipgloss/table numbers the header row 0 and data rows from 1.
const headerRow = 0

func runExplain(cmd *cobra.Command, args []string) error {
	outputFormat, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	outputFormat = strings.ToLower(outputFormat)
	switch outputFormat {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("explain: unsupported output format %q", outputFormat)
	}
	all, err := cmd.Flags().GetBool("all")
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	opts, err := formatOptions(cmd, cfg)
	if err != nil {
		return fmt.Errorf("explain: %w", err)
	}

	res, err := driver.Explain(cmd.Context(), args[0], opts)
	if err != nil {
		return err
	}
	if err := printDiagnostics(cmd.ErrOrStderr(), res.Bag, res.FileSet, 1); err != nil {
		return err
	}

	rows := explainRows(res.File, res.Decisions, all)
	out := cmd.OutOrStdout()
	switch outputFormat {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(rows); err != nil {
			return err
		}
		return enc.Close()
	}
	return renderExplainTable(out, rows, opts.Reason, len(res.Decisions))
}

func explainRows(file *source.File, decisions []format.Decision, all bool) []explainRow {
	rows := make([]explainRow, 0, len(decisions))
	for _, d := range decisions {
		if !all && !d.Changed() && d.Adjustment.Mode != linebreak.ModeForce {
			continue
		}
		start := d.Curr.Span().Start
		lc := file.LineCol(start)
		rows = append(rows, explainRow{
			Offset:   start,
			Position: fmt.Sprintf("%d:%d", lc.Line, lc.Col),
			PrevKind: d.Prev.Kind().String(),
			PrevText: d.Prev.Text(),
			CurrKind: d.Curr.Kind().String(),
			CurrText: d.Curr.Text(),
			Mode:     d.Adjustment.Mode,
			Count:    d.Adjustment.Lines,
			Rule:     d.Rule,
			Existing: d.Existing,
			Lines:    d.Lines,
			Changed:  d.Changed(),
			Verbatim: d.Verbatim,
		})
	}
	return rows
}

func renderExplainTable(out io.Writer, rows []explainRow, reason linebreak.Reason, total int) error {
	changedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	headerStyle := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("pos", "prev", "curr", "rule", "adjust", "lines").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == headerRow {
				return headerStyle
			}
			return cellStyle
		})
	for _, r := range rows {
		lines := strconv.Itoa(r.Lines)
		if r.Changed {
			lines = changedStyle.Render(fmt.Sprintf("%d -> %d", r.Existing, r.Lines))
		} else if r.Verbatim {
			lines += " (verbatim)"
		}
		adjust := "None"
		if r.Mode != linebreak.ModeNone {
			adjust = fmt.Sprintf("%s(%d)", r.Mode, r.Count)
		}
		t.Row(
			r.Position,
			cellText(r.PrevKind, r.PrevText),
			cellText(r.CurrKind, r.CurrText),
			r.Rule.String(),
			adjust,
			lines,
		)
	}

	if _, err := fmt.Fprintf(out, "reason: %s, %d of %d pair(s) shown\n", reason, len(rows), total); err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	_, err := fmt.Fprintln(out, t.Render())
	return err
}

// cellText keeps a token's text on one line and within the column width.
// Empty tokens (EOF, synthesized ones) print their kind.
func cellText(kind, s string) string {
	if s == "" {
		return "<" + kind + ">"
	}
	s = strings.NewReplacer("\r", `\r`, "\n", `\n`, "\t", `\t`).Replace(s)
	return runewidth.Truncate(s, explainTextWidth, "…")
}
