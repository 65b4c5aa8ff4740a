package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"

	"github.com/socialmind-lab/cohortsim/internal/model"
)

// MarkdownWriter outputs reports in Markdown format.
// This format is designed for documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
//  1. Type-safe markdown generation
//  2. Support for tables, lists, and code blocks
//  3. GitHub-flavored markdown alerts and mermaid charts
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the report in Markdown format.
func (w *MarkdownWriter) Write(report *model.CohortReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, report)
	w.writeDescriptives(md, report)
	w.writeCorrelations(md, report)
	w.writeComparisons(md, report)
	w.writeBreakSummary(md, report)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeHeader writes the report header with run information.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, report *model.CohortReport) {
	md.H1("Cohort Simulation Report")
	md.PlainText("")

	rows := [][]string{
		{"Records", strconv.Itoa(report.Count)},
		{"Seed", strconv.FormatInt(report.Seed, 10)},
		{"Generated", report.GeneratedAt.Format("2006-01-02 15:04:05 MST")},
		{"Status", w.getStatusText(report)},
	}
	if report.Scenario != "" {
		rows = append([][]string{{"Scenario", "`" + report.Scenario + "`"}}, rows...)
	}
	if report.DatasetPath != "" {
		rows = append(rows, []string{"Dataset", "`" + report.DatasetPath + "`"})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows:   rows,
	})
	md.PlainText("")

	md.Note("All records in this report are synthetic. The dataset is produced " +
		"by a seeded causal simulation and describes no real individuals.")
	md.PlainText("")
}

// getStatusText returns the status text based on report state.
func (w *MarkdownWriter) getStatusText(report *model.CohortReport) string {
	if report.ErrorMessage != "" {
		return "❌ Error - " + report.ErrorMessage
	}
	return "✅ Complete"
}

// writeDescriptives writes the per-column descriptive statistics table.
func (w *MarkdownWriter) writeDescriptives(md *markdown.Markdown, report *model.CohortReport) {
	md.H2("Descriptive Statistics")
	md.PlainText("")

	if len(report.Descriptives) == 0 {
		md.PlainText("No descriptive statistics computed.")
		md.PlainText("")
		return
	}

	rows := make([][]string, 0, len(report.Descriptives))
	for _, d := range report.Descriptives {
		rows = append(rows, []string{
			"`" + d.Column + "`",
			strconv.Itoa(d.Stats.N),
			formatFloat(d.Stats.Mean),
			formatFloat(d.Stats.StdDev),
			formatFloat(d.Stats.Min),
			formatFloat(d.Stats.Q1),
			formatFloat(d.Stats.Median),
			formatFloat(d.Stats.Q3),
			formatFloat(d.Stats.Max),
		})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Column", "N", "Mean", "SD", "Min", "Q1", "Median", "Q3", "Max"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeCorrelations writes the correlation findings table and an alert
// summarizing whether the simulated association showed up.
func (w *MarkdownWriter) writeCorrelations(md *markdown.Markdown, report *model.CohortReport) {
	md.H2("Correlations")
	md.PlainText("")

	if len(report.Correlations) == 0 {
		md.PlainText("No correlations computed.")
		md.PlainText("")
		return
	}

	rows := make([][]string, 0, len(report.Correlations))
	significant := 0
	var ciLabel string
	for _, c := range report.Correlations {
		if c.Result.Significant() {
			significant++
		}
		ciLabel = confidenceLabel(c.Result.Alpha)
		rows = append(rows, []string{
			"`" + c.X + "` ~ `" + c.Y + "`",
			formatFloat(c.Result.R),
			formatCI(c.Result.CILower, c.Result.CIUpper),
			formatFloat(c.Result.TStat),
			formatP(c.Result.PValue),
			significanceMark(c.Result.Significant()),
		})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Pair", "r", ciLabel + " CI", "t", "p", "Significant"},
		Rows:   rows,
	})
	md.PlainText("")

	switch {
	case significant == len(report.Correlations):
		md.Importantf("All %d correlation tests are significant: the simulated "+
			"usage-distress association is visible at this sample size.", significant)
	case significant > 0:
		md.Notef("%d of %d correlation tests are significant.", significant, len(report.Correlations))
	default:
		md.Warning("No correlation test reached significance. With the default " +
			"coefficients this indicates a very small cohort; increase the record count.")
	}
	md.PlainText("")
}

// writeComparisons writes the group comparison table and quartile contrast.
func (w *MarkdownWriter) writeComparisons(md *markdown.Markdown, report *model.CohortReport) {
	md.H2("Group Comparisons")
	md.PlainText("")

	if len(report.Comparisons) == 0 && report.QuartileContrast == nil {
		md.PlainText("No group comparisons computed.")
		md.PlainText("")
		return
	}

	if len(report.Comparisons) > 0 {
		rows := make([][]string, 0, len(report.Comparisons))
		for _, c := range report.Comparisons {
			rows = append(rows, []string{
				"`" + c.Column + "` by `" + c.GroupBy + "`",
				fmt.Sprintf("%s (n=%d)", formatFloat(c.Result.MeanA), c.Result.NA),
				fmt.Sprintf("%s (n=%d)", formatFloat(c.Result.MeanB), c.Result.NB),
				formatFloat(c.Result.Diff),
				formatCI(c.Result.CILower, c.Result.CIUpper),
				formatP(c.Result.PValue),
				significanceMark(c.Result.Significant()),
			})
		}

		md.Table(markdown.TableSet{
			Header: []string{"Comparison", "Group mean (true)", "Group mean (false)", "Diff", "CI", "p", "Significant"},
			Rows:   rows,
		})
		md.PlainText("")
	}

	if qc := report.QuartileContrast; qc != nil {
		md.H3("Usage Quartile Contrast")
		md.PlainText("")
		md.Table(markdown.TableSet{
			Header: []string{"Group", "Mean `" + qc.Column + "`", "N"},
			Rows: [][]string{
				{"Bottom `" + qc.ByColumn + "` quartile", formatFloat(qc.BottomMean), strconv.Itoa(qc.BottomN)},
				{"Top `" + qc.ByColumn + "` quartile", formatFloat(qc.TopMean), strconv.Itoa(qc.TopN)},
			},
		})
		md.PlainText("")
	}
}

// writeBreakSummary writes the break behavior section with a pie chart.
func (w *MarkdownWriter) writeBreakSummary(md *markdown.Markdown, report *model.CohortReport) {
	bs := report.BreakSummary
	if bs == nil {
		return
	}

	md.H2("Break Behavior")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Outcome", "Count", "Rate"},
		Rows: [][]string{
			{"Took a break", strconv.Itoa(bs.TookBreak.Successes), formatPercent(bs.TookBreak.Rate)},
			{"Felt better (of break-takers)", strconv.Itoa(bs.FeltBetter.Successes), formatPercent(bs.FeltBetter.Rate)},
		},
	})
	md.PlainText("")

	w.writePieChart(md, report)
}

// writePieChart writes a mermaid pie chart of break outcomes.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, report *model.CohortReport) {
	bs := report.BreakSummary
	noBreak := bs.TookBreak.N - bs.TookBreak.Successes
	better := bs.FeltBetter.Successes
	noChange := bs.TookBreak.Successes - better

	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Break Outcomes"),
		piechart.WithShowData(true),
	)

	if noBreak > 0 {
		chart.LabelAndIntValue("No break", uint64(noBreak))
	}
	if better > 0 {
		chart.LabelAndIntValue("Break, felt better", uint64(better))
	}
	if noChange > 0 {
		chart.LabelAndIntValue("Break, no change", uint64(noChange))
	}

	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Report generated by [cohortsim](https://github.com/socialmind-lab/cohortsim)*")
}
