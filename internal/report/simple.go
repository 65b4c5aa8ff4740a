package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/socialmind-lab/cohortsim/internal/model"
)

// SimpleWriter outputs human-readable text reports.
// This format is designed for terminal display with clear section
// formatting.
//
// Design decision: We use plain text with ASCII formatting rather than
// ANSI colors by default because:
//  1. It works in all terminals without compatibility issues
//  2. It's easier to pipe to files or other tools
//  3. Color can be added as an option later if needed
type SimpleWriter struct {
	baseWriter

	// showEmpty controls whether sections with no findings are shown.
	showEmpty bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithShowEmpty configures the writer to show empty sections.
func WithShowEmpty(show bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.showEmpty = show
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
		showEmpty:  false,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the report in human-readable format.
func (w *SimpleWriter) Write(report *model.CohortReport) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, report)
	w.writeDescriptives(&sb, report)
	w.writeCorrelations(&sb, report)
	w.writeComparisons(&sb, report)
	w.writeBreakSummary(&sb, report)

	return w.output.Write([]byte(sb.String()))
}

// writeHeader writes the report header with run information.
func (w *SimpleWriter) writeHeader(sb *strings.Builder, report *model.CohortReport) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("                      COHORT SIMULATION REPORT\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n\n")

	if report.Scenario != "" {
		sb.WriteString(fmt.Sprintf("Scenario:   %s\n", report.Scenario))
	}
	sb.WriteString(fmt.Sprintf("Records:    %d\n", report.Count))
	sb.WriteString(fmt.Sprintf("Seed:       %d\n", report.Seed))
	sb.WriteString(fmt.Sprintf("Generated:  %s\n", report.GeneratedAt.Format("2006-01-02 15:04:05 MST")))
	if report.DatasetPath != "" {
		sb.WriteString(fmt.Sprintf("Dataset:    %s\n", report.DatasetPath))
	}

	if report.ErrorMessage != "" {
		sb.WriteString(fmt.Sprintf("Status:     ERROR - %s\n", report.ErrorMessage))
	} else {
		sb.WriteString("Status:     Complete\n")
	}

	sb.WriteString("\n")
}

// writeDescriptives writes the per-column descriptive statistics section.
func (w *SimpleWriter) writeDescriptives(sb *strings.Builder, report *model.CohortReport) {
	if len(report.Descriptives) == 0 && !w.showEmpty {
		return
	}

	w.writeSectionHeader(sb, "DESCRIPTIVE STATISTICS")

	if len(report.Descriptives) == 0 {
		sb.WriteString("  No descriptive statistics computed\n\n")
		return
	}

	sb.WriteString(fmt.Sprintf("  %-14s %6s %8s %8s %8s %8s %8s\n",
		"column", "n", "mean", "sd", "min", "median", "max"))
	for _, d := range report.Descriptives {
		sb.WriteString(fmt.Sprintf("  %-14s %6d %8s %8s %8s %8s %8s\n",
			d.Column, d.Stats.N,
			formatFloat(d.Stats.Mean), formatFloat(d.Stats.StdDev),
			formatFloat(d.Stats.Min), formatFloat(d.Stats.Median),
			formatFloat(d.Stats.Max)))
	}
	sb.WriteString("\n")
}

// writeCorrelations writes the correlation findings section.
func (w *SimpleWriter) writeCorrelations(sb *strings.Builder, report *model.CohortReport) {
	if len(report.Correlations) == 0 && !w.showEmpty {
		return
	}

	w.writeSectionHeader(sb, "CORRELATIONS (Pearson)")

	if len(report.Correlations) == 0 {
		sb.WriteString("  No correlations computed\n\n")
		return
	}

	for _, c := range report.Correlations {
		mark := " "
		if c.Result.Significant() {
			mark = "*"
		}
		sb.WriteString(fmt.Sprintf("  %s %s ~ %s: r=%s %s CI %s, t=%s, p=%s\n",
			mark, c.X, c.Y,
			formatFloat(c.Result.R),
			confidenceLabel(c.Result.Alpha),
			formatCI(c.Result.CILower, c.Result.CIUpper),
			formatFloat(c.Result.TStat),
			formatP(c.Result.PValue)))
	}
	sb.WriteString("\n  * significant at the configured level\n\n")
}

// writeComparisons writes the group comparison section.
func (w *SimpleWriter) writeComparisons(sb *strings.Builder, report *model.CohortReport) {
	if len(report.Comparisons) == 0 && report.QuartileContrast == nil && !w.showEmpty {
		return
	}

	w.writeSectionHeader(sb, "GROUP COMPARISONS (Welch t-test)")

	for _, c := range report.Comparisons {
		mark := " "
		if c.Result.Significant() {
			mark = "*"
		}
		sb.WriteString(fmt.Sprintf("  %s %s by %s: %s (n=%d) vs %s (n=%d), diff=%s, t=%s, p=%s\n",
			mark, c.Column, c.GroupBy,
			formatFloat(c.Result.MeanA), c.Result.NA,
			formatFloat(c.Result.MeanB), c.Result.NB,
			formatFloat(c.Result.Diff),
			formatFloat(c.Result.TStat),
			formatP(c.Result.PValue)))
	}

	if qc := report.QuartileContrast; qc != nil {
		sb.WriteString(fmt.Sprintf("\n  Mean %s in bottom %s quartile: %s (n=%d)\n",
			qc.Column, qc.ByColumn, formatFloat(qc.BottomMean), qc.BottomN))
		sb.WriteString(fmt.Sprintf("  Mean %s in top %s quartile:    %s (n=%d)\n",
			qc.Column, qc.ByColumn, formatFloat(qc.TopMean), qc.TopN))
	}
	sb.WriteString("\n")
}

// writeBreakSummary writes the break behavior section.
func (w *SimpleWriter) writeBreakSummary(sb *strings.Builder, report *model.CohortReport) {
	bs := report.BreakSummary
	if bs == nil && !w.showEmpty {
		return
	}

	w.writeSectionHeader(sb, "BREAK BEHAVIOR")

	if bs == nil {
		sb.WriteString("  No break summary computed\n\n")
		return
	}

	sb.WriteString(fmt.Sprintf("  Took a break:        %d of %d (%s)\n",
		bs.TookBreak.Successes, bs.TookBreak.N, formatPercent(bs.TookBreak.Rate)))
	sb.WriteString(fmt.Sprintf("  Felt better after:   %d of %d break-takers (%s)\n",
		bs.FeltBetter.Successes, bs.FeltBetter.N, formatPercent(bs.FeltBetter.Rate)))
	sb.WriteString("\n")
}

// writeSectionHeader writes a dashed section divider with title.
func (w *SimpleWriter) writeSectionHeader(sb *strings.Builder, title string) {
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString(title)
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")
}
