package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/socialmind-lab/cohortsim/internal/model"
	"github.com/socialmind-lab/cohortsim/internal/stats"
)

// sampleReport builds a fully populated report with hand-picked numbers so
// writer output is stable across runs.
func sampleReport() *model.CohortReport {
	return &model.CohortReport{
		Scenario:    "baseline",
		Seed:        42,
		Count:       250,
		GeneratedAt: time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
		DatasetPath: "cohort.csv",
		Descriptives: []model.ColumnDescriptive{
			{Column: "daily_hours", Stats: stats.Descriptive{
				N: 250, Mean: 3.21, StdDev: 1.75, Min: 0, Q1: 2.1, Median: 3.2, Q3: 4.4, Max: 9.8,
			}},
			{Column: "loneliness", Stats: stats.Descriptive{
				N: 250, Mean: 4.91, StdDev: 1.94, Min: 1, Q1: 3.6, Median: 4.9, Q3: 6.2, Max: 10,
			}},
		},
		Correlations: []model.CorrelationFinding{
			{X: "daily_hours", Y: "loneliness", Result: stats.Correlation{
				R: 0.62, N: 250, TStat: 12.45, PValue: 0.00002,
				Alpha: 0.05, CILower: 0.54, CIUpper: 0.69,
			}},
			{X: "loneliness", Y: "depression", Result: stats.Correlation{
				R: 0.11, N: 250, TStat: 1.74, PValue: 0.083,
				Alpha: 0.05, CILower: -0.01, CIUpper: 0.23,
			}},
		},
		Comparisons: []model.GroupComparison{
			{Column: "depression", GroupBy: "compare_self", Result: stats.TTest{
				MeanA: 5.4, MeanB: 3.9, NA: 110, NB: 140, Diff: 1.5,
				TStat: 6.2, DF: 231.4, PValue: 0.0000001,
				Alpha: 0.05, CILower: 1.02, CIUpper: 1.98,
			}},
		},
		QuartileContrast: &model.QuartileContrast{
			Column: "loneliness", ByColumn: "daily_hours",
			BottomMean: 3.8, TopMean: 6.4, BottomN: 63, TopN: 64,
		},
		BreakSummary: &model.BreakSummary{
			TookBreak:  stats.NewProportion(90, 250),
			FeltBetter: stats.NewProportion(63, 90),
		},
		PerformedSteps: []string{"simulate", "write_table", "describe", "correlate", "compare", "break_summary"},
	}
}

func TestSimpleWriter(t *testing.T) {
	t.Parallel()

	t.Run("full report", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		n, err := NewSimpleWriter(&buf).Write(sampleReport())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if n != buf.Len() {
			t.Errorf("expected reported length %d to match buffer %d", n, buf.Len())
		}

		out := buf.String()
		for _, want := range []string{
			"COHORT SIMULATION REPORT",
			"Scenario:   baseline",
			"Records:    250",
			"Seed:       42",
			"Status:     Complete",
			"DESCRIPTIVE STATISTICS",
			"daily_hours",
			"CORRELATIONS (Pearson)",
			"* daily_hours ~ loneliness",
			"r=0.620",
			"GROUP COMPARISONS (Welch t-test)",
			"depression by compare_self",
			"p=<0.0001",
			"Mean loneliness in bottom daily_hours quartile: 3.800 (n=63)",
			"BREAK BEHAVIOR",
			"Took a break:        90 of 250 (36.0%)",
			"Felt better after:   63 of 90 break-takers (70.0%)",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("expected output to contain %q", want)
			}
		}

		// The insignificant correlation must not carry the marker.
		if strings.Contains(out, "* loneliness ~ depression") {
			t.Error("expected no significance marker on the insignificant pair")
		}
	})

	t.Run("empty sections hidden by default", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		report := &model.CohortReport{Count: 10, Seed: 1, GeneratedAt: time.Now()}
		if _, err := NewSimpleWriter(&buf).Write(report); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if strings.Contains(buf.String(), "CORRELATIONS") {
			t.Error("expected empty correlation section to be hidden")
		}
	})

	t.Run("empty sections shown on request", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		report := &model.CohortReport{Count: 10, Seed: 1, GeneratedAt: time.Now()}
		if _, err := NewSimpleWriter(&buf, WithShowEmpty(true)).Write(report); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		out := buf.String()
		if !strings.Contains(out, "No correlations computed") {
			t.Error("expected empty correlation placeholder")
		}
		if !strings.Contains(out, "No break summary computed") {
			t.Error("expected empty break summary placeholder")
		}
	})

	t.Run("error status", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		report := &model.CohortReport{Count: 10, GeneratedAt: time.Now(), ErrorMessage: "generation failed"}
		if _, err := NewSimpleWriter(&buf).Write(report); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !strings.Contains(buf.String(), "Status:     ERROR - generation failed") {
			t.Error("expected error status line")
		}
	})
}

func TestJSONWriter(t *testing.T) {
	t.Parallel()

	t.Run("compact output round trips", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf).Write(sampleReport()); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		var decoded model.CohortReport
		if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
			t.Fatalf("expected valid JSON, got %v", err)
		}
		if decoded.Count != 250 || decoded.Seed != 42 {
			t.Errorf("expected count 250 seed 42, got %d and %d", decoded.Count, decoded.Seed)
		}
		if len(decoded.Correlations) != 2 {
			t.Errorf("expected 2 correlations, got %d", len(decoded.Correlations))
		}
		if decoded.BreakSummary == nil || decoded.BreakSummary.TookBreak.Successes != 90 {
			t.Error("expected break summary to survive the round trip")
		}
	})

	t.Run("cohort excluded from output", func(t *testing.T) {
		t.Parallel()
		report := sampleReport()
		report.Cohort = model.Cohort{{DailyHours: 1, Loneliness: 2, Depression: 2, Anxiety: 2}}

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf).Write(report); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if strings.Contains(buf.String(), "\"cohort\"") {
			t.Error("expected raw cohort to be excluded from JSON")
		}
	})

	t.Run("pretty print indents", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf, WithPrettyPrint()).Write(sampleReport()); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !strings.Contains(buf.String(), "\n  \"") {
			t.Error("expected indented output")
		}
	})

	t.Run("versioned wrapper", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		if _, err := NewFullJSONWriter(&buf, "1.2.3").Write(sampleReport()); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		var decoded VersionedReport
		if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
			t.Fatalf("expected valid JSON, got %v", err)
		}
		if decoded.Version != "1.2.3" {
			t.Errorf("expected version 1.2.3, got %q", decoded.Version)
		}
		if decoded.Report == nil || decoded.Report.Count != 250 {
			t.Error("expected wrapped report")
		}
	})
}

func TestMarkdownWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if _, err := NewMarkdownWriter(&buf).Write(sampleReport()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"# Cohort Simulation Report",
		"## Descriptive Statistics",
		"## Correlations",
		"## Group Comparisons",
		"### Usage Quartile Contrast",
		"## Break Behavior",
		"`daily_hours`",
		"synthetic",
		"```mermaid",
		"Break Outcomes",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected markdown output to contain %q", want)
		}
	}
}

// failWriter is a Writer that always fails, for MultiWriter error paths.
type failWriter struct{}

func (failWriter) Write(_ *model.CohortReport) (int, error) {
	return 0, errors.New("write failed")
}

func TestMultiWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes to every destination", func(t *testing.T) {
		t.Parallel()
		var a, b bytes.Buffer
		mw := NewMultiWriter(NewSimpleWriter(&a), NewJSONWriter(&b))

		total, err := mw.Write(sampleReport())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if a.Len() == 0 || b.Len() == 0 {
			t.Error("expected output in both destinations")
		}
		if total != a.Len()+b.Len() {
			t.Errorf("expected total %d, got %d", a.Len()+b.Len(), total)
		}
	})

	t.Run("stops on first failure", func(t *testing.T) {
		t.Parallel()
		var after bytes.Buffer
		mw := NewMultiWriter(failWriter{}, NewSimpleWriter(&after))

		if _, err := mw.Write(sampleReport()); err == nil {
			t.Fatal("expected the failing writer's error")
		}
		if after.Len() != 0 {
			t.Error("expected no output after the failure")
		}
	})
}
