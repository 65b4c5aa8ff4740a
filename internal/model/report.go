package model

import (
	"time"

	"github.com/socialmind-lab/cohortsim/internal/stats"
)

// CohortReport is the accumulated artifact of one simulation-and-analysis
// run. Pipeline steps fill it in sequence; report writers render it.
//
// Design decision: the raw cohort is carried on the report for downstream
// steps but excluded from JSON output. A few hundred records would dwarf the
// analysis results the report exists to communicate, and the dataset already
// lives in the delimited file referenced by DatasetPath.
type CohortReport struct {
	// Scenario is the name of the parameter scenario that was simulated,
	// or empty when analyzing an existing dataset.
	Scenario string `json:"scenario,omitempty"`

	// Seed is the pseudorandom seed the cohort was generated from.
	Seed int64 `json:"seed"`

	// Count is the number of individuals requested.
	Count int `json:"count"`

	// GeneratedAt is when the run started.
	GeneratedAt time.Time `json:"generated_at"`

	// DatasetPath is where the delimited table was written or read from.
	DatasetPath string `json:"dataset_path,omitempty"`

	// Cohort holds the generated records. Excluded from JSON output.
	Cohort Cohort `json:"-"`

	// Descriptives summarizes each continuous column.
	Descriptives []ColumnDescriptive `json:"descriptives,omitempty"`

	// Correlations holds the Pearson correlation findings.
	Correlations []CorrelationFinding `json:"correlations,omitempty"`

	// Comparisons holds the two-sample group comparisons.
	Comparisons []GroupComparison `json:"comparisons,omitempty"`

	// QuartileContrast contrasts loneliness across usage quartiles.
	QuartileContrast *QuartileContrast `json:"quartile_contrast,omitempty"`

	// BreakSummary summarizes break-taking and its outcomes.
	BreakSummary *BreakSummary `json:"break_summary,omitempty"`

	// PerformedSteps lists the pipeline steps that ran, in order.
	PerformedSteps []string `json:"performed_steps,omitempty"`

	// Error holds a fatal run error, if any. Excluded from JSON output;
	// ErrorMessage carries the serializable form.
	Error error `json:"-"`

	// ErrorMessage is the string form of Error for serialization.
	ErrorMessage string `json:"error,omitempty"`
}

// NewCohortReport creates a report shell for a run.
func NewCohortReport(scenario string, count int, seed int64) *CohortReport {
	return &CohortReport{
		Scenario:    scenario,
		Seed:        seed,
		Count:       count,
		GeneratedAt: time.Now(),
	}
}

// ColumnDescriptive pairs a column name with its summary statistics.
type ColumnDescriptive struct {
	// Column is the dataset column name (e.g. "daily_hours").
	Column string `json:"column"`

	// Stats is the descriptive summary of the column.
	Stats stats.Descriptive `json:"stats"`
}

// CorrelationFinding names the column pair a correlation was computed on.
type CorrelationFinding struct {
	// X and Y are the dataset column names.
	X string `json:"x"`
	Y string `json:"y"`

	// Result is the correlation test outcome.
	Result stats.Correlation `json:"result"`
}

// GroupComparison names the grouping and outcome of a two-sample test.
// Group A is always the records where the grouping field is true.
type GroupComparison struct {
	// Column is the continuous column whose means are compared.
	Column string `json:"column"`

	// GroupBy is the boolean column defining the two groups.
	GroupBy string `json:"group_by"`

	// Result is the Welch t-test outcome.
	Result stats.TTest `json:"result"`
}

// QuartileContrast records the mean of a column within the bottom and top
// quartile of another column. It backs the "heavier usage goes with more
// loneliness" tendency check.
type QuartileContrast struct {
	// Column is the averaged column (e.g. "loneliness").
	Column string `json:"column"`

	// ByColumn is the column whose quartiles define the groups.
	ByColumn string `json:"by_column"`

	// BottomMean and TopMean are group means; BottomN and TopN group sizes.
	BottomMean float64 `json:"bottom_mean"`
	TopMean    float64 `json:"top_mean"`
	BottomN    int     `json:"bottom_n"`
	TopN       int     `json:"top_n"`
}

// BreakSummary summarizes break-taking behavior across the cohort.
type BreakSummary struct {
	// TookBreak is the rate of individuals who took a break.
	TookBreak stats.Proportion `json:"took_break"`

	// FeltBetter is the rate of break-takers who felt better, with N equal
	// to the number of break-takers (the only group where it is defined).
	FeltBetter stats.Proportion `json:"felt_better"`
}
