package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/socialmind-lab/cohortsim/internal/model"
	"github.com/socialmind-lab/cohortsim/internal/sim"
	"github.com/socialmind-lab/cohortsim/internal/stats"
	"github.com/socialmind-lab/cohortsim/internal/table"
)

// Dataset column names as used in analysis findings. These match the
// delimited table schema so report readers can cross-reference the file.
const (
	colDailyHours = "daily_hours"
	colLoneliness = "loneliness"
	colDepression = "depression"
	colAnxiety    = "anxiety"
	colCompare    = "compare_self"
	colTookBreak  = "took_break"
)

// SimulateStep generates the synthetic cohort.
// This is always the first step of a generation run; every later step
// consumes the cohort it places on the report.
type SimulateStep struct {
	params sim.Params
	logger *slog.Logger
}

// SimulateStepOption configures a SimulateStep.
type SimulateStepOption func(*SimulateStep)

// WithSimulateLogger sets a custom logger for the simulate step.
func WithSimulateLogger(logger *slog.Logger) SimulateStepOption {
	return func(s *SimulateStep) {
		s.logger = logger
	}
}

// NewSimulateStep creates a step generating a cohort with the given
// parameters. Count and seed come from the report so the report always
// documents the exact inputs of its own cohort.
func NewSimulateStep(params sim.Params, opts ...SimulateStepOption) *SimulateStep {
	s := &SimulateStep{
		params: params,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the step name.
func (s *SimulateStep) Name() string {
	return "simulate"
}

// Do generates the cohort and verifies the generation invariants.
func (s *SimulateStep) Do(_ context.Context, report *model.CohortReport) error {
	s.logger.Debug("generating cohort",
		"count", report.Count,
		"seed", report.Seed,
		"scenario", report.Scenario,
	)

	cohort, err := sim.Generate(s.params, report.Count, report.Seed)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	// The generator clamps everything it emits; a violation here means a
	// bug in the causal chain, not bad input.
	if err := cohort.Validate(); err != nil {
		return fmt.Errorf("generated cohort violates invariants: %w", err)
	}

	report.Cohort = cohort
	return nil
}

// WriteTableStep persists the cohort as a delimited file.
type WriteTableStep struct {
	path      string
	precision int
	logger    *slog.Logger
}

// WriteTableStepOption configures a WriteTableStep.
type WriteTableStepOption func(*WriteTableStep)

// WithWriteTableLogger sets a custom logger for the write step.
func WithWriteTableLogger(logger *slog.Logger) WriteTableStepOption {
	return func(s *WriteTableStep) {
		s.logger = logger
	}
}

// NewWriteTableStep creates a step writing the dataset to path with the
// given decimal precision.
func NewWriteTableStep(path string, precision int, opts ...WriteTableStepOption) *WriteTableStep {
	s := &WriteTableStep{
		path:      path,
		precision: precision,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the step name.
func (s *WriteTableStep) Name() string {
	return "write_table"
}

// Do writes the cohort to the configured path.
func (s *WriteTableStep) Do(_ context.Context, report *model.CohortReport) error {
	if err := table.WriteFile(s.path, report.Cohort, s.precision); err != nil {
		return err
	}
	report.DatasetPath = s.path
	s.logger.Debug("dataset written", "path", s.path, "records", report.Cohort.Len())
	return nil
}

// DescribeStep computes descriptive statistics for each continuous column.
type DescribeStep struct{}

// NewDescribeStep creates a describe step.
func NewDescribeStep() *DescribeStep {
	return &DescribeStep{}
}

// Name returns the step name.
func (s *DescribeStep) Name() string {
	return "describe"
}

// Do fills the report's per-column descriptive summaries.
func (s *DescribeStep) Do(_ context.Context, report *model.CohortReport) error {
	columns := []struct {
		name   string
		values []float64
	}{
		{colDailyHours, report.Cohort.DailyHours()},
		{colLoneliness, report.Cohort.Loneliness()},
		{colDepression, report.Cohort.Depression()},
		{colAnxiety, report.Cohort.Anxiety()},
	}

	for _, col := range columns {
		d, err := stats.Describe(col.values)
		if err != nil {
			return fmt.Errorf("describe %s: %w", col.name, err)
		}
		report.Descriptives = append(report.Descriptives, model.ColumnDescriptive{
			Column: col.name,
			Stats:  d,
		})
	}
	return nil
}

// CorrelateStep runs Pearson correlation tests between usage and each
// distress score, and between the distress scores themselves.
type CorrelateStep struct {
	alpha  float64
	logger *slog.Logger
}

// CorrelateStepOption configures a CorrelateStep.
type CorrelateStepOption func(*CorrelateStep)

// WithCorrelateLogger sets a custom logger for the correlate step.
func WithCorrelateLogger(logger *slog.Logger) CorrelateStepOption {
	return func(s *CorrelateStep) {
		s.logger = logger
	}
}

// NewCorrelateStep creates a correlation step at the given significance
// level.
func NewCorrelateStep(alpha float64, opts ...CorrelateStepOption) *CorrelateStep {
	s := &CorrelateStep{
		alpha:  alpha,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the step name.
func (s *CorrelateStep) Name() string {
	return "correlate"
}

// Do computes the correlation findings. Pairs with too few observations are
// skipped with a warning rather than failing the run; the remaining
// findings are still worth reporting.
func (s *CorrelateStep) Do(_ context.Context, report *model.CohortReport) error {
	hours := report.Cohort.DailyHours()
	pairs := []struct {
		x, y   string
		xs, ys []float64
	}{
		{colDailyHours, colLoneliness, hours, report.Cohort.Loneliness()},
		{colDailyHours, colDepression, hours, report.Cohort.Depression()},
		{colDailyHours, colAnxiety, hours, report.Cohort.Anxiety()},
		{colLoneliness, colDepression, report.Cohort.Loneliness(), report.Cohort.Depression()},
	}

	for _, pair := range pairs {
		result, err := stats.Pearson(pair.xs, pair.ys, s.alpha)
		if errors.Is(err, stats.ErrInsufficientData) {
			s.logger.Warn("skipping correlation: too few observations",
				"x", pair.x, "y", pair.y, "n", len(pair.xs))
			continue
		}
		if err != nil {
			return fmt.Errorf("correlate %s with %s: %w", pair.x, pair.y, err)
		}
		report.Correlations = append(report.Correlations, model.CorrelationFinding{
			X:      pair.x,
			Y:      pair.y,
			Result: result,
		})
	}
	return nil
}

// CompareStep runs Welch t-tests across the boolean groupings and computes
// the usage-quartile loneliness contrast.
type CompareStep struct {
	alpha  float64
	logger *slog.Logger
}

// CompareStepOption configures a CompareStep.
type CompareStepOption func(*CompareStep)

// WithCompareLogger sets a custom logger for the compare step.
func WithCompareLogger(logger *slog.Logger) CompareStepOption {
	return func(s *CompareStep) {
		s.logger = logger
	}
}

// NewCompareStep creates a group comparison step at the given significance
// level.
func NewCompareStep(alpha float64, opts ...CompareStepOption) *CompareStep {
	s := &CompareStep{
		alpha:  alpha,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the step name.
func (s *CompareStep) Name() string {
	return "compare"
}

// Do computes the group comparisons. Groupings that leave one side with
// fewer than two members are skipped with a warning; a degenerate split is
// a property of the cohort, not a failure of the analysis.
func (s *CompareStep) Do(_ context.Context, report *model.CohortReport) error {
	comparers, others := report.Cohort.Partition(func(ind *model.Individual) bool {
		return ind.CompareSelf
	})
	breakers, nonBreakers := report.Cohort.Partition(func(ind *model.Individual) bool {
		return ind.TookBreak
	})

	comparisons := []struct {
		column, groupBy string
		a, b            []float64
	}{
		{colDepression, colCompare, comparers.Depression(), others.Depression()},
		{colAnxiety, colCompare, comparers.Anxiety(), others.Anxiety()},
		{colLoneliness, colTookBreak, breakers.Loneliness(), nonBreakers.Loneliness()},
	}

	for _, cmp := range comparisons {
		result, err := stats.WelchT(cmp.a, cmp.b, s.alpha)
		if errors.Is(err, stats.ErrInsufficientData) {
			s.logger.Warn("skipping comparison: group too small",
				"column", cmp.column, "group_by", cmp.groupBy,
				"n_a", len(cmp.a), "n_b", len(cmp.b))
			continue
		}
		if err != nil {
			return fmt.Errorf("compare %s by %s: %w", cmp.column, cmp.groupBy, err)
		}
		report.Comparisons = append(report.Comparisons, model.GroupComparison{
			Column:  cmp.column,
			GroupBy: cmp.groupBy,
			Result:  result,
		})
	}

	// Usage-quartile contrast: mean loneliness in the bottom vs top
	// quartile of daily hours.
	bottom, top, err := stats.QuartileSplit(report.Cohort.DailyHours(), report.Cohort.Loneliness())
	if errors.Is(err, stats.ErrInsufficientData) {
		s.logger.Warn("skipping quartile contrast: cohort too small",
			"n", report.Cohort.Len())
		return nil
	}
	if err != nil {
		return fmt.Errorf("quartile contrast: %w", err)
	}

	bottomStats, err := stats.Describe(bottom)
	if err != nil {
		return fmt.Errorf("quartile contrast (bottom): %w", err)
	}
	topStats, err := stats.Describe(top)
	if err != nil {
		return fmt.Errorf("quartile contrast (top): %w", err)
	}
	report.QuartileContrast = &model.QuartileContrast{
		Column:     colLoneliness,
		ByColumn:   colDailyHours,
		BottomMean: bottomStats.Mean,
		TopMean:    topStats.Mean,
		BottomN:    bottomStats.N,
		TopN:       topStats.N,
	}
	return nil
}

// BreakSummaryStep summarizes break-taking behavior and its outcomes.
type BreakSummaryStep struct{}

// NewBreakSummaryStep creates a break summary step.
func NewBreakSummaryStep() *BreakSummaryStep {
	return &BreakSummaryStep{}
}

// Name returns the step name.
func (s *BreakSummaryStep) Name() string {
	return "break_summary"
}

// Do computes the break-taking and felt-better rates.
// The felt-better rate is computed over break-takers only, the sole group
// where the outcome is defined.
func (s *BreakSummaryStep) Do(_ context.Context, report *model.CohortReport) error {
	var tookBreak, feltBetter int
	for i := range report.Cohort {
		ind := &report.Cohort[i]
		if !ind.TookBreak {
			continue
		}
		tookBreak++
		if ind.FeltBetter != nil && *ind.FeltBetter {
			feltBetter++
		}
	}

	report.BreakSummary = &model.BreakSummary{
		TookBreak:  stats.NewProportion(tookBreak, report.Cohort.Len()),
		FeltBetter: stats.NewProportion(feltBetter, tookBreak),
	}
	return nil
}
