package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/socialmind-lab/cohortsim/internal/config"
	"github.com/socialmind-lab/cohortsim/internal/log"
	"github.com/socialmind-lab/cohortsim/internal/model"
	"github.com/socialmind-lab/cohortsim/internal/pipeline"
	"github.com/socialmind-lab/cohortsim/internal/table"
)

// NewAnalyzeCmd creates the analyze command.
func NewAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze <dataset.csv>",
		Short: "Analyze an existing cohort dataset",
		Long: `Analyze reads a previously generated delimited dataset and runs the full
statistical analysis: descriptive statistics, Pearson correlation tests,
Welch t-tests across the boolean groupings, and the break-outcome summary.

The dataset must carry the fixed cohortsim schema (see 'cohortsim generate').

Examples:
  # Text report to the terminal
  cohortsim analyze cohort.csv

  # Markdown report to a file
  cohortsim analyze --markdown --report report.md cohort.csv

  # Stricter significance level
  cohortsim analyze --alpha 0.01 cohort.csv`,
		Args: cobra.ExactArgs(1),
		RunE: runAnalyzeCmd,
	}

	cmd.Flags().Float64("alpha", config.DefaultAlpha,
		"Significance level for hypothesis tests and confidence intervals")
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().String("report", "",
		"Write the report to the specified file path (creates directories if needed)")

	return cmd
}

// runAnalyzeCmd executes the analyze command.
func runAnalyzeCmd(cmd *cobra.Command, args []string) error {
	cfg := config.NewConfig()
	cfg.DatasetPath = args[0]

	var err error
	cfg.Alpha, err = cmd.Flags().GetFloat64("alpha")
	if err != nil {
		return err
	}
	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}
	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return err
	}
	cfg.ReportFile, err = cmd.Flags().GetString("report")
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := log.New(os.Stderr, getVerboseFlag(cmd))
	slog.SetDefault(logger)

	return runAnalyze(cmd, cfg, logger)
}

// runAnalyze reads the dataset and executes the analysis pipeline.
func runAnalyze(cmd *cobra.Command, cfg *config.Config, logger *slog.Logger) error {
	cohort, err := table.ReadFile(cfg.DatasetPath)
	if err != nil {
		return err
	}

	// A parsed dataset may come from anywhere; check the invariants the
	// analysis relies on before computing anything.
	if err := cohort.Validate(); err != nil {
		return fmt.Errorf("dataset %s: %w", cfg.DatasetPath, err)
	}

	logger.Info("analyzing dataset",
		"path", cfg.DatasetPath,
		"records", cohort.Len(),
		"alpha", cfg.Alpha,
	)

	// Seed is unknown for an external dataset; the report documents the
	// dataset path instead.
	cohortReport := &model.CohortReport{
		Count:       cohort.Len(),
		GeneratedAt: time.Now(),
		DatasetPath: cfg.DatasetPath,
		Cohort:      cohort,
	}

	p := pipeline.New(pipeline.WithLogger(logger))
	p.AddSteps(
		pipeline.NewDescribeStep(),
		pipeline.NewCorrelateStep(cfg.Alpha, pipeline.WithCorrelateLogger(logger)),
		pipeline.NewCompareStep(cfg.Alpha, pipeline.WithCompareLogger(logger)),
		pipeline.NewBreakSummaryStep(),
	)

	if err := p.Execute(cmd.Context(), cohortReport); err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	return outputReport(cfg, cohortReport)
}
