package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/socialmind-lab/cohortsim/internal/config"
	"github.com/socialmind-lab/cohortsim/internal/log"
	"github.com/socialmind-lab/cohortsim/internal/model"
	"github.com/socialmind-lab/cohortsim/internal/pipeline"
	"github.com/socialmind-lab/cohortsim/internal/report"
)

// NewGenerateCmd creates the generate command.
func NewGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a synthetic cohort dataset and analyze it",
		Long: `Generate simulates a synthetic cohort of social-media users with correlated
mental-health indicators, writes it as a delimited dataset, and (unless
--dataset-only is set) runs the statistical analysis and outputs a report.

The simulation is fully deterministic: the same count, seed, and scenario
always produce the same dataset.

Examples:
  # Generate the default cohort (250 records, seed 42) into cohort.csv
  cohortsim generate

  # Larger cohort with a different seed
  cohortsim generate --count 1000 --seed 7

  # Use the high-exposure scenario from a config file
  cohortsim generate --scenario high-exposure -c study.yaml

  # Write the dataset only, no analysis
  cohortsim generate --dataset-only -o data/cohort.csv

  # Markdown report to a file
  cohortsim generate --markdown --report report.md

Configuration file (.cohortsim) example:
  defaults:
    count: 500
  scenarios:
    high-exposure:
      preset: high-exposure
      seed: 1234
    quiet-cohort:
      hoursMean: 1.5
      compareIntercept: -3.0`,
		RunE: runGenerateCmd,
	}

	// Simulation flags
	cmd.Flags().IntP("count", "n", config.DefaultCount,
		"Number of individuals to generate")
	cmd.Flags().Int64P("seed", "s", config.DefaultSeed,
		"Pseudorandom seed for the generator")
	cmd.Flags().String("scenario", "",
		"Named scenario from the configuration file")

	// Dataset flags
	cmd.Flags().StringP("output", "o", config.DefaultDatasetFile,
		"Output path for the delimited dataset")
	cmd.Flags().Int("precision", config.DefaultPrecision,
		"Decimal precision of continuous dataset columns")
	cmd.Flags().Bool("dataset-only", false,
		"Write the dataset and skip analysis and report output")

	// Analysis flags
	cmd.Flags().Float64("alpha", config.DefaultAlpha,
		"Significance level for hypothesis tests and confidence intervals")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .cohortsim in current directory, XDG config directory, or home)")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().String("report", "",
		"Write the report to the specified file path (creates directories if needed)")

	return cmd
}

// runGenerateCmd executes the generate command.
func runGenerateCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildGenerateConfig(cmd)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Set up structured logging
	logger := log.New(os.Stderr, getVerboseFlag(cmd))
	slog.SetDefault(logger)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			logger.Info("received shutdown signal, cancelling...")
			cancel()
		case <-ctx.Done():
		}
	}()

	return runGenerate(ctx, cfg, logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildGenerateConfig creates a Config from cobra command flags.
// Precedence: CLI flag explicitly set > scenario file > defaults.
func buildGenerateConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error

	cfg.Count, err = cmd.Flags().GetInt("count")
	if err != nil {
		return nil, err
	}

	cfg.Seed, err = cmd.Flags().GetInt64("seed")
	if err != nil {
		return nil, err
	}

	cfg.Scenario, err = cmd.Flags().GetString("scenario")
	if err != nil {
		return nil, err
	}

	cfg.DatasetPath, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	cfg.Precision, err = cmd.Flags().GetInt("precision")
	if err != nil {
		return nil, err
	}

	cfg.DatasetOnly, err = cmd.Flags().GetBool("dataset-only")
	if err != nil {
		return nil, err
	}

	cfg.Alpha, err = cmd.Flags().GetFloat64("alpha")
	if err != nil {
		return nil, err
	}

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	if err := loadScenarioFile(cfg); err != nil {
		return nil, err
	}

	// Scenario file overrides for count and seed apply only when the
	// corresponding flag was not given explicitly.
	scenario := cfg.Scenarios.GetScenario(cfg.Scenario)
	if scenario.Count != nil && !cmd.Flags().Changed("count") {
		cfg.Count = *scenario.Count
	}
	if scenario.Seed != nil && !cmd.Flags().Changed("seed") {
		cfg.Seed = *scenario.Seed
	}

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	cfg.ReportFile, err = cmd.Flags().GetString("report")
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadScenarioFile loads scenario definitions into the config.
// If the user explicitly specified a config file path, a missing file is an
// error. If no path was specified, a missing file silently yields an empty
// scenario set.
func loadScenarioFile(cfg *config.Config) error {
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	switch {
	case configPath != "":
		scenarios, err := config.LoadConfigFile(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		cfg.Scenarios = scenarios
	case explicitConfigPath:
		return fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	default:
		cfg.Scenarios = &config.File{
			Scenarios: make(map[string]config.Scenario),
		}
	}
	return nil
}

// runGenerate executes the generation run.
func runGenerate(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("starting generation",
		"count", cfg.Count,
		"seed", cfg.Seed,
		"scenario", cfg.Scenario,
		"dataset", cfg.DatasetPath,
	)

	// Resolve the scenario into concrete simulation parameters.
	scenario := cfg.Scenarios.GetScenario(cfg.Scenario)
	params, err := scenario.Params()
	if err != nil {
		return fmt.Errorf("invalid scenario %q: %w", cfg.Scenario, err)
	}

	p := pipeline.New(pipeline.WithLogger(logger))
	p.AddSteps(
		pipeline.NewSimulateStep(params, pipeline.WithSimulateLogger(logger)),
		pipeline.NewWriteTableStep(cfg.DatasetPath, cfg.Precision, pipeline.WithWriteTableLogger(logger)),
	)
	if !cfg.DatasetOnly {
		p.AddSteps(
			pipeline.NewDescribeStep(),
			pipeline.NewCorrelateStep(cfg.Alpha, pipeline.WithCorrelateLogger(logger)),
			pipeline.NewCompareStep(cfg.Alpha, pipeline.WithCompareLogger(logger)),
			pipeline.NewBreakSummaryStep(),
		)
	}

	cohortReport := model.NewCohortReport(cfg.Scenario, cfg.Count, cfg.Seed)

	startTime := time.Now()
	if err := p.Execute(ctx, cohortReport); err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}
	elapsed := time.Since(startTime)

	fmt.Printf("Generated %d records to %s in %s\n",
		cohortReport.Cohort.Len(), cfg.DatasetPath, elapsed.Round(time.Millisecond))

	if cfg.DatasetOnly {
		return nil
	}

	fmt.Println()
	return outputReport(cfg, cohortReport)
}

// outputReport outputs the analysis report in the requested format.
func outputReport(cfg *config.Config, cohortReport *model.CohortReport) error {
	// Determine output destination
	var output *os.File
	if cfg.ReportFile != "" {
		// Create directories if they don't exist
		dir := filepath.Dir(cfg.ReportFile)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}

		f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		output = f
	} else {
		output = os.Stdout
	}

	// JSON output (structured report with version metadata)
	if cfg.JSONReport {
		writer := report.NewFullJSONWriter(output, getVersion(), report.WithPrettyPrint())
		_, err := writer.Write(cohortReport)
		return err
	}

	// Markdown output
	if cfg.MarkdownReport {
		writer := report.NewMarkdownWriter(output)
		_, err := writer.Write(cohortReport)
		return err
	}

	// Human-readable report (default)
	writer := report.NewSimpleWriter(output)
	_, err := writer.Write(cohortReport)
	return err
}
