package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Default configuration values.
// These are chosen for the typical educational use case: a few hundred
// records, reproducible by default, analyzed at the conventional 5% level.
const (
	// DefaultCount is the default cohort size. A few hundred records is
	// enough for the simulated tendencies to be visible without making
	// the dataset unwieldy in a spreadsheet.
	DefaultCount = 250

	// DefaultSeed is the default pseudorandom seed. Reproducibility is the
	// point of the tool, so the default run is deterministic rather than
	// seeded from the clock; users vary cohorts by passing --seed.
	DefaultSeed = 42

	// DefaultAlpha is the significance level for hypothesis tests and
	// confidence intervals.
	DefaultAlpha = 0.05

	// DefaultPrecision is the decimal precision of continuous columns in
	// the written dataset.
	DefaultPrecision = 4

	// DefaultDatasetFile is the default output path for the dataset.
	DefaultDatasetFile = "cohort.csv"

	// MaxPrecision bounds the dataset precision; beyond this the file
	// gains digits without gaining information.
	MaxPrecision = 10

	// AppName is the application name used for XDG directory paths.
	AppName = "cohortsim"
)

// Config holds all configuration options for cohortsim.
// This struct is populated from CLI flags and passed through the application
// via dependency injection rather than global state.
//
// Design decision: We use a single flat struct instead of nested structs
// (e.g., SimConfig, ReportConfig) for simplicity. The number of options is
// manageable, and nesting would add complexity without significant benefit.
type Config struct {
	// Scenario is the named parameter scenario to simulate. Empty means
	// the baseline preset.
	Scenario string

	// Count is the number of individuals to generate.
	Count int

	// Seed is the pseudorandom seed for the generator.
	Seed int64

	// DatasetPath is where the delimited dataset is written (generate) or
	// read from (analyze).
	DatasetPath string

	// Precision is the decimal precision of continuous dataset columns.
	Precision int

	// Alpha is the significance level for tests and intervals.
	Alpha float64

	// DatasetOnly skips analysis and report output after generation.
	DatasetOnly bool

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// ConfigFilePath is the path to the scenario configuration file.
	// If empty, the tool searches the standard locations.
	ConfigFilePath string

	// Scenarios holds scenario definitions loaded from the config file.
	Scenarios *File

	// JSONReport enables JSON report output instead of human-readable
	// format. Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown report output instead of
	// human-readable format. Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path for the report.
	// When set, the report is written to this file instead of stdout.
	ReportFile string
}

// NewConfig creates a new Config with default values.
//
// Design decision: We use a constructor function instead of relying on
// zero values because many defaults are non-zero (count, seed, alpha).
// This also serves as documentation of what the defaults are.
func NewConfig() *Config {
	return &Config{
		Count:       DefaultCount,
		Seed:        DefaultSeed,
		DatasetPath: DefaultDatasetFile,
		Precision:   DefaultPrecision,
		Alpha:       DefaultAlpha,
	}
}

// XDGConfigDir returns the XDG config directory for cohortsim.
// On Linux: ~/.config/cohortsim
// On macOS: ~/Library/Application Support/cohortsim
// On Windows: %APPDATA%\cohortsim
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// XDGDataDir returns the XDG data directory for cohortsim.
// On Linux: ~/.local/share/cohortsim
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns a specific sentinel error describing what is invalid.
//
// Design decision: We validate at the config level rather than at each
// point of use to fail fast and provide clear error messages upfront.
// This is called once after CLI parsing, before any generation begins.
func (c *Config) Validate() error {
	if c.Count <= 0 {
		return ErrInvalidCount
	}
	if c.Alpha <= 0 || c.Alpha >= 1 {
		return ErrInvalidAlpha
	}
	if c.Precision < 0 || c.Precision > MaxPrecision {
		return ErrInvalidPrecision
	}
	if c.DatasetPath == "" {
		return ErrNoDatasetPath
	}
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}
	return nil
}
