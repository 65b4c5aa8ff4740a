package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/socialmind-lab/cohortsim/internal/report"
	"github.com/socialmind-lab/cohortsim/internal/table"
)

// TestNewGenerateCmd tests the generate command creation.
func TestNewGenerateCmd(t *testing.T) {
	t.Parallel()

	cmd := NewGenerateCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Use != "generate" {
			t.Errorf("expected use 'generate', got %q", cmd.Use)
		}
	})

	t.Run("has simulation flags", func(t *testing.T) {
		t.Parallel()
		for name, shorthand := range map[string]string{
			"count":  "n",
			"seed":   "s",
			"output": "o",
			"config": "c",
		} {
			flag := cmd.Flags().Lookup(name)
			if flag == nil {
				t.Fatalf("expected %s flag", name)
			}
			if flag.Shorthand != shorthand {
				t.Errorf("%s: expected shorthand %q, got %q", name, shorthand, flag.Shorthand)
			}
		}
	})

	t.Run("has report flags", func(t *testing.T) {
		t.Parallel()
		for _, name := range []string{"json", "markdown", "report", "alpha", "dataset-only", "precision", "scenario"} {
			if cmd.Flags().Lookup(name) == nil {
				t.Errorf("expected %s flag", name)
			}
		}
	})
}

// TestRunGenerateCmd tests end-to-end generation runs.
func TestRunGenerateCmd(t *testing.T) {
	t.Run("writes the dataset", func(t *testing.T) {
		datasetPath := filepath.Join(t.TempDir(), "cohort.csv")

		cmd := NewGenerateCmd()
		cmd.SetArgs([]string{"--dataset-only", "-n", "50", "-o", datasetPath})

		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		cohort, err := table.ReadFile(datasetPath)
		if err != nil {
			t.Fatalf("expected readable dataset: %v", err)
		}
		if cohort.Len() != 50 {
			t.Errorf("expected 50 records, got %d", cohort.Len())
		}
		if err := cohort.Validate(); err != nil {
			t.Errorf("expected valid records, got %v", err)
		}
	})

	t.Run("identical seeds produce identical files", func(t *testing.T) {
		tmpDir := t.TempDir()
		first := filepath.Join(tmpDir, "first.csv")
		second := filepath.Join(tmpDir, "second.csv")

		for _, path := range []string{first, second} {
			cmd := NewGenerateCmd()
			cmd.SetArgs([]string{"--dataset-only", "-n", "100", "-s", "7", "-o", path})
			if err := cmd.Execute(); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}

		a, err := os.ReadFile(first)
		if err != nil {
			t.Fatal(err)
		}
		b, err := os.ReadFile(second)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(a, b) {
			t.Error("expected byte-identical datasets for identical seeds")
		}
	})

	t.Run("writes a JSON report to a file", func(t *testing.T) {
		tmpDir := t.TempDir()
		datasetPath := filepath.Join(tmpDir, "cohort.csv")
		reportPath := filepath.Join(tmpDir, "report.json")

		cmd := NewGenerateCmd()
		cmd.SetArgs([]string{"-n", "200", "-o", datasetPath, "-j", "--report", reportPath})

		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		data, err := os.ReadFile(reportPath)
		if err != nil {
			t.Fatalf("expected report file: %v", err)
		}

		var decoded report.VersionedReport
		if err := json.Unmarshal(data, &decoded); err != nil {
			t.Fatalf("expected valid JSON report: %v", err)
		}
		if decoded.Report == nil || decoded.Report.Count != 200 {
			t.Error("expected report for 200 records")
		}
		if len(decoded.Report.Correlations) == 0 {
			t.Error("expected correlation findings in the report")
		}
	})

	t.Run("rejects conflicting report formats", func(t *testing.T) {
		cmd := NewGenerateCmd()
		cmd.SetArgs([]string{"-j", "-m", "-o", filepath.Join(t.TempDir(), "cohort.csv")})

		if err := cmd.Execute(); err == nil {
			t.Error("expected error for conflicting report formats")
		}
	})

	t.Run("rejects invalid count", func(t *testing.T) {
		cmd := NewGenerateCmd()
		cmd.SetArgs([]string{"-n", "0", "-o", filepath.Join(t.TempDir(), "cohort.csv")})

		if err := cmd.Execute(); err == nil {
			t.Error("expected error for zero count")
		}
	})

	t.Run("rejects missing explicit config file", func(t *testing.T) {
		cmd := NewGenerateCmd()
		cmd.SetArgs([]string{"-c", filepath.Join(t.TempDir(), "absent.yaml"),
			"-o", filepath.Join(t.TempDir(), "cohort.csv")})

		err := cmd.Execute()
		if err == nil {
			t.Fatal("expected error for a missing explicit config file")
		}
		if !strings.Contains(err.Error(), "not found") {
			t.Errorf("expected 'not found' in error, got %v", err)
		}
	})

	t.Run("scenario file supplies count and seed", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "study.yaml")
		datasetPath := filepath.Join(tmpDir, "cohort.csv")

		content := `scenarios:
  heavy:
    preset: high-exposure
    count: 30
    seed: 99
`
		if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
			t.Fatal(err)
		}

		cmd := NewGenerateCmd()
		cmd.SetArgs([]string{"--dataset-only", "--scenario", "heavy",
			"-c", configPath, "-o", datasetPath})

		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		cohort, err := table.ReadFile(datasetPath)
		if err != nil {
			t.Fatalf("expected readable dataset: %v", err)
		}
		if cohort.Len() != 30 {
			t.Errorf("expected scenario count 30, got %d", cohort.Len())
		}
	})

	t.Run("explicit count flag beats the scenario file", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "study.yaml")
		datasetPath := filepath.Join(tmpDir, "cohort.csv")

		content := `scenarios:
  heavy:
    count: 30
`
		if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
			t.Fatal(err)
		}

		cmd := NewGenerateCmd()
		cmd.SetArgs([]string{"--dataset-only", "--scenario", "heavy",
			"-c", configPath, "-n", "15", "-o", datasetPath})

		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		cohort, err := table.ReadFile(datasetPath)
		if err != nil {
			t.Fatalf("expected readable dataset: %v", err)
		}
		if cohort.Len() != 15 {
			t.Errorf("expected explicit count 15 to win, got %d", cohort.Len())
		}
	})
}
