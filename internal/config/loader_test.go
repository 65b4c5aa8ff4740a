package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("valid file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), DefaultConfigFile)
		content := `defaults:
  count: 400
scenarios:
  heavy:
    preset: high-exposure
    hoursMean: 6.5
`
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatal(err)
		}

		cf, err := LoadConfigFile(path)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if cf.Defaults.Count == nil || *cf.Defaults.Count != 400 {
			t.Error("expected defaults count 400")
		}
		heavy, ok := cf.Scenarios["heavy"]
		if !ok {
			t.Fatal("expected scenario \"heavy\" to load")
		}
		if heavy.Preset != "high-exposure" {
			t.Errorf("expected preset high-exposure, got %q", heavy.Preset)
		}
		if heavy.HoursMean == nil || *heavy.HoursMean != 6.5 {
			t.Error("expected hoursMean override 6.5")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := LoadConfigFile(filepath.Join(t.TempDir(), "absent"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("expected ErrConfigNotFound, got %v", err)
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), DefaultConfigFile)
		if err := os.WriteFile(path, []byte("scenarios: [not a map"), 0600); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadConfigFile(path); err == nil {
			t.Error("expected error for malformed yaml")
		}
	})

	t.Run("empty file gets an initialized scenario map", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), DefaultConfigFile)
		if err := os.WriteFile(path, nil, 0600); err != nil {
			t.Fatal(err)
		}
		cf, err := LoadConfigFile(path)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if cf.Scenarios == nil {
			t.Error("expected non-nil scenario map")
		}
	})
}

func TestFindConfigFile(t *testing.T) {
	// Not parallel: FindConfigFile consults the working directory and the
	// surrounding environment, which other subtests must not race with.

	t.Run("explicit path that exists", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "custom.yaml")
		if err := os.WriteFile(path, []byte("scenarios: {}\n"), 0600); err != nil {
			t.Fatal(err)
		}
		if got := FindConfigFile(path); got != path {
			t.Errorf("expected %q, got %q", path, got)
		}
	})

	t.Run("explicit path that is missing", func(t *testing.T) {
		if got := FindConfigFile(filepath.Join(t.TempDir(), "absent")); got != "" {
			t.Errorf("expected empty path, got %q", got)
		}
	})

	t.Run("current directory search", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, DefaultConfigFile)
		if err := os.WriteFile(path, []byte("scenarios: {}\n"), 0600); err != nil {
			t.Fatal(err)
		}
		// t.Chdir requires Go 1.24; replicate it for older toolchains.
		oldWD, err := os.Getwd()
		if err != nil {
			t.Fatal(err)
		}
		if err := os.Chdir(dir); err != nil {
			t.Fatal(err)
		}
		t.Cleanup(func() {
			if err := os.Chdir(oldWD); err != nil {
				t.Fatal(err)
			}
		})

		got := FindConfigFile("")
		if got == "" {
			t.Fatal("expected config file in the working directory to be found")
		}
		if filepath.Base(got) != DefaultConfigFile {
			t.Errorf("expected %q, got %q", DefaultConfigFile, got)
		}
	})
}
