package config

import (
	"errors"
	"testing"

	"github.com/socialmind-lab/cohortsim/internal/sim"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func TestScenarioParams(t *testing.T) {
	t.Parallel()

	t.Run("empty scenario resolves to baseline", func(t *testing.T) {
		t.Parallel()
		var s Scenario
		got, err := s.Params()
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got != sim.BaselineParams() {
			t.Error("expected baseline coefficients")
		}
	})

	t.Run("preset selects the starting point", func(t *testing.T) {
		t.Parallel()
		s := Scenario{Preset: sim.PresetHighExposure}
		got, err := s.Params()
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got != sim.HighExposureParams() {
			t.Error("expected high-exposure coefficients")
		}
	})

	t.Run("overrides apply on top of the preset", func(t *testing.T) {
		t.Parallel()
		s := Scenario{
			HoursMean:      floatPtr(8.0),
			FeltBetterProb: floatPtr(0.9),
		}
		got, err := s.Params()
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got.HoursMean != 8.0 {
			t.Errorf("expected hours mean 8.0, got %v", got.HoursMean)
		}
		if got.FeltBetterProb != 0.9 {
			t.Errorf("expected felt-better probability 0.9, got %v", got.FeltBetterProb)
		}
		// Untouched coefficients keep their preset values.
		if got.HoursStdDev != sim.BaselineParams().HoursStdDev {
			t.Errorf("expected untouched stddev, got %v", got.HoursStdDev)
		}
	})

	t.Run("zero is an expressible override", func(t *testing.T) {
		t.Parallel()
		s := Scenario{LonelinessIntercept: floatPtr(0)}
		got, err := s.Params()
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got.LonelinessIntercept != 0 {
			t.Errorf("expected zero intercept override, got %v", got.LonelinessIntercept)
		}
	})

	t.Run("unknown preset", func(t *testing.T) {
		t.Parallel()
		s := Scenario{Preset: "mystery"}
		_, err := s.Params()
		if !errors.Is(err, sim.ErrUnknownPreset) {
			t.Errorf("expected ErrUnknownPreset, got %v", err)
		}
	})
}

func TestFileGetScenario(t *testing.T) {
	t.Parallel()

	file := File{
		Defaults: Scenario{
			Count:     intPtr(500),
			HoursMean: floatPtr(4.0),
		},
		Scenarios: map[string]Scenario{
			"heavy": {
				Preset:    sim.PresetHighExposure,
				HoursMean: floatPtr(7.0),
			},
		},
	}

	t.Run("named scenario merges over defaults", func(t *testing.T) {
		t.Parallel()
		got := file.GetScenario("heavy")
		if got.Preset != sim.PresetHighExposure {
			t.Errorf("expected high-exposure preset, got %q", got.Preset)
		}
		if got.HoursMean == nil || *got.HoursMean != 7.0 {
			t.Error("expected scenario override to win over the default")
		}
		if got.Count == nil || *got.Count != 500 {
			t.Error("expected default count to survive the merge")
		}
	})

	t.Run("unknown name returns the defaults", func(t *testing.T) {
		t.Parallel()
		got := file.GetScenario("absent")
		if got.Count == nil || *got.Count != 500 {
			t.Error("expected file defaults for an unknown scenario")
		}
		if got.Preset != "" {
			t.Errorf("expected no preset, got %q", got.Preset)
		}
	})

	t.Run("empty name returns the defaults", func(t *testing.T) {
		t.Parallel()
		got := file.GetScenario("")
		if got.HoursMean == nil || *got.HoursMean != 4.0 {
			t.Error("expected file defaults for an empty scenario name")
		}
	})
}
