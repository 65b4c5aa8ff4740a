package config

import (
	"github.com/socialmind-lab/cohortsim/internal/sim"
)

// Scenario holds one named set of overrides for the simulation.
// Every field is optional; unset fields fall back to the preset the
// scenario builds on (baseline unless Preset says otherwise).
//
// Design decision: pointer fields rather than zero-value sentinels because
// zero is a meaningful coefficient (an intercept of 0 must be expressible).
type Scenario struct {
	// Preset names the sim parameter preset this scenario starts from
	// ("baseline" or "high-exposure").
	Preset string `yaml:"preset,omitempty"`

	// Count overrides the cohort size for this scenario.
	Count *int `yaml:"count,omitempty"`

	// Seed overrides the pseudorandom seed for this scenario.
	Seed *int64 `yaml:"seed,omitempty"`

	// Usage distribution overrides.
	HoursMean   *float64 `yaml:"hoursMean,omitempty"`
	HoursStdDev *float64 `yaml:"hoursStdDev,omitempty"`

	// Compare-self logit overrides.
	CompareIntercept *float64 `yaml:"compareIntercept,omitempty"`
	CompareHours     *float64 `yaml:"compareHours,omitempty"`

	// Loneliness affine overrides.
	LonelinessIntercept *float64 `yaml:"lonelinessIntercept,omitempty"`
	LonelinessHours     *float64 `yaml:"lonelinessHours,omitempty"`
	LonelinessNoise     *float64 `yaml:"lonelinessNoise,omitempty"`

	// Depression affine overrides.
	DepressionIntercept *float64 `yaml:"depressionIntercept,omitempty"`
	DepressionHours     *float64 `yaml:"depressionHours,omitempty"`
	DepressionCompare   *float64 `yaml:"depressionCompare,omitempty"`
	DepressionNoise     *float64 `yaml:"depressionNoise,omitempty"`

	// Anxiety affine overrides.
	AnxietyIntercept *float64 `yaml:"anxietyIntercept,omitempty"`
	AnxietyHours     *float64 `yaml:"anxietyHours,omitempty"`
	AnxietyCompare   *float64 `yaml:"anxietyCompare,omitempty"`
	AnxietyNoise     *float64 `yaml:"anxietyNoise,omitempty"`

	// Took-break logit overrides.
	BreakIntercept  *float64 `yaml:"breakIntercept,omitempty"`
	BreakLoneliness *float64 `yaml:"breakLoneliness,omitempty"`
	BreakDepression *float64 `yaml:"breakDepression,omitempty"`

	// FeltBetterProb overrides the fixed felt-better probability.
	FeltBetterProb *float64 `yaml:"feltBetterProb,omitempty"`
}

// File represents the structure of the .cohortsim configuration file.
type File struct {
	// Defaults contains overrides applied to every scenario unless the
	// scenario itself overrides them.
	Defaults Scenario `yaml:"defaults,omitempty"`

	// Scenarios maps scenario names to their overrides.
	Scenarios map[string]Scenario `yaml:"scenarios,omitempty"`
}

// GetScenario returns the overrides for a named scenario, merged over the
// file defaults. An unknown or empty name returns just the defaults, so a
// config file with only a defaults block still takes effect.
func (cf *File) GetScenario(name string) Scenario {
	result := cf.Defaults
	if s, ok := cf.Scenarios[name]; ok {
		result = result.merged(s)
	}
	return result
}

// Params resolves the scenario into concrete simulation parameters:
// the named preset, with every set override applied on top.
func (s *Scenario) Params() (sim.Params, error) {
	p, err := sim.PresetParams(s.Preset)
	if err != nil {
		return sim.Params{}, err
	}

	setFloat(&p.HoursMean, s.HoursMean)
	setFloat(&p.HoursStdDev, s.HoursStdDev)
	setFloat(&p.CompareIntercept, s.CompareIntercept)
	setFloat(&p.CompareHours, s.CompareHours)
	setFloat(&p.LonelinessIntercept, s.LonelinessIntercept)
	setFloat(&p.LonelinessHours, s.LonelinessHours)
	setFloat(&p.LonelinessNoise, s.LonelinessNoise)
	setFloat(&p.DepressionIntercept, s.DepressionIntercept)
	setFloat(&p.DepressionHours, s.DepressionHours)
	setFloat(&p.DepressionCompare, s.DepressionCompare)
	setFloat(&p.DepressionNoise, s.DepressionNoise)
	setFloat(&p.AnxietyIntercept, s.AnxietyIntercept)
	setFloat(&p.AnxietyHours, s.AnxietyHours)
	setFloat(&p.AnxietyCompare, s.AnxietyCompare)
	setFloat(&p.AnxietyNoise, s.AnxietyNoise)
	setFloat(&p.BreakIntercept, s.BreakIntercept)
	setFloat(&p.BreakLoneliness, s.BreakLoneliness)
	setFloat(&p.BreakDepression, s.BreakDepression)
	setFloat(&p.FeltBetterProb, s.FeltBetterProb)
	return p, nil
}

// merged layers over's set fields on top of s and returns the result.
func (s Scenario) merged(over Scenario) Scenario {
	result := s
	if over.Preset != "" {
		result.Preset = over.Preset
	}
	if over.Count != nil {
		result.Count = over.Count
	}
	if over.Seed != nil {
		result.Seed = over.Seed
	}
	for _, f := range []struct {
		dst **float64
		src *float64
	}{
		{&result.HoursMean, over.HoursMean},
		{&result.HoursStdDev, over.HoursStdDev},
		{&result.CompareIntercept, over.CompareIntercept},
		{&result.CompareHours, over.CompareHours},
		{&result.LonelinessIntercept, over.LonelinessIntercept},
		{&result.LonelinessHours, over.LonelinessHours},
		{&result.LonelinessNoise, over.LonelinessNoise},
		{&result.DepressionIntercept, over.DepressionIntercept},
		{&result.DepressionHours, over.DepressionHours},
		{&result.DepressionCompare, over.DepressionCompare},
		{&result.DepressionNoise, over.DepressionNoise},
		{&result.AnxietyIntercept, over.AnxietyIntercept},
		{&result.AnxietyHours, over.AnxietyHours},
		{&result.AnxietyCompare, over.AnxietyCompare},
		{&result.AnxietyNoise, over.AnxietyNoise},
		{&result.BreakIntercept, over.BreakIntercept},
		{&result.BreakLoneliness, over.BreakLoneliness},
		{&result.BreakDepression, over.BreakDepression},
		{&result.FeltBetterProb, over.FeltBetterProb},
	} {
		if f.src != nil {
			*f.dst = f.src
		}
	}
	return result
}

// setFloat applies an optional override.
func setFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}
