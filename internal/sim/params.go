package sim

import (
	"fmt"

	"github.com/socialmind-lab/cohortsim/internal/model"
)

// Preset names accepted by PresetParams.
const (
	// PresetBaseline is the default cohort: moderate usage centered around
	// three hours a day.
	PresetBaseline = "baseline"

	// PresetHighExposure shifts the usage distribution upward and
	// strengthens the comparison effect, modelling a heavy-use cohort.
	PresetHighExposure = "high-exposure"
)

// Params holds every coefficient of the causal simulation.
//
// The simulation chains noise-perturbed conditional distributions:
//
//	dailyHours  ~ Normal(HoursMean, HoursStdDev), clamped to [HoursMin, HoursMax]
//	compareSelf ~ Bernoulli(logistic(CompareIntercept + CompareHours*hours))
//	loneliness  = LonelinessIntercept + LonelinessHours*hours + Normal(0, LonelinessNoise)
//	depression  = DepressionIntercept + DepressionHours*hours + DepressionCompare*compare + Normal(0, DepressionNoise)
//	anxiety     = AnxietyIntercept + AnxietyHours*hours + AnxietyCompare*compare + Normal(0, AnxietyNoise)
//	tookBreak   ~ Bernoulli(logistic(BreakIntercept + BreakLoneliness*loneliness + BreakDepression*depression))
//	feltBetter  ~ Bernoulli(FeltBetterProb), drawn only when tookBreak is true
//
// Scores are clamped to the 1-10 scale after noise addition. Clamping
// truncates to the nearest bound and never resamples; changing that would
// silently alter the statistical properties of the cohort.
//
// Design decision: one parameterized struct with named presets instead of
// separate generator variants per cohort. Variants differ only in
// coefficients, so duplicating the chain would invite drift between copies.
type Params struct {
	// Daily usage distribution.
	HoursMean   float64
	HoursStdDev float64
	HoursMin    float64
	HoursMax    float64

	// Logit coefficients for the compare-self probability.
	CompareIntercept float64
	CompareHours     float64

	// Affine coefficients and noise scale for loneliness.
	LonelinessIntercept float64
	LonelinessHours     float64
	LonelinessNoise     float64

	// Affine coefficients and noise scale for depression.
	DepressionIntercept float64
	DepressionHours     float64
	DepressionCompare   float64
	DepressionNoise     float64

	// Affine coefficients and noise scale for anxiety.
	AnxietyIntercept float64
	AnxietyHours     float64
	AnxietyCompare   float64
	AnxietyNoise     float64

	// Logit coefficients for the took-break probability.
	BreakIntercept  float64
	BreakLoneliness float64
	BreakDepression float64

	// FeltBetterProb is the fixed probability that a taken break helped.
	FeltBetterProb float64
}

// BaselineParams returns the default simulation coefficients.
// The values are chosen so that a few hundred records show the intended
// tendencies (usage correlates with distress, distress drives breaks)
// without saturating the clamped scales.
func BaselineParams() Params {
	return Params{
		HoursMean:   3.2,
		HoursStdDev: 1.8,
		HoursMin:    model.HoursMin,
		HoursMax:    model.HoursMax,

		CompareIntercept: -2.0,
		CompareHours:     0.55,

		LonelinessIntercept: 2.0,
		LonelinessHours:     0.9,
		LonelinessNoise:     1.2,

		DepressionIntercept: 1.5,
		DepressionHours:     0.55,
		DepressionCompare:   1.4,
		DepressionNoise:     1.3,

		AnxietyIntercept: 1.8,
		AnxietyHours:     0.5,
		AnxietyCompare:   1.1,
		AnxietyNoise:     1.25,

		BreakIntercept:  -3.0,
		BreakLoneliness: 0.25,
		BreakDepression: 0.3,

		FeltBetterProb: 0.7,
	}
}

// HighExposureParams returns coefficients for a heavy-use cohort:
// more hours, stronger comparison behavior, slightly noisier scores.
func HighExposureParams() Params {
	p := BaselineParams()
	p.HoursMean = 5.5
	p.HoursStdDev = 2.2
	p.CompareIntercept = -1.4
	p.CompareHours = 0.6
	p.LonelinessNoise = 1.4
	p.DepressionNoise = 1.5
	return p
}

// PresetParams returns the named preset, or ErrUnknownPreset.
func PresetParams(name string) (Params, error) {
	switch name {
	case PresetBaseline, "":
		return BaselineParams(), nil
	case PresetHighExposure:
		return HighExposureParams(), nil
	default:
		return Params{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
}

// Validate checks the parameters for values that would make generation
// meaningless or make a distribution draw fail.
//
// We chose to return the first error found rather than collecting all
// errors because fixing one often makes others irrelevant.
func (p *Params) Validate() error {
	if p.HoursStdDev <= 0 {
		return fmt.Errorf("%w: hours stddev must be positive, got %v", ErrInvalidParams, p.HoursStdDev)
	}
	if p.HoursMin >= p.HoursMax {
		return fmt.Errorf("%w: hours bounds inverted [%v, %v]", ErrInvalidParams, p.HoursMin, p.HoursMax)
	}
	for _, noise := range []struct {
		name  string
		value float64
	}{
		{"loneliness", p.LonelinessNoise},
		{"depression", p.DepressionNoise},
		{"anxiety", p.AnxietyNoise},
	} {
		if noise.value <= 0 {
			return fmt.Errorf("%w: %s noise must be positive, got %v", ErrInvalidParams, noise.name, noise.value)
		}
	}
	if p.FeltBetterProb < 0 || p.FeltBetterProb > 1 {
		return fmt.Errorf("%w: felt-better probability %v outside [0, 1]", ErrInvalidParams, p.FeltBetterProb)
	}
	return nil
}
