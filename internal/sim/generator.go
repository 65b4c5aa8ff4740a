package sim

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/socialmind-lab/cohortsim/internal/model"
)

// Generator produces deterministic synthetic cohorts.
//
// A Generator owns one pseudorandom source and consumes it in a fixed order
// per record: dailyHours, compareSelf, loneliness, depression, anxiety,
// tookBreak, and feltBetter (the last only when a break was taken). Because
// the felt-better draw is conditional, records after a break-taker sit at a
// different stream offset than they would otherwise; this is part of the
// distributional contract, not an accident.
//
// A Generator is not safe for concurrent use: all draws share the single
// source. Concurrent callers must construct separate Generators with
// distinct seeds.
type Generator struct {
	params Params
	src    rand.Source
}

// NewGenerator creates a Generator for the given parameters and seed.
// It validates the parameters up front so Generate cannot fail on them.
func NewGenerator(params Params, seed int64) (*Generator, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &Generator{
		params: params,
		// The uint64 conversion is value-preserving for the purpose of
		// seeding: distinct int64 seeds map to distinct uint64 seeds.
		src: rand.NewSource(uint64(seed)),
	}, nil
}

// Generate produces exactly count individuals.
// It returns ErrInvalidCount for a non-positive count; once parameters and
// count are valid, generation cannot fail.
func (g *Generator) Generate(count int) (model.Cohort, error) {
	if count <= 0 {
		return nil, ErrInvalidCount
	}

	cohort := make(model.Cohort, 0, count)
	for i := 0; i < count; i++ {
		cohort = append(cohort, g.generateOne())
	}
	return cohort, nil
}

// Generate is a convenience wrapper constructing a one-shot Generator.
// This is the generate(count, seed) contract in a single call.
func Generate(params Params, count int, seed int64) (model.Cohort, error) {
	g, err := NewGenerator(params, seed)
	if err != nil {
		return nil, err
	}
	return g.Generate(count)
}

// generateOne draws a single individual following the causal chain.
func (g *Generator) generateOne() model.Individual {
	p := &g.params

	hours := clamp(g.normal(p.HoursMean, p.HoursStdDev), p.HoursMin, p.HoursMax)

	compare := g.bernoulli(logistic(p.CompareIntercept + p.CompareHours*hours))
	compareEffect := 0.0
	if compare {
		compareEffect = 1.0
	}

	loneliness := clamp(
		p.LonelinessIntercept+p.LonelinessHours*hours+g.normal(0, p.LonelinessNoise),
		model.ScaleMin, model.ScaleMax,
	)
	depression := clamp(
		p.DepressionIntercept+p.DepressionHours*hours+p.DepressionCompare*compareEffect+g.normal(0, p.DepressionNoise),
		model.ScaleMin, model.ScaleMax,
	)
	anxiety := clamp(
		p.AnxietyIntercept+p.AnxietyHours*hours+p.AnxietyCompare*compareEffect+g.normal(0, p.AnxietyNoise),
		model.ScaleMin, model.ScaleMax,
	)

	tookBreak := g.bernoulli(logistic(p.BreakIntercept + p.BreakLoneliness*loneliness + p.BreakDepression*depression))

	// feltBetter is drawn only for break-takers; for everyone else it is
	// structurally missing, not false.
	var feltBetter *bool
	if tookBreak {
		felt := g.bernoulli(p.FeltBetterProb)
		feltBetter = &felt
	}

	return model.Individual{
		DailyHours:  hours,
		Loneliness:  loneliness,
		Depression:  depression,
		Anxiety:     anxiety,
		CompareSelf: compare,
		TookBreak:   tookBreak,
		FeltBetter:  feltBetter,
	}
}

// normal draws from Normal(mu, sigma) using the generator's source.
func (g *Generator) normal(mu, sigma float64) float64 {
	return distuv.Normal{Mu: mu, Sigma: sigma, Src: g.src}.Rand()
}

// bernoulli draws a single true/false trial with probability p.
// The probability is clamped to [0, 1] first so that extreme affine scores
// can never produce an invalid distribution parameter.
func (g *Generator) bernoulli(p float64) bool {
	return distuv.Bernoulli{P: clamp(p, 0, 1), Src: g.src}.Rand() == 1
}

// logistic maps any real score to a probability in (0, 1).
func logistic(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

// clamp truncates v to [lo, hi]. Values outside the range are moved to the
// nearest bound, never resampled.
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
