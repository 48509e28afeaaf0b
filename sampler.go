package randsearch

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"golang.org/x/exp/constraints"
)

//////
// Samplers.
//////
//
// A Sampler is the value-producing rule for one hyperparameter. Every
// implementation draws deterministically from the supplied RNG: given the
// same RNG state, Sample returns the same value and consumes the same number
// of draws. That property is what makes a whole search reproducible from a
// single seed.

// Sampler produces one hyperparameter value per call.
type Sampler interface {
	// Sample draws a single value using rng. Implementations must consume a
	// fixed number of rng draws per call.
	Sample(rng *rand.Rand) any
}

// ParameterSpace maps hyperparameter names to their samplers. Candidate
// sampling iterates names in sorted order so the RNG draw sequence is stable
// across runs and across Go map re-hashing.
type ParameterSpace map[string]Sampler

// names returns the parameter names in the fixed iteration order used for
// sampling.
func (ps ParameterSpace) names() []string {
	out := make([]string, 0, len(ps))
	for name := range ps {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// sample draws one Candidate, one value per parameter, in sorted name order.
func (ps ParameterSpace) sample(rng *rand.Rand, names []string) Candidate {
	c := make(Candidate, len(names))
	for _, name := range names {
		c[name] = ps[name].Sample(rng)
	}
	return c
}

//////
// Built-in sampler implementations.
//////

type valuesSampler[T any] struct {
	vals []T
}

func (s valuesSampler[T]) Sample(rng *rand.Rand) any {
	return s.vals[rng.Intn(len(s.vals))]
}

// Values returns a Sampler that draws uniformly from a finite candidate list.
// This is the sampler to use for categorical hyperparameters such as kernel
// names or split criteria.
//
// Usage example:
//
//	space := ParameterSpace{
//	    "kernel":    Values("linear", "rbf", "poly"),
//	    "max_depth": Values(3, 5, 7, 9),
//	}
//
// Panics if called with no values; an empty candidate list cannot produce a
// value.
func Values[T any](vals ...T) Sampler {
	if len(vals) == 0 {
		panic("randsearch: Values requires at least one value")
	}

	// Copy so later mutation of the caller's slice cannot change the space.
	copied := make([]T, len(vals))
	copy(copied, vals)

	return valuesSampler[T]{vals: copied}
}

type uniformSampler[T constraints.Float] struct {
	low, high T
}

func (s uniformSampler[T]) Sample(rng *rand.Rand) any {
	return s.low + T(rng.Float64())*(s.high-s.low)
}

// Uniform returns a Sampler drawing from the continuous uniform distribution
// on the half-open interval [low, high).
//
// Type Parameter:
//   - T: float32 or float64
//
// Usage example:
//
//	space := ParameterSpace{
//	    "subsample": Uniform(0.5, 1.0),
//	}
//
// Panics if low >= high.
func Uniform[T constraints.Float](low, high T) Sampler {
	if low >= high {
		panic(fmt.Sprintf("randsearch: Uniform requires low < high, got [%v, %v)", low, high))
	}

	return uniformSampler[T]{low: low, high: high}
}

type uniformIntSampler[T constraints.Integer] struct {
	low, high T
}

func (s uniformIntSampler[T]) Sample(rng *rand.Rand) any {
	return s.low + T(rng.Int63n(int64(s.high-s.low)))
}

// UniformInt returns a Sampler drawing integers uniformly from the half-open
// interval [low, high). The upper bound is exclusive; UniformInt(1, 10) draws
// 1 through 9.
//
// Type Parameter:
//   - T: any integer type
//
// Usage example:
//
//	space := ParameterSpace{
//	    "n_estimators": UniformInt(50, 500),
//	    "max_depth":    UniformInt(2, 16),
//	}
//
// Panics if low >= high.
func UniformInt[T constraints.Integer](low, high T) Sampler {
	if low >= high {
		panic(fmt.Sprintf("randsearch: UniformInt requires low < high, got [%v, %v)", low, high))
	}

	return uniformIntSampler[T]{low: low, high: high}
}

type logUniformSampler struct {
	logLow, logHigh float64
}

func (s logUniformSampler) Sample(rng *rand.Rand) any {
	return math.Exp(s.logLow + rng.Float64()*(s.logHigh-s.logLow))
}

// LogUniform returns a Sampler drawing from the reciprocal (log-uniform)
// distribution on [low, high): the logarithm of the drawn value is uniform.
// This is the usual choice for scale-free hyperparameters such as
// regularization strength or an RBF gamma, where 0.001 and 0.01 should be as
// likely as 0.1 and 1.0.
//
// Usage example:
//
//	space := ParameterSpace{
//	    "C":     LogUniform(1e-3, 1e3),
//	    "gamma": LogUniform(1e-4, 1e1),
//	}
//
// Panics if low <= 0 or low >= high.
func LogUniform(low, high float64) Sampler {
	if low <= 0 || low >= high {
		panic(fmt.Sprintf("randsearch: LogUniform requires 0 < low < high, got [%v, %v)", low, high))
	}

	return logUniformSampler{logLow: math.Log(low), logHigh: math.Log(high)}
}
