package randsearch

import "errors"

//////
// Error taxonomy.
//////
//
// Three classes of failure exist:
//
//   - Configuration errors: detected by New before any data is touched.
//     Fatal to the call.
//   - Data errors: detected by Fit while partitioning, before any trial
//     runs. Fatal to the call.
//   - Trial failures: a single candidate's parameters are incompatible with
//     the estimator, or fitting / prediction errors out. Recovered locally,
//     recorded on the TrialResult, the search continues.
//
// All sentinels below are matchable with errors.Is.

var (
	// ErrNilFactory is returned by New when Config.Factory is nil.
	ErrNilFactory = errors.New("randsearch: estimator factory must not be nil")

	// ErrNilScoring is returned by New when Config.Scoring is nil.
	ErrNilScoring = errors.New("randsearch: scoring function must not be nil")

	// ErrEmptyParameterSpace is returned by New when Config.Space has no
	// entries.
	ErrEmptyParameterSpace = errors.New("randsearch: parameter space has no entries")

	// ErrInvalidIterationCount is returned by New when Config.NIter is not
	// positive.
	ErrInvalidIterationCount = errors.New("randsearch: NIter must be positive")

	// ErrInvalidFoldCount is returned by New when Config.NFolds is below 2.
	ErrInvalidFoldCount = errors.New("randsearch: NFolds must be at least 2")

	// ErrDataShape is returned by Fit when X and y disagree in length or the
	// dataset is empty.
	ErrDataShape = errors.New("randsearch: X and y must be non-empty and of equal length")

	// ErrInsufficientData is returned by Fit when the dataset, or a class
	// within it under stratification, has fewer examples than NFolds.
	ErrInsufficientData = errors.New("randsearch: not enough examples for the requested fold count")

	// ErrIncompatibleCandidate wraps a factory rejection. It marks a single
	// failed trial, never a failed search.
	ErrIncompatibleCandidate = errors.New("randsearch: estimator factory rejected candidate")
)
