package randsearch

import "math"

//////
// Collaborator contracts.
//////

// Estimator is the opaque trainable-model contract the search works against.
// The search never looks inside an estimator; it only fits it on training
// folds and asks for predictions on the held-out fold.
//
// The search builds a fresh instance per (candidate, fold) unit, so
// implementations do not need to be safe for concurrent use.
type Estimator interface {
	// Fit trains the estimator on the given feature matrix and targets.
	// X is row-major: one inner slice per example.
	Fit(X [][]float64, y []float64) error

	// Predict returns one prediction per row of X.
	Predict(X [][]float64) ([]float64, error)
}

// EstimatorFactory builds a fresh, unfitted Estimator configured with one
// sampled hyperparameter assignment. It is called once per (candidate, fold)
// unit so that no training state leaks between folds.
//
// Returning an error marks the candidate as incompatible: the trial is
// recorded as failed and the search moves on to the next candidate. The
// returned error is wrapped with ErrIncompatibleCandidate.
type EstimatorFactory func(params Candidate) (Estimator, error)

// ScoringFunc evaluates predictions against the held-out truth. Higher is
// better. Wrap a lower-is-better metric by negating it, as
// NegMeanSquaredError does for mean squared error.
type ScoringFunc func(yTrue, yPred []float64) float64

//////
// Data model.
//////

// Candidate is one sampled hyperparameter assignment, keyed by parameter
// name. Candidates are generated fresh for each trial and never mutated
// afterwards; treat them as read-only.
type Candidate map[string]any

// clone returns an independent copy so that callers holding a SearchResult
// can never observe, or cause, mutation of a sampled assignment.
func (c Candidate) clone() Candidate {
	out := make(Candidate, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

// TrialResult is the outcome of cross-validating a single Candidate.
// Immutable once computed.
//
// For a failed trial (incompatible candidate, or an estimator error during
// fitting or prediction) Failed is true, Err carries the cause, MeanScore is
// negative infinity and FoldScores is nil. Failed trials never win best
// selection while any successful trial exists.
type TrialResult struct {
	// Index is the trial's position in sampling order, starting at 0.
	Index int

	// Candidate is the hyperparameter assignment this trial evaluated.
	Candidate Candidate

	// MeanScore is the arithmetic mean of FoldScores.
	MeanScore float64

	// StdScore is the population standard deviation of FoldScores.
	StdScore float64

	// FoldScores holds one validation score per fold, in fold order.
	FoldScores []float64

	// Failed reports whether the trial was aborted by a candidate or
	// estimator error.
	Failed bool

	// Err is the failure cause when Failed is true, nil otherwise.
	Err error
}

// SearchResult is what Fit returns: the winning trial plus every trial in
// sampling order, for inspection. Owned by the caller.
type SearchResult struct {
	// Best is the trial with the highest MeanScore. Ties go to the earliest
	// trial index. If every trial failed, Best is the earliest failed trial.
	Best TrialResult

	// Trials lists all completed trials in sampling order. Its length equals
	// Config.NIter unless the search was cancelled early.
	Trials []TrialResult
}

// ProgressUpdate is sent on Config.ProgressChan after each completed trial.
type ProgressUpdate struct {
	// Trial is the 1-based number of completed trials so far.
	Trial int

	// TotalTrials is the number of trials the search will run.
	TotalTrials int

	// Candidate is the assignment the completed trial evaluated.
	Candidate Candidate

	// MeanScore is the completed trial's mean validation score. Negative
	// infinity for a failed trial.
	MeanScore float64

	// Failed reports whether the completed trial failed.
	Failed bool

	// BestSoFar is the highest mean score seen across completed trials.
	BestSoFar float64
}

//////
// Configuration.
//////

// FoldStrategy selects how Fit partitions the dataset into folds.
type FoldStrategy int

const (
	// FoldAuto stratifies the partition when y looks categorical (all values
	// integral, between 2 and 64 distinct classes) and uses a plain shuffled
	// K-fold otherwise. This is the default.
	FoldAuto FoldStrategy = iota

	// FoldStratified forces a stratified partition. Fit fails with
	// ErrInsufficientData if any class has fewer examples than NFolds.
	FoldStratified

	// FoldPlain forces a plain shuffled K-fold partition.
	FoldPlain
)

// Config holds all configuration for a RandomizedSearch.
//
// Fields explanation:
// - Factory: builds a fresh Estimator per (candidate, fold) unit
// - Space: the hyperparameter space to sample candidates from
// - NIter: number of candidates to sample and evaluate
// - NFolds: number of cross-validation folds
// - Scoring: higher-is-better validation metric
// - Seed: RNG seed; identical configs and data reproduce identical results
// - Folding: fold-assignment strategy, see FoldStrategy
// - MaxGoroutines: trial-level parallelism, 1 means sequential
// - ProgressChan: optional non-blocking per-trial progress updates
type Config struct {
	// Factory builds one fresh, unfitted estimator per (candidate, fold)
	// unit. Required.
	Factory EstimatorFactory

	// Space maps hyperparameter names to samplers. Must have at least one
	// entry.
	Space ParameterSpace

	// NIter is the number of candidates to sample. Must be positive.
	// Repeated assignments are allowed; sampling is with replacement.
	NIter int

	// NFolds is the number of cross-validation folds. Must be at least 2.
	NFolds int

	// Scoring evaluates held-out predictions, higher is better. Required.
	Scoring ScoringFunc

	// Seed initializes both the candidate-sampling RNG and the
	// fold-assignment RNG. Two Fit calls with identical Config and data
	// produce identical SearchResults regardless of MaxGoroutines.
	Seed int64

	// Folding selects the fold-assignment strategy. Zero value is FoldAuto.
	Folding FoldStrategy

	// MaxGoroutines bounds trial-level parallelism. Values below 1 are
	// treated as 1 (sequential). The result is independent of this setting.
	MaxGoroutines int

	// ProgressChan receives a ProgressUpdate after each completed trial.
	// Sends never block; updates are dropped if the channel is full.
	// If nil, no updates are sent.
	ProgressChan chan<- ProgressUpdate
}

// DefaultConfig returns a configuration with sensible defaults. Factory,
// Space and Scoring must still be set by the caller.
func DefaultConfig() Config {
	return Config{
		NIter:         10,
		NFolds:        5,
		Seed:          0,
		Folding:       FoldAuto,
		MaxGoroutines: 1,
		ProgressChan:  nil, // Default to no progress updates.
	}
}

// failedScore is the MeanScore assigned to failed trials.
var failedScore = math.Inf(-1)
