// Package randsearch provides randomized hyperparameter search with K-fold
// cross-validation scoring. It samples candidate hyperparameter assignments
// from a user-defined parameter space, evaluates each one against an opaque
// estimator, and keeps the best by mean validation score.
//
// # Features
//
// The package includes the following key features:
//
//   - Randomized Search: Samples a configurable number of candidates from
//     finite lists, uniform ranges, and log-uniform distributions
//   - Cross-Validation Scoring: Plain and stratified K-fold partitioning
//     with per-trial mean and deviation aggregation
//   - Deterministic by Construction: Every random decision (candidate draws
//     and fold assignment) is precomputed from a single seed before any
//     fitting starts, so results reproduce exactly across runs
//   - Parallel Trials: Optional bounded worker pool for trial-level
//     parallelism that returns bit-identical results to a sequential run
//   - Recoverable Trial Failures: A candidate rejected by the estimator
//     factory fails only its own trial, never the whole search
//   - Cancellation: Context cancellation between trials returns the partial
//     result computed so far
//   - Progress Monitoring: Real-time per-trial updates via channels
//
// # Estimators
//
// The search treats models as opaque collaborators behind a two-method
// contract:
//
//	type Estimator interface {
//	    Fit(X [][]float64, y []float64) error
//	    Predict(X [][]float64) ([]float64, error)
//	}
//
// An EstimatorFactory builds one fresh, unfitted instance per
// (candidate, fold) unit from a sampled Candidate. Model internals (tree
// construction, SVM optimization, boosting and so on) are entirely out of
// scope for this package.
//
// # Basic usage
//
//	cfg := randsearch.DefaultConfig()
//	cfg.Factory = newKNN
//	cfg.Scoring = randsearch.Accuracy
//	cfg.NIter = 20
//	cfg.Seed = 42
//	cfg.Space = randsearch.ParameterSpace{
//	    "n_neighbors": randsearch.UniformInt(1, 30),
//	    "weights":     randsearch.Values("uniform", "distance"),
//	}
//
//	search, err := randsearch.New(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := search.Fit(ctx, X, y)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("best: %v (score %.4f ± %.4f)\n",
//	    result.Best.Candidate, result.Best.MeanScore, result.Best.StdScore)
//
// # Determinism
//
// Two Fit calls with identical Config and data produce identical
// SearchResults: the same candidates in the same order, the same fold
// assignment, the same best. This holds regardless of MaxGoroutines because
// sampling and fold assignment never depend on execution order; trials only
// read precomputed inputs.
//
// # Scoring
//
// Scoring functions follow the higher-is-better convention. Accuracy,
// NegMeanSquaredError and RSquared are provided; any function with the
// ScoringFunc shape works. Wrap a lower-is-better metric by negating it.
//
// # Error handling
//
// Configuration problems (nil factory or scoring, empty space, bad NIter or
// NFolds) surface from New. Data problems (shape mismatch, too few examples
// per fold or per class) surface from Fit before any trial runs. Per-trial
// failures are recorded on the TrialResult and never abort the search; see
// the sentinels in errors.go.
package randsearch
