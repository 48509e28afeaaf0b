package randsearch

import (
	"context"
	"fmt"
	"math/rand"
	"sync"

	"github.com/sourcegraph/conc/pool"
)

//////
// Exported functionalities.
//////

// RandomizedSearch samples hyperparameter candidates at random from a
// ParameterSpace and evaluates each one with K-fold cross-validation,
// keeping the best by mean validation score.
//
// Construct with New, then call Fit. A RandomizedSearch holds no state
// between Fit calls and is safe to reuse; concurrent Fit calls on the same
// instance are also safe because all per-search state is local to Fit.
type RandomizedSearch struct {
	cfg Config
}

// New validates cfg and returns a ready-to-use RandomizedSearch.
//
// Validation errors (all matchable with errors.Is):
// - ErrNilFactory: cfg.Factory is nil
// - ErrNilScoring: cfg.Scoring is nil
// - ErrEmptyParameterSpace: cfg.Space has no entries
// - ErrInvalidIterationCount: cfg.NIter <= 0
// - ErrInvalidFoldCount: cfg.NFolds < 2
//
// Usage example:
//
//	cfg := DefaultConfig()
//	cfg.Factory = newForest // func(Candidate) (Estimator, error)
//	cfg.Scoring = Accuracy
//	cfg.NIter = 25
//	cfg.Space = ParameterSpace{
//	    "n_estimators": UniformInt(50, 500),
//	    "max_depth":    Values(3, 5, 7, 9),
//	    "subsample":    Uniform(0.5, 1.0),
//	}
//
//	search, err := New(cfg)
//	if err != nil {
//	    return err
//	}
//
//	result, err := search.Fit(ctx, X, y)
//	if err != nil {
//	    return err
//	}
//
//	fmt.Println(result.Best.Candidate, result.Best.MeanScore)
func New(cfg Config) (*RandomizedSearch, error) {
	if cfg.Factory == nil {
		return nil, ErrNilFactory
	}

	if cfg.Scoring == nil {
		return nil, ErrNilScoring
	}

	if len(cfg.Space) == 0 {
		return nil, ErrEmptyParameterSpace
	}

	if cfg.NIter <= 0 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidIterationCount, cfg.NIter)
	}

	if cfg.NFolds < 2 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidFoldCount, cfg.NFolds)
	}

	if cfg.MaxGoroutines < 1 {
		cfg.MaxGoroutines = 1
	}

	return &RandomizedSearch{cfg: cfg}, nil
}

// Fit runs the search against the dataset (X, y) and returns the best
// candidate found together with every evaluated trial.
//
// How it works:
//  1. Samples NIter candidates up front, one RNG draw per parameter in
//     sorted name order, so the draw sequence is reproducible from Seed.
//  2. Computes one deterministic fold partition of the dataset, stratified
//     by class when the Folding strategy calls for it.
//  3. Evaluates each candidate: a fresh estimator per fold, fitted on the
//     other NFolds-1 folds and scored on the held-out one; per-fold scores
//     are aggregated into the trial's mean and population deviation.
//  4. Picks the trial with the highest mean score, ties going to the
//     earliest in sampling order.
//
// Because candidates and the fold partition are fully precomputed before any
// fitting starts, the SearchResult is identical whether trials run
// sequentially or on a bounded pool (Config.MaxGoroutines).
//
// A candidate rejected by the factory, or an estimator that errors while
// fitting or predicting, fails only its own trial: the trial is recorded
// with Failed=true and a mean score of negative infinity, and the remaining
// trials still run.
//
// Cancellation: ctx is checked between trials, not mid-trial. On
// cancellation Fit stops scheduling new trials and returns the SearchResult
// built from the trials completed so far together with ctx.Err().
//
// Fatal errors, all detected before any trial runs:
// - ErrDataShape: X and y differ in length, or the dataset is empty
// - ErrInsufficientData: fewer examples (or class members, when
//   stratifying) than NFolds
func (s *RandomizedSearch) Fit(ctx context.Context, X [][]float64, y []float64) (*SearchResult, error) {
	if len(y) == 0 || len(X) != len(y) {
		return nil, fmt.Errorf("%w: len(X)=%d len(y)=%d", ErrDataShape, len(X), len(y))
	}

	if len(y) < s.cfg.NFolds {
		return nil, fmt.Errorf("%w: %d examples, %d folds", ErrInsufficientData, len(y), s.cfg.NFolds)
	}

	// Phase 1: precompute every random decision.
	//
	// All candidates are drawn before any fitting, from an RNG owned by this
	// call. Nothing downstream touches the RNG, so execution order cannot
	// perturb the sampled sequence.
	rng := rand.New(rand.NewSource(s.cfg.Seed))
	names := s.cfg.Space.names()

	candidates := make([]Candidate, s.cfg.NIter)
	for i := range candidates {
		candidates[i] = s.cfg.Space.sample(rng, names)
	}

	folds, err := s.partition(y)
	if err != nil {
		return nil, err
	}

	// Phase 2: evaluate trials.
	trials := make([]TrialResult, s.cfg.NIter)

	// completed and bestSoFar exist only to feed progress updates; the final
	// result is derived from the trials slice alone, so the reporting order
	// has no bearing on what Fit returns.
	var (
		progressMu sync.Mutex
		completed  int
		bestSoFar  = failedScore
	)

	sendProgress := func(t TrialResult) {
		if s.cfg.ProgressChan == nil {
			return
		}

		progressMu.Lock()
		completed++

		if !t.Failed && t.MeanScore > bestSoFar {
			bestSoFar = t.MeanScore
		}

		update := ProgressUpdate{
			Trial:       completed,
			TotalTrials: s.cfg.NIter,
			Candidate:   t.Candidate,
			MeanScore:   t.MeanScore,
			Failed:      t.Failed,
			BestSoFar:   bestSoFar,
		}
		progressMu.Unlock()

		select {
		case s.cfg.ProgressChan <- update:
		default:
			// Skip update if channel is full.
		}
	}

	p := pool.New().WithMaxGoroutines(s.cfg.MaxGoroutines)

	scheduled := 0
	for i := 0; i < s.cfg.NIter; i++ {
		if ctx.Err() != nil {
			break
		}

		scheduled++

		i := i

		p.Go(func() {
			trials[i] = s.runTrial(i, candidates[i], folds, X, y)
			sendProgress(trials[i])
		})
	}

	p.Wait()

	result := &SearchResult{Trials: trials[:scheduled]}
	if scheduled > 0 {
		result.Best = selectBest(result.Trials)
	}

	return result, ctx.Err()
}

//////
// Internal machinery.
//////

// partition computes the fold assignment for this dataset according to the
// configured strategy.
func (s *RandomizedSearch) partition(y []float64) ([][]int, error) {
	stratify := s.cfg.Folding == FoldStratified ||
		(s.cfg.Folding == FoldAuto && looksCategorical(y))

	if stratify {
		return stratifiedKFold(y, s.cfg.NFolds, s.cfg.Seed)
	}

	return kfold(len(y), s.cfg.NFolds, s.cfg.Seed), nil
}

// runTrial cross-validates one candidate: a fresh estimator per fold, fitted
// on the training folds and scored on the held-out one. Any factory or
// estimator error fails the whole trial; remaining folds are not evaluated.
func (s *RandomizedSearch) runTrial(i int, cand Candidate, folds [][]int, X [][]float64, y []float64) TrialResult {
	scores := make([]float64, 0, len(folds))

	for f, valIdx := range folds {
		// The factory receives its own copy so a mutating factory cannot
		// corrupt the candidate recorded in the result.
		est, err := s.cfg.Factory(cand.clone())
		if err != nil {
			return failedTrial(i, cand, fmt.Errorf("%w: %v", ErrIncompatibleCandidate, err))
		}

		trainIdx := trainIndices(folds, f)

		if err := est.Fit(subsetRows(X, trainIdx), subsetVals(y, trainIdx)); err != nil {
			return failedTrial(i, cand, fmt.Errorf("fold %d: fit: %w", f, err))
		}

		pred, err := est.Predict(subsetRows(X, valIdx))
		if err != nil {
			return failedTrial(i, cand, fmt.Errorf("fold %d: predict: %w", f, err))
		}

		scores = append(scores, s.cfg.Scoring(subsetVals(y, valIdx), pred))
	}

	mean, std := aggregateScores(scores)

	return TrialResult{
		Index:      i,
		Candidate:  cand,
		MeanScore:  mean,
		StdScore:   std,
		FoldScores: scores,
	}
}

// failedTrial records a trial aborted by a candidate or estimator error.
func failedTrial(i int, cand Candidate, err error) TrialResult {
	return TrialResult{
		Index:     i,
		Candidate: cand,
		MeanScore: failedScore,
		Failed:    true,
		Err:       err,
	}
}

// selectBest picks the trial with the highest mean score. Strict comparison
// keeps the earliest trial on ties. A failed trial is only returned when
// every trial failed.
func selectBest(trials []TrialResult) TrialResult {
	best := trials[0]

	for _, t := range trials[1:] {
		switch {
		case best.Failed && !t.Failed:
			best = t
		case !best.Failed && t.Failed:
			// Keep best.
		case t.MeanScore > best.MeanScore:
			best = t
		}
	}

	return best
}
