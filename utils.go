package randsearch

import "gonum.org/v1/gonum/stat"

//////
// Helper functions.
//////

// aggregateScores reduces per-fold validation scores to the trial's mean and
// population standard deviation. Population (not sample) deviation is used:
// the K folds are the whole population of scores for the trial, not a sample
// from a larger one.
func aggregateScores(scores []float64) (mean, std float64) {
	mean = stat.Mean(scores, nil)
	std = stat.PopStdDev(scores, nil)

	return mean, std
}

// subsetRows gathers the rows of X at the given indices. Rows are shared,
// not copied; the search treats X as read-only throughout.
func subsetRows(X [][]float64, idx []int) [][]float64 {
	out := make([][]float64, len(idx))
	for i, j := range idx {
		out[i] = X[j]
	}

	return out
}

// subsetVals gathers the elements of y at the given indices.
func subsetVals(y []float64, idx []int) []float64 {
	out := make([]float64, len(idx))
	for i, j := range idx {
		out[i] = y[j]
	}

	return out
}
