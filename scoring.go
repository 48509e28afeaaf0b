package randsearch

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

//////
// Built-in scoring functions.
//////
//
// Each function follows the higher-is-better convention the search selects
// by. Lower-is-better metrics are negated, so a smaller error still ranks
// higher. All of them panic if yTrue and yPred differ in length; the search
// only ever calls them with matched slices.

// Accuracy scores classification predictions as the fraction of exact
// matches between yTrue and yPred.
//
// When to use:
// - Classification targets with labels encoded as numeric values
// - When every class matters equally
//
// Example:
//
//	score := Accuracy([]float64{0, 1, 1}, []float64{0, 1, 0}) // 0.666...
func Accuracy(yTrue, yPred []float64) float64 {
	if len(yTrue) != len(yPred) {
		panic("randsearch: yTrue and yPred must have the same length")
	}

	hits := 0
	for i := range yTrue {
		if yTrue[i] == yPred[i] {
			hits++
		}
	}

	return float64(hits) / float64(len(yTrue))
}

// NegMeanSquaredError scores regression predictions as the negated mean
// squared error, so that a smaller error yields a higher score.
//
// When to use:
// - Regression targets
// - When large errors should be punished quadratically
//
// Example:
//
//	score := NegMeanSquaredError([]float64{1, 2}, []float64{1, 4}) // -2.0
func NegMeanSquaredError(yTrue, yPred []float64) float64 {
	if len(yTrue) != len(yPred) {
		panic("randsearch: yTrue and yPred must have the same length")
	}

	// L2 distance squared over n is exactly the mean squared error.
	d := floats.Distance(yTrue, yPred, 2)

	return -(d * d) / float64(len(yTrue))
}

// RSquared scores regression predictions with the coefficient of
// determination R². A perfect prediction scores 1.0; predicting the mean of
// yTrue scores 0.0; worse-than-mean predictions score negative.
//
// When to use:
// - Regression targets
// - When a scale-free quality measure is wanted
func RSquared(yTrue, yPred []float64) float64 {
	if len(yTrue) != len(yPred) {
		panic("randsearch: yTrue and yPred must have the same length")
	}

	return stat.RSquaredFrom(yPred, yTrue, nil)
}
