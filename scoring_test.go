package randsearch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccuracy(t *testing.T) {
	assert.Equal(t, 1.0, Accuracy([]float64{0, 1, 2}, []float64{0, 1, 2}))
	assert.Equal(t, 0.0, Accuracy([]float64{0, 1, 2}, []float64{1, 2, 0}))
	assert.InDelta(t, 2.0/3.0, Accuracy([]float64{0, 1, 1}, []float64{0, 1, 0}), 1e-12)
}

func TestNegMeanSquaredError(t *testing.T) {
	assert.InDelta(t, 0.0, NegMeanSquaredError([]float64{1, 2, 3}, []float64{1, 2, 3}), 1e-12)

	// Errors of 0 and 2: MSE = (0 + 4) / 2 = 2, negated.
	assert.InDelta(t, -2.0, NegMeanSquaredError([]float64{1, 2}, []float64{1, 4}), 1e-12)

	// Higher is better: the closer prediction must score higher.
	yTrue := []float64{1, 2, 3, 4}
	near := []float64{1.1, 2.1, 3.1, 4.1}
	far := []float64{2, 3, 4, 5}
	assert.Greater(t, NegMeanSquaredError(yTrue, near), NegMeanSquaredError(yTrue, far))
}

func TestRSquared(t *testing.T) {
	yTrue := []float64{1, 2, 3, 4, 5}

	// Perfect prediction.
	assert.InDelta(t, 1.0, RSquared(yTrue, []float64{1, 2, 3, 4, 5}), 1e-12)

	// Predicting the mean scores exactly zero.
	assert.InDelta(t, 0.0, RSquared(yTrue, []float64{3, 3, 3, 3, 3}), 1e-12)

	// Worse than the mean scores negative.
	assert.Less(t, RSquared(yTrue, []float64{5, 4, 3, 2, 1}), 0.0)
}

func TestScorersPanicOnLengthMismatch(t *testing.T) {
	assert.Panics(t, func() { Accuracy([]float64{1}, []float64{1, 2}) })
	assert.Panics(t, func() { NegMeanSquaredError([]float64{1}, []float64{1, 2}) })
	assert.Panics(t, func() { RSquared([]float64{1}, []float64{1, 2}) })
}
