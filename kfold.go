package randsearch

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
)

//////
// Fold assignment.
//////
//
// Fold assignment is a pure function of (dataset size, fold count, seed): the
// partition is computed once per Fit, before any trial runs, and shared by
// every candidate. That is what lets sequential and pooled executions of the
// same search produce identical results.

// kfold partitions the indices 0..n-1 into k validation folds. Indices are
// shuffled with an RNG seeded from seed and dealt round-robin, so every index
// appears in exactly one fold and fold sizes differ by at most one.
func kfold(n, k int, seed int64) [][]int {
	rng := rand.New(rand.NewSource(seed))
	perm := rng.Perm(n)

	folds := make([][]int, k)
	for i, idx := range perm {
		f := i % k
		folds[f] = append(folds[f], idx)
	}

	return folds
}

// stratifiedKFold partitions indices into k validation folds such that each
// fold's class proportions mirror the whole dataset. Within each class,
// indices are shuffled and dealt round-robin; the dealing position carries
// over between classes so overall fold sizes stay balanced.
//
// Fails with ErrInsufficientData if any class has fewer than k examples,
// since such a class cannot appear in every fold.
func stratifiedKFold(y []float64, k int, seed int64) ([][]int, error) {
	rng := rand.New(rand.NewSource(seed))

	// Group indices by class value, classes visited in sorted order so the
	// RNG draw sequence does not depend on map iteration.
	byClass := make(map[float64][]int)
	for i, v := range y {
		byClass[v] = append(byClass[v], i)
	}

	classes := make([]float64, 0, len(byClass))
	for v := range byClass {
		classes = append(classes, v)
	}
	sort.Float64s(classes)

	for _, v := range classes {
		if len(byClass[v]) < k {
			return nil, fmt.Errorf("%w: class %v has %d examples, need at least %d",
				ErrInsufficientData, v, len(byClass[v]), k)
		}
	}

	folds := make([][]int, k)
	pos := 0
	for _, v := range classes {
		members := byClass[v]
		rng.Shuffle(len(members), func(i, j int) {
			members[i], members[j] = members[j], members[i]
		})

		for _, idx := range members {
			folds[pos%k] = append(folds[pos%k], idx)
			pos++
		}
	}

	return folds, nil
}

// maxAutoClasses caps how many distinct integral values FoldAuto will treat
// as classes. Beyond it, an all-integer y is assumed to be a regression
// target rather than labels.
const maxAutoClasses = 64

// looksCategorical reports whether y should be stratified under FoldAuto:
// every value integral, and between 2 and maxAutoClasses distinct values.
func looksCategorical(y []float64) bool {
	distinct := make(map[float64]struct{}, maxAutoClasses+1)

	for _, v := range y {
		if v != math.Trunc(v) || math.IsInf(v, 0) || math.IsNaN(v) {
			return false
		}

		distinct[v] = struct{}{}
		if len(distinct) > maxAutoClasses {
			return false
		}
	}

	return len(distinct) >= 2
}

// trainIndices returns every index outside the validation fold at position
// hold, preserving fold order.
func trainIndices(folds [][]int, hold int) []int {
	total := 0
	for i, f := range folds {
		if i != hold {
			total += len(f)
		}
	}

	out := make([]int, 0, total)
	for i, f := range folds {
		if i != hold {
			out = append(out, f...)
		}
	}

	return out
}
