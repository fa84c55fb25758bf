package eval

import (
	"math/rand"

	"github.com/pkg/errors"
)

// Fold is one train/test partition of a dataset, as indices into it.
type Fold struct {
	Train []int
	Test  []int
}

// KFold partitions the indices [0, n) into k folds. The test sets of the folds
// are disjoint and together cover every index; the first n%k folds hold one
// more test index than the rest. When rng is not nil the indices are shuffled
// with it before partitioning.
func KFold(n, k int, rng *rand.Rand) ([]Fold, error) {
	if k < 2 {
		return nil, errors.Errorf("at least 2 folds are required, got %d", k)
	}
	if k > n {
		return nil, errors.Errorf("cannot split %d documents into %d folds", n, k)
	}

	indices := make([]int, n)
	if rng != nil {
		indices = rng.Perm(n)
	} else {
		for i := range indices {
			indices[i] = i
		}
	}

	folds := make([]Fold, k)
	var start int
	for i := range folds {
		size := n / k
		if i < n%k {
			size++
		}
		stop := start + size

		test := make([]int, size)
		copy(test, indices[start:stop])
		train := make([]int, 0, n-size)
		train = append(train, indices[:start]...)
		train = append(train, indices[stop:]...)

		folds[i] = Fold{Train: train, Test: test}
		start = stop
	}
	return folds, nil
}
