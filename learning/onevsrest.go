// Package learning contains the multi-label classifier used to predict opinions.
package learning

import (
	"fmt"
	"runtime"

	"github.com/hscells/opinion/features"
	"github.com/hscells/opinion/labels"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// DegenerateColumnError reports a label column in which every training row
// has the same class, so there is nothing for a binary classifier to learn.
type DegenerateColumnError struct {
	Column int
	Value  bool
}

func (e DegenerateColumnError) Error() string {
	return fmt.Sprintf("label column %d only contains the class %v", e.Column, e.Value)
}

// checkColumn returns a DegenerateColumnError if column has a single class.
func checkColumn(j int, column []bool) error {
	for _, v := range column[1:] {
		if v != column[0] {
			return nil
		}
	}
	return DegenerateColumnError{Column: j, Value: column[0]}
}

// OneVsRest decomposes a multi-label problem into one independent binary
// classifier per label column. Columns are fitted concurrently.
type OneVsRest struct {
	// New creates the binary classifier for a column.
	New func() BinaryClassifier
	// Workers limits how many columns are fitted at once.
	Workers int

	estimators []BinaryClassifier
	degenerate []int
	fitted     bool
}

// NewOneVsRest creates a one-vs-rest classifier over multinomial Naive Bayes
// models with the given smoothing. A non-positive workers uses GOMAXPROCS.
func NewOneVsRest(alpha float64, workers int) *OneVsRest {
	return &OneVsRest{
		New: func() BinaryClassifier {
			return &MultinomialNB{Alpha: alpha}
		},
		Workers: workers,
	}
}

// Fit trains one classifier per column of y. A column holding a single class
// is not fitted; it gets a ConstantPredictor for that class instead.
func (o *OneVsRest) Fit(x []features.Vector, y []labels.Indicator) error {
	if len(x) == 0 {
		return errors.New("no training examples")
	}
	if len(x) != len(y) {
		return errors.Errorf("%d examples but %d indicator rows", len(x), len(y))
	}
	width := len(y[0])
	for i, row := range y {
		if len(row) != width {
			return errors.Errorf("indicator row %d has width %d, expected %d", i, len(row), width)
		}
	}

	workers := o.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	estimators := make([]BinaryClassifier, width)
	degenerate := make([]bool, width)

	var g errgroup.Group
	g.SetLimit(workers)
	for j := 0; j < width; j++ {
		j := j
		g.Go(func() error {
			column := make([]bool, len(y))
			for i := range y {
				column[i] = y[i][j]
			}

			var dce DegenerateColumnError
			if err := checkColumn(j, column); errors.As(err, &dce) {
				log.WithFields(log.Fields{"column": dce.Column, "value": dce.Value}).Debug("degenerate label column, using a constant predictor")
				estimators[j] = ConstantPredictor{Value: dce.Value}
				degenerate[j] = true
				return nil
			}

			clf := o.New()
			if err := clf.Fit(x, column); err != nil {
				return errors.Wrapf(err, "fitting label column %d", j)
			}
			estimators[j] = clf
			log.WithFields(log.Fields{"column": j, "prior": clf.Probability(features.Vector{})}).Debug("fitted label column")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	o.estimators = estimators
	o.degenerate = o.degenerate[:0]
	for j, d := range degenerate {
		if d {
			o.degenerate = append(o.degenerate, j)
		}
	}
	o.fitted = true
	return nil
}

// Predict returns the decision of every column classifier for x.
func (o *OneVsRest) Predict(x features.Vector) (labels.Indicator, error) {
	if !o.fitted {
		return nil, ErrNotFitted
	}
	ind := make(labels.Indicator, len(o.estimators))
	for j, clf := range o.estimators {
		ind[j] = clf.Predict(x)
	}
	return ind, nil
}

// Degenerate lists the columns that were given a constant predictor during the last Fit.
func (o *OneVsRest) Degenerate() []int {
	return append([]int(nil), o.degenerate...)
}
