package learning

import (
	"github.com/hscells/opinion/features"
	"github.com/hscells/opinion/labels"
	"github.com/pkg/errors"
)

// ErrNotFitted is returned when a classifier is asked to predict before it has been fitted.
var ErrNotFitted = errors.New("classifier has not been fitted")

// Classifier is an abstract representation of a multi-label classifier. It is
// trained on feature vectors and indicator rows, and predicts an indicator
// vector for a single feature vector. Fitting again overwrites any previously
// learnt state.
type Classifier interface {
	// Fit must train the classifier on aligned rows of x and y.
	Fit(x []features.Vector, y []labels.Indicator) error
	// Predict must produce an indicator vector as wide as the rows of y seen in Fit.
	Predict(x features.Vector) (labels.Indicator, error)
}

// BinaryClassifier is a two-class model used for a single label column.
type BinaryClassifier interface {
	Fit(x []features.Vector, y []bool) error
	// Predict returns the most likely class for x.
	Predict(x features.Vector) bool
	// Probability returns the probability that x belongs to the positive class.
	Probability(x features.Vector) float64
}

// ConstantPredictor always predicts the same class. It stands in for label
// columns that only ever contained one class in training.
type ConstantPredictor struct {
	Value bool
}

// Fit is a no-op; a constant predictor has nothing to learn.
func (c ConstantPredictor) Fit(x []features.Vector, y []bool) error {
	return nil
}

// Predict returns the constant class.
func (c ConstantPredictor) Predict(x features.Vector) bool {
	return c.Value
}

// Probability is 1 when the constant is the positive class, otherwise 0.
func (c ConstantPredictor) Probability(x features.Vector) float64 {
	if c.Value {
		return 1
	}
	return 0
}
