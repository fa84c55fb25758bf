// Package eval scores multi-label predictions and cross-validates opinion classifiers.
package eval

import (
	"github.com/pkg/errors"
)

// Evaluator is an interface for scoring the totals of a set of predictions.
// Score returns ErrScoreUndefined when the measure divides by zero.
type Evaluator interface {
	Score(c Counts) (float64, error)
	Name() string
}

// Evaluate scores counts using the supplied evaluation measurements. Undefined
// scores are reported as 0.
func Evaluate(evaluators []Evaluator, c Counts) (map[string]float64, error) {
	scores := make(map[string]float64, len(evaluators))
	for _, evaluator := range evaluators {
		v, err := evaluator.Score(c)
		if err == ErrScoreUndefined {
			v = 0
		} else if err != nil {
			return nil, errors.Wrap(err, evaluator.Name())
		}
		scores[evaluator.Name()] = v
	}
	return scores, nil
}
