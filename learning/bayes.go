package learning

import (
	"math"

	"github.com/hscells/opinion/features"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// minAlpha stops zero smoothing from producing log(0) feature probabilities.
const minAlpha = 1e-10

// MultinomialNB is a two-class multinomial Naive Bayes model over count
// features, with additive smoothing and class priors fitted from the data.
type MultinomialNB struct {
	// Alpha is the additive smoothing parameter.
	Alpha float64

	classLogPrior  [2]float64
	featureLogProb [2][]float64
	fitted         bool
}

// NewMultinomialNB creates a model with Laplace smoothing.
func NewMultinomialNB() *MultinomialNB {
	return &MultinomialNB{Alpha: 1}
}

func class(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Fit estimates class priors and per-class n-gram probabilities.
func (nb *MultinomialNB) Fit(x []features.Vector, y []bool) error {
	if len(x) == 0 {
		return errors.New("no training examples")
	}
	if len(x) != len(y) {
		return errors.Errorf("%d examples but %d targets", len(x), len(y))
	}

	var width int
	for _, v := range x {
		if v.Size > width {
			width = v.Size
		}
	}

	alpha := nb.Alpha
	if alpha < minAlpha {
		alpha = minAlpha
	}

	var classCount [2]float64
	featureCount := [2][]float64{make([]float64, width), make([]float64, width)}
	for i, v := range x {
		c := class(y[i])
		classCount[c]++
		for j, idx := range v.Index {
			featureCount[c][idx] += v.Count[j]
		}
	}

	n := float64(len(x))
	for c := 0; c < 2; c++ {
		nb.classLogPrior[c] = math.Log(classCount[c] / n)

		floats.AddConst(alpha, featureCount[c])
		logTotal := math.Log(floats.Sum(featureCount[c]))
		for j, fc := range featureCount[c] {
			featureCount[c][j] = math.Log(fc) - logTotal
		}
		nb.featureLogProb[c] = featureCount[c]
	}
	nb.fitted = true
	return nil
}

// jointLogLikelihood is the unnormalised log posterior of each class. Feature
// ids beyond the fitted width are ignored.
func (nb *MultinomialNB) jointLogLikelihood(x features.Vector) []float64 {
	jll := []float64{nb.classLogPrior[0], nb.classLogPrior[1]}
	for c := 0; c < 2; c++ {
		flp := nb.featureLogProb[c]
		for j, idx := range x.Index {
			if idx >= len(flp) {
				continue
			}
			jll[c] += x.Count[j] * flp[idx]
		}
	}
	return jll
}

// Predict returns the class with the highest joint log likelihood. Ties go to
// the negative class.
func (nb *MultinomialNB) Predict(x features.Vector) bool {
	if !nb.fitted {
		return false
	}
	jll := nb.jointLogLikelihood(x)
	return jll[1] > jll[0]
}

// Probability returns P(positive | x).
func (nb *MultinomialNB) Probability(x features.Vector) float64 {
	if !nb.fitted {
		return 0
	}
	jll := nb.jointLogLikelihood(x)
	return math.Exp(jll[1] - floats.LogSumExp(jll))
}
