package eval

import (
	"fmt"
	"math"
	"sort"

	"github.com/hscells/opinion/labels"
	"github.com/pkg/errors"
	"github.com/xtgo/set"
)

// ErrScoreUndefined is returned when a measure would divide by zero.
var ErrScoreUndefined = errors.New("score is undefined for a zero denominator")

// Counts are the micro-averaged totals of a set of multi-label predictions.
type Counts struct {
	// Correct is the number of predicted labels that were also actual labels.
	Correct int
	// Actual is the number of actual labels.
	Actual int
	// Predicted is the number of predicted labels.
	Predicted int
}

// Add sums two sets of counts.
func (c Counts) Add(o Counts) Counts {
	return Counts{
		Correct:   c.Correct + o.Correct,
		Actual:    c.Actual + o.Actual,
		Predicted: c.Predicted + o.Predicted,
	}
}

// Precision is Correct / Predicted.
func (c Counts) Precision() (float64, error) {
	if c.Predicted == 0 {
		return 0, ErrScoreUndefined
	}
	return float64(c.Correct) / float64(c.Predicted), nil
}

// Recall is Correct / Actual.
func (c Counts) Recall() (float64, error) {
	if c.Actual == 0 {
		return 0, ErrScoreUndefined
	}
	return float64(c.Correct) / float64(c.Actual), nil
}

// FMeasure is the weighted harmonic mean of precision and recall, with beta
// controlling the trade-off between the two.
func (c Counts) FMeasure(beta float64) (float64, error) {
	precision, err := c.Precision()
	if err != nil {
		return 0, err
	}
	recall, err := c.Recall()
	if err != nil {
		return 0, err
	}
	betaSquared := math.Pow(beta, 2)
	if betaSquared*precision+recall == 0 {
		return 0, ErrScoreUndefined
	}
	return ((1 + betaSquared) * (precision * recall)) / ((betaSquared * precision) + recall), nil
}

type labelSlice []labels.Label

func (l labelSlice) Len() int           { return len(l) }
func (l labelSlice) Less(i, j int) bool { return l[i] < l[j] }
func (l labelSlice) Swap(i, j int)      { l[i], l[j] = l[j], l[i] }

// uniq returns a sorted copy of ls with duplicates removed.
func uniq(ls []labels.Label) labelSlice {
	s := make(labelSlice, len(ls))
	copy(s, ls)
	sort.Sort(s)
	return s[:set.Uniq(s)]
}

// Compare counts the agreement between one predicted and one actual label set.
func Compare(predicted, actual []labels.Label) Counts {
	p, a := uniq(predicted), uniq(actual)
	pivot := len(p)
	x := append(p, a...)
	return Counts{
		Correct:   set.Inter(x, pivot),
		Actual:    len(a),
		Predicted: pivot,
	}
}

// Score totals the agreement between aligned predicted and actual label sets.
func Score(predicted, actual [][]labels.Label) (Counts, error) {
	if len(predicted) != len(actual) {
		return Counts{}, errors.Errorf("%d predictions for %d documents", len(predicted), len(actual))
	}
	var c Counts
	for i := range predicted {
		c = c.Add(Compare(predicted[i], actual[i]))
	}
	return c, nil
}

type recallEvaluator struct{}
type precisionEvaluator struct{}
type numRel struct{}
type numRet struct{}
type numRelRet struct{}

// FMeasure computes f-measure, with the beta parameter controlling the precision and recall trade-off.
type FMeasure struct {
	beta float64
}

var (
	// RecallEvaluator calculates recall.
	RecallEvaluator = recallEvaluator{}
	// PrecisionEvaluator calculates precision.
	PrecisionEvaluator = precisionEvaluator{}
	// NumRel is the number of actual labels.
	NumRel = numRel{}
	// NumRet is the number of predicted labels.
	NumRet = numRet{}
	// NumRelRet is the number of correctly predicted labels.
	NumRelRet = numRelRet{}

	// F1Measure is f-measure with beta=1.
	F1Measure = FMeasure{beta: 1}
	// F05Measure is f-measure with beta=0.5.
	F05Measure = FMeasure{beta: 0.5}
	// F3Measure is f-measure with beta=3.
	F3Measure = FMeasure{beta: 3}
)

func (recallEvaluator) Name() string {
	return "Recall"
}

func (recallEvaluator) Score(c Counts) (float64, error) {
	return c.Recall()
}

func (precisionEvaluator) Name() string {
	return "Precision"
}

func (precisionEvaluator) Score(c Counts) (float64, error) {
	return c.Precision()
}

func (numRel) Name() string {
	return "NumRel"
}

func (numRel) Score(c Counts) (float64, error) {
	return float64(c.Actual), nil
}

func (numRet) Name() string {
	return "NumRet"
}

func (numRet) Score(c Counts) (float64, error) {
	return float64(c.Predicted), nil
}

func (numRelRet) Name() string {
	return "NumRelRet"
}

func (numRelRet) Score(c Counts) (float64, error) {
	return float64(c.Correct), nil
}

// Score uses the beta parameter to compute f-measure.
func (f FMeasure) Score(c Counts) (float64, error) {
	return c.FMeasure(f.beta)
}

// Name is the name of the f-measure with its beta parameter.
func (f FMeasure) Name() string {
	return fmt.Sprintf("F%vMeasure", f.beta)
}

// NewFMeasure creates an f-measure evaluator with an arbitrary beta.
func NewFMeasure(beta float64) FMeasure {
	return FMeasure{beta: beta}
}
