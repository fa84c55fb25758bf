package eval

import (
	"encoding/json"
	"math/rand"
	"time"

	"github.com/hscells/opinion/corpus"
	"github.com/hscells/opinion/labels"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat"
	"gopkg.in/cheggaaa/pb.v1"
)

// DefaultFolds is the number of folds used when none is specified.
const DefaultFolds = 10

// Model is a multi-label classifier that can be cross-validated.
type Model interface {
	Train(texts []string, sets [][]labels.Label) error
	Classes(texts []string) ([][]labels.Label, error)
}

// ModelFactory creates an untrained model. It is called once per fold so that
// nothing learnt in one fold can leak into another.
type ModelFactory func() Model

// FoldResult is the outcome of training and testing on one fold.
type FoldResult struct {
	Fold  int
	Train int
	Test  int
	Counts
	Precision float64
	Recall    float64
	Score     float64
	// Undefined is set when the score divided by zero and was reported as 0.
	Undefined bool
	// Cached is set when the result was read from a FoldCache.
	Cached bool `json:"-"`
	// Err holds the reason the fold failed, if it did.
	Err error `json:"-"`
}

// MarshalJSON writes the reason a failed fold failed as its Error field.
func (r FoldResult) MarshalJSON() ([]byte, error) {
	type foldResult FoldResult
	v := struct {
		foldResult
		Error string `json:",omitempty"`
	}{foldResult: foldResult(r)}
	if r.Err != nil {
		v.Error = r.Err.Error()
	}
	return json.Marshal(v)
}

// Failed reports whether the fold could not be evaluated.
func (r FoldResult) Failed() bool {
	return r.Err != nil
}

// Summary aggregates the results of every fold.
type Summary struct {
	Measure  string
	Folds    []FoldResult
	Mean     float64
	StdDev   float64
	Failed   int
	Shuffled bool
	Seed     int64
}

// CrossValidation evaluates a model with k-fold cross-validation.
//
// When Shuffle is set and Seed is nil, the split is seeded from the clock;
// the seed that was used is reported in the Summary so the run can be
// repeated.
type CrossValidation struct {
	Folds   int
	Shuffle bool
	Seed    *int64
	// Measure scores each fold. It defaults to F1Measure.
	Measure Evaluator
	// Progress displays a progress bar over the folds.
	Progress bool
	// Cache, when set, stores fold results of reproducible splits.
	Cache FoldCache
	// Key identifies the configuration of the models being evaluated. Cached
	// folds are only reused by runs with the same Key.
	Key string
}

func (cv CrossValidation) measure() Evaluator {
	if cv.Measure == nil {
		return F1Measure
	}
	return cv.Measure
}

// Split partitions the corpus according to the configuration, returning the
// folds and the seed used to shuffle them.
func (cv CrossValidation) Split(n int) ([]Fold, int64, error) {
	k := cv.Folds
	if k == 0 {
		k = DefaultFolds
	}
	if !cv.Shuffle {
		folds, err := KFold(n, k, nil)
		return folds, 0, err
	}
	seed := time.Now().UnixNano()
	if cv.Seed != nil {
		seed = *cv.Seed
	}
	folds, err := KFold(n, k, rand.New(rand.NewSource(seed)))
	return folds, seed, err
}

// Run cross-validates models created by factory over c. Each fold trains a
// fresh model, so folds share no state. A fold whose model fails to train or
// predict is recorded as failed and left out of the mean; Run only fails if
// every fold does.
func (cv CrossValidation) Run(c corpus.Corpus, factory ModelFactory) (Summary, error) {
	if err := c.Validate(); err != nil {
		return Summary{}, err
	}
	folds, seed, err := cv.Split(c.Len())
	if err != nil {
		return Summary{}, err
	}
	reproducible := !cv.Shuffle || cv.Seed != nil
	fingerprint := c.Fingerprint()

	var bar *pb.ProgressBar
	if cv.Progress {
		bar = pb.StartNew(len(folds))
	}

	results := make([]FoldResult, len(folds))
	for i, fold := range folds {
		key := foldKey(cv.Key, fingerprint, len(folds), seed, cv.Shuffle, i)
		if cached, ok := cv.cached(key, reproducible); ok {
			log.WithField("fold", i).Info("fold already completed, so skipping it")
			results[i] = cached
		} else {
			results[i] = cv.evaluate(i, c.Subset(fold.Train), c.Subset(fold.Test), factory)
			if cv.Cache != nil && reproducible && !results[i].Failed() {
				if err := cv.Cache.Set(key, results[i]); err != nil {
					log.WithField("fold", i).Warnf("could not cache fold result: %s", err)
				}
			}
		}
		if bar != nil {
			bar.Increment()
		}
	}
	if bar != nil {
		bar.Finish()
	}

	summary, err := Summarise(results)
	if err != nil {
		return Summary{}, err
	}
	summary.Measure = cv.measure().Name()
	summary.Shuffled = cv.Shuffle
	summary.Seed = seed
	return summary, nil
}

func (cv CrossValidation) cached(key string, reproducible bool) (FoldResult, bool) {
	if cv.Cache == nil || !reproducible {
		return FoldResult{}, false
	}
	r, ok := cv.Cache.Get(key)
	if !ok {
		return FoldResult{}, false
	}
	r = cv.score(r)
	r.Cached = true
	return r, true
}

// evaluate trains a fresh model on train and scores its predictions on test.
func (cv CrossValidation) evaluate(fold int, train, test corpus.Corpus, factory ModelFactory) FoldResult {
	r := FoldResult{
		Fold:  fold,
		Train: train.Len(),
		Test:  test.Len(),
	}
	logger := log.WithField("fold", fold)

	model := factory()
	if err := model.Train(train.Texts, train.Labels); err != nil {
		r.Err = errors.Wrapf(err, "training fold %d", fold)
		logger.WithError(err).Error("fold failed")
		return r
	}
	predicted, err := model.Classes(test.Texts)
	if err != nil {
		r.Err = errors.Wrapf(err, "testing fold %d", fold)
		logger.WithError(err).Error("fold failed")
		return r
	}
	r.Counts, err = Score(predicted, test.Labels)
	if err != nil {
		r.Err = errors.Wrapf(err, "scoring fold %d", fold)
		logger.WithError(err).Error("fold failed")
		return r
	}
	r = cv.score(r)

	logger.WithFields(log.Fields{
		"correct":   r.Correct,
		"actual":    r.Actual,
		"predicted": r.Predicted,
		"precision": r.Precision,
		"recall":    r.Recall,
		"score":     r.Score,
	}).Info("fold calculated")
	return r
}

// score fills in the precision, recall and measure of r from its counts.
// Zero denominators give a score of 0.
func (cv CrossValidation) score(r FoldResult) FoldResult {
	r.Precision, _ = r.Counts.Precision()
	r.Recall, _ = r.Counts.Recall()

	var err error
	r.Score, err = cv.measure().Score(r.Counts)
	r.Undefined = err != nil
	if r.Undefined {
		r.Score = 0
		log.WithField("fold", r.Fold).Warn("fold score is undefined, using 0")
	}
	return r
}

// Summarise reduces fold results into their mean and standard deviation.
// Failed folds are counted but do not contribute to the mean.
func Summarise(results []FoldResult) (Summary, error) {
	s := Summary{Folds: results}
	scores := make([]float64, 0, len(results))
	for _, r := range results {
		if r.Failed() {
			s.Failed++
			continue
		}
		scores = append(scores, r.Score)
	}
	if len(scores) == 0 {
		if len(results) > 0 && results[0].Err != nil {
			return Summary{}, errors.Wrap(results[0].Err, "every fold failed")
		}
		return Summary{}, errors.New("no folds were evaluated")
	}
	s.Mean = stat.Mean(scores, nil)
	if len(scores) > 1 {
		s.StdDev = stat.StdDev(scores, nil)
	}
	return s, nil
}
