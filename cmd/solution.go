package cmd

import (
	"fmt"
	"hash/fnv"
	"os"
	"strconv"

	goerrors "github.com/go-errors/errors"
	"github.com/hscells/opinion"
	"github.com/hscells/opinion/config"
	"github.com/hscells/opinion/eval"
	"github.com/hscells/opinion/features"
	"github.com/hscells/opinion/learning"
)

// Analyser builds the text analysis chain. Tokenised texts are cached, up to
// cacheSize of them, and the cache is shared by every solution the analyser is
// given to.
func Analyser(stem, stopwords, transliterate bool, cacheSize int) (features.Analyser, error) {
	a := features.NewAnalyser()
	a.Stem = stem
	a.RemoveStopwords = stopwords
	a.Transliterate = transliterate
	if cacheSize > 0 {
		t, err := features.NewCachedTokeniser(a.Tokeniser, cacheSize)
		if err != nil {
			return features.Analyser{}, err
		}
		a.Tokeniser = t
	}
	return a, nil
}

// NewSolution creates an untrained solution configured by o.
func NewSolution(o config.Options, a features.Analyser, debug bool) *opinion.Solution {
	return opinion.NewSolution(
		opinion.NGramSize(o.NGram),
		opinion.WithAnalyser(a),
		opinion.WithClassifier(func() learning.Classifier {
			return learning.NewOneVsRest(o.Alpha, o.Workers)
		}),
		opinion.Debug(debug),
	)
}

// SolutionFactory creates a fresh solution for every cross-validation fold.
func SolutionFactory(o config.Options, a features.Analyser, debug bool) eval.ModelFactory {
	return func() eval.Model {
		return NewSolution(o, a, debug)
	}
}

// ModelKey identifies the configuration of the solutions built from o and the
// analyser flags, so that cached folds of one configuration are never
// reported for another. Options that do not change predictions are left out.
func ModelKey(o config.Options, stem, stopwords, transliterate bool) string {
	h := fnv.New64a()
	fmt.Fprintf(h, "ngram=%d alpha=%v stem=%t stopwords=%t transliterate=%t", o.NGram, o.Alpha, stem, stopwords, transliterate)
	return strconv.FormatUint(h.Sum64(), 16)
}

// Fatal prints err with a stack trace and exits.
func Fatal(err error) {
	fmt.Fprintln(os.Stderr, goerrors.Wrap(err, 1).ErrorStack())
	os.Exit(1)
}
