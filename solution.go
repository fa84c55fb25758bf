// Package opinion predicts the opinions expressed in review texts using
// character n-gram features and a one-vs-rest Naive Bayes classifier.
package opinion

import (
	"github.com/hscells/opinion/features"
	"github.com/hscells/opinion/labels"
	"github.com/hscells/opinion/learning"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// UntrainedError is returned when a Solution is asked to predict before Train
// has been called.
type UntrainedError struct{}

func (UntrainedError) Error() string {
	return "solution must be trained before it can predict"
}

// Solution trains and applies an opinion classifier. A Solution owns its
// n-gram vocabulary, label universe and classifier; none of them are shared
// with other instances.
//
// Calling Train again extends the vocabulary and the label universe and
// replaces the classifier with a new one fitted to the new corpus only.
type Solution struct {
	ngram         int
	analyser      features.Analyser
	newClassifier func() learning.Classifier
	debug         bool

	vocabulary *features.Vocabulary
	codec      *labels.Codec
	clf        learning.Classifier
	trained    bool
}

// NGramSize sets the length of the character n-grams.
func NGramSize(n int) func(s *Solution) {
	return func(s *Solution) {
		s.ngram = n
	}
}

// WithAnalyser sets the text analysis chain.
func WithAnalyser(a features.Analyser) func(s *Solution) {
	return func(s *Solution) {
		s.analyser = a
	}
}

// WithClassifier sets how the classifier is constructed for each call to Train.
func WithClassifier(factory func() learning.Classifier) func(s *Solution) {
	return func(s *Solution) {
		s.newClassifier = factory
	}
}

// Debug logs statistics about training.
func Debug(debug bool) func(s *Solution) {
	return func(s *Solution) {
		s.debug = debug
	}
}

// NewSolution creates an untrained solution. By default it uses trigrams, the
// default analyser and a one-vs-rest multinomial Naive Bayes classifier.
func NewSolution(options ...func(s *Solution)) *Solution {
	s := &Solution{
		ngram:    features.DefaultNGramSize,
		analyser: features.NewAnalyser(),
		newClassifier: func() learning.Classifier {
			return learning.NewOneVsRest(1, 0)
		},
	}
	for _, o := range options {
		o(s)
	}
	s.vocabulary = features.NewVocabulary(s.ngram)
	s.codec = labels.NewCodec()
	return s
}

// Train fits the solution to aligned texts and label sets.
func (s *Solution) Train(texts []string, sets [][]labels.Label) error {
	if len(texts) != len(sets) {
		return errors.Errorf("the number of texts (%d) and label sets (%d) must be the same", len(texts), len(sets))
	}

	tokens := make([][]string, len(texts))
	for i, text := range texts {
		t, err := s.analyser.Tokens(text)
		if err != nil {
			return errors.Wrapf(err, "analysing document %d", i)
		}
		s.vocabulary.Learn(t)
		tokens[i] = t
	}

	s.codec.Register(sets)
	y, err := s.codec.Encode(sets)
	if err != nil {
		return errors.Wrap(err, "encoding labels")
	}

	x := make([]features.Vector, len(tokens))
	for i, t := range tokens {
		x[i] = s.vocabulary.Vectorize(t)
	}

	clf := s.newClassifier()
	if err := clf.Fit(x, y); err != nil {
		return errors.Wrap(err, "fitting classifier")
	}
	s.clf = clf
	s.trained = true

	if s.debug {
		log.WithFields(log.Fields{
			"documents":  len(texts),
			"ngrams":     s.vocabulary.Len(),
			"labels":     s.codec.Len(),
			"ngram_size": s.ngram,
		}).Info("trained solution")
	}
	return nil
}

// Predict returns the opinions the classifier assigns to text, in the order
// the labels were first seen during training. Only labels seen during
// training can be predicted.
func (s *Solution) Predict(text string) ([]labels.Label, error) {
	if !s.trained {
		return nil, UntrainedError{}
	}
	tokens, err := s.analyser.Tokens(text)
	if err != nil {
		return nil, err
	}
	ind, err := s.clf.Predict(s.vocabulary.Vectorize(tokens))
	if err != nil {
		return nil, errors.Wrap(err, "predicting labels")
	}
	return s.codec.Decode(ind)
}

// Classes predicts the opinions of every text.
func (s *Solution) Classes(texts []string) ([][]labels.Label, error) {
	classes := make([][]labels.Label, len(texts))
	for i, text := range texts {
		c, err := s.Predict(text)
		if err != nil {
			return nil, err
		}
		classes[i] = c
	}
	return classes, nil
}

// VocabularySize is the number of distinct n-grams learnt so far.
func (s *Solution) VocabularySize() int {
	return s.vocabulary.Len()
}

// Vocabulary exposes the n-gram vocabulary.
func (s *Solution) Vocabulary() *features.Vocabulary {
	return s.vocabulary
}

// Labels returns the label universe in id order.
func (s *Solution) Labels() []labels.Label {
	return s.codec.Labels()
}
