package opinion_test

import (
	"testing"

	"github.com/hscells/opinion"
	"github.com/hscells/opinion/features"
	"github.com/hscells/opinion/labels"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	positive = labels.Label("battery:positive")
	negative = labels.Label("battery:negative")
)

func trainBattery(t *testing.T, options ...func(s *opinion.Solution)) *opinion.Solution {
	s := opinion.NewSolution(options...)
	err := s.Train(
		[]string{"great battery life", "bad battery life"},
		[][]labels.Label{{positive}, {negative}},
	)
	require.NoError(t, err)
	return s
}

func TestSolutionEndToEnd(t *testing.T) {
	s := trainBattery(t, opinion.Debug(true))

	for _, ngram := range []string{"^gr", "eat", "^ba", "bad", "ad$", "ry$", "fe$"} {
		_, ok := s.Vocabulary().Lookup(ngram)
		assert.True(t, ok, ngram)
	}
	assert.Equal(t, []labels.Label{positive, negative}, s.Labels())

	predicted, err := s.Predict("battery life is great")
	require.NoError(t, err)
	require.NotEmpty(t, predicted)
	assert.Subset(t, []labels.Label{positive, negative}, predicted)
	assert.Equal(t, []labels.Label{positive}, predicted)
}

func TestSolutionUntrained(t *testing.T) {
	s := opinion.NewSolution()
	_, err := s.Predict("great battery life")
	var untrained opinion.UntrainedError
	assert.True(t, errors.As(err, &untrained))
}

func TestSolutionMisalignedCorpus(t *testing.T) {
	s := opinion.NewSolution()
	err := s.Train([]string{"great battery life"}, nil)
	assert.Error(t, err)
}

func TestSolutionPredictionDoesNotGrowVocabulary(t *testing.T) {
	s := trainBattery(t)
	size := s.VocabularySize()

	classes, err := s.Classes([]string{"the screen is dim", "xyzzy"})
	require.NoError(t, err)
	assert.Len(t, classes, 2)
	assert.Equal(t, size, s.VocabularySize())
}

func TestSolutionRetrainExtendsVocabulary(t *testing.T) {
	s := trainBattery(t)
	size := s.VocabularySize()

	screen := labels.Label("screen:negative")
	err := s.Train([]string{"dim screen", "great screen"}, [][]labels.Label{{screen}, {}})
	require.NoError(t, err)
	assert.Greater(t, s.VocabularySize(), size)
	assert.Equal(t, []labels.Label{positive, negative, screen}, s.Labels())

	predicted, err := s.Predict("dim screen")
	require.NoError(t, err)
	assert.Contains(t, predicted, screen)
}

func TestSolutionNGramSize(t *testing.T) {
	s := trainBattery(t, opinion.NGramSize(2))
	_, ok := s.Vocabulary().Lookup("^g")
	assert.True(t, ok)
}

func TestSolutionAnalyser(t *testing.T) {
	a := features.NewAnalyser()
	a.Stem = true
	s := trainBattery(t, opinion.WithAnalyser(a))
	_, ok := s.Vocabulary().Lookup("ri$")
	assert.True(t, ok)
}
