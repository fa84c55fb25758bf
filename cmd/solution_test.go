package cmd_test

import (
	"testing"

	"github.com/hscells/opinion"
	"github.com/hscells/opinion/cmd"
	"github.com/hscells/opinion/config"
	"github.com/hscells/opinion/corpus"
	"github.com/hscells/opinion/eval"
	"github.com/hscells/opinion/labels"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolutionFactoryIsolatesFolds(t *testing.T) {
	a, err := cmd.Analyser(false, false, false, 16)
	require.NoError(t, err)

	o := config.Default()
	o.NGram = 4
	factory := cmd.SolutionFactory(o, a, false)

	first := factory().(*opinion.Solution)
	require.NoError(t, first.Train([]string{"great battery"}, [][]labels.Label{{"battery:positive"}}))

	second := factory().(*opinion.Solution)
	assert.Equal(t, 0, second.VocabularySize())
	assert.Empty(t, second.Labels())

	_, ok := first.Vocabulary().Lookup("^gre")
	assert.True(t, ok)
}

func TestAnalyserOptions(t *testing.T) {
	a, err := cmd.Analyser(true, false, true, 0)
	require.NoError(t, err)
	tokens, err := a.Tokens("Batteries")
	require.NoError(t, err)
	assert.Equal(t, []string{"^batteri$"}, tokens)
}

func TestModelKey(t *testing.T) {
	o := config.Default()
	key := cmd.ModelKey(o, false, false, false)
	assert.Equal(t, key, cmd.ModelKey(o, false, false, false))

	workers := o
	workers.Workers = 8
	workers.Format = "json"
	assert.Equal(t, key, cmd.ModelKey(workers, false, false, false))

	other := o
	other.NGram = 1
	other.Alpha = 1000
	assert.NotEqual(t, key, cmd.ModelKey(other, false, false, false))

	alpha := o
	alpha.Alpha = 0.5
	assert.NotEqual(t, key, cmd.ModelKey(alpha, false, false, false))

	assert.NotEqual(t, key, cmd.ModelKey(o, true, false, false))
	assert.NotEqual(t, key, cmd.ModelKey(o, false, true, false))
	assert.NotEqual(t, key, cmd.ModelKey(o, false, false, true))
}

func TestModelKeySeparatesCachedFolds(t *testing.T) {
	a, err := cmd.Analyser(false, false, false, 0)
	require.NoError(t, err)
	c := corpus.Corpus{
		Texts:  []string{"great battery", "bad battery", "great screen", "bad screen"},
		Labels: [][]labels.Label{{"battery:positive"}, {"battery:negative"}, {"screen:positive"}, {"screen:negative"}},
	}
	cache := eval.NewMapFoldCache()

	o := config.Default()
	cv := eval.CrossValidation{Folds: 2, Cache: cache, Key: cmd.ModelKey(o, false, false, false)}
	_, err = cv.Run(c, cmd.SolutionFactory(o, a, false))
	require.NoError(t, err)

	other := o
	other.NGram = 1
	other.Alpha = 1000
	cv.Key = cmd.ModelKey(other, false, false, false)
	summary, err := cv.Run(c, cmd.SolutionFactory(other, a, false))
	require.NoError(t, err)
	for _, f := range summary.Folds {
		assert.False(t, f.Cached)
	}
}
