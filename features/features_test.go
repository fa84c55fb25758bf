package features_test

import (
	"strings"
	"testing"

	"github.com/hscells/opinion/features"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fieldsTokeniser struct {
	calls int
}

func (f *fieldsTokeniser) Tokenise(text string) ([]string, error) {
	f.calls++
	return strings.Fields(text), nil
}

func TestNGrams(t *testing.T) {
	assert.Equal(t, []string{"^gr", "gre", "rea", "eat", "at$"}, features.NGrams("^great$", 3))
	assert.Equal(t, []string{"^a$"}, features.NGrams("^a$", 3))
	assert.Nil(t, features.NGrams("^$", 3))
	assert.Equal(t, []string{"^éc", "éco", "co$"}, features.NGrams("^éco$", 3))
}

func TestProseTokeniser(t *testing.T) {
	a := features.NewAnalyser()
	tokens, err := a.Tokens("Great Battery life")
	require.NoError(t, err)
	assert.Equal(t, []string{"^great$", "^battery$", "^life$"}, tokens)
}

func TestAnalyserStemming(t *testing.T) {
	a := features.Analyser{Tokeniser: &fieldsTokeniser{}, Stem: true}
	tokens, err := a.Tokens("Batteries running")
	require.NoError(t, err)
	assert.Equal(t, []string{"^batteri$", "^run$"}, tokens)
}

func TestNormaliser(t *testing.T) {
	n := features.Normaliser{Transliterate: true}
	assert.Equal(t, "cafe", n.Normalise("CAFÉ"))
	assert.Equal(t, "café", features.Normaliser{}.Normalise("CAFÉ"))
}

func TestCachedTokeniser(t *testing.T) {
	inner := &fieldsTokeniser{}
	c, err := features.NewCachedTokeniser(inner, 8)
	require.NoError(t, err)

	a, err := c.Tokenise("bad battery")
	require.NoError(t, err)
	a[0] = "mutated"

	b, err := c.Tokenise("bad battery")
	require.NoError(t, err)
	assert.Equal(t, []string{"bad", "battery"}, b)
	assert.Equal(t, 1, inner.calls)
}

func TestVocabularySizeIsDistinctNGrams(t *testing.T) {
	a := features.Analyser{Tokeniser: &fieldsTokeniser{}}
	v := features.NewVocabulary(3)

	distinct := map[string]bool{}
	for _, text := range []string{"great battery life", "bad battery life", "great great"} {
		tokens, err := a.Tokens(text)
		require.NoError(t, err)
		v.Learn(tokens)
		for _, tok := range tokens {
			for _, g := range features.NGrams(tok, 3) {
				distinct[g] = true
			}
		}
	}
	assert.Equal(t, len(distinct), v.Len())

	size := v.Len()
	id, ok := v.Lookup("^ba")
	require.True(t, ok)
	assert.Equal(t, id, v.Add("^ba"))
	assert.Equal(t, size, v.Len())
}

func TestVocabularyOrder(t *testing.T) {
	v := features.NewVocabulary(3)
	v.Learn([]string{"^ab$", "^ba$"})
	assert.Equal(t, "^ab", v.NGram(0))
	assert.Equal(t, "ab$", v.NGram(1))
	assert.Equal(t, "^ba", v.NGram(2))
	assert.Equal(t, "ba$", v.NGram(3))
}

func TestVectorize(t *testing.T) {
	v := features.NewVocabulary(3)
	v.Learn([]string{"^great$", "^battery$"})

	vec := v.Vectorize([]string{"^great$", "^great$", "^dog$"})
	assert.Equal(t, v.Len(), vec.Size)
	assert.Equal(t, 10.0, vec.Sum())

	d := vec.Dense()
	require.Len(t, d, v.Len())
	id, _ := v.Lookup("gre")
	assert.Equal(t, 2.0, d[id])
	for i := 1; i < len(vec.Index); i++ {
		assert.Less(t, vec.Index[i-1], vec.Index[i])
	}
}

func TestVectorizeUnknownIsZero(t *testing.T) {
	v := features.NewVocabulary(3)
	v.Learn([]string{"^great$"})

	for _, tokens := range [][]string{nil, {"^xyz$", "^qqq$"}} {
		vec := v.Vectorize(tokens)
		assert.Equal(t, v.Len(), vec.Size)
		assert.Empty(t, vec.Index)
		assert.Equal(t, make([]float64, v.Len()), vec.Dense())
	}
}
