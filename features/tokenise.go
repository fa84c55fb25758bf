// Package features turns review text into character n-gram count vectors.
package features

import (
	"strings"

	"github.com/bbalet/stopwords"
	"github.com/hashicorp/golang-lru"
	"github.com/hscells/go-unidecode"
	"github.com/jdkato/prose/v2"
	"github.com/pkg/errors"
	"github.com/reiver/go-porterstemmer"
)

const (
	// BeginMarker is prepended to every token.
	BeginMarker = "^"
	// EndMarker is appended to every token.
	EndMarker = "$"
)

// Tokeniser splits normalised text into word tokens.
type Tokeniser interface {
	Tokenise(text string) ([]string, error)
}

// ProseTokeniser tokenises text into words using prose, with tagging,
// entity extraction and sentence segmentation disabled.
type ProseTokeniser struct{}

// Tokenise implements Tokeniser.
func (ProseTokeniser) Tokenise(text string) ([]string, error) {
	d, err := prose.NewDocument(text, prose.WithTagging(false), prose.WithExtraction(false), prose.WithSegmentation(false))
	if err != nil {
		return nil, err
	}
	toks := d.Tokens()
	tokens := make([]string, 0, len(toks))
	for _, tok := range toks {
		if len(tok.Text) == 0 {
			continue
		}
		tokens = append(tokens, tok.Text)
	}
	return tokens, nil
}

// CachedTokeniser memoises the output of another tokeniser in a fixed size
// LRU cache. Tokenising is a pure function of the text, so one cache can be
// shared by every model built during an evaluation.
type CachedTokeniser struct {
	Tokeniser
	cache *lru.Cache
}

// Tokenise implements Tokeniser.
func (c CachedTokeniser) Tokenise(text string) ([]string, error) {
	if v, ok := c.cache.Get(text); ok {
		tokens := v.([]string)
		return append([]string(nil), tokens...), nil
	}
	tokens, err := c.Tokeniser.Tokenise(text)
	if err != nil {
		return nil, err
	}
	c.cache.Add(text, append([]string(nil), tokens...))
	return tokens, nil
}

// NewCachedTokeniser wraps t with an LRU cache holding up to size texts.
func NewCachedTokeniser(t Tokeniser, size int) (CachedTokeniser, error) {
	cache, err := lru.New(size)
	if err != nil {
		return CachedTokeniser{}, errors.Wrap(err, "creating tokeniser cache")
	}
	return CachedTokeniser{Tokeniser: t, cache: cache}, nil
}

// Normaliser prepares raw text for tokenising. Text is always lower-cased.
type Normaliser struct {
	// Transliterate converts unicode text into its closest ASCII representation.
	Transliterate bool
	// RemoveStopwords strips English stop words.
	RemoveStopwords bool
}

// Normalise applies the normalisation steps to text.
func (n Normaliser) Normalise(text string) string {
	text = strings.ToLower(text)
	if n.Transliterate {
		text = unidecode.Unidecode(text)
	}
	if n.RemoveStopwords {
		text = stopwords.CleanString(text, "en", false)
	}
	return text
}

// Analyser is the full text analysis chain used to produce tokens for
// n-gram extraction: normalise, tokenise, optionally stem, then wrap each token
// in boundary markers, e.g. "great" becomes "^great$".
type Analyser struct {
	Normaliser
	Tokeniser
	// Stem applies the Porter stemmer to each token before wrapping it.
	Stem bool
}

// NewAnalyser creates the default analyser, which lower-cases text and
// tokenises it with prose.
func NewAnalyser() Analyser {
	return Analyser{Tokeniser: ProseTokeniser{}}
}

// Tokens analyses text into boundary-wrapped tokens.
func (a Analyser) Tokens(text string) ([]string, error) {
	tokens, err := a.Tokenise(a.Normalise(text))
	if err != nil {
		return nil, errors.Wrap(err, "tokenising text")
	}
	wrapped := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if a.Stem {
			tok = porterstemmer.StemString(tok)
		}
		if len(tok) == 0 {
			continue
		}
		wrapped = append(wrapped, BeginMarker+tok+EndMarker)
	}
	return wrapped, nil
}
