package features

import (
	"sort"

	"github.com/hscells/opinion/vocab"
)

// DefaultNGramSize is the length of the character n-grams used as features.
const DefaultNGramSize = 3

// NGrams returns every contiguous substring of exactly n runes of token, from
// left to right. Tokens shorter than n have no n-grams. Tokens produced by an
// Analyser always carry two boundary markers, so any non-empty word yields at
// least one trigram.
func NGrams(token string, n int) []string {
	r := []rune(token)
	if n <= 0 || len(r) < n {
		return nil
	}
	grams := make([]string, 0, len(r)-n+1)
	for i := 0; i+n <= len(r); i++ {
		grams = append(grams, string(r[i:i+n]))
	}
	return grams
}

// Vector is a sparse count vector over a vocabulary. Index holds the
// vocabulary ids with a non-zero count in ascending order, Count the matching
// counts, and Size the length of the equivalent dense vector.
type Vector struct {
	Size  int
	Index []int
	Count []float64
}

// Dense expands v into a fixed-length slice with one slot per vocabulary id.
func (v Vector) Dense() []float64 {
	d := make([]float64, v.Size)
	for i, idx := range v.Index {
		d[idx] = v.Count[i]
	}
	return d
}

// Sum is the total count held in the vector.
func (v Vector) Sum() float64 {
	var s float64
	for _, c := range v.Count {
		s += c
	}
	return s
}

// Vocabulary assigns n-grams seen during training a dense id. Ids are
// assigned in training-document order, then token order within a document,
// then left-to-right n-gram order within a token, so the same corpus always
// produces the same vocabulary.
type Vocabulary struct {
	N     int
	index *vocab.Index[string]
}

// NewVocabulary creates an empty vocabulary of n-grams of size n.
func NewVocabulary(n int) *Vocabulary {
	if n <= 0 {
		n = DefaultNGramSize
	}
	return &Vocabulary{
		N:     n,
		index: vocab.NewIndex[string](),
	}
}

// Add inserts an n-gram into the vocabulary if it is not already present.
func (v *Vocabulary) Add(ngram string) int {
	return v.index.Add(ngram)
}

// Learn adds every n-gram of every token to the vocabulary.
func (v *Vocabulary) Learn(tokens []string) {
	for _, tok := range tokens {
		for _, g := range NGrams(tok, v.N) {
			v.index.Add(g)
		}
	}
}

// Lookup returns the id of an n-gram.
func (v *Vocabulary) Lookup(ngram string) (int, bool) {
	return v.index.Lookup(ngram)
}

// NGram returns the n-gram with the given id.
func (v *Vocabulary) NGram(id int) string {
	return v.index.Key(id)
}

// Len is the number of distinct n-grams in the vocabulary.
func (v *Vocabulary) Len() int {
	return v.index.Len()
}

// Vectorize counts the n-grams of tokens against the current vocabulary.
// N-grams that are not in the vocabulary contribute nothing.
func (v *Vocabulary) Vectorize(tokens []string) Vector {
	counts := make(map[int]float64)
	for _, tok := range tokens {
		for _, g := range NGrams(tok, v.N) {
			if id, ok := v.index.Lookup(g); ok {
				counts[id]++
			}
		}
	}

	vec := Vector{
		Size:  v.index.Len(),
		Index: make([]int, 0, len(counts)),
		Count: make([]float64, 0, len(counts)),
	}
	for id := range counts {
		vec.Index = append(vec.Index, id)
	}
	sort.Ints(vec.Index)
	for _, id := range vec.Index {
		vec.Count = append(vec.Count, counts[id])
	}
	return vec
}
