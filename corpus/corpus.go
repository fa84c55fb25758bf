// Package corpus holds labelled review datasets and loads them from disk.
package corpus

import (
	"hash/fnv"
	"io"
	"io/ioutil"
	"os"
	"strconv"

	"github.com/hscells/opinion/labels"
	"github.com/pkg/errors"
)

// Corpus is a set of review texts with their label sets. Texts[i] is labelled
// with Labels[i].
type Corpus struct {
	Texts  []string
	Labels [][]labels.Label
}

// Len is the number of documents in the corpus.
func (c Corpus) Len() int {
	return len(c.Texts)
}

// Validate checks that texts and labels are aligned.
func (c Corpus) Validate() error {
	if len(c.Texts) != len(c.Labels) {
		return errors.Errorf("corpus has %d texts but %d label sets", len(c.Texts), len(c.Labels))
	}
	return nil
}

// Subset returns the documents at the given indices, in that order.
func (c Corpus) Subset(idx []int) Corpus {
	s := Corpus{
		Texts:  make([]string, len(idx)),
		Labels: make([][]labels.Label, len(idx)),
	}
	for i, j := range idx {
		s.Texts[i] = c.Texts[j]
		s.Labels[i] = c.Labels[j]
	}
	return s
}

// Fingerprint identifies the contents of the corpus.
func (c Corpus) Fingerprint() string {
	h := fnv.New64a()
	for i, text := range c.Texts {
		h.Write([]byte(text))
		h.Write([]byte{0})
		for _, l := range c.Labels[i] {
			h.Write([]byte(l))
			h.Write([]byte{1})
		}
		h.Write([]byte{2})
	}
	return strconv.FormatUint(h.Sum64(), 16)
}

// Opinion is a sentiment expressed towards an aspect of a product.
type Opinion struct {
	Aspect    string
	Sentiment string
}

// Review is a single labelled review as it appears on disk. Opinions and
// Labels are both converted into the review's label set.
type Review struct {
	Text     string
	Opinions []Opinion
	Labels   []string
}

// LabelSet returns the de-duplicated labels of the review.
func (r Review) LabelSet() []labels.Label {
	set := make([]labels.Label, 0, len(r.Opinions)+len(r.Labels))
	for _, o := range r.Opinions {
		set = append(set, labels.NewLabel(o.Aspect, o.Sentiment))
	}
	for _, l := range r.Labels {
		set = append(set, labels.Label(l))
	}
	return labels.Unique(set)
}

// FromReviews builds a corpus from reviews, skipping reviews with no text.
func FromReviews(reviews []Review) Corpus {
	var c Corpus
	for _, r := range reviews {
		if len(r.Text) == 0 {
			continue
		}
		c.Texts = append(c.Texts, r.Text)
		c.Labels = append(c.Labels, r.LabelSet())
	}
	return c
}

// Load reads a JSON array of reviews.
func Load(r io.Reader) (Corpus, error) {
	b, err := ioutil.ReadAll(r)
	if err != nil {
		return Corpus{}, err
	}
	var reviews Reviews
	if err := reviews.UnmarshalJSON(b); err != nil {
		return Corpus{}, errors.Wrap(err, "decoding reviews")
	}
	return FromReviews(reviews), nil
}

// LoadFile reads a JSON array of reviews from a file.
func LoadFile(path string) (Corpus, error) {
	f, err := os.Open(path)
	if err != nil {
		return Corpus{}, err
	}
	defer f.Close()
	return Load(f)
}
