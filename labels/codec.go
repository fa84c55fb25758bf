// Package labels maps opinion labels to and from binary indicator vectors.
package labels

import (
	"fmt"

	"github.com/hscells/opinion/vocab"
)

// Label is one opinion attached to a review, typically "aspect:sentiment".
type Label string

// NewLabel creates a label from an aspect and its sentiment.
func NewLabel(aspect, sentiment string) Label {
	return Label(aspect + ":" + sentiment)
}

// Unique removes duplicate labels, keeping the first occurrence of each.
func Unique(set []Label) []Label {
	seen := make(map[Label]struct{}, len(set))
	u := make([]Label, 0, len(set))
	for _, l := range set {
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		u = append(u, l)
	}
	return u
}

// Indicator is a binary vector over a label universe; position i is true iff
// the label with id i is present.
type Indicator []bool

// Count is the number of labels present.
func (ind Indicator) Count() int {
	var n int
	for _, b := range ind {
		if b {
			n++
		}
	}
	return n
}

// DecodeError is returned when an indicator vector does not match the size
// of the label universe it is decoded against.
type DecodeError struct {
	Length   int
	Universe int
}

func (e DecodeError) Error() string {
	return fmt.Sprintf("indicator of length %d does not match label universe of size %d", e.Length, e.Universe)
}

// UnknownLabelError is returned when encoding a label that was never registered.
type UnknownLabelError struct {
	Label Label
}

func (e UnknownLabelError) Error() string {
	return fmt.Sprintf("label %q is not registered", e.Label)
}

// Codec converts between label sets and indicator vectors. Registering labels
// and encoding them are separate steps: Encode never grows the universe.
type Codec struct {
	universe *vocab.Index[Label]
}

// NewCodec creates a codec with an empty label universe.
func NewCodec() *Codec {
	return &Codec{universe: vocab.NewIndex[Label]()}
}

// Register adds every label not yet seen to the universe, scanning sets in
// order and labels within a set in order.
func (c *Codec) Register(sets [][]Label) {
	for _, set := range sets {
		for _, l := range set {
			c.universe.Add(l)
		}
	}
}

// EncodeOne converts a single label set into an indicator vector over the
// current universe.
func (c *Codec) EncodeOne(set []Label) (Indicator, error) {
	ind := make(Indicator, c.universe.Len())
	for _, l := range set {
		id, ok := c.universe.Lookup(l)
		if !ok {
			return nil, UnknownLabelError{Label: l}
		}
		ind[id] = true
	}
	return ind, nil
}

// Encode converts label sets into an indicator matrix, one row per set.
func (c *Codec) Encode(sets [][]Label) ([]Indicator, error) {
	m := make([]Indicator, len(sets))
	for i, set := range sets {
		ind, err := c.EncodeOne(set)
		if err != nil {
			return nil, err
		}
		m[i] = ind
	}
	return m, nil
}

// Decode returns the labels present in ind, in universe order.
func (c *Codec) Decode(ind Indicator) ([]Label, error) {
	if len(ind) != c.universe.Len() {
		return nil, DecodeError{Length: len(ind), Universe: c.universe.Len()}
	}
	var set []Label
	for id, present := range ind {
		if present {
			set = append(set, c.universe.Key(id))
		}
	}
	return set, nil
}

// Len is the size of the label universe.
func (c *Codec) Len() int {
	return c.universe.Len()
}

// Labels returns the label universe in id order.
func (c *Codec) Labels() []Label {
	return c.universe.Keys()
}
