// Package vocab provides append-only structures that assign dense integer ids to keys.
package vocab

// Index assigns each distinct key a dense id in the order keys are first seen.
// Ids are never removed or reassigned, so every id in [0, Len()) belongs to
// exactly one key for the lifetime of the Index.
//
// An Index is owned by a single model instance; it is not safe for concurrent
// mutation.
type Index[K comparable] struct {
	ids  map[K]int
	keys []K
}

// NewIndex creates an empty Index.
func NewIndex[K comparable]() *Index[K] {
	return &Index[K]{
		ids: make(map[K]int),
	}
}

// Add inserts k if it has not been seen before, giving it the next sequential
// id. Adding a key that is already present is a no-op. The id of k is returned.
func (x *Index[K]) Add(k K) int {
	if id, ok := x.ids[k]; ok {
		return id
	}
	id := len(x.keys)
	x.ids[k] = id
	x.keys = append(x.keys, k)
	return id
}

// Lookup returns the id of k, if it exists.
func (x *Index[K]) Lookup(k K) (int, bool) {
	id, ok := x.ids[k]
	return id, ok
}

// Key returns the key with the given id. It panics if id is out of range.
func (x *Index[K]) Key(id int) K {
	return x.keys[id]
}

// Len is the number of distinct keys seen.
func (x *Index[K]) Len() int {
	return len(x.keys)
}

// Keys returns a copy of the keys in id order.
func (x *Index[K]) Keys() []K {
	k := make([]K, len(x.keys))
	copy(k, x.keys)
	return k
}
