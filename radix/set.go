package radix

import (
	"iter"

	"github.com/forestrie/go-bitstring-trees/bitstring"
)

// Set is an ordered set of bitstring keys. The zero value is an empty set
// ready for use.
//
// A Set must not be mutated concurrently with any other operation on it;
// see the package documentation.
type Set[K bitstring.Key[K]] struct {
	t trie[K, struct{}]
}

// NewSet returns an empty set.
func NewSet[K bitstring.Key[K]]() *Set[K] {
	return &Set[K]{}
}

// Len returns the number of keys in the set.
func (s *Set[K]) Len() int { return s.t.size }

// Insert adds key to the set and reports whether it was newly added.
func (s *Set[K]) Insert(key K) bool {
	_, existed := s.t.insert(key, struct{}{})
	return !existed
}

// Remove deletes key from the set and reports whether it was present.
// Removing an absent key is a no-op.
func (s *Set[K]) Remove(key K) bool {
	_, found := s.t.remove(key)
	return found
}

// Contains reports whether exactly key is in the set.
func (s *Set[K]) Contains(key K) bool {
	_, ok := s.t.get(key)
	return ok
}

// LongestPrefix returns the longest stored key that is a prefix of query,
// or ok=false if no stored key prefixes it.
func (s *Set[K]) LongestPrefix(query K) (key K, ok bool) {
	key, _, ok = s.t.longestPrefix(query)
	return key, ok
}

// ContainsPrefixOf reports whether some stored key is a prefix of query.
func (s *Set[K]) ContainsPrefixOf(query K) bool {
	return s.t.containsPrefixOf(query)
}

// ContainsExtensionOf reports whether some stored key has query as a
// prefix. A stored key equal to query counts.
func (s *Set[K]) ContainsExtensionOf(query K) bool {
	return s.t.containsExtensionOf(query)
}

// Union returns a new set holding every key of s and o.
func (s *Set[K]) Union(o *Set[K]) *Set[K] {
	return &Set[K]{t: *s.t.union(&o.t, takeLeft[K, struct{}])}
}

// Intersect returns a new set holding the keys present in both s and o.
func (s *Set[K]) Intersect(o *Set[K]) *Set[K] {
	return &Set[K]{t: *s.t.intersect(&o.t, takeLeft[K, struct{}])}
}

// Difference returns a new set holding the keys of s that are not in o.
func (s *Set[K]) Difference(o *Set[K]) *Set[K] {
	return &Set[K]{t: *s.t.difference(&o.t)}
}

// Clone returns an independent deep copy of the set.
func (s *Set[K]) Clone() *Set[K] {
	return &Set[K]{t: trie[K, struct{}]{root: s.t.root.clone(), size: s.t.size}}
}

// All returns the keys in ascending bit-lexicographic order. The sequence
// is lazy and can be ranged over multiple times; it must not be consumed
// across a mutation of s.
func (s *Set[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		c := newCursor(s.t.root)
		for n, ok := c.next(); ok; n, ok = c.next() {
			if !yield(n.key) {
				return
			}
		}
	}
}

// PrefixesOf returns the stored keys that are prefixes of query, shortest
// first.
func (s *Set[K]) PrefixesOf(query K) iter.Seq[K] {
	return func(yield func(K) bool) {
		s.t.walkPrefixes(query, func(n *node[K, struct{}]) bool {
			return yield(n.key)
		})
	}
}

// ExtensionsOf returns the stored keys that have query as a prefix, in
// ascending bit-lexicographic order.
func (s *Set[K]) ExtensionsOf(query K) iter.Seq[K] {
	return func(yield func(K) bool) {
		c := newCursor(s.t.extensionsRoot(query))
		for n, ok := c.next(); ok; n, ok = c.next() {
			if !yield(n.key) {
				return
			}
		}
	}
}

// Iter returns a stepping iterator over the keys in ascending
// bit-lexicographic order.
func (s *Set[K]) Iter() *SetIter[K] {
	return &SetIter[K]{c: newCursor(s.t.root)}
}
