package radix

import (
	"iter"

	"github.com/forestrie/go-bitstring-trees/bitstring"
)

// Map is an ordered map from bitstring keys to values. The zero value is
// an empty map ready for use.
//
// A Map must not be mutated concurrently with any other operation on it;
// see the package documentation.
type Map[K bitstring.Key[K], V any] struct {
	t trie[K, V]
}

// NewMap returns an empty map.
func NewMap[K bitstring.Key[K], V any]() *Map[K, V] {
	return &Map[K, V]{}
}

// Len returns the number of entries in the map.
func (m *Map[K, V]) Len() int { return m.t.size }

// Insert stores value under key. If the key was already present its
// previous value is returned with existed=true.
func (m *Map[K, V]) Insert(key K, value V) (prev V, existed bool) {
	return m.t.insert(key, value)
}

// Get returns the value stored exactly under key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	return m.t.get(key)
}

// Remove deletes the entry stored under key, returning its value.
// Removing an absent key is a no-op reported as found=false.
func (m *Map[K, V]) Remove(key K) (prev V, found bool) {
	return m.t.remove(key)
}

// LongestPrefix returns the entry with the longest stored key that is a
// prefix of query, or ok=false if no stored key prefixes it.
func (m *Map[K, V]) LongestPrefix(query K) (key K, value V, ok bool) {
	return m.t.longestPrefix(query)
}

// ContainsPrefixOf reports whether some stored key is a prefix of query.
func (m *Map[K, V]) ContainsPrefixOf(query K) bool {
	return m.t.containsPrefixOf(query)
}

// ContainsExtensionOf reports whether some stored key has query as a
// prefix. A stored key equal to query counts.
func (m *Map[K, V]) ContainsExtensionOf(query K) bool {
	return m.t.containsExtensionOf(query)
}

// Union returns a new map holding every entry of m and o. For keys present
// in both, combine resolves the value; a nil combine keeps o's value.
func (m *Map[K, V]) Union(o *Map[K, V], combine CombineFunc[K, V]) *Map[K, V] {
	if combine == nil {
		combine = takeRight[K, V]
	}
	return &Map[K, V]{t: *m.t.union(&o.t, combine)}
}

// Intersect returns a new map holding the keys present in both m and o.
// combine resolves each value; a nil combine keeps m's value.
func (m *Map[K, V]) Intersect(o *Map[K, V], combine CombineFunc[K, V]) *Map[K, V] {
	if combine == nil {
		combine = takeLeft[K, V]
	}
	return &Map[K, V]{t: *m.t.intersect(&o.t, combine)}
}

// Difference returns a new map holding the entries of m whose keys are
// not in o. Values always come from m.
func (m *Map[K, V]) Difference(o *Map[K, V]) *Map[K, V] {
	return &Map[K, V]{t: *m.t.difference(&o.t)}
}

// Clone returns an independent deep copy of the map. Values are copied by
// assignment.
func (m *Map[K, V]) Clone() *Map[K, V] {
	return &Map[K, V]{t: trie[K, V]{root: m.t.root.clone(), size: m.t.size}}
}

// All returns the entries in ascending bit-lexicographic key order. The
// sequence is lazy and can be ranged over multiple times; it must not be
// consumed across a mutation of m.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		c := newCursor(m.t.root)
		for n, ok := c.next(); ok; n, ok = c.next() {
			if !yield(n.key, n.value) {
				return
			}
		}
	}
}

// PrefixesOf returns the stored entries whose keys are prefixes of query,
// shortest key first.
func (m *Map[K, V]) PrefixesOf(query K) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		m.t.walkPrefixes(query, func(n *node[K, V]) bool {
			return yield(n.key, n.value)
		})
	}
}

// ExtensionsOf returns the stored entries whose keys have query as a
// prefix, in ascending bit-lexicographic key order.
func (m *Map[K, V]) ExtensionsOf(query K) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		c := newCursor(m.t.extensionsRoot(query))
		for n, ok := c.next(); ok; n, ok = c.next() {
			if !yield(n.key, n.value) {
				return
			}
		}
	}
}

// Iter returns a stepping iterator over the entries in ascending
// bit-lexicographic key order.
func (m *Map[K, V]) Iter() *MapIter[K, V] {
	return &MapIter[K, V]{c: newCursor(m.t.root)}
}
