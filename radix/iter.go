package radix

import "github.com/forestrie/go-bitstring-trees/bitstring"

// Traversal is depth-first over an explicit stack, visiting a node's own
// entry before its subtrees and the 0 side before the 1 side. Nodes hold
// full key prefixes, so that visit order is ascending bit-lexicographic
// order: a stored key precedes every stored extension of it.
//
// A cursor reads the tree it was created from; using it after a structural
// mutation of that tree is undefined.

type cursor[K bitstring.Key[K], V any] struct {
	stack []*node[K, V]
}

func newCursor[K bitstring.Key[K], V any](root *node[K, V]) cursor[K, V] {
	var c cursor[K, V]
	if root != nil {
		c.stack = append(c.stack, root)
	}
	return c
}

// next returns the next node holding a stored entry, in ascending
// bit-lexicographic key order.
func (c *cursor[K, V]) next() (*node[K, V], bool) {
	for len(c.stack) > 0 {
		n := c.stack[len(c.stack)-1]
		c.stack = c.stack[:len(c.stack)-1]
		if n.right != nil {
			c.stack = append(c.stack, n.right)
		}
		if n.left != nil {
			c.stack = append(c.stack, n.left)
		}
		if n.hasValue {
			return n, true
		}
	}
	return nil, false
}

// SetIter steps through a Set's keys in ascending bit-lexicographic
// order. It is created by Set.Iter and invalidated by any mutation of the
// underlying set.
type SetIter[K bitstring.Key[K]] struct {
	c cursor[K, struct{}]
}

// Next returns the next key, or ok=false when the iteration is done.
func (it *SetIter[K]) Next() (key K, ok bool) {
	n, ok := it.c.next()
	if !ok {
		return key, false
	}
	return n.key, true
}

// MapIter steps through a Map's entries in ascending bit-lexicographic
// key order. It is created by Map.Iter and invalidated by any mutation of
// the underlying map.
type MapIter[K bitstring.Key[K], V any] struct {
	c cursor[K, V]
}

// Next returns the next entry, or ok=false when the iteration is done.
func (it *MapIter[K, V]) Next() (key K, value V, ok bool) {
	n, ok := it.c.next()
	if !ok {
		return key, value, false
	}
	return n.key, n.value, true
}
