package radix

import "github.com/forestrie/go-bitstring-trees/bitstring"

// node is a collapsed segment of the trie. It stores the full key prefix
// from the root rather than the trailing segment: the bitstring contract
// has no concatenation primitive, and full prefixes make compression a
// pointer replacement.
//
// A node owns its children exclusively. hasValue marks that some stored
// key terminates exactly at this node's prefix; a node without a value
// must have two children, a node with a value may have any number.
type node[K bitstring.Key[K], V any] struct {
	key      K
	value    V
	hasValue bool

	// left holds keys whose bit at key.BitLen() is 0, right those with 1.
	left, right *node[K, V]
}

func newLeaf[K bitstring.Key[K], V any](key K, value V) *node[K, V] {
	return &node[K, V]{key: key, value: value, hasValue: true}
}

// newBranch joins a and b beneath their shared prefix. The two keys must
// diverge at exactly sharedLen.
func newBranch[K bitstring.Key[K], V any](sharedLen int, a, b *node[K, V]) *node[K, V] {
	abit := a.key.BitAt(sharedLen)
	if abit == b.key.BitAt(sharedLen) {
		panic("radix: branch children share the same next bit")
	}
	br := &node[K, V]{key: a.key.Prefix(sharedLen)}
	br.setChild(abit, a)
	br.setChild(abit^1, b)
	return br
}

// child returns the subtree selected by the next bit after the node's
// prefix.
func (n *node[K, V]) child(bit uint8) *node[K, V] {
	if bit == 0 {
		return n.left
	}
	return n.right
}

func (n *node[K, V]) setChild(bit uint8, c *node[K, V]) {
	if bit == 0 {
		n.left = c
	} else {
		n.right = c
	}
}

// clearValue drops the stored entry, zeroing the value so it does not pin
// references.
func (n *node[K, V]) clearValue() {
	var zero V
	n.value = zero
	n.hasValue = false
}

// fuse re-establishes the compression invariant at n after children have
// been removed or rebuilt: a valueless node with one child collapses into
// that child, a valueless node with none vanishes.
func (n *node[K, V]) fuse() *node[K, V] {
	if n.hasValue {
		return n
	}
	if n.left == nil {
		return n.right
	}
	if n.right == nil {
		return n.left
	}
	return n
}

// clone deep-copies the subtree. Values are copied by assignment.
func (n *node[K, V]) clone() *node[K, V] {
	if n == nil {
		return nil
	}
	c := *n
	c.left = n.left.clone()
	c.right = n.right.clone()
	return &c
}

// countValues returns the number of stored entries in the subtree.
func (n *node[K, V]) countValues() int {
	if n == nil {
		return 0
	}
	count := n.left.countValues() + n.right.countValues()
	if n.hasValue {
		count++
	}
	return count
}
