package radix

import "github.com/forestrie/go-bitstring-trees/bitstring"

// trie is the engine shared by Set and Map. Set instantiates V as
// struct{}, Map carries caller values.
type trie[K bitstring.Key[K], V any] struct {
	root *node[K, V]
	size int
}

// insert stores value under key and reports the previous value if the key
// was already present.
func (t *trie[K, V]) insert(key K, value V) (prev V, existed bool) {
	keyLen := key.BitLen()
	slot := &t.root
	for {
		n := *slot
		if n == nil {
			*slot = newLeaf(key, value)
			t.size++
			return prev, false
		}

		nodeLen := n.key.BitLen()
		shared := n.key.CommonPrefixLen(key)

		switch {
		case shared == nodeLen && shared == keyLen:
			// the key terminates exactly here
			prev = n.value
			existed = n.hasValue
			n.value = value
			n.hasValue = true
			if !existed {
				t.size++
			}
			return prev, existed

		case shared == nodeLen:
			// key extends this node's prefix: descend by the next bit
			if key.BitAt(shared) == 0 {
				slot = &n.left
			} else {
				slot = &n.right
			}

		case shared == keyLen:
			// key is a proper prefix of this node: insert a valued
			// ancestor with n as its only child
			parent := newLeaf(key, value)
			parent.setChild(n.key.BitAt(shared), n)
			*slot = parent
			t.size++
			return prev, false

		default:
			// the keys diverge inside this node's prefix: split
			*slot = newBranch(shared, n, newLeaf(key, value))
			t.size++
			return prev, false
		}
	}
}

// remove clears the entry stored under key. Removing an absent key is a
// no-op reported as found=false.
//
// Afterwards a now childless, valueless node is pruned, and a parent left
// valueless with a single child fuses with that child. Children keep
// their full keys, so fusing never rewrites prefixes.
func (t *trie[K, V]) remove(key K) (prev V, found bool) {
	keyLen := key.BitLen()
	slot := &t.root
	var parent **node[K, V]
	for {
		n := *slot
		if n == nil {
			return prev, false
		}

		nodeLen := n.key.BitLen()
		shared := n.key.CommonPrefixLen(key)

		if shared == nodeLen && shared == keyLen {
			if !n.hasValue {
				return prev, false
			}
			prev = n.value
			n.clearValue()
			t.size--
			*slot = n.fuse()
			if *slot == nil && parent != nil {
				*parent = (*parent).fuse()
			}
			return prev, true
		}
		if shared < nodeLen {
			// key diverges from, or ends inside, this node's prefix
			return prev, false
		}

		parent = slot
		if key.BitAt(shared) == 0 {
			slot = &n.left
		} else {
			slot = &n.right
		}
	}
}

// get returns the value stored exactly under key.
func (t *trie[K, V]) get(key K) (V, bool) {
	keyLen := key.BitLen()
	for n := t.root; n != nil; {
		nodeLen := n.key.BitLen()
		shared := n.key.CommonPrefixLen(key)
		if shared < nodeLen {
			break
		}
		if shared == keyLen {
			if n.hasValue {
				return n.value, true
			}
			break
		}
		n = n.child(key.BitAt(shared))
	}
	var zero V
	return zero, false
}
