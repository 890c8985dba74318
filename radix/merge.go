package radix

import "github.com/forestrie/go-bitstring-trees/bitstring"

// CombineFunc resolves the value stored under a key present in both sides
// of a map merge. left is the receiver's value, right the argument's.
type CombineFunc[K bitstring.Key[K], V any] func(key K, left, right V) V

func takeLeft[K bitstring.Key[K], V any](_ K, left, _ V) V { return left }

func takeRight[K bitstring.Key[K], V any](_ K, _, right V) V { return right }

// The merge operations below recurse over two trees simultaneously and
// produce a fresh tree, leaving both inputs untouched. As soon as the
// shared prefix shows that one side's subtree lies entirely inside a
// single branch of the other's divergence, that subtree is incorporated
// (union), dropped (intersection) or kept (difference) wholesale instead
// of being walked entry by entry, keeping the cost proportional to the
// combined node count rather than the product of the sizes. Incorporation
// deep-clones, preserving exclusive ownership of every result node.

func (t *trie[K, V]) union(o *trie[K, V], combine CombineFunc[K, V]) *trie[K, V] {
	root := unionNodes(t.root, o.root, combine)
	return &trie[K, V]{root: root, size: root.countValues()}
}

func (t *trie[K, V]) intersect(o *trie[K, V], combine CombineFunc[K, V]) *trie[K, V] {
	root := intersectNodes(t.root, o.root, combine)
	return &trie[K, V]{root: root, size: root.countValues()}
}

func (t *trie[K, V]) difference(o *trie[K, V]) *trie[K, V] {
	root := differenceNodes(t.root, o.root)
	return &trie[K, V]{root: root, size: root.countValues()}
}

func unionNodes[K bitstring.Key[K], V any](a, b *node[K, V], combine CombineFunc[K, V]) *node[K, V] {
	if a == nil {
		return b.clone()
	}
	if b == nil {
		return a.clone()
	}

	aLen, bLen := a.key.BitLen(), b.key.BitLen()
	shared := a.key.CommonPrefixLen(b.key)

	switch {
	case shared < aLen && shared < bLen:
		// disjoint subtrees: both are incorporated under a new branch
		return newBranch(shared, a.clone(), b.clone())

	case shared == aLen && shared == bLen:
		// identical prefixes: merge entries and children pairwise
		out := &node[K, V]{key: a.key}
		switch {
		case a.hasValue && b.hasValue:
			out.value = combine(a.key, a.value, b.value)
			out.hasValue = true
		case a.hasValue:
			out.value, out.hasValue = a.value, true
		case b.hasValue:
			out.value, out.hasValue = b.value, true
		}
		out.left = unionNodes(a.left, b.left, combine)
		out.right = unionNodes(a.right, b.right, combine)
		return out

	case shared == aLen:
		// b's subtree lies entirely inside one branch of a
		out := &node[K, V]{key: a.key, value: a.value, hasValue: a.hasValue}
		if b.key.BitAt(aLen) == 0 {
			out.left = unionNodes(a.left, b, combine)
			out.right = a.right.clone()
		} else {
			out.left = a.left.clone()
			out.right = unionNodes(a.right, b, combine)
		}
		return out

	default: // shared == bLen
		out := &node[K, V]{key: b.key, value: b.value, hasValue: b.hasValue}
		if a.key.BitAt(bLen) == 0 {
			out.left = unionNodes(a, b.left, combine)
			out.right = b.right.clone()
		} else {
			out.left = b.left.clone()
			out.right = unionNodes(a, b.right, combine)
		}
		return out
	}
}

func intersectNodes[K bitstring.Key[K], V any](a, b *node[K, V], combine CombineFunc[K, V]) *node[K, V] {
	if a == nil || b == nil {
		return nil
	}

	aLen, bLen := a.key.BitLen(), b.key.BitLen()
	shared := a.key.CommonPrefixLen(b.key)

	switch {
	case shared < aLen && shared < bLen:
		// disjoint subtrees share no keys
		return nil

	case shared == aLen && shared == bLen:
		out := &node[K, V]{key: a.key}
		if a.hasValue && b.hasValue {
			out.value = combine(a.key, a.value, b.value)
			out.hasValue = true
		}
		out.left = intersectNodes(a.left, b.left, combine)
		out.right = intersectNodes(a.right, b.right, combine)
		return out.fuse()

	case shared == aLen:
		// keys below b can only also live in a's matching branch; a's own
		// entry is shorter than everything below b and drops out
		return intersectNodes(a.child(b.key.BitAt(aLen)), b, combine)

	default: // shared == bLen
		return intersectNodes(a, b.child(a.key.BitAt(bLen)), combine)
	}
}

func differenceNodes[K bitstring.Key[K], V any](a, b *node[K, V]) *node[K, V] {
	if a == nil {
		return nil
	}
	if b == nil {
		return a.clone()
	}

	aLen, bLen := a.key.BitLen(), b.key.BitLen()
	shared := a.key.CommonPrefixLen(b.key)

	switch {
	case shared < aLen && shared < bLen:
		// nothing in b's subtree can match a key of a's
		return a.clone()

	case shared == aLen && shared == bLen:
		out := &node[K, V]{key: a.key}
		if a.hasValue && !b.hasValue {
			out.value, out.hasValue = a.value, true
		}
		out.left = differenceNodes(a.left, b.left)
		out.right = differenceNodes(a.right, b.right)
		return out.fuse()

	case shared == aLen:
		// only a's branch on b's side can hold keys that b also holds
		out := &node[K, V]{key: a.key, value: a.value, hasValue: a.hasValue}
		if b.key.BitAt(aLen) == 0 {
			out.left = differenceNodes(a.left, b)
			out.right = a.right.clone()
		} else {
			out.left = a.left.clone()
			out.right = differenceNodes(a.right, b)
		}
		return out.fuse()

	default: // shared == bLen: a's subtree sits inside one branch of b
		return differenceNodes(a, b.child(a.key.BitAt(bLen)))
	}
}
