package radix

// walkPrefixes visits every stored entry whose key is a prefix of query,
// shortest first. The candidates all lie on a single root-to-leaf descent,
// so the walk costs O(query.BitLen()). visit returning false stops the
// walk.
func (t *trie[K, V]) walkPrefixes(query K, visit func(*node[K, V]) bool) {
	qLen := query.BitLen()
	for n := t.root; n != nil; {
		nodeLen := n.key.BitLen()
		shared := n.key.CommonPrefixLen(query)
		if shared < nodeLen {
			// node prefix leaves the query: nothing below can match
			return
		}
		if n.hasValue && !visit(n) {
			return
		}
		if shared == qLen {
			// query exhausted; deeper keys are strictly longer
			return
		}
		n = n.child(query.BitAt(shared))
	}
}

// longestPrefix returns the deepest stored entry whose key is a prefix of
// query. Deeper candidates found during the descent overwrite shallower
// ones, being strictly longer.
func (t *trie[K, V]) longestPrefix(query K) (bestKey K, bestVal V, ok bool) {
	t.walkPrefixes(query, func(n *node[K, V]) bool {
		bestKey, bestVal, ok = n.key, n.value, true
		return true
	})
	return bestKey, bestVal, ok
}

// containsPrefixOf reports whether any stored key is a prefix of query.
func (t *trie[K, V]) containsPrefixOf(query K) bool {
	found := false
	t.walkPrefixes(query, func(*node[K, V]) bool {
		found = true
		return false
	})
	return found
}

// extensionsRoot returns the topmost node whose subtree holds exactly the
// stored keys that have query as a prefix, or nil when there are none.
// A key equal to query counts as an extension.
func (t *trie[K, V]) extensionsRoot(query K) *node[K, V] {
	qLen := query.BitLen()
	for n := t.root; n != nil; {
		nodeLen := n.key.BitLen()
		shared := n.key.CommonPrefixLen(query)
		if shared == qLen {
			// query is a prefix of this node, so of its whole subtree
			return n
		}
		if shared < nodeLen {
			return nil
		}
		n = n.child(query.BitAt(shared))
	}
	return nil
}

// containsExtensionOf reports whether any stored key has query as a
// prefix. Every node's subtree contains at least one stored entry, so
// finding the subtree is sufficient.
func (t *trie[K, V]) containsExtensionOf(query K) bool {
	return t.extensionsRoot(query) != nil
}
