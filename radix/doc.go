// Package radix provides ordered Set and Map containers keyed by
// bitstrings, implemented as a compressed binary (Patricia) trie.
//
// Keys are anything satisfying the bitstring.Key contract: IP prefixes,
// fixed-width integers, arbitrary bit vectors. Both containers support
// exact lookups, prefix-aware queries (is a stored key a prefix of a
// query, does a stored key extend a query, longest-prefix match), ordered
// iteration in ascending bit-lexicographic order, and structural set
// algebra (union, intersection, difference) that operates on tree shape
// rather than entry by entry.
//
// # Structure
//
// Every node stores the full key prefix from the root, so key lengths are
// strictly increasing along any path and a node's two subtrees diverge on
// the bit immediately after its prefix (0 left, 1 right). Chains of
// single-child, valueless nodes never exist: a node without a stored entry
// always has two children. Removal restores this by pruning childless
// nodes and fusing a valueless parent with its remaining child.
//
// Lookups, inserts and removals cost O(BitLen) of the key involved. The
// merge operations cost is proportional to the combined node count of the
// two trees: once the recursion establishes that one side's subtree lies
// entirely inside a single branch of the other's divergence, that subtree
// is incorporated or dropped wholesale.
//
// # Concurrency
//
// The containers carry no internal synchronization. Mutating operations
// need exclusive access to the whole tree; read-only operations may run
// concurrently with each other under an external read-write discipline
// but never concurrently with a mutation. Iterators created before a
// structural mutation must not be used afterwards.
package radix
