package radix

import (
	"slices"
	"testing"

	"github.com/forestrie/go-bitstring-trees/bitstring"
	"github.com/forestrie/go-bitstring-trees/bitstringtest"
	"github.com/stretchr/testify/require"
)

// All radix tests use the transparent reference key from bitstringtest so
// failures print literal bit patterns.
type bits = bitstringtest.Bits

func b(s string) bits { return bitstringtest.MustBits(s) }

// keys returns nil for no arguments so expectations compare cleanly
// against collected empty sequences.
func keys(ss ...string) []bits {
	var out []bits
	for _, s := range ss {
		out = append(out, b(s))
	}
	return out
}

func setOf(t *testing.T, ss ...string) *Set[bits] {
	t.Helper()
	s := NewSet[bits]()
	for _, k := range ss {
		s.Insert(b(k))
	}
	checkSetInvariants(t, s)
	return s
}

func collectSet(s *Set[bits]) []bits {
	return slices.Collect(s.All())
}

func sortKeys(ks []bits) []bits {
	out := slices.Clone(ks)
	slices.SortFunc(out, bitstring.Compare[bits])
	return out
}

// checkSubtree verifies the structural contract below n and returns the
// number of stored entries found:
//   - a node without an entry has exactly two children
//   - child keys strictly extend the parent key
//   - the left child continues with a 0 bit, the right with a 1 bit
func checkSubtree[V any](t *testing.T, n *node[bits, V]) int {
	t.Helper()
	if n == nil {
		return 0
	}

	children := 0
	if n.left != nil {
		children++
	}
	if n.right != nil {
		children++
	}
	if !n.hasValue {
		require.Equal(t, 2, children, "valueless node %q must branch", n.key)
	}

	nLen := n.key.BitLen()
	for _, side := range []struct {
		bit uint8
		c   *node[bits, V]
	}{{0, n.left}, {1, n.right}} {
		if side.c == nil {
			continue
		}
		require.Greater(t, side.c.key.BitLen(), nLen,
			"child %q must be longer than parent %q", side.c.key, n.key)
		require.Equal(t, nLen, n.key.CommonPrefixLen(side.c.key),
			"parent %q must prefix child %q", n.key, side.c.key)
		require.Equal(t, side.bit, side.c.key.BitAt(nLen),
			"child %q on wrong side of %q", side.c.key, n.key)
	}

	count := checkSubtree(t, n.left) + checkSubtree(t, n.right)
	if n.hasValue {
		count++
	}
	return count
}

func checkSetInvariants(t *testing.T, s *Set[bits]) {
	t.Helper()
	require.Equal(t, s.t.size, checkSubtree(t, s.t.root), "size must match stored entries")
}

func checkMapInvariants[V any](t *testing.T, m *Map[bits, V]) {
	t.Helper()
	require.Equal(t, m.t.size, checkSubtree(t, m.t.root), "size must match stored entries")
}

func countNodes[V any](n *node[bits, V]) int {
	if n == nil {
		return 0
	}
	return 1 + countNodes(n.left) + countNodes(n.right)
}
