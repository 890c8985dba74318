package radix

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetUnion(t *testing.T) {
	tests := []struct {
		name string
		a, b []string
		want []string
	}{
		{"disjoint subtrees", []string{"00", "01"}, []string{"11"}, []string{"00", "01", "11"}},
		{"overlapping", []string{"00", "1"}, []string{"00", "01"}, []string{"00", "01", "1"}},
		{"nested prefixes", []string{"1011"}, []string{"10110001", "1"}, []string{"1", "1011", "10110001"}},
		{"left empty", nil, []string{"0", "1"}, []string{"0", "1"}},
		{"right empty", []string{"0", "1"}, nil, []string{"0", "1"}},
		{"both empty", nil, nil, nil},
		{"equal sets", []string{"010", "10"}, []string{"010", "10"}, []string{"010", "10"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, bb := setOf(t, tt.a...), setOf(t, tt.b...)
			got := a.Union(bb)
			checkSetInvariants(t, got)
			assert.Equal(t, keys(tt.want...), collectSet(got))
			assert.Equal(t, len(tt.want), got.Len())

			// inputs must be untouched
			assert.Equal(t, sortKeys(keys(tt.a...)), collectSet(a))
			assert.Equal(t, sortKeys(keys(tt.b...)), collectSet(bb))
		})
	}
}

func TestSetIntersect(t *testing.T) {
	tests := []struct {
		name string
		a, b []string
		want []string
	}{
		{"disjoint", []string{"00", "01"}, []string{"11", "10"}, nil},
		{"common key", []string{"00", "1"}, []string{"00", "01"}, []string{"00"}},
		{"prefix is not membership", []string{"10"}, []string{"1011"}, nil},
		{"shared branch point", []string{"1100", "1111", "00"}, []string{"1100", "1111", "01"}, []string{"1100", "1111"}},
		{"one empty", []string{"0"}, nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, bb := setOf(t, tt.a...), setOf(t, tt.b...)
			got := a.Intersect(bb)
			checkSetInvariants(t, got)
			assert.Equal(t, keys(tt.want...), collectSet(got))
		})
	}
}

func TestSetDifference(t *testing.T) {
	tests := []struct {
		name string
		a, b []string
		want []string
	}{
		{"remove common", []string{"00", "01", "1"}, []string{"01"}, []string{"00", "1"}},
		{"prefixes do not erase extensions", []string{"1011", "10110001"}, []string{"1011"}, []string{"10110001"}},
		{"extensions do not erase prefixes", []string{"1011"}, []string{"10110001"}, []string{"1011"}},
		{"disjoint", []string{"00"}, []string{"11"}, []string{"00"}},
		{"everything removed", []string{"0", "1"}, []string{"0", "1"}, nil},
		{"subtrahend empty", []string{"0", "1"}, nil, []string{"0", "1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, bb := setOf(t, tt.a...), setOf(t, tt.b...)
			got := a.Difference(bb)
			checkSetInvariants(t, got)
			assert.Equal(t, keys(tt.want...), collectSet(got))
		})
	}
}

func TestMapUnionCombine(t *testing.T) {
	ma := mapOf(t, map[string]string{"00": "a", "1": "a"})
	mb := mapOf(t, map[string]string{"00": "b", "01": "b"})

	// default: the argument's value wins on conflicts
	got := ma.Union(mb, nil)
	checkMapInvariants(t, got)
	v, ok := got.Get(b("00"))
	require.True(t, ok)
	assert.Equal(t, "b", v)
	assert.Equal(t, 3, got.Len())

	// caller-supplied combine rule
	got = ma.Union(mb, func(_ bits, left, right string) string { return left + right })
	v, _ = got.Get(b("00"))
	assert.Equal(t, "ab", v)
	v, _ = got.Get(b("1"))
	assert.Equal(t, "a", v, "unconflicted entries keep their value")
}

func TestMapIntersectCombine(t *testing.T) {
	ma := mapOf(t, map[string]string{"00": "a", "1": "a"})
	mb := mapOf(t, map[string]string{"00": "b", "01": "b"})

	// default: the receiver's value wins
	got := ma.Intersect(mb, nil)
	checkMapInvariants(t, got)
	require.Equal(t, 1, got.Len())
	v, ok := got.Get(b("00"))
	require.True(t, ok)
	assert.Equal(t, "a", v)

	got = ma.Intersect(mb, func(_ bits, left, right string) string { return right })
	v, _ = got.Get(b("00"))
	assert.Equal(t, "b", v)
}

func TestMapDifferenceValues(t *testing.T) {
	ma := mapOf(t, map[string]string{"00": "a", "01": "a"})
	mb := mapOf(t, map[string]string{"01": "b", "11": "b"})

	got := ma.Difference(mb)
	checkMapInvariants(t, got)
	require.Equal(t, 1, got.Len())
	v, ok := got.Get(b("00"))
	require.True(t, ok)
	assert.Equal(t, "a", v)
}

func TestSetMergeRandomAgainstReference(t *testing.T) {
	rng := rand.New(rand.NewSource(1297))

	randomRef := func() map[bits]bool {
		ref := map[bits]bool{}
		for range 40 {
			n := rng.Intn(7)
			buf := make([]byte, n)
			for i := range buf {
				buf[i] = byte('0' + rng.Intn(2))
			}
			ref[bits(buf)] = true
		}
		return ref
	}
	build := func(ref map[bits]bool) *Set[bits] {
		s := NewSet[bits]()
		for k := range ref {
			s.Insert(k)
		}
		return s
	}
	collectRef := func(ref map[bits]bool) []bits {
		var out []bits
		for k := range ref {
			out = append(out, k)
		}
		return sortKeys(out)
	}

	for range 50 {
		refA, refB := randomRef(), randomRef()
		a, bb := build(refA), build(refB)

		union := map[bits]bool{}
		inter := map[bits]bool{}
		diff := map[bits]bool{}
		for k := range refA {
			union[k] = true
			if refB[k] {
				inter[k] = true
			} else {
				diff[k] = true
			}
		}
		for k := range refB {
			union[k] = true
		}

		gotU := a.Union(bb)
		gotI := a.Intersect(bb)
		gotD := a.Difference(bb)
		checkSetInvariants(t, gotU)
		checkSetInvariants(t, gotI)
		checkSetInvariants(t, gotD)

		require.Equal(t, collectRef(union), collectSet(gotU))
		require.Equal(t, collectRef(inter), collectSet(gotI))
		require.Equal(t, collectRef(diff), collectSet(gotD))
	}
}
