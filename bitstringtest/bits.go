// Package bitstringtest provides a reference implementation of the
// bitstring.Key contract for tests and examples.
//
// Bits trades compactness for transparency: one byte per bit, so test
// failures print the literal bit pattern. Production key types (IP
// prefixes, fixed-width integers) live outside this module and only need
// to satisfy the same contract.
package bitstringtest

import "github.com/forestrie/go-bitstring-trees/bitstring"

// Bits is a bitstring backed by a string of '0' and '1' bytes, most
// significant bit first. The zero value is the empty bitstring.
type Bits string

var _ bitstring.Key[Bits] = Bits("")

// MustBits validates that s contains only '0' and '1' bytes and returns it
// as a Bits. It panics otherwise.
func MustBits(s string) Bits {
	for i := 0; i < len(s); i++ {
		if s[i] != '0' && s[i] != '1' {
			panic("bitstringtest: bits must be '0' or '1'")
		}
	}
	return Bits(s)
}

func (b Bits) BitLen() int { return len(b) }

// BitAt returns the bit at index i, MSB first. Indexing beyond BitLen
// panics, as the contract requires.
func (b Bits) BitAt(i int) uint8 {
	switch b[i] {
	case '0':
		return 0
	case '1':
		return 1
	}
	panic("bitstringtest: bits must be '0' or '1'")
}

func (b Bits) CommonPrefixLen(other Bits) int {
	n := min(len(b), len(other))
	for i := 0; i < n; i++ {
		if b[i] != other[i] {
			return i
		}
	}
	return n
}

func (b Bits) Prefix(n int) Bits {
	if n > len(b) {
		panic("bitstringtest: prefix longer than bitstring")
	}
	return b[:n]
}

func (b Bits) Equal(other Bits) bool { return b == other }

func (b Bits) String() string { return string(b) }
