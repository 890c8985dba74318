// Package bitstring defines the capability contract for bitstring keys.
//
// A bitstring is an ordered, MSB-first sequence of bits. Instances of the
// same type may vary in length (CIDR prefixes) or share a fixed width (a
// 32-bit address). The radix package consumes keys exclusively through the
// Key contract; it never inspects a concrete representation.
//
// The contract is deliberately minimal: bit length, bit access, common
// prefix length, prefix extraction and equality. These four primitives
// (plus equality) are sufficient for every trie algorithm in this module,
// including ordered iteration and structural set algebra. In particular no
// concatenation primitive is required, because the trie stores full key
// prefixes rather than trailing segments.
package bitstring
