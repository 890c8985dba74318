package bitstring

// Key is the capability contract every trie key type must satisfy.
//
// Keys are immutable once handed to a container. BitAt and Prefix are only
// defined within the key's length; calling them outside it is a caller
// contract violation and implementations must fail fast (panic) rather
// than return a value.
type Key[K any] interface {
	// BitLen returns the number of bits in the key. Zero is valid.
	BitLen() int

	// BitAt returns the bit at index i, where index 0 is the most
	// significant bit. i must be less than BitLen.
	BitAt(i int) uint8

	// CommonPrefixLen returns the length of the longest leading bit run
	// shared with other.
	CommonPrefixLen(other K) int

	// Prefix returns a new key holding the first n bits. n must not
	// exceed BitLen.
	Prefix(n int) K

	// Equal reports whether both keys have the same length and bits.
	Equal(other K) bool
}
