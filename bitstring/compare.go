package bitstring

// IsPrefix reports whether a is a prefix of b. Every key is a prefix of
// itself.
func IsPrefix[K Key[K]](a, b K) bool {
	alen := a.BitLen()
	if alen > b.BitLen() {
		return false
	}
	return a.CommonPrefixLen(b) == alen
}

// Compare orders two keys in bit-lexicographic order: bits are compared
// from the most significant position onward, and a proper prefix sorts
// before any of its extensions. It returns -1, 0 or 1.
func Compare[K Key[K]](a, b K) int {
	alen, blen := a.BitLen(), b.BitLen()
	shared := a.CommonPrefixLen(b)
	switch {
	case shared == alen && shared == blen:
		return 0
	case shared == alen:
		return -1
	case shared == blen:
		return 1
	}
	if a.BitAt(shared) == 0 {
		return -1
	}
	return 1
}
