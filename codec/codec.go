// Package codec implements the Crockford Base32 digit extraction that both
// halves of a ULID are built from.
package codec

// Alphabet is the Crockford Base32 symbol set: digits plus the 22 letters
// that survive after dropping the visually ambiguous I, L, O and U. Symbol
// order matches index order, so lexicographic comparison of encoded strings
// matches numeric comparison of the encoded values.
const Alphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

// Base is the radix of the encoding.
const Base = uint64(len(Alphabet))

// Encode renders v as exactly n Base32 digits, most significant first,
// zero-padded on the left. Digits that do not fit in n positions are
// dropped; callers that care about overflow must range-check v first.
func Encode(v uint64, n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := n - 1; i >= 0; i-- {
		b[i] = Alphabet[v%Base]
		v /= Base
	}
	return string(b)
}
