package codec_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aatuh/ulid-toolkit/codec"
)

func TestAlphabet(t *testing.T) {
	require.Len(t, codec.Alphabet, 32)

	seen := map[byte]bool{}
	for i := 0; i < len(codec.Alphabet); i++ {
		c := codec.Alphabet[i]
		assert.False(t, seen[c], "duplicate symbol %q", c)
		seen[c] = true
	}

	for _, banned := range []string{"I", "L", "O", "U"} {
		assert.NotContains(t, codec.Alphabet, banned)
	}

	// Symbol order must match index order or encoded strings would not
	// sort the way the encoded numbers do.
	for i := 1; i < len(codec.Alphabet); i++ {
		assert.Less(t, codec.Alphabet[i-1], codec.Alphabet[i])
	}
}

// decode is the MSB-first inverse of Encode, used only to check round trips.
func decode(t *testing.T, s string) uint64 {
	t.Helper()
	var v uint64
	for i := 0; i < len(s); i++ {
		idx := strings.IndexByte(codec.Alphabet, s[i])
		require.GreaterOrEqual(t, idx, 0, "symbol %q not in alphabet", s[i])
		v = v*codec.Base + uint64(idx)
	}
	return v
}

func TestEncodeRoundTrip(t *testing.T) {
	cases := []struct {
		v uint64
		n int
	}{
		{0, 1},
		{1, 1},
		{31, 1},
		{32, 2},
		{1023, 2},
		{1469918176385, 10},
		{uint64(1)<<48 - 1, 10},
		{uint64(1) << 60, 13},
	}
	for _, tc := range cases {
		got := codec.Encode(tc.v, tc.n)
		require.Len(t, got, tc.n, "Encode(%d, %d)", tc.v, tc.n)
		assert.Equal(t, tc.v, decode(t, got), "Encode(%d, %d) = %q", tc.v, tc.n, got)
	}
}

func TestEncodeZeroPads(t *testing.T) {
	for _, n := range []int{1, 4, 10, 16, 26} {
		assert.Equal(t, strings.Repeat("0", n), codec.Encode(0, n))
	}
}

func TestEncodeZeroLength(t *testing.T) {
	assert.Equal(t, "", codec.Encode(0, 0))
	assert.Equal(t, "", codec.Encode(12345, 0))
	assert.Equal(t, "", codec.Encode(12345, -1))
}

func TestEncodeTruncatesHighDigits(t *testing.T) {
	// Values wider than n digits keep only the low-order digits.
	assert.Equal(t, "0", codec.Encode(32, 1))
	assert.Equal(t, "1", codec.Encode(33, 1))
	assert.Equal(t, codec.Encode(5, 2), codec.Encode(5+32*32, 2))
}

func TestEncodeKnownVector(t *testing.T) {
	// Canonical ULID reference vector: 2016-07-30T23:36:16.385Z.
	assert.Equal(t, "01ARYZ6S41", codec.Encode(1469918176385, 10))
}

func TestEncodeOrderingMatchesNumericOrder(t *testing.T) {
	prev := codec.Encode(0, 10)
	for _, v := range []uint64{1, 31, 32, 1000, 1469918176385, uint64(1)<<48 - 1} {
		cur := codec.Encode(v, 10)
		assert.Less(t, prev, cur, "encoded order must match numeric order at %d", v)
		prev = cur
	}
}
