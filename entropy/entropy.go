// Package entropy provides the random sources a ULID generator draws from.
package entropy

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	mathrand "math/rand/v2"

	"github.com/aatuh/ulid-toolkit/ports"
)

// CryptoSource draws uniform floats in [0, 1) from crypto/rand. This is the
// default source: clustering or predictability in the random field undermines
// uniqueness, so the strong generator is the safe starting point.
type CryptoSource struct{}

// Float64 returns a uniform draw in [0, 1) with 53 bits of precision.
// A failed kernel entropy read is unrecoverable and panics.
func (CryptoSource) Float64() float64 {
	var b [8]byte
	if _, err := cryptorand.Read(b[:]); err != nil {
		panic("entropy: crypto/rand read failed: " + err.Error())
	}
	return float64(binary.BigEndian.Uint64(b[:])>>11) / (1 << 53)
}

// NewCryptoSource creates a crypto/rand-backed source that implements
// ports.Entropy.
func NewCryptoSource() ports.Entropy {
	return &CryptoSource{}
}

// MathSource draws from math/rand/v2. Faster and seedable, but not suitable
// where identifiers must be unpredictable.
type MathSource struct {
	rng *mathrand.Rand
}

// NewMathSource creates a source backed by the shared math/rand/v2
// generator, which is safe for concurrent use.
func NewMathSource() ports.Entropy {
	return &MathSource{}
}

// NewSeededSource creates a deterministic source for reproducible output.
// Unlike NewMathSource, the returned source is not safe for concurrent use.
func NewSeededSource(seed uint64) ports.Entropy {
	return &MathSource{rng: mathrand.New(mathrand.NewPCG(seed, 0))}
}

func (s *MathSource) Float64() float64 {
	if s.rng != nil {
		return s.rng.Float64()
	}
	return mathrand.Float64()
}

// FixedSource always returns the same value. Test helper.
type FixedSource struct {
	V float64
}

func (s FixedSource) Float64() float64 { return s.V }

// NewFixedSource creates a source pinned to v, which must be in [0, 1).
func NewFixedSource(v float64) ports.Entropy {
	return &FixedSource{V: v}
}
