// Package idgen assembles Universally Unique Lexicographically Sortable
// Identifiers (ULIDs): a 10-character millisecond timestamp field followed
// by a 16-character random field, 26 Crockford Base32 characters total.
//
// Identifiers generated later sort lexicographically after identifiers
// generated earlier whenever their timestamps differ. Within the same
// millisecond no ordering is guaranteed; the random field is independent
// on every call.
package idgen

import (
	"errors"
	"fmt"
	"time"

	"github.com/aatuh/ulid-toolkit/clock"
	"github.com/aatuh/ulid-toolkit/codec"
	"github.com/aatuh/ulid-toolkit/entropy"
	"github.com/aatuh/ulid-toolkit/ports"
)

const (
	// TimeLen is the width of the timestamp field. Ten Base32 digits cover
	// 48 bits of milliseconds, enough until the year 10889.
	TimeLen = 10

	// RandomLen is the width of the random field.
	RandomLen = 16

	// EncodedLen is the total identifier width.
	EncodedLen = TimeLen + RandomLen

	// MaxTimestamp is the largest encodable millisecond timestamp, 2^48-1.
	MaxTimestamp = int64(1)<<48 - 1
)

// ErrTimeRange reports an explicit timestamp outside the encodable range.
// Rather than silently dropping high-order digits, out-of-range input is
// rejected so the sortability guarantee cannot be broken unnoticed.
var ErrTimeRange = errors.New("idgen: timestamp outside encodable range")

// Generator produces ULIDs from an injected clock and entropy source.
// A Generator is immutable after construction and safe for concurrent use
// as long as its sources are.
type Generator struct {
	clock   ports.Clock
	entropy ports.Entropy
}

// Option configures a Generator.
type Option func(*Generator)

// WithClock replaces the time source. Panics on nil: a generator without a
// clock is a configuration error, caught eagerly rather than at first use.
func WithClock(c ports.Clock) Option {
	if c == nil {
		panic("idgen: nil clock")
	}
	return func(g *Generator) { g.clock = c }
}

// WithEntropy replaces the random source. Panics on nil.
func WithEntropy(e ports.Entropy) Option {
	if e == nil {
		panic("idgen: nil entropy source")
	}
	return func(g *Generator) { g.entropy = e }
}

// New creates a Generator. Without options it uses the system clock and a
// crypto/rand-backed entropy source.
func New(opts ...Option) *Generator {
	g := &Generator{
		clock:   clock.NewSystemClock(),
		entropy: entropy.NewCryptoSource(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate returns a 26-character ULID for the current clock reading.
func (g *Generator) Generate() string {
	id, err := g.GenerateAt(g.clock.Now())
	if err != nil {
		// The system clock cannot leave the 48-bit range before the year
		// 10889; a source that does is misconfigured.
		panic(fmt.Sprintf("idgen: clock out of range: %v", err))
	}
	return id
}

// GenerateAt returns a ULID for the explicit time t.
func (g *Generator) GenerateAt(t time.Time) (string, error) {
	tf, err := g.TimeField(t)
	if err != nil {
		return "", err
	}
	return tf + g.RandomField(RandomLen), nil
}

// TimeField encodes t's millisecond timestamp as a 10-character field.
// Returns ErrTimeRange when t is before the Unix epoch or past the 48-bit
// millisecond horizon.
func (g *Generator) TimeField(t time.Time) (string, error) {
	ms := t.UnixMilli()
	if ms < 0 || ms > MaxTimestamp {
		return "", fmt.Errorf("%w: %d ms", ErrTimeRange, ms)
	}
	return codec.Encode(uint64(ms), TimeLen), nil
}

// RandomField encodes n independent entropy draws, one character each.
// Each draw r in [0, 1) maps to alphabet index floor(r * 32).
func (g *Generator) RandomField(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = codec.Alphabet[int(g.entropy.Float64()*float64(codec.Base))]
	}
	return string(b)
}

// New implements ports.IDGen.
func (g *Generator) New() string { return g.Generate() }

// Default is the package-level generator with system clock and crypto
// entropy, for callers that do not need custom sources.
var Default = New()

// Generate returns a ULID from the Default generator.
func Generate() string { return Default.Generate() }

// NewULIDGen creates a default ULID generator that implements ports.IDGen.
func NewULIDGen() ports.IDGen {
	return New()
}
