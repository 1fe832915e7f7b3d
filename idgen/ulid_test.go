package idgen_test

import (
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aatuh/ulid-toolkit/clock"
	"github.com/aatuh/ulid-toolkit/codec"
	"github.com/aatuh/ulid-toolkit/entropy"
	"github.com/aatuh/ulid-toolkit/idgen"
	"github.com/aatuh/ulid-toolkit/ports"
)

var _ ports.IDGen = (*idgen.Generator)(nil)

var refTime = time.UnixMilli(1469918176385).UTC()

func TestTimeFieldKnownVector(t *testing.T) {
	g := idgen.New()
	tf, err := g.TimeField(refTime)
	require.NoError(t, err)
	assert.Equal(t, "01ARYZ6S41", tf)
}

func TestTimeFieldRange(t *testing.T) {
	g := idgen.New()

	_, err := g.TimeField(time.UnixMilli(-1))
	assert.ErrorIs(t, err, idgen.ErrTimeRange)

	_, err = g.TimeField(time.UnixMilli(idgen.MaxTimestamp + 1))
	assert.ErrorIs(t, err, idgen.ErrTimeRange)

	tf, err := g.TimeField(time.UnixMilli(idgen.MaxTimestamp))
	require.NoError(t, err)
	// 48 one-bits spread over 10 five-bit digits: 3 high bits then all ones.
	assert.Equal(t, "7ZZZZZZZZZ", tf)

	tf, err = g.TimeField(time.UnixMilli(0))
	require.NoError(t, err)
	assert.Equal(t, "0000000000", tf)
}

func TestTimeFieldSortsWithTime(t *testing.T) {
	g := idgen.New()
	times := []time.Time{
		time.UnixMilli(0),
		time.UnixMilli(1),
		time.UnixMilli(12345),
		refTime,
		refTime.Add(time.Millisecond),
		refTime.Add(24 * time.Hour),
		time.UnixMilli(idgen.MaxTimestamp),
	}
	prev, err := g.TimeField(times[0])
	require.NoError(t, err)
	for _, tm := range times[1:] {
		cur, err := g.TimeField(tm)
		require.NoError(t, err)
		assert.Less(t, prev, cur, "time fields must sort with their timestamps")
		prev = cur
	}
}

func TestGenerateShape(t *testing.T) {
	g := idgen.New()
	for i := 0; i < 100; i++ {
		id := g.Generate()
		require.Len(t, id, idgen.EncodedLen)
		for j := 0; j < len(id); j++ {
			assert.GreaterOrEqual(t, strings.IndexByte(codec.Alphabet, id[j]), 0,
				"character %q outside alphabet in %q", id[j], id)
		}
	}
}

func TestGenerateAtSameTimestamp(t *testing.T) {
	g := idgen.New()
	a, err := g.GenerateAt(refTime)
	require.NoError(t, err)
	b, err := g.GenerateAt(refTime)
	require.NoError(t, err)

	assert.Equal(t, a[:idgen.TimeLen], b[:idgen.TimeLen])
	// Independent crypto draws; a collision over 16 characters is
	// astronomically unlikely.
	assert.NotEqual(t, a[idgen.TimeLen:], b[idgen.TimeLen:])
}

func TestGenerateAtRange(t *testing.T) {
	g := idgen.New()
	_, err := g.GenerateAt(time.UnixMilli(-5))
	assert.ErrorIs(t, err, idgen.ErrTimeRange)
}

func TestRandomFieldFixedEntropy(t *testing.T) {
	zero := idgen.New(idgen.WithEntropy(entropy.NewFixedSource(0)))
	assert.Equal(t, strings.Repeat("0", 16), zero.RandomField(16))

	top := idgen.New(idgen.WithEntropy(entropy.NewFixedSource(0.999999)))
	assert.Equal(t, strings.Repeat("Z", 16), top.RandomField(16))

	assert.Equal(t, "", zero.RandomField(0))
}

func TestRandomFieldLengths(t *testing.T) {
	g := idgen.New()
	for _, n := range []int{1, 8, 16, 32} {
		assert.Len(t, g.RandomField(n), n)
	}
}

func TestGenerateUniqueness(t *testing.T) {
	g := idgen.New()
	seen := make(map[string]bool, 1000)
	for i := 0; i < 1000; i++ {
		id := g.Generate()
		require.False(t, seen[id], "duplicate ULID %q", id)
		seen[id] = true
	}
}

func TestGenerateSortsAcrossMilliseconds(t *testing.T) {
	g := idgen.New()
	ids := make([]string, 0, 50)
	for i := 0; i < 50; i++ {
		id, err := g.GenerateAt(refTime.Add(time.Duration(i) * time.Millisecond))
		require.NoError(t, err)
		ids = append(ids, id)
	}
	assert.True(t, sort.StringsAreSorted(ids),
		"IDs from strictly increasing timestamps must already be sorted")
}

func TestGenerateWithFixedClock(t *testing.T) {
	g := idgen.New(idgen.WithClock(clock.NewFixedClock(refTime)))
	id := g.Generate()
	assert.Equal(t, "01ARYZ6S41", id[:idgen.TimeLen])
}

func TestGenerateAgainstCanonicalImplementation(t *testing.T) {
	g := idgen.New()
	for i := 0; i < 100; i++ {
		id, err := g.GenerateAt(refTime)
		require.NoError(t, err)

		parsed, err := ulid.ParseStrict(id)
		require.NoError(t, err, "canonical parser must accept %q", id)
		assert.Equal(t, uint64(1469918176385), parsed.Time())
	}
}

func TestSeededSourceIsDeterministic(t *testing.T) {
	a := idgen.New(idgen.WithEntropy(entropy.NewSeededSource(42)))
	b := idgen.New(idgen.WithEntropy(entropy.NewSeededSource(42)))
	ida, err := a.GenerateAt(refTime)
	require.NoError(t, err)
	idb, err := b.GenerateAt(refTime)
	require.NoError(t, err)
	assert.Equal(t, ida, idb)
}

func TestNilSourcesPanic(t *testing.T) {
	assert.Panics(t, func() { idgen.WithClock(nil) })
	assert.Panics(t, func() { idgen.WithEntropy(nil) })
}

func TestIDGenPort(t *testing.T) {
	var gen ports.IDGen = idgen.NewULIDGen()
	assert.Len(t, gen.New(), idgen.EncodedLen)
}

func TestPackageDefault(t *testing.T) {
	assert.Len(t, idgen.Generate(), idgen.EncodedLen)
}

func TestConcurrentGenerate(t *testing.T) {
	g := idgen.New()
	const workers = 8
	done := make(chan []string, workers)
	for w := 0; w < workers; w++ {
		go func() {
			ids := make([]string, 0, 100)
			for i := 0; i < 100; i++ {
				ids = append(ids, g.Generate())
			}
			done <- ids
		}()
	}
	seen := make(map[string]bool, workers*100)
	for w := 0; w < workers; w++ {
		for _, id := range <-done {
			require.Len(t, id, idgen.EncodedLen)
			require.False(t, seen[id], "duplicate ULID %q across goroutines", id)
			seen[id] = true
		}
	}
}
