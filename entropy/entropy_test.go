package entropy_test

import (
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hiddenvar/entropy"
)

// TestSeeded_Determinism verifies that two sources built from the same
// seed emit identical draw sequences.
func TestSeeded_Determinism(t *testing.T) {
	a := entropy.NewSeeded(42)
	b := entropy.NewSeeded(42)

	for i := 0; i < 100; i++ {
		da, err := a.Next()
		require.NoError(t, err)
		db, err := b.Next()
		require.NoError(t, err)
		require.Equal(t, da, db, "draw %d diverged between equally seeded sources", i)
	}
}

// TestSeeded_DifferentSeedsDiverge checks that distinct seeds do not
// produce the same prefix of draws.
func TestSeeded_DifferentSeedsDiverge(t *testing.T) {
	a := entropy.NewSeeded(1)
	b := entropy.NewSeeded(2)

	same := true
	for i := 0; i < 16; i++ {
		da, _ := a.Next()
		db, _ := b.Next()
		if da != db {
			same = false
			break
		}
	}
	assert.False(t, same, "16 identical draws across different seeds is implausible")
}

// TestSeeded_ConcurrentDraws ensures a shared seeded source serializes its
// draws: the multiset of values drawn concurrently equals the serial
// prefix of an equally seeded source.
func TestSeeded_ConcurrentDraws(t *testing.T) {
	const goroutines = 8
	const perGoroutine = 50

	shared := entropy.NewSeeded(77)

	var mu sync.Mutex
	got := make([]uint64, 0, goroutines*perGoroutine)

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for g := 0; g < goroutines; g++ {
		go func() {
			defer wg.Done()
			local := make([]uint64, 0, perGoroutine)
			for i := 0; i < perGoroutine; i++ {
				d, err := shared.Next()
				require.NoError(t, err)
				local = append(local, uint64(d))
			}
			mu.Lock()
			got = append(got, local...)
			mu.Unlock()
		}()
	}
	wg.Wait()

	// Serial reference with the same seed.
	serial := entropy.NewSeeded(77)
	want := make([]uint64, 0, goroutines*perGoroutine)
	for i := 0; i < goroutines*perGoroutine; i++ {
		d, err := serial.Next()
		require.NoError(t, err)
		want = append(want, uint64(d))
	}

	sort.Slice(got, func(i, j int) bool { return got[i] < got[j] })
	sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })
	require.Equal(t, want, got, "concurrent draws must be a permutation of the serial prefix")
}

// TestSequence_ExhaustsAndStops verifies the bounded script source: emits
// in order, fails with ErrExhausted afterwards, and a failed call does not
// advance anything.
func TestSequence_ExhaustsAndStops(t *testing.T) {
	src := entropy.NewSequence(10, 20, 30)
	assert.Equal(t, 3, src.Remaining())

	for i, want := range []entropy.Draw{10, 20, 30} {
		d, err := src.Next()
		require.NoError(t, err)
		assert.Equal(t, want, d, "scripted draw %d", i)
	}
	assert.Equal(t, 0, src.Remaining())

	_, err := src.Next()
	assert.ErrorIs(t, err, entropy.ErrExhausted)
	// Still exhausted, still zero remaining.
	_, err = src.Next()
	assert.ErrorIs(t, err, entropy.ErrExhausted)
	assert.Equal(t, 0, src.Remaining())
}

// TestSequence_DetachedFromCallerSlice ensures mutating the argument slice
// after construction cannot rewrite the script.
func TestSequence_DetachedFromCallerSlice(t *testing.T) {
	script := []entropy.Draw{1, 2}
	src := entropy.NewSequence(script...)
	script[0] = 99

	d, err := src.Next()
	require.NoError(t, err)
	assert.Equal(t, entropy.Draw(1), d)
}

// TestCrypto_Basic checks the CSPRNG source yields draws without error and
// with visible variation.
func TestCrypto_Basic(t *testing.T) {
	src := entropy.NewCrypto()

	seen := make(map[entropy.Draw]struct{})
	for i := 0; i < 10; i++ {
		d, err := src.Next()
		require.NoError(t, err)
		seen[d] = struct{}{}
	}
	assert.Greater(t, len(seen), 1, "10 identical crypto draws is implausible")
}

// TestDraw_IntN verifies the bounded reduction stays inside [0, n) across
// the draw extremes and degenerates safely on bad bounds.
func TestDraw_IntN(t *testing.T) {
	assert.Equal(t, 0, entropy.Draw(0).IntN(6), "zero draw maps to 0")
	assert.Equal(t, 5, entropy.Draw(^uint64(0)).IntN(6), "max draw maps to n-1")
	assert.Equal(t, 3, entropy.Draw(1<<63).IntN(6), "midpoint draw maps to n/2")

	assert.Equal(t, 0, entropy.Draw(123).IntN(0), "n=0 degenerates to 0")
	assert.Equal(t, 0, entropy.Draw(123).IntN(-4), "negative n degenerates to 0")

	for _, d := range []entropy.Draw{0, 1, 1 << 20, 1 << 40, 1 << 63, ^entropy.Draw(0)} {
		v := d.IntN(17)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 17)
	}
}

// TestDraw_Float64 verifies the unit-interval mapping: inclusive zero,
// exclusive one.
func TestDraw_Float64(t *testing.T) {
	assert.Equal(t, 0.0, entropy.Draw(0).Float64())
	assert.Less(t, entropy.Draw(^uint64(0)).Float64(), 1.0, "max draw stays below 1")
	assert.GreaterOrEqual(t, entropy.Draw(1<<40).Float64(), 0.0)
}

// TestDraw_Bool checks the parity bit extraction.
func TestDraw_Bool(t *testing.T) {
	assert.False(t, entropy.Draw(0).Bool())
	assert.True(t, entropy.Draw(1).Bool())
	assert.False(t, entropy.Draw(2).Bool())
}
