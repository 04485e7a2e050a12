package dice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"pgregory.net/rapid"
)

func TestBetween_SingleValueRange(t *testing.T) {
	src := NewCryptoSource()
	assert.Equal(t, 7, Between(src, 7, 7))
}

func TestBetween_PanicsOnInvertedRange(t *testing.T) {
	src := NewCryptoSource()
	assert.Panics(t, func() { Between(src, 5, 1) })
}

func TestCryptoSource_PanicsOnNonPositiveBound(t *testing.T) {
	src := NewCryptoSource()
	assert.Panics(t, func() { src.Intn(0) })
	assert.Panics(t, func() { src.Intn(-1) })
}

func TestSeededSource_Deterministic(t *testing.T) {
	a := NewSeededSource(42)
	b := NewSeededSource(42)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Intn(1000), b.Intn(1000))
	}
}

func TestScriptedSource_ReplaysInOrder(t *testing.T) {
	src := NewScriptedSource(0, 3, 2)
	assert.Equal(t, 0, src.Intn(4))
	assert.Equal(t, 3, src.Intn(4))
	assert.Equal(t, 2, src.Intn(4))
	// wraps around
	assert.Equal(t, 0, src.Intn(4))
}

func TestScriptedSource_ReducesModuloBound(t *testing.T) {
	src := NewScriptedSource(5)
	assert.Equal(t, 1, src.Intn(2))
}

func TestCoinFlip_Scripted(t *testing.T) {
	assert.True(t, CoinFlip(NewScriptedSource(0)))
	assert.False(t, CoinFlip(NewScriptedSource(1)))
}

func TestLoggedSource_Delegates(t *testing.T) {
	logger := zaptest.NewLogger(t)
	src := NewLoggedSource(NewScriptedSource(3), logger)
	assert.Equal(t, 3, src.Intn(10))
}

func TestProperty_Between_StaysInRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		min := rapid.IntRange(-50, 50).Draw(t, "min")
		span := rapid.IntRange(0, 100).Draw(t, "span")
		max := min + span
		seed := rapid.Uint64().Draw(t, "seed")

		v := Between(NewSeededSource(seed), min, max)
		if v < min || v > max {
			t.Fatalf("Between(%d, %d) = %d out of range", min, max, v)
		}
	})
}
