package estimator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarkov_TooShort(t *testing.T) {
	r := Markov(make([]byte, 50))
	_, ok := r.Get()
	assert.False(t, ok)
}

func TestMarkov_PerfectlyPredictableAlternation(t *testing.T) {
	bits := make([]byte, 1000)
	for i := range bits {
		bits[i] = byte(i % 2)
	}
	r := Markov(bits)
	entropy, ok := r.Get()
	assert.True(t, ok)
	// Only the start-state probability contributes uncertainty; the
	// 128-step deterministic path after that contributes nothing, so the
	// entropy is the small residual 1/128.
	assert.InDelta(t, 1.0/128.0, entropy, 1e-9)
}

func TestMarkov_AllZerosIsFullyPredictable(t *testing.T) {
	bits := make([]byte, 1000)
	r := Markov(bits)
	entropy, ok := r.Get()
	assert.True(t, ok)
	assert.Equal(t, 0.0, entropy)
}

// TestMostProbablePathLog2_BeatsGreedyArgmax uses a chain where the
// locally-best successor at every step (stay in state 0, self-loop
// 0.9) is far worse over 128 steps than a path that pays a one-time
// 0.1 cost to reach state 1's much stronger 0.99 self-loop. A greedy
// per-step walk can never discover this trade-off.
func TestMostProbablePathLog2_BeatsGreedyArgmax(t *testing.T) {
	start := [2]float64{1, 0}
	trans := [2][2]float64{{0.9, 0.1}, {0.01, 0.99}}
	const steps = 128

	got := mostProbablePathLog2(start, trans, steps)

	greedy := float64(steps) * math.Log2(0.9)
	trueBest := math.Log2(0.1) + float64(steps-1)*math.Log2(0.99)

	assert.InDelta(t, trueBest, got, 1e-6)
	assert.Greater(t, got, greedy)
}

func TestMarkov_BoundedByOneBit(t *testing.T) {
	bits := pseudoRandomBits(5000, 99)
	r := Markov(bits)
	entropy, ok := r.Get()
	assert.True(t, ok)
	assert.GreaterOrEqual(t, entropy, 0.0)
	assert.LessOrEqual(t, entropy, 1.0)
}
