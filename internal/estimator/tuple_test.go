package estimator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTTupleAndLRS_TooShort(t *testing.T) {
	tT, lrs := TTupleAndLRS([]byte{0, 1}, 2)
	_, okT := tT.Get()
	_, okL := lrs.Get()
	assert.False(t, okT)
	assert.False(t, okL)
}

func TestTTupleAndLRS_RepeatingPatternBounded(t *testing.T) {
	symbols := make([]byte, 5000)
	for i := range symbols {
		symbols[i] = byte(i % 3)
	}
	tT, lrs := TTupleAndLRS(symbols, 3)
	bits, ok := tT.Get()
	assert.True(t, ok)
	assert.GreaterOrEqual(t, bits, 0.0)
	assert.LessOrEqual(t, bits, math.Log2(3))

	if lbits, lok := lrs.Get(); lok {
		assert.GreaterOrEqual(t, lbits, 0.0)
		assert.LessOrEqual(t, lbits, math.Log2(3))
	}
}

func TestChoose2(t *testing.T) {
	assert.Equal(t, 0.0, choose2(0))
	assert.Equal(t, 0.0, choose2(1))
	assert.Equal(t, 1.0, choose2(2))
	assert.Equal(t, 10.0, choose2(5))
}

func TestMaxRunLength_AllAboveThreshold(t *testing.T) {
	lcp := []int32{5, 5, 5, 5}
	assert.Equal(t, 5, maxRunLength(lcp, 5))
}
