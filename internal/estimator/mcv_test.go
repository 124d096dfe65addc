package estimator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMostCommonValue_AllIdentical(t *testing.T) {
	symbols := make([]byte, 2000)
	r := MostCommonValue(symbols, 4)
	bits, ok := r.Get()
	assert.True(t, ok)
	assert.Equal(t, 0.0, bits)
}

func TestMostCommonValue_TooSmall(t *testing.T) {
	r := MostCommonValue([]byte{0}, 2)
	_, ok := r.Get()
	assert.False(t, ok)
}

func TestMostCommonValue_UniformBoundedByLog2Alphabet(t *testing.T) {
	symbols := make([]byte, 10000)
	for i := range symbols {
		symbols[i] = byte(i % 4)
	}
	r := MostCommonValue(symbols, 4)
	bits, ok := r.Get()
	assert.True(t, ok)
	assert.LessOrEqual(t, bits, math.Log2(4))
	assert.Greater(t, bits, 0.0)
}

func TestMostCommonValue_BiasedLowerThanUniform(t *testing.T) {
	uniform := make([]byte, 10000)
	for i := range uniform {
		uniform[i] = byte(i % 4)
	}
	biased := make([]byte, 10000)
	for i := range biased {
		if i%10 == 0 {
			biased[i] = 1
		} else {
			biased[i] = 0
		}
	}
	ru, _ := MostCommonValue(uniform, 4).Get()
	rb, _ := MostCommonValue(biased, 4).Get()
	assert.Less(t, rb, ru)
}
