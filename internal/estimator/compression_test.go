package estimator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompression_TooShort(t *testing.T) {
	r := Compression(make([]byte, 500))
	_, ok := r.Get()
	assert.False(t, ok)
}

func TestCompression_PseudoRandomBounded(t *testing.T) {
	bits := pseudoRandomBits(50000, 7)
	r := Compression(bits)
	entropy, ok := r.Get()
	assert.True(t, ok)
	assert.GreaterOrEqual(t, entropy, 0.0)
	assert.LessOrEqual(t, entropy, 1.0)
}

func TestCompression_PseudoRandomIsNearFullEntropy(t *testing.T) {
	bits := pseudoRandomBits(1_000_000, 7)
	r := Compression(bits)
	entropy, ok := r.Get()
	assert.True(t, ok)
	assert.GreaterOrEqual(t, entropy, 0.95)
	assert.LessOrEqual(t, entropy, 1.0)
}

func TestCompression_AllZerosIsAbsentOrZero(t *testing.T) {
	bits := make([]byte, 50000)
	r := Compression(bits)
	entropy, ok := r.Get()
	if ok {
		assert.Equal(t, 0.0, entropy)
	}
}
