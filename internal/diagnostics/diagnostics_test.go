package diagnostics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShannonEntropy_AllIdenticalIsZero(t *testing.T) {
	symbols := make([]byte, 1000)
	assert.Equal(t, 0.0, ShannonEntropy(symbols, 4))
}

func TestShannonEntropy_UniformMatchesLog2Alphabet(t *testing.T) {
	symbols := make([]byte, 4000)
	for i := range symbols {
		symbols[i] = byte(i % 4)
	}
	h := ShannonEntropy(symbols, 4)
	assert.InDelta(t, math.Log2(4), h, 1e-9)
}

func TestShannonEntropy_EmptyIsZero(t *testing.T) {
	assert.Equal(t, 0.0, ShannonEntropy(nil, 4))
}

func TestKolmogorovSmirnov_UniformIsNearZero(t *testing.T) {
	symbols := make([]byte, 4000)
	for i := range symbols {
		symbols[i] = byte(i % 4)
	}
	ks := KolmogorovSmirnov(symbols, 4)
	assert.InDelta(t, 0.0, ks.Statistic, 1e-9)
}

func TestKolmogorovSmirnov_AllIdenticalIsMaximal(t *testing.T) {
	symbols := make([]byte, 1000)
	ks := KolmogorovSmirnov(symbols, 4)
	assert.InDelta(t, 0.75, ks.Statistic, 1e-9)
	assert.Equal(t, 0, ks.MaxDiffPosition)
}

func TestAutocorrelation_TooFewBlocksReturnsZero(t *testing.T) {
	v, err := Autocorrelation(make([]byte, 10), 1000)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)
}

func TestAutocorrelation_RunsWithoutError(t *testing.T) {
	values := make([]byte, 20000)
	for i := range values {
		values[i] = byte(i % 7)
	}
	_, err := Autocorrelation(values, 1000)
	require.NoError(t, err)
}
