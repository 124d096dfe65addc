package numeric

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBisect_LinearRoot(t *testing.T) {
	f := func(x float64) float64 { return x - 0.5 }
	root, ok := Bisect(f, 0, 1, 1e-9)
	assert.True(t, ok)
	assert.InDelta(t, 0.5, root, 1e-6)
}

func TestBisect_NoSignChange(t *testing.T) {
	f := func(x float64) float64 { return x*x + 1 }
	_, ok := Bisect(f, 0, 1, 1e-9)
	assert.False(t, ok)
}

func TestBisect_RootAtBoundary(t *testing.T) {
	f := func(x float64) float64 { return x }
	root, ok := Bisect(f, 0, 1, 1e-9)
	assert.True(t, ok)
	assert.Equal(t, 0.0, root)
}

// TestChiSquareCutoff_TableBoundaries checks the df=1 and df=100 table
// lookups match the reference critical_value table verbatim.
func TestChiSquareCutoff_TableBoundaries(t *testing.T) {
	assert.Equal(t, 10.828, ChiSquareCutoff(1))
	assert.Equal(t, 149.449, ChiSquareCutoff(100))
}

// TestChiSquareCutoff_ApproximationMonotone checks that the cutoff keeps
// growing across the table boundary: the first Wilson-Hilferty value
// (df=101) exceeds the last tabulated one (df=100), and df=200 exceeds
// df=101.
func TestChiSquareCutoff_ApproximationMonotone(t *testing.T) {
	v100 := ChiSquareCutoff(100)
	v101 := ChiSquareCutoff(101)
	v200 := ChiSquareCutoff(200)
	assert.Greater(t, v101, v100)
	assert.Greater(t, v200, v101)
}

// TestWilsonHilferty_AgreesWithTableNearBoundary verifies invariant S5 of
// spec.md §8 by checking the approximation used beyond df=100 against
// the tabulated df=100 critical value: the two must agree to within 1%
// right at the boundary where both are meaningful to compare.
func TestWilsonHilferty_AgreesWithTableNearBoundary(t *testing.T) {
	approx := wilsonHilferty(100)
	table := chiSquareCriticalValues[99]
	assert.Less(t, math.Abs(approx-table)/table, 0.01)
}
