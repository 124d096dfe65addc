package suffixarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuild_Empty(t *testing.T) {
	sa, lcp := Build(nil)
	assert.Empty(t, sa)
	assert.Empty(t, lcp)
}

func TestBuild_Banana(t *testing.T) {
	sa, lcp := Build([]byte("banana"))
	assert.Equal(t, []int32{5, 3, 1, 0, 4, 2}, sa)
	assert.Equal(t, []int32{0, 1, 3, 0, 0, 2}, lcp)
}

func TestBuild_AllIdenticalMaximizesLCP(t *testing.T) {
	// Suffixes of a run of identical symbols sort purely by length, so
	// SA is the reverse index order and LCP increases by one each step.
	sa, lcp := Build([]byte{7, 7, 7, 7, 7})
	assert.Equal(t, []int32{4, 3, 2, 1, 0}, sa)
	for i := 1; i < len(lcp); i++ {
		assert.Equal(t, int32(i), lcp[i])
	}
}
