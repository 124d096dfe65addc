package driver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajit1433/SP800-90B-EntropyAssessment/internal/sample"
)

// pseudoRandomBytes generates deterministic bytes via xorshift32, used
// as a stand-in IID-looking source across the driver scenarios.
func pseudoRandomBytes(n int, seed uint32, alph int) []byte {
	x := seed
	out := make([]byte, n)
	mask := byte(alph - 1)
	for i := 0; i < n; i++ {
		x ^= x << 13
		x ^= x >> 17
		x ^= x << 5
		out[i] = byte(x) & mask
	}
	return out
}

// TestAnalyze_FullyPredictableConstantSource covers the degenerate end
// of spec.md's scenarios: a constant byte stream is rejected by
// sample.FromBytes as a degenerate alphabet, so no buffer reaches
// Analyze.
func TestAnalyze_FullyPredictableConstantSource(t *testing.T) {
	raw := make([]byte, sample.MinSize)
	for i := range raw {
		raw[i] = 3
	}
	buf, err := sample.FromBytes(raw, 0)
	require.Error(t, err) // single distinct value -> degenerate alphabet
	assert.Nil(t, buf)
}

// TestAnalyze_InitialEntropy_BinaryAlphabet runs the full battery over a
// heavily biased binary source and checks HAssessed lies in
// [0, word_size] and every present estimate is non-negative.
func TestAnalyze_InitialEntropy_BinaryAlphabet(t *testing.T) {
	raw := pseudoRandomBytes(sample.MinSize, 11, 2)
	// bias the stream so it is not a coin flip.
	for i := range raw {
		if i%3 != 0 {
			raw[i] = 0
		}
	}
	buf, err := sample.FromBytes(raw, 1)
	require.NoError(t, err)
	require.Equal(t, 2, buf.AlphSize)

	r := Analyze(buf, DefaultConfig())
	assert.GreaterOrEqual(t, r.HAssessed, 0.0)
	assert.LessOrEqual(t, r.HAssessed, float64(buf.WordSize))
	assert.NotEmpty(t, r.Estimators)
	for _, e := range r.Estimators {
		if e.Present {
			assert.GreaterOrEqual(t, e.Entropy, 0.0)
		}
	}
}

// TestAnalyze_InitialEntropy_BinaryAlphabet_RunsLiteralCompression checks
// that the binary-alphabet literal domain includes a Compression entry,
// mirroring non_iid_main.cpp's alph_size==2 literal-domain run of the
// Compression test alongside Collision and Markov.
func TestAnalyze_InitialEntropy_BinaryAlphabet_RunsLiteralCompression(t *testing.T) {
	raw := pseudoRandomBytes(sample.MinSize+2000, 11, 2)
	buf, err := sample.FromBytes(raw, 1)
	require.NoError(t, err)
	require.Equal(t, 2, buf.AlphSize)

	r := Analyze(buf, DefaultConfig())
	found := false
	for _, e := range r.Estimators {
		if e.Name == "Compression" && e.Domain == "Literal" {
			found = true
		}
	}
	assert.True(t, found, "expected a Literal-domain Compression entry for a binary alphabet")
}

// TestAnalyze_InitialEntropy_MultiBitAlphabet exercises the literal
// domain (alphSize > 2) including the chi-square health tests.
func TestAnalyze_InitialEntropy_MultiBitAlphabet(t *testing.T) {
	raw := pseudoRandomBytes(sample.MinSize, 99, 8)
	buf, err := sample.FromBytes(raw, 3)
	require.NoError(t, err)

	r := Analyze(buf, DefaultConfig())
	assert.LessOrEqual(t, r.HAssessed, float64(buf.WordSize))
	assert.GreaterOrEqual(t, r.HAssessed, 0.0)
	require.NotNil(t, r.Independence)
	require.NotNil(t, r.GoodnessOfFit)
}

// TestAnalyze_ConditionedMode restricts the reduction to the bitstring
// domain only, per spec.md §6's h' mode.
func TestAnalyze_ConditionedMode(t *testing.T) {
	raw := pseudoRandomBytes(sample.MinSize, 5, 2)
	buf, err := sample.FromBytes(raw, 1)
	require.NoError(t, err)

	cfg := DefaultConfig()
	cfg.Mode = Conditioned
	r := Analyze(buf, cfg)
	assert.LessOrEqual(t, r.HAssessed, float64(buf.WordSize))
	for _, e := range r.Estimators {
		assert.Equal(t, "Bitstring", e.Domain)
	}
}

// TestAnalyze_BinaryChiSquareExtensionOptIn checks that the conformance
// extension of SPEC_FULL.md §11.4 only activates when requested.
func TestAnalyze_BinaryChiSquareExtensionOptIn(t *testing.T) {
	raw := pseudoRandomBytes(sample.MinSize, 3, 2)
	buf, err := sample.FromBytes(raw, 1)
	require.NoError(t, err)

	base := Analyze(buf, DefaultConfig())
	assert.Nil(t, base.Independence)
	assert.Nil(t, base.GoodnessOfFit)

	cfg := DefaultConfig()
	cfg.BinaryChiSquare = true
	withExt := Analyze(buf, cfg)
	assert.NotNil(t, withExt.Independence)
	assert.NotNil(t, withExt.GoodnessOfFit)
}

// TestAnalyze_VerboseDiagnostics checks the opt-in diagnostics surface
// populates at Verbose = 2.
func TestAnalyze_VerboseDiagnostics(t *testing.T) {
	raw := pseudoRandomBytes(sample.MinSize, 17, 4)
	buf, err := sample.FromBytes(raw, 2)
	require.NoError(t, err)

	cfg := DefaultConfig()
	cfg.Verbose = 2
	r := Analyze(buf, cfg)
	require.NotNil(t, r.Diagnostics)
	assert.GreaterOrEqual(t, r.Diagnostics.ShannonEntropy, 0.0)
}

// TestAnalyze_TruncatedBitstring runs Analyze with AllBits=false on a
// bitstring longer than sample.MinSize bits and checks it still yields
// a non-negative HAssessed.
func TestAnalyze_TruncatedBitstring(t *testing.T) {
	raw := pseudoRandomBytes(sample.MinSize*2, 21, 2)
	buf, err := sample.FromBytes(raw, 1)
	require.NoError(t, err)
	require.Greater(t, buf.Blen(), sample.MinSize)

	cfg := DefaultConfig()
	cfg.AllBits = false
	r := Analyze(buf, cfg)
	assert.GreaterOrEqual(t, r.HAssessed, 0.0)
}
