package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ajit1433/SP800-90B-EntropyAssessment/internal/chisquare"
	"github.com/ajit1433/SP800-90B-EntropyAssessment/internal/driver"
)

func TestWriteUnit_EmitsCanonicalOrderAndTerminator(t *testing.T) {
	var buf bytes.Buffer
	w := New(&buf)

	r := driver.Report{
		WordSize: 1,
		AlphSize: 2,
		Estimators: []driver.EstimatorValue{
			{Name: "MostCommonValue", Domain: "Bitstring", Entropy: 0.9, Present: true},
			{Name: "Collision", Domain: "Bitstring", Present: false},
		},
		HAssessed: 0.85,
	}
	w.WriteUnit("sample.bin", r)

	out := buf.String()
	assert.Contains(t, out, "unit=sample.bin word_size=1 alph_size=2")
	assert.Contains(t, out, "MostCommonValue[Bitstring]")
	assert.Contains(t, out, "Collision[Bitstring] = absent")
	assert.Contains(t, out, "h_assessed")
	assert.True(t, strings.HasSuffix(strings.TrimRight(out, "\n"), "---"))
}

func TestWriteUnit_IncludesChiSquareWhenPresent(t *testing.T) {
	var buf bytes.Buffer
	w := New(&buf)

	ind := chisquare.Result{Statistic: 12.3, DF: 15, Cutoff: 37.7, Pass: true}
	r := driver.Report{
		WordSize:     3,
		AlphSize:     8,
		Independence: &ind,
		HAssessed:    2.1,
	}
	w.WriteUnit("multi.bin", r)

	out := buf.String()
	assert.Contains(t, out, "ChiSquareIndependence")
	assert.Contains(t, out, "pass=true")
}

func TestWriteUnit_SerializesConcurrentAppends(t *testing.T) {
	var buf bytes.Buffer
	w := New(&buf)

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func(i int) {
			w.WriteUnit("concurrent.bin", driver.Report{HAssessed: float64(i)})
			done <- struct{}{}
		}(i)
	}
	for i := 0; i < 8; i++ {
		<-done
	}
	assert.Equal(t, 8, strings.Count(buf.String(), "---"))
}
