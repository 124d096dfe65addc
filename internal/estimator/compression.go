/*
* Compression test module
* Copyright (C) 2025  Artem Stefankiv
*
* This program is free software: you can redistribute it and/or modify
* it under the terms of the GNU General Public License as published by
* the Free Software Foundation, either version 3 of the License, or
* (at your option) any later version.
*
* This program is distributed in the hope that it will be useful,
* but WITHOUT ANY WARRANTY; without even the implied warranty of
* MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
* GNU General Public License for more details.
*
* You should have received a copy of the GNU General Public License
* along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

package estimator

import (
	"math"

	"github.com/ajit1433/SP800-90B-EntropyAssessment/internal/numeric"
	"github.com/montanaflynn/stats"
)

// compressionDictSize is the Maurer dictionary size d (spec.md §4.6).
const compressionDictSize = 1000

// Compression implements C6 (spec.md §4.6): the Maurer/Coron universal
// statistic, over the bitstring domain only.
func Compression(bsymbols []byte) Result {
	n := len(bsymbols)
	if n <= compressionDictSize+1 {
		return Absent()
	}

	lastSeen := map[byte]int{}
	for i := 0; i < compressionDictSize; i++ {
		lastSeen[bsymbols[i]] = i
	}

	v := n - compressionDictSize
	logDist := make(stats.Float64Data, v)
	for i := compressionDictSize; i < n; i++ {
		b := bsymbols[i]
		var d int
		if prev, ok := lastSeen[b]; ok {
			d = i - prev
		} else {
			d = i + 1
		}
		logDist[i-compressionDictSize] = math.Log2(float64(d))
		lastSeen[b] = i
	}

	xbar, err := logDist.Mean()
	if err != nil {
		return Absent()
	}
	variance, err := logDist.Variance()
	if err != nil {
		return Absent()
	}
	xbarPrime := xbar - 2.576*math.Sqrt(variance/float64(v))

	p, ok := numeric.Bisect(func(p float64) float64 {
		return compressionMeanEquation(p) - xbarPrime
	}, 0.5, 1-1e-9, 1e-8)
	if !ok || p <= 0.5 || p >= 1 {
		return Absent()
	}

	h := -math.Log2(p) / 6
	if h < 0 {
		h = 0
	}
	if h > 1 {
		h = 1
	}
	return Entropy(h)
}

// eulerGammaOverLn2 is the Euler-Mascheroni constant divided by ln(2),
// the correction term in the small-r asymptotic expansion of
// E[log2 Geometric(r)] below.
const eulerGammaOverLn2 = 0.8327462

// compressionSeriesThreshold is the point below which the defining
// series for expectedLog2Geometric is replaced by its asymptotic
// expansion: at r = 0.01 the series needs on the order of 3500 terms to
// converge, and that cost grows as 1/r, so anything smaller switches to
// the closed-form estimate instead of a slow loop.
const compressionSeriesThreshold = 0.01

const compressionSeriesMaxTerms = 5000
const compressionSeriesTol = 1e-15

// expectedLog2Geometric returns E[log2 N] for N ~ Geometric(r) (that is,
// P(N=n) = r(1-r)^(n-1), n = 1, 2, ...): the mean log2 distance back to
// the previous occurrence of a value that recurs with per-step
// probability r in an IID sequence. For r bounded away from 0 this is
// evaluated directly from its defining series; for small r the series
// converges too slowly to sum term-by-term, so the standard asymptotic
// E[ln N] = -ln(r) - gamma + O(r) is used instead.
func expectedLog2Geometric(r float64) float64 {
	if r <= 0 {
		return math.Inf(1)
	}
	if r >= 1 {
		return 0
	}
	if r < compressionSeriesThreshold {
		return -math.Log2(r) - eulerGammaOverLn2
	}
	q := 1 - r
	sum := 0.0
	term := r
	for n := 1; n <= compressionSeriesMaxTerms; n++ {
		sum += term * math.Log2(float64(n))
		term *= q
		if term < compressionSeriesTol {
			break
		}
	}
	return sum
}

// compressionMeanEquation is the Maurer/Coron expected value of the
// test statistic X-bar as a function of p, the probability of the
// dominant bit value, for a binary source: the average of
// expectedLog2Geometric over both bit values, weighted by how often
// each occurs. It equals the Maurer universal-statistic constant
// (~0.7326) at p=0.5 and decreases monotonically toward 0 as p -> 1.
func compressionMeanEquation(p float64) float64 {
	q := 1 - p
	if p <= 0 || q < 0 {
		return math.Inf(1)
	}
	if q == 0 {
		return 0
	}
	return p*expectedLog2Geometric(p) + q*expectedLog2Geometric(q)
}
