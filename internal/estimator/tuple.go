/*
* t-Tuple and LRS test module
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

	"github.com/ajit1433/SP800-90B-EntropyAssessment/internal/suffixarray"
)

// ttupleMinOccurrences is the "occurs at least 35 times" threshold of
// spec.md §4.7.
const ttupleMinOccurrences = 35

// TTupleAndLRS implements C7 (spec.md §4.7): the t-Tuple and LRS
// estimators, both built over a single shared suffix array / LCP array.
func TTupleAndLRS(symbols []byte, alphSize int) (tTuple, lrs Result) {
	n := len(symbols)
	if n < 3 {
		return Absent(), Absent()
	}
	sa, lcp := suffixarray.Build(symbols)

	t := largestTupleWithMinOccurrences(lcp, n)
	if t < 2 {
		return Absent(), Absent()
	}

	tTuple = tTupleEstimate(lcp, n, t, alphSize)

	v := maxInt32(lcp)
	u := t + 1
	if int(v) < u {
		return tTuple, Absent()
	}
	lrs = lrsEstimate(sa, lcp, symbols, n, u, int(v), alphSize)
	return tTuple, lrs
}

// largestTupleWithMinOccurrences finds the largest t such that some
// t-length tuple occurs at least ttupleMinOccurrences times, by
// scanning runs of consecutive LCP values >= t.
func largestTupleWithMinOccurrences(lcp []int32, n int) int {
	best := 1
	for t := 1; t <= n; t++ {
		if maxRunLength(lcp, int32(t)) < ttupleMinOccurrences {
			break
		}
		best = t
	}
	return best
}

// maxRunLength returns the longest run of consecutive LCP entries >= t,
// plus one (the run of suffixes sharing a common prefix of length t has
// run+1 members).
func maxRunLength(lcp []int32, t int32) int {
	best, cur := 0, 0
	for _, v := range lcp {
		if v >= t {
			cur++
			if cur > best {
				best = cur
			}
		} else {
			cur = 0
		}
	}
	return best + 1
}

// tupleCounts returns, for a given tuple length i, the maximum number of
// occurrences of any i-length tuple, derived from runs of LCP >= i.
func tupleCounts(lcp []int32, i int32) int {
	best, cur := 0, 0
	for _, v := range lcp {
		if v >= i {
			cur++
		} else {
			if cur+1 > best {
				best = cur + 1
			}
			cur = 0
		}
	}
	if cur+1 > best {
		best = cur + 1
	}
	return best
}

func tTupleEstimate(lcp []int32, n, t, alphSize int) Result {
	pMax := 0.0
	for i := 2; i <= t; i++ {
		count := tupleCounts(lcp, int32(i))
		p := float64(count) / float64(n-i+1)
		pi := math.Pow(p, 1.0/float64(i))
		if pi > pMax {
			pMax = pi
		}
	}
	return upperBoundEntropy(pMax, n, alphSize)
}

// lrsEstimate implements the LRS estimator of spec.md §4.7 for tuple
// lengths u..v, where v is the longest repeated substring length.
func lrsEstimate(sa, lcp []int32, symbols []byte, n, u, v, alphSize int) Result {
	pMax := 0.0
	for i := u; i <= v; i++ {
		total := pairCountsAtLength(lcp, int32(i))
		denom := choose2(n - i + 1)
		if denom == 0 {
			continue
		}
		p := total / denom
		pi := math.Pow(p, 1.0/float64(i))
		if pi > pMax {
			pMax = pi
		}
	}
	if pMax == 0 {
		return Absent()
	}
	return upperBoundEntropy(pMax, n, alphSize)
}

// pairCountsAtLength sums C(count_i, 2) over all maximal runs of
// suffixes sharing a common prefix of length >= i, where count_i is the
// run's size + 1.
func pairCountsAtLength(lcp []int32, i int32) float64 {
	var sum float64
	cur := 0
	flush := func() {
		count := cur + 1
		sum += choose2(count)
		cur = 0
	}
	for _, v := range lcp {
		if v >= i {
			cur++
		} else {
			flush()
		}
	}
	flush()
	return sum
}

func choose2(n int) float64 {
	if n < 2 {
		return 0
	}
	return float64(n) * float64(n-1) / 2
}

func upperBoundEntropy(pMax float64, n, alphSize int) Result {
	if pMax <= 0 {
		return Absent()
	}
	pu := pMax + 2.576*math.Sqrt(pMax*(1-pMax)/float64(n-1))
	if pu > 1 {
		pu = 1
	}
	if pu <= 0 {
		return Absent()
	}
	h := -math.Log2(pu)
	maxEntropy := math.Log2(float64(alphSize))
	if h > maxEntropy {
		h = maxEntropy
	}
	return Entropy(h)
}

func maxInt32(xs []int32) int32 {
	var best int32
	for _, x := range xs {
		if x > best {
			best = x
		}
	}
	return best
}
