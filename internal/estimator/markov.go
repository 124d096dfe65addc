/*
* Markov test module
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

import "math"

// Markov implements C5 (spec.md §4.5): a first-order Markov chain MLE
// over a binary bitstring, followed by the worst-case 128-step path
// bound.
func Markov(bsymbols []byte) Result {
	n := len(bsymbols)
	if n < 129 {
		return Absent()
	}

	var ones int
	for _, b := range bsymbols {
		if b == 1 {
			ones++
		}
	}
	p1 := float64(ones) / float64(n)
	p0 := 1 - p1

	var c00, c01, c10, c11 int
	for i := 0; i+1 < n; i++ {
		switch {
		case bsymbols[i] == 0 && bsymbols[i+1] == 0:
			c00++
		case bsymbols[i] == 0 && bsymbols[i+1] == 1:
			c01++
		case bsymbols[i] == 1 && bsymbols[i+1] == 0:
			c10++
		default:
			c11++
		}
	}
	p00 := safeDiv(c00, c00+c01)
	p01 := safeDiv(c01, c00+c01)
	p10 := safeDiv(c10, c10+c11)
	p11 := safeDiv(c11, c10+c11)

	trans := [2][2]float64{{p00, p01}, {p10, p11}}
	start := [2]float64{p0, p1}

	const steps = 128
	logProb := mostProbablePathLog2(start, trans, steps)
	if math.IsInf(logProb, -1) {
		return Absent()
	}

	best := -logProb / float64(steps)
	if best < 0 {
		best = 0
	}
	if best > 1 {
		best = 1
	}
	return Entropy(best)
}

// mostProbablePathLog2 returns log2 of the highest-probability path of
// length steps through the 2-state chain, over both starting states, via
// forward dynamic programming (a 2-state Viterbi recursion). Picking the
// locally best successor at each step, as a greedy walk would, does not
// in general find the path of maximum overall probability — e.g. a
// chain that only reaches a highly self-predictive state via a low-
// probability transition can beat a chain of merely-good self-loops, and
// a step-by-step argmax can never discover that trade-off.
func mostProbablePathLog2(start [2]float64, trans [2][2]float64, steps int) float64 {
	var logTrans [2][2]float64
	for from := 0; from < 2; from++ {
		for to := 0; to < 2; to++ {
			logTrans[from][to] = log2OrNegInf(trans[from][to])
		}
	}

	dp := [2]float64{log2OrNegInf(start[0]), log2OrNegInf(start[1])}
	for i := 0; i < steps; i++ {
		var next [2]float64
		for to := 0; to < 2; to++ {
			best := math.Inf(-1)
			for from := 0; from < 2; from++ {
				if math.IsInf(dp[from], -1) || math.IsInf(logTrans[from][to], -1) {
					continue
				}
				if v := dp[from] + logTrans[from][to]; v > best {
					best = v
				}
			}
			next[to] = best
		}
		dp = next
	}
	return math.Max(dp[0], dp[1])
}

func log2OrNegInf(p float64) float64 {
	if p <= 0 {
		return math.Inf(-1)
	}
	return math.Log2(p)
}

func safeDiv(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}
