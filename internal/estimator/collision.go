/*
* Collision test module
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

// Collision implements C4 (spec.md §4.4): the mean inter-collision
// distance estimator, binary bitstrings only.
func Collision(bsymbols []byte) Result {
	distances := collisionDistances(bsymbols)
	if len(distances) < 2 {
		return Absent()
	}

	floats := make(stats.Float64Data, len(distances))
	for i, d := range distances {
		floats[i] = float64(d)
	}
	mean, err := floats.Mean()
	if err != nil {
		return Absent()
	}
	sd, err := floats.StandardDeviation()
	if err != nil {
		return Absent()
	}
	v := float64(len(distances))
	xbar := mean - 2.576*sd/math.Sqrt(v)
	if xbar < 2 {
		return Absent()
	}

	p, ok := numeric.Bisect(func(p float64) float64 {
		return collisionMeanEquation(p) - xbar
	}, 0.5, 1-1e-9, 1e-8)
	if !ok || p <= 0.5 || p >= 1 {
		return Absent()
	}
	return Entropy(-math.Log2(p))
}

// collisionDistances scans bsymbols for occurrences where the current
// bit equals a prior bit seen since the last reset, recording each
// inter-collision distance and resetting the scan.
func collisionDistances(bsymbols []byte) []int {
	var distances []int
	i := 0
	n := len(bsymbols)
	for i < n {
		seen := map[byte]bool{}
		start := i
		for i < n {
			b := bsymbols[i]
			if seen[b] {
				i++
				break
			}
			seen[b] = true
			i++
		}
		if i > start {
			distances = append(distances, i-start)
		}
	}
	return distances
}

// collisionMeanEquation is the mean inter-collision distance as a
// function of p, the probability of the more likely bit value, for a
// binary source. A collision is forced by the second draw (probability
// p^2+q^2, distance 2) or, failing that, the third (probability 2pq,
// distance 3) — there are no other possibilities for a two-symbol
// alphabet. So E[T] = 2(p^2+q^2) + 3(2pq) = 2 + 2pq, which is monotone
// decreasing in p over [0.5, 1) from 2.5 down to 2.
func collisionMeanEquation(p float64) float64 {
	q := 1 - p
	return 2 + 2*p*q
}
