/*
* Most common value test module
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

// MostCommonValue implements C3 (spec.md §4.3): an upper-confidence-bound
// on the frequency of the most common symbol.
func MostCommonValue(symbols []byte, alphSize int) Result {
	n := len(symbols)
	if n < 2 {
		return Absent()
	}

	counts := make([]int, alphSize)
	for _, s := range symbols {
		counts[s]++
	}
	maxCount := 0
	for _, c := range counts {
		if c > maxCount {
			maxCount = c
		}
	}

	phat := float64(maxCount) / float64(n)
	pu := phat + 2.576*math.Sqrt(phat*(1-phat)/float64(n-1))
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
