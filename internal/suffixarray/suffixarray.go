/*
* Suffix array module
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

// Package suffixarray builds a suffix array and LCP array over an 8-bit
// alphabet, reused by the t-Tuple and LRS estimators (C2).
package suffixarray

import "sort"

// Build constructs the suffix array SA and LCP array for symbols, using
// prefix-doubling rank construction (O(log N) rounds, each an
// O(N log N) comparison sort, so O(N log^2 N) in total) followed by
// Kasai's algorithm for LCP.
//
// SA[i] is the starting index of the i'th suffix in lexicographic order.
// LCP[i] is the length of the longest common prefix of the suffixes
// starting at SA[i-1] and SA[i], with LCP[0] == 0.
func Build(symbols []byte) (sa, lcp []int32) {
	n := len(symbols)
	sa = make([]int32, n)
	lcp = make([]int32, n)
	if n == 0 {
		return sa, lcp
	}

	rank := make([]int32, n)
	for i, b := range symbols {
		rank[i] = int32(b)
	}
	tmp := make([]int32, n)
	idx := make([]int32, n)
	for i := range idx {
		idx[i] = int32(i)
	}

	for k := 1; ; k *= 2 {
		r := rank
		cmpKey := func(i int32) (int32, int32) {
			second := int32(-1)
			if int(i)+k < n {
				second = r[int(i)+k]
			}
			return r[i], second
		}
		sort.Slice(idx, func(a, b int) bool {
			ia, ib := idx[a], idx[b]
			a1, a2 := cmpKey(ia)
			b1, b2 := cmpKey(ib)
			if a1 != b1 {
				return a1 < b1
			}
			return a2 < b2
		})

		tmp[idx[0]] = 0
		for i := 1; i < n; i++ {
			tmp[idx[i]] = tmp[idx[i-1]]
			a1, a2 := cmpKey(idx[i-1])
			b1, b2 := cmpKey(idx[i])
			if a1 != b1 || a2 != b2 {
				tmp[idx[i]]++
			}
		}
		rank, tmp = tmp, rank

		if int(rank[idx[n-1]]) == n-1 {
			break
		}
	}
	copy(sa, idx)

	lcp = kasai(symbols, sa)
	return sa, lcp
}

// kasai computes the LCP array in O(N) given the suffix array.
func kasai(symbols []byte, sa []int32) []int32 {
	n := len(symbols)
	lcp := make([]int32, n)
	if n == 0 {
		return lcp
	}
	invSA := make([]int32, n)
	for i, s := range sa {
		invSA[s] = int32(i)
	}

	var h int32
	for i := 0; i < n; i++ {
		if invSA[i] > 0 {
			j := sa[invSA[i]-1]
			for int(i)+int(h) < n && int(j)+int(h) < n && symbols[int(i)+int(h)] == symbols[int(j)+int(h)] {
				h++
			}
			lcp[invSA[i]] = h
			if h > 0 {
				h--
			}
		} else {
			h = 0
		}
	}
	return lcp
}
