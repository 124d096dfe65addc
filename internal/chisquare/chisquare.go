/*
* Chi-square test module
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

// Package chisquare implements the chi-square independence and
// goodness-of-fit health tests of SP 800-90B §5.2 (C13), plus the
// binary-input conformance extension noted as an open question in
// spec.md §9.
package chisquare

import (
	"sort"

	"github.com/ajit1433/SP800-90B-EntropyAssessment/internal/numeric"
)

// minBinExpected is the "expected count >= 5" bin invariant of
// spec.md §3's BinSet.
const minBinExpected = 5.0

// Result is the outcome of a single chi-square test.
type Result struct {
	Statistic float64
	DF        int
	Cutoff    float64
	Pass      bool
}

func finalize(statistic float64, df int) Result {
	cutoff := numeric.ChiSquareCutoff(df)
	return Result{Statistic: statistic, DF: df, Cutoff: cutoff, Pass: statistic <= cutoff}
}

// key is a generic bin key: either a single symbol (goodness-of-fit) or
// an ordered pair of symbols (independence).
type key struct{ a, b int }

// bin is one accumulated bin: its expected count and member keys.
type bin struct {
	expected float64
	members  []key
}

// buildBins implements the exact bin-construction procedure from
// original_source/cpp/chi_square_tests.h: sort candidates ascending by
// expected count, greedily accumulate into the current bin until its
// running expected total reaches minBinExpected, then open a new bin;
// afterwards, if the last bin's total is still below minBinExpected,
// merge it into the second-to-last bin.
func buildBins(expected map[key]float64) []bin {
	type cand struct {
		k key
		e float64
	}
	cands := make([]cand, 0, len(expected))
	for k, e := range expected {
		cands = append(cands, cand{k, e})
	}
	sort.Slice(cands, func(i, j int) bool { return cands[i].e < cands[j].e })

	var bins []bin
	for _, c := range cands {
		if len(bins) == 0 || bins[len(bins)-1].expected >= minBinExpected {
			bins = append(bins, bin{expected: c.e, members: []key{c.k}})
			continue
		}
		last := &bins[len(bins)-1]
		last.expected += c.e
		last.members = append(last.members, c.k)
	}
	if len(bins) >= 2 && bins[len(bins)-1].expected < minBinExpected {
		last := bins[len(bins)-1]
		bins = bins[:len(bins)-1]
		prev := &bins[len(bins)-1]
		prev.expected += last.expected
		prev.members = append(prev.members, last.members...)
	}
	return bins
}

// Independence implements the §5.2.1 independence test over literal
// symbols. Returns (Result{}, false) for binary alphabets, matching the
// reference implementation's empty binary_chi_square_independence stub
// (spec.md §9 open question, option (a)).
func Independence(symbols []byte, alphSize int) (Result, bool) {
	if alphSize <= 2 {
		return Result{}, false
	}
	n := len(symbols)
	if n < 2 {
		return Result{}, false
	}

	p := make([]float64, alphSize)
	for _, s := range symbols {
		p[s]++
	}
	for i := range p {
		p[i] /= float64(n)
	}

	expected := map[key]float64{}
	for a := 0; a < alphSize; a++ {
		for b := 0; b < alphSize; b++ {
			expected[key{a, b}] = p[a] * p[b] * float64(n-1)
		}
	}
	bins := buildBins(expected)

	observed := map[key]int{}
	for i := 0; i < n-1; i++ {
		observed[key{int(symbols[i]), int(symbols[i+1])}]++
	}

	var t float64
	for _, b := range bins {
		var o float64
		for _, m := range b.members {
			o += float64(observed[m])
		}
		t += (o - b.expected) * (o - b.expected) / b.expected
	}
	return finalize(t, len(bins)-1), true
}

// GoodnessOfFit implements the §5.2.2 goodness-of-fit test: splits the
// sequence into 10 equal subsets and compares each subset's observed
// per-symbol counts against its expected share of the symbol's total
// count. Returns (Result{}, false) for binary alphabets (same stub
// parity as Independence).
func GoodnessOfFit(symbols []byte, alphSize int) (Result, bool) {
	if alphSize <= 2 {
		return Result{}, false
	}
	n := len(symbols)
	const subsets = 10
	sublen := n / subsets
	if sublen == 0 {
		return Result{}, false
	}

	total := make([]float64, alphSize)
	for _, s := range symbols[:sublen*subsets] {
		total[s]++
	}
	expected := map[key]float64{}
	for s := 0; s < alphSize; s++ {
		expected[key{s, 0}] = total[s] / float64(subsets)
	}
	bins := buildBins(expected)

	// Map each symbol to the bin index it belongs to.
	symToBin := make([]int, alphSize)
	for bi, b := range bins {
		for _, m := range b.members {
			symToBin[m.a] = bi
		}
	}

	var t float64
	for sub := 0; sub < subsets; sub++ {
		observedPerBin := make([]float64, len(bins))
		start := sub * sublen
		for _, s := range symbols[start : start+sublen] {
			observedPerBin[symToBin[s]]++
		}
		for bi, b := range bins {
			o := observedPerBin[bi]
			t += (o - b.expected) * (o - b.expected) / b.expected
		}
	}
	return finalize(t, subsets*(len(bins)-1)), true
}

// IndependenceBinary is the §9 open-question conformance extension (b):
// a 4-cell contingency table over {0,1}x{0,1} pairs for binary
// alphabets.
func IndependenceBinary(bsymbols []byte) (Result, bool) {
	n := len(bsymbols)
	if n < 2 {
		return Result{}, false
	}
	p := make([]float64, 2)
	for _, s := range bsymbols {
		p[s]++
	}
	p[0] /= float64(n)
	p[1] /= float64(n)

	expected := map[key]float64{}
	for a := 0; a < 2; a++ {
		for b := 0; b < 2; b++ {
			expected[key{a, b}] = p[a] * p[b] * float64(n-1)
		}
	}
	bins := buildBins(expected)

	observed := map[key]int{}
	for i := 0; i < n-1; i++ {
		observed[key{int(bsymbols[i]), int(bsymbols[i+1])}]++
	}

	var t float64
	for _, b := range bins {
		var o float64
		for _, m := range b.members {
			o += float64(observed[m])
		}
		t += (o - b.expected) * (o - b.expected) / b.expected
	}
	return finalize(t, len(bins)-1), true
}

// GoodnessOfFitBinary is the binary-alphabet analogue of GoodnessOfFit.
func GoodnessOfFitBinary(bsymbols []byte) (Result, bool) {
	n := len(bsymbols)
	const subsets = 10
	sublen := n / subsets
	if sublen == 0 {
		return Result{}, false
	}

	total := make([]float64, 2)
	for _, s := range bsymbols[:sublen*subsets] {
		total[s]++
	}
	expected := map[key]float64{
		{0, 0}: total[0] / float64(subsets),
		{1, 0}: total[1] / float64(subsets),
	}
	bins := buildBins(expected)

	symToBin := make([]int, 2)
	for bi, b := range bins {
		for _, m := range b.members {
			symToBin[m.a] = bi
		}
	}

	var t float64
	for sub := 0; sub < subsets; sub++ {
		observedPerBin := make([]float64, len(bins))
		start := sub * sublen
		for _, s := range bsymbols[start : start+sublen] {
			observedPerBin[symToBin[s]]++
		}
		for bi, b := range bins {
			o := observedPerBin[bi]
			t += (o - b.expected) * (o - b.expected) / b.expected
		}
	}
	return finalize(t, subsets*(len(bins)-1)), true
}
