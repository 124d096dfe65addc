/*
* Diagnostics module
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

// Package diagnostics implements the verbose-only supplemental checks
// described in SPEC_FULL.md §11.5: order-0 Shannon entropy, a
// Kolmogorov-Smirnov goodness-of-fit-to-uniform check, and mean lag
// autocorrelation. None of these feed the min-entropy reduction; they
// are reported alongside it as sanity diagnostics, in the spirit of the
// teacher's entropy.go/kstest.go/autocorr.go modules.
package diagnostics

import (
	"math"

	"github.com/montanaflynn/stats"
)

// ShannonEntropy computes the order-0 empirical Shannon entropy of
// symbols over an alphSize-symbol alphabet, in bits per symbol. It is
// always >= the MCV min-entropy estimate for the same distribution, so
// it is reported as a diagnostic upper bound, not a substitute.
func ShannonEntropy(symbols []byte, alphSize int) float64 {
	n := len(symbols)
	if n == 0 {
		return 0
	}
	counts := make([]int, alphSize)
	for _, s := range symbols {
		counts[s]++
	}
	var h float64
	for _, c := range counts {
		if c == 0 {
			continue
		}
		p := float64(c) / float64(n)
		h -= p * math.Log2(p)
	}
	return h
}

// KSResult is the outcome of the Kolmogorov-Smirnov diagnostic.
type KSResult struct {
	Statistic       float64
	MaxDiffPosition int
	Critical001     float64
	Critical005     float64
}

// KolmogorovSmirnov computes the one-sample KS statistic of the
// empirical symbol distribution against the uniform distribution over
// [0, alphSize), generalizing the teacher's hardcoded 256-symbol case.
func KolmogorovSmirnov(symbols []byte, alphSize int) KSResult {
	n := len(symbols)
	counts := make([]int, alphSize)
	for _, s := range symbols {
		counts[s]++
	}

	var empirical, theoretical float64
	stat, pos := 0.0, 0
	for i := 0; i < alphSize; i++ {
		empirical += float64(counts[i]) / float64(n)
		theoretical += 1.0 / float64(alphSize)
		diff := math.Abs(empirical - theoretical)
		if diff > stat {
			stat, pos = diff, i
		}
	}

	return KSResult{
		Statistic:       stat,
		MaxDiffPosition: pos,
		Critical001:     1.63 / math.Sqrt(float64(n)),
		Critical005:     1.36 / math.Sqrt(float64(n)),
	}
}

// Autocorrelation computes the standard deviation, across fixed-size
// blocks, of the mean absolute lag-1..50 autocorrelation within each
// block — exactly the statistic autocorr.go computes, but over an
// in-memory sequence rather than re-reading file blocks from disk.
func Autocorrelation(values []byte, blockSize int) (float64, error) {
	var perBlock []float64
	for start := 0; start+blockSize <= len(values); start += blockSize {
		block := values[start : start+blockSize]
		mean := meanByte(block)
		centered := make([]float64, len(block))
		for i, v := range block {
			centered[i] = float64(v) - mean
		}

		maxLag := 50
		if len(centered) < maxLag {
			maxLag = len(centered)
		}
		var lagCorrs []float64
		for lag := 1; lag <= maxLag; lag++ {
			c, err := stats.Correlation(centered[lag:], centered[:len(centered)-lag])
			if err != nil {
				continue
			}
			lagCorrs = append(lagCorrs, math.Abs(c))
		}
		if len(lagCorrs) == 0 {
			continue
		}
		perBlock = append(perBlock, meanFloat(lagCorrs))
	}
	if len(perBlock) < 2 {
		return 0, nil
	}
	return stats.StandardDeviation(perBlock)
}

func meanByte(values []byte) float64 {
	var sum float64
	for _, v := range values {
		sum += float64(v)
	}
	return sum / float64(len(values))
}

func meanFloat(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
