/*
* Report module
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

package driver

import "github.com/ajit1433/SP800-90B-EntropyAssessment/internal/chisquare"

// EstimatorValue is one canonical-order logged estimator outcome.
type EstimatorValue struct {
	Name    string
	Domain  string // "Literal" or "Bitstring"
	Entropy float64
	Present bool
}

// Report is the outcome of analyzing a single sample.Buffer: one value
// per estimator in canonical order, the chi-square health tests, and
// the final assessed min-entropy (spec.md §6's "Output").
type Report struct {
	WordSize      int
	AlphSize      int
	Estimators    []EstimatorValue
	HOriginal     float64
	HBitstring    float64
	HAssessed     float64
	Independence  *chisquare.Result
	GoodnessOfFit *chisquare.Result
	Diagnostics   *Diagnostics
}

// Diagnostics holds the optional verbose-only supplemental checks of
// SPEC_FULL.md §11.5. Never influences HAssessed.
type Diagnostics struct {
	ShannonEntropy    float64
	KSStatistic       float64
	KSMaxDiffPosition int
	Autocorrelation   float64
}
