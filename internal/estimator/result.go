/*
* Estimator result module
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

// Package estimator holds the shared result type, the predictor
// framework (C8), and the ten SP 800-90B §6.3 entropy estimators
// (C3-C7, C9-C12).
package estimator

// Result is the entropy-estimate sum type replacing the reference
// implementation's "-1 means absent" sentinel (spec.md §9). A Result is
// either a min-entropy value in bits, or absent — meaning the estimator
// was inapplicable or its root-finding step failed to converge
// (spec.md §4.14, §7: EstimatorInapplicable / NumericNonConvergence are
// both folded into "absent" here, since neither is an error the driver
// should surface).
type Result struct {
	entropy float64
	ok      bool
}

// Entropy wraps a produced min-entropy estimate, in bits per symbol.
func Entropy(bits float64) Result {
	return Result{entropy: bits, ok: true}
}

// Absent represents "no value produced."
func Absent() Result {
	return Result{}
}

// Get returns the entropy value and whether it is present. Callers must
// check ok before using bits.
func (r Result) Get() (bits float64, ok bool) {
	return r.entropy, r.ok
}

// FoldMin folds r into the running minimum acc, ignoring r if absent.
// Mirrors the driver's "treat absent as not included in the min(...)
// reduction" rule (spec.md §4.14).
func FoldMin(acc float64, r Result) float64 {
	bits, ok := r.Get()
	if !ok {
		return acc
	}
	if bits < acc {
		return bits
	}
	return acc
}
