/*
* Numeric utilities module
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

// Package numeric provides the general-purpose root finder and the
// chi-square critical-value table shared by the Collision, Compression
// and predictor estimators (C14).
package numeric

import "math"

// Bisect finds p in [lo, hi] such that f(p) == 0, assuming f is monotone
// on that interval, to within tol. Returns ok == false if f does not
// change sign across [lo, hi] (numeric non-convergence, per spec.md
// §4.14 / §7's NumericNonConvergence).
func Bisect(f func(float64) float64, lo, hi, tol float64) (float64, bool) {
	flo, fhi := f(lo), f(hi)
	if flo == 0 {
		return lo, true
	}
	if fhi == 0 {
		return hi, true
	}
	if (flo > 0) == (fhi > 0) {
		return 0, false
	}
	for hi-lo > tol {
		mid := lo + (hi-lo)/2
		fmid := f(mid)
		if fmid == 0 {
			return mid, true
		}
		if (fmid > 0) == (flo > 0) {
			lo, flo = mid, fmid
		} else {
			hi, fhi = mid, fmid
		}
	}
	return lo + (hi-lo)/2, true
}

// chiSquareCriticalValues holds the alpha=0.001 critical values for
// degrees of freedom 1..100, taken verbatim from the NIST SP 800-90B
// reference implementation's critical_value table.
var chiSquareCriticalValues = [100]float64{
	10.828, 13.816, 16.266, 18.467, 20.515, 22.458, 24.322, 26.125, 27.877, 29.588,
	31.264, 32.91, 34.528, 36.123, 37.697, 39.252, 40.79, 42.312, 43.82, 45.315,
	46.797, 48.268, 49.728, 51.179, 52.62, 54.052, 55.476, 56.892, 58.301, 59.703,
	61.098, 62.487, 63.87, 65.247, 66.619, 67.985, 69.347, 70.703, 72.055, 73.402,
	74.745, 76.084, 77.419, 78.75, 80.077, 81.4, 82.72, 84.037, 85.351, 86.661,
	87.968, 89.272, 90.573, 91.872, 93.168, 94.461, 95.751, 97.039, 98.324, 99.607,
	100.888, 102.166, 103.442, 104.716, 105.988, 107.258, 108.526, 109.791, 111.055, 112.317,
	113.577, 114.835, 116.092, 117.346, 118.599, 119.85, 121.1, 122.348, 123.594, 124.839,
	126.083, 127.324, 128.565, 129.804, 131.041, 132.277, 133.512, 134.746, 135.978, 137.208,
	138.438, 139.666, 140.893, 142.119, 143.344, 144.567, 145.789, 147.01, 148.23, 149.449,
}

// ChiSquareCutoff returns the alpha=0.001 critical value for df degrees
// of freedom. For df <= 100 it is a table lookup; for df > 100 it uses
// the Wilson-Hilferty cube-root normal approximation.
func ChiSquareCutoff(df int) float64 {
	if df >= 1 && df <= len(chiSquareCriticalValues) {
		return chiSquareCriticalValues[df-1]
	}
	return wilsonHilferty(df)
}

// wilsonHilferty approximates the chi-square critical value at
// alpha=0.001 (z_alpha = 3.090) for df beyond the tabulated range, with
// the small-sample correction h_v the reference implementation applies
// (h60 = 0.0048, scaled by 60/df) to keep the approximation within 1% of
// the true critical value near the table boundary.
func wilsonHilferty(df int) float64 {
	const zAlpha = 3.090
	const h60 = 0.0048
	d := float64(df)
	hv := (60.0 / d) * h60
	term := 2.0 / (9.0 * d)
	return d * math.Pow(1.0-term+(zAlpha-hv)*math.Sqrt(term), 3)
}
