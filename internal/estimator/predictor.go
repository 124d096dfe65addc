/*
* Predictor framework module
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
)

// Predictor is the shared interface implemented by MultiMCW, Lag,
// MultiMMC and LZ78Y (C9-C12). A predictor owns its own window/context
// state; RunPredictor drives it across a sequence and folds the
// run-length bookkeeping described in spec.md §4.8 into an entropy
// estimate.
type Predictor interface {
	// StartIndex is the first index at which the predictor can emit a
	// prediction (e.g. window size for MultiMCW, 128 for every Lag
	// predictor, context order for MultiMMC, 1 for LZ78Y).
	StartIndex() int
	// Predict returns the predictor's guess for seq[i], given everything
	// observed at indices < i. ok is false if the predictor has not
	// accumulated enough context to guess yet (it still counts as an
	// incorrect prediction in that case, per the reference behavior of
	// scoring "no prediction" as wrong).
	Predict(i int) (guess byte, ok bool)
	// Update folds the true value observed at seq[i] into the
	// predictor's internal state.
	Update(i int, actual byte)
}

// RunPredictor drives p across seq (alphabet size k), accumulating the
// correct-prediction count and longest correct run, then converts that
// into a min-entropy estimate per spec.md §4.8.
func RunPredictor(seq []byte, k int, p Predictor) Result {
	start := p.StartIndex()
	if start >= len(seq) {
		return Absent()
	}

	var correct, run, maxRun int
	for i := start; i < len(seq); i++ {
		guess, ok := p.Predict(i)
		if ok && guess == seq[i] {
			correct++
			run++
			if run > maxRun {
				maxRun = run
			}
		} else {
			run = 0
		}
		p.Update(i, seq[i])
	}

	nPrime := len(seq) - start
	if nPrime <= 1 {
		return Absent()
	}

	return Bound(correct, maxRun, nPrime, k)
}

// Bound converts (correct predictions, longest correct run, trial count,
// alphabet size) into a min-entropy estimate via the global and local
// confidence bounds of spec.md §4.8, returning the more conservative
// (higher-probability, lower-entropy) of the two.
func Bound(correct, longestRun, nPrime, k int) Result {
	if nPrime <= 1 {
		return Absent()
	}
	phat := float64(correct) / float64(nPrime)
	pGlobal := phat + 2.576*math.Sqrt(phat*(1-phat)/float64(nPrime-1))
	if pGlobal > 1 {
		pGlobal = 1
	}

	pLocal, ok := localBound(longestRun, nPrime)
	if !ok {
		pLocal = 0
	}

	p := math.Max(pGlobal, pLocal)
	if p <= 0 {
		return Absent()
	}
	if p >= 1 {
		return Entropy(0)
	}

	maxEntropy := math.Log2(float64(k))
	h := -math.Log2(p)
	if h > maxEntropy {
		h = maxEntropy
	}
	if h < 0 {
		h = 0
	}
	return Entropy(h)
}

// localBound solves, via bisection, the "longest run" probability
// equation of SP 800-90B §6.3.7: the largest per-trial success
// probability q such that observing a run of length r+1 or more in
// nPrime Bernoulli(q) trials has probability at most 0.01. Using the
// large-nPrime approximation that the probability of the longest run
// being shorter than r+1 is (1 - q^(r+1))^(nPrime/(r+1)).
func localBound(longestRun, nPrime int) (float64, bool) {
	r1 := float64(longestRun + 1)
	f := func(q float64) float64 {
		return math.Pow(1-math.Pow(q, r1), float64(nPrime)/r1) - 0.99
	}
	return numeric.Bisect(f, 0, 1, 1e-9)
}
