/*
* MultiMCW test module
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

// multiMCWWindows are the four window sizes of C9 (spec.md §4.9).
var multiMCWWindows = [4]int{63, 255, 1023, 4095}

// mcwPredictor is a single most-common-in-window predictor: a ring
// buffer of the last `window` symbols plus a running per-symbol count,
// so the most common symbol (tie -> most recent) can be read off in
// O(alphSize) per step. A plain array is used rather than a map because
// the alphabet is bounded by 256 and the window contents must be
// inspected as a dense histogram on every step.
type mcwPredictor struct {
	window int
	alph   int
	buf    []byte
	counts []int
	// lastSeen[s] is the most recent buffer position (monotonic step
	// counter) at which symbol s was observed, used to break count ties
	// in favor of the most recently seen symbol (spec.md §4.9).
	lastSeen []int
	pos      int
	filled   int
	step     int
}

func newMCWPredictor(window, alph int) *mcwPredictor {
	return &mcwPredictor{
		window:   window,
		alph:     alph,
		buf:      make([]byte, window),
		counts:   make([]int, alph),
		lastSeen: make([]int, alph),
	}
}

func (m *mcwPredictor) StartIndex() int { return m.window }

func (m *mcwPredictor) Predict(i int) (byte, bool) {
	if m.filled < m.window {
		return 0, false
	}
	best := byte(0)
	bestCount := -1
	bestSeen := -1
	for s := 0; s < m.alph; s++ {
		c := m.counts[s]
		if c == 0 {
			continue
		}
		if c > bestCount || (c == bestCount && m.lastSeen[s] > bestSeen) {
			best, bestCount, bestSeen = byte(s), c, m.lastSeen[s]
		}
	}
	if bestCount < 0 {
		return 0, false
	}
	return best, true
}

func (m *mcwPredictor) Update(i int, actual byte) {
	if m.filled == m.window {
		old := m.buf[m.pos]
		m.counts[old]--
	} else {
		m.filled++
	}
	m.buf[m.pos] = actual
	m.counts[actual]++
	m.lastSeen[actual] = m.step
	m.step++
	m.pos = (m.pos + 1) % m.window
}

// MultiMCW implements C9: runs the four window-size predictors and
// reports the worst (most predictable -> lowest entropy) estimate.
func MultiMCW(seq []byte, alphSize int) Result {
	worst := Absent()
	for _, w := range multiMCWWindows {
		if w >= len(seq) {
			continue
		}
		p := newMCWPredictor(w, alphSize)
		// Fill the window with seq[0:w) so the first prediction is made
		// at StartIndex.
		for i := 0; i < w; i++ {
			p.Update(i, seq[i])
		}
		r := RunPredictor(seq, alphSize, p)
		worst = worseOf(worst, r)
	}
	return worst
}

// worseOf returns the Result with the lower entropy (more conservative
// estimate), treating Absent as "no opinion."
func worseOf(a, b Result) Result {
	av, aok := a.Get()
	bv, bok := b.Get()
	switch {
	case !aok:
		return b
	case !bok:
		return a
	case bv < av:
		return b
	default:
		return a
	}
}
