/*
* Lag test module
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

// maxLag is the number of fixed-lag predictors, C10 (spec.md §4.10).
const maxLag = 128

// lagPredictor predicts seq[i] := seq[i-d] for a fixed lag d.
type lagPredictor struct {
	seq []byte
	d   int
}

func (p *lagPredictor) StartIndex() int { return maxLag }

func (p *lagPredictor) Predict(i int) (byte, bool) {
	if i-p.d < 0 {
		return 0, false
	}
	return p.seq[i-p.d], true
}

func (p *lagPredictor) Update(i int, actual byte) {}

// Lag implements C10: 128 fixed-lag predictors starting at index 128,
// reporting the worst-case (lowest-entropy) estimate.
func Lag(seq []byte, alphSize int) Result {
	worst := Absent()
	for d := 1; d <= maxLag; d++ {
		r := RunPredictor(seq, alphSize, &lagPredictor{seq: seq, d: d})
		worst = worseOf(worst, r)
	}
	return worst
}
