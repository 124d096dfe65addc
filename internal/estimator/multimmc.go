/*
* MultiMMC test module
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
	lru "github.com/hashicorp/golang-lru/v2"
)

// multiMMCMaxOrder is the highest of the 16 Markov-with-counting orders
// 1..16, C11 (spec.md §4.11).
const multiMMCMaxOrder = 16

// multiMMCMapCap bounds each order's context->successor-frequency map,
// per spec.md §4.11's "implementation-defined ceiling... 10^6 entries is
// sufficient for 10^6-sample inputs."
const multiMMCMapCap = 1_000_000

// successorTable tracks, for one context, how many times each successor
// symbol has followed it and the step at which it was last seen (for
// tie-breaking in favor of the most recent successor).
type successorTable struct {
	counts   []int
	lastSeen []int
}

func newSuccessorTable(alph int) *successorTable {
	return &successorTable{counts: make([]int, alph), lastSeen: make([]int, alph)}
}

func (t *successorTable) best() (byte, bool) {
	bestCount, bestSeen, bestSym := -1, -1, byte(0)
	for s, c := range t.counts {
		if c == 0 {
			continue
		}
		if c > bestCount || (c == bestCount && t.lastSeen[s] > bestSeen) {
			bestSym, bestCount, bestSeen = byte(s), c, t.lastSeen[s]
		}
	}
	return bestSym, bestCount >= 0
}

func (t *successorTable) observe(sym byte, step int) {
	t.counts[sym]++
	t.lastSeen[sym] = step
}

// mmcPredictor is one order-D Markov-with-counting predictor: a bounded
// map from the preceding D-length context to a successorTable.
type mmcPredictor struct {
	order int
	alph  int
	seq   []byte
	cache *lru.Cache[string, *successorTable]
	step  int
}

func newMMCPredictor(order, alph int, seq []byte) *mmcPredictor {
	c, _ := lru.New[string, *successorTable](multiMMCMapCap)
	return &mmcPredictor{order: order, alph: alph, seq: seq, cache: c}
}

func (p *mmcPredictor) StartIndex() int { return p.order }

func (p *mmcPredictor) context(i int) string {
	return string(p.seq[i-p.order : i])
}

func (p *mmcPredictor) Predict(i int) (byte, bool) {
	table, ok := p.cache.Get(p.context(i))
	if !ok {
		return 0, false
	}
	return table.best()
}

func (p *mmcPredictor) Update(i int, actual byte) {
	ctx := p.context(i)
	table, ok := p.cache.Get(ctx)
	if !ok {
		table = newSuccessorTable(p.alph)
		p.cache.Add(ctx, table)
	}
	table.observe(actual, p.step)
	p.step++
}

// MultiMMC implements C11: 16 predictors of orders 1..16, reporting the
// worst-case estimate.
func MultiMMC(seq []byte, alphSize int) Result {
	worst := Absent()
	for order := 1; order <= multiMMCMaxOrder; order++ {
		if order >= len(seq) {
			continue
		}
		r := RunPredictor(seq, alphSize, newMMCPredictor(order, alphSize, seq))
		worst = worseOf(worst, r)
	}
	return worst
}
