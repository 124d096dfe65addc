/*
* LZ78Y test module
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

// lz78yMaxContext and lz78yDictCap are the context-length ceiling and
// dictionary-size freeze point of C12 (spec.md §4.12).
const (
	lz78yMaxContext = 32
	lz78yDictCap    = 65536
)

// lz78yPredictor maintains a single bounded dictionary mapping contexts
// of length 1..32 to successor-frequency tables. Once the dictionary
// reaches lz78yDictCap entries it is frozen: further Update calls stop
// adding new contexts, but existing entries keep being refined and
// predictions keep being served.
type lz78yPredictor struct {
	alph   int
	seq    []byte
	dict   *lru.Cache[string, *successorTable]
	frozen bool
	step   int
}

func newLZ78YPredictor(alph int, seq []byte) *lz78yPredictor {
	c, _ := lru.New[string, *successorTable](lz78yDictCap)
	return &lz78yPredictor{alph: alph, seq: seq, dict: c}
}

func (p *lz78yPredictor) StartIndex() int { return 1 }

// longestContext returns the longest context symbols[i-L:i), L in
// 1..lz78yMaxContext, that exists in the dictionary with at least one
// successor observation, preferring the longest match.
func (p *lz78yPredictor) longestContext(i int) (string, *successorTable, bool) {
	maxL := lz78yMaxContext
	if i < maxL {
		maxL = i
	}
	for l := maxL; l >= 1; l-- {
		ctx := string(p.seq[i-l : i])
		if table, ok := p.dict.Get(ctx); ok {
			return ctx, table, true
		}
	}
	return "", nil, false
}

func (p *lz78yPredictor) Predict(i int) (byte, bool) {
	_, table, ok := p.longestContext(i)
	if !ok {
		return 0, false
	}
	return table.best()
}

func (p *lz78yPredictor) Update(i int, actual byte) {
	maxL := lz78yMaxContext
	if i < maxL {
		maxL = i
	}
	for l := 1; l <= maxL; l++ {
		ctx := string(p.seq[i-l : i])
		table, ok := p.dict.Get(ctx)
		if !ok {
			if p.dict.Len() >= lz78yDictCap {
				p.frozen = true
				continue
			}
			table = newSuccessorTable(p.alph)
			p.dict.Add(ctx, table)
		}
		table.observe(actual, p.step)
	}
	p.step++
}

// LZ78Y implements C12.
func LZ78Y(seq []byte, alphSize int) Result {
	if len(seq) < 2 {
		return Absent()
	}
	return RunPredictor(seq, alphSize, newLZ78YPredictor(alphSize, seq))
}
