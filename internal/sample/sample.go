/*
* Sample buffer module
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

// Package sample implements the symbol model and bit-expansion described
// in SP 800-90B §6.3: translating a raw byte stream into the literal and
// bitstring forms consumed by the entropy estimators.
package sample

import (
	"bufio"
	"io"
	"os"

	"github.com/pkg/errors"
)

// MinSize is the minimum number of samples a buffer must carry (NIST's
// nominal 10^6).
const MinSize = 1_000_000

var (
	// ErrInputUnreadable is returned when the backing file or stream
	// cannot be opened or read.
	ErrInputUnreadable = errors.New("sample: input unreadable")
	// ErrInsufficientSamples is returned when fewer than MinSize samples
	// were read.
	ErrInsufficientSamples = errors.New("sample: insufficient samples")
	// ErrDegenerateAlphabet is returned when the input contains a single
	// distinct value (zero entropy, trivially).
	ErrDegenerateAlphabet = errors.New("sample: degenerate alphabet")
)

// Buffer is a finite, immutable, ordered sequence of unsigned integers in
// [0, 2^WordSize), plus its MSB-first bit expansion. Once constructed it
// is never mutated.
type Buffer struct {
	Len      int
	WordSize int
	AlphSize int
	Symbols  []byte // literal form, one byte per sample, values < AlphSize
	BSymbols []byte // bitstring form, one byte per bit, values in {0,1}
}

// Blen returns the bitstring length, Len * WordSize.
func (b *Buffer) Blen() int { return len(b.BSymbols) }

// Load reads the entirety of path as a raw byte file, one sample per
// byte, right-aligned in its low wordSize bits. wordSize == 0 means
// infer it from the data (the smallest w in 1..8 such that every byte's
// top 8-w bits are clear).
func Load(path string, wordSize int) (*Buffer, error) {
	return LoadSubset(path, wordSize, -1, 0)
}

// LoadSubset is like Load but, when size > 0, reads only the `index`'th
// slice of `size` samples (§6's `subset = (index, size)` option).
func LoadSubset(path string, wordSize, index, size int) (*Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(ErrInputUnreadable, err.Error())
	}
	defer f.Close()

	var raw []byte
	if size > 0 && index >= 0 {
		if _, err := f.Seek(int64(index)*int64(size), io.SeekStart); err != nil {
			return nil, errors.Wrap(ErrInputUnreadable, err.Error())
		}
		raw = make([]byte, size)
		n, err := io.ReadFull(bufio.NewReaderSize(f, 1<<20), raw)
		if err != nil && err != io.ErrUnexpectedEOF {
			return nil, errors.Wrap(ErrInputUnreadable, err.Error())
		}
		raw = raw[:n]
	} else {
		r := bufio.NewReaderSize(f, 1<<20)
		raw, err = io.ReadAll(r)
		if err != nil {
			return nil, errors.Wrap(ErrInputUnreadable, err.Error())
		}
	}

	return FromBytes(raw, wordSize)
}

// FromBytes builds a Buffer directly from an in-memory byte slice,
// applying word-size inference, alphabet densification and bit
// expansion exactly as Load does for a file.
func FromBytes(raw []byte, wordSize int) (*Buffer, error) {
	if len(raw) < MinSize {
		return nil, errors.Wrapf(ErrInsufficientSamples, "got %d, need %d", len(raw), MinSize)
	}

	if wordSize == 0 {
		wordSize = inferWordSize(raw)
	}
	mask := byte((1 << wordSize) - 1)

	translated, alphSize := densify(raw, mask)
	if alphSize <= 1 {
		return nil, ErrDegenerateAlphabet
	}

	b := &Buffer{
		Len:      len(translated),
		WordSize: wordSize,
		AlphSize: alphSize,
		Symbols:  translated,
		BSymbols: expandBits(raw, mask, wordSize),
	}
	return b, nil
}

// inferWordSize finds the smallest w in 1..8 such that every input byte's
// top 8-w bits are clear.
func inferWordSize(raw []byte) int {
	var union byte
	for _, b := range raw {
		union |= b
	}
	w := 1
	for (1 << w) <= int(union) {
		w++
	}
	if w > 8 {
		w = 8
	}
	return w
}

// densify remaps the masked byte values to a dense alphabet [0, alphSize)
// while preserving the numeric order of the values, as required when the
// observed distinct values form a proper subset of [0, 2^w).
func densify(raw []byte, mask byte) ([]byte, int) {
	var seen [256]bool
	for _, b := range raw {
		seen[b&mask] = true
	}
	var remap [256]byte
	next := 0
	for v := 0; v < 256; v++ {
		if seen[v] {
			remap[v] = byte(next)
			next++
		}
	}
	out := make([]byte, len(raw))
	for i, b := range raw {
		out[i] = remap[b&mask]
	}
	return out, next
}

// expandBits emits, for each masked sample, its wordSize bits MSB-first.
func expandBits(raw []byte, mask byte, wordSize int) []byte {
	out := make([]byte, len(raw)*wordSize)
	idx := 0
	for _, b := range raw {
		v := b & mask
		for bit := wordSize - 1; bit >= 0; bit-- {
			out[idx] = (v >> uint(bit)) & 1
			idx++
		}
	}
	return out
}

// Repack reverses bit expansion: re-packing bsymbols MSB-first into
// wordSize-bit groups reproduces the (non-densified) symbol values. Used
// by the round-trip invariant test (spec.md §8, invariant 6).
func Repack(bsymbols []byte, wordSize int) []byte {
	n := len(bsymbols) / wordSize
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		var v byte
		for bit := 0; bit < wordSize; bit++ {
			v = (v << 1) | bsymbols[i*wordSize+bit]
		}
		out[i] = v
	}
	return out
}
