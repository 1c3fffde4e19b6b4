//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package transpositiontable

import (
	. "github.com/corvine/kestrel/internal/types"
)

// TtEntrySize is the in-memory footprint of one TtEntry, used to turn a
// requested megabyte budget into a slot count.
const TtEntrySize = 16

// bit widths of the fields packed into TtEntry.meta
const (
	generationBits = 3
	boundBits      = 2
	depthBits      = 7

	generationMask uint16 = (1 << generationBits) - 1
	boundMask      uint16 = ((1 << boundBits) - 1) << generationBits
	boundShift            = generationBits
	depthMask      uint16 = ((1 << depthBits) - 1) << (generationBits + boundBits)
	depthShift            = generationBits + boundBits
)

// TtEntry is one transposition table slot: a 64-bit Zobrist key plus 8
// bytes of payload, packed tightly so TtEntrySize stays at 16 bytes
// instead of ballooning to 24+ with Go's default struct alignment.
//
//	key   - full Zobrist key, used to detect hash collisions
//	move  - best move found for this position, low 16 bits of a Move
//	eval  - static evaluation at the time this entry was stored
//	value - search value (mate-distance adjusted by the caller)
//	meta  - generation(3) | bound(2) | depth(7), packed low to high
type TtEntry struct {
	key   Key
	move  uint16
	eval  int16
	value int16
	meta  uint16
}

// refresh ages an entry down toward generation 0 on every successful
// probe; an entry nobody has looked at in a while is the first to be
// evicted by store when its slot collides with a new key.
func (e *TtEntry) refresh() {
	if e.Age() > 0 {
		e.meta--
	}
}

// grow is the inverse of refresh, called once per search iteration over
// the whole table so stale entries from prior searches drift back up.
func (e *TtEntry) grow() {
	if e.Age() < (1<<generationBits)-1 {
		e.meta++
	}
}

// Key returns the full Zobrist key stored with this entry.
func (e *TtEntry) Key() Key { return e.key }

// Move returns the best move recorded for this position, without any
// sort value attached.
func (e *TtEntry) Move() Move { return Move(e.move) }

// Value returns the search value recorded for this position.
func (e *TtEntry) Value() Value { return Value(e.value) }

// Eval returns the static evaluation recorded alongside the search value.
func (e *TtEntry) Eval() Value { return Value(e.eval) }

// Depth returns the search depth this entry was stored at.
func (e *TtEntry) Depth() int8 {
	return int8((e.meta & depthMask) >> depthShift)
}

// Age returns how many search generations have passed since this entry
// was last refreshed by a successful probe.
func (e *TtEntry) Age() int8 {
	return int8(e.meta & generationMask)
}

// Vtype reports whether Value is exact or a bound (alpha/beta cutoff).
func (e *TtEntry) Vtype() ValueType {
	return ValueType((e.meta & boundMask) >> boundShift)
}

func packMeta(depth int8, vtype ValueType, age uint16) uint16 {
	return uint16(depth)<<depthShift | uint16(vtype)<<boundShift | age
}
