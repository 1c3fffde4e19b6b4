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

// Package transpositiontable implements the search's position cache: a
// flat, open-addressed (one slot per Zobrist hash, no chaining) table of
// TtEntry records. TtTable itself does no locking - callers must not call
// Resize or Clear while a search thread is still probing or storing.
package transpositiontable

import (
	"math"
	"sync"
	"time"
	"unsafe"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	myLogging "github.com/corvine/kestrel/internal/logging"
	. "github.com/corvine/kestrel/internal/types"
	"github.com/corvine/kestrel/internal/util"
)

var out = message.NewPrinter(language.German)

// MaxSizeInMB caps how large a table a UCI "setoption Hash" request can
// request, regardless of how much memory the host actually has.
const MaxSizeInMB = 65_536

// TtTable is the transposition table. Construct with NewTtTable; the zero
// value is not usable since it has no backing storage.
type TtTable struct {
	log *logging.Logger

	entries   []TtEntry
	bytes     uint64
	indexMask uint64
	capacity  uint64
	filled    uint64

	Stats Counters
}

// Counters tracks how the table has been used since the last Clear, for
// the UCI "info" hashfull-adjacent diagnostics and for tests.
type Counters struct {
	stores      uint64
	collisions  uint64
	overwrites  uint64
	refreshes   uint64
	probes      uint64
	hits        uint64
	misses      uint64
}

// NewTtTable allocates a table sized to fit within sizeInMByte megabytes,
// rounded down to the nearest power of two entry count so that indexing
// can use a bit mask instead of a modulo.
func NewTtTable(sizeInMByte int) *TtTable {
	tt := &TtTable{log: myLogging.GetLog()}
	tt.Resize(sizeInMByte)
	return tt
}

// Resize reallocates the table for a new megabyte budget. All existing
// entries are lost. Not safe to call concurrently with Probe/Put.
func (tt *TtTable) Resize(sizeInMByte int) {
	if sizeInMByte > MaxSizeInMB {
		tt.log.Error(out.Sprintf("Requested size for TT of %d MB reduced to max of %d MB", sizeInMByte, MaxSizeInMB))
		sizeInMByte = MaxSizeInMB
	}

	tt.bytes = uint64(sizeInMByte) * MB
	tt.capacity = 1 << uint64(math.Floor(math.Log2(float64(tt.bytes/TtEntrySize))))
	tt.indexMask = tt.capacity - 1

	if tt.bytes == 0 {
		tt.capacity = 0
	}
	tt.bytes = tt.capacity * TtEntrySize

	tt.entries = make([]TtEntry, tt.capacity)
	tt.filled = 0
	tt.Stats = Counters{}

	tt.log.Info(out.Sprintf("TT Size %d MByte, Capacity %d entries (size=%dByte) (Requested were %d MBytes)",
		tt.bytes/MB, tt.capacity, unsafe.Sizeof(TtEntry{}), sizeInMByte))
	tt.log.Debug(util.MemStat())
}

// index maps a Zobrist key onto a slot in entries.
func (tt *TtTable) index(key Key) uint64 {
	return uint64(key) & tt.indexMask
}

// GetEntry returns the slot for key if it currently holds that exact key,
// or nil otherwise. Unlike Probe this does not touch Stats or age the
// entry - it is meant for read-only inspection such as PV extraction.
func (tt *TtTable) GetEntry(key Key) *TtEntry {
	e := &tt.entries[tt.index(key)]
	if e.key != key {
		return nil
	}
	return e
}

// Probe looks up key, counting the lookup as a hit or miss. A hit
// refreshes the entry, pushing back the generation at which it becomes
// eligible for eviction.
func (tt *TtTable) Probe(key Key) *TtEntry {
	tt.Stats.probes++
	e := &tt.entries[tt.index(key)]
	if e.key != key {
		tt.Stats.misses++
		return nil
	}
	e.refresh()
	tt.Stats.hits++
	return e
}

// Put records a search result for key. Three cases:
//
//   - the slot is empty: the entry is simply written.
//   - the slot holds a different key: this is a hash collision, and the
//     existing entry is replaced only when the new one is at least as
//     deep (replaceCollision).
//   - the slot already holds this exact key: the entry is refreshed in
//     place, keeping whichever fields the caller didn't explicitly
//     invalidate (MoveNone / ValueNA).
func (tt *TtTable) Put(key Key, move Move, depth int8, value Value, vtype ValueType, eval Value) {
	if tt.capacity == 0 {
		return
	}

	e := &tt.entries[tt.index(key)]
	tt.Stats.stores++

	switch {
	case e.key == 0:
		tt.filled++
		tt.write(e, key, move, depth, value, vtype, eval)
	case e.key != key:
		tt.Stats.collisions++
		if replaceCollision(depth, e) {
			tt.Stats.overwrites++
			tt.write(e, key, move, depth, value, vtype, eval)
		}
	default:
		tt.Stats.refreshes++
		tt.update(e, move, depth, value, vtype, eval)
	}
}

// replaceCollision decides whether a colliding slot should be evicted in
// favor of a new search result: only when the new depth is greater than
// or equal to the resident entry's depth (depth-preferred replacement).
func replaceCollision(newDepth int8, resident *TtEntry) bool {
	return newDepth >= resident.Depth()
}

func (tt *TtTable) write(e *TtEntry, key Key, move Move, depth int8, value Value, vtype ValueType, eval Value) {
	e.key = key
	e.move = uint16(move.MoveOf())
	e.eval = int16(eval)
	e.value = int16(value)
	e.meta = packMeta(depth, vtype, 1)
}

// update refreshes an already-resident entry. A caller storing MoveNone
// or ValueNA for move/eval is asking to keep whatever is already there
// rather than erase it - the move and eval found earlier in a shallower
// search are still useful even if this store doesn't have them handy.
func (tt *TtTable) update(e *TtEntry, move Move, depth int8, value Value, vtype ValueType, eval Value) {
	if move != MoveNone {
		e.move = uint16(move.MoveOf())
	}
	if eval != ValueNA {
		e.eval = int16(eval)
	}
	if value != ValueNA {
		e.value = int16(value)
		e.meta = packMeta(depth, vtype, 1)
	}
}

// Clear empties the table without reallocating it. Not safe to call
// concurrently with Probe/Put.
func (tt *TtTable) Clear() {
	tt.entries = make([]TtEntry, tt.capacity)
	tt.filled = 0
	tt.Stats = Counters{}
}

// Hashfull reports how full the table is in permille, as UCI's "info
// hashfull" expects.
func (tt *TtTable) Hashfull() int {
	if tt.capacity == 0 {
		return 0
	}
	return int((1000 * tt.filled) / tt.capacity)
}

func (tt *TtTable) String() string {
	return out.Sprintf("TT: size %d MB max entries %d of size %d Bytes entries %d (%d%%) puts %d "+
		"updates %d collisions %d overwrites %d probes %d hits %d (%d%%) misses %d (%d%%)",
		tt.bytes/MB, tt.capacity, unsafe.Sizeof(TtEntry{}), tt.filled, tt.Hashfull()/10,
		tt.Stats.stores, tt.Stats.refreshes, tt.Stats.collisions, tt.Stats.overwrites, tt.Stats.probes,
		tt.Stats.hits, (tt.Stats.hits*100)/(1+tt.Stats.probes),
		tt.Stats.misses, (tt.Stats.misses*100)/(1+tt.Stats.probes))
}

// Len returns the number of occupied slots.
func (tt *TtTable) Len() uint64 {
	return tt.filled
}

// AgeEntries bumps the generation counter of every occupied entry by one,
// making them progressively more evictable until the next time they're
// probed. Run once per search iteration, split across goroutines since a
// full-size table has tens of millions of entries to walk.
func (tt *TtTable) AgeEntries() {
	start := time.Now()
	if tt.filled > 0 {
		const workers = 32
		var wg sync.WaitGroup
		wg.Add(workers)
		chunk := tt.capacity / workers
		for w := uint64(0); w < workers; w++ {
			go func(w uint64) {
				defer wg.Done()
				lo := w * chunk
				hi := lo + chunk
				if w == workers-1 {
					hi = tt.capacity
				}
				for i := lo; i < hi; i++ {
					if tt.entries[i].key != 0 {
						tt.entries[i].grow()
					}
				}
			}(w)
		}
		wg.Wait()
	}
	tt.log.Debug(out.Sprintf("Aged %d entries of %d in %d ms\n", tt.filled, len(tt.entries), time.Since(start).Milliseconds()))
}
