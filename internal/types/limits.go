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

package types

// Board and search bounds shared across the engine. These are plain
// constants rather than fields on any one type because every package
// from bitboards to search sizes arrays and loops against them.
const (
	// SqLength is the number of squares on a board.
	SqLength int = 64

	// MaxDepth is the deepest ply the search will ever recurse to; it
	// bounds fixed-size per-ply arrays (killer moves, PV, statistics).
	MaxDepth = 128

	// MaxMoves bounds the move buffers - no legal chess position has
	// more pseudo-legal moves than this.
	MaxMoves = 512

	// GamePhaseMax is the tapered-eval game phase of the starting
	// position (all officers still on the board); phase counts down
	// toward 0 as material is traded off.
	GamePhaseMax = 24
)

// Byte-size helpers for sizing caches and the transposition table from a
// megabyte budget given on the command line or in a UCI option.
const (
	KB uint64 = 1024
	MB uint64 = KB * 1024
	GB uint64 = MB * 1024
)
