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

// Package types holds the board representation primitives shared across the
// engine - bitboards, squares, pieces, moves - along with the large
// precomputed tables (attack masks, magic indices, piece-square values)
// those primitives are built on.
package types

import (
	myLogging "github.com/corvine/kestrel/internal/logging"
)

var log = myLogging.GetLog()

var initialized = false

// init builds the package's precomputed lookup tables exactly once before
// any other package can observe them: attack bitboards and magic indices,
// then the piece-square value tables that are derived from squares alone.
func init() {
	if initialized {
		return
	}
	log.Debug("Initializing types package lookup tables")
	initBb()
	initPosValues()
	initialized = true
}
