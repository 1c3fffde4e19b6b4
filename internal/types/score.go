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

import (
	"fmt"
)

// Score pairs a midgame and an endgame evaluation value so a heuristic can
// score a position once and let the caller blend the two by game phase.
type Score struct {
	MidGameValue int
	EndGameValue int
}

// Add accumulates another score's midgame and endgame parts into s.
func (s *Score) Add(other *Score) {
	s.MidGameValue += other.MidGameValue
	s.EndGameValue += other.EndGameValue
}

// Sub removes another score's midgame and endgame parts from s.
func (s *Score) Sub(other *Score) {
	s.MidGameValue -= other.MidGameValue
	s.EndGameValue -= other.EndGameValue
}

// Blend interpolates between the midgame and endgame values using a game
// phase factor in [0,1], where 1 is fully midgame and 0 is fully endgame.
func (s *Score) Blend(gamePhaseFactor float64) Value {
	return Value(float64(s.MidGameValue)*gamePhaseFactor) + Value(float64(s.EndGameValue)*(1.0-gamePhaseFactor))
}

func (s *Score) String() string {
	return fmt.Sprintf("{ mid:%d end:%d }", s.MidGameValue, s.EndGameValue)
}
