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

// ValueType tags a search value as exact or as one side of a fail-high /
// fail-low cutoff, matching the classic alpha-beta node classification.
// The transposition table stores this alongside a value so a later probe
// knows how (or whether) the stored value can be reused: an exact value
// is always safe to return outright, while a bound only cuts off search
// if it already satisfies the current window.
type ValueType int8

const (
	Vnone ValueType = iota
	EXACT
	ALPHA // value is an upper bound (fail-low node)
	BETA  // value is a lower bound (fail-high node)

	vtypeLength int = 4
)

func (vt ValueType) IsValid() bool {
	return vt >= Vnone && int(vt) < vtypeLength
}

var valueTypeNames = [vtypeLength]string{"none", "exact", "alpha", "beta"}

func (vt ValueType) String() string {
	if !vt.IsValid() {
		return "invalid"
	}
	return valueTypeNames[vt]
}
