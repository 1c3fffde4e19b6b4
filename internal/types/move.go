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
	"strings"
)

// Move packs a move and a transient sort key into one machine word:
//
//	low 16 bits  - to(6) | from(6) | promo(2) | kind(2)
//	high 16 bits - sort value, biased so it fits unsigned
//
// The low 16 bits alone are enough to replay the move against a Position;
// they are what gets persisted in a transposition table entry. The high
// 16 bits are scratch space move ordering writes into and later strips
// off with MoveOf - two Move values with equal low words are the same
// chess move regardless of what either carries in the high word.
//
// Only four piece types are ever promoted to, so the promo field stores
// PieceType-Knight and PromotionType() adds Knight back on the way out.
// For any MoveType other than Promotion the promo bits are meaningless.
type Move uint32

// MoveNone is the zero move: no from/to/kind/promo/value.
const MoveNone Move = 0

// MoveType distinguishes the handful of move kinds that need special
// handling when applied to a Position (double pawn step and normal
// captures are both just Normal - only the board update differs).
type MoveType uint8

const (
	Normal MoveType = iota
	Promotion
	EnPassant
	Castling
)

func (mt MoveType) String() string {
	switch mt {
	case Normal:
		return "Normal"
	case Promotion:
		return "Promotion"
	case EnPassant:
		return "EnPassant"
	case Castling:
		return "Castling"
	default:
		return "invalid"
	}
}

func (mt MoveType) IsValid() bool {
	return mt <= Castling
}

const (
	toBits    = 6
	fromBits  = 6
	promoBits = 2

	fromShift  = toBits
	promoShift = fromShift + fromBits
	kindShift  = promoShift + promoBits
	valueShift = kindShift + 2

	toField    Move = (1 << toBits) - 1
	fromField  Move = ((1 << fromBits) - 1) << fromShift
	promoField Move = ((1 << promoBits) - 1) << promoShift
	kindField  Move = 0x3 << kindShift

	lowWord  Move = 0xFFFF
	highWord Move = 0xFFFF << valueShift
)

// CreateMove builds a move with no sort value attached.
func CreateMove(from, to Square, kind MoveType, promo PieceType) Move {
	return CreateMoveValue(from, to, kind, promo, ValueNA)
}

// CreateMoveValue builds a move and stamps it with the given sort value.
// promo is only meaningful for kind == Promotion and defaults to Knight
// (the lowest promotion piece) when called with PtNone, matching the
// many call sites that always pass PtNone for non-promoting moves.
func CreateMoveValue(from, to Square, kind MoveType, promo PieceType, value Value) Move {
	if promo < Knight {
		promo = Knight
	}
	return Move(to) |
		Move(from)<<fromShift |
		Move(promo-Knight)<<promoShift |
		Move(kind)<<kindShift |
		Move(uint16(value-ValueNA))<<valueShift
}

// From returns the move's origin square.
func (m Move) From() Square {
	return Square((m & fromField) >> fromShift)
}

// To returns the move's destination square.
func (m Move) To() Square {
	return Square(m & toField)
}

// MoveType returns Normal/Promotion/EnPassant/Castling.
func (m Move) MoveType() MoveType {
	return MoveType((m & kindField) >> kindShift)
}

// PromotionType returns the piece a pawn is promoted to. Meaningless
// unless MoveType() == Promotion.
func (m Move) PromotionType() PieceType {
	return PieceType((m&promoField)>>promoShift) + Knight
}

// MoveOf drops the sort value, leaving only the from/to/kind/promo bits
// that identify the chess move itself.
func (m Move) MoveOf() Move {
	return m & lowWord
}

// ValueOf recovers the sort value stamped on the move by SetValue or
// CreateMoveValue.
func (m Move) ValueOf() Value {
	return Value((m&highWord)>>valueShift) + ValueNA
}

// SetValue overwrites the sort value and returns the updated move so it
// can be used inline, e.g. slice.Set(i, slice.At(i).SetValue(v)).
func (m *Move) SetValue(v Value) Move {
	if *m == MoveNone {
		return *m
	}
	*m = *m&lowWord | Move(uint16(v-ValueNA))<<valueShift
	return *m
}

// IsValid reports whether the move has distinct from/to squares. It says
// nothing about legality in any particular position.
func (m Move) IsValid() bool {
	return m != MoveNone && m.From() != m.To() && m.MoveType().IsValid()
}

// Str renders the move in long algebraic notation, e.g. "e2e4" or "a7a8q".
func (m Move) Str() string {
	if m == MoveNone {
		return "nomove"
	}
	var b strings.Builder
	b.WriteString(m.From().String())
	b.WriteString(m.To().String())
	if m.MoveType() == Promotion {
		b.WriteString(strings.ToLower(m.PromotionType().Char()))
	}
	return b.String()
}

// StringUci is Str under the name UCI-facing code in this engine expects.
func (m Move) StringUci() string {
	return m.Str()
}

func (m Move) String() string {
	if m == MoveNone {
		return "{ MoveNone }"
	}
	return fmt.Sprintf("{ %-5s type:%s prom:%s value:%s }",
		m.StringUci(), m.MoveType(), m.PromotionType().Char(), m.ValueOf())
}

// StringBits prints each packed field of the move in binary, useful when
// debugging the encoding itself.
func (m Move) StringBits() string {
	return fmt.Sprintf("from[%06b] to[%06b] promo[%02b] kind[%02b] value[%016b] (%d)",
		m.From(), m.To(), (m&promoField)>>promoShift, (m&kindField)>>kindShift, m.ValueOf(), uint32(m))
}
