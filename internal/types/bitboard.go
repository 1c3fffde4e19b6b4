/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package types

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/corvine/kestrel/internal/util"
)

// Bitboard is a 64-bit set, one bit per board square (bit 0 == SqA1).
type Bitboard uint64

// Bb returns the single-bit Bitboard for this square.
func (sq Square) Bb() Bitboard {
	return squareBb[sq]
}

// PushSquare sets the bit for s.
func PushSquare(b Bitboard, s Square) Bitboard {
	return b | s.Bb()
}

// PushSquare sets the bit for s on the receiver in place.
func (b *Bitboard) PushSquare(s Square) Bitboard {
	*b |= s.Bb()
	return *b
}

// PopSquare clears the bit for s.
func PopSquare(b Bitboard, s Square) Bitboard {
	return b &^ s.Bb()
}

// PopSquare clears the bit for s on the receiver in place.
func (b *Bitboard) PopSquare(s Square) Bitboard {
	*b = *b &^ s.Bb()
	return *b
}

// Has reports whether s is set in b.
func (b Bitboard) Has(s Square) bool {
	return b&squareBb[s] != 0
}

// ShiftBitboard shifts every bit of b one square in direction d, clearing
// whatever would otherwise wrap around the board edge.
func ShiftBitboard(b Bitboard, d Direction) Bitboard {
	switch d {
	case North:
		return (Rank8Mask & b) << 8
	case East:
		return (MsbMask & b) << 1 & FileAMask
	case South:
		return b >> 8
	case West:
		return (b >> 1) & FileHMask
	case Northeast:
		return (Rank8Mask & b) << 9 & FileAMask
	case Southeast:
		return (b >> 7) & FileAMask
	case Southwest:
		return (b >> 9) & FileHMask
	case Northwest:
		return (b << 7) & FileHMask
	}
	return b
}

// Lsb returns the lowest-indexed set square, or SqNone if b is empty.
func (b Bitboard) Lsb() Square {
	return Square(bits.TrailingZeros64(uint64(b)))
}

// Msb returns the highest-indexed set square, or SqNone if b is empty.
func (b Bitboard) Msb() Square {
	if b == BbZero {
		return SqNone
	}
	return Square(63 - bits.LeadingZeros64(uint64(b)))
}

// PopLsb removes and returns the lowest-indexed set square.
func (b *Bitboard) PopLsb() Square {
	if *b == BbZero {
		return SqNone
	}
	lsb := b.Lsb()
	*b = *b & (*b - 1)
	return lsb
}

// PopCount returns the number of set bits in b.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// String renders b as 64 binary digits, lsb first in the format verb but
// printed msb-to-lsb like a normal binary literal.
func (b Bitboard) String() string {
	return fmt.Sprintf("%-0.64b", b)
}

// StringBoard renders b as an 8x8 ASCII board, rank 8 first.
func (b Bitboard) StringBoard() string {
	var sb strings.Builder
	sb.WriteString("+---+---+---+---+---+---+---+---+\n")
	for r := Rank1; r <= Rank8; r++ {
		for f := FileA; f <= FileH; f++ {
			if (b & SquareOf(f, Rank8-r).Bb()) > 0 {
				sb.WriteString("| X ")
			} else {
				sb.WriteString("|   ")
			}
		}
		sb.WriteString("|\n+---+---+---+---+---+---+---+---+\n")
	}
	return sb.String()
}

// StringGrouped renders b as 64 bits grouped by rank, A1 to H8.
func (b Bitboard) StringGrouped() string {
	var sb strings.Builder
	for i := 0; i < 64; i++ {
		if i > 0 && i%8 == 0 {
			sb.WriteString(".")
		}
		if (b & (BbOne << i)) != 0 {
			sb.WriteString("1")
		} else {
			sb.WriteString("0")
		}
	}
	sb.WriteString(fmt.Sprintf(" (%d)", b))
	return sb.String()
}

// FileDistance returns the absolute distance in files between f1 and f2.
func FileDistance(f1 File, f2 File) int {
	return util.Abs(int(f2) - int(f1))
}

// RankDistance returns the absolute distance in ranks between r1 and r2.
func RankDistance(r1 Rank, r2 Rank) int {
	return util.Abs(int(r2) - int(r1))
}

// SquareDistance returns Chebyshev distance between s1 and s2 (max of file
// and rank distance), 0 if either square is invalid or they're equal.
func SquareDistance(s1 Square, s2 Square) int {
	if !s1.IsValid() || !s2.IsValid() || s1 == s2 {
		return 0
	}
	return squareDistanceTable[s1][s2]
}

// CenterDistance returns sq's distance to the nearest of the four center
// squares.
func (sq Square) CenterDistance() int {
	return centerDistanceTable[sq]
}

// GetAttacksBb returns the attack set of a piece of type pt standing on sq
// given the current occupancy. Sliding pieces (bishop/rook/queen) look up
// the fancy-magic tables; knight and king ignore occupied and return their
// precomputed pseudo-attacks. Pawns are not supported here since their
// attacks also depend on color - use GetPawnAttacks.
func GetAttacksBb(pt PieceType, sq Square, occupied Bitboard) Bitboard {
	if pt == Pawn {
		panic("GetAttacksBb does not support PieceType Pawn - use GetPawnAttacks")
	}
	switch pt {
	case Bishop:
		return bishopMagics[sq].Attacks[bishopMagics[sq].index(occupied)]
	case Rook:
		return rookMagics[sq].Attacks[rookMagics[sq].index(occupied)]
	case Queen:
		return bishopMagics[sq].Attacks[bishopMagics[sq].index(occupied)] | rookMagics[sq].Attacks[rookMagics[sq].index(occupied)]
	default:
		return pseudoAttacks[pt][sq]
	}
}

// GetPseudoAttacks returns the attack set of a piece of type pt on sq as if
// the board were otherwise empty.
func GetPseudoAttacks(pt PieceType, sq Square) Bitboard {
	return pseudoAttacks[pt][sq]
}

// GetPawnAttacks returns the squares a pawn of color c on sq attacks.
func GetPawnAttacks(c Color, sq Square) Bitboard {
	return pawnAttacks[c][sq]
}

// FilesWestMask returns the files strictly west of sq's file.
func (sq Square) FilesWestMask() Bitboard {
	return filesWestMask[sq]
}

// FilesEastMask returns the files strictly east of sq's file.
func (sq Square) FilesEastMask() Bitboard {
	return filesEastMask[sq]
}

// FileWestMask returns the single file immediately west of sq, if any.
func (sq Square) FileWestMask() Bitboard {
	return fileWestMask[sq]
}

// FileEastMask returns the single file immediately east of sq, if any.
func (sq Square) FileEastMask() Bitboard {
	return fileEastMask[sq]
}

// RanksNorthMask returns the ranks strictly north of sq's rank.
func (sq Square) RanksNorthMask() Bitboard {
	return ranksNorthMask[sq]
}

// RanksSouthMask returns the ranks strictly south of sq's rank.
func (sq Square) RanksSouthMask() Bitboard {
	return ranksSouthMask[sq]
}

// NeighbourFilesMask returns the files immediately east and west of sq.
func (sq Square) NeighbourFilesMask() Bitboard {
	return neighbourFilesMask[sq]
}

// Ray returns the squares outgoing from sq along orientation o, stopping
// at the board edge (occupancy is not considered).
func (sq Square) Ray(o Orientation) Bitboard {
	return rays[o][sq]
}

// Intermediate returns the squares strictly between sq1 and sq2 if they
// share a rank, file or diagonal, or BbZero otherwise.
func Intermediate(sq1 Square, sq2 Square) Bitboard {
	return betweenTable[sq1][sq2]
}

// Intermediate returns the squares strictly between sq and sqTo.
func (sq Square) Intermediate(sqTo Square) Bitboard {
	return betweenTable[sq][sqTo]
}

// PassedPawnMask returns the squares on sq's file and the two neighbouring
// files, ahead of sq from color c's perspective, that an opposing pawn
// would need to be clear of for a pawn on sq to be passed.
func (sq Square) PassedPawnMask(c Color) Bitboard {
	return passedPawnMask[c][sq]
}

// KingSideCastleMask returns the king-side squares (excluding the king's
// own square) that must be empty for color c to castle short.
func KingSideCastleMask(c Color) Bitboard {
	return kingSideCastleMask[c]
}

// QueenSideCastMask returns the queen-side squares (excluding the king's
// own square) that must be empty for color c to castle long.
func QueenSideCastMask(c Color) Bitboard {
	return queenSideCastleMask[c]
}

// GetCastlingRights returns which castling rights are lost when a piece
// moves to or from sq (king start squares clear both rights for that
// color, rook start squares clear the matching single right).
func GetCastlingRights(sq Square) CastlingRights {
	return castlingRightsLost[sq]
}

// SquaresBb returns every square of the given color (as in "light-squared
// bishop"), used for same-color-bishop and similar draw heuristics.
func SquaresBb(c Color) Bitboard {
	return coloredSquares[c]
}

// Various constant bitboards.
const (
	BbZero Bitboard = Bitboard(0)
	BbAll  Bitboard = ^BbZero
	BbOne  Bitboard = Bitboard(1)

	FileA_Bb Bitboard = 0x0101010101010101
	FileB_Bb Bitboard = FileA_Bb << 1
	FileC_Bb Bitboard = FileA_Bb << 2
	FileD_Bb Bitboard = FileA_Bb << 3
	FileE_Bb Bitboard = FileA_Bb << 4
	FileF_Bb Bitboard = FileA_Bb << 5
	FileG_Bb Bitboard = FileA_Bb << 6
	FileH_Bb Bitboard = FileA_Bb << 7

	Rank1_Bb Bitboard = 0xFF
	Rank2_Bb Bitboard = Rank1_Bb << (8 * 1)
	Rank3_Bb Bitboard = Rank1_Bb << (8 * 2)
	Rank4_Bb Bitboard = Rank1_Bb << (8 * 3)
	Rank5_Bb Bitboard = Rank1_Bb << (8 * 4)
	Rank6_Bb Bitboard = Rank1_Bb << (8 * 5)
	Rank7_Bb Bitboard = Rank1_Bb << (8 * 6)
	Rank8_Bb Bitboard = Rank1_Bb << (8 * 7)

	MsbMask   Bitboard = ^(Bitboard(1) << 63)
	Rank8Mask Bitboard = ^Rank8_Bb
	FileAMask Bitboard = ^FileA_Bb
	FileHMask Bitboard = ^FileH_Bb

	// DiagUp/DiagDown constants are test fixtures for ShiftBitboard: each
	// is a full a1-h8-style diagonal, handy as a non-trivial multi-square
	// shift input without hand-computing one.
	DiagUpA1 Bitboard = 0b10000000_01000000_00100000_00010000_00001000_00000100_00000010_00000001
	DiagUpB1 Bitboard = (MsbMask & DiagUpA1) << 1 & FileAMask
	DiagUpC1 Bitboard = (MsbMask & DiagUpB1) << 1 & FileAMask
	DiagUpD1 Bitboard = (MsbMask & DiagUpC1) << 1 & FileAMask
	DiagUpE1 Bitboard = (MsbMask & DiagUpD1) << 1 & FileAMask
	DiagUpF1 Bitboard = (MsbMask & DiagUpE1) << 1 & FileAMask
	DiagUpG1 Bitboard = (MsbMask & DiagUpF1) << 1 & FileAMask
	DiagUpH1 Bitboard = (MsbMask & DiagUpG1) << 1 & FileAMask
	DiagUpA2 Bitboard = (Rank8Mask & DiagUpA1) << 8
	DiagUpA3 Bitboard = (Rank8Mask & DiagUpA2) << 8
	DiagUpA4 Bitboard = (Rank8Mask & DiagUpA3) << 8
	DiagUpA5 Bitboard = (Rank8Mask & DiagUpA4) << 8
	DiagUpA6 Bitboard = (Rank8Mask & DiagUpA5) << 8
	DiagUpA7 Bitboard = (Rank8Mask & DiagUpA6) << 8
	DiagUpA8 Bitboard = (Rank8Mask & DiagUpA7) << 8

	DiagDownH1 Bitboard = 0b0000000100000010000001000000100000010000001000000100000010000000
	DiagDownH2 Bitboard = (Rank8Mask & DiagDownH1) << 8
	DiagDownH3 Bitboard = (Rank8Mask & DiagDownH2) << 8
	DiagDownH4 Bitboard = (Rank8Mask & DiagDownH3) << 8
	DiagDownH5 Bitboard = (Rank8Mask & DiagDownH4) << 8
	DiagDownH6 Bitboard = (Rank8Mask & DiagDownH5) << 8
	DiagDownH7 Bitboard = (Rank8Mask & DiagDownH6) << 8
	DiagDownH8 Bitboard = (Rank8Mask & DiagDownH7) << 8
	DiagDownG1 Bitboard = (DiagDownH1 >> 1) & FileHMask
	DiagDownF1 Bitboard = (DiagDownG1 >> 1) & FileHMask
	DiagDownE1 Bitboard = (DiagDownF1 >> 1) & FileHMask
	DiagDownD1 Bitboard = (DiagDownE1 >> 1) & FileHMask
	DiagDownC1 Bitboard = (DiagDownD1 >> 1) & FileHMask
	DiagDownB1 Bitboard = (DiagDownC1 >> 1) & FileHMask
	DiagDownA1 Bitboard = (DiagDownB1 >> 1) & FileHMask

	CenterFiles   Bitboard = FileD_Bb | FileE_Bb
	CenterRanks   Bitboard = Rank4_Bb | Rank5_Bb
	CenterSquares Bitboard = CenterFiles & CenterRanks
)

// ////////////////////
// package-private precomputed tables and their builders
// ////////////////////

func (sq Square) bitboard() Bitboard {
	return Bitboard(uint64(1) << sq)
}

var (
	// squareDistanceTable[a][b] is the Chebyshev distance between a and b.
	squareDistanceTable [SqLength][SqLength]int

	// squareBb is the single-bit Bitboard for every square.
	squareBb [SqLength]Bitboard

	// rankBb[r] / fileBb[f] back Rank.Bb() / File.Bb().
	rankBb [8]Bitboard
	fileBb [8]Bitboard

	// pawnAttacks[c][sq] is the squares a color-c pawn on sq attacks.
	pawnAttacks [2][SqLength]Bitboard

	// pseudoAttacks[pt][sq] is pt's attack set from sq on an empty board.
	pseudoAttacks [PtLength][SqLength]Bitboard

	// rook/bishop fancy-magic attack tables, shared backing slices sliced
	// per square by initMagicTables.
	rookTable  []Bitboard
	rookMagics [SqLength]Magic

	bishopTable  []Bitboard
	bishopMagics [SqLength]Magic

	filesWestMask      [SqLength]Bitboard
	filesEastMask      [SqLength]Bitboard
	ranksNorthMask     [SqLength]Bitboard
	ranksSouthMask     [SqLength]Bitboard
	fileWestMask       [SqLength]Bitboard
	fileEastMask       [SqLength]Bitboard
	neighbourFilesMask [SqLength]Bitboard

	// rays[o][sq] is every square along orientation o from sq to the edge.
	rays [8][SqLength]Bitboard

	// betweenTable[a][b] is the squares strictly between a and b if they
	// share a line, or BbZero otherwise.
	betweenTable [SqLength][SqLength]Bitboard

	// passedPawnMask[c][sq]: opposing pawns anywhere in this mask can stop
	// a color-c pawn on sq from being passed.
	passedPawnMask [2][SqLength]Bitboard

	kingSideCastleMask  [2]Bitboard
	queenSideCastleMask [2]Bitboard

	// castlingRightsLost[sq] is which CastlingRights are cleared when a
	// piece moves to or from sq (set only for the four rook and two king
	// start squares).
	castlingRightsLost [SqLength]CastlingRights

	// coloredSquares[c] is every square of light/dark color c.
	coloredSquares [2]Bitboard

	centerDistanceTable [SqLength]int
)

// initBb precomputes every lookup table above plus the magic attack
// tables, once at package init.
func initBb() {
	precomputeSquareBitboards()
	precomputeRankFileBitboards()
	precomputeCastleMasks()
	precomputeSquareDistances()
	precomputePseudoAttacks()
	precomputeNeighbourMasks()
	precomputeRays()
	precomputeBetween()
	precomputePassedPawnMasks()
	precomputeSquareColors()
	precomputeCenterDistances()
	initMagicTables()
}

// initMagicTables allocates the shared rook/bishop attack slices and fills
// them either by searching for magics at startup (MagicGenerated) or by
// validating a fixed, known-good multiplier table (MagicPrecomputed,
// the default - see magic_precomputed.go).
func initMagicTables() {
	rookDirections := [4]Direction{North, East, South, West}
	bishopDirections := [4]Direction{Northeast, Southeast, Southwest, Northwest}

	rookTable = make([]Bitboard, 0x19000, 0x19000)
	bishopTable = make([]Bitboard, 0x1480, 0x1480)

	switch ActiveMagicScheme {
	case MagicGenerated:
		searchMagics(&rookTable, &rookMagics, &rookDirections)
		searchMagics(&bishopTable, &bishopMagics, &bishopDirections)
	default:
		initMagicsPrecomputed(&rookTable, &rookMagics, &rookDirections, &precomputedRookMagics)
		initMagicsPrecomputed(&bishopTable, &bishopMagics, &bishopDirections, &precomputedBishopMagics)
	}
}

func precomputeCastleMasks() {
	kingSideCastleMask[White] = squareBb[SqF1] | squareBb[SqG1] | squareBb[SqH1]
	kingSideCastleMask[Black] = squareBb[SqF8] | squareBb[SqG8] | squareBb[SqH8]
	queenSideCastleMask[White] = squareBb[SqD1] | squareBb[SqC1] | squareBb[SqB1] | squareBb[SqA1]
	queenSideCastleMask[Black] = squareBb[SqD8] | squareBb[SqC8] | squareBb[SqB8] | squareBb[SqA8]
	castlingRightsLost[SqE1] = CastlingWhite
	castlingRightsLost[SqA1] = CastlingWhiteOOO
	castlingRightsLost[SqH1] = CastlingWhiteOO
	castlingRightsLost[SqE8] = CastlingBlack
	castlingRightsLost[SqA8] = CastlingBlackOOO
	castlingRightsLost[SqH8] = CastlingBlackOO
}

func precomputeSquareBitboards() {
	for sq := SqA1; sq < SqNone; sq++ {
		squareBb[sq] = sq.bitboard()
	}
}

func precomputeRankFileBitboards() {
	for i := Rank1; i <= Rank8; i++ {
		rankBb[i] = Rank1_Bb << (8 * i)
	}
	for i := FileA; i <= FileH; i++ {
		fileBb[i] = FileA_Bb << i
	}
}

// precomputeCenterDistances fills centerDistanceTable by quadrant, using
// whichever of the four center squares is closest for each quadrant.
func precomputeCenterDistances() {
	for square := SqA1; square <= SqH8; square++ {
		switch {
		case (squareBb[square] & ranksNorthMask[27] & filesWestMask[36]) != 0:
			centerDistanceTable[square] = squareDistanceTable[square][SqD5]
		case (squareBb[square] & ranksNorthMask[28] & filesEastMask[35]) != 0:
			centerDistanceTable[square] = squareDistanceTable[square][SqE5]
		case (squareBb[square] & ranksSouthMask[35] & filesWestMask[28]) != 0:
			centerDistanceTable[square] = squareDistanceTable[square][SqD4]
		case (squareBb[square] & ranksSouthMask[36] & filesEastMask[27]) != 0:
			centerDistanceTable[square] = squareDistanceTable[square][SqE4]
		}
	}
}

// precomputeSquareColors fills coloredSquares, used by things like
// opposite-colored-bishop draw heuristics.
func precomputeSquareColors() {
	for square := SqA1; square <= SqH8; square++ {
		f := square.FileOf()
		r := square.RankOf()
		if (int(f)+int(r))%2 == 0 {
			coloredSquares[Black] |= BbOne << square
		} else {
			coloredSquares[White] |= BbOne << square
		}
	}
}

// precomputePassedPawnMasks fills passedPawnMask for both colors.
func precomputePassedPawnMasks() {
	for square := SqA1; square <= SqH8; square++ {
		f := square.FileOf()
		r := square.RankOf()
		passedPawnMask[White][square] |= rays[N][square]
		if f < 7 && r < 7 {
			passedPawnMask[White][square] |= rays[N][square.To(East)]
		}
		if f > 0 && r < 7 {
			passedPawnMask[White][square] |= rays[N][square.To(West)]
		}
		passedPawnMask[Black][square] |= rays[S][square]
		if f < 7 && r > 0 {
			passedPawnMask[Black][square] |= rays[S][square.To(East)]
		}
		if f > 0 && r > 0 {
			passedPawnMask[Black][square] |= rays[S][square.To(West)]
		}
	}
}

// precomputeBetween fills betweenTable for every pair of squares that
// share one of the eight ray orientations.
func precomputeBetween() {
	for from := SqA1; from <= SqH8; from++ {
		for to := SqA1; to <= SqH8; to++ {
			toBB := squareBb[to]
			for o := 0; o < 8; o++ {
				if rays[Orientation(o)][from]&toBB != BbZero {
					betweenTable[from][to] |=
						rays[Orientation(o)][from] & ^rays[Orientation(o)][to] & ^toBB
				}
			}
		}
	}
}

func precomputeRays() {
	for sq := SqA1; sq <= SqH8; sq++ {
		rays[N][sq] = pseudoAttacks[Rook][sq] & ranksNorthMask[sq]
		rays[E][sq] = pseudoAttacks[Rook][sq] & filesEastMask[sq]
		rays[S][sq] = pseudoAttacks[Rook][sq] & ranksSouthMask[sq]
		rays[W][sq] = pseudoAttacks[Rook][sq] & filesWestMask[sq]

		rays[NW][sq] = pseudoAttacks[Bishop][sq] & filesWestMask[sq] & ranksNorthMask[sq]
		rays[NE][sq] = pseudoAttacks[Bishop][sq] & filesEastMask[sq] & ranksNorthMask[sq]
		rays[SE][sq] = pseudoAttacks[Bishop][sq] & filesEastMask[sq] & ranksSouthMask[sq]
		rays[SW][sq] = pseudoAttacks[Bishop][sq] & filesWestMask[sq] & ranksSouthMask[sq]
	}
}

// precomputeNeighbourMasks fills the file/rank masks used for passed-pawn
// and king-safety evaluation (everything strictly east/west/north/south
// of a square, plus the immediate neighbour file on each side).
func precomputeNeighbourMasks() {
	for square := SqA1; square <= SqH8; square++ {
		f := int(square.FileOf())
		r := int(square.RankOf())
		for j := 0; j <= 7; j++ {
			if j < f {
				filesWestMask[square] |= FileA_Bb << j
			}
			if 7-j > f {
				filesEastMask[square] |= FileA_Bb << (7 - j)
			}
			if 7-j > r {
				ranksNorthMask[square] |= Rank1_Bb << (8 * (7 - j))
			}
			if j < r {
				ranksSouthMask[square] |= Rank1_Bb << (8 * j)
			}
		}
		if f > 0 {
			fileWestMask[square] = FileA_Bb << (f - 1)
		}
		if f < 7 {
			fileEastMask[square] = FileA_Bb << (f + 1)
		}
		neighbourFilesMask[square] = fileEastMask[square] | fileWestMask[square]
	}
}

func precomputeSquareDistances() {
	for sq1 := SqA1; sq1 <= SqH8; sq1++ {
		for sq2 := SqA1; sq2 <= SqH8; sq2++ {
			if sq1 != sq2 {
				squareDistanceTable[sq1][sq2] =
					util.Max(FileDistance(sq1.FileOf(), sq2.FileOf()), RankDistance(sq1.RankOf(), sq2.RankOf()))
			}
		}
	}
}

// precomputePseudoAttacks fills pawnAttacks and pseudoAttacks for every
// piece type and square, as if each piece stood alone on an empty board.
// Sliding-piece pseudo-attacks are built with slideAttacks on an empty
// board; the magic attack tables are filled later by initMagicTables and
// are not used here.
func precomputePseudoAttacks() {
	var steps = [][]Direction{
		{},
		{Northwest, North, Northeast, East}, // king
		{Northwest, Northeast},              // pawn
		{West + Northwest, East + Northeast, North + Northwest, North + Northeast}, // knight
	}

	for c := White; c <= Black; c++ {
		for _, pt := range []PieceType{King, Pawn, Knight} {
			for s := SqA1; s <= SqH8; s++ {
				for i := 0; i < len(steps[pt]); i++ {
					to := Square(int(s) + c.Direction()*int(steps[pt][i]))
					if to.IsValid() && squareDistanceTable[s][to] < 3 {
						if pt == Pawn {
							pawnAttacks[c][s] |= squareBb[to]
						} else {
							pseudoAttacks[pt][s] |= squareBb[to]
						}
					}
				}
			}
		}
	}

	for square := SqA1; square <= SqH8; square++ {
		pseudoAttacks[Bishop][square] |= slideAttacks(&[4]Direction{Northeast, Southeast, Southwest, Northwest}, square, BbZero)
		pseudoAttacks[Rook][square] |= slideAttacks(&[4]Direction{North, East, South, West}, square, BbZero)
		pseudoAttacks[Queen][square] |= pseudoAttacks[Bishop][square] | pseudoAttacks[Rook][square]
	}
}
