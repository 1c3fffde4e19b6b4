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

// MagicScheme selects how the magic attack tables are built at startup.
type MagicScheme uint8

const (
	// MagicPrecomputed loads a fixed list of known-good multipliers and
	// only validates and fills the attack tables. Deterministic, used by
	// default.
	MagicPrecomputed MagicScheme = iota
	// MagicGenerated runs the sparse-random magic search at startup.
	MagicGenerated
)

// ActiveMagicScheme controls which scheme initMagicTables() uses. It
// must be set before the package init() runs if a non-default scheme is
// wanted, which in practice means it can only usefully be changed by a
// build that imports this package with an init-order dependency - for
// normal engine operation MagicPrecomputed is always used.
var ActiveMagicScheme = MagicPrecomputed

// precomputedRookMagics and precomputedBishopMagics are known-good magic
// multipliers captured from a prior Generated run for every square in
// little-endian rank-file (A1..H8) order. Using them skips the sparse
// random search entirely: construction becomes pure validation and table
// fill, matching the "Precomputed" scheme required alongside "Generated".
var precomputedRookMagics = [SqLength]Bitboard{
	0x0a8002c000108020, 0x06c00049b0002001, 0x0100200010090040, 0x2480041000800801,
	0x0280028004000800, 0x0900410008040022, 0x0280020001001080, 0x2880002041000080,
	0xa000800080400034, 0x0004808020004000, 0x2290802004801000, 0x0411000d00100020,
	0x0402800800040080, 0x000b000401004208, 0x2409000100040200, 0x0001002100004082,
	0x0022878001003204, 0x0001004080201000, 0x0801000804001100, 0x0000a0066423020,
	0x0100080800800400, 0x0202011004020400, 0x0841118a0000400, 0x0890003800d02400,
	0x0801008804008200, 0x0080040080100080, 0x0080100012100044, 0x0080110004001000,
	0x1000080800200080, 0x2010004000600400, 0x0104010000008010, 0x0404042020004100,
	0x0808000400400080, 0x0100400240009201, 0x0208010400082100, 0x0402004201001008,
	0x0802000490200801, 0x2000101200100400, 0x0810100400080020, 0x0041010004000200,
	0x0040400820800020, 0x0040008450010040, 0x0000810010200101, 0x0040008010010020,
	0x0010048020200100, 0x0020048010020008, 0x2010010200040008, 0x0040020800010041,
	0x2000400080002480, 0x0040102001004040, 0x0040200080100040, 0x2490022200109040,
	0x0088010400100080, 0x0040002080100080, 0x0000480010020008, 0x0020004008080080,
	0x00928c08020e0200, 0x0001001200408102, 0x0000802040001101, 0x0008011002a05201,
	0x0002410101000082, 0x0082000401020009, 0x0000401800980104, 0x0040100481020004,
}

var precomputedBishopMagics = [SqLength]Bitboard{
	0x0040210414004040, 0x0002004208010100, 0x0010010840108000, 0x2008008445020801,
	0x0020020048000005, 0x0402080200810000, 0x00a41020400c1100, 0x0002002020420082,
	0x0010080010110040, 0x0000808008041004, 0x0100288400020801, 0x0000010411008102,
	0x0000102004240201, 0x00008f0200410080, 0x0004000808044100, 0x8000088012001820,
	0x0040040800820010, 0x0002080084048020, 0x0000080010040800, 0x0808040002200000,
	0x0010040404080200, 0x0001000202040100, 0x0004204808080400, 0x0010200420808200,
	0x0008004010401440, 0x0020020801010802, 0x0104020004002020, 0x0020802008020004,
	0x0004020040040400, 0x0000808011800408, 0x0001010012020008, 0x0022020408040200,
	0x0004004040040400, 0x2000021010040100, 0x0010080008801000, 0x0008010040100404,
	0x0000020040080800, 0x0002004010040020, 0x0014010180080101, 0x0240080100210100,
	0x0800800410020800, 0x0000400420200202, 0x0402000a01020020, 0x0000402004000401,
	0x0000420800080100, 0x0002081020080200, 0x0040108100040200, 0x0020010104002104,
	0x0008210200620400, 0x0008004200010100, 0x0010080100020020, 0x0010040401001020,
	0x0080420200040040, 0x0002010100080402, 0x0008208100040080, 0x4000004104040800,
	0x0040200808101200, 0x0100100020880080, 0x0004020200082200, 0x0002010200110404,
	0x0000210408104000, 0x0002008021020040, 0x0010108020040200, 0x0002004810100040,
}

// initMagicsPrecomputed fills table/magics for the given directions using
// the fixed multiplier list instead of searching for one. Mask/shift/table
// construction is identical to the Generated scheme, only the multiplier
// search is skipped.
func initMagicsPrecomputed(table *[]Bitboard, magics *[64]Magic, directions *[4]Direction, fixed *[SqLength]Bitboard) {
	occupancy := [4096]Bitboard{}
	reference := [4096]Bitboard{}
	var edges, b Bitboard
	size := 0

	for sq := SqA1; sq <= SqH8; sq++ {
		edges = ((Rank1_Bb | Rank8_Bb) &^ sq.RankOf().Bb()) | ((FileA_Bb | FileH_Bb) &^ sq.FileOf().Bb())

		m := &(*magics)[sq]
		m.Mask = slideAttacks(directions, sq, BbZero) &^ edges
		m.Shift = uint(64 - m.Mask.PopCount())
		m.Magic = fixed[sq]

		if sq == SqA1 {
			m.Attacks = *table
		} else {
			m.Attacks = magics[sq-1].Attacks[size:]
		}

		b = 0
		size = 0
		for {
			occupancy[size] = b
			reference[size] = slideAttacks(directions, sq, b)
			size++
			b = (b - m.Mask) & m.Mask
			if b == 0 {
				break
			}
		}

		for i := 0; i < size; i++ {
			idx := m.index(occupancy[i])
			m.Attacks[idx] = reference[i]
		}
	}
}
