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

// Magic holds the fancy-magic lookup data for one square: the relevant
// occupancy mask, the multiplier that maps a masked occupancy onto a
// dense index, the per-square slice of the shared attack table, and the
// shift that converts a 64-bit product into that index.
//
// The multiplier search below follows Stockfish's approach; see
// https://www.chessprogramming.org/Magic_Bitboards for the general idea.
type Magic struct {
	Mask    Bitboard
	Magic   Bitboard
	Attacks []Bitboard
	Shift   uint
}

// index maps an occupancy bitboard (already ANDed with Mask by the caller
// or here) onto a slot in Attacks.
//
//	occ      &= magic[sq].Mask
//	occ      *= magic[sq].Magic
//	occ     >>= magic[sq].Shift
func (m *Magic) index(occupied Bitboard) uint {
	occ := occupied & m.Mask
	occ *= m.Magic
	occ >>= m.Shift
	return uint(occ)
}

// searchMagics populates magics/table for every square along the given
// slider directions (rook: N/E/S/W, bishop: the four diagonals) by
// searching for multipliers that turn each square's relevant-occupancy
// mask into a collision-free index. This is the "Generated" scheme: it
// runs the sparse-random search at startup rather than trusting a fixed
// table, which makes it useful as a way to regenerate the precomputed
// multipliers if the board representation ever changes.
func searchMagics(table *[]Bitboard, magics *[64]Magic, directions *[4]Direction) {
	// Seeds tuned so the sparse-random search converges quickly per rank;
	// a bad seed can make a square's search take orders of magnitude longer.
	seeds := [RankLength]uint64{728, 10316, 55013, 32803, 12281, 15100, 16645, 255}

	var occupancy, reference [4096]Bitboard
	var attempt [4096]int
	var edges, subset Bitboard
	attemptNo := 0
	subsetCount := 0

	for sq := SqA1; sq <= SqH8; sq++ {
		// The board edges never contribute to blocking a slider's relevant
		// occupancy - a piece standing on an edge square can't block
		// anything beyond that edge that the ray wouldn't already miss.
		edges = ((Rank1_Bb | Rank8_Bb) &^ sq.RankOf().Bb()) | ((FileA_Bb | FileH_Bb) &^ sq.FileOf().Bb())

		m := &(*magics)[sq]
		m.Mask = slideAttacks(directions, sq, BbZero) &^ edges
		m.Shift = uint(64 - m.Mask.PopCount())

		// Each square gets its own window into the shared backing table,
		// sized to exactly the subsets its mask can produce.
		if sq == SqA1 {
			m.Attacks = *table
		} else {
			m.Attacks = magics[sq-1].Attacks[subsetCount:]
		}

		// Carry-Rippler: walk every subset of m.Mask and record the sliding
		// attack a slider on sq would see for that subset as occupied.
		// https://www.chessprogramming.org/Traversing_Subsets_of_a_Set
		subset = 0
		subsetCount = 0
		for {
			occupancy[subsetCount] = subset
			reference[subsetCount] = slideAttacks(directions, sq, subset)
			subsetCount++
			subset = (subset - m.Mask) & m.Mask
			if subset == 0 {
				break
			}
		}

		rng := newSparseRng(seeds[sq.RankOf()])

		// Keep drawing sparse candidates until one maps every subset to the
		// reference attack with no collisions. attempt[] remembers which
		// search pass last touched a slot so a failed candidate doesn't
		// need m.Attacks wiped before the next one is tried.
		for i := 0; i < subsetCount; {
			for m.Magic = 0; ; {
				m.Magic = Bitboard(rng.sparseNext())
				if ((m.Magic * m.Mask) >> 56).PopCount() < 6 {
					break
				}
			}

			attemptNo++
			for i = 0; i < subsetCount; i++ {
				idx := m.index(occupancy[i])
				if attempt[idx] < attemptNo {
					attempt[idx] = attemptNo
					m.Attacks[idx] = reference[i]
				} else if m.Attacks[idx] != reference[i] {
					break
				}
			}
		}
	}
}

// slideAttacks walks each of the four given directions from sq until it
// runs off the board or hits an occupied square, accumulating every
// square visited (including the blocker, matching how a slider's attack
// set includes the first piece it would capture). Only used during
// table construction - GetAttacks on the hot path goes through the
// magic tables instead.
func slideAttacks(directions *[4]Direction, sq Square, occupied Bitboard) Bitboard {
	attack := BbZero
	for _, dir := range directions {
		s := sq
		for {
			s = s.To(dir)
			if !s.IsValid() {
				break
			}
			attack.PushSquare(s)
			if occupied.Has(s) {
				break
			}
			if !s.To(dir).IsValid() || SquareDistance(s, s.To(dir)) != 1 {
				break
			}
		}
	}
	return attack
}

// sparseRng is a xorshift64star generator, seeded per-rank so the magic
// search above is reproducible. Based on public-domain code by Sebastiano
// Vigna (2014); see http://vigna.di.unimi.it/ftp/papers/xorshift.pdf.
type sparseRng struct {
	state uint64
}

func newSparseRng(seed uint64) *sparseRng {
	return &sparseRng{state: seed}
}

func (r *sparseRng) next64() uint64 {
	r.state ^= r.state >> 12
	r.state ^= r.state << 25
	r.state ^= r.state >> 27
	return r.state * 2685821657736338717
}

// sparseNext ANDs three draws together so roughly 1/8th of the result's
// bits are set on average - magics with few set bits are found faster
// and are what the verification loop above is searching for.
func (r *sparseRng) sparseNext() uint64 {
	return r.next64() & r.next64() & r.next64()
}
