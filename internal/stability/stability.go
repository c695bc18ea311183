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

package stability

import (
	. "github.com/frankkopp/othello-endgame/internal/bitutil"
)

// rowMask/colMask/diag9Mask/diag7Mask are precomputed once; a line is full
// iff disc & mask == mask for that line's mask.
var (
	rowMasks   [8]Bitboard
	colMasks   [8]Bitboard
	diag9Masks [15]Bitboard // squares where (row-col) is constant, NE-SW
	diag7Masks [15]Bitboard // squares where (row+col) is constant, NW-SE
)

func init() {
	for sq := 0; sq < 64; sq++ {
		row, col := sq/8, sq%8
		bit := Square(sq).Bit()
		rowMasks[row] |= bit
		colMasks[col] |= bit
		diag9Masks[row-col+7] |= bit
		diag7Masks[row+col] |= bit
	}
}

// GetFullLines returns, for the union of occupied squares disc, five
// masks: fully occupied rows, fully occupied columns, fully occupied
// diag9 (NE-SW) diagonals, fully occupied diag7 (NW-SE) diagonals, and
// (slot 4) their intersection - squares that lie on all four full lines
// simultaneously.
func GetFullLines(disc Bitboard) [5]Bitboard {
	var full [5]Bitboard
	for _, m := range rowMasks {
		if disc&m == m {
			full[0] |= m
		}
	}
	for _, m := range colMasks {
		if disc&m == m {
			full[1] |= m
		}
	}
	for _, m := range diag9Masks {
		if disc&m == m {
			full[2] |= m
		}
	}
	for _, m := range diag7Masks {
		if disc&m == m {
			full[3] |= m
		}
	}
	full[4] = full[0] & full[1] & full[2] & full[3]
	return full
}

func shiftMasked(b Bitboard, dir int) Bitboard {
	switch dir {
	case 8:
		return b << 8
	case -8:
		return b >> 8
	case 1:
		return (b &^ FileHMask) << 1
	case -1:
		return (b &^ FileAMask) >> 1
	case 9:
		return (b &^ FileHMask) << 9
	case 7:
		return (b &^ FileAMask) << 7
	case -7:
		return (b &^ FileHMask) >> 7
	case -9:
		return (b &^ FileAMask) >> 9
	}
	return 0
}

// stableDiscs computes the full stable-disc bitmask for P (against O) and
// the full-lines array, by fixed-point closure: seed with edge-stable
// discs and interior squares on all four full lines, then repeatedly add
// any P disc whose all four axes are "covered" - the axis's line is full,
// or both neighbours along that axis are already stable (so no move can
// ever reach in from either side to start a flip through this square).
func stableDiscs(P, O Bitboard) (Bitboard, [5]Bitboard) {
	disc := P | O
	fulls := GetFullLines(disc)
	stable := GetStableEdge(P, O) | (fulls[4] & P)
	for {
		hCover := fulls[0] | (shiftMasked(stable, 1) & shiftMasked(stable, -1))
		vCover := fulls[1] | (shiftMasked(stable, 8) & shiftMasked(stable, -8))
		d9Cover := fulls[2] | (shiftMasked(stable, 9) & shiftMasked(stable, -9))
		d7Cover := fulls[3] | (shiftMasked(stable, 7) & shiftMasked(stable, -7))
		next := stable | (P & hCover & vCover & d9Cover & d7Cover)
		if next == stable {
			break
		}
		stable = next
	}
	return stable, fulls
}

// GetStability returns the number of P discs that are stable: guaranteed
// never to flip for the remainder of the game regardless of how play
// continues.
func GetStability(P, O Bitboard) int {
	stable, _ := stableDiscs(P, O)
	return PopCount(stable)
}

// GetStabilityFulls is GetStability plus the full-lines array computed
// along the way, so a caller (the local/global-hash searches) can derive
// solid_opp = fulls[4] & O for the hash-key solid-disc normalization in
// the same pass instead of recomputing full-lines a second time.
func GetStabilityFulls(P, O Bitboard) (int, [5]Bitboard) {
	stable, fulls := stableDiscs(P, O)
	return PopCount(stable), fulls
}
