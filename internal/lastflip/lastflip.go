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

// Package lastflip computes the outcome of the sole remaining move on a
// board with exactly one empty square, without going through the general
// move generator: O is fully determined by P and the empty square, so the
// whole computation collapses to an 8-direction scan from that square.
package lastflip

import (
	. "github.com/frankkopp/othello-endgame/internal/bitutil"
)

var directions = [8]int{8, -8, 1, -1, 9, 7, -7, -9}

func shift(b Bitboard, dir int) Bitboard {
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

// flipCount scans the eight directions from xb and returns the number of
// contiguous other-bits that would flip for mover, i.e. popcount(Flip(x,
// mover, other)) computed directly rather than via the general flip mask.
func flipCount(mover, other, xb Bitboard) int {
	n := 0
	for _, dir := range directions {
		var run Bitboard
		cur := shift(xb, dir)
		for cur&other != 0 {
			run |= cur
			cur = shift(cur, dir)
		}
		if cur&mover != 0 {
			n += PopCount(run)
		}
	}
	return n
}

// Count returns the number of discs flipped if P plays at x, on a board
// with x as the only empty square (O is therefore ^P with x cleared).
// Zero iff x is not a legal move for P.
func Count(x Square, P Bitboard) int {
	xb := x.Bit()
	O := ^P &^ xb
	return flipCount(P, O, xb)
}

// LastFlip returns twice Count(x, P): the doubling lets a caller pack both
// players' flip counts for x into one 16-bit word (low byte P, high byte
// ~P) without a second scan, per spec.md section 4.D.
func LastFlip(x Square, P Bitboard) int {
	return 2 * Count(x, P)
}

// OpponentCount returns the number of discs flipped if the opponent (~P
// restricted to the board, x empty) plays at x instead - used by solve_1
// when P has no flip there and the square must be tested for a pass-then-
// opponent-move resolution.
func OpponentCount(x Square, P Bitboard) int {
	xb := x.Bit()
	O := ^P &^ xb
	return flipCount(O, P, xb)
}
