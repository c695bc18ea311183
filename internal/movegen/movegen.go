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

// Package movegen computes legal moves and disc flips for a (player,
// opponent) bitboard pair: the dumb-fill direction sweep a bitboard chess
// engine would use for sliding attacks, specialised to Othello's "bracket
// a run of opponent discs between the new disc and an existing one" rule.
package movegen

import (
	. "github.com/frankkopp/othello-endgame/internal/bitutil"
)

// direction shift amounts, matching the eight compass directions.
const (
	dirN  = 8
	dirS  = -8
	dirE  = 1
	dirW  = -1
	dirNE = 9
	dirNW = 7
	dirSE = -7
	dirSW = -9
)

var directions = [8]int{dirN, dirS, dirE, dirW, dirNE, dirNW, dirSE, dirSW}

// shift moves every bit of b one step in dir, clearing the file that would
// wrap around the board edge for the four directions that cross files.
func shift(b Bitboard, dir int) Bitboard {
	switch dir {
	case dirN:
		return b << 8
	case dirS:
		return b >> 8
	case dirE:
		return (b &^ FileHMask) << 1
	case dirW:
		return (b &^ FileAMask) >> 1
	case dirNE:
		return (b &^ FileHMask) << 9
	case dirNW:
		return (b &^ FileAMask) << 7
	case dirSE:
		return (b &^ FileHMask) >> 7
	case dirSW:
		return (b &^ FileAMask) >> 9
	}
	return 0
}

// GetMoves returns the union of every legal move for P against O: a
// square x is legal iff, along at least one of the eight directions from
// x, there is a non-empty run of O discs terminated by a P disc.
func GetMoves(P, O Bitboard) Bitboard {
	empty := ^(P | O)
	var moves Bitboard
	for _, dir := range directions {
		run := shift(P, dir) & O
		for i := 0; i < 5; i++ {
			run |= shift(run, dir) & O
		}
		moves |= shift(run, dir) & empty
	}
	return moves
}

// CanMove reports whether P has any legal move against O.
func CanMove(P, O Bitboard) bool {
	return GetMoves(P, O) != 0
}

// Flip returns the bitmask of O discs that flip if P plays at x. The
// result is always a subset of O disjoint from x, and is zero iff x is
// not a legal move for P.
func Flip(x Square, P, O Bitboard) Bitboard {
	xb := x.Bit()
	var flips Bitboard
	for _, dir := range directions {
		var run Bitboard
		cur := shift(xb, dir)
		for cur&O != 0 {
			run |= cur
			cur = shift(cur, dir)
		}
		if cur&P != 0 {
			flips |= run
		}
	}
	return flips
}

// centralMask is the central 6x6 sub-board (ranks/files 2..7), used only
// by move-count heuristics outside the exact-score core.
const centralMask Bitboard = 0x007E7E7E7E7E7E00

// GetMoves6x6 returns the legal moves for P against O restricted to the
// central 6x6 sub-board.
func GetMoves6x6(P, O Bitboard) Bitboard {
	return GetMoves(P, O) & centralMask
}
