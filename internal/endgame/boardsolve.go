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

package endgame

import (
	. "github.com/frankkopp/othello-endgame/internal/bitutil"
)

// Solve0 is the n_empties == 0 terminal: the board is completely full, so
// the score is pinned by disc count alone.
func Solve0(P Bitboard) int {
	return 2*PopCount(P) - 64
}

// BoardSolve resolves a true game end - neither side can move anywhere on
// the board, with n_empties squares still unfilled - by disc count plus
// the Othello empties-to-winner rule. Of the two parallel branches the
// source carried (one awarding empties to whichever side has more discs
// unconditionally, one only when diff != 0), this implements the latter,
// corrected one: empties go to the winner only when there is a winner
// (spec.md section 9, Open Questions).
func BoardSolve(P, O Bitboard, nEmpties int) int {
	diff := PopCount(P) - PopCount(O)
	switch {
	case diff == 0:
		return 0
	case diff > 0:
		return diff + nEmpties
	default:
		return diff - nEmpties
	}
}

// SearchSolve0 is the ctx-carrying entry point for a completely full
// board (spec.md section 6).
func SearchSolve0(ctx *Context) int {
	return Solve0(ctx.Board.Player)
}

// SearchSolve is the ctx-carrying entry point for the same resolution,
// used when a caller has already established that neither side has a
// legal move anywhere (spec.md section 6).
func SearchSolve(ctx *Context) int {
	return BoardSolve(ctx.Board.Player, ctx.Board.Opponent, ctx.NEmpties)
}
