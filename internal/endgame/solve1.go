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
	"github.com/frankkopp/othello-endgame/internal/lastflip"

	. "github.com/frankkopp/othello-endgame/internal/bitutil"
)

// Solve1 resolves the one-empty-square case directly from disc counts via
// lastflip, never generating a move list. alpha is accepted only to keep
// the kernel's call shape uniform with solve_2/3/4 (every child call in
// those kernels negates and passes an alpha down); with a single empty
// left the result is forced, so there is nothing to cut off against it.
//
// This is the lazy-low-cut variant of the two cutoff modes spec.md
// section 9 lists as equivalent: compute P's flip first and return
// immediately if P has one, only falling through to test the opponent's
// flip when P has none.
func Solve1(P, O Bitboard, alpha int, x int) int {
	sq := Square(x)

	if doubled := lastflip.LastFlip(sq, P); doubled != 0 {
		// P plays the last move: final P count is popcount(P)+1+doubled/2,
		// final O count is 64 minus that (board is now full).
		return 2*PopCount(P) - 62 + doubled
	}

	if oDoubled := 2 * lastflip.OpponentCount(sq, P); oDoubled != 0 {
		// P has no flip at x; the side passes and O plays it instead. The
		// mirror of the P-plays formula, negated because the return value
		// stays in P's (the original side to move's) perspective.
		return -(2*PopCount(O) - 62 + oDoubled)
	}

	// Neither side can play the last empty: it stays empty and counts to
	// neither side - distinct from BoardSolve's empties-to-winner rule,
	// which only applies when the whole board (not one square) is settled
	// by a double pass.
	return PopCount(P) - PopCount(O)
}
