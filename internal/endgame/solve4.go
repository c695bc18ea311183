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
	"github.com/frankkopp/othello-endgame/internal/movegen"
	"github.com/frankkopp/othello-endgame/internal/parity"

	. "github.com/frankkopp/othello-endgame/internal/bitutil"
)

// Solve4 is the deepest hand-specialised kernel: four empties, classified
// by parity.Sort4 into the odd-quadrant-first child order (the table-free
// equivalent of the twelve-shuffle-mask parity-case table, see
// internal/parity), recursing into Solve3 on a flip.
func Solve4(P, O Bitboard, alpha int, par uint8, sq [4]int) int {
	ordered := parity.Sort4(par, sq)
	best := -ScoreInf
	anyMove := false

	for i, x := range ordered {
		flipped := movegen.Flip(Square(x), P, O)
		if flipped == 0 {
			continue
		}
		anyMove = true
		var rest [3]int
		k := 0
		for j, y := range ordered {
			if j != i {
				rest[k] = y
				k++
			}
		}
		childP, childO := play(P, O, x, flipped)
		score := -Solve3(childP, childO, -alpha-1, parity.Flip(par, x), rest)
		if score > best {
			best = score
		}
		if score > alpha {
			return score
		}
	}
	if anyMove {
		return best
	}

	for _, x := range ordered {
		if movegen.Flip(Square(x), O, P) != 0 {
			return -Solve4(O, P, -alpha-1, par, sq)
		}
	}
	return BoardSolve(P, O, 4)
}
