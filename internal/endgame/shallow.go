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
	"github.com/frankkopp/othello-endgame/config"
	"github.com/frankkopp/othello-endgame/internal/board"
	"github.com/frankkopp/othello-endgame/internal/movegen"
	"github.com/frankkopp/othello-endgame/internal/parity"
	"github.com/frankkopp/othello-endgame/internal/stability"

	. "github.com/frankkopp/othello-endgame/internal/bitutil"
)

// collect4 drains ctx's empties list (expected to hold exactly four
// squares) into a fixed array for Solve4, in list order.
func collect4(e *EmptyList) [4]int {
	var out [4]int
	i := 0
	for x := e.First(); x != sentinel; x = e.Next(x) {
		out[i] = x
		i++
	}
	return out
}

// SearchShallow is the 5..6 empty null-window search (spec.md section
// 4.G): stability cutoff, then parity-ordered move generation with no
// hash and no move evaluation beyond the priority/other partition. It
// mutates ctx.Board/Parity/NEmpties/Empties for the duration of each
// recursive child call and always restores them before returning, so ctx
// is unchanged across this call from the caller's point of view.
func SearchShallow(ctx *Context, alpha int) int {
	if ctx.Stop.Load() {
		return alpha
	}
	ctx.Nodes++
	ctx.Stats.Nodes++

	P, O := ctx.Board.Player, ctx.Board.Opponent

	if config.Settings.Endgame.UseStabilityCutoff {
		stabO := stability.GetStability(O, P)
		if score := ScoreMax - 2*stabO; score <= alpha {
			ctx.Stats.StabilityCuts++
			return score
		}
	}

	if movegen.GetMoves(P, O) == 0 {
		if movegen.GetMoves(O, P) == 0 {
			return BoardSolve(P, O, ctx.NEmpties)
		}
		ctx.Board = board.Board{Player: O, Opponent: P}
		score := -SearchShallow(ctx, -alpha-1)
		ctx.Board = board.Board{Player: P, Opponent: O}
		return score
	}

	best := -ScoreInf
	for _, wantOdd := range [2]bool{true, false} {
		for x := ctx.Empties.First(); x != sentinel; x = ctx.Empties.Next(x) {
			if parity.IsOdd(ctx.Parity, x) != wantOdd {
				continue
			}
			flipped := movegen.Flip(Square(x), P, O)
			if flipped == 0 {
				continue
			}

			oldParity := ctx.Parity
			ctx.Parity = parity.Flip(ctx.Parity, x)
			ctx.Empties.Remove(x)
			ctx.NEmpties--
			childP, childO := play(P, O, x, flipped)
			ctx.Board = board.Board{Player: childP, Opponent: childO}

			var score int
			if ctx.NEmpties == 4 {
				sq := collect4(ctx.Empties)
				score = -Solve4(childP, childO, -alpha-1, ctx.Parity, sq)
			} else {
				score = -NWSEndgame(ctx, -alpha-1)
			}

			ctx.Board = board.Board{Player: P, Opponent: O}
			ctx.NEmpties++
			ctx.Empties.Restore(x)
			ctx.Parity = oldParity

			if score > best {
				best = score
			}
			if score > alpha {
				return score
			}
		}
	}
	return best
}
