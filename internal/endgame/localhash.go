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
	"math/bits"

	"github.com/frankkopp/othello-endgame/config"
	"github.com/frankkopp/othello-endgame/internal/board"
	"github.com/frankkopp/othello-endgame/internal/hashtable"
	"github.com/frankkopp/othello-endgame/internal/movegen"
	"github.com/frankkopp/othello-endgame/internal/parity"
	"github.com/frankkopp/othello-endgame/internal/stability"

	. "github.com/frankkopp/othello-endgame/internal/bitutil"
)

// storeLocalBound writes ctx's thread-local hash entry for (normP, normO):
// the local table has no collision chain and no replacement decision, so
// this always overwrites (spec.md section 3, "Thread-local hash").
func storeLocalBound(ctx *Context, key, normP, normO uint64, lower, upper, ofssolid, depth, move, altMove int, nodesHere uint64) {
	if ctx.Local == nil || ctx.Stop.Load() {
		return
	}
	ctx.Stats.LocalStores++
	var date uint32
	if ctx.Global != nil {
		date = ctx.Global.Date()
	}
	ctx.Local.Store(key, normP, normO, hashtable.HashData{
		Lower:       int16(lower + ofssolid),
		Upper:       int16(upper + ofssolid),
		Depth:       uint8(depth),
		Selectivity: noSelectivity,
		Date:        date,
		Cost:        uint8(bits.Len64(nodesHere)),
		Move:        int8(move),
		AltMove:     int8(altMove),
	})
}

// SearchLocalHash is the 7..10 empty null-window search (spec.md section
// 4.H): adds solid-opponent hash-key normalization, a per-thread 1-way
// transposition table consulted for a cutoff or a hashmove hint, and
// move evaluation (MoveList.EvaluateFast/NextBest) on top of
// SearchShallow's stability cutoff and parity ordering.
func SearchLocalHash(ctx *Context, alpha int) int {
	if ctx.Stop.Load() {
		return alpha
	}
	startNodes := ctx.Nodes
	ctx.Nodes++
	ctx.Stats.Nodes++

	P, O := ctx.Board.Player, ctx.Board.Opponent

	stabO, fulls := stability.GetStabilityFulls(O, P)
	if config.Settings.Endgame.UseStabilityCutoff {
		if score := ScoreMax - 2*stabO; score <= alpha {
			ctx.Stats.StabilityCuts++
			return score
		}
	}

	var normP, normO Bitboard
	var ofssolid int
	if ctx.NEmpties < config.Settings.Endgame.MaskSolidDepth {
		solidOpp := fulls[4] & O
		ofssolid = 2 * PopCount(solidOpp)
		normP, normO = P^solidOpp, O^solidOpp
	} else {
		normP, normO = P, O
	}
	key := board.Board{Player: normP, Opponent: normO}.HashCode()

	hashMove, altMove := noHashMove, noHashMove
	if ctx.Local != nil {
		if data, ok := ctx.Local.Probe(key, uint64(normP), uint64(normO)); ok {
			ctx.Stats.LocalHit++
			lower := int(data.Lower) - ofssolid
			upper := int(data.Upper) - ofssolid
			if int(data.Depth) >= ctx.NEmpties && data.Selectivity >= noSelectivity {
				if upper <= alpha {
					ctx.Stats.LocalCuts++
					return upper
				}
				if lower > alpha {
					ctx.Stats.LocalCuts++
					return lower
				}
				if lower == upper {
					ctx.Stats.LocalCuts++
					return lower
				}
			}
			hashMove = int(data.Move)
			altMove = int(data.AltMove)
		} else {
			ctx.Stats.LocalMiss++
		}
	}

	ml := GenerateMoveList(ctx, P, O)
	if ml.Len() == 0 {
		if movegen.GetMoves(O, P) == 0 {
			return BoardSolve(P, O, ctx.NEmpties)
		}
		ctx.Board = board.Board{Player: O, Opponent: P}
		score := -SearchLocalHash(ctx, -alpha-1)
		ctx.Board = board.Board{Player: P, Opponent: O}
		return score
	}
	ml.EvaluateFast(P, O, hashMove, altMove)

	best := -ScoreInf
	bestMove := noHashMove
	for ml.Len() > 0 {
		m := ml.NextBest()

		oldParity := ctx.Parity
		ctx.Parity = parity.Flip(ctx.Parity, m.Sq)
		ctx.Empties.Remove(m.Sq)
		ctx.NEmpties--
		childP, childO := play(P, O, m.Sq, m.Flipped)
		ctx.Board = board.Board{Player: childP, Opponent: childO}

		score := -NWSEndgame(ctx, -alpha-1)

		ctx.Board = board.Board{Player: P, Opponent: O}
		ctx.NEmpties++
		ctx.Empties.Restore(m.Sq)
		ctx.Parity = oldParity

		if score > best {
			best = score
			bestMove = m.Sq
		}
		if score > alpha {
			// fail-soft: the returned score is itself a valid lower bound,
			// tighter than alpha+1, and makes a re-probe of the same node
			// return the identical value.
			storeLocalBound(ctx, key, uint64(normP), uint64(normO), score, ScoreMax, ofssolid, ctx.NEmpties, bestMove, hashMove, ctx.Nodes-startNodes)
			return score
		}
	}
	storeLocalBound(ctx, key, uint64(normP), uint64(normO), ScoreMin, best, ofssolid, ctx.NEmpties, bestMove, hashMove, ctx.Nodes-startNodes)
	return best
}
