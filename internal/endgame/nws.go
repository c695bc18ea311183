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
	"github.com/frankkopp/othello-endgame/internal/assert"
	"github.com/frankkopp/othello-endgame/internal/board"
	"github.com/frankkopp/othello-endgame/internal/hashtable"
	"github.com/frankkopp/othello-endgame/internal/movegen"
	"github.com/frankkopp/othello-endgame/internal/parity"
	"github.com/frankkopp/othello-endgame/internal/stability"

	. "github.com/frankkopp/othello-endgame/internal/bitutil"
)

// nwsStabilityThreshold[n] is the alpha level at or above which the
// stability cutoff is worth attempting at n empties in the global-hash
// search. Below the threshold the cutoff almost never fires and the
// stability computation is wasted work. Entries of ScoreInf disable the
// attempt entirely.
var nwsStabilityThreshold = [64]int{
	ScoreInf, ScoreInf, ScoreInf, ScoreInf, 6, 8, 10, 12,
	14, 16, 20, 22, 24, 26, 28, 30,
	32, 34, 36, 38, 40, 42, 44, 46,
	48, ScoreInf, ScoreInf, ScoreInf, ScoreInf, ScoreInf, ScoreInf, ScoreInf,
	ScoreInf, ScoreInf, ScoreInf, ScoreInf, ScoreInf, ScoreInf, ScoreInf, ScoreInf,
	ScoreInf, ScoreInf, ScoreInf, ScoreInf, ScoreInf, ScoreInf, ScoreInf, ScoreInf,
	ScoreInf, ScoreInf, ScoreInf, ScoreInf, ScoreInf, ScoreInf, ScoreInf, ScoreInf,
	ScoreInf, ScoreInf, ScoreInf, ScoreInf, ScoreInf, ScoreInf, ScoreInf, ScoreInf,
}

// NWSEndgame is the main null-window entry point of the endgame core
// (spec.md section 6): it routes on ctx.NEmpties into the depth kernels
// (0..4), the hash-less shallow search (5..DepthToShallowSearch), the
// thread-local-hash search (..DepthToUseLocalHash) and the global-hash
// search above that. The return value obeys the fail-soft null-window
// convention: a score <= alpha is an upper bound, a score > alpha a
// lower bound, and either is exact when it equals the true minimax score
// of the position.
func NWSEndgame(ctx *Context, alpha int) int {
	if assert.DEBUG {
		assert.Assert(alpha >= ScoreMin && alpha < ScoreMax, "NWSEndgame: alpha %d outside [-64, 63]", alpha)
		assert.Assert(ctx.Board.Player&ctx.Board.Opponent == 0, "NWSEndgame: overlapping bitboards")
	}
	switch n := ctx.NEmpties; {
	case n == 0:
		ctx.Nodes++
		ctx.Stats.Nodes++
		return Solve0(ctx.Board.Player)
	case n <= 4:
		return solveSmall(ctx, alpha)
	case n <= config.Settings.Endgame.DepthToShallowSearch:
		return SearchShallow(ctx, alpha)
	case n <= config.Settings.Endgame.DepthToUseLocalHash:
		return SearchLocalHash(ctx, alpha)
	default:
		return SearchGlobalHash(ctx, alpha)
	}
}

// solveSmall feeds a root call with 1..4 empties into the matching depth
// kernel. The recursive searches never come through here - SearchShallow
// calls Solve4 directly when a child reaches four empties - but a caller
// is allowed to hand NWSEndgame any endgame position, including one the
// kernels would otherwise only see as a descendant.
func solveSmall(ctx *Context, alpha int) int {
	ctx.Nodes++
	ctx.Stats.Nodes++
	P, O := ctx.Board.Player, ctx.Board.Opponent
	switch ctx.NEmpties {
	case 1:
		return Solve1(P, O, alpha, ctx.Empties.First())
	case 2:
		var sq [2]int
		sq[0] = ctx.Empties.First()
		sq[1] = ctx.Empties.Next(sq[0])
		return Solve2(P, O, alpha, ctx.Parity, sq)
	case 3:
		var sq [3]int
		sq[0] = ctx.Empties.First()
		sq[1] = ctx.Empties.Next(sq[0])
		sq[2] = ctx.Empties.Next(sq[1])
		return Solve3(P, O, alpha, ctx.Parity, sq)
	default:
		return Solve4(P, O, alpha, ctx.Parity, collect4(ctx.Empties))
	}
}

// storeGlobalBound writes a bound into the shared table, stamped with the
// table's current generation. Nothing is stored once the stop flag is set:
// a cancelled kernel's alpha return is not a usable bound (spec.md
// section 7, "Cancellation").
func storeGlobalBound(ctx *Context, key uint64, normP, normO Bitboard, lower, upper, ofssolid, depth, move, altMove int, nodesHere uint64) {
	if ctx.Global == nil || ctx.Stop.Load() {
		return
	}
	ctx.Stats.TTStores++
	ctx.Global.Store(key, uint64(normP), uint64(normO), hashtable.HashData{
		Lower:       int16(lower + ofssolid),
		Upper:       int16(upper + ofssolid),
		Depth:       uint8(depth),
		Selectivity: noSelectivity,
		Date:        ctx.Global.Date(),
		Cost:        uint8(bits.Len64(nodesHere)),
		Move:        int8(move),
		AltMove:     int8(altMove),
	})
}

// etcCut probes the shared table for each remaining child of the current
// node before any of them is searched (enhanced transposition cutoff,
// spec.md section 4.I - optional, off by default). A child entry whose
// upper bound already proves the parent's move scores above alpha fails
// the whole node high without a single recursion.
func etcCut(ctx *Context, ml *MoveList, P, O Bitboard, alpha int) (int, bool) {
	for _, m := range ml.Remaining() {
		childP, childO := play(P, O, m.Sq, m.Flipped)
		childKey := board.Board{Player: childP, Opponent: childO}.HashCode()
		data, ok := ctx.Global.Probe(childKey, uint64(childP), uint64(childO))
		if !ok {
			continue
		}
		if int(data.Depth) >= ctx.NEmpties-1 && data.Selectivity >= noSelectivity {
			if score := -int(data.Upper); score > alpha {
				ctx.Stats.EtcCuts++
				return score, true
			}
		}
	}
	return 0, false
}

// SearchGlobalHash is the 11+ empty null-window search (spec.md section
// 4.I): SearchLocalHash's structure against the shared n-way table
// instead of the per-worker one, with a per-depth alpha threshold gating
// the stability cutoff and an optional ETC pass over the children.
// Recursion descends through NWSEndgame, which switches to the local-hash
// search once a child's empty count falls to DepthToUseLocalHash.
func SearchGlobalHash(ctx *Context, alpha int) int {
	if ctx.Stop.Load() {
		return alpha
	}
	startNodes := ctx.Nodes
	ctx.Nodes++
	ctx.Stats.Nodes++

	P, O := ctx.Board.Player, ctx.Board.Opponent

	stabO, fulls := stability.GetStabilityFulls(O, P)
	if config.Settings.Endgame.UseStabilityCutoff && alpha >= nwsStabilityThreshold[ctx.NEmpties] {
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
	if ctx.Global != nil {
		ctx.Global.Prefetch(key)
		if data, ok := ctx.Global.Probe(key, uint64(normP), uint64(normO)); ok {
			ctx.Stats.TTHit++
			lower := int(data.Lower) - ofssolid
			upper := int(data.Upper) - ofssolid
			if int(data.Depth) >= ctx.NEmpties && data.Selectivity >= noSelectivity {
				if upper <= alpha || lower > alpha || lower == upper {
					ctx.Stats.TTCuts++
					if upper <= alpha {
						return upper
					}
					return lower
				}
			}
			hashMove = int(data.Move)
			altMove = int(data.AltMove)
			if hashMove != noHashMove {
				ctx.Stats.TTMoveUsed++
			}
		} else {
			ctx.Stats.TTMiss++
		}
	}

	ml := GenerateMoveList(ctx, P, O)
	if ml.Len() == 0 {
		if movegen.GetMoves(O, P) == 0 {
			return BoardSolve(P, O, ctx.NEmpties)
		}
		ctx.Board = board.Board{Player: O, Opponent: P}
		score := -SearchGlobalHash(ctx, -alpha-1)
		ctx.Board = board.Board{Player: P, Opponent: O}
		return score
	}
	ml.EvaluateFast(P, O, hashMove, altMove)

	if config.Settings.Endgame.UseETC && ctx.Global != nil {
		if score, cut := etcCut(ctx, &ml, P, O, alpha); cut {
			return score
		}
	}

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
			// fail-soft bound, same reasoning as the local-hash store
			storeGlobalBound(ctx, key, normP, normO, score, ScoreMax, ofssolid, ctx.NEmpties, bestMove, hashMove, ctx.Nodes-startNodes)
			return score
		}
	}
	storeGlobalBound(ctx, key, normP, normO, ScoreMin, best, ofssolid, ctx.NEmpties, bestMove, hashMove, ctx.Nodes-startNodes)
	return best
}

// Solve returns the exact minimax score of ctx's position by narrowing
// the [ScoreMin, ScoreMax] window with a dichotomic sequence of
// null-window probes: every NWSEndgame return tightens one side of the
// window (fail-soft), so the loop converges onto the exact score. If the
// stop flag is raised mid-sequence the best bound so far is returned;
// like any cancelled result it must not be treated as exact.
func Solve(ctx *Context) int {
	low, high := ScoreMin, ScoreMax
	for low < high {
		// alpha lands in [low, high-1], so every probe strictly tightens
		// at least one side of the window.
		alpha := low + (high-low)/2
		score := NWSEndgame(ctx, alpha)
		if ctx.Stop.Load() {
			break
		}
		if score > alpha {
			low = score
		} else {
			high = score
		}
	}
	return low
}
