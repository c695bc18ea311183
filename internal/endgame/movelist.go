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

	. "github.com/frankkopp/othello-endgame/internal/bitutil"
)

// Move is one legal move found during generation: the square, its flip
// mask, and a move-ordering score filled in later by EvaluateFast. The
// source threads this through a singly linked list per call frame
// (spec.md section 3); a slice with a consumption pointer gives the same
// "evaluate once, repeatedly pull the best remaining" behaviour with
// plain Go slices instead of hand-linked nodes.
type Move struct {
	Sq      int
	Flipped Bitboard
	Score   int
}

// MoveList holds the legal moves for one node of the local/global-hash
// search, plus a cursor separating "already returned by NextBest" from
// "still to choose from".
type MoveList struct {
	moves []Move
	pos   int
}

// GenerateMoveList walks ctx's empties list and collects every square
// that is a legal move for P against O.
func GenerateMoveList(ctx *Context, P, O Bitboard) MoveList {
	ml := MoveList{moves: make([]Move, 0, ctx.NEmpties)}
	for x := ctx.Empties.First(); x != sentinel; x = ctx.Empties.Next(x) {
		flipped := movegen.Flip(Square(x), P, O)
		if flipped != 0 {
			ml.moves = append(ml.moves, Move{Sq: x, Flipped: flipped})
		}
	}
	return ml
}

// Len reports how many moves remain unconsumed.
func (ml *MoveList) Len() int {
	return len(ml.moves) - ml.pos
}

// Remaining exposes the unconsumed moves for read-only passes such as the
// ETC child probing, without disturbing the NextBest cursor.
func (ml *MoveList) Remaining() []Move {
	return ml.moves[ml.pos:]
}

// corner/xSquare/cSquare tables for the static move-ordering weights: X
// and C squares are dangerous to occupy while their corner is still
// empty, because they hand the opponent an easy path to that corner.
var (
	cornerSquares = [4]int{0, 7, 56, 63}
	xSquares      = [4]int{9, 14, 49, 54}
	cSquarePairs  = [4][2]int{{1, 8}, {6, 15}, {48, 57}, {55, 62}}
)

func staticSquareWeight(sq int, occupied Bitboard) int {
	for i, corner := range cornerSquares {
		switch sq {
		case corner:
			return 80
		case xSquares[i]:
			if occupied&Square(corner).Bit() == 0 {
				return -60
			}
			return 5
		case cSquarePairs[i][0], cSquarePairs[i][1]:
			if occupied&Square(corner).Bit() == 0 {
				return -40
			}
			return 5
		}
	}
	return 0
}

// EvaluateFast scores every unconsumed move: a hashmove or alt-move (from
// a prior hash hit at this node) always sorts first, otherwise a move is
// scored by the static corner/X/C-square weight of its square plus a
// small bonus for reducing the opponent's mobility (spec.md section
// 4.H, "movelist_evaluate_fast").
func (ml *MoveList) EvaluateFast(P, O Bitboard, hashMove, altMove int) {
	occupied := P | O
	for i := ml.pos; i < len(ml.moves); i++ {
		m := &ml.moves[i]
		switch {
		case m.Sq == hashMove:
			m.Score = 1_000_000
		case m.Sq == altMove:
			m.Score = 500_000
		default:
			childP, childO := play(P, O, m.Sq, m.Flipped)
			oppMoves := movegen.GetMoves(childP, childO)
			m.Score = staticSquareWeight(m.Sq, occupied) + (10 - PopCount(oppMoves))
		}
	}
}

// NextBest selects the highest-scored unconsumed move, rotates it to the
// front of the unconsumed range and returns it - the slice equivalent of
// move_next_best's linked-list rotation.
func (ml *MoveList) NextBest() Move {
	best := ml.pos
	for i := ml.pos + 1; i < len(ml.moves); i++ {
		if ml.moves[i].Score > ml.moves[best].Score {
			best = i
		}
	}
	ml.moves[ml.pos], ml.moves[best] = ml.moves[best], ml.moves[ml.pos]
	m := ml.moves[ml.pos]
	ml.pos++
	return m
}
