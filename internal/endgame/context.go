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

// Package endgame is the last-few-empties exact solver: the depth-1..4
// hand-specialised kernels and the three null-window searches (shallow,
// local-hash, global-hash) that route down into them as n_empties shrinks.
// Every exported entry point takes a *Context, the thread-local state one
// worker owns for the duration of one root search.
package endgame

import (
	"github.com/frankkopp/othello-endgame/internal/board"
	"github.com/frankkopp/othello-endgame/internal/hashtable"
	"github.com/frankkopp/othello-endgame/internal/parity"
	"github.com/frankkopp/othello-endgame/internal/stats"
	"github.com/frankkopp/othello-endgame/internal/util"

	. "github.com/frankkopp/othello-endgame/internal/bitutil"
)

// ScoreMax/ScoreInf bound the disc-difference score space (spec.md section
// 3, "Score space").
const (
	ScoreMax = 64
	ScoreMin = -64
	ScoreInf = 66
)

// noSelectivity is the "no selectivity reduction applied" level: every
// exact-solver kernel in this package is selectivity 0, since none of
// them ever apply a probabilistic/forward-pruning cut.
const noSelectivity uint8 = 0

// noHashMove marks "no hash move recorded" when passed to
// MoveList.EvaluateFast - distinct from bitutil.NoMove (the empties-list
// sentinel 64), since a hashmove is a real square index 0..63 or
// genuinely absent (-1).
const noHashMove = -1

// HashTable is the shape both transposition table kinds satisfy; kernels
// that accept one as a parameter can be handed either the shared n-way
// Table or a per-worker LocalTable.
type HashTable interface {
	Probe(key, player, opponent uint64) (hashtable.HashData, bool)
	Store(key, player, opponent uint64, data hashtable.HashData)
	Prefetch(key uint64)
}

var (
	_ HashTable = (*hashtable.Table)(nil)
	_ HashTable = (*hashtable.LocalTable)(nil)
)

// Context is the thread-local state one worker carries through a single
// root search: never shared across goroutines, never synchronized (spec.md
// section 5, "Thread-local (no synchronization)").
type Context struct {
	Board    board.Board
	Empties  *EmptyList
	Parity   uint8
	NEmpties int
	Nodes    uint64
	Stats    stats.Statistics
	Stop     *util.Bool

	Local  *hashtable.LocalTable
	Global *hashtable.Table
}

// NewContext builds a fresh search context for b, sharing the given global
// table (may be nil if the caller never reaches 11+ empties) and owning a
// private local table (may also be nil if the caller never reaches 7..10
// empties).
func NewContext(b board.Board, global *hashtable.Table, local *hashtable.LocalTable) *Context {
	occ := b.Player | b.Opponent
	squares := make([]int, 0, 64)
	for sq := 0; sq < 64; sq++ {
		if occ&Square(sq).Bit() == 0 {
			squares = append(squares, sq)
		}
	}
	return &Context{
		Board:    b,
		Empties:  NewEmptyList(squares),
		Parity:   parity.Of(^occ),
		NEmpties: len(squares),
		Stop:     util.NewBool(false),
		Local:    local,
		Global:   global,
	}
}
