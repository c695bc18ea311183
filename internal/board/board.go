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

// Package board holds the bitboard-pair position representation shared by
// every solver kernel: player-to-move and opponent bitboards, the update
// and pass operations, the eight-fold symmetry group and the Zobrist hash
// used to key both transposition tables.
package board

import (
	"strings"

	"github.com/frankkopp/othello-endgame/internal/assert"

	. "github.com/frankkopp/othello-endgame/internal/bitutil"
)

// Board is an unordered pair of 64 bit bitboards. Bit i of Player is set
// iff the side to move occupies square i; bit i of Opponent iff the other
// side does. The two halves are swapped on every ply (colour means "side
// to move", not black/white).
type Board struct {
	Player   Bitboard
	Opponent Bitboard
}

// Move is the minimal information board.Update needs to apply a ply: the
// square played and the mask of opponent discs it flips. Flipped never
// includes the played square itself.
type Move struct {
	Sq      Square
	Flipped Bitboard
}

// NewInitial returns the standard Othello starting position with black
// (the side to move) holding D5 and E4, white holding D4 and E5.
func NewInitial() Board {
	const (
		d4 = Square(8*3 + 3)
		d5 = Square(8*4 + 3)
		e4 = Square(8*3 + 4)
		e5 = Square(8*4 + 4)
	)
	return Board{
		Player:   d5.Bit() | e4.Bit(),
		Opponent: d4.Bit() | e5.Bit(),
	}
}

// NEmpties returns the number of empty squares.
func (b Board) NEmpties() int {
	return 64 - PopCount(b.Player|b.Opponent)
}

// SwapPlayers exchanges the two halves; called after Update and as the
// entirety of Pass.
func (b *Board) SwapPlayers() {
	b.Player, b.Opponent = b.Opponent, b.Player
}

// Update applies m: the played square and the flipped discs join Player,
// leave Opponent, then the two halves swap so Player again means "side to
// move". Contract: m.Flipped is a subset of the pre-call Opponent and
// m.Sq was empty.
func (b *Board) Update(m Move) {
	if assert.DEBUG {
		assert.Assert(b.Player&b.Opponent == 0, "Board Update: overlapping bitboards")
		assert.Assert(m.Flipped&^b.Opponent == 0, "Board Update: flip mask not a subset of Opponent for square %d", m.Sq)
		assert.Assert((b.Player|b.Opponent)&m.Sq.Bit() == 0, "Board Update: square %d is not empty", m.Sq)
	}
	flip := m.Flipped | m.Sq.Bit()
	b.Player ^= flip
	b.Opponent ^= m.Flipped
	b.SwapPlayers()
}

// Pass records a pass: no discs change, only the side to move swaps.
func (b *Board) Pass() {
	b.SwapPlayers()
}

// Symmetry applies one of the eight combinations of horizontal mirror,
// vertical mirror and diagonal transpose to both halves, s in 0..7. Bit 0
// of s selects horizontal mirror, bit 1 vertical mirror, bit 2 transpose.
func (b Board) Symmetry(s int) Board {
	p, o := b.Player, b.Opponent
	if s&1 != 0 {
		p, o = HorizontalMirror(p), HorizontalMirror(o)
	}
	if s&2 != 0 {
		p, o = VerticalMirror(p), VerticalMirror(o)
	}
	if s&4 != 0 {
		p, o = Transpose(p), Transpose(o)
	}
	return Board{Player: p, Opponent: o}
}

// Unique returns the lexicographically minimal board across all eight
// symmetries (Player compared first, then Opponent). Used for opening
// book normalization outside the endgame core.
func (b Board) Unique() Board {
	best := b
	for s := 1; s < 8; s++ {
		cand := b.Symmetry(s)
		if less(cand, best) {
			best = cand
		}
	}
	return best
}

func less(a, b Board) bool {
	if a.Player != b.Player {
		return a.Player < b.Player
	}
	return a.Opponent < b.Opponent
}

// String renders the position as an 8x8 diagram, '*' for the side to
// move, 'o' for the opponent, '-' for empty, A1 at the bottom left.
func (b Board) String() string {
	var sb strings.Builder
	for row := 7; row >= 0; row-- {
		for col := 0; col < 8; col++ {
			sq := Square(8*row + col)
			bit := sq.Bit()
			switch {
			case b.Player&bit != 0:
				sb.WriteByte('*')
			case b.Opponent&bit != 0:
				sb.WriteByte('o')
			default:
				sb.WriteByte('-')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
