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

// Package stability computes which discs can never flip for the rest of
// the game: the edge-stability table that seeds get_stability, the
// full-line masks used both to seed it and to normalize hash keys, and
// the fixed-point disc-stability growth itself.
package stability

import (
	. "github.com/frankkopp/othello-endgame/internal/bitutil"
)

// edgeUnstable[p][o] is the set of p's bits (p, o disjoint bytes over an
// isolated 8-cell line) that can be flipped by some sequence of moves
// played by o along that line alone. Built once at startup by recursive
// fixed-point search over the 256x256 reachable (p,o) pairs - the 1D
// analogue of a full edge (a whole rank, file, or the two diagonals
// would need their own longer table; a board edge is exactly 8 cells).
var edgeUnstable [256][256]uint8
var edgeComputed [256][256]bool

func init() {
	for p := 0; p < 256; p++ {
		for o := 0; o < 256; o++ {
			if p&o == 0 {
				computeEdgeUnstable(uint8(p), uint8(o))
			}
		}
	}
}

// lineFlip returns the bitmask of other's bits that flip if mover plays
// at cell m (0..7) on an isolated 8-cell line - board edges don't wrap,
// so only the two linear directions (increasing/decreasing index) apply.
func lineFlip(m int, mover, other uint8) uint8 {
	var flip uint8
	var run uint8
	for i := m + 1; i < 8 && other&(1<<uint(i)) != 0; i++ {
		run |= 1 << uint(i)
	}
	i := m + 1
	for i < 8 && other&(1<<uint(i)) != 0 {
		i++
	}
	if i < 8 && mover&(1<<uint(i)) != 0 {
		flip |= run
	}
	run = 0
	i = m - 1
	for i >= 0 && other&(1<<uint(i)) != 0 {
		run |= 1 << uint(i)
		i--
	}
	if i >= 0 && mover&(1<<uint(i)) != 0 {
		flip |= run
	}
	return flip
}

func lineMoves(mover, other uint8) uint8 {
	occ := mover | other
	var moves uint8
	for m := 0; m < 8; m++ {
		if occ&(1<<uint(m)) != 0 {
			continue
		}
		if lineFlip(m, mover, other) != 0 {
			moves |= 1 << uint(m)
		}
	}
	return moves
}

// computeEdgeUnstable fills edgeUnstable[p][o]: which of p's bits can ever
// flip under some sequence of o-moves along this 8-cell line. p's own
// hypothetical moves are never explored because filling an empty cell
// with p can only remove future o move spots, never create a new flip
// opportunity against another p disc - so the adversarial (worst case for
// p) search only needs to branch on o's moves.
func computeEdgeUnstable(p, o uint8) uint8 {
	if edgeComputed[p][o] {
		return edgeUnstable[p][o]
	}
	edgeComputed[p][o] = true // break cycles defensively; filled below

	moves := lineMoves(o, p)
	if moves == 0 {
		edgeUnstable[p][o] = 0
		return 0
	}
	var unstable uint8
	for m := 0; m < 8; m++ {
		if moves&(1<<uint(m)) == 0 {
			continue
		}
		flip := lineFlip(m, o, p)
		if flip == 0 {
			continue
		}
		unstable |= flip
		newP := p &^ flip
		newO := o | flip | (1 << uint(m))
		unstable |= computeEdgeUnstable(newP, newO)
	}
	edgeUnstable[p][o] = unstable
	return unstable
}

// edge is the eight squares of one board edge in line order (index 0..7).
type edge [8]Square

var edges = [4]edge{
	{0, 1, 2, 3, 4, 5, 6, 7},     // rank 1
	{56, 57, 58, 59, 60, 61, 62, 63}, // rank 8
	{0, 8, 16, 24, 32, 40, 48, 56},   // file A
	{7, 15, 23, 31, 39, 47, 55, 63},  // file H
}

func extractByte(b Bitboard, e edge) uint8 {
	var v uint8
	for i, sq := range e {
		if b&sq.Bit() != 0 {
			v |= 1 << uint(i)
		}
	}
	return v
}

func packByte(v uint8, e edge) Bitboard {
	var b Bitboard
	for i, sq := range e {
		if v&(1<<uint(i)) != 0 {
			b |= sq.Bit()
		}
	}
	return b
}

// GetStableEdge returns the bitmask of P's discs that can never flip via a
// move played on their own edge line (rank 1/8, file A/H each analysed
// independently; a corner belongs to two edges and is reported stable by
// each of them once occupied, since no in-board anchor ever exists beyond
// a board edge to bracket a flip through it).
func GetStableEdge(P, O Bitboard) Bitboard {
	var stable Bitboard
	for _, e := range edges {
		pByte := extractByte(P, e)
		oByte := extractByte(O, e)
		unstable := computeEdgeUnstable(pByte, oByte)
		stable |= packByte(pByte&^unstable, e)
	}
	return stable
}
