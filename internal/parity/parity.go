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

// Package parity tracks the quadrant-parity bitmap used to order empties:
// an empty square in a quadrant that currently holds an odd number of
// empties is statistically more likely to be the last move played in
// that quadrant, so it is tried first (spec.md section 3, "Parity
// bitmap").
package parity

import (
	. "github.com/frankkopp/othello-endgame/internal/bitutil"
)

// QuadrantID maps a square to its 4x4 quadrant, 0..3: bit 1 of the index
// is the board-half along ranks, bit 0 along files.
var QuadrantID [64]int

func init() {
	for sq := 0; sq < 64; sq++ {
		row, col := sq/8, sq%8
		QuadrantID[sq] = (row/4)*2 + col/4
	}
}

// QuadrantBit is the single-bit contribution of quadrant q to the 4-bit
// parity bitmap.
func QuadrantBit(q int) uint8 {
	return 1 << uint(q)
}

// Of computes the parity bitmap from scratch: one bit per quadrant, set
// iff that quadrant currently holds an odd number of empty squares.
func Of(empty Bitboard) uint8 {
	var counts [4]int
	for sq := 0; sq < 64; sq++ {
		if empty&Square(sq).Bit() != 0 {
			counts[QuadrantID[sq]]++
		}
	}
	var p uint8
	for q := 0; q < 4; q++ {
		if counts[q]&1 != 0 {
			p |= QuadrantBit(q)
		}
	}
	return p
}

// Flip toggles the parity bit of the quadrant containing sq - called once
// per ply, for the quadrant the move was played in, instead of
// recomputing the whole bitmap from scratch.
func Flip(p uint8, sq int) uint8 {
	return p ^ QuadrantBit(QuadrantID[sq])
}

// IsOdd reports whether sq's quadrant currently has odd parity under
// bitmap p - used to partition empties into the "try first" and "try
// later" groups by SortN (the 2..4 empty solvers) and the shallow search.
func IsOdd(p uint8, sq int) bool {
	return p&QuadrantBit(QuadrantID[sq]) != 0
}

// SortN orders empty squares so odd-parity squares come first, preserving
// relative order within each group (a stable partition). This is the
// generalised, table-free equivalent of the hand-packed 32-bit shuffle
// masks the original solve_4 kernel precomputes per hole-shape: a stable
// partition produces the same child-visit order for every one of the
// twelve hole shapes the shuffle table encodes, without needing the table
// itself, and works for any small move count (solve_2/3/4 alike).
func SortN(p uint8, squares []int) []int {
	out := make([]int, 0, len(squares))
	for _, sq := range squares {
		if IsOdd(p, sq) {
			out = append(out, sq)
		}
	}
	for _, sq := range squares {
		if !IsOdd(p, sq) {
			out = append(out, sq)
		}
	}
	return out
}

// Sort4 is SortN specialised to a fixed-size array for the 4-empty kernel.
func Sort4(p uint8, squares [4]int) [4]int {
	s := SortN(p, squares[:])
	return [4]int{s[0], s[1], s[2], s[3]}
}
