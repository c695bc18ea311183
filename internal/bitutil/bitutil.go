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

// Package bitutil holds the low level 64 bit bitboard primitives shared by
// every other package of the endgame solver: population count, bit scan,
// the square-to-bit lookup and the three board symmetries (vertical
// mirror, horizontal mirror, diagonal transpose). None of it is specific
// to Othello move rules - it is the same kind of primitive a bitboard
// chess engine keeps in its types package.
package bitutil

import "math/bits"

// Bitboard is a 64 bit unsigned int with one bit per square. Bit i is set
// iff square i is occupied. Square numbering is little-endian rank-file:
// A1=0 ... H8=63, bit = 8*row + col, row 0 = rank 1, col 0 = file A.
type Bitboard uint64

// Square indexes a board square 0..63. 64 and 65 are the sentinels NOMOVE
// and PASS used by the empties list and the pass-move convention.
type Square int

const (
	// SquareCount is the number of real board squares.
	SquareCount = 64

	// NoMove is the sentinel square used as the empties-list head and as
	// "no move found".
	NoMove Square = 64

	// PassMove is the sentinel square used to represent a pass.
	PassMove Square = 65
)

// XToBit maps a square index (0..65) to its bitboard. Indices 64 (NoMove)
// and 65 (PassMove) map to the empty bitboard so callers never need a
// bounds check before using a move's square as an index.
var XToBit [66]Bitboard

func init() {
	for i := 0; i < SquareCount; i++ {
		XToBit[i] = Bitboard(1) << uint(i)
	}
	XToBit[NoMove] = 0
	XToBit[PassMove] = 0
}

// Bit returns the bitboard of a single square, honouring the NoMove/PassMove
// sentinels.
func (s Square) Bit() Bitboard {
	return XToBit[s]
}

// PopCount returns the number of set bits.
func PopCount(b Bitboard) int {
	return bits.OnesCount64(uint64(b))
}

// Lsb returns the index of the least significant set bit. Undefined for b == 0.
func Lsb(b Bitboard) int {
	return bits.TrailingZeros64(uint64(b))
}

// Msb returns the index of the most significant set bit. Undefined for b == 0.
func Msb(b Bitboard) int {
	return 63 - bits.LeadingZeros64(uint64(b))
}

// FileHMask is cleared before shifting east and FileAMask before shifting
// west; used by the flip/move-generation primitives built on top of this
// package.
const (
	FileAMask Bitboard = 0x0101010101010101
	FileHMask Bitboard = 0x8080808080808080
	Rank1Mask Bitboard = 0x00000000000000FF
	Rank8Mask Bitboard = 0xFF00000000000000
	FullBoard Bitboard = 0xFFFFFFFFFFFFFFFF
)

// VerticalMirror flips the board top-to-bottom (swaps rank 1 with rank 8,
// rank 2 with rank 7, and so on) by reversing the eight bytes of the word.
func VerticalMirror(b Bitboard) Bitboard {
	v := uint64(b)
	v = bits.ReverseBytes64(v)
	return Bitboard(v)
}

// HorizontalMirror flips the board left-to-right (file A with file H, and
// so on) by reversing the bits within each byte.
func HorizontalMirror(b Bitboard) Bitboard {
	v := uint64(b)
	var r uint64
	for i := 0; i < 8; i++ {
		byteVal := byte(v >> (8 * uint(i)))
		r |= uint64(reverseByte(byteVal)) << (8 * uint(i))
	}
	return Bitboard(r)
}

func reverseByte(b byte) byte {
	b = (b&0x55)<<1 | (b&0xAA)>>1
	b = (b&0x33)<<2 | (b&0xCC)>>2
	b = (b&0x0F)<<4 | (b&0xF0)>>4
	return b
}

// Transpose reflects the board across the A1-H8 diagonal (square (r,c)
// moves to (c,r)).
func Transpose(b Bitboard) Bitboard {
	var r Bitboard
	for sq := 0; sq < 64; sq++ {
		if b&(Bitboard(1)<<uint(sq)) == 0 {
			continue
		}
		row := sq / 8
		col := sq % 8
		r |= Bitboard(1) << uint(col*8+row)
	}
	return r
}
