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

package bitutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPopCount(t *testing.T) {
	tests := []struct {
		value    Bitboard
		expected int
	}{
		{0, 0},
		{FullBoard, 64},
		{1, 1},
		{Bitboard(128), 1},
		{Bitboard(7), 3},
	}
	for _, test := range tests {
		assert.Equal(t, test.expected, PopCount(test.value))
	}
}

func TestLsbMsb(t *testing.T) {
	b := Bitboard(0b0010_1000)
	assert.Equal(t, 3, Lsb(b))
	assert.Equal(t, 5, Msb(b))
}

func TestXToBitSentinels(t *testing.T) {
	assert.Equal(t, Bitboard(0), NoMove.Bit())
	assert.Equal(t, Bitboard(0), PassMove.Bit())
	assert.Equal(t, Bitboard(1), Square(0).Bit())
	assert.Equal(t, Bitboard(1)<<63, Square(63).Bit())
}

func TestVerticalMirror(t *testing.T) {
	// a single disc on A1 (bit 0) mirrors to A8 (bit 56)
	assert.Equal(t, Square(56).Bit(), VerticalMirror(Square(0).Bit()))
	assert.Equal(t, FullBoard, VerticalMirror(FullBoard))
}

func TestHorizontalMirror(t *testing.T) {
	// A1 (bit 0) mirrors to H1 (bit 7)
	assert.Equal(t, Square(7).Bit(), HorizontalMirror(Square(0).Bit()))
	assert.Equal(t, FullBoard, HorizontalMirror(FullBoard))
}

func TestTranspose(t *testing.T) {
	// B1 (row 0, col 1, bit 1) transposes to A2 (row 1, col 0, bit 8)
	assert.Equal(t, Square(8).Bit(), Transpose(Square(1).Bit()))
	assert.Equal(t, FullBoard, Transpose(FullBoard))
}

func TestMirrorInvolution(t *testing.T) {
	sample := Bitboard(0x8100_4200_2400_1800)
	assert.Equal(t, sample, VerticalMirror(VerticalMirror(sample)))
	assert.Equal(t, sample, HorizontalMirror(HorizontalMirror(sample)))
	assert.Equal(t, sample, Transpose(Transpose(sample)))
}
