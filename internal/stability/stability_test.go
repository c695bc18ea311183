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

package stability

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/frankkopp/othello-endgame/internal/bitutil"
)

func TestFullBoardAllStable(t *testing.T) {
	P := FullBoard
	O := Bitboard(0)
	assert.Equal(t, 64, GetStability(P, O))
}

func TestEmptyBoardZeroStability(t *testing.T) {
	assert.Equal(t, 0, GetStability(0, 0))
}

func TestCornersAlwaysEdgeStable(t *testing.T) {
	corners := []Square{0, 7, 56, 63}
	for _, c := range corners {
		P := c.Bit()
		O := Bitboard(0)
		stable := GetStableEdge(P, O)
		assert.NotEqual(t, Bitboard(0), stable&c.Bit(), "corner %d should be immediately edge-stable", c)
	}
}

func TestGetFullLinesIdentifiesFullRow(t *testing.T) {
	disc := rowMasks[0]
	full := GetFullLines(disc)
	assert.Equal(t, rowMasks[0], full[0]&rowMasks[0])
	assert.NotEqual(t, Bitboard(0), full[0])
}

func TestStabilityNeverExceedsDiscCount(t *testing.T) {
	P := Bitboard(0x00003C3C3C3C0000)
	O := Bitboard(0x3C3C000000003C3C) &^ P
	assert.LessOrEqual(t, GetStability(P, O), PopCount(P))
}

func TestGetStabilityFullsAgreesWithGetStability(t *testing.T) {
	P := FullBoard & 0xF0F0F0F0F0F0F0F0
	O := FullBoard &^ P
	count, fulls := GetStabilityFulls(P, O)
	assert.Equal(t, GetStability(P, O), count)
	assert.Equal(t, fulls[4], fulls[0]&fulls[1]&fulls[2]&fulls[3])
}
