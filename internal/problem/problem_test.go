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

package problem

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/frankkopp/othello-endgame/internal/bitutil"
)

func TestParseOrientsBoardToSideToMove(t *testing.T) {
	line := strings.Repeat("X", 62) + "O-" + " X; H8:+64"
	p, err := Parse(line)
	require.NoError(t, err)
	assert.True(t, p.BlackToMove)
	assert.Equal(t, 62, PopCount(p.Board.Player))
	assert.Equal(t, 1, PopCount(p.Board.Opponent))
	assert.Equal(t, 1, p.Board.NEmpties())
	assert.True(t, p.HasExpected)
	assert.Equal(t, 64, p.Expected)

	// same discs, white to move: halves swap
	pw, err := Parse(strings.Repeat("X", 62) + "O- O; -64")
	require.NoError(t, err)
	assert.False(t, pw.BlackToMove)
	assert.Equal(t, p.Board.Player, pw.Board.Opponent)
	assert.Equal(t, p.Board.Opponent, pw.Board.Player)
	assert.Equal(t, -64, pw.Expected)
}

func TestParseWithoutAnnotation(t *testing.T) {
	p, err := Parse(strings.Repeat("-", 64) + " X")
	require.NoError(t, err)
	assert.False(t, p.HasExpected)
	assert.Equal(t, 64, p.Board.NEmpties())
}

func TestParseErrors(t *testing.T) {
	cases := []string{
		"",
		"XO- X",
		strings.Repeat("X", 64),            // no side to move
		strings.Repeat("Z", 64) + " X",     // bad board char
		strings.Repeat("X", 64) + " ?; +2", // bad side char
	}
	for _, line := range cases {
		_, err := Parse(line)
		assert.Error(t, err, "line %q", line)
	}
}

func TestLoadFile(t *testing.T) {
	problems, err := LoadFile("testdata/sample.obf")
	require.NoError(t, err)
	require.Len(t, problems, 6)
	for _, p := range problems {
		assert.True(t, p.HasExpected, "%s", p.ID)
		assert.Contains(t, p.ID, "sample.obf:")
		assert.Equal(t, Bitboard(0), p.Board.Player&p.Board.Opponent)
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile("testdata/does-not-exist.obf")
	assert.Error(t, err)
}

func TestSquareName(t *testing.T) {
	assert.Equal(t, "A1", SquareName(0))
	assert.Equal(t, "H1", SquareName(7))
	assert.Equal(t, "A8", SquareName(56))
	assert.Equal(t, "H8", SquareName(63))
	assert.Equal(t, "--", SquareName(64))
	assert.Equal(t, "--", SquareName(-1))
}
