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

package movegen

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/frankkopp/othello-endgame/internal/bitutil"
	"github.com/frankkopp/othello-endgame/internal/board"
)

func TestInitialPositionHasFourMoves(t *testing.T) {
	b := board.NewInitial()
	moves := GetMoves(b.Player, b.Opponent)
	assert.Equal(t, 4, PopCount(moves))
	assert.True(t, CanMove(b.Player, b.Opponent))
}

func TestFlipContractOnInitialPosition(t *testing.T) {
	b := board.NewInitial()
	moves := GetMoves(b.Player, b.Opponent)
	for sq := Square(0); sq < 64; sq++ {
		isLegal := moves&sq.Bit() != 0
		flip := Flip(sq, b.Player, b.Opponent)
		assert.Equal(t, isLegal, flip != 0)
		if flip != 0 {
			assert.Equal(t, flip, flip&b.Opponent, "flip must be a subset of Opponent")
			assert.Equal(t, Bitboard(0), flip&sq.Bit(), "flip must never include the played square")
		}
	}
}

func TestFlipEmptyBoardNeverLegal(t *testing.T) {
	for sq := Square(0); sq < 64; sq++ {
		assert.Equal(t, Bitboard(0), Flip(sq, 0, 0))
	}
}

func TestGetMovesPopcountMatchesLegalMoveCount(t *testing.T) {
	// a mid-game-ish position built by playing a few plies from start
	b := board.NewInitial()
	plies := []board.Move{
		{Sq: 19, Flipped: Square(27).Bit()}, // D3
	}
	for _, m := range plies {
		b.Update(m)
	}
	moves := GetMoves(b.Player, b.Opponent)
	count := 0
	for sq := Square(0); sq < 64; sq++ {
		if Flip(sq, b.Player, b.Opponent) != 0 {
			count++
		}
	}
	assert.Equal(t, count, PopCount(moves))
}

// the contract the depth kernels rely on (they skip any neighbour
// pre-test): Flip is zero exactly for non-legal squares, on arbitrary
// disjoint bitboard pairs, and the flip mask is a subset of the opponent
// discs disjoint from the played square
func TestFlipContractRandomPositions(t *testing.T) {
	rnd := rand.New(rand.NewSource(815))
	for i := 0; i < 200; i++ {
		var P, O Bitboard
		for sq := 0; sq < 64; sq++ {
			switch rnd.Intn(3) {
			case 0:
				P |= Square(sq).Bit()
			case 1:
				O |= Square(sq).Bit()
			}
		}
		moves := GetMoves(P, O)
		for sq := Square(0); sq < 64; sq++ {
			flip := Flip(sq, P, O)
			if (P|O)&sq.Bit() != 0 {
				continue // occupied squares are outside the contract
			}
			assert.Equal(t, moves&sq.Bit() != 0, flip != 0, "square %d", sq)
			assert.Equal(t, flip, flip&O)
			assert.Equal(t, Bitboard(0), flip&sq.Bit())
		}
	}
}

func TestGetMoves6x6RestrictedToCenter(t *testing.T) {
	b := board.NewInitial()
	moves := GetMoves6x6(b.Player, b.Opponent)
	full := GetMoves(b.Player, b.Opponent)
	assert.Equal(t, full, moves, "initial position's legal moves are already all within the central 6x6")
}
