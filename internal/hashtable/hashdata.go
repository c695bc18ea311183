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

// Package hashtable implements the two transposition table kinds the
// endgame core uses: a shared n-way set-associative table with bucket
// spinlocks for concurrent workers, and a 1-way thread-local table with no
// locking at all. Both store the same HashData payload.
package hashtable

// NoMove is the sentinel move value for "no best move recorded".
const NoMove int8 = -1

// HashData is the bounds and metadata stored per entry. Rather than the
// C union-of-four-bytes-or-one-uint32 trick, Level derives a single
// comparable replacement priority explicitly: newer generations beat
// older ones, then higher search cost, then higher selectivity, then
// greater depth.
type HashData struct {
	// Lower/Upper are int16, not int8: the solid-opponent hash-key
	// normalization (spec.md section 3) offsets a stored bound by up to
	// 2*popcount(solid_opp), which can exceed an int8's range even though
	// the unoffset score never leaves [-64, 64].
	Lower       int16
	Upper       int16
	Depth       uint8
	Selectivity uint8
	Date        uint32
	Cost        uint8
	Move        int8
	AltMove     int8
}

// Level returns a single monotonically-comparable replacement priority:
// (date, cost, selectivity, depth) packed from most to least significant.
func (d HashData) Level() uint64 {
	return uint64(d.Date)<<32 | uint64(d.Cost)<<24 | uint64(d.Selectivity)<<16 | uint64(d.Depth)<<8
}

// entry is one way of a bucket (global table) or the sole slot of a local
// table entry. Player/Opponent form the full board key verified on probe
// so two different boards that happen to collide on the 64-bit Zobrist
// hash never return each other's bounds.
type entry struct {
	valid    bool
	player   uint64
	opponent uint64
	data     HashData
}

func (e *entry) matches(player, opponent uint64) bool {
	return e.valid && e.player == player && e.opponent == opponent
}
