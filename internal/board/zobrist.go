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

package board

// zobristTable holds 16 independent 256-entry random tables, one per byte
// of the 16-byte (Player || Opponent) key. HashCode XORs the 16 lookups
// together. The generator is a fixed-seed splitmix64 stream so the table
// (and therefore every hash key) is fully deterministic across runs - not
// a cryptographic hash, just a well-mixed one.
var zobristTable [16][256]uint64

func init() {
	seed := uint64(0x9E3779B97F4A7C15)
	next := func() uint64 {
		seed += 0x9E3779B97F4A7C15
		z := seed
		z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
		z = (z ^ (z >> 27)) * 0x94D049BB133111EB
		return z ^ (z >> 31)
	}
	for i := 0; i < 16; i++ {
		for v := 0; v < 256; v++ {
			zobristTable[i][v] = next()
		}
	}
}

// HashCode returns the Zobrist-style key for b: the 16 bytes of
// (Player, Opponent) each index their own table, XORed together.
func (b Board) HashCode() uint64 {
	var h uint64
	p, o := uint64(b.Player), uint64(b.Opponent)
	for i := 0; i < 8; i++ {
		h ^= zobristTable[i][byte(p>>(8*uint(i)))]
		h ^= zobristTable[8+i][byte(o>>(8*uint(i)))]
	}
	return h
}
