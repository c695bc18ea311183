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

package endgame

// sentinel is the empties-list head index, NOMOVE (square 64). Do not
// replace this list with an index-set or hash-set: the recursive search
// relies on Remove/Restore undoing in exact reverse order, which only a
// linked structure preserves cheaply (spec.md section 9, "Empties linked
// list with implicit restoration").
const sentinel = 64

// EmptyList is a doubly linked list of the currently empty squares,
// circular through the sentinel head. previous/next are indexed by square
// 0..63 plus the sentinel at 64.
type EmptyList struct {
	next [65]int
	prev [65]int
}

// NewEmptyList builds the list from squares in the given order; First()
// then walks them back out in the same order.
func NewEmptyList(squares []int) *EmptyList {
	e := &EmptyList{}
	last := sentinel
	for _, sq := range squares {
		e.next[last] = sq
		e.prev[sq] = last
		last = sq
	}
	e.next[last] = sentinel
	e.prev[sentinel] = last
	return e
}

// First returns the first empty square, or NOMOVE (64) if none remain.
func (e *EmptyList) First() int {
	return e.next[sentinel]
}

// Next returns the empty square following sq, or NOMOVE if sq was last.
func (e *EmptyList) Next(sq int) int {
	return e.next[sq]
}

// Remove unlinks sq in O(1). Must be paired with a Restore(sq) in exact
// reverse order once the caller is done exploring that move.
func (e *EmptyList) Remove(sq int) {
	e.next[e.prev[sq]] = e.next[sq]
	e.prev[e.next[sq]] = e.prev[sq]
}

// Restore relinks sq using the previous/next it still holds from before
// its Remove call.
func (e *EmptyList) Restore(sq int) {
	e.next[e.prev[sq]] = sq
	e.prev[e.next[sq]] = sq
}
