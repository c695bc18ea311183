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

package hashtable

import "math"

// LocalTable is the 1-way, unsynchronized per-worker transposition table
// used only by the 7..10-empty local-hash search (spec.md section 4.H).
// One instance belongs to exactly one Search context; never share it
// across goroutines.
type LocalTable struct {
	data []entry
	mask uint64
}

// NewLocalTable builds a 1-way table sized to the largest power-of-two
// entry count fitting within sizeMB megabytes.
func NewLocalTable(sizeMB int) *LocalTable {
	lt := &LocalTable{}
	lt.Resize(sizeMB)
	return lt
}

// Resize clears the table and rebuilds it at the given size.
func (lt *LocalTable) Resize(sizeMB int) {
	n := uint64(1)
	if sizeMB > 0 {
		maxEntries := uint64(sizeMB) * mb / 32
		if maxEntries > 0 {
			n = uint64(1) << uint(math.Floor(math.Log2(float64(maxEntries))))
		}
	}
	lt.data = make([]entry, n)
	lt.mask = n - 1
}

// Probe returns the stored HashData for (key, player, opponent) and true
// if the single way at that index matches.
func (lt *LocalTable) Probe(key, player, opponent uint64) (HashData, bool) {
	e := &lt.data[key&lt.mask]
	if e.matches(player, opponent) {
		return e.data, true
	}
	return HashData{}, false
}

// Store unconditionally overwrites the single way at key's index - no
// collision chain, no replacement decision, matching the "1-way (no
// collision chain), no lock" layout spec.md section 3 specifies.
func (lt *LocalTable) Store(key, player, opponent uint64, data HashData) {
	lt.data[key&lt.mask] = entry{valid: true, player: player, opponent: opponent, data: data}
}

// Prefetch is a no-op for the same reason as Table.Prefetch.
func (lt *LocalTable) Prefetch(key uint64) {}

// Clear empties every slot.
func (lt *LocalTable) Clear() {
	for i := range lt.data {
		lt.data[i] = entry{}
	}
}
