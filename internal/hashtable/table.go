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

import (
	"math"
	"sync/atomic"

	"github.com/op/go-logging"

	myLogging "github.com/frankkopp/othello-endgame/logging"
)

const mb = 1024 * 1024

// Table is the shared n-way set-associative global transposition table
// (spec.md section 3, "Global hash table"). Both reads and writes hold
// the bucket's spinlock - a few dozen instructions at most, so readers
// never park. Sized once at construction and never resized mid-search.
type Table struct {
	log     *logging.Logger
	buckets []bucket
	ways    int
	mask    uint64
	date    uint32

	probes uint64
	hits   uint64
	stores uint64
}

type bucket struct {
	lock spinlock
	ways []entry
}

// NewTable builds a table sized to the largest power-of-two bucket count
// that fits within sizeMB megabytes at the given associativity.
func NewTable(sizeMB int, ways int) *Table {
	if ways < 1 {
		ways = 1
	}
	t := &Table{log: myLogging.GetLog(), ways: ways, date: 1}
	t.Resize(sizeMB)
	return t
}

// Resize clears the table and rebuilds it at the given size. Not safe to
// call concurrently with Probe/Store.
func (t *Table) Resize(sizeMB int) {
	bucketBytes := uint64(t.ways) * 32 // rough entry footprint, enough to size by
	nBuckets := uint64(1)
	if sizeMB > 0 {
		maxBuckets := uint64(sizeMB) * mb / bucketBytes
		if maxBuckets > 0 {
			nBuckets = uint64(1) << uint(math.Floor(math.Log2(float64(maxBuckets))))
		}
	}
	t.buckets = make([]bucket, nBuckets)
	for i := range t.buckets {
		t.buckets[i].ways = make([]entry, t.ways)
	}
	t.mask = nBuckets - 1
	t.log.Info("global hash table: ", nBuckets, " buckets x ", t.ways, " ways")
}

// NewGeneration advances the store-priority generation counter. Call once
// per root search so older entries become preferred replacement victims.
func (t *Table) NewGeneration() {
	atomic.AddUint32(&t.date, 1)
}

// Date returns the current store-priority generation, for callers that
// stamp HashData.Date themselves (the endgame search contexts).
func (t *Table) Date() uint32 {
	return atomic.LoadUint32(&t.date)
}

func (t *Table) index(key uint64) uint64 {
	return key & t.mask
}

// Probe returns the stored HashData for (key, player, opponent) and true
// if present. Takes the bucket spinlock for the duration of the scan so
// a racing Store can never tear a multi-field entry copy; the full board
// key is still verified so a 64-bit hash collision never returns another
// position's bounds (spec.md section 9, "Shared mutable hash without
// data races").
func (t *Table) Probe(key, player, opponent uint64) (HashData, bool) {
	atomic.AddUint64(&t.probes, 1)
	b := &t.buckets[t.index(key)]
	b.lock.Lock()
	defer b.lock.Unlock()
	for i := range b.ways {
		e := b.ways[i]
		if e.matches(player, opponent) {
			atomic.AddUint64(&t.hits, 1)
			return e.data, true
		}
	}
	return HashData{}, false
}

// Store writes data for (player, opponent) into its bucket. If the key is
// already present that slot is updated; otherwise the victim is the way
// with the lowest Level() (oldest date, then lower cost, then lower
// selectivity, then shallower depth).
func (t *Table) Store(key, player, opponent uint64, data HashData) {
	atomic.AddUint64(&t.stores, 1)
	b := &t.buckets[t.index(key)]
	b.lock.Lock()
	defer b.lock.Unlock()

	for i := range b.ways {
		if b.ways[i].matches(player, opponent) {
			b.ways[i].data = data
			return
		}
	}
	victim := 0
	for i := 1; i < len(b.ways); i++ {
		if !b.ways[i].valid {
			victim = i
			break
		}
		if b.ways[i].data.Level() < b.ways[victim].data.Level() {
			victim = i
		}
	}
	b.ways[victim] = entry{valid: true, player: player, opponent: opponent, data: data}
}

// Prefetch is a no-op: Go exposes no portable cache-prefetch intrinsic, so
// callers get no benefit from calling this ahead of Probe. It exists
// so callers can be written against the same three-method shape spec.md
// section 6 names (get/store/prefetch) regardless of platform.
func (t *Table) Prefetch(key uint64) {}

// Stats returns probes, hits, stores for diagnostics/logging.
func (t *Table) Stats() (probes, hits, stores uint64) {
	return atomic.LoadUint64(&t.probes), atomic.LoadUint64(&t.hits), atomic.LoadUint64(&t.stores)
}
