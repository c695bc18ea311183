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
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableStoreThenProbeRoundTrips(t *testing.T) {
	tbl := NewTable(1, 4)
	data := HashData{Lower: -4, Upper: 10, Depth: 12, Date: 3, Cost: 5, Move: 27}
	tbl.Store(0x1234, 0xAAAA, 0xBBBB, data)

	got, ok := tbl.Probe(0x1234, 0xAAAA, 0xBBBB)
	require.True(t, ok)
	assert.Equal(t, data, got)

	_, ok = tbl.Probe(0x1234, 0xAAAA, 0xCCCC)
	assert.False(t, ok, "different board must not match a colliding key")
}

func TestTableReplacementPrefersShallowerSameDate(t *testing.T) {
	tbl := NewTable(1, 2) // 2-way, force a collision within one bucket
	key := uint64(7)
	tbl.Store(key, 1, 0, HashData{Date: 1, Depth: 5})
	tbl.Store(key, 2, 0, HashData{Date: 1, Depth: 6})
	// bucket now full (both ways used); a third distinct key should evict
	// the way with the lower Level() (older/shallower), not whichever
	// slot happens to be first.
	tbl.Store(key, 3, 0, HashData{Date: 9, Depth: 1})

	_, ok1 := tbl.Probe(key, 1, 0)
	_, ok2 := tbl.Probe(key, 2, 0)
	_, ok3 := tbl.Probe(key, 3, 0)
	assert.True(t, ok3, "newest entry must always be present")
	assert.False(t, ok1, "the shallower same-date entry should be the eviction victim")
	assert.True(t, ok2, "the deeper same-date entry should survive")
}

func TestTableConcurrentStoreProbeNoRace(t *testing.T) {
	// a deliberately tiny table so every worker hammers the same handful
	// of buckets - run with -race, a torn entry copy shows up here
	tbl := NewTable(0, 2)
	const sharedKeys = 16
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				key := uint64(i % sharedKeys)
				player := uint64(w*1000 + i)
				tbl.Store(key, player, player+1, HashData{Date: uint32(i), Depth: uint8(i % 20), Lower: int16(w), Upper: int16(i % 64)})
				if data, ok := tbl.Probe(key, player, player+1); ok {
					// an entry under this board key must never carry
					// another worker's fields
					assert.Equal(t, int16(w), data.Lower)
				}
			}
		}(w)
	}
	wg.Wait()
}

func TestLocalTableRoundTrip(t *testing.T) {
	lt := NewLocalTable(1)
	data := HashData{Lower: -2, Upper: 2, Depth: 7}
	lt.Store(42, 100, 200, data)
	got, ok := lt.Probe(42, 100, 200)
	require.True(t, ok)
	assert.Equal(t, data, got)

	_, ok = lt.Probe(42, 101, 200)
	assert.False(t, ok)

	lt.Clear()
	_, ok = lt.Probe(42, 100, 200)
	assert.False(t, ok)
}

func TestHashDataLevelOrdering(t *testing.T) {
	older := HashData{Date: 1, Cost: 9, Depth: 20}
	newer := HashData{Date: 2, Cost: 0, Depth: 0}
	assert.Less(t, older.Level(), newer.Level())
}
