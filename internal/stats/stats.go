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

// Package stats holds the per-worker search counters. Each search context
// owns one Statistics value and increments it without synchronization;
// callers that run several contexts aggregate the values after the
// workers have finished (spec.md section 5, "Global writable state").
package stats

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var out = message.NewPrinter(language.German)

// Statistics are extra data and stats not essential for a functioning
// search. Overflow wraps and is a non-error.
type Statistics struct {
	Nodes uint64

	TTHit      uint64
	TTMiss     uint64
	TTCuts     uint64
	TTMoveUsed uint64
	TTStores   uint64

	LocalHit    uint64
	LocalMiss   uint64
	LocalCuts   uint64
	LocalStores uint64

	StabilityCuts uint64
	EtcCuts       uint64
}

// Add sums o into s. Used to aggregate per-worker counters on query.
func (s *Statistics) Add(o *Statistics) {
	s.Nodes += o.Nodes
	s.TTHit += o.TTHit
	s.TTMiss += o.TTMiss
	s.TTCuts += o.TTCuts
	s.TTMoveUsed += o.TTMoveUsed
	s.TTStores += o.TTStores
	s.LocalHit += o.LocalHit
	s.LocalMiss += o.LocalMiss
	s.LocalCuts += o.LocalCuts
	s.LocalStores += o.LocalStores
	s.StabilityCuts += o.StabilityCuts
	s.EtcCuts += o.EtcCuts
}

func (s *Statistics) String() string {
	return out.Sprintf("%+v", *s)
}
