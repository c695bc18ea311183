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

import (
	"math/rand"
	"testing"
	"time"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/othello-endgame/internal/util"
)

var out = message.NewPrinter(language.German)

// TestSolveTiming solves a batch of deeper positions and reports node
// counts and speed, with a CPU profile written to a temp dir. Skipped in
// -short runs.
func TestSolveTiming(t *testing.T) {
	if testing.Short() {
		t.Skip("timing run - skipped in short mode")
	}
	defer profile.Start(profile.ProfilePath(t.TempDir())).Stop()

	rnd := rand.New(rand.NewSource(123))
	var totalNodes uint64
	start := time.Now()
	for i := 0; i < 5; i++ {
		b := benchGame(rnd, 14)
		ctx := newTestCtx(b)
		score := Solve(ctx)
		totalNodes += ctx.Nodes
		out.Printf("position %d: score %+d, nodes %d\n", i, score, ctx.Nodes)
	}
	elapsed := time.Since(start)
	out.Printf("total nodes %d  time %s  nps %d\n", totalNodes, elapsed, util.Nps(totalNodes, elapsed))
}
