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

// Package solverpool runs batches of independent endgame problems
// concurrently. Each problem gets its own search context and thread-local
// hash table; all workers share one global transposition table. This is
// not a work-stealing scheduler splitting a single search - that driver
// stays outside the core - it only exercises the core's guarantee of
// being safely callable from concurrent workers on different boards.
package solverpool

import (
	"context"
	"sync"
	"time"

	"github.com/op/go-logging"
	"golang.org/x/sync/semaphore"

	"github.com/frankkopp/othello-endgame/config"
	"github.com/frankkopp/othello-endgame/internal/endgame"
	"github.com/frankkopp/othello-endgame/internal/hashtable"
	"github.com/frankkopp/othello-endgame/internal/problem"
	"github.com/frankkopp/othello-endgame/internal/stats"
	myLogging "github.com/frankkopp/othello-endgame/logging"
)

var log *logging.Logger

// Result is the outcome of solving one problem.
type Result struct {
	Problem  problem.Problem
	Score    int
	Nodes    uint64
	Duration time.Duration
	Stats    stats.Statistics

	// Pass is whether Score matched the problem's expected score; true
	// when the problem carries no expectation.
	Pass bool
}

// Runner solves problems with up to Threads concurrent workers against a
// shared global hash table.
type Runner struct {
	Threads int
	Global  *hashtable.Table
}

// NewRunner builds a runner with the given worker bound and a fresh
// global table sized from the configuration.
func NewRunner(threads int) *Runner {
	if log == nil {
		log = myLogging.GetLog()
	}
	if threads < 1 {
		threads = 1
	}
	return &Runner{
		Threads: threads,
		Global:  hashtable.NewTable(config.Settings.Hash.GlobalSizeMB, config.Settings.Hash.GlobalWays),
	}
}

// Run solves every problem and returns the results in input order. The
// worker bound is enforced with a weighted semaphore; each worker owns
// its context and local table for the duration of one problem.
func (r *Runner) Run(problems []problem.Problem) []Result {
	results := make([]Result, len(problems))
	sem := semaphore.NewWeighted(int64(r.Threads))
	var wg sync.WaitGroup

	for i := range problems {
		if err := sem.Acquire(context.Background(), 1); err != nil {
			log.Error("semaphore acquire failed: ", err)
			break
		}
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			defer sem.Release(1)
			results[i] = r.solveOne(problems[i])
		}(i)
	}
	wg.Wait()
	return results
}

func (r *Runner) solveOne(p problem.Problem) Result {
	local := hashtable.NewLocalTable(config.Settings.Hash.LocalSizeMB)
	ctx := endgame.NewContext(p.Board, r.Global, local)

	start := time.Now()
	score := endgame.Solve(ctx)
	elapsed := time.Since(start)

	res := Result{
		Problem:  p,
		Score:    score,
		Nodes:    ctx.Nodes,
		Duration: elapsed,
		Stats:    ctx.Stats,
		Pass:     !p.HasExpected || score == p.Expected,
	}
	if !res.Pass {
		log.Warningf("%s: expected %+d got %+d", p.ID, p.Expected, score)
	}
	return res
}

// Aggregate sums the per-worker statistics of a result set.
func Aggregate(results []Result) (total stats.Statistics, nodes uint64) {
	for i := range results {
		total.Add(&results[i].Stats)
		nodes += results[i].Nodes
	}
	return total, nodes
}
