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

// endgame-bench solves Othello endgame positions from the command line:
// a single position given as a one-line board string, or a whole problem
// suite file (FFO format), optionally with several concurrent workers.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/othello-endgame/config"
	"github.com/frankkopp/othello-endgame/internal/endgame"
	"github.com/frankkopp/othello-endgame/internal/hashtable"
	"github.com/frankkopp/othello-endgame/internal/problem"
	"github.com/frankkopp/othello-endgame/internal/solverpool"
	"github.com/frankkopp/othello-endgame/internal/util"
	"github.com/frankkopp/othello-endgame/logging"
)

var out = message.NewPrinter(language.German)

func main() {
	// defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	// go tool pprof -http=localhost:8080 endgame-bench cpu.pprof

	// command line args
	configFile := flag.String("config", "./config/config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "info", "standard log level\n(critical|error|warning|notice|info|debug)")
	solveLine := flag.String("solve", "", "one-line position to solve\n(64 board chars X/O/-, a space, side to move X or O)")
	suiteFile := flag.String("suite", "", "path to a problem suite file (FFO format) to run")
	threads := flag.Int("n", runtime.NumCPU(), "number of concurrent workers for -suite")
	hashMB := flag.Int("hash", 0, "global hash table size in MB (0 = use config file setting)")
	timeout := flag.Int("timeout", 0, "abort each search after this many milliseconds (0 = no limit)")
	flag.Parse()

	// this needs to be set before config.Setup() is called. Otherwise the default will be used.
	config.ConfFile = *configFile
	config.Setup()

	// overwrite settings with command line options
	if lvl, found := config.LogLevels[*logLvl]; found {
		config.LogLevel = lvl
	}
	if *hashMB > 0 {
		config.Settings.Hash.GlobalSizeMB = *hashMB
	}

	// resetting log level on the standard log - required as most packages
	// include the standard logger as a global var set before main() runs.
	log := logging.GetLog()

	switch {
	case *solveLine != "":
		p, err := problem.Parse(*solveLine)
		if err != nil {
			log.Error(err)
			os.Exit(1)
		}
		solveSingle(p, *timeout)
	case *suiteFile != "":
		runSuite(*suiteFile, *threads, *timeout)
	default:
		fmt.Println("nothing to do - provide -solve or -suite")
		flag.Usage()
	}
}

func solveSingle(p problem.Problem, timeoutMs int) {
	global := hashtable.NewTable(config.Settings.Hash.GlobalSizeMB, config.Settings.Hash.GlobalWays)
	local := hashtable.NewLocalTable(config.Settings.Hash.LocalSizeMB)
	ctx := endgame.NewContext(p.Board, global, local)

	if timeoutMs > 0 {
		watchdog(ctx, timeoutMs)
	}

	out.Println(p.Board)
	out.Printf("empties: %d, %s to move\n", ctx.NEmpties, sideName(p.BlackToMove))
	if boundary := config.Settings.Endgame.DepthMidgameToEndgame; ctx.NEmpties > boundary {
		logging.GetLog().Noticef("%d empties is above the usual midgame/endgame boundary (%d) - solving anyway", ctx.NEmpties, boundary)
	}

	start := time.Now()
	score := endgame.Solve(ctx)
	elapsed := time.Since(start)

	if ctx.Stop.Load() {
		out.Printf("aborted after %s, best bound %+d\n", elapsed, score)
		return
	}
	out.Printf("score %+d  nodes %d  time %s  nps %d\n",
		score, ctx.Nodes, elapsed, util.Nps(ctx.Nodes, elapsed))
	if p.HasExpected {
		out.Printf("expected %+d: %s\n", p.Expected, passFail(score == p.Expected))
	}
}

func runSuite(path string, threads int, timeoutMs int) {
	benchLog := logging.GetBenchLog()

	problems, err := problem.LoadFile(path)
	if err != nil {
		benchLog.Error(err)
		os.Exit(1)
	}
	out.Printf("running %d problems from %s with %d workers\n", len(problems), path, threads)

	runner := solverpool.NewRunner(threads)
	start := time.Now()
	results := runner.Run(problems)
	elapsed := time.Since(start)

	passed := 0
	for _, res := range results {
		status := passFail(res.Pass)
		if res.Pass {
			passed++
		}
		expected := "   "
		if res.Problem.HasExpected {
			expected = fmt.Sprintf("%+d", res.Problem.Expected)
		}
		benchLog.Infof("%-30s empties %2d  score %+d  expected %s  nodes %12d  time %12s  %s",
			res.Problem.ID, res.Problem.Board.NEmpties(), res.Score, expected, res.Nodes, res.Duration, status)
	}

	_, nodes := solverpool.Aggregate(results)
	out.Printf("passed %d/%d  total nodes %d  time %s  nps %d\n",
		passed, len(results), nodes, elapsed, util.Nps(nodes, elapsed))
	if timeoutMs > 0 {
		out.Println("note: -timeout applies to -solve only; suite runs solve each problem to completion")
	}
}

// watchdog raises the context's stop flag after the deadline (spec.md
// section 5, "Timeouts" - the watchdog lives outside the core).
func watchdog(ctx *endgame.Context, timeoutMs int) {
	go func() {
		time.Sleep(time.Duration(timeoutMs) * time.Millisecond)
		ctx.Stop.Store(true)
	}()
}

func sideName(blackToMove bool) string {
	if blackToMove {
		return "black (X)"
	}
	return "white (O)"
}

func passFail(pass bool) string {
	if pass {
		return "PASS"
	}
	return "FAIL"
}
