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

package solverpool

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankkopp/othello-endgame/config"
	"github.com/frankkopp/othello-endgame/internal/problem"
)

// hand-checked positions, the same set the problem package's testdata
// carries
var suiteLines = []string{
	strings.Repeat("X", 64) + " X; +64",
	strings.Repeat("X", 62) + "O- X; H8:+64",
	strings.Repeat("X", 62) + "O- O; -64",
	strings.Repeat("X", 32) + strings.Repeat("O", 32) + " X; +0",
	strings.Repeat("X", 31) + strings.Repeat("O", 33) + " X; -2",
	"-O" + strings.Repeat("X", 60) + "O- X; A1:+64",
}

func testProblems(t *testing.T) []problem.Problem {
	t.Helper()
	problems := make([]problem.Problem, 0, len(suiteLines))
	for _, line := range suiteLines {
		p, err := problem.Parse(line)
		require.NoError(t, err)
		problems = append(problems, p)
	}
	return problems
}

func TestRunnerSolvesSuiteConcurrently(t *testing.T) {
	config.Settings.Hash.GlobalSizeMB = 1
	config.Settings.Hash.LocalSizeMB = 1

	runner := NewRunner(2)
	results := runner.Run(testProblems(t))

	require.Len(t, results, len(suiteLines))
	for _, res := range results {
		assert.True(t, res.Pass, "expected %+d got %+d for %q", res.Problem.Expected, res.Score, res.Problem.Line)
		assert.Equal(t, res.Problem.Expected, res.Score)
	}
}

func TestRunnerSingleThreadSameResults(t *testing.T) {
	config.Settings.Hash.GlobalSizeMB = 1
	config.Settings.Hash.LocalSizeMB = 1

	concurrent := NewRunner(4).Run(testProblems(t))
	serial := NewRunner(1).Run(testProblems(t))
	require.Len(t, serial, len(concurrent))
	for i := range serial {
		assert.Equal(t, serial[i].Score, concurrent[i].Score, "problem %d", i)
	}
}

func TestAggregate(t *testing.T) {
	config.Settings.Hash.GlobalSizeMB = 1
	config.Settings.Hash.LocalSizeMB = 1

	results := NewRunner(2).Run(testProblems(t))
	total, nodes := Aggregate(results)
	var wantNodes uint64
	for _, res := range results {
		wantNodes += res.Nodes
	}
	assert.Equal(t, wantNodes, nodes)
	assert.Equal(t, nodes, total.Nodes)
}
