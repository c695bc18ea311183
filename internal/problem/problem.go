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

// Package problem reads Othello endgame problem files in the one-line
// board format the FFO test suite and similar collections use: 64 board
// characters ('X' black, 'O' white, '-' empty, square A1 first, H8 last),
// a space, the side to move ('X' or 'O'), and optionally a ';' followed
// by annotations such as "A2:+38" (best move and exact score) or a bare
// signed score. Lines starting with '#' and blank lines are skipped.
package problem

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	. "github.com/frankkopp/othello-endgame/internal/bitutil"
	"github.com/frankkopp/othello-endgame/internal/board"
)

// Problem is one parsed position. Board is already oriented so that
// Player is the side to move, the orientation every solver entry point
// expects.
type Problem struct {
	// ID is "<file>:<line>" for problems read from a file, "" otherwise.
	ID string

	Board       board.Board
	BlackToMove bool

	// Expected is the exact disc-difference score from the annotation,
	// from the side to move's point of view. Valid only if HasExpected.
	Expected    int
	HasExpected bool

	// Line is the raw input, kept for error reporting.
	Line string
}

var scoreRe = regexp.MustCompile(`(?:[A-Ha-h][1-8]:)?([+-]\d+)`)

// Parse parses a single problem line.
func Parse(line string) (Problem, error) {
	trimmed := strings.TrimSpace(line)
	if len(trimmed) < 66 {
		return Problem{}, fmt.Errorf("problem line too short (%d chars): %q", len(trimmed), trimmed)
	}

	var black, white Bitboard
	for i := 0; i < 64; i++ {
		switch trimmed[i] {
		case 'X', 'x', '*':
			black |= Square(i).Bit()
		case 'O', 'o':
			white |= Square(i).Bit()
		case '-', '.':
		default:
			return Problem{}, fmt.Errorf("invalid board character %q at square %d in %q", trimmed[i], i, trimmed)
		}
	}

	rest := strings.TrimSpace(trimmed[64:])
	if rest == "" {
		return Problem{}, fmt.Errorf("missing side to move in %q", trimmed)
	}
	var blackToMove bool
	switch rest[0] {
	case 'X', 'x', '*':
		blackToMove = true
	case 'O', 'o':
		blackToMove = false
	default:
		return Problem{}, fmt.Errorf("invalid side to move %q in %q", rest[0], trimmed)
	}

	p := Problem{BlackToMove: blackToMove, Line: trimmed}
	if blackToMove {
		p.Board = board.Board{Player: black, Opponent: white}
	} else {
		p.Board = board.Board{Player: white, Opponent: black}
	}

	if i := strings.IndexByte(rest, ';'); i >= 0 {
		if m := scoreRe.FindStringSubmatch(rest[i+1:]); m != nil {
			score, err := strconv.Atoi(m[1])
			if err == nil {
				p.Expected = score
				p.HasExpected = true
			}
		}
	}
	return p, nil
}

// LoadFile reads every problem line of the given file. A line that fails
// to parse aborts the load with an error naming the offending line.
func LoadFile(path string) ([]Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open problem file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var problems []Problem
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "%") {
			continue
		}
		p, err := Parse(line)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, lineNo, err)
		}
		p.ID = fmt.Sprintf("%s:%d", path, lineNo)
		problems = append(problems, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read problem file: %w", err)
	}
	return problems, nil
}

// SquareName returns the "A1".."H8" name of a square index, or "--" for
// the pass/nomove sentinels.
func SquareName(sq int) string {
	if sq < 0 || sq > 63 {
		return "--"
	}
	return fmt.Sprintf("%c%d", 'A'+sq%8, 1+sq/8)
}
