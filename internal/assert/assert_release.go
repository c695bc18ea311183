// +build !debug

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

// Package assert is a helper to allow assert-style invariant checks in a
// standardized manner. Using it makes it clear that a check is a debug-only
// invariant, not behavior the release build depends on. See spec.md
// section 7 ("Illegal board ... debug-mode assertion; release undefined").
package assert

// DEBUG reports whether asserts are evaluated in this build.
const DEBUG = false

// Assert runs the provided test and panics with the given message if it
// evaluates to false. In release builds (no "debug" build tag) this is a
// no-op. Callers still must guard with "if assert.DEBUG" to avoid paying
// for the evaluation of the message arguments:
//
//	if assert.DEBUG {
//		assert.Assert(p&o == 0, "overlapping bitboards: %x %x", p, o)
//	}
func Assert(test bool, msg string, a ...interface{}) {}
