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

package config

// hashConfiguration holds the sizing/associativity tunables for the two
// transposition table kinds described in spec.md section 3 ("Transposition
// tables").
type hashConfiguration struct {
	// GlobalSizeMB is the maximum memory usage of the shared n-way global
	// hash table in megabytes. Rounded down to the nearest power-of-two
	// entry count, like the teacher's TTSize.
	GlobalSizeMB int

	// GlobalWays is the set-associativity (n-way) of the global table.
	GlobalWays int

	// LocalSizeMB is the maximum memory usage of each worker's thread-local
	// 1-way hash table in megabytes.
	LocalSizeMB int
}

// sets defaults which might be overwritten by config file
func init() {
	Settings.Hash.GlobalSizeMB = 128
	Settings.Hash.GlobalWays = 4
	Settings.Hash.LocalSizeMB = 4
}

// set defaults for configurations here in case a configuration
// is not available from the config file
func setupHash() {
	if Settings.Hash.GlobalSizeMB <= 0 {
		Settings.Hash.GlobalSizeMB = 128
	}
	if Settings.Hash.GlobalWays <= 0 {
		Settings.Hash.GlobalWays = 4
	}
	if Settings.Hash.LocalSizeMB <= 0 {
		Settings.Hash.LocalSizeMB = 4
	}
}
