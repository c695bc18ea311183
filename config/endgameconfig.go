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

// endgameConfiguration holds the tunables for the last-few-empties exact
// solver. These mirror the constants a C implementation would bake in at
// compile time; here they are data so a calling binary or a config file
// can retune the kernel-selection boundaries without a rebuild.
type endgameConfiguration struct {
	// DepthToShallowSearch is the n_empties threshold at or below which
	// NWS_endgame routes into the hash-less shallow search (5..6 empties
	// by default).
	DepthToShallowSearch int

	// DepthToUseLocalHash is the n_empties threshold at or below which
	// NWS_endgame routes into the thread-local-hash search (7..10 empties
	// by default).
	DepthToUseLocalHash int

	// DepthMidgameToEndgame is the n_empties count above which a position
	// counts as midgame. The solver does not read it (the global-hash
	// search handles everything above DepthToUseLocalHash); the bench CLI
	// logs a notice when asked to solve a position above it.
	DepthMidgameToEndgame int

	// MaskSolidDepth is the n_empties threshold below which solid-opponent
	// hash-key normalization is applied. At MaskSolidDepth empties and
	// above, the raw board is used as the hash key.
	MaskSolidDepth int

	// UseStabilityCutoff toggles the stability-based alpha cutoff in the
	// shallow/local/global searches.
	UseStabilityCutoff bool

	// UseETC toggles enhanced transposition cutoff probing of immediate
	// children in the global-hash search. Purely an efficiency knob -
	// correctness does not depend on it (spec 4.I).
	UseETC bool
}

// sets defaults which might be overwritten by config file
func init() {
	Settings.Endgame.DepthToShallowSearch = 6
	Settings.Endgame.DepthToUseLocalHash = 10
	Settings.Endgame.DepthMidgameToEndgame = 15
	Settings.Endgame.MaskSolidDepth = 9

	Settings.Endgame.UseStabilityCutoff = true
	Settings.Endgame.UseETC = false
}

// set defaults for configurations here in case a configuration
// is not available from the config file
func setupEndgame() {
	if Settings.Endgame.DepthToShallowSearch <= 0 {
		Settings.Endgame.DepthToShallowSearch = 6
	}
	if Settings.Endgame.DepthToUseLocalHash <= 0 {
		Settings.Endgame.DepthToUseLocalHash = 10
	}
	if Settings.Endgame.DepthMidgameToEndgame <= 0 {
		Settings.Endgame.DepthMidgameToEndgame = 15
	}
}
