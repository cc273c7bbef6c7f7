// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package flow

// RaceEnabled is true when the race detector is active. Tests use it to
// skip cross-goroutine ring and pool stress runs: the detector cannot
// observe happens-before established through the counters' acquire and
// release orderings and reports false positives on the slot accesses.
const RaceEnabled = true
