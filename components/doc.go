// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package components ships the stock filters for
// [code.hybscloud.com/flow] graphs: invert, convert, counters, split,
// combine, timer, toggle, and a debug stream.
//
// Each component is a thin user of the core — a couple of ports and a
// short Run body. They double as reference implementations for writing
// application components.
package components
