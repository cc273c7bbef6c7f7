// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package components

import "code.hybscloud.com/flow"

// Tick is the payload of timer pulses. It carries no information beyond
// "one period elapsed".
type Tick struct{}

// SoftwareTimer gives an indication every period: each period-th call of
// Isr sends one Tick on OutTick. Isr is meant to be called from a
// systick interrupt or any other fixed-rate source; the timer itself has
// no inputs and is never scheduled by the reactor.
type SoftwareTimer struct {
	flow.Component
	OutTick *flow.OutPort[Tick]

	period   uint32
	sysTicks uint32
}

// NewSoftwareTimer creates a timer with a fixed period, measured in Isr
// calls. A period of 1 ticks on every call. Panics if period is 0.
func NewSoftwareTimer(period uint32) *SoftwareTimer {
	if period == 0 {
		panic("flow: timer period must be >= 1")
	}
	t := &SoftwareTimer{period: period}
	t.OutTick = flow.NewOutPort[Tick]()
	return t
}

// Isr advances the timer by one system tick, sending a Tick when a full
// period elapsed. Safe to call from interrupt context: the send path is
// lock-free end to end.
func (t *SoftwareTimer) Isr() {
	t.sysTicks++
	if t.sysTicks >= t.period {
		t.sysTicks = 0
		tick := Tick{}
		t.OutTick.Send(&tick)
	}
}

// Run satisfies [flow.Runner] by advancing one tick, for graphs that
// drive the timer from a component context instead of an interrupt.
func (t *SoftwareTimer) Run() {
	t.Isr()
}
