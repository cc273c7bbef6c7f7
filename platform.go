// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package flow

import (
	"runtime"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// Platform is the two-function porting interface. An integrator supplies
// one implementation per target; everything else in the package is
// portable.
//
// The default is [HostPlatform]. Tests install a counting mock to verify
// reactor idle behavior.
type Platform interface {
	// WaitForEvent is called by [Reactor.Run] when a full sweep found no
	// runnable component. On a microcontroller this is where a WFI/WFE
	// instruction belongs; on a hosted target a short pause or yield.
	WaitForEvent()

	// AtomicFetchAdd atomically adds delta to counter and returns the new
	// value. It backs the component request counters, which may be
	// incremented from any execution context including interrupt
	// handlers. A target without native atomics can implement this by
	// masking interrupts around the read-modify-write.
	AtomicFetchAdd(counter *atomix.Int32, delta int32) int32
}

// HostPlatform is the default Platform for hosted targets: a CPU pause
// plus a scheduler yield while idle, native atomics otherwise.
type HostPlatform struct{}

func (HostPlatform) WaitForEvent() {
	sw := spin.Wait{}
	sw.Once()
	runtime.Gosched()
}

func (HostPlatform) AtomicFetchAdd(counter *atomix.Int32, delta int32) int32 {
	return counter.Add(delta)
}

var platform Platform = HostPlatform{}

// SetPlatform replaces the process-wide platform. Call it once during
// initialization, before any reactor starts; the platform is read
// without synchronization on the hot paths.
func SetPlatform(p Platform) {
	if p == nil {
		panic("flow: platform must not be nil")
	}
	platform = p
}
