// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package components

import (
	"fmt"
	"io"
	"time"

	"code.hybscloud.com/flow"
	"github.com/agilira/go-timecache"
)

// Debug formats diagnostics and streams them byte-wise over an output
// port, so log text rides the same graph as everything else and reaches
// whatever sink the application wired — a UART component, a [Sink] on a
// file, nothing at all. Each line is prefixed with a millisecond
// timestamp from a cached clock; reading the wall clock on every Printf
// would dominate the cost on a hot path.
//
// Debug is not a component: it has no inputs and nothing to schedule.
// Bytes that do not fit in the connection are dropped.
type Debug struct {
	Out *flow.OutPort[byte]

	clock *timecache.TimeCache
}

// NewDebug creates a debug stream with an unconnected output.
func NewDebug() *Debug {
	return &Debug{
		Out:   flow.NewOutPort[byte](),
		clock: timecache.NewWithResolution(time.Millisecond),
	}
}

// Printf formats in fmt style and sends the timestamped line, byte by
// byte, over the output port.
func (d *Debug) Printf(format string, args ...any) {
	line := d.clock.CachedTime().Format("15:04:05.000") + " " + fmt.Sprintf(format, args...)
	for i := 0; i < len(line); i++ {
		b := line[i]
		d.Out.Send(&b)
	}
}

// Stop releases the cached clock.
func (d *Debug) Stop() {
	d.clock.Stop()
}

// Sink drains a byte stream into an io.Writer. The terminal end of a
// [Debug] connection.
type Sink struct {
	flow.Component
	In *flow.InPort[byte]

	w       io.Writer
	scratch []byte
}

// NewSink creates a sink writing to w.
func NewSink(w io.Writer) *Sink {
	c := &Sink{w: w}
	c.In = flow.NewInPort[byte](&c.Component)
	return c
}

func (c *Sink) Run() {
	buf := c.scratch[:0]
	for {
		b, err := c.In.Receive()
		if err != nil {
			break
		}
		buf = append(buf, b)
	}
	if len(buf) > 0 {
		c.w.Write(buf)
	}
	c.scratch = buf[:0]
}
