// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package components

import "code.hybscloud.com/flow"

// Invert negates every received boolean.
type Invert struct {
	flow.Component
	In  *flow.InPort[bool]
	Out *flow.OutPort[bool]
}

// NewInvert creates an inverter with unconnected ports.
func NewInvert() *Invert {
	c := &Invert{}
	c.In = flow.NewInPort[bool](&c.Component)
	c.Out = flow.NewOutPort[bool]()
	return c
}

func (c *Invert) Run() {
	if v, err := c.In.Receive(); err == nil {
		v = !v
		c.Out.Send(&v)
	}
}
