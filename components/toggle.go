// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package components

import "code.hybscloud.com/flow"

// Toggle flips its boolean state on every tick and sends the new state.
// The state starts false, so the first tick produces true.
type Toggle struct {
	flow.Component
	In  *flow.InPort[Tick]
	Out *flow.OutPort[bool]

	state bool
}

// NewToggle creates a toggle with unconnected ports.
func NewToggle() *Toggle {
	c := &Toggle{}
	c.In = flow.NewInPort[Tick](&c.Component)
	c.Out = flow.NewOutPort[bool]()
	return c
}

func (c *Toggle) Run() {
	if _, err := c.In.Receive(); err == nil {
		c.state = !c.state
		c.Out.Send(&c.state)
	}
}
