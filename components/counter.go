// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package components

import "code.hybscloud.com/flow"

// Counter counts how many values were received, from 0 to limit - 1,
// wrapping back to 0. It drains its input in one run and emits the
// count once per burst.
type Counter[T any] struct {
	flow.Component
	In  *flow.InPort[T]
	Out *flow.OutPort[uint32]

	count uint32
	limit uint32
}

// NewCounter creates a counter that wraps at limit.
func NewCounter[T any](limit uint32) *Counter[T] {
	c := &Counter[T]{limit: limit}
	c.In = flow.NewInPort[T](&c.Component)
	c.Out = flow.NewOutPort[uint32]()
	return c
}

func (c *Counter[T]) Run() {
	more := false
	for {
		if _, err := c.In.Receive(); err != nil {
			break
		}
		c.count++
		if c.count == c.limit {
			c.count = 0
		}
		more = true
	}
	if more {
		c.Out.Send(&c.count)
	}
}

// UpDownCounter counts up to upLimit, then down to downLimit, and
// repeats. Like [Counter] it drains a burst and emits the count once.
type UpDownCounter[T any] struct {
	flow.Component
	In  *flow.InPort[T]
	Out *flow.OutPort[uint32]

	count     uint32
	upLimit   uint32
	downLimit uint32
	up        bool
}

// NewUpDownCounter creates a counter bouncing between downLimit and
// upLimit, starting at startValue counting up.
func NewUpDownCounter[T any](downLimit, upLimit, startValue uint32) *UpDownCounter[T] {
	c := &UpDownCounter[T]{
		count:     startValue,
		upLimit:   upLimit,
		downLimit: downLimit,
		up:        true,
	}
	c.In = flow.NewInPort[T](&c.Component)
	c.Out = flow.NewOutPort[uint32]()
	return c
}

func (c *UpDownCounter[T]) Run() {
	more := false
	for {
		if _, err := c.In.Receive(); err != nil {
			break
		}
		if c.up {
			c.count++
		} else {
			c.count--
		}

		if c.count == c.upLimit {
			c.up = false
		} else if c.count == c.downLimit {
			c.up = true
		}
		more = true
	}
	if more {
		c.Out.Send(&c.count)
	}
}
