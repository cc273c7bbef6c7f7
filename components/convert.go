// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package components

import "code.hybscloud.com/flow"

// Number constrains conversion to the numeric kinds a Go conversion can
// relate.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Convert converts between numeric types using a Go conversion.
type Convert[From, To Number] struct {
	flow.Component
	InFrom *flow.InPort[From]
	OutTo  *flow.OutPort[To]
}

// NewConvert creates a converter with unconnected ports.
func NewConvert[From, To Number]() *Convert[From, To] {
	c := &Convert[From, To]{}
	c.InFrom = flow.NewInPort[From](&c.Component)
	c.OutTo = flow.NewOutPort[To]()
	return c
}

func (c *Convert[From, To]) Run() {
	if from, err := c.InFrom.Receive(); err == nil {
		to := To(from)
		c.OutTo.Send(&to)
	}
}
