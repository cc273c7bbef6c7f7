// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package components

import "code.hybscloud.com/flow"

// Split provides one-to-many semantics: every received element is sent
// to every output.
type Split[T any] struct {
	flow.Component
	In  *flow.InPort[T]
	Out []*flow.OutPort[T]
}

// NewSplit creates a splitter with the given number of outputs.
func NewSplit[T any](outputs int) *Split[T] {
	c := &Split[T]{}
	c.In = flow.NewInPort[T](&c.Component)
	c.Out = make([]*flow.OutPort[T], outputs)
	for i := range c.Out {
		c.Out[i] = flow.NewOutPort[T]()
	}
	return c
}

func (c *Split[T]) Run() {
	if v, err := c.In.Receive(); err == nil {
		for _, out := range c.Out {
			out.Send(&v)
		}
	}
}
