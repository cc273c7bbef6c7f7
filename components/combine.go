// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package components

import "code.hybscloud.com/flow"

// Combine provides many-to-one semantics. The input with the lower
// index is given priority: each run drains the inputs in index order,
// so everything pending on In[0] reaches the output before anything
// pending on In[1].
type Combine[T any] struct {
	flow.Component
	In  []*flow.InPort[T]
	Out *flow.OutPort[T]
}

// NewCombine creates a combiner with the given number of inputs.
func NewCombine[T any](inputs int) *Combine[T] {
	c := &Combine[T]{}
	c.In = make([]*flow.InPort[T], inputs)
	for i := range c.In {
		c.In[i] = flow.NewInPort[T](&c.Component)
	}
	c.Out = flow.NewOutPort[T]()
	return c
}

func (c *Combine[T]) Run() {
	for _, in := range c.In {
		for {
			v, err := in.Receive()
			if err != nil {
				break
			}
			c.Out.Send(&v)
		}
	}
}
