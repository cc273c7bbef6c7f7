// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package components_test

import (
	"testing"

	"code.hybscloud.com/flow"
	"code.hybscloud.com/flow/components"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	reactor := flow.NewReactor()
	split := components.NewSplit[uint64](3)

	feed := flow.NewOutPort[uint64]()
	conns := []flow.Connection{flow.Connect(feed, split.In)}
	sinks := make([]*flow.InPort[uint64], 3)
	for i := range sinks {
		sinks[i] = flow.NewInPort[uint64](nil)
		conns = append(conns, flow.Connect(split.Out[i], sinks[i]))
	}
	defer func() {
		for _, c := range conns {
			flow.Disconnect(c)
		}
	}()

	reactor.Add(split)
	reactor.Start()
	defer reactor.Stop()

	v := uint64(0xfeed)
	require.NoError(t, feed.Send(&v))
	reactor.Run()

	for i, sink := range sinks {
		got, err := sink.Receive()
		require.NoError(t, err, "output %d", i)
		require.Equal(t, uint64(0xfeed), got, "output %d", i)
	}
}

func TestSplitPartiallyConnected(t *testing.T) {
	reactor := flow.NewReactor()
	split := components.NewSplit[uint64](3)

	feed := flow.NewOutPort[uint64]()
	sink := flow.NewInPort[uint64](nil)
	conns := []flow.Connection{
		flow.Connect(feed, split.In),
		flow.Connect(split.Out[1], sink), // outputs 0 and 2 stay loose
	}
	defer func() {
		for _, c := range conns {
			flow.Disconnect(c)
		}
	}()

	reactor.Add(split)
	reactor.Start()
	defer reactor.Stop()

	v := uint64(9)
	require.NoError(t, feed.Send(&v))
	reactor.Run()

	got, err := sink.Receive()
	require.NoError(t, err)
	require.Equal(t, uint64(9), got)
}
