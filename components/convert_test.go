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

func TestConvert(t *testing.T) {
	reactor := flow.NewReactor()
	convert := components.NewConvert[float64, int32]()
	feed := flow.NewOutPort[float64]()
	sink := flow.NewInPort[int32](nil)
	conns := []flow.Connection{
		flow.Connect(feed, convert.InFrom),
		flow.Connect(convert.OutTo, sink),
	}
	defer func() {
		for _, c := range conns {
			flow.Disconnect(c)
		}
	}()

	reactor.Add(convert)
	reactor.Start()
	defer reactor.Stop()

	for _, tt := range []struct {
		in   float64
		want int32
	}{
		{3.7, 3},
		{-2.2, -2},
		{0, 0},
	} {
		v := tt.in
		require.NoError(t, feed.Send(&v))
		reactor.Run()

		got, err := sink.Receive()
		require.NoError(t, err)
		require.Equal(t, tt.want, got)
	}
}

func TestConvertWidening(t *testing.T) {
	reactor := flow.NewReactor()
	convert := components.NewConvert[uint8, uint32]()
	feed := flow.NewOutPort[uint8]()
	sink := flow.NewInPort[uint32](nil)
	conns := []flow.Connection{
		flow.Connect(feed, convert.InFrom),
		flow.Connect(convert.OutTo, sink),
	}
	defer func() {
		for _, c := range conns {
			flow.Disconnect(c)
		}
	}()

	reactor.Add(convert)
	reactor.Start()
	defer reactor.Stop()

	v := uint8(255)
	require.NoError(t, feed.Send(&v))
	reactor.Run()

	got, err := sink.Receive()
	require.NoError(t, err)
	require.Equal(t, uint32(255), got)
}
