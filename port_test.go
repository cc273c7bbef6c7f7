// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package flow_test

import (
	"errors"
	"testing"

	"code.hybscloud.com/flow"
)

// =============================================================================
// Ports - Round Trip
// =============================================================================

// TestPortRoundTrip tests connect, send, receive, disconnect.
func TestPortRoundTrip(t *testing.T) {
	out := flow.NewOutPort[int]()
	in := flow.NewInPort[int](nil)
	conn := flow.Connect(out, in)

	v := 42
	if err := out.Send(&v); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if !in.Peek() {
		t.Fatal("Peek should be true after send")
	}

	got, err := in.Receive()
	if err != nil {
		t.Fatalf("Receive: %v", err)
	}
	if got != 42 {
		t.Fatalf("Receive: got %d, want 42", got)
	}
	if in.Peek() {
		t.Fatal("Peek should be false after receive")
	}

	flow.Disconnect(conn)

	if err := out.Send(&v); !errors.Is(err, flow.ErrWouldBlock) {
		t.Fatalf("Send after disconnect: got %v, want ErrWouldBlock", err)
	}
}

// TestPortDefaultCapacity tests that a default connection buffers
// exactly one element.
func TestPortDefaultCapacity(t *testing.T) {
	out := flow.NewOutPort[int]()
	in := flow.NewInPort[int](nil)
	conn := flow.Connect(out, in)
	defer flow.Disconnect(conn)

	a, b := 1, 2
	if err := out.Send(&a); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if !out.Full() {
		t.Fatal("default connection should be full after one send")
	}
	if err := out.Send(&b); !errors.Is(err, flow.ErrWouldBlock) {
		t.Fatalf("Send on full: got %v, want ErrWouldBlock", err)
	}
}

// TestPortBufferedCapacity tests FIFO order through a sized connection.
func TestPortBufferedCapacity(t *testing.T) {
	out := flow.NewOutPort[int]()
	in := flow.NewInPort[int](nil)
	conn := flow.Connect(out, in, 5)
	defer flow.Disconnect(conn)

	for i := range 5 {
		v := i * 11
		if err := out.Send(&v); err != nil {
			t.Fatalf("Send(%d): %v", i, err)
		}
	}
	if !in.Full() {
		t.Fatal("connection should be full")
	}

	for i := range 5 {
		got, err := in.Receive()
		if err != nil {
			t.Fatalf("Receive(%d): %v", i, err)
		}
		if got != i*11 {
			t.Fatalf("Receive(%d): got %d, want %d", i, got, i*11)
		}
	}
}

// TestPortUnconnected tests every operation on loose ports.
func TestPortUnconnected(t *testing.T) {
	out := flow.NewOutPort[int]()
	in := flow.NewInPort[int](nil)

	v := 1
	if err := out.Send(&v); !errors.Is(err, flow.ErrWouldBlock) {
		t.Fatalf("Send unconnected: got %v, want ErrWouldBlock", err)
	}
	if _, err := in.Receive(); !errors.Is(err, flow.ErrWouldBlock) {
		t.Fatalf("Receive unconnected: got %v, want ErrWouldBlock", err)
	}
	if in.Peek() || in.Full() || out.Full() {
		t.Fatal("unconnected ports should report nothing pending")
	}
}

// TestPortDoubleConnect tests that a port accepts at most one
// connection at a time.
func TestPortDoubleConnect(t *testing.T) {
	t.Run("Output", func(t *testing.T) {
		out := flow.NewOutPort[int]()
		conn := flow.Connect(out, flow.NewInPort[int](nil))
		defer flow.Disconnect(conn)

		defer func() {
			if r := recover(); r == nil {
				t.Fatal("expected panic on double connect")
			}
		}()
		flow.Connect(out, flow.NewInPort[int](nil))
	})

	t.Run("Input", func(t *testing.T) {
		in := flow.NewInPort[int](nil)
		conn := flow.Connect(flow.NewOutPort[int](), in)
		defer flow.Disconnect(conn)

		defer func() {
			if r := recover(); r == nil {
				t.Fatal("expected panic on double connect")
			}
		}()
		flow.Connect(flow.NewOutPort[int](), in)
	})
}

// TestPortReconnect tests that disconnected endpoints are reusable.
func TestPortReconnect(t *testing.T) {
	out := flow.NewOutPort[int]()
	in := flow.NewInPort[int](nil)

	conn := flow.Connect(out, in)
	v := 1
	if err := out.Send(&v); err != nil {
		t.Fatalf("Send: %v", err)
	}
	flow.Disconnect(conn)

	// The buffered element went away with the connection.
	conn = flow.Connect(out, in)
	defer flow.Disconnect(conn)
	if in.Peek() {
		t.Fatal("fresh connection should be empty")
	}
	v = 2
	if err := out.Send(&v); err != nil {
		t.Fatalf("Send after reconnect: %v", err)
	}
	got, err := in.Receive()
	if err != nil || got != 2 {
		t.Fatalf("Receive after reconnect: got (%d, %v), want (2, nil)", got, err)
	}
}

// =============================================================================
// Ports - Constant Binding
// =============================================================================

// TestConnectConstant tests the constant source convenience: always
// peekable, always yields the value.
func TestConnectConstant(t *testing.T) {
	in := flow.NewInPort[uint32](nil)
	conn := flow.ConnectConstant(uint32(1000), in)

	if !in.Peek() {
		t.Fatal("constant should always be peekable")
	}
	for i := range 3 {
		got, err := in.Receive()
		if err != nil {
			t.Fatalf("Receive(%d): %v", i, err)
		}
		if got != 1000 {
			t.Fatalf("Receive(%d): got %d, want 1000", i, got)
		}
	}

	flow.Disconnect(conn)
	if in.Peek() {
		t.Fatal("peek after disconnect should be false")
	}
	if _, err := in.Receive(); !errors.Is(err, flow.ErrWouldBlock) {
		t.Fatalf("Receive after disconnect: got %v, want ErrWouldBlock", err)
	}
}

// =============================================================================
// Ports - Bidirectional
// =============================================================================

// TestInOutPortPair tests both directions of a bidirectional binding.
func TestInOutPortPair(t *testing.T) {
	a := flow.NewInOutPort[int](nil)
	b := flow.NewInOutPort[int](nil)
	conn := flow.ConnectInOut(a, b, 2)
	defer flow.Disconnect(conn)

	v := 10
	if err := a.Send(&v); err != nil {
		t.Fatalf("a.Send: %v", err)
	}
	v = 20
	if err := b.Send(&v); err != nil {
		t.Fatalf("b.Send: %v", err)
	}

	if !a.Peek() || !b.Peek() {
		t.Fatal("both directions should be peekable")
	}

	got, err := b.Receive()
	if err != nil || got != 10 {
		t.Fatalf("b.Receive: got (%d, %v), want (10, nil)", got, err)
	}
	got, err = a.Receive()
	if err != nil || got != 20 {
		t.Fatalf("a.Receive: got (%d, %v), want (20, nil)", got, err)
	}

	// The directions are independent rings.
	if a.Peek() || b.Peek() {
		t.Fatal("both directions should be drained")
	}
}

// TestInOutPortDisconnect tests that one Disconnect severs both
// directions.
func TestInOutPortDisconnect(t *testing.T) {
	a := flow.NewInOutPort[int](nil)
	b := flow.NewInOutPort[int](nil)
	conn := flow.ConnectInOut(a, b)

	flow.Disconnect(conn)

	v := 1
	if err := a.Send(&v); !errors.Is(err, flow.ErrWouldBlock) {
		t.Fatalf("a.Send after disconnect: got %v, want ErrWouldBlock", err)
	}
	if err := b.Send(&v); !errors.Is(err, flow.ErrWouldBlock) {
		t.Fatalf("b.Send after disconnect: got %v, want ErrWouldBlock", err)
	}
}
