package display

import (
	"bytes"
	"errors"
	"testing"
)

type fakeWire struct {
	sent []byte
	fail bool
}

func (w *fakeWire) WriteByte(b byte) error {
	if w.fail {
		return errors.New("wire busy")
	}
	w.sent = append(w.sent, b)
	return nil
}

func TestBufferedOutputBaudAnnouncement(t *testing.T) {
	wire := &fakeWire{}
	out := NewBufferedOutput(wire, 2400, 31250)
	out.Init()
	if out.FreeCapacity() != len(out.buf)-2 {
		t.Fatalf("capacity %d after handshake, want %d", out.FreeCapacity(), len(out.buf)-2)
	}

	for len(wire.sent) < 2 {
		out.Pump()
	}
	if !bytes.Equal(wire.sent, []byte{0x7C, 0x0B}) {
		t.Fatalf("handshake = % x", wire.sent)
	}

	wire = &fakeWire{}
	out = NewBufferedOutput(wire, 9600, 31250)
	out.Init()
	if out.FreeCapacity() != len(out.buf) {
		t.Fatal("unexpected handshake bytes at 9600 baud")
	}
}

func TestBufferedOutputPacing(t *testing.T) {
	wire := &fakeWire{}
	out := NewBufferedOutput(wire, 2400, 31250)
	out.Init()
	// Drain the handshake first.
	for out.tail < out.head {
		out.Pump()
	}
	wire.sent = nil

	for i := 0; i < 16; i++ {
		out.Write(byte(i))
	}

	// 2400 baud moves 240 bytes/s; across one second of ticks everything
	// queued must clear, but a single tick never moves more than one byte.
	total := 0
	for i := 0; i < 31250; i++ {
		before := len(wire.sent)
		out.Pump()
		if n := len(wire.sent) - before; n > 1 {
			t.Fatalf("tick %d wrote %d bytes", i, n)
		}
		total = len(wire.sent)
	}
	if total != 16 {
		t.Fatalf("drained %d bytes in one second, want 16", total)
	}
}

func TestBufferedOutputWirePushback(t *testing.T) {
	wire := &fakeWire{fail: true}
	out := NewBufferedOutput(wire, 31250*10, 31250) // one byte per tick
	out.Init()
	out.Write('A')
	out.Write('B')

	out.Pump()
	if len(wire.sent) != 0 {
		t.Fatal("byte written through failing wire")
	}

	wire.fail = false
	out.Pump()
	out.Pump()
	if !bytes.Equal(wire.sent, []byte{'A', 'B'}) {
		t.Fatalf("got % x after recovery", wire.sent)
	}
}

func TestBufferedOutputOverflowSpillsToWire(t *testing.T) {
	wire := &fakeWire{}
	out := NewBufferedOutput(wire, 9600, 31250)
	out.Init()
	for i := 0; i < len(out.buf); i++ {
		out.Write(byte(i))
	}
	if out.FreeCapacity() != 0 {
		t.Fatalf("capacity %d, want 0", out.FreeCapacity())
	}

	// A direct write past capacity pushes the oldest byte out immediately
	// instead of losing anything.
	out.Write(0xAA)
	if len(wire.sent) != 1 || wire.sent[0] != 0 {
		t.Fatalf("spilled % x, want the oldest byte", wire.sent)
	}
	if out.Dropped() != 0 {
		t.Fatalf("dropped = %d, want 0", out.Dropped())
	}

	// Unless the wire refuses it.
	wire.fail = true
	out.Write(0xBB)
	if out.Dropped() != 1 {
		t.Fatalf("dropped = %d, want 1", out.Dropped())
	}
}
