package app

import (
	"strings"
	"testing"

	"vega/hal"
	"vega/synth"
)

type fakeLogger struct{ lines []string }

func (l *fakeLogger) WriteLineString(s string) { l.lines = append(l.lines, s) }
func (l *fakeLogger) WriteLineBytes(b []byte)  { l.lines = append(l.lines, string(b)) }

type fakeMIDI struct{ buf []byte }

func (m *fakeMIDI) ReadByte() (byte, bool) {
	if len(m.buf) == 0 {
		return 0, false
	}
	b := m.buf[0]
	m.buf = m.buf[1:]
	return b, true
}

type fakeWire struct{ sent []byte }

func (w *fakeWire) WriteByte(b byte) error {
	w.sent = append(w.sent, b)
	return nil
}

type fakeAudio struct {
	started bool
	rate    uint32
	samples []int16
}

func (a *fakeAudio) Start(rate uint32) error {
	a.started = true
	a.rate = rate
	return nil
}
func (a *fakeAudio) Stop() error         { a.started = false; return nil }
func (a *fakeAudio) SetVolume(vol uint8) {}
func (a *fakeAudio) WriteSample(s int16) { a.samples = append(a.samples, s) }

type fakeTime struct{ ch chan uint64 }

func (t *fakeTime) Ticks() <-chan uint64 { return t.ch }

type fakeHAL struct {
	log  *fakeLogger
	in   *fakeMIDI
	wire *fakeWire
	aud  *fakeAudio
	t    *fakeTime
}

func (h *fakeHAL) Logger() hal.Logger           { return h.log }
func (h *fakeHAL) MIDI() hal.MIDIIn             { return h.in }
func (h *fakeHAL) LCD() hal.LCDWire             { return h.wire }
func (h *fakeHAL) Audio() hal.Audio             { return h.aud }
func (h *fakeHAL) Time() hal.Time               { return h.t }
func (h *fakeHAL) Framebuffer() hal.Framebuffer { return nil }

func newFakeHAL() *fakeHAL {
	return &fakeHAL{
		log:  &fakeLogger{},
		in:   &fakeMIDI{},
		wire: &fakeWire{},
		aud:  &fakeAudio{},
		t:    &fakeTime{ch: make(chan uint64)},
	}
}

func anySampleNonZero(s []int16) bool {
	for _, v := range s {
		if v != 0 {
			return true
		}
	}
	return false
}

func TestNewStartsAudioAndGreets(t *testing.T) {
	h := newFakeHAL()
	s := New(h, Config{Channel: synth.OmniChannel})

	if !h.aud.started {
		t.Fatal("audio not started")
	}
	if h.aud.rate != hal.TickRate {
		t.Fatalf("sample rate = %d, want %d", h.aud.rate, hal.TickRate)
	}
	if !strings.HasPrefix(s.Display().Row(0), "Vega-1") {
		t.Fatalf("row 0 = %q, want greeting", s.Display().Row(0))
	}
}

func TestStepRendersOneSamplePerTick(t *testing.T) {
	h := newFakeHAL()
	s := New(h, Config{Channel: synth.OmniChannel})

	for i := 0; i < 50; i++ {
		if err := s.Step(); err != nil {
			t.Fatalf("Step: %v", err)
		}
	}
	if len(h.aud.samples) != 50 {
		t.Fatalf("rendered %d samples, want 50", len(h.aud.samples))
	}
	if anySampleNonZero(h.aud.samples) {
		t.Fatal("idle voice produced a non-zero sample")
	}
}

func TestNoteOnProducesSound(t *testing.T) {
	h := newFakeHAL()
	s := New(h, Config{Channel: synth.OmniChannel})

	h.in.buf = []byte{0x80, 0x45, 0x64}
	for i := 0; i < 200; i++ {
		_ = s.Step()
	}
	if !anySampleNonZero(h.aud.samples) {
		t.Fatal("gated voice stayed silent")
	}
}

func TestDemoProducesSound(t *testing.T) {
	h := newFakeHAL()
	s := New(h, Config{Channel: synth.OmniChannel, Demo: true})

	for i := 0; i < 200; i++ {
		_ = s.Step()
	}
	if !anySampleNonZero(h.aud.samples) {
		t.Fatal("demo arpeggio stayed silent")
	}
}

type captureSink struct{ n int }

func (c *captureSink) WriteSample(s int16) { c.n++ }

func TestCaptureSeesEverySample(t *testing.T) {
	h := newFakeHAL()
	rec := &captureSink{}
	s := New(h, Config{Channel: synth.OmniChannel, Capture: rec})

	for i := 0; i < 64; i++ {
		_ = s.Step()
	}
	if rec.n != len(h.aud.samples) {
		t.Fatalf("capture saw %d samples, audio saw %d", rec.n, len(h.aud.samples))
	}
	if rec.n != 64 {
		t.Fatalf("capture saw %d samples, want 64", rec.n)
	}
}

func TestPanelBytesReachWire(t *testing.T) {
	h := newFakeHAL()
	s := New(h, Config{Channel: synth.OmniChannel})

	// Direct writes (baud announcement, CGRAM upload, brightness) spill
	// straight through during New.
	if len(h.wire.sent) == 0 {
		t.Fatal("no bytes on the LCD wire after init")
	}
	if h.wire.sent[0] != 0x7C || h.wire.sent[1] != 0x0B {
		t.Fatalf("wire starts %02x %02x, want 7c 0b", h.wire.sent[0], h.wire.sent[1])
	}

	before := len(h.wire.sent)
	for i := 0; i < 31250; i++ {
		_ = s.Step()
	}
	if len(h.wire.sent) <= before {
		t.Fatal("greeting never drained to the wire")
	}
}
