// Package hal is the only contact point between the firmware core and the
// outside world: MIDI input, the LCD wire, audio output and the tick
// timebase. The host build emulates the peripherals (window, audio device,
// system MIDI ports); the TinyGo build talks to the real pins.
package hal

import "errors"

// TickRate is the shared hardware timer frequency in Hz. Audio rendering,
// display scanning and transport pacing all derive from it.
const TickRate = 31250

// LCDBaudRate is the serial rate of the wire to the LCD panel.
const LCDBaudRate = 2400

var ErrNotImplemented = errors.New("not implemented")

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// MIDIIn delivers raw MIDI bytes as they arrive off the wire.
//
// ReadByte never blocks: it reports false when no byte is pending. The
// tick handler drains it before stepping the protocol engines.
type MIDIIn interface {
	ReadByte() (byte, bool)
}

// LCDWire is the byte-level output to the display panel's RX line.
type LCDWire interface {
	WriteByte(b byte) error
}

// Audio is a mono sample sink clocked at TickRate.
type Audio interface {
	Start(sampleRate uint32) error
	Stop() error
	SetVolume(vol uint8)
	// WriteSample never blocks; samples that cannot be buffered are
	// dropped.
	WriteSample(sample int16)
}

// Time provides the base tick stream.
type Time interface {
	Ticks() <-chan uint64
}

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is the pixel surface the host front panel is drawn into.
// Device builds without a panel view return nil.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
}

// HAL aggregates the peripherals of one device.
type HAL interface {
	Logger() Logger
	MIDI() MIDIIn
	LCD() LCDWire
	Audio() Audio
	Time() Time
	Framebuffer() Framebuffer
}
