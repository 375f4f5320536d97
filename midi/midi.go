// Package midi decodes a raw MIDI byte stream into discrete events.
//
// The parser is incremental: bytes are pushed one at a time as they arrive
// from the wire, and complete messages are dispatched synchronously to a
// Sink. It implements running status, real-time interleaving and system
// exclusive framing, and absorbs malformed input without ever failing.
package midi

// Status byte layout: the high nibble selects the message family, the low
// nibble carries the channel (or the system message subtype for 0xF0).
const (
	StatusNoteOff           = 0x80
	StatusNoteOn            = 0x90
	StatusPolyAftertouch    = 0xA0
	StatusControlChange     = 0xB0
	StatusProgramChange     = 0xC0
	StatusChannelAftertouch = 0xD0
	StatusPitchBend         = 0xE0
	StatusSystem            = 0xF0

	StatusSysExStart    = 0xF0
	StatusSysExEnd      = 0xF7
	StatusClock         = 0xF8
	StatusStart         = 0xFA
	StatusContinue      = 0xFB
	StatusStop          = 0xFC
	StatusActiveSensing = 0xFE
	StatusReset         = 0xFF
)

// Controller numbers 0x78..0x7F are reserved channel-mode messages and are
// routed to dedicated Sink methods instead of ControlChange.
const (
	ccAllSoundOff         = 0x78
	ccResetAllControllers = 0x79
	ccLocalControl        = 0x7A
	ccAllNotesOff         = 0x7B
	ccOmniModeOff         = 0x7C
	ccOmniModeOn          = 0x7D
	ccMonoModeOn          = 0x7E
	ccPolyModeOn          = 0x7F
)

// Commonly used controller numbers.
const (
	CCModulationWheelMSB = 1
	CCModulationWheelLSB = 21
)

// Sink receives decoded MIDI events.
//
// Every method must return quickly: the parser dispatches synchronously,
// possibly from an interrupt-adjacent context. Embed NopSink to implement
// only the events a device cares about.
type Sink interface {
	NoteOn(channel, note, velocity uint8)
	NoteOff(channel, note, velocity uint8)
	PolyAftertouch(channel, note, value uint8)
	ChannelAftertouch(channel, value uint8)
	ControlChange(channel, controller, value uint8)
	ProgramChange(channel, program uint8)
	PitchBend(channel uint8, value uint16)

	AllSoundOff(channel uint8)
	ResetAllControllers(channel uint8)
	LocalControl(channel, state uint8)
	AllNotesOff(channel uint8)
	OmniModeOff(channel uint8)
	OmniModeOn(channel uint8)
	MonoModeOn(channel, numChannels uint8)
	PolyModeOn(channel uint8)

	SysExStart()
	SysExByte(b uint8)
	SysExEnd()

	// UnrecognizedByte reports a data byte that arrived with no status to
	// attach it to. Diagnostic only.
	UnrecognizedByte(b uint8)

	Clock()
	Start()
	Continue()
	Stop()
	ActiveSensing()
	Reset()
}

// NopSink implements Sink with no-ops for every event.
type NopSink struct{}

func (NopSink) NoteOn(channel, note, velocity uint8) {}
func (NopSink) NoteOff(channel, note, velocity uint8) {}
func (NopSink) PolyAftertouch(channel, note, value uint8) {}
func (NopSink) ChannelAftertouch(channel, value uint8) {}
func (NopSink) ControlChange(channel, controller, value uint8) {}
func (NopSink) ProgramChange(channel, program uint8) {}
func (NopSink) PitchBend(channel uint8, value uint16) {}
func (NopSink) AllSoundOff(channel uint8) {}
func (NopSink) ResetAllControllers(channel uint8) {}
func (NopSink) LocalControl(channel, state uint8) {}
func (NopSink) AllNotesOff(channel uint8) {}
func (NopSink) OmniModeOff(channel uint8) {}
func (NopSink) OmniModeOn(channel uint8) {}
func (NopSink) MonoModeOn(channel, numChannels uint8) {}
func (NopSink) PolyModeOn(channel uint8) {}
func (NopSink) SysExStart() {}
func (NopSink) SysExByte(b uint8) {}
func (NopSink) SysExEnd() {}
func (NopSink) UnrecognizedByte(b uint8) {}
func (NopSink) Clock() {}
func (NopSink) Start() {}
func (NopSink) Continue() {}
func (NopSink) Stop() {}
func (NopSink) ActiveSensing() {}
func (NopSink) Reset() {}
