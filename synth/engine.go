// Package synth is a small monophonic voice used to exercise the MIDI and
// display paths end to end. It is intentionally minimal: a phase
// accumulator reading the band-limited wavetables, last-note priority and
// a handful of controllers. The full voice architecture lives elsewhere;
// this engine is what the host build plays through.
package synth

import (
	"vega/display"
	"vega/midi"
	"vega/resources"
)

// OmniChannel accepts events on every MIDI channel.
const OmniChannel = 0xFF

const maxHeldNotes = 8

// topOctave is the octave covered by the phase increment table.
const topOctave = 9

// AudioSink receives one rendered sample per tick.
type AudioSink interface {
	WriteSample(s int16)
}

// Engine is a monophonic voice implementing midi.Sink.
type Engine struct {
	midi.NopSink

	lcd     *display.Driver
	audio   AudioSink
	channel uint8

	held     [maxHeldNotes]uint8
	heldSize int

	wave      resources.Waveform
	phase     uint16
	increment uint16
	note      uint8
	velocity  uint8
	bend      uint16
	modWheel  uint8
	volume    uint8
	localOn   bool
}

// NewEngine creates a voice listening on channel (OmniChannel for all),
// displaying on lcd and rendering into audio. Both collaborators may be
// nil in tests.
func NewEngine(channel uint8, lcd *display.Driver, audio AudioSink) *Engine {
	e := &Engine{
		lcd:     lcd,
		audio:   audio,
		channel: channel,
		bend:    0x2000,
		volume:  0x7F,
		localOn: true,
	}
	// The waveform name is only printed on a program change, so the boot
	// greeting survives until the first interaction.
	e.wave = resources.WaveformSine
	return e
}

// Tick renders one audio sample. Registered after the display task so the
// remaining cycle budget belongs to audio.
func (e *Engine) Tick() {
	if e.audio == nil {
		return
	}
	e.audio.WriteSample(e.RenderSample())
}

// RenderSample advances the oscillator and returns the next sample.
func (e *Engine) RenderSample() int16 {
	if e.heldSize == 0 {
		return 0
	}
	e.phase += e.bentIncrement()
	// 64-entry tables: index with the top 6 bits of the phase.
	s := resources.Lookup8(resources.WaveformTable(e.wave), int(e.phase>>10))
	out := int32(int16(s)-128) * int32(e.velocity) * int32(e.volume) / 128
	return int16(out)
}

// bentIncrement applies the pitch wheel, scaled to a +/- two semitone
// range, to the base phase increment.
func (e *Engine) bentIncrement() uint16 {
	offset := int32(e.bend) - 0x2000
	return uint16(int32(e.increment) + int32(e.increment)*offset/(8192*8))
}

func (e *Engine) forThisChannel(channel uint8) bool {
	return e.channel > 15 || channel == e.channel
}

func (e *Engine) NoteOn(channel, note, velocity uint8) {
	if !e.forThisChannel(channel) || !e.localOn {
		return
	}
	e.removeHeld(note)
	if e.heldSize < maxHeldNotes {
		e.held[e.heldSize] = note
		e.heldSize++
	} else {
		e.held[maxHeldNotes-1] = note
	}
	e.velocity = velocity
	e.soundNote(note)
	e.flashActivity()
}

func (e *Engine) NoteOff(channel, note, velocity uint8) {
	if !e.forThisChannel(channel) {
		return
	}
	e.removeHeld(note)
	if e.heldSize > 0 {
		// Fall back to the most recent still-held note.
		e.soundNote(e.held[e.heldSize-1])
	} else if e.lcd != nil {
		e.lcd.Print(1, "                ")
	}
}

func (e *Engine) ControlChange(channel, controller, value uint8) {
	if !e.forThisChannel(channel) {
		return
	}
	switch controller {
	case midi.CCModulationWheelMSB:
		e.modWheel = value
	case 7:
		e.volume = value
	}
}

func (e *Engine) ProgramChange(channel, program uint8) {
	if !e.forThisChannel(channel) {
		return
	}
	e.setWaveform(resources.Waveform(program % 3))
}

func (e *Engine) PitchBend(channel uint8, value uint16) {
	if !e.forThisChannel(channel) {
		return
	}
	e.bend = value
}

func (e *Engine) AllSoundOff(channel uint8) {
	if !e.forThisChannel(channel) {
		return
	}
	e.heldSize = 0
	e.velocity = 0
}

func (e *Engine) AllNotesOff(channel uint8) {
	e.AllSoundOff(channel)
}

func (e *Engine) ResetAllControllers(channel uint8) {
	if !e.forThisChannel(channel) {
		return
	}
	e.bend = 0x2000
	e.modWheel = 0
	e.volume = 0x7F
}

func (e *Engine) LocalControl(channel, state uint8) {
	if !e.forThisChannel(channel) {
		return
	}
	e.localOn = state != 0
}

func (e *Engine) Clock() {
	if e.lcd != nil {
		e.lcd.SetStatus(resources.CharClock)
	}
}

// HeldNotes reports how many keys are down.
func (e *Engine) HeldNotes() int {
	return e.heldSize
}

func (e *Engine) removeHeld(note uint8) {
	for i := 0; i < e.heldSize; i++ {
		if e.held[i] != note {
			continue
		}
		copy(e.held[i:], e.held[i+1:e.heldSize])
		e.heldSize--
		return
	}
}

func (e *Engine) soundNote(note uint8) {
	e.note = note
	base := resources.Lookup16(resources.LutOscillatorIncrements, int(note%12))
	if shift := topOctave - int(note/12); shift > 0 {
		base >>= uint(shift)
	}
	e.increment = base
	if e.lcd != nil {
		e.lcd.Print(1, noteName(note))
	}
}

func (e *Engine) setWaveform(w resources.Waveform) {
	e.wave = w
	if e.lcd == nil {
		return
	}
	switch w {
	case resources.WaveformTriangle:
		e.lcd.Print(0, "triangle")
	case resources.WaveformSaw:
		e.lcd.Print(0, "sawtooth")
	default:
		e.lcd.Print(0, "sine    ")
	}
}

func (e *Engine) flashActivity() {
	if e.lcd != nil {
		e.lcd.SetStatus(resources.CharMidiActivity)
	}
}

var noteNames = [12]string{
	"C ", "C#", "D ", "D#", "E ", "F ", "F#", "G ", "G#", "A ", "A#", "B ",
}

// noteName renders a MIDI note number as a name and octave, e.g. "A 4".
func noteName(note uint8) string {
	octave := int(note/12) - 1
	name := noteNames[note%12]
	if octave < 0 {
		return name + "-1"
	}
	return name + string(rune('0'+octave))
}
