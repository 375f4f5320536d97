// Package app assembles the firmware: MIDI input feeding the parser, the
// display driver draining into the LCD wire and the voice engine, all
// stepped by the cooperative scheduler in a fixed order.
package app

import (
	"vega/display"
	"vega/hal"
	"vega/kernel"
	"vega/midi"
	"vega/resources"
	"vega/synth"
)

const defaultBrightness = 29

type Config struct {
	// Channel is the MIDI channel the voice listens on (0 to 15), or
	// synth.OmniChannel for all channels.
	Channel uint8
	// Demo loops a built-in arpeggio through the parser, for running
	// without a MIDI source attached.
	Demo bool
	// Capture, when set, receives a copy of every rendered sample.
	Capture synth.AudioSink
}

// System is one assembled firmware instance.
type System struct {
	h      hal.HAL
	sched  kernel.Scheduler
	parser *midi.Parser
	engine *synth.Engine
	lcd    *display.Driver
	out    *display.BufferedOutput
}

// New wires a system on top of h and returns it ready to step.
func New(h hal.HAL, cfg Config) *System {
	out := display.NewBufferedOutput(h.LCD(), hal.LCDBaudRate, hal.TickRate)
	lcd := display.NewDriver(out)
	lcd.Init()
	lcd.SetCustomCharMap(resources.ChrSpecialCharacters, resources.NumSpecialCharacters)
	lcd.SetBrightness(defaultBrightness)
	lcd.Print(0, "Vega-1")

	var sink synth.AudioSink = h.Audio()
	if cfg.Capture != nil {
		sink = teeSink{h.Audio(), cfg.Capture}
	}
	engine := synth.NewEngine(cfg.Channel, lcd, sink)

	s := &System{
		h:      h,
		parser: midi.NewParser(engine),
		engine: engine,
		lcd:    lcd,
		out:    out,
	}

	// Tick order matters: pending display bytes leave first, then the
	// page diff may queue more, then a sample is rendered.
	s.sched.AddTask(kernel.TaskFunc(out.Pump))
	s.sched.AddTask(kernel.TaskFunc(lcd.Update))
	if cfg.Demo {
		s.sched.AddTask(&demoPlayer{parser: s.parser})
	}
	s.sched.AddTask(engine)

	if err := h.Audio().Start(hal.TickRate); err != nil {
		h.Logger().WriteLineString("audio: " + err.Error())
	}
	return s
}

// Step runs one tick: drain buffered MIDI bytes, then run every task.
func (s *System) Step() error {
	for {
		b, ok := s.h.MIDI().ReadByte()
		if !ok {
			break
		}
		s.parser.PushByte(b)
	}
	s.sched.Tick()
	return nil
}

// Display exposes the panel driver, for inspection in headless runs.
func (s *System) Display() *display.Driver { return s.lcd }

// Run assembles a system and steps it from the HAL tick source, blocking
// forever. This is the device entrypoint.
func Run(h hal.HAL, cfg Config) {
	bootBanner(h)
	s := New(h, cfg)
	for range h.Time().Ticks() {
		if err := s.StepGuarded(); err != nil {
			break
		}
	}
	// After a fault, keep the panel alive so the message drains out.
	for range h.Time().Ticks() {
		s.out.Pump()
		s.lcd.Update()
	}
}

// teeSink duplicates rendered samples to a capture sink.
type teeSink struct {
	a, b synth.AudioSink
}

func (t teeSink) WriteSample(s int16) {
	t.a.WriteSample(s)
	t.b.WriteSample(s)
}
