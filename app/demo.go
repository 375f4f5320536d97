package app

import (
	"vega/hal"
	"vega/midi"
)

const demoStepTicks = hal.TickRate / 4

var demoNotes = [...]uint8{60, 64, 67, 72, 67, 64}

// demoPlayer loops an arpeggio into the parser as raw wire bytes, running
// status included, so a demo run exercises the same input path as a
// keyboard. Note events use the wire convention the synth hardware
// expects: status 0x80, velocity zero for release.
type demoPlayer struct {
	parser *midi.Parser
	tick   uint32
	step   int
	gated  bool
}

func (p *demoPlayer) Tick() {
	switch p.tick % demoStepTicks {
	case 0:
		note := demoNotes[p.step%len(demoNotes)]
		p.step++
		if !p.gated {
			p.parser.PushByte(0x80)
			p.gated = true
		}
		p.parser.PushByte(note)
		p.parser.PushByte(0x64)
	case demoStepTicks / 2:
		note := demoNotes[(p.step-1)%len(demoNotes)]
		p.parser.PushByte(note)
		p.parser.PushByte(0x00)
	}
	p.tick++
}
