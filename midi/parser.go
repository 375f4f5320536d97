package midi

// Parser reconstructs MIDI messages from a byte stream.
//
// PushByte performs only in-memory state transitions plus at most one Sink
// dispatch, so it is safe to call from the receive path between audio ticks.
// There is no error return anywhere: malformed input is absorbed and the
// parser resynchronizes on the next status byte.
type Parser struct {
	sink Sink

	runningStatus    uint8
	data             [2]uint8
	dataSize         uint8
	expectedDataSize uint8
}

// NewParser creates a parser dispatching to sink.
func NewParser(sink Sink) *Parser {
	return &Parser{sink: sink}
}

// PushByte consumes one raw byte from the wire.
func (p *Parser) PushByte(b uint8) {
	// Real-time messages are passed through immediately and do not touch
	// the state of an in-flight message.
	if b >= StatusClock {
		p.messageReceived(b)
		return
	}

	if b >= 0x80 {
		p.beginMessage(b)
	} else {
		if p.dataSize < uint8(len(p.data)) {
			p.data[p.dataSize] = b
			p.dataSize++
		}
	}

	if p.dataSize >= p.expectedDataSize {
		p.messageReceived(p.runningStatus)
		p.dataSize = 0
		// System common messages are one-shot: they never participate in
		// running status.
		if p.runningStatus > StatusSysExStart {
			p.expectedDataSize = 0
			p.runningStatus = 0
		}
	}
}

func (p *Parser) beginMessage(status uint8) {
	hi := status & 0xF0
	lo := status & 0x0F

	p.dataSize = 0
	p.expectedDataSize = 1
	switch hi {
	case StatusNoteOff, StatusNoteOn, StatusPolyAftertouch, StatusControlChange:
		p.expectedDataSize = 2
	case StatusProgramChange, StatusChannelAftertouch:
		// Default size of 1.
	case StatusPitchBend:
		p.expectedDataSize = 2
	case StatusSystem:
		if lo > 0 && lo < 3 {
			p.expectedDataSize = 2
		} else if lo >= 4 {
			p.expectedDataSize = 0
		}
	}

	// Any status byte terminates an open exclusive block.
	if p.runningStatus == StatusSysExStart {
		p.sink.SysExEnd()
	}
	p.runningStatus = status
	if status == StatusSysExStart {
		p.sink.SysExStart()
	}
}

func (p *Parser) messageReceived(status uint8) {
	if status == 0 {
		p.sink.UnrecognizedByte(p.data[0])
		return
	}

	hi := status & 0xF0
	lo := status & 0x0F
	switch hi {
	case StatusNoteOff:
		// TODO: 0x80 routing to NoteOn (and 0x90 to NoteOff, below) mirrors
		// the shipped hardware's behaviour but is swapped relative to the
		// MIDI standard. Confirm against the device before changing.
		if p.data[1] != 0 {
			p.sink.NoteOn(lo, p.data[0], p.data[1])
		} else {
			p.sink.NoteOff(lo, p.data[0], 0)
		}
	case StatusNoteOn:
		p.sink.NoteOff(lo, p.data[0], p.data[1])
	case StatusPolyAftertouch:
		p.sink.PolyAftertouch(lo, p.data[0], p.data[1])
	case StatusControlChange:
		p.controlChange(lo)
	case StatusProgramChange:
		p.sink.ProgramChange(lo, p.data[0])
	case StatusChannelAftertouch:
		p.sink.ChannelAftertouch(lo, p.data[0])
	case StatusPitchBend:
		// LSB arrives first on the wire.
		p.sink.PitchBend(lo, uint16(p.data[1])<<7|uint16(p.data[0]))
	case StatusSystem:
		p.system(lo)
	}
}

func (p *Parser) controlChange(channel uint8) {
	switch p.data[0] {
	case ccAllSoundOff:
		p.sink.AllSoundOff(channel)
	case ccResetAllControllers:
		p.sink.ResetAllControllers(channel)
	case ccLocalControl:
		p.sink.LocalControl(channel, p.data[1])
	case ccAllNotesOff:
		p.sink.AllNotesOff(channel)
	case ccOmniModeOff:
		p.sink.OmniModeOff(channel)
	case ccOmniModeOn:
		p.sink.OmniModeOn(channel)
	case ccMonoModeOn:
		p.sink.MonoModeOn(channel, p.data[1])
	case ccPolyModeOn:
		p.sink.PolyModeOn(channel)
	default:
		p.sink.ControlChange(channel, p.data[0], p.data[1])
	}
}

func (p *Parser) system(lo uint8) {
	switch lo {
	case 0x0:
		// Inside an exclusive block every data byte drains immediately.
		p.sink.SysExByte(p.data[0])
	case 0x7:
		p.sink.SysExEnd()
	case 0x8:
		p.sink.Clock()
	case 0xA:
		p.sink.Start()
	case 0xB:
		p.sink.Continue()
	case 0xC:
		p.sink.Stop()
	case 0xE:
		p.sink.ActiveSensing()
	case 0xF:
		p.sink.Reset()
	default:
		// 0x1..0x6 (song position / MTC), 0x9 and 0xD are unassigned here.
	}
}
