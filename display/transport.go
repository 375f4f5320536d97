package display

// Wire is the byte-level output the buffered transport drains into: the
// UART (or soft-serial pin) wired to the panel's RX line.
type Wire interface {
	WriteByte(b byte) error
}

// BufferedOutput is a ring-buffered Transport over a Wire.
//
// Enqueueing is free; Pump moves queued bytes onto the wire at a rate
// derived from the panel baud rate versus the tick rate, so a slow wire
// backs up into the ring instead of stalling the tick handler. Nothing
// here blocks: a write into a full ring spills the oldest queued bytes
// straight onto the wire, which can only happen off the tick path.
type BufferedOutput struct {
	wire     Wire
	baudRate int
	tickRate int

	buf  [64]byte
	head int
	tail int

	// Fractional per-tick byte budget, accumulated in units of
	// bytes-per-second so no float arithmetic is needed.
	budget int

	dropped int
}

// NewBufferedOutput creates a transport pacing writes for baudRate over a
// tick clock of tickRate Hz.
func NewBufferedOutput(wire Wire, baudRate, tickRate int) *BufferedOutput {
	return &BufferedOutput{wire: wire, baudRate: baudRate, tickRate: tickRate}
}

// Init resets the ring and announces the baud rate to the panel. SerLCD
// units listen for the switch command at their power-on rate, so the pair
// is pushed ahead of any queued traffic.
func (o *BufferedOutput) Init() {
	o.head = 0
	o.tail = 0
	o.budget = 0
	if o.baudRate == 2400 {
		o.Write(0x7C)
		o.Write(0x0B)
	}
}

// FreeCapacity returns the number of bytes that can be queued without loss.
func (o *BufferedOutput) FreeCapacity() int {
	return len(o.buf) - (o.head - o.tail)
}

// Write enqueues one byte. Tick-path callers must have checked
// FreeCapacity; direct-write bursts (init-time commands) may exceed it, in
// which case the oldest queued bytes are spilled straight onto the wire to
// make room. Spilling outside the pacing budget is only acceptable off the
// tick path.
func (o *BufferedOutput) Write(b byte) {
	for o.head-o.tail >= len(o.buf) {
		if err := o.wire.WriteByte(o.buf[o.tail%len(o.buf)]); err != nil {
			o.dropped++
			return
		}
		o.tail++
	}
	o.buf[o.head%len(o.buf)] = b
	o.head++
}

// Pump drains queued bytes onto the wire within this tick's byte budget.
func (o *BufferedOutput) Pump() {
	// One serial byte is 10 bits on the wire (start + 8 data + stop).
	o.budget += o.baudRate / 10
	for o.budget >= o.tickRate && o.tail < o.head {
		o.budget -= o.tickRate
		if err := o.wire.WriteByte(o.buf[o.tail%len(o.buf)]); err != nil {
			// Wire pushback: retry the same byte next tick.
			return
		}
		o.tail++
	}
	if o.tail == o.head && o.budget > o.tickRate {
		// Idle: don't bank unused bandwidth into a future burst.
		o.budget = o.tickRate
	}
}

// Dropped reports bytes lost to wire errors during overflow spills.
func (o *BufferedOutput) Dropped() int {
	return o.dropped
}
