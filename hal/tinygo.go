//go:build tinygo && baremetal

package hal

import (
	"machine"
	"time"
)

type tinyGoHAL struct {
	logger *uartLogger
	midi   *uartMIDI
	lcd    *bitBangSerialTX
	aud    Audio
	t      *tinyGoTime
}

// New returns a Pico 2 (RP2350) HAL implementation.
//
// Console: UART0 on GP0 (TX) / GP1 (RX), 115200 8N1.
// MIDI in: UART1 RX on GP9, 31250 8N1.
// LCD:     software serial TX on GP3, 2400 8N1.
// Audio:   PWM on GP2.
func New() HAL {
	console := machine.UART0
	console.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})

	midiUART := machine.UART1
	midiUART.Configure(machine.UARTConfig{
		BaudRate: 31250,
		TX:       machine.GP8,
		RX:       machine.GP9,
	})

	lcdPin := machine.GP3
	lcdPin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	lcdPin.High()

	return &tinyGoHAL{
		logger: &uartLogger{uart: console},
		midi:   &uartMIDI{uart: midiUART},
		lcd:    &bitBangSerialTX{pin: lcdPin, bit: time.Second / LCDBaudRate},
		aud:    newPWMAudioOut(machine.GP2),
		t:      newTinyGoTime(),
	}
}

func (h *tinyGoHAL) Logger() Logger           { return h.logger }
func (h *tinyGoHAL) MIDI() MIDIIn             { return h.midi }
func (h *tinyGoHAL) LCD() LCDWire             { return h.lcd }
func (h *tinyGoHAL) Audio() Audio             { return h.aud }
func (h *tinyGoHAL) Time() Time               { return h.t }
func (h *tinyGoHAL) Framebuffer() Framebuffer { return nil }

type uartLogger struct {
	uart *machine.UART
}

func (l *uartLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		l.uart.WriteByte(s[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

func (l *uartLogger) WriteLineBytes(b []byte) {
	for i := 0; i < len(b); i++ {
		l.uart.WriteByte(b[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

type uartMIDI struct {
	uart *machine.UART
}

func (m *uartMIDI) ReadByte() (byte, bool) {
	if m.uart.Buffered() == 0 {
		return 0, false
	}
	b, err := m.uart.ReadByte()
	if err != nil {
		return 0, false
	}
	return b, true
}

// bitBangSerialTX clocks out 8N1 frames on a GPIO pin. The display
// transport paces writes to the line rate, so each call sends at most a
// few frames back to back.
type bitBangSerialTX struct {
	pin machine.Pin
	bit time.Duration
}

func (w *bitBangSerialTX) WriteByte(b byte) error {
	w.pin.Low()
	time.Sleep(w.bit)
	for i := 0; i < 8; i++ {
		if b&(1<<i) != 0 {
			w.pin.High()
		} else {
			w.pin.Low()
		}
		time.Sleep(w.bit)
	}
	w.pin.High()
	time.Sleep(w.bit)
	return nil
}

type tinyGoTime struct {
	ch  chan uint64
	seq uint64
}

// newTinyGoTime polls the wall clock on a 1ms ticker and publishes the
// whole TickRate ticks that elapsed, carrying the remainder.
func newTinyGoTime() *tinyGoTime {
	t := &tinyGoTime{ch: make(chan uint64, 1024)}
	go func() {
		ticker := time.NewTicker(1 * time.Millisecond)
		defer ticker.Stop()
		last := time.Now()
		var acc time.Duration
		for range ticker.C {
			now := time.Now()
			acc += now.Sub(last)
			last = now
			ticks := uint64(acc / (time.Second / TickRate))
			acc -= time.Duration(ticks) * (time.Second / TickRate)
			for i := uint64(0); i < ticks; i++ {
				t.seq++
				select {
				case t.ch <- t.seq:
				default:
				}
			}
		}
	}()
	return t
}

func (t *tinyGoTime) Ticks() <-chan uint64 { return t.ch }
