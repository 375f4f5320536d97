//go:build !tinygo

package hal

import (
	"sync"

	"go.uber.org/zap"
)

// HostConfig selects host peripheral behavior.
type HostConfig struct {
	// MIDIPort is a case-insensitive substring matched against system
	// MIDI input port names. Empty picks the first available port.
	MIDIPort string
	// DisableMIDI skips opening system MIDI ports entirely.
	DisableMIDI bool
}

type hostHAL struct {
	logger *hostLogger
	midi   *hostMIDI
	lcd    *hostLCD
	aud    Audio
	t      *hostTime
	fb     *hostFramebuffer

	closeMIDI func()
}

// New returns a host HAL emulating the synth's peripherals.
func New(cfg HostConfig) HAL {
	logger := newHostLogger()
	h := &hostHAL{
		logger: logger,
		midi:   &hostMIDI{},
		lcd:    newHostLCD(),
		aud:    newHostAudio(),
		t:      newHostTime(),
		fb:     newHostFramebuffer(panelWidth, panelHeight),
	}
	if !cfg.DisableMIDI {
		stop, err := openSystemMIDI(h.midi, logger, cfg.MIDIPort)
		if err != nil {
			logger.WriteLineString("midi: no system input: " + err.Error())
		} else {
			h.closeMIDI = stop
		}
	}
	return h
}

func (h *hostHAL) Logger() Logger           { return h.logger }
func (h *hostHAL) MIDI() MIDIIn             { return h.midi }
func (h *hostHAL) LCD() LCDWire             { return h.lcd }
func (h *hostHAL) Audio() Audio             { return h.aud }
func (h *hostHAL) Time() Time               { return h.t }
func (h *hostHAL) Framebuffer() Framebuffer { return h.fb }

func (h *hostHAL) close() {
	if h.closeMIDI != nil {
		h.closeMIDI()
		h.closeMIDI = nil
	}
	_ = h.aud.Stop()
	_ = h.logger.log.Sync()
}

// hostLogger adapts the line-oriented Logger contract onto zap.
type hostLogger struct {
	log *zap.Logger
}

func newHostLogger() *hostLogger {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	log, err := cfg.Build()
	if err != nil {
		log = zap.NewNop()
	}
	return &hostLogger{log: log}
}

func (l *hostLogger) WriteLineString(s string) {
	l.log.Info(s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.log.Info(string(b))
}

// hostMIDI buffers raw bytes pushed from the system MIDI callback until
// the tick handler drains them.
type hostMIDI struct {
	mu   sync.Mutex
	buf  [1024]byte
	head int
	tail int
}

func (m *hostMIDI) ReadByte() (byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.tail == m.head {
		return 0, false
	}
	b := m.buf[m.tail%len(m.buf)]
	m.tail++
	return b, true
}

// push enqueues raw wire bytes. Oldest data is discarded on overflow; a
// stalled consumer must not back-pressure the MIDI driver callback.
func (m *hostMIDI) push(p []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, b := range p {
		if m.head-m.tail >= len(m.buf) {
			m.tail++
		}
		m.buf[m.head%len(m.buf)] = b
		m.head++
	}
}
