//go:build !tinygo && cgo

package hal

import (
	"errors"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// hostAudio plays rendered samples through Ebiten's audio package. The
// ring between the tick handler and the audio reader never blocks either
// side: a full ring drops the incoming sample, an empty ring plays
// silence.
type hostAudio struct {
	mu sync.Mutex

	ctx        *audio.Context
	player     *audio.Player
	sampleRate uint32

	buf []int16
	r   int
	w   int
	n   int

	vol uint8
}

func newHostAudio() Audio {
	return &hostAudio{vol: 200}
}

func (a *hostAudio) Start(sampleRate uint32) error {
	if sampleRate == 0 {
		return errors.New("host audio: invalid sample rate")
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.ctx == nil {
		a.ctx = audio.NewContext(int(sampleRate))
	} else if a.ctx.SampleRate() != int(sampleRate) {
		return errors.New("host audio: audio context sample rate is fixed")
	}
	a.sampleRate = sampleRate

	if a.player != nil {
		_ = a.player.Close()
	}

	ring := int(sampleRate / 10) // ~100ms
	if ring < 2048 {
		ring = 2048
	}
	a.buf = make([]int16, ring)
	a.r, a.w, a.n = 0, 0, 0

	p, err := a.ctx.NewPlayer(&hostAudioReader{a: a})
	if err != nil {
		return err
	}
	p.SetBufferSize(100 * time.Millisecond)
	p.SetVolume(float64(a.vol) / 255.0)
	p.Play()
	a.player = p
	return nil
}

func (a *hostAudio) Stop() error {
	a.mu.Lock()
	p := a.player
	a.player = nil
	a.n, a.r, a.w = 0, 0, 0
	a.mu.Unlock()

	if p != nil {
		return p.Close()
	}
	return nil
}

func (a *hostAudio) SetVolume(vol uint8) {
	a.mu.Lock()
	a.vol = vol
	p := a.player
	a.mu.Unlock()
	if p != nil {
		p.SetVolume(float64(vol) / 255.0)
	}
}

func (a *hostAudio) WriteSample(sample int16) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if len(a.buf) == 0 || a.n == len(a.buf) {
		return
	}
	a.buf[a.w] = sample
	a.w = (a.w + 1) % len(a.buf)
	a.n++
}

type hostAudioReader struct {
	a *hostAudio
}

// Read produces 16-bit little-endian stereo, substituting silence when
// the renderer falls behind.
func (r *hostAudioReader) Read(p []byte) (int, error) {
	a := r.a
	for i := 0; i+3 < len(p); i += 4 {
		var s int16

		a.mu.Lock()
		if a.n > 0 {
			s = a.buf[a.r]
			a.r = (a.r + 1) % len(a.buf)
			a.n--
		}
		a.mu.Unlock()

		p[i] = byte(s)
		p[i+1] = byte(uint16(s) >> 8)
		p[i+2] = p[i]
		p[i+3] = p[i+1]
	}
	return len(p) / 4 * 4, nil
}
