//go:build !tinygo && !cgo

package hal

// hostAudio is a sink-only stub when CGO audio backends are unavailable.
type hostAudio struct{}

func newHostAudio() Audio { return hostAudio{} }

func (hostAudio) Start(sampleRate uint32) error { return nil }
func (hostAudio) Stop() error                   { return nil }
func (hostAudio) SetVolume(vol uint8)           {}
func (hostAudio) WriteSample(sample int16)      {}
