//go:build !tinygo && !cgo

package hal

// openSystemMIDI is unavailable without CGO (no rtmidi backend).
func openSystemMIDI(m *hostMIDI, log Logger, portHint string) (func(), error) {
	return nil, ErrNotImplemented
}
