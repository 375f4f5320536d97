//go:build !tinygo && !cgo

package hal

// RunWindow is unavailable without CGO (no ebiten OpenGL backend).
func RunWindow(cfg HostConfig, newApp func(HAL) func() error) error {
	return ErrNotImplemented
}
