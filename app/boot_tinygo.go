//go:build tinygo

package app

import (
	"vega/hal"
	"vega/internal/buildinfo"
)

// bootBanner announces the firmware over the console UART so early boot
// is observable without a MIDI source or a working panel.
func bootBanner(h hal.HAL) {
	h.Logger().WriteLineString("vega-1 " + buildinfo.Short())
}
