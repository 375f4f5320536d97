//go:build !tinygo

package app

import "vega/hal"

// The host build announces itself through the window title instead.
func bootBanner(h hal.HAL) {}
