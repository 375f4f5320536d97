//go:build tinygo

package main

import (
	"vega/app"
	"vega/hal"
	"vega/synth"
)

func main() {
	app.Run(hal.New(), app.Config{Channel: synth.OmniChannel})
}
