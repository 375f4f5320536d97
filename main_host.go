//go:build !tinygo

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"vega/app"
	"vega/hal"
	"vega/synth"
	"vega/wavwriter"
)

func main() {
	var (
		headless = flag.Bool("headless", false, "Run without a window.")
		ticks    = flag.Uint64("ticks", 0, "Stop after N ticks in headless mode (0 = run until interrupted).")
		wavPath  = flag.String("wav", "", "Capture rendered audio to a WAV file (headless mode).")
		channel  = flag.Int("channel", 0, "MIDI channel 1-16 (0 = omni).")
		port     = flag.String("port", "", "Substring of the MIDI input port name to open.")
		noMIDI   = flag.Bool("no-midi", false, "Do not open a system MIDI input.")
		demo     = flag.Bool("demo", false, "Play a built-in arpeggio.")
	)
	flag.Parse()

	cfg := app.Config{Channel: synth.OmniChannel, Demo: *demo}
	if *channel >= 1 && *channel <= 16 {
		cfg.Channel = uint8(*channel - 1)
	}
	hcfg := hal.HostConfig{MIDIPort: *port, DisableMIDI: *noMIDI}

	var capture *wavwriter.Writer
	if *wavPath != "" {
		if !*headless {
			fmt.Fprintln(os.Stderr, "-wav requires -headless")
			os.Exit(2)
		}
		w, err := wavwriter.New(*wavPath, hal.TickRate)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		cfg.Capture = w
		capture = w
	}

	newApp := func(h hal.HAL) func() error {
		return app.New(h, cfg).StepGuarded
	}

	if *headless {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err := hal.RunHeadless(ctx, hcfg, *ticks, newApp)
		if err == context.Canceled {
			err = nil
		}
		if capture != nil {
			if cerr := capture.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(hcfg, newApp); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
