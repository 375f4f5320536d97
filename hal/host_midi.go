//go:build !tinygo && cgo

package hal

import (
	"fmt"
	"strings"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	"gitlab.com/gomidi/midi/v2/drivers/rtmididrv"
)

// openSystemMIDI connects a system MIDI input port to the raw byte ring.
// The returned function closes the port and the driver.
func openSystemMIDI(m *hostMIDI, log Logger, portHint string) (func(), error) {
	drv, err := rtmididrv.New()
	if err != nil {
		return nil, fmt.Errorf("rtmididrv: %w", err)
	}

	in, err := pickInput(drv, portHint)
	if err != nil {
		drv.Close()
		return nil, err
	}
	if err := in.Open(); err != nil {
		drv.Close()
		return nil, fmt.Errorf("open %q: %w", in.String(), err)
	}

	// The listener hands over raw wire bytes; the firmware's own parser
	// does the decoding, exactly as it would on hardware.
	stop, err := midi.ListenTo(in, func(msg midi.Message, _ int32) {
		m.push(msg.Bytes())
	}, midi.UseSysEx(), midi.UseActiveSense(), midi.UseTimeCode())
	if err != nil {
		_ = in.Close()
		drv.Close()
		return nil, fmt.Errorf("listen %q: %w", in.String(), err)
	}

	log.WriteLineString("midi: listening on " + in.String())
	return func() {
		stop()
		_ = in.Close()
		drv.Close()
	}, nil
}

func pickInput(drv *rtmididrv.Driver, portHint string) (drivers.In, error) {
	ins, err := drv.Ins()
	if err != nil {
		return nil, fmt.Errorf("list inputs: %w", err)
	}
	if len(ins) == 0 {
		return nil, fmt.Errorf("no MIDI inputs")
	}
	if portHint == "" {
		return ins[0], nil
	}
	for _, in := range ins {
		if strings.Contains(strings.ToLower(in.String()), strings.ToLower(portHint)) {
			return in, nil
		}
	}
	return nil, fmt.Errorf("no MIDI input matching %q", portHint)
}
