// Package display drives a SerLCD-class 2x16 character display over a
// bandwidth-limited serial wire, with double buffering. All writes go to an
// in-memory "local" text page; a "remote" page mirrors what the panel is
// known to show. Update, called once per hardware tick, examines a single
// cell, transmits it if the pages disagree, and advances a scan cursor, so
// a full redraw costs at most one grid of ticks while each tick stays
// within a 3-byte transport budget.
package display

import "vega/resources"

// Grid geometry. The positioning command encoding assumes width is a power
// of two no larger than 64.
const (
	Width  = 16
	Height = 2

	bufferSize = Width * Height
	bufferWrap = bufferSize - 1
)

// NoCursor hides the cursor overlay.
const NoCursor = 0xFF

// cursorGlyph is the block character used for the blinking cursor.
const cursorGlyph = 0xFF

// blinkMask divides the tick clock down to the cursor blink half-period.
const blinkMask = 0x7F

// Transport is the byte channel to the physical display.
//
// Tick-path callers must check FreeCapacity before Write; only boot-time
// bursts may exceed it. Pump shifts queued bytes onto the wire and is
// called once per tick, before Update.
type Transport interface {
	Init()
	FreeCapacity() int
	Write(b byte)
	Pump()
}

// Driver owns the local and remote text pages and the scan state.
type Driver struct {
	out Transport

	local  [bufferSize]byte
	remote [bufferSize]byte

	scanPosition          uint8
	scanPositionLastWrite uint8
	cursorPosition        uint8
	blink                 bool
	blinkClock            uint8
	status                uint8
}

// NewDriver creates a driver transmitting through out.
func NewDriver(out Transport) *Driver {
	return &Driver{out: out}
}

// Init resets both pages and the overlay state and initializes the
// transport. The remote page is filled with a sentinel that no sanitized
// local content can equal, so the first scan pass retransmits every cell.
func (d *Driver) Init() {
	for i := range d.local {
		d.local[i] = ' '
		d.remote[i] = 0x00
	}
	d.scanPosition = 0
	d.scanPositionLastWrite = 0xFF
	d.cursorPosition = NoCursor
	d.blink = false
	d.blinkClock = 0
	d.status = 0
	d.out.Init()
}

// Print overwrites row content from text, starting at the left edge. Bytes
// the panel would interpret as commands (0x7C, 0xFE and the 8..31 control
// range) are replaced with blanks. Text longer than a row is truncated.
func (d *Driver) Print(row uint8, text string) {
	if row >= Height {
		return
	}
	pos := int(row) * Width
	for i := 0; i < len(text) && i < Width; i++ {
		c := text[i]
		if c == 0x7C || c == 0xFE || (c >= 8 && c < 32) {
			c = ' '
		}
		d.local[pos+i] = c
	}
}

// Row returns the local page content of one row.
func (d *Driver) Row(row uint8) string {
	if row >= Height {
		return ""
	}
	pos := int(row) * Width
	return string(d.local[pos : pos+Width])
}

// SetBrightness sets the backlight level (0 to 29). The command pair is
// sent directly, bypassing the page diff.
func (d *Driver) SetBrightness(level uint8) {
	d.writeCommand(0x7C, 0x80+level)
}

// SetCustomCharMap uploads glyph bitmaps (8 bytes each) from a resource
// table into the panel's character generator RAM. This bursts direct
// writes and must not be called from the tick path.
func (d *Driver) SetCustomCharMap(table resources.Table8, numCharacters uint8) {
	d.writeCommand(0xFE, 0x01)
	for i := uint8(0); i < numCharacters; i++ {
		d.writeCommand(0xFE, 0x40+i*8)
		for j := uint8(0); j < 8; j++ {
			// Bit 5 is unused by the glyph data; setting it keeps the
			// definition bytes clear of the panel's command space.
			d.writeCommand(0, 0x20|resources.Lookup8(table, int(i)*8+int(j)))
		}
		d.writeCommand(0xFE, 0x01)
	}
}

// SetCursorPosition places the blinking cursor overlay. Use NoCursor (or
// any off-grid value) to hide it.
func (d *Driver) SetCursorPosition(pos uint8) {
	d.cursorPosition = pos
}

// SetStatus arms the one-shot status glyph (custom character code). It
// restarts the blink clock and points the scan at the cell the glyph can
// occupy, so the indicator shows up without waiting for a scan wrap.
func (d *Driver) SetStatus(code uint8) {
	d.blinkClock = 0
	d.status = code + 1
	if d.local[0] == ' ' {
		d.scanPosition = 0
	} else {
		d.scanPosition = Width - 1
	}
}

// Update performs one tick of reconciliation: at most one cell examined,
// at most 3 bytes emitted.
func (d *Driver) Update() {
	// Worst case below is 3 bytes. If the transport cannot take them all,
	// do nothing; the scan resumes next tick.
	if d.out.FreeCapacity() < 3 {
		return
	}

	d.blinkClock = (d.blinkClock + 1) & blinkMask
	if d.blinkClock == 0 {
		d.blink = !d.blink
		d.status = 0
	}

	// Resolve what the current cell should show: cursor overlay first,
	// then the status indicator (left or right edge of the first row,
	// only over a blank), then the page content.
	var character byte
	if d.scanPosition == d.cursorPosition && d.blink {
		character = cursorGlyph
	} else if d.status != 0 &&
		(d.scanPosition == 0 || d.scanPosition == Width-1) &&
		d.local[d.scanPosition] == ' ' {
		character = d.status - 1
	} else {
		character = d.local[d.scanPosition]
	}

	// The cursor cell is always retransmitted so that blinking keeps
	// toggling even when the page content is stable.
	if character != d.remote[d.scanPosition] || d.scanPosition == d.cursorPosition {
		if d.scanPosition == d.scanPositionLastWrite+1 && d.scanPosition&(Width-1) != 0 {
			// Same row, next column: the panel cursor auto-advances, the
			// character byte alone is enough.
			d.out.Write(character)
		} else {
			d.out.Write(0xFE)
			d.out.Write(positionCommand(d.scanPosition))
			d.out.Write(character)
		}
		// Safe to assume delivery: the 3-byte room check above gates this
		// whole block.
		d.remote[d.scanPosition] = character
		d.scanPositionLastWrite = d.scanPosition
	}
	d.scanPosition = (d.scanPosition + 1) & bufferWrap
}

// writeCommand enqueues a command/argument pair (command 0 sends the
// argument alone). Direct writes assume buffer room; see SetCustomCharMap.
func (d *Driver) writeCommand(command, argument byte) {
	if command != 0 {
		d.out.Write(command)
	}
	d.out.Write(argument)
}

// positionCommand encodes a flattened grid position into the panel's
// set-cursor command argument (row base address 0x00/0x40 plus column).
func positionCommand(pos uint8) byte {
	cmd := byte(0x80)
	cmd |= (pos &^ (Width - 1)) << log2(64/Width)
	cmd |= pos & (Width - 1)
	return cmd
}

func log2(v int) uint {
	var n uint
	for v > 1 {
		v >>= 1
		n++
	}
	return n
}
