// Package resources holds the firmware's immutable lookup tables: custom
// LCD glyph bitmaps, oscillator phase increments, tuning offsets and
// band-limited waveform samples. On the hardware build these tables live
// in flash; callers treat them as an opaque indexed store and never
// mutate them.
package resources

// Table8 is a handle to a byte table.
type Table8 []uint8

// Table16 is a handle to a 16-bit word table.
type Table16 []uint16

// Lookup8 returns table[i], clamping out-of-range indices to the table
// edges. Reads never fail: a bad index yields a boundary value, matching
// how flash reads behave on the device.
func Lookup8(table Table8, i int) uint8 {
	if len(table) == 0 {
		return 0
	}
	if i < 0 {
		i = 0
	} else if i >= len(table) {
		i = len(table) - 1
	}
	return table[i]
}

// Lookup16 returns table[i] with the same clamping as Lookup8.
func Lookup16(table Table16, i int) uint16 {
	if len(table) == 0 {
		return 0
	}
	if i < 0 {
		i = 0
	} else if i >= len(table) {
		i = len(table) - 1
	}
	return table[i]
}

// Waveform identifies one of the sample tables.
type Waveform uint8

const (
	WaveformSine Waveform = iota
	WaveformTriangle
	WaveformSaw
)

// WaveformTable returns the sample table for w.
func WaveformTable(w Waveform) Table8 {
	switch w {
	case WaveformTriangle:
		return WavTriangle
	case WaveformSaw:
		return WavSaw
	default:
		return WavSine
	}
}
