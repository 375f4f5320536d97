package resources

// Custom glyph bitmaps uploaded to the LCD character generator, 8 bytes
// per glyph, one row per byte (5 significant bits). Codes 0..7 address
// them once uploaded.
const (
	CharNote uint8 = iota
	CharEnvelope
	CharLFO
	CharMidiActivity
	CharClock
	CharPlay
	CharArrowUp
	CharArrowDown
)

// ChrSpecialCharacters is the glyph bitmap table, indexed by glyph*8+row.
var ChrSpecialCharacters = Table8{
	// CharNote: eighth note.
	0x02, 0x03, 0x02, 0x02, 0x0E, 0x1E, 0x0C, 0x00,
	// CharEnvelope: attack/decay ramp.
	0x00, 0x04, 0x0A, 0x0A, 0x11, 0x11, 0x1F, 0x00,
	// CharLFO: one sine period.
	0x00, 0x00, 0x08, 0x14, 0x02, 0x01, 0x00, 0x00,
	// CharMidiActivity: DIN plug.
	0x0E, 0x1F, 0x15, 0x1B, 0x1F, 0x0E, 0x00, 0x00,
	// CharClock: clock face.
	0x0E, 0x15, 0x15, 0x17, 0x11, 0x0E, 0x00, 0x00,
	// CharPlay: triangle.
	0x08, 0x0C, 0x0E, 0x0F, 0x0E, 0x0C, 0x08, 0x00,
	// CharArrowUp.
	0x04, 0x0E, 0x1F, 0x04, 0x04, 0x04, 0x00, 0x00,
	// CharArrowDown.
	0x04, 0x04, 0x04, 0x1F, 0x0E, 0x04, 0x00, 0x00,
}

// NumSpecialCharacters is the glyph count in ChrSpecialCharacters.
const NumSpecialCharacters = 8

// LutOscillatorIncrements holds 16-bit phase increments for the top
// octave (C8..B8) at the 31250 Hz tick rate. Lower octaves halve the
// increment per octave.
var LutOscillatorIncrements = Table16{
	8779, 9301, 9854, 10440, 11060, 11718,
	12415, 13153, 13935, 14764, 15642, 16572,
}

// LutScaleJust holds per-semitone deviations from equal temperament for a
// just intonation scale, in 1/256 semitone units (two's complement).
var LutScaleJust = Table16{
	0, 65508, 4, 16, 65522, 65534,
	65486, 2, 14, 65520, 18, 65524,
}

// Band-limited single-cycle waveforms, 64 samples, unsigned 8-bit.
var WavSine = Table8{
	128, 140, 152, 165, 176, 188, 198, 208,
	218, 226, 234, 240, 245, 250, 253, 254,
	255, 254, 253, 250, 245, 240, 234, 226,
	218, 208, 198, 188, 176, 165, 152, 140,
	128, 115, 103, 90, 79, 67, 57, 47,
	37, 29, 21, 15, 10, 5, 2, 1,
	0, 1, 2, 5, 10, 15, 21, 29,
	37, 47, 57, 67, 79, 90, 103, 115,
}

var WavTriangle = Table8{
	128, 120, 112, 104, 96, 88, 80, 72,
	64, 56, 48, 40, 32, 24, 16, 8,
	0, 8, 16, 24, 32, 40, 48, 56,
	64, 72, 80, 88, 96, 104, 112, 120,
	128, 135, 143, 151, 159, 167, 175, 183,
	191, 199, 207, 215, 223, 231, 239, 247,
	255, 247, 239, 231, 223, 215, 207, 199,
	191, 183, 175, 167, 159, 151, 143, 135,
}

var WavSaw = Table8{
	0, 4, 8, 12, 16, 20, 24, 28,
	32, 36, 40, 45, 49, 53, 57, 61,
	65, 69, 73, 77, 81, 85, 89, 93,
	97, 101, 105, 109, 113, 117, 121, 125,
	130, 134, 138, 142, 146, 150, 154, 158,
	162, 166, 170, 174, 178, 182, 186, 190,
	194, 198, 202, 206, 210, 215, 219, 223,
	227, 231, 235, 239, 243, 247, 251, 255,
}
