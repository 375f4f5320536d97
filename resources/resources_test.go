package resources

import "testing"

func TestLookupClamps(t *testing.T) {
	table := Table8{10, 20, 30}

	cases := []struct {
		i    int
		want uint8
	}{
		{-5, 10},
		{0, 10},
		{2, 30},
		{3, 30},
		{100, 30},
	}
	for _, c := range cases {
		if got := Lookup8(table, c.i); got != c.want {
			t.Errorf("Lookup8(%d) = %d, want %d", c.i, got, c.want)
		}
	}

	if got := Lookup8(nil, 0); got != 0 {
		t.Errorf("Lookup8(nil) = %d, want 0", got)
	}
	if got := Lookup16(nil, 7); got != 0 {
		t.Errorf("Lookup16(nil) = %d, want 0", got)
	}
}

func TestGlyphTableShape(t *testing.T) {
	if len(ChrSpecialCharacters) != NumSpecialCharacters*8 {
		t.Fatalf("glyph table has %d bytes, want %d", len(ChrSpecialCharacters), NumSpecialCharacters*8)
	}
	for i, b := range ChrSpecialCharacters {
		if b > 0x1F {
			t.Errorf("glyph byte %d = %#02x uses more than 5 pixel bits", i, b)
		}
	}
}

func TestOscillatorIncrementsAscend(t *testing.T) {
	if len(LutOscillatorIncrements) != 12 {
		t.Fatalf("increment table has %d entries, want 12", len(LutOscillatorIncrements))
	}
	for i := 1; i < len(LutOscillatorIncrements); i++ {
		if LutOscillatorIncrements[i] <= LutOscillatorIncrements[i-1] {
			t.Errorf("entry %d (%d) not above entry %d (%d)",
				i, LutOscillatorIncrements[i], i-1, LutOscillatorIncrements[i-1])
		}
	}
}

func TestScaleDeviationsWithinOneSemitone(t *testing.T) {
	if len(LutScaleJust) != 12 {
		t.Fatalf("scale table has %d entries, want 12", len(LutScaleJust))
	}
	for i, v := range LutScaleJust {
		if d := int16(v); d < -256 || d > 256 {
			t.Errorf("semitone %d deviates %d/256", i, d)
		}
	}
}

func TestWaveformTables(t *testing.T) {
	for _, w := range []Waveform{WaveformSine, WaveformTriangle, WaveformSaw} {
		if got := len(WaveformTable(w)); got != 64 {
			t.Errorf("waveform %d table has %d samples, want 64", w, got)
		}
	}
	// Unknown selectors fall back to sine rather than faulting.
	if len(WaveformTable(Waveform(250))) != 64 {
		t.Error("fallback table missing")
	}
}
