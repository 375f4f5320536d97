//go:build !tinygo

package hal

import "testing"

func feedLCD(t *testing.T, l *hostLCD, bytes ...byte) {
	t.Helper()
	for _, b := range bytes {
		if err := l.WriteByte(b); err != nil {
			t.Fatalf("WriteByte(%#02x): %v", b, err)
		}
	}
}

func TestHostLCDPositionedWrite(t *testing.T) {
	l := newHostLCD()
	feedLCD(t, l, 0xFE, 0x80, 'H', 'i')
	feedLCD(t, l, 0xFE, 0xC0|8, 'X')

	if got := l.Row(0); got[:2] != "Hi" {
		t.Errorf("row 0 = %q", got)
	}
	if got := l.Row(1); got[8] != 'X' {
		t.Errorf("row 1 = %q", got)
	}
}

func TestHostLCDClear(t *testing.T) {
	l := newHostLCD()
	feedLCD(t, l, 0xFE, 0x80, 'A', 'B', 'C')
	feedLCD(t, l, 0xFE, 0x01)

	if got := l.Row(0); got != "                " {
		t.Errorf("row 0 after clear = %q", got)
	}
}

func TestHostLCDCGRAMUpload(t *testing.T) {
	l := newHostLCD()
	// Define glyph 1, rows masked to 5 bits on store.
	feedLCD(t, l, 0xFE, 0x40|8)
	for row := byte(0); row < 8; row++ {
		feedLCD(t, l, 0x20|row)
	}

	_, custom, _ := l.Snapshot()
	for row := byte(0); row < 8; row++ {
		if custom[1][row] != row {
			t.Fatalf("glyph 1 row %d = %#02x, want %#02x", row, custom[1][row], row)
		}
	}
}

func TestHostLCDBrightness(t *testing.T) {
	l := newHostLCD()
	feedLCD(t, l, 0x7C, 0x80+17)

	_, _, brightness := l.Snapshot()
	if brightness != 17 {
		t.Errorf("brightness = %d, want 17", brightness)
	}

	// Baud switch commands are acknowledged but change nothing.
	feedLCD(t, l, 0x7C, 0x0B)
	if _, _, b := l.Snapshot(); b != 17 {
		t.Errorf("brightness after baud switch = %d, want 17", b)
	}
}

func TestHostLCDCursorWraps(t *testing.T) {
	l := newHostLCD()
	feedLCD(t, l, 0xFE, 0x80)
	for i := 0; i < lcdCells; i++ {
		feedLCD(t, l, byte('a'+i%26))
	}
	feedLCD(t, l, 'Z')

	if got := l.Row(0); got[0] != 'Z' {
		t.Errorf("row 0 after wrap = %q", got)
	}
}
