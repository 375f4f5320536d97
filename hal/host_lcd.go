//go:build !tinygo

package hal

import "sync"

// LCD panel geometry, mirrored from the display driver's grid.
const (
	lcdWidth  = 16
	lcdHeight = 2
	lcdCells  = lcdWidth * lcdHeight
)

const lcdNumCustomChars = 8

// hostLCD emulates a SerLCD-class serial panel: it decodes the wire
// command set (0xFE positioning/clear/CGRAM, 0x7C backlight and baud) and
// maintains the character matrix a real panel would show. The window
// renderer and tests read it through Snapshot.
type hostLCD struct {
	mu sync.Mutex

	cells  [lcdCells]byte
	custom [lcdNumCustomChars][8]byte

	cursor     int
	cgramAddr  int
	inCGRAM    bool
	brightness uint8

	// Pending prefix byte (0xFE or 0x7C), 0 when idle.
	prefix byte
}

func newHostLCD() *hostLCD {
	l := &hostLCD{brightness: 29}
	l.clear()
	return l
}

func (l *hostLCD) clear() {
	for i := range l.cells {
		l.cells[i] = ' '
	}
	l.cursor = 0
	l.inCGRAM = false
}

// WriteByte consumes one wire byte.
func (l *hostLCD) WriteByte(b byte) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	switch l.prefix {
	case 0xFE:
		l.prefix = 0
		l.command(b)
		return nil
	case 0x7C:
		l.prefix = 0
		// 0x80..0x9D set the backlight level; lower values are baud-rate
		// switches, which the emulation acknowledges and ignores.
		if b >= 0x80 {
			l.brightness = b - 0x80
		}
		return nil
	}

	switch b {
	case 0xFE, 0x7C:
		l.prefix = b
	default:
		l.data(b)
	}
	return nil
}

func (l *hostLCD) command(b byte) {
	switch {
	case b == 0x01:
		l.clear()
	case b >= 0x80:
		// Set DDRAM address: row base 0x00/0x40 plus column.
		addr := int(b & 0x7F)
		row := 0
		if addr >= 0x40 {
			row = 1
			addr -= 0x40
		}
		if addr < lcdWidth && row < lcdHeight {
			l.cursor = row*lcdWidth + addr
		}
		l.inCGRAM = false
	case b >= 0x40:
		// Set CGRAM address: glyph definitions follow as data bytes.
		l.cgramAddr = int(b - 0x40)
		l.inCGRAM = true
	}
}

func (l *hostLCD) data(b byte) {
	if l.inCGRAM {
		if l.cgramAddr < lcdNumCustomChars*8 {
			// Glyph rows arrive with bit 5 forced; only the low 5 bits
			// carry pixels.
			l.custom[l.cgramAddr/8][l.cgramAddr%8] = b & 0x1F
			l.cgramAddr++
		}
		return
	}
	if l.cursor < lcdCells {
		l.cells[l.cursor] = b
	}
	l.cursor++
	if l.cursor >= lcdCells {
		l.cursor = 0
	}
}

// Snapshot copies the panel state for rendering.
func (l *hostLCD) Snapshot() (cells [lcdCells]byte, custom [lcdNumCustomChars][8]byte, brightness uint8) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cells, l.custom, l.brightness
}

// Row returns one displayed row as a string, with custom glyph codes
// rendered as-is.
func (l *hostLCD) Row(row int) string {
	l.mu.Lock()
	defer l.mu.Unlock()
	if row < 0 || row >= lcdHeight {
		return ""
	}
	return string(l.cells[row*lcdWidth : (row+1)*lcdWidth])
}
