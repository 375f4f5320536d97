//go:build !tinygo

package hal

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// fbDisplayer exposes the host framebuffer as a drivers.Displayer so
// tinyfont can draw the panel's text glyphs into it.
type fbDisplayer struct {
	fb *hostFramebuffer
}

func (d *fbDisplayer) Size() (x, y int16) {
	return int16(d.fb.width), int16(d.fb.height)
}

func (d *fbDisplayer) SetPixel(x, y int16, c color.RGBA) {
	ix, iy := int(x), int(y)
	if ix < 0 || ix >= d.fb.width || iy < 0 || iy >= d.fb.height {
		return
	}
	pixel := rgb565(c.R, c.G, c.B)
	off := iy*d.fb.stride + ix*2
	d.fb.buf[off] = byte(pixel)
	d.fb.buf[off+1] = byte(pixel >> 8)
}

func (d *fbDisplayer) Display() error { return nil }

func (d *fbDisplayer) SetRotation(rotation drivers.Rotation) error {
	_ = rotation
	return nil
}

// renderLCD paints the emulated panel into the framebuffer: a backlit
// rectangle with one glyph per cell. ASCII cells go through tinyfont;
// custom glyph codes 0..7 are drawn from the uploaded CGRAM bitmaps and
// 0xFF is the full cursor block.
func renderLCD(fb *hostFramebuffer, lcd *hostLCD) {
	cells, custom, brightness := lcd.Snapshot()

	fb.mu.Lock()
	defer fb.mu.Unlock()

	// Backlight level scales the classic green-on-dark palette.
	level := int(brightness)
	if level > 29 {
		level = 29
	}
	bgG := uint8(40 + level*4)
	bg := color.RGBA{R: 10, G: bgG, B: 20, A: 0xFF}
	fg := color.RGBA{R: 225, G: 255, B: 235, A: 0xFF}

	fillLocked(fb, bg)

	d := &fbDisplayer{fb: fb}
	for row := 0; row < lcdHeight; row++ {
		for col := 0; col < lcdWidth; col++ {
			c := cells[row*lcdWidth+col]
			x0 := lcdMarginPx + col*lcdCellPxW
			y0 := lcdMarginPx + row*lcdCellPxH
			switch {
			case c == 0xFF:
				fillRectLocked(fb, x0+1, y0+2, lcdCellPxW-2, lcdCellPxH-4, fg)
			case c < lcdNumCustomChars:
				drawGlyphLocked(fb, x0, y0, custom[c], fg)
			case c > ' ' && c < 0x7F:
				tinyfont.WriteLine(d, &proggy.TinySZ8pt7b, int16(x0+2), int16(y0+lcdCellPxH-6), string(rune(c)), fg)
			}
		}
	}
}

func fillLocked(fb *hostFramebuffer, c color.RGBA) {
	pixel := rgb565(c.R, c.G, c.B)
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for i := 0; i+1 < len(fb.buf); i += 2 {
		fb.buf[i] = lo
		fb.buf[i+1] = hi
	}
}

func fillRectLocked(fb *hostFramebuffer, x, y, w, h int, c color.RGBA) {
	pixel := rgb565(c.R, c.G, c.B)
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for py := y; py < y+h && py < fb.height; py++ {
		for px := x; px < x+w && px < fb.width; px++ {
			off := py*fb.stride + px*2
			fb.buf[off] = lo
			fb.buf[off+1] = hi
		}
	}
}

// drawGlyphLocked scales a 5x8 CGRAM bitmap to the cell size.
func drawGlyphLocked(fb *hostFramebuffer, x0, y0 int, glyph [8]byte, c color.RGBA) {
	for gy := 0; gy < 8; gy++ {
		rowBits := glyph[gy]
		for gx := 0; gx < 5; gx++ {
			if rowBits&(1<<(4-gx)) == 0 {
				continue
			}
			fillRectLocked(fb, x0+1+gx*2, y0+2+gy*2, 2, 2, c)
		}
	}
}
