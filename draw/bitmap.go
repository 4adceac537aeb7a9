package draw

import (
	"image"
	"image/color"
)

// Bitmap draws a w x h 1-bit source image at p.
//
// The source uses the page layout of the frame buffer: byte i+(j/8)*w holds column i
// of rows j/8*8 to j/8*8+7, least significant bit on top. Only the pixels that are
// set in the source are drawn, with color c; the others leave dst untouched.
func Bitmap(dst Image, p image.Point, bitmap []byte, w, h int, c color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	cv := newCanvas(dst)
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			k := i + (j/8)*w
			if k >= len(bitmap) {
				break
			}
			if bitmap[k]&(1<<uint(j&7)) != 0 {
				cv.set(p.X+i, p.Y+j, c)
			}
		}
	}
	cv.touch(image.Rect(p.X, p.Y, p.X+w, p.Y+h))
}

// Glyph draws a 5x8 column encoded glyph at p, followed by one column of spacing.
//
// Every glyph pixel becomes a size x size block. Set bits are drawn with fg, clear
// bits and the spacing column with bg, so the glyph cell is fully repainted.
func Glyph(dst Image, p image.Point, glyph [5]byte, size int, fg, bg color.Color) {
	if size < 1 {
		size = 1
	}
	cv := newCanvas(dst)
	for i := 0; i < 6; i++ {
		var column byte
		if i < len(glyph) {
			column = glyph[i]
		}
		for j := 0; j < 8; j++ {
			c := bg
			if column&(1<<uint(j)) != 0 {
				c = fg
			}
			x, y := p.X+i*size, p.Y+j*size
			for dy := 0; dy < size; dy++ {
				for dx := 0; dx < size; dx++ {
					cv.set(x+dx, y+dy, c)
				}
			}
		}
	}
	cv.touch(image.Rect(p.X, p.Y, p.X+6*size, p.Y+8*size))
}
