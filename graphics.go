package pcd8544

import (
	"image"
	"image/color"

	"github.com/BeatGlow/pcd8544/draw"
	"github.com/BeatGlow/pcd8544/font"
	"github.com/BeatGlow/pcd8544/pixel"
	"github.com/BeatGlow/pcd8544/text"
)

// Line draws a line from (x0, y0) to (x1, y1), both ends included.
func (d *Dev) Line(x0, y0, x1, y1 int, c color.Color) {
	draw.Line(d, image.Pt(x0, y0), image.Pt(x1, y1), c)
}

// Rect draws the outline of the w x h rectangle at (x, y).
func (d *Dev) Rect(x, y, w, h int, c color.Color) {
	draw.Rectangle(d, image.Rect(x, y, x+w, y+h), c)
}

// FillRect fills the w x h rectangle at (x, y).
func (d *Dev) FillRect(x, y, w, h int, c color.Color) {
	draw.Box(d, image.Rect(x, y, x+w, y+h), c)
}

// Circle draws the outline of a circle.
func (d *Dev) Circle(x, y, r int, c color.Color) {
	draw.Circle(d, image.Pt(x, y), r, c)
}

// FillCircle draws a filled circle.
func (d *Dev) FillCircle(x, y, r int, c color.Color) {
	draw.FilledCircle(d, image.Pt(x, y), r, c)
}

// Bitmap draws a w x h page layout bitmap at (x, y); see draw.Bitmap.
func (d *Dev) Bitmap(x, y int, bitmap []byte, w, h int, c color.Color) {
	draw.Bitmap(d, image.Pt(x, y), bitmap, w, h, c)
}

// Text returns the text cursor of the display.
func (d *Dev) Text() *text.Cursor {
	return d.cursor
}

// DrawString writes s with the text cursor, starting at (x, y).
func (d *Dev) DrawString(x, y int, s string) {
	d.cursor.MoveTo(x, y)
	_, _ = d.cursor.WriteString(s)
}

// DrawChar draws character c at (x, y) using the size and color of the text cursor.
// The cursor does not move.
func (d *Dev) DrawChar(x, y int, c byte) {
	fg := d.cursor.Color
	draw.Glyph(d, image.Pt(x, y), font.Glyph(c), max(d.cursor.Size, 1), fg, pixel.Mono{On: !fg.On})
}
