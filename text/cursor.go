// Package text writes fixed width text onto a monochrome image.
package text

import (
	"image"

	"github.com/BeatGlow/pcd8544/draw"
	"github.com/BeatGlow/pcd8544/font"
	"github.com/BeatGlow/pcd8544/pixel"
)

// Cursor is a text insertion point on an image.
//
// Every glyph is drawn at (X, Y) and moves the cursor font.Advance*Size columns to the
// right. A line that reaches the right edge continues one glyph row down at X = 0, and
// the cursor returns to the top once it moves past the bottom edge.
type Cursor struct {
	X, Y int

	// Size is the glyph scale factor, at least 1.
	Size int

	// Color is the foreground; the glyph background uses the opposite color.
	Color pixel.Mono

	dst draw.Image
}

// New returns a cursor at the origin of dst.
func New(dst draw.Image) *Cursor {
	return &Cursor{
		Size:  1,
		Color: pixel.On,
		dst:   dst,
	}
}

// MoveTo moves the cursor to (x, y).
func (c *Cursor) MoveTo(x, y int) {
	c.X, c.Y = x, y
}

// SetSize sets the glyph scale factor. Values below 1 select 1.
func (c *Cursor) SetSize(size int) {
	c.Size = max(size, 1)
}

// SetColor sets the foreground color.
func (c *Cursor) SetColor(color pixel.Mono) {
	c.Color = color
}

// WriteByte draws a single character.
//
// A '\n' moves to the start of the next glyph row and '\r' is ignored.
func (c *Cursor) WriteByte(b byte) error {
	var (
		size   = max(c.Size, 1)
		bounds = c.dst.Bounds()
	)
	switch b {
	case '\n':
		c.X = 0
		c.Y += font.Height * size
	case '\r':
	default:
		draw.Glyph(c.dst, bounds.Min.Add(image.Pt(c.X, c.Y)), font.Glyph(b), size, c.Color, pixel.Mono{On: !c.Color.On})
		c.X += font.Advance * size
		if c.X >= bounds.Dx()-font.Width {
			c.X = 0
			c.Y += font.Height
		}
	}
	if c.Y >= bounds.Dy() {
		c.Y = 0
	}
	return nil
}

// Write draws all bytes of p. It never fails.
func (c *Cursor) Write(p []byte) (int, error) {
	for _, b := range p {
		_ = c.WriteByte(b)
	}
	return len(p), nil
}

// WriteString is like Write, without the conversion.
func (c *Cursor) WriteString(s string) (int, error) {
	for i := 0; i < len(s); i++ {
		_ = c.WriteByte(s[i])
	}
	return len(s), nil
}
