// Package draw implements the drawing primitives for monochrome frame buffers.
//
// All primitives accept any [Image]. When the destination is also a [Tracker],
// pixels are plotted without per-pixel bookkeeping and the bounding box of the
// shape is reported once.
package draw

import (
	"image"
	"image/color"
	"image/draw"
)

// Drawer is an alias for [image/draw.Drawer].
type Drawer = draw.Drawer

// Image is an alias for [image/draw.Image].
type Image = draw.Image

// Op is an alias for image/draw.Op
type Op = draw.Op

const (
	// Over specifies ``(src in mask) over dst''.
	Over Op = iota

	// Src specifies ``src in mask''.
	Src
)

// Tracker is an Image that keeps track of the regions modified on it.
type Tracker interface {
	Image

	// Plot sets the pixel at (x, y) without recording the modification.
	Plot(x, y int, c color.Color)

	// Touch records r as modified.
	Touch(r image.Rectangle)
}

// Draw calls [DrawMask] with a nil mask.
func Draw(dst Image, r image.Rectangle, src image.Image, sp image.Point, op Op) {
	DrawMask(dst, r, src, sp, nil, image.Point{}, op)
}

// DrawMask aligns r.Min in dst with sp in src and mp in mask and then replaces the rectangle r
// in dst with the result of a Porter-Duff composition. A nil mask is treated as opaque.
func DrawMask(dst Image, r image.Rectangle, src image.Image, sp image.Point, mask image.Image, mp image.Point, op Op) {
	draw.DrawMask(dst, r, src, sp, mask, mp, op)
}

// canvas plots on dst, bypassing modification tracking where possible.
type canvas struct {
	set     func(x, y int, c color.Color)
	tracker Tracker
}

func newCanvas(dst Image) canvas {
	if t, ok := dst.(Tracker); ok {
		return canvas{set: t.Plot, tracker: t}
	}
	return canvas{set: dst.Set}
}

// touch reports r to the tracker, if any.
func (c canvas) touch(r image.Rectangle) {
	if c.tracker != nil {
		c.tracker.Touch(r)
	}
}
