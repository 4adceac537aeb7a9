package pixel

import (
	"fmt"
	"image"
)

// Region is the bounding box of all modifications made to a frame buffer since
// the last Reset.
//
// Columns are tracked half open, [XMin, XMax), so XMax-XMin is the number of bytes
// per page that need transferring. Rows are tracked inclusive, [YMin, YMax].
//
// The empty region is inverted (XMin > XMax), so merging any rectangle into it
// yields that rectangle without special casing the first merge.
type Region struct {
	XMin, YMin int
	XMax, YMax int

	w, h int
}

// NewRegion returns an empty region for a w x h buffer.
func NewRegion(w, h int) *Region {
	r := &Region{w: w, h: h}
	r.Reset()
	return r
}

func (r *Region) String() string {
	if r.Empty() {
		return "empty"
	}
	return fmt.Sprintf("(%d,%d)-(%d,%d)", r.XMin, r.YMin, r.XMax, r.YMax)
}

// Reset the region to empty.
func (r *Region) Reset() {
	r.XMin, r.XMax = r.w-1, 0
	r.YMin, r.YMax = r.h-1, 0
}

// Empty reports whether nothing was merged since the last Reset.
func (r *Region) Empty() bool {
	return r.XMin > r.XMax
}

// Merge grows the region to include the given bounds.
//
// Coordinates are clamped to the buffer (columns to [0, w], rows to [0, h-1]) before
// merging, so shapes extending past the panel edges never corrupt the region. Bounds
// that do not touch the buffer at all leave the region unchanged.
func (r *Region) Merge(xmin, ymin, xmax, ymax int) {
	if xmax <= 0 || xmin >= r.w || ymax < 0 || ymin >= r.h {
		return
	}
	xmin, xmax = clamp(xmin, 0, r.w), clamp(xmax, 0, r.w)
	ymin, ymax = clamp(ymin, 0, r.h-1), clamp(ymax, 0, r.h-1)
	if xmin < r.XMin {
		r.XMin = xmin
	}
	if xmax > r.XMax {
		r.XMax = xmax
	}
	if ymin < r.YMin {
		r.YMin = ymin
	}
	if ymax > r.YMax {
		r.YMax = ymax
	}
}

// MergeRect grows the region to include rect. Empty rectangles are ignored.
func (r *Region) MergeRect(rect image.Rectangle) {
	if rect.Empty() {
		return
	}
	r.Merge(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Max.Y-1)
}

// MarkAll marks the whole buffer as modified.
func (r *Region) MarkAll() {
	r.Merge(0, 0, r.w, r.h-1)
}

// Rect returns the region as a half open rectangle, or the zero rectangle when empty.
func (r *Region) Rect() image.Rectangle {
	if r.Empty() {
		return image.Rectangle{}
	}
	return image.Rect(r.XMin, r.YMin, r.XMax, r.YMax+1)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
