package draw

import (
	"image"
	"image/color"
)

// Line draws a line between two points, both ends included.
func Line(dst Image, a, b image.Point, c color.Color) {
	cv := newCanvas(dst)
	line(cv.set, a.X, a.Y, b.X, b.Y, c)
	cv.touch(image.Rect(min(a.X, b.X), min(a.Y, b.Y), max(a.X, b.X)+1, max(a.Y, b.Y)+1))
}

// HorizontalLine draws a line between (x,y) and (x+w,y).
func HorizontalLine(dst Image, x, y, w int, c color.Color) {
	if w <= 0 {
		return
	}
	cv := newCanvas(dst)
	line(cv.set, x, y, x+w-1, y, c)
	cv.touch(image.Rect(x, y, x+w, y+1))
}

// VerticalLine draws a line between (x,y) and (x,y+h).
func VerticalLine(dst Image, x, y, h int, c color.Color) {
	if h <= 0 {
		return
	}
	cv := newCanvas(dst)
	vline(cv.set, x, y, h, c)
	cv.touch(image.Rect(x, y, x+1, y+h))
}

// Rectangle draws the outline of rect.
func Rectangle(dst Image, rect image.Rectangle, c color.Color) {
	rect = rect.Canon()
	if rect.Empty() {
		return
	}
	var (
		cv = newCanvas(dst)
		x0 = rect.Min.X
		y0 = rect.Min.Y
		x1 = rect.Max.X - 1
		y1 = rect.Max.Y - 1
	)
	line(cv.set, x0, y0, x1, y0, c)
	line(cv.set, x0, y1, x1, y1, c)
	vline(cv.set, x0, y0, rect.Dy(), c)
	vline(cv.set, x1, y0, rect.Dy(), c)
	cv.touch(rect)
}

// RoundedRectangle draws a rectangle with radius pixels rounded corners.
func RoundedRectangle(dst Image, rect image.Rectangle, radius int, c color.Color) {
	rect = rect.Canon()
	if rect.Empty() {
		return
	}
	var (
		cv = newCanvas(dst)
		r  = max(0, min(radius, rect.Dx()/2, rect.Dy()/2))
		x  = rect.Min.X
		y  = rect.Min.Y
		w  = rect.Dx()
		h  = rect.Dy()
	)
	line(cv.set, x+r, y, x+w-r-1, y, c)
	line(cv.set, x+r, y+h-1, x+w-r-1, y+h-1, c)
	vline(cv.set, x, y+r, h-2*r, c)
	vline(cv.set, x+w-1, y+r, h-2*r, c)
	roundedCorner(cv.set, x+0+r+0, y+0+r+0, r, 1, c)
	roundedCorner(cv.set, x+w-r-1, y+0+r+0, r, 2, c)
	roundedCorner(cv.set, x+w-r-1, y+h-r-1, r, 4, c)
	roundedCorner(cv.set, x+0+r+0, y+h-r-1, r, 8, c)
	cv.touch(rect)
}

// Box draws a filled rectangle.
func Box(dst Image, rect image.Rectangle, c color.Color) {
	rect = rect.Canon()
	if rect.Empty() {
		return
	}
	cv := newCanvas(dst)
	for x := rect.Min.X; x < rect.Max.X; x++ {
		vline(cv.set, x, rect.Min.Y, rect.Dy(), c)
	}
	cv.touch(rect)
}

// RoundedBox draws a filled rectangle with radius pixels rounded corners.
func RoundedBox(dst Image, rect image.Rectangle, radius int, c color.Color) {
	rect = rect.Canon()
	if rect.Empty() {
		return
	}
	var (
		cv = newCanvas(dst)
		r  = max(0, min(radius, rect.Dx()/2, rect.Dy()/2))
		x  = rect.Min.X
		y  = rect.Min.Y
		w  = rect.Dx()
		h  = rect.Dy()
	)
	for i := x + r; i < x+w-r; i++ {
		vline(cv.set, i, y, h, c)
	}
	filledRoundedCorner(cv.set, x+w-r-1, y+r, r, 1, h-2*r-1, c)
	filledRoundedCorner(cv.set, x+r, y+r, r, 2, h-2*r-1, c)
	cv.touch(rect)
}

// Circle draws the outline of a circle.
func Circle(dst Image, center image.Point, radius int, c color.Color) {
	if radius < 0 {
		return
	}
	var (
		cv   = newCanvas(dst)
		x0   = center.X
		y0   = center.Y
		f    = 1 - radius
		ddFx = 1
		ddFy = -2 * radius
		x    = 0
		y    = radius
	)
	cv.set(x0, y0+radius, c)
	cv.set(x0, y0-radius, c)
	cv.set(x0+radius, y0, c)
	cv.set(x0-radius, y0, c)
	for x < y {
		if f >= 0 {
			y--
			ddFy += 2
			f += ddFy
		}

		x++
		ddFx += 2
		f += ddFx

		cv.set(x0+x, y0+y, c)
		cv.set(x0-x, y0+y, c)
		cv.set(x0+x, y0-y, c)
		cv.set(x0-x, y0-y, c)
		cv.set(x0+y, y0+x, c)
		cv.set(x0-y, y0+x, c)
		cv.set(x0+y, y0-x, c)
		cv.set(x0-y, y0-x, c)
	}
	cv.touch(circleBounds(center, radius))
}

// FilledCircle draws a filled circle.
func FilledCircle(dst Image, center image.Point, radius int, c color.Color) {
	if radius < 0 {
		return
	}
	cv := newCanvas(dst)
	vline(cv.set, center.X, center.Y-radius, 2*radius+1, c)
	filledRoundedCorner(cv.set, center.X, center.Y, radius, 3, 0, c)
	cv.touch(circleBounds(center, radius))
}

func circleBounds(center image.Point, radius int) image.Rectangle {
	return image.Rect(center.X-radius, center.Y-radius, center.X+radius+1, center.Y+radius+1)
}

type setFunc func(x, y int, c color.Color)

func vline(set setFunc, x, y, h int, c color.Color) {
	for i := 0; i < h; i++ {
		set(x, y+i, c)
	}
}

// line is Bresenham's algorithm, with the axes swapped for steep lines so the
// loop always walks the major axis.
func line(set setFunc, x0, y0, x1, y1 int, c color.Color) {
	steep := abs(y1-y0) > abs(x1-x0)
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}

	var (
		dx    = x1 - x0
		dy    = abs(y1 - y0)
		e     = dx / 2
		ystep = 1
	)
	if y0 > y1 {
		ystep = -1
	}
	for ; x0 <= x1; x0++ {
		if steep {
			set(y0, x0, c)
		} else {
			set(x0, y0, c)
		}
		e -= dy
		if e < 0 {
			y0 += ystep
			e += dx
		}
	}
}

func roundedCorner(set setFunc, x0, y0, radius, quadrant int, c color.Color) {
	var (
		f    = 1 - radius
		ddFx = 1
		ddFy = -2 * radius
		x    = 0
		y    = radius
	)
	for x < y {
		if f >= 0 {
			y--
			ddFy += 2
			f += ddFy
		}

		x++
		ddFx += 2
		f += ddFx

		if quadrant&4 != 0 {
			set(x0+x, y0+y, c)
			set(x0+y, y0+x, c)
		}
		if quadrant&2 != 0 {
			set(x0+x, y0-y, c)
			set(x0+y, y0-x, c)
		}
		if quadrant&8 != 0 {
			set(x0-y, y0+x, c)
			set(x0-x, y0+y, c)
		}
		if quadrant&1 != 0 {
			set(x0-y, y0-x, c)
			set(x0-x, y0-y, c)
		}
	}
}

func filledRoundedCorner(set setFunc, x0, y0, radius, quadrant, delta int, c color.Color) {
	var (
		f    = 1 - radius
		ddFx = 1
		ddFy = -2 * radius
		x    = 0
		y    = radius
	)
	for x < y {
		if f >= 0 {
			y--
			ddFy += 2
			f += ddFy
		}

		x++
		ddFx += 2
		f += ddFx

		if quadrant&1 != 0 {
			vline(set, x0+x, y0-y, 2*y+1+delta, c)
			vline(set, x0+y, y0-x, 2*x+1+delta, c)
		}

		if quadrant&2 != 0 {
			vline(set, x0-x, y0-y, 2*y+1+delta, c)
			vline(set, x0-y, y0-x, 2*x+1+delta, c)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
