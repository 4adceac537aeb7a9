package pixel

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// FromImage scales src to a w x h page image.
//
// Pixels are resampled bilinearly and thresholded through MonoModel, dark pixels
// turn into On segments.
func FromImage(src image.Image, w, h int) *PageImage {
	dst := NewPageImage(w, h)
	if src == nil || src.Bounds().Empty() {
		return dst
	}
	if src.Bounds().Size() == dst.Rect.Size() {
		xdraw.Copy(dst, image.Point{}, src, src.Bounds(), xdraw.Src, nil)
	} else {
		xdraw.ApproxBiLinear.Scale(dst, dst.Rect, src, src.Bounds(), xdraw.Src, nil)
	}
	return dst
}
