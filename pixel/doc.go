// Package pixel implements the frame buffer used by PCD8544 style LCD controllers.
//
// The [PageImage] stores 1-bit pixels in horizontal pages of 8 rows, which is the
// layout of the controller display RAM, so pages can be streamed to the panel as-is.
// A [Region] tracks which part of the buffer changed since the last transfer.
//
// All types are compatible with Go's native [color.Color] and [image.Image] /
// [draw.Image] interfaces.
package pixel
