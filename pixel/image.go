package pixel

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/BeatGlow/pcd8544/draw"
)

// ErrFrameSize is returned when a raw frame does not match the buffer size.
var ErrFrameSize = errors.New("pixel: frame size mismatch")

type Image interface {
	draw.Image

	// Clear the image.
	Clear()

	// Fill the image with a single color.
	Fill(color.Color)
}

// Buffer holds the pixel values and is a container that is used by most image formats in this package.
type Buffer struct {
	// Rect is the image bounding box.
	Rect image.Rectangle

	// Pix are the image pixels.
	Pix []byte

	// Stride is the Pix stride (in bytes) between vertically adjacent pages.
	Stride int
}

func (p *Buffer) Bounds() image.Rectangle {
	return p.Rect
}

func (p *Buffer) Clear() {
	for i := range p.Pix {
		p.Pix[i] = 0x00
	}
}

func makeBuffer(w, h, stride, size int) Buffer {
	return Buffer{
		Rect:   image.Rect(0, 0, w, h),
		Pix:    make([]byte, size),
		Stride: stride,
	}
}

// PageImage is a 1-bit per pixel monochrome image.
//
// Rows are grouped in pages of 8. Byte x+page*Stride holds the pixels (x, page*8)
// up to (x, page*8+7), with bit 0 being the topmost row of the page.
type PageImage struct {
	Buffer
}

// NewPageImage returns a zeroed image. The height is rounded up to whole pages.
func NewPageImage(w, h int) *PageImage {
	pages := (h + 7) / 8
	return &PageImage{
		Buffer: makeBuffer(w, h, w, pages*w),
	}
}

func (p *PageImage) ColorModel() color.Model {
	return MonoModel
}

// Pages is the number of 8 row pages.
func (p *PageImage) Pages() int {
	if p.Stride == 0 {
		return 0
	}
	return len(p.Pix) / p.Stride
}

// Page returns the Stride bytes that make up page n, or nil if n is out of range.
func (p *PageImage) Page(n int) []byte {
	if n < 0 || n >= p.Pages() {
		return nil
	}
	off := n * p.Stride
	return p.Pix[off : off+p.Stride]
}

// BitAt reports whether the pixel at (x, y) is on. Out of range pixels are off.
func (p *PageImage) BitAt(x, y int) bool {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return false
	}
	return p.Pix[y/8*p.Stride+x]&(1<<uint(y&7)) != 0
}

// SetBit switches the pixel at (x, y). Out of range pixels are ignored.
func (p *PageImage) SetBit(x, y int, on bool) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}

	var (
		pos = y/8*p.Stride + x
		bit = byte(1) << uint(y&7)
	)
	if on {
		p.Pix[pos] |= bit
	} else {
		p.Pix[pos] &^= bit
	}
}

func (p *PageImage) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}
	return Mono{On: p.BitAt(x, y)}
}

func (p *PageImage) Set(x, y int, c color.Color) {
	p.SetBit(x, y, monoModel(c).(Mono).On)
}

func (p *PageImage) Fill(c color.Color) {
	var value byte
	if monoModel(c).(Mono).On {
		value = 0xff
	}
	for i := range p.Pix {
		p.Pix[i] = value
	}
}

// Load overwrites the buffer with a raw frame in the same page layout.
func (p *PageImage) Load(frame []byte) error {
	if len(frame) != len(p.Pix) {
		return fmt.Errorf("%w: expected %d bytes, got %d", ErrFrameSize, len(p.Pix), len(frame))
	}
	copy(p.Pix, frame)
	return nil
}

// LoadInverted overwrites the buffer with the bitwise complement of a raw frame.
//
// The current buffer contents do not matter, the result only depends on frame.
func (p *PageImage) LoadInverted(frame []byte) error {
	if len(frame) != len(p.Pix) {
		return fmt.Errorf("%w: expected %d bytes, got %d", ErrFrameSize, len(p.Pix), len(frame))
	}
	for i, b := range frame {
		p.Pix[i] = ^b
	}
	return nil
}

// Interface checks.
var (
	_ Image = (*PageImage)(nil)
)
