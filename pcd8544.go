// Package pcd8544 drives the Philips PCD8544 controller found in 84x48 monochrome LCD
// modules such as the Nokia 5110 display.
//
// The driver keeps a frame buffer in memory and tracks the region modified since the
// last transfer, so that Update only sends the pages and columns that changed.
package pcd8544

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log"
	"os"

	"periph.io/x/conn/v3/display"

	"github.com/BeatGlow/pcd8544/draw"
	"github.com/BeatGlow/pcd8544/pixel"
	"github.com/BeatGlow/pcd8544/text"
)

var debug bool

func init() {
	debug = os.Getenv("DISPLAY_DEBUG") != ""
}

// Panel size.
const (
	Width  = 84
	Height = 48
)

// Errors
var (
	ErrGeometry = errors.New("pcd8544: unsupported panel geometry")
)

// Opts is the display configuration.
type Opts struct {
	// W and H are the panel size in pixels; H must be a multiple of 8.
	W, H int

	// Contrast is the operating voltage (Vop) setting, 1-127. Zero selects the
	// contrast of DefaultOpts, a panel at Vop 0 shows nothing.
	Contrast uint8

	// Bias is the bias system setting, 0-7. It is taken literally, unless the
	// contrast is also zero, in which case the bias of DefaultOpts is used.
	Bias uint8

	// TemperatureCoefficient selects one of the 4 temperature compensation curves.
	// Zero leaves the controller at its reset value and sends nothing.
	TemperatureCoefficient uint8
}

// DefaultOpts is the configuration of a Nokia 5110 module.
var DefaultOpts = Opts{
	W:        Width,
	H:        Height,
	Contrast: 0x28,
	Bias:     0x03,
}

// Dev is an open handle to the display controller.
//
// Dev is not safe for concurrent use.
type Dev struct {
	c      Conn
	opts   Opts
	rect   image.Rectangle
	buffer *pixel.PageImage
	dirty  *pixel.Region
	cursor *text.Cursor
	halted bool
}

// New returns a display on c, after resetting and initializing the controller.
//
// A failing transport during initialization is logged and does not fail New: the
// device is returned so that it can be retried with Init.
func New(c Conn, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = new(Opts)
		*opts = DefaultOpts
	}
	o := *opts
	if o.W == 0 {
		o.W = DefaultOpts.W
	}
	if o.H == 0 {
		o.H = DefaultOpts.H
	}
	if o.Contrast == 0 {
		o.Contrast = DefaultOpts.Contrast
		if o.Bias == 0 {
			o.Bias = DefaultOpts.Bias
		}
	}
	if o.W < 8 || o.W > Width || o.H < 8 || o.H > Height || o.H&7 != 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrGeometry, o.W, o.H)
	}

	d := &Dev{
		c:      c,
		opts:   o,
		rect:   image.Rect(0, 0, o.W, o.H),
		buffer: pixel.NewPageImage(o.W, o.H),
		dirty:  pixel.NewRegion(o.W, o.H),
	}
	d.cursor = text.New(d)

	if err := d.init(); err != nil {
		log.Printf("pcd8544: init on %s failed: %v", c, err)
	}
	return d, nil
}

func (d *Dev) init() error {
	if err := d.c.Reset(); err != nil {
		return err
	}
	if err := d.Init(d.opts.Contrast, d.opts.Bias); err != nil {
		return err
	}
	if tc := d.opts.TemperatureCoefficient; tc != 0 {
		return d.SetTemperatureCoefficient(tc)
	}
	return nil
}

func (d *Dev) String() string {
	return fmt.Sprintf("PCD8544 LCD %dx%d", d.rect.Dx(), d.rect.Dy())
}

// Close powers down the display and closes the connection.
func (d *Dev) Close() error {
	if !d.halted {
		if err := d.Halt(); err != nil {
			_ = d.c.Close()
			return err
		}
	}
	return d.c.Close()
}

// ColorModel implements display.Drawer.
func (d *Dev) ColorModel() color.Model {
	return pixel.MonoModel
}

// Bounds implements display.Drawer. Min is guaranteed to be {0, 0}.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// At returns the color of the pixel at (x, y) in the frame buffer.
func (d *Dev) At(x, y int) color.Color {
	return d.buffer.At(x, y)
}

// Set the pixel color at (x, y) in the frame buffer and mark it as modified.
func (d *Dev) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(d.rect) {
		return
	}
	d.buffer.Set(x, y, c)
	d.dirty.Merge(x, y, x+1, y)
}

// Plot sets the pixel color at (x, y) without marking it; see Touch.
func (d *Dev) Plot(x, y int, c color.Color) {
	d.buffer.Set(x, y, c)
}

// Touch marks r as modified.
func (d *Dev) Touch(r image.Rectangle) {
	d.dirty.MergeRect(r.Intersect(d.rect))
}

// Dirty returns the region modified since the last transfer.
func (d *Dev) Dirty() image.Rectangle {
	return d.dirty.Rect()
}

// Buffer returns the frame buffer. Changes made to it directly are not tracked.
func (d *Dev) Buffer() *pixel.PageImage {
	return d.buffer
}

// Draw implements display.Drawer.
//
// It copies src into the frame buffer and updates the modified region, so once this
// function returns the display shows the result.
func (d *Dev) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	clip := r.Intersect(d.rect)
	if clip.Empty() {
		return nil
	}
	draw.Draw(d.buffer, clip, src, sp.Add(clip.Min.Sub(r.Min)), draw.Src)
	d.dirty.MergeRect(clip)
	return d.Update()
}

// Interface checks.
var (
	_ display.Drawer = (*Dev)(nil)
	_ draw.Tracker   = (*Dev)(nil)
)
