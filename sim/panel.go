// Package sim emulates a PCD8544 controller in software.
//
// A Panel accepts the same command and data stream as the hardware, keeps the
// display RAM and the controller registers, and can render the visible image to a
// terminal using ANSI colors.
package sim

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"sync"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"

	"github.com/BeatGlow/pcd8544/pixel"
)

// Instruction decoding.
const (
	opSetXAddr       = 0x80 // also Vop in the extended set
	opSetYAddr       = 0x40
	opFunctionSet    = 0x20
	opSetBias        = 0x10 // extended
	opDisplayControl = 0x08
	opSetTemp        = 0x04 // extended

	flagPowerDown = 0x04
	flagVertical  = 0x02
	flagExtended  = 0x01
)

// Display configuration bits (D and E).
const (
	ModeBlank    = 0x0
	ModeAllOn    = 0x1
	ModeNormal   = 0x4
	ModeInverted = 0x5
)

// Colors used for rendering.
var (
	Background = color.NRGBA{R: 0xa8, G: 0xc6, B: 0x4e, A: 0xff}
	Foreground = color.NRGBA{R: 0x2b, G: 0x35, B: 0x1d, A: 0xff}
)

// Opts represents the options available for this panel.
type Opts struct {
	// W and H are the panel size; H must be a multiple of 8.
	W, H int

	// Palette used for rendering, ansi256.Default if nil.
	Palette *ansi256.Palette

	// Output for Render, standard output if nil.
	Output io.Writer
}

// State is a copy of the controller registers.
type State struct {
	// X and Page form the RAM address pointer.
	X, Page int

	PowerDown bool
	Vertical  bool
	Extended  bool

	// Mode holds the display configuration bits.
	Mode byte

	Vop  uint8
	Bias uint8
	Temp uint8
}

// Transfer is a single Command or Data call.
type Transfer struct {
	Command bool
	Bytes   []byte
}

func (t Transfer) String() string {
	if t.Command {
		return fmt.Sprintf("cmd % x", t.Bytes)
	}
	return fmt.Sprintf("data[%d]", len(t.Bytes))
}

// Panel is an emulated controller with its display RAM.
//
// Panel is safe for concurrent use.
type Panel struct {
	mu        sync.Mutex
	w, h      int
	ram       []byte
	state     State
	transfers []Transfer
	resets    int
	closed    bool
	err       error

	out      io.Writer
	palette  ansi256.Palette
	buf      bytes.Buffer
	rendered bool
}

// New returns a panel in its reset state.
func New(opts *Opts) *Panel {
	var o Opts
	if opts != nil {
		o = *opts
	}
	if o.W <= 0 {
		o.W = 84
	}
	if o.H <= 0 {
		o.H = 48
	}
	pal := o.Palette
	if pal == nil {
		pal = ansi256.Default
	}
	out := o.Output
	if out == nil {
		out = colorable.NewColorableStdout()
	}
	p := &Panel{
		w:       o.W,
		h:       o.H,
		ram:     make([]byte, o.W*((o.H+7)/8)),
		out:     out,
		palette: *pal,
	}
	p.reset()
	return p
}

func (p *Panel) String() string {
	return fmt.Sprintf("sim.Panel{%dx%d}", p.w, p.h)
}

// Close marks the panel as closed; subsequent transfers fail.
func (p *Panel) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	return nil
}

// Reset emulates a pulse on the reset line. The display RAM is retained.
func (p *Panel) Reset() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.check(); err != nil {
		return err
	}
	p.resets++
	p.reset()
	return nil
}

func (p *Panel) reset() {
	p.state = State{PowerDown: true}
}

// Command decodes and executes instruction bytes.
func (p *Panel) Command(cmds ...byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.check(); err != nil {
		return err
	}
	p.record(true, cmds)
	for _, b := range cmds {
		p.execute(b)
	}
	return nil
}

// Data writes bytes to the display RAM at the address pointer.
func (p *Panel) Data(data ...byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.check(); err != nil {
		return err
	}
	p.record(false, data)
	for _, b := range data {
		p.ram[p.state.Page*p.w+p.state.X] = b
		p.advance()
	}
	return nil
}

func (p *Panel) check() error {
	if p.closed {
		return io.ErrClosedPipe
	}
	return p.err
}

func (p *Panel) record(command bool, b []byte) {
	p.transfers = append(p.transfers, Transfer{Command: command, Bytes: append([]byte(nil), b...)})
}

func (p *Panel) execute(b byte) {
	s := &p.state
	switch {
	case b&opSetXAddr != 0:
		if s.Extended {
			s.Vop = b &^ opSetXAddr
		} else if x := int(b &^ opSetXAddr); x < p.w {
			s.X = x
		}
	case b&opSetYAddr != 0:
		if page := int(b & 0x07); !s.Extended && page < p.pages() {
			s.Page = page
		}
	case b&opFunctionSet != 0:
		s.PowerDown = b&flagPowerDown != 0
		s.Vertical = b&flagVertical != 0
		s.Extended = b&flagExtended != 0
	case b&opSetBias != 0:
		if s.Extended {
			s.Bias = b & 0x07
		}
	case b&opDisplayControl != 0:
		if !s.Extended {
			s.Mode = b & ModeInverted
		}
	case b&opSetTemp != 0:
		if s.Extended {
			s.Temp = b & 0x03
		}
	}
}

func (p *Panel) pages() int {
	return len(p.ram) / p.w
}

// advance moves the address pointer after a data byte.
func (p *Panel) advance() {
	s := &p.state
	if s.Vertical {
		if s.Page++; s.Page >= p.pages() {
			s.Page = 0
			if s.X++; s.X >= p.w {
				s.X = 0
			}
		}
		return
	}
	if s.X++; s.X >= p.w {
		s.X = 0
		if s.Page++; s.Page >= p.pages() {
			s.Page = 0
		}
	}
}

// SetError makes all subsequent transfers fail with err, nil restores operation.
func (p *Panel) SetError(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.err = err
}

// State returns the controller registers.
func (p *Panel) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Resets is the number of reset pulses received.
func (p *Panel) Resets() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.resets
}

// Transfers returns the transfers received since the last ResetTransfers.
func (p *Panel) Transfers() []Transfer {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]Transfer(nil), p.transfers...)
}

// ResetTransfers clears the transfer log.
func (p *Panel) ResetTransfers() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.transfers = nil
}

// RAM returns a copy of the display RAM.
func (p *Panel) RAM() []byte {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]byte(nil), p.ram...)
}

// Snapshot returns the image the panel shows, taking the display mode and power
// state into account.
func (p *Panel) Snapshot() *pixel.PageImage {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snapshot()
}

func (p *Panel) snapshot() *pixel.PageImage {
	img := pixel.NewPageImage(p.w, p.h)
	if p.state.PowerDown {
		return img
	}
	switch p.state.Mode {
	case ModeNormal:
		_ = img.Load(p.ram)
	case ModeInverted:
		_ = img.LoadInverted(p.ram)
	case ModeAllOn:
		img.Fill(pixel.On)
	}
	return img
}

// Render draws the visible image to the output, two rows per line of text.
//
// Consecutive calls overwrite the previous rendering in place.
func (p *Panel) Render() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var (
		img   = p.snapshot()
		lines = (p.h + 1) / 2
	)
	p.buf.Reset()
	if p.rendered {
		fmt.Fprintf(&p.buf, "\033[%dA", lines)
	}
	for y := 0; y < p.h; y += 2 {
		_, _ = p.buf.WriteString("\r\033[0m")
		for x := 0; x < p.w; x++ {
			// One block per column of two rows.
			c := Background
			if img.BitAt(x, y) || img.BitAt(x, y+1) {
				c = Foreground
			}
			_, _ = io.WriteString(&p.buf, p.palette.Block(c))
		}
		_, _ = p.buf.WriteString("\033[0m\n")
	}
	p.rendered = true
	_, err := p.buf.WriteTo(p.out)
	return err
}
