package pcd8544

import (
	"fmt"
	"log"
)

// Init configures the controller and clears the display.
//
// The contrast is clamped to 127 and the bias to 7.
func (d *Dev) Init(contrast, bias uint8) error {
	contrast = min(contrast, maxContrast)
	bias = min(bias, maxBias)
	if err := d.c.Command(
		functionSet|extendedInstruction,
		setBias|bias,
		setVop|contrast,
		functionSet,
		displayControl|byte(Normal),
	); err != nil {
		return err
	}
	d.opts.Contrast = contrast
	d.opts.Bias = bias
	d.halted = false
	return d.Clear()
}

// SetPower switches the controller between active and power down mode.
func (d *Dev) SetPower(on bool) error {
	cmd := byte(functionSet)
	if !on {
		cmd |= powerDown
	}
	if err := d.c.Command(cmd); err != nil {
		return err
	}
	d.halted = !on
	return nil
}

// SetDisplayMode selects how the display RAM is shown.
func (d *Dev) SetDisplayMode(mode Mode) error {
	switch mode {
	case Blank, AllOn, Normal, Inverted:
	default:
		return fmt.Errorf("pcd8544: invalid display mode %#x", byte(mode))
	}
	return d.c.Command(displayControl | byte(mode))
}

// Invert the display (light on dark vs dark on light).
func (d *Dev) Invert(inverted bool) error {
	if inverted {
		return d.SetDisplayMode(Inverted)
	}
	return d.SetDisplayMode(Normal)
}

// SetContrast adjusts the operating voltage. Values above 127 are clamped.
func (d *Dev) SetContrast(level uint8) error {
	level = min(level, maxContrast)
	if err := d.extended(setVop | level); err != nil {
		return err
	}
	d.opts.Contrast = level
	return nil
}

// SetBias adjusts the bias system. Values above 7 are clamped.
func (d *Dev) SetBias(bias uint8) error {
	bias = min(bias, maxBias)
	if err := d.extended(setBias | bias); err != nil {
		return err
	}
	d.opts.Bias = bias
	return nil
}

// SetTemperatureCoefficient selects the temperature compensation curve, 0-3.
func (d *Dev) SetTemperatureCoefficient(tc uint8) error {
	tc = min(tc, maxTemperatureCoefficient)
	if err := d.extended(setTemp | tc); err != nil {
		return err
	}
	d.opts.TemperatureCoefficient = tc
	return nil
}

// extended sends a command from the extended instruction set. The power down bit is
// part of every function set, so it is kept while the controller is halted.
func (d *Dev) extended(cmd byte) error {
	fs := byte(functionSet)
	if d.halted {
		fs |= powerDown
	}
	return d.c.Command(fs|extendedInstruction, cmd, fs)
}

// Halt powers down the controller. The display RAM is retained, any transfer powers
// the controller back up.
func (d *Dev) Halt() error {
	return d.SetPower(false)
}

// wake leaves power down mode before a transfer.
func (d *Dev) wake() error {
	if !d.halted {
		return nil
	}
	return d.SetPower(true)
}

// SetAddress moves the RAM address pointer to column x of page.
func (d *Dev) SetAddress(x, page int) error {
	return d.c.Command(setXAddr|byte(x&0x7f), setYAddr|byte(page&0x07))
}

// Display transfers the whole frame buffer.
func (d *Dev) Display() error {
	if err := d.wake(); err != nil {
		return err
	}
	if err := d.SetAddress(0, 0); err != nil {
		return err
	}
	if err := d.c.Data(d.buffer.Pix...); err != nil {
		return err
	}
	if err := d.SetAddress(0, 0); err != nil {
		return err
	}
	d.dirty.Reset()
	return nil
}

// Update transfers the modified region of the frame buffer.
//
// Every page crossed by the region is sent from column XMin up to XMax. When the
// transfer fails the region is kept, so a later Update retries it.
func (d *Dev) Update() error {
	if d.dirty.Empty() {
		return nil
	}
	if err := d.wake(); err != nil {
		return err
	}

	var (
		xmin, xmax = d.dirty.XMin, d.dirty.XMax
		ymin, ymax = d.dirty.YMin, d.dirty.YMax
	)
	if debug {
		log.Printf("pcd8544: update %s", d.dirty)
	}
	for p := 0; p < d.rect.Dy(); p += 8 {
		if ymin >= p+8 {
			continue
		}
		if ymax < p {
			break
		}
		page := p / 8
		if err := d.SetAddress(xmin, page); err != nil {
			return err
		}
		if xmax > xmin {
			if err := d.c.Data(d.buffer.Page(page)[xmin:xmax]...); err != nil {
				return err
			}
		}
	}
	if err := d.c.Command(setYAddr); err != nil {
		return err
	}
	d.dirty.Reset()
	return nil
}

// Clear blanks the frame buffer and the display RAM.
func (d *Dev) Clear() error {
	d.buffer.Clear()
	err := d.Display()
	d.dirty.MarkAll()
	return err
}

// Zero blanks the frame buffer and marks it as modified, without a transfer.
func (d *Dev) Zero() {
	d.buffer.Clear()
	d.dirty.MarkAll()
}

// LoadFrame replaces the frame buffer with a raw frame in page layout, complemented
// if negative is set, and marks it as modified.
func (d *Dev) LoadFrame(frame []byte, negative bool) error {
	var err error
	if negative {
		err = d.buffer.LoadInverted(frame)
	} else {
		err = d.buffer.Load(frame)
	}
	if err != nil {
		return fmt.Errorf("pcd8544: %w", err)
	}
	d.dirty.MarkAll()
	return nil
}

// ShowLogo loads the built-in splash frame and displays it.
func (d *Dev) ShowLogo() error {
	if d.rect.Dx() != Width || d.rect.Dy() != Height {
		return fmt.Errorf("%w: logo needs %dx%d", ErrGeometry, Width, Height)
	}
	if err := d.buffer.Load(logo[:]); err != nil {
		return err
	}
	return d.Display()
}
