// Package conn implements low level buses for displays that are not attached to a
// hardware controller.
package conn

import (
	"errors"
	"fmt"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
)

// DefaultBitBangSpeed is the default clock frequency of a BitBang bus.
const DefaultBitBangSpeed = 500 * physic.KiloHertz

// Half periods shorter than this are busy waited, the scheduler cannot sleep for
// less than a few tens of microseconds.
const minSleep = 50 * time.Microsecond

// BitBang errors.
var (
	ErrClockPin = errors.New("conn: clock GPIO pin is invalid")
	ErrDataPin  = errors.New("conn: data GPIO pin is invalid")
	ErrRead     = errors.New("conn: bus is write only")
)

// BitBang is a write only synchronous serial bus driven over GPIO pins.
//
// Bytes are shifted out most significant bit first. Data is changed while the clock
// is low and sampled by the device on the rising edge (SPI mode 0).
//
// The clock speed is an upper bound, each edge also costs a GPIO write.
type BitBang struct {
	clk   gpio.PinOut
	data  gpio.PinOut
	cs    gpio.PinOut
	half  time.Duration
	sleep func(time.Duration)
}

// NewBitBang returns a bus on the clock and data pins. The chip select pin is
// optional and active low.
func NewBitBang(clk, data, cs gpio.PinOut, speed physic.Frequency) (*BitBang, error) {
	if clk == nil || clk == gpio.INVALID {
		return nil, ErrClockPin
	}
	if data == nil || data == gpio.INVALID {
		return nil, ErrDataPin
	}
	if cs == gpio.INVALID {
		cs = nil
	}
	if speed <= 0 {
		speed = DefaultBitBangSpeed
	}
	b := &BitBang{
		clk:   clk,
		data:  data,
		cs:    cs,
		half:  speed.Period() / 2,
		sleep: time.Sleep,
	}
	if err := clk.Out(gpio.Low); err != nil {
		return nil, err
	}
	if cs != nil {
		if err := cs.Out(gpio.High); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (b *BitBang) String() string {
	if b.cs == nil {
		return fmt.Sprintf("BitBang{%s, %s}", b.clk, b.data)
	}
	return fmt.Sprintf("BitBang{%s, %s, %s}", b.clk, b.data, b.cs)
}

// Duplex implements conn.Conn.
func (b *BitBang) Duplex() conn.Duplex {
	return conn.Half
}

// Tx implements conn.Conn. Reading is not supported, r must be empty.
func (b *BitBang) Tx(w, r []byte) (err error) {
	if len(r) != 0 {
		return ErrRead
	}
	if b.cs != nil {
		if err = b.cs.Out(gpio.Low); err != nil {
			return
		}
		defer func() {
			if csErr := b.cs.Out(gpio.High); err == nil {
				err = csErr
			}
		}()
	}
	for _, v := range w {
		if err = b.shift(v); err != nil {
			return
		}
	}
	return
}

func (b *BitBang) shift(v byte) error {
	for i := 0; i < 8; i++ {
		if err := b.data.Out(gpio.Level(v&0x80 != 0)); err != nil {
			return err
		}
		v <<= 1
		if err := b.clk.Out(gpio.High); err != nil {
			return err
		}
		b.wait()
		if err := b.clk.Out(gpio.Low); err != nil {
			return err
		}
		b.wait()
	}
	return nil
}

func (b *BitBang) wait() {
	switch {
	case b.half <= 0:
	case b.half < minSleep:
		for start := time.Now(); time.Since(start) < b.half; {
		}
	default:
		b.sleep(b.half)
	}
}

var _ conn.Conn = (*BitBang)(nil)
