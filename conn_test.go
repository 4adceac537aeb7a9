package pcd8544

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"periph.io/x/conn/v3/conntest"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi/spitest"

	"github.com/BeatGlow/pcd8544/conn"
)

// levelPin records every level written to it.
type levelPin struct {
	*gpiotest.Pin
	levels []gpio.Level
}

func newLevelPin(name string, num int) *levelPin {
	return &levelPin{Pin: &gpiotest.Pin{N: name, Num: num}}
}

func (p *levelPin) Out(l gpio.Level) error {
	p.levels = append(p.levels, l)
	return p.Pin.Out(l)
}

func TestSPI(t *testing.T) {
	var (
		port  = &spitest.Record{}
		dc    = newLevelPin("DC", 24)
		reset = newLevelPin("RST", 25)
	)
	c, err := NewSPI(port, dc, reset, &SPIConfig{
		ResetHold: time.Millisecond,
		BatchSize: 100,
	})
	if err != nil {
		t.Fatal(err)
	}

	d, err := New(c, nil)
	if err != nil {
		t.Fatal(err)
	}

	want := []conntest.IO{
		{W: initCommands},
		{W: []byte{0x80, 0x40}},
		{W: make([]byte, 100)},
		{W: make([]byte, 100)},
		{W: make([]byte, 100)},
		{W: make([]byte, 100)},
		{W: make([]byte, 100)},
		{W: make([]byte, 4)},
		{W: []byte{0x80, 0x40}},
	}
	if diff := cmp.Diff(port.Ops, want); diff != "" {
		t.Errorf("SPI transfers difference (-got +want):\n%s", diff)
	}
	if diff := cmp.Diff(reset.levels, []gpio.Level{gpio.Low, gpio.High}); diff != "" {
		t.Errorf("reset levels difference (-got +want):\n%s", diff)
	}
	if diff := cmp.Diff(dc.levels, []gpio.Level{gpio.Low, gpio.High, gpio.Low}); diff != "" {
		t.Errorf("D/C levels difference (-got +want):\n%s", diff)
	}

	port.Ops = nil
	if err = d.Close(); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(port.Ops, []conntest.IO{{W: []byte{0x24}}}); diff != "" {
		t.Errorf("SPI transfers difference (-got +want):\n%s", diff)
	}
}

func TestSPIPins(t *testing.T) {
	if _, err := NewSPI(&spitest.Record{}, nil, nil, nil); !errors.Is(err, ErrDCPin) {
		t.Errorf("expected %v, got %v", ErrDCPin, err)
	}
	if _, err := NewSPI(&spitest.Record{}, gpio.INVALID, nil, nil); !errors.Is(err, ErrDCPin) {
		t.Errorf("expected %v, got %v", ErrDCPin, err)
	}
	if _, err := NewSPI(&spitest.Record{}, &gpiotest.Pin{N: "DC"}, gpio.INVALID, nil); !errors.Is(err, ErrResetPin) {
		t.Errorf("expected %v, got %v", ErrResetPin, err)
	}

	// Without a reset pin, Reset is a no-op.
	c, err := NewSPI(&spitest.Record{}, &gpiotest.Pin{N: "DC"}, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err = c.Reset(); err != nil {
		t.Error(err)
	}

	if _, err = OpenSPI(&SPIConfig{Reset: "NO_SUCH_PIN"}); !errors.Is(err, ErrResetPin) {
		t.Errorf("expected %v, got %v", ErrResetPin, err)
	}
}

func TestSerialBitBang(t *testing.T) {
	var (
		clk  = newLevelPin("SCLK", 11)
		data = newLevelPin("DIN", 10)
		dc   = newLevelPin("DC", 24)
	)
	bus, err := conn.NewBitBang(clk, data, nil, 100*physic.MegaHertz)
	if err != nil {
		t.Fatal(err)
	}
	c, err := newSerialConn(bus, dc, nil, nil, 0, 0)
	if err != nil {
		t.Fatal(err)
	}

	data.levels = nil
	if err = c.Command(0x21); err != nil {
		t.Fatal(err)
	}
	var (
		H = gpio.High
		L = gpio.Low
	)
	if diff := cmp.Diff(data.levels, []gpio.Level{L, L, H, L, L, L, L, H}); diff != "" {
		t.Errorf("data levels difference (-got +want):\n%s", diff)
	}
	if diff := cmp.Diff(dc.levels, []gpio.Level{L}); diff != "" {
		t.Errorf("D/C levels difference (-got +want):\n%s", diff)
	}

	// The D/C line only changes when switching between commands and data.
	if err = c.Data(0xff, 0x00); err != nil {
		t.Fatal(err)
	}
	if err = c.Data(0x01); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(dc.levels, []gpio.Level{L, H}); diff != "" {
		t.Errorf("D/C levels difference (-got +want):\n%s", diff)
	}
	if v := c.String(); v != "BitBang{SCLK(11), DIN(10)}" {
		t.Errorf("unexpected name %q", v)
	}
}
