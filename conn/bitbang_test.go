package conn

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
	"periph.io/x/conn/v3/physic"
)

// clockPin samples the data and chip select pins on every rising edge.
type clockPin struct {
	*gpiotest.Pin
	data, cs *gpiotest.Pin
	bits     []gpio.Level
	selected []gpio.Level
}

func (p *clockPin) Out(l gpio.Level) error {
	if l == gpio.High && p.Pin.Read() == gpio.Low {
		p.bits = append(p.bits, p.data.Read())
		p.selected = append(p.selected, p.cs.Read())
	}
	return p.Pin.Out(l)
}

func newTestBus(t *testing.T) (*BitBang, *clockPin, *gpiotest.Pin) {
	t.Helper()
	var (
		data = &gpiotest.Pin{N: "DIN", Num: 10}
		cs   = &gpiotest.Pin{N: "CE", Num: 8}
		clk  = &clockPin{Pin: &gpiotest.Pin{N: "SCLK", Num: 11}, data: data, cs: cs}
	)
	b, err := NewBitBang(clk, data, cs, 100*physic.MegaHertz)
	if err != nil {
		t.Fatal(err)
	}
	return b, clk, cs
}

func TestBitBangTx(t *testing.T) {
	b, clk, cs := newTestBus(t)
	if cs.Read() != gpio.High {
		t.Error("expected chip select to be released after init")
	}

	if err := b.Tx([]byte{0xa5, 0x01}, nil); err != nil {
		t.Fatal(err)
	}

	var (
		H    = gpio.High
		L    = gpio.Low
		want = []gpio.Level{
			H, L, H, L, L, H, L, H,
			L, L, L, L, L, L, L, H,
		}
	)
	if diff := cmp.Diff(clk.bits, want); diff != "" {
		t.Errorf("bits difference (-got +want):\n%s", diff)
	}
	for i, l := range clk.selected {
		if l != gpio.Low {
			t.Errorf("expected chip select to be asserted while shifting bit %d", i)
		}
	}
	if cs.Read() != gpio.High {
		t.Error("expected chip select to be released after Tx")
	}
	if clk.Read() != gpio.Low {
		t.Error("expected clock to idle low")
	}
}

func TestBitBangRead(t *testing.T) {
	b, _, _ := newTestBus(t)
	if err := b.Tx(nil, make([]byte, 1)); !errors.Is(err, ErrRead) {
		t.Errorf("expected %v, got %v", ErrRead, err)
	}
}

func TestBitBangPins(t *testing.T) {
	data := &gpiotest.Pin{N: "DIN"}
	if _, err := NewBitBang(nil, data, nil, 0); !errors.Is(err, ErrClockPin) {
		t.Errorf("expected %v, got %v", ErrClockPin, err)
	}
	if _, err := NewBitBang(gpio.INVALID, data, nil, 0); !errors.Is(err, ErrClockPin) {
		t.Errorf("expected %v, got %v", ErrClockPin, err)
	}
	if _, err := NewBitBang(&gpiotest.Pin{N: "SCLK"}, nil, nil, 0); !errors.Is(err, ErrDataPin) {
		t.Errorf("expected %v, got %v", ErrDataPin, err)
	}

	b, err := NewBitBang(&gpiotest.Pin{N: "SCLK", Num: 11}, data, gpio.INVALID, 0)
	if err != nil {
		t.Fatal(err)
	}
	if v := b.String(); v != "BitBang{SCLK(11), DIN(0)}" {
		t.Errorf("unexpected name %q", v)
	}
	if b.half != DefaultBitBangSpeed.Period()/2 {
		t.Errorf("expected default speed, got half period %s", b.half)
	}
}

func TestBitBangWait(t *testing.T) {
	for _, test := range []struct {
		name   string
		speed  physic.Frequency
		sleeps int
	}{
		{"default", DefaultBitBangSpeed, 0},
		{"slow", 5 * physic.KiloHertz, 16},
	} {
		t.Run(test.name, func(t *testing.T) {
			data := &gpiotest.Pin{N: "DIN"}
			b, err := NewBitBang(&gpiotest.Pin{N: "SCLK"}, data, nil, test.speed)
			if err != nil {
				t.Fatal(err)
			}
			var slept []time.Duration
			b.sleep = func(d time.Duration) { slept = append(slept, d) }

			start := time.Now()
			if err = b.Tx([]byte{0xff}, nil); err != nil {
				t.Fatal(err)
			}
			if len(slept) != test.sleeps {
				t.Errorf("expected %d sleeps, got %d", test.sleeps, len(slept))
			}
			for _, d := range slept {
				if d != b.half {
					t.Errorf("expected to sleep %s, got %s", b.half, d)
				}
			}
			if test.sleeps == 0 {
				if elapsed, want := time.Since(start), 16*b.half; elapsed < want {
					t.Errorf("expected a byte to take at least %s, took %s", want, elapsed)
				}
			}
		})
	}
}
