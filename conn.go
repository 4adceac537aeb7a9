package pcd8544

import (
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	periphconn "periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"

	"github.com/BeatGlow/pcd8544/conn"
)

// Conn errors.
var (
	ErrResetPin = errors.New("pcd8544: reset GPIO pin is invalid")
	ErrDCPin    = errors.New("pcd8544: data/command (DC) GPIO pin is invalid")
	ErrCEPin    = errors.New("pcd8544: chip enable (CE) GPIO pin is invalid")
)

// Conn is the connection interface for communicating with hardware.
type Conn interface {
	String() string

	// Close the connection.
	Close() error

	// Command sends command bytes.
	Command(...byte) error

	// Data sends display RAM bytes.
	Data(...byte) error

	// Reset pulses the reset line of the controller.
	Reset() error
}

// SPIConfig describes the SPI bus configuration.
type SPIConfig struct {
	// Port is the SPI port name, empty selects the first available port.
	Port string

	// Speed is the maximum clock frequency.
	Speed physic.Frequency

	// Mode is the SPI mode.
	Mode spi.Mode

	// BatchSize is the largest number of bytes sent in one transaction.
	BatchSize int

	// ResetHold is the time the reset line is held low.
	ResetHold time.Duration

	// Reset, DC and CE are GPIO pin names. CE is optional, the port's own chip select
	// is used when empty.
	Reset string
	DC    string
	CE    string
}

// DefaultSPIConfig are the default configuration values.
var DefaultSPIConfig = SPIConfig{
	Speed:     2 * physic.MegaHertz,
	Mode:      spi.Mode0,
	BatchSize: 4096,
	ResetHold: 500 * time.Millisecond,
	Reset:     "GPIO25",
	DC:        "GPIO24",
}

// BitBangConfig describes a serial bus bit-banged over GPIO pins.
type BitBangConfig struct {
	// Speed is the clock frequency.
	Speed physic.Frequency

	// ResetHold is the time the reset line is held low.
	ResetHold time.Duration

	// GPIO pin names.
	Clock string
	Data  string
	CE    string
	Reset string
	DC    string
}

// DefaultBitBangConfig are the default configuration values.
var DefaultBitBangConfig = BitBangConfig{
	Speed:     conn.DefaultBitBangSpeed,
	ResetHold: 500 * time.Millisecond,
	Clock:     "GPIO11",
	Data:      "GPIO10",
	CE:        "GPIO8",
	Reset:     "GPIO25",
	DC:        "GPIO24",
}

// serialConn talks to the controller over a write only serial bus, with a GPIO pin
// selecting between command and data bytes.
type serialConn struct {
	bus       periphconn.Conn
	port      io.Closer
	reset     gpio.PinOut
	dc        gpio.PinOut
	dcLevel   gpio.Level
	dcValid   bool
	cs        gpio.PinOut
	resetHold time.Duration
	batchSize int
}

// OpenSPI opens a SPI port and the GPIO pins from config.
func OpenSPI(config *SPIConfig) (Conn, error) {
	if config == nil {
		config = new(SPIConfig)
		*config = DefaultSPIConfig
	}

	reset, err := pinByName(config.Reset, ErrResetPin)
	if err != nil {
		return nil, err
	}
	dc, err := pinByName(config.DC, ErrDCPin)
	if err != nil {
		return nil, err
	}
	var cs gpio.PinOut
	if config.CE != "" {
		if cs, err = pinByName(config.CE, ErrCEPin); err != nil {
			return nil, err
		}
	}

	port, err := spireg.Open(config.Port)
	if err != nil {
		return nil, fmt.Errorf("pcd8544: open SPI port: %w", err)
	}
	c, err := newSPI(port, dc, reset, cs, config)
	if err != nil {
		_ = port.Close()
		return nil, err
	}
	c.port = port
	return c, nil
}

// NewSPI returns a connection over an already opened SPI port.
//
// The reset pin may be nil if the reset line is driven elsewhere.
func NewSPI(port spi.Port, dc, reset gpio.PinOut, config *SPIConfig) (Conn, error) {
	if config == nil {
		config = new(SPIConfig)
		*config = DefaultSPIConfig
	}
	c, err := newSPI(port, dc, reset, nil, config)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func newSPI(port spi.Port, dc, reset, cs gpio.PinOut, config *SPIConfig) (*serialConn, error) {
	if dc == nil || dc == gpio.INVALID {
		return nil, ErrDCPin
	}
	speed := config.Speed
	if speed == 0 {
		speed = DefaultSPIConfig.Speed
	}
	bus, err := port.Connect(speed, config.Mode, 8)
	if err != nil {
		return nil, fmt.Errorf("pcd8544: connect SPI port: %w", err)
	}
	return newSerialConn(bus, dc, reset, cs, config.ResetHold, config.BatchSize)
}

// OpenBitBang returns a connection over a serial bus bit-banged on the GPIO pins from
// config.
func OpenBitBang(config *BitBangConfig) (Conn, error) {
	if config == nil {
		config = new(BitBangConfig)
		*config = DefaultBitBangConfig
	}

	reset, err := pinByName(config.Reset, ErrResetPin)
	if err != nil {
		return nil, err
	}
	dc, err := pinByName(config.DC, ErrDCPin)
	if err != nil {
		return nil, err
	}
	var cs gpio.PinOut
	if config.CE != "" {
		if cs, err = pinByName(config.CE, ErrCEPin); err != nil {
			return nil, err
		}
	}

	bus, err := conn.NewBitBang(gpioreg.ByName(config.Clock), gpioreg.ByName(config.Data), cs, config.Speed)
	if err != nil {
		return nil, fmt.Errorf("pcd8544: %w", err)
	}
	return newSerialConn(bus, dc, reset, nil, config.ResetHold, 0)
}

func newSerialConn(bus periphconn.Conn, dc, reset, cs gpio.PinOut, resetHold time.Duration, batchSize int) (*serialConn, error) {
	if dc == nil || dc == gpio.INVALID {
		return nil, ErrDCPin
	}
	if reset == gpio.INVALID {
		return nil, ErrResetPin
	}
	if resetHold <= 0 {
		resetHold = DefaultSPIConfig.ResetHold
	}
	if batchSize <= 0 {
		batchSize = DefaultSPIConfig.BatchSize
	}
	return &serialConn{
		bus:       bus,
		reset:     reset,
		dc:        dc,
		cs:        cs,
		resetHold: resetHold,
		batchSize: batchSize,
	}, nil
}

func pinByName(name string, invalid error) (gpio.PinOut, error) {
	p := gpioreg.ByName(name)
	if p == nil {
		return nil, fmt.Errorf("%w: %q", invalid, name)
	}
	return p, nil
}

func (c *serialConn) String() string {
	return c.bus.String()
}

func (c *serialConn) Close() error {
	if c.port != nil {
		return c.port.Close()
	}
	return nil
}

func (c *serialConn) Reset() error {
	if c.reset == nil {
		return nil
	}
	if err := c.reset.Out(gpio.Low); err != nil {
		return err
	}
	time.Sleep(c.resetHold)
	return c.reset.Out(gpio.High)
}

func (c *serialConn) updateDC(level gpio.Level) error {
	if !c.dcValid || c.dcLevel != level {
		if err := c.dc.Out(level); err != nil {
			return err
		}
		c.dcLevel = level
		c.dcValid = true
	}
	return nil
}

func (c *serialConn) updateCS(level gpio.Level) error {
	if c.cs == nil {
		return nil
	}
	return c.cs.Out(level)
}

func (c *serialConn) Command(cmds ...byte) error {
	return c.send(gpio.Low, cmds)
}

func (c *serialConn) Data(data ...byte) error {
	return c.send(gpio.High, data)
}

func (c *serialConn) send(dc gpio.Level, data []byte) (err error) {
	if len(data) == 0 {
		return
	}
	if err = c.updateDC(dc); err != nil {
		return
	}
	if err = c.updateCS(gpio.Low); err != nil {
		return
	}
	if err = c.writeChunked(data); err != nil {
		_ = c.updateCS(gpio.High)
		return
	}
	return c.updateCS(gpio.High)
}

func (c *serialConn) writeChunked(data []byte) error {
	if len(data) <= c.batchSize {
		return c.bus.Tx(data, nil)
	}

	if debug {
		log.Printf("pcd8544: write %d bytes of data in %d chunks", len(data), (len(data)+c.batchSize-1)/c.batchSize)
	}
	for len(data) > 0 {
		n := min(len(data), c.batchSize)
		if err := c.bus.Tx(data[:n], nil); err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}
