package pcd8544

// Instruction set.
const (
	functionSet         = 0x20
	powerDown           = 0x04
	extendedInstruction = 0x01

	// Basic instructions (H=0).
	displayControl = 0x08
	setYAddr       = 0x40
	setXAddr       = 0x80

	// Extended instructions (H=1).
	setTemp = 0x04
	setBias = 0x10
	setVop  = 0x80
)

// Limits of the controller registers.
const (
	maxContrast               = 0x7f
	maxBias                   = 0x07
	maxTemperatureCoefficient = 0x03
)

// Mode is the display configuration.
type Mode uint8

// Display modes.
const (
	Blank    Mode = 0x0 // All segments off
	AllOn    Mode = 0x1 // All segments on
	Normal   Mode = 0x4
	Inverted Mode = 0x5
)

func (m Mode) String() string {
	switch m {
	case Blank:
		return "blank"
	case AllOn:
		return "all on"
	case Normal:
		return "normal"
	case Inverted:
		return "inverted"
	default:
		return "invalid"
	}
}
