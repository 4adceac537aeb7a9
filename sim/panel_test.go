package sim

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func newTestPanel() (*Panel, *bytes.Buffer) {
	out := new(bytes.Buffer)
	return New(&Opts{W: 84, H: 48, Output: out}), out
}

func TestPanelCommands(t *testing.T) {
	p, _ := newTestPanel()
	if s := p.State(); !s.PowerDown {
		t.Error("expected panel to start in power down mode")
	}

	if err := p.Command(0x21, 0x13, 0xa8, 0x06, 0x20, 0x0c); err != nil {
		t.Fatal(err)
	}
	want := State{Mode: ModeNormal, Vop: 0x28, Bias: 3, Temp: 2}
	if diff := cmp.Diff(p.State(), want); diff != "" {
		t.Errorf("state difference (-got +want):\n%s", diff)
	}

	if err := p.Command(0x80|17, 0x40|3); err != nil {
		t.Fatal(err)
	}
	if s := p.State(); s.X != 17 || s.Page != 3 {
		t.Errorf("expected address (17,3), got (%d,%d)", s.X, s.Page)
	}

	// Out of range addresses are ignored.
	if err := p.Command(0x80|100, 0x40|7); err != nil {
		t.Fatal(err)
	}
	if s := p.State(); s.X != 17 || s.Page != 3 {
		t.Errorf("expected address (17,3), got (%d,%d)", s.X, s.Page)
	}

	// Basic instructions are not decoded in the extended set.
	if err := p.Command(0x21, 0x80|5, 0x0d, 0x20); err != nil {
		t.Fatal(err)
	}
	if s := p.State(); s.X != 17 || s.Vop != 5 || s.Mode != ModeNormal {
		t.Errorf("unexpected state %+v", s)
	}

	if err := p.Command(0x24); err != nil {
		t.Fatal(err)
	}
	if s := p.State(); !s.PowerDown {
		t.Error("expected power down")
	}
}

func TestPanelHorizontalAddressing(t *testing.T) {
	p, _ := newTestPanel()
	if err := p.Command(0x20, 0x80|82, 0x40|0); err != nil {
		t.Fatal(err)
	}
	if err := p.Data(1, 2, 3); err != nil {
		t.Fatal(err)
	}
	ram := p.RAM()
	if ram[82] != 1 || ram[83] != 2 || ram[84] != 3 {
		t.Errorf("expected data to wrap to the next page, got % x", ram[82:85])
	}
	if s := p.State(); s.X != 1 || s.Page != 1 {
		t.Errorf("expected address (1,1), got (%d,%d)", s.X, s.Page)
	}

	// The last byte of RAM wraps to the first.
	if err := p.Command(0x80|83, 0x40|5); err != nil {
		t.Fatal(err)
	}
	if err := p.Data(0xaa, 0xbb); err != nil {
		t.Fatal(err)
	}
	ram = p.RAM()
	if ram[503] != 0xaa || ram[0] != 0xbb {
		t.Errorf("expected wrap around, got %#x %#x", ram[503], ram[0])
	}
}

func TestPanelVerticalAddressing(t *testing.T) {
	p, _ := newTestPanel()
	if err := p.Command(0x22, 0x80|10, 0x40|4); err != nil {
		t.Fatal(err)
	}
	if err := p.Data(1, 2, 3); err != nil {
		t.Fatal(err)
	}
	ram := p.RAM()
	if ram[4*84+10] != 1 || ram[5*84+10] != 2 || ram[0*84+11] != 3 {
		t.Error("expected data to fill the column before moving right")
	}
}

func TestPanelSnapshot(t *testing.T) {
	p, _ := newTestPanel()
	if err := p.Command(0x20, 0x0c, 0x80, 0x40); err != nil {
		t.Fatal(err)
	}
	if err := p.Data(0x01); err != nil {
		t.Fatal(err)
	}

	for _, test := range []struct {
		name     string
		cmd      byte
		at00     bool
		at01     bool
		powerOff bool
	}{
		{"normal", 0x0c, true, false, false},
		{"inverted", 0x0d, false, true, false},
		{"all on", 0x09, true, true, false},
		{"blank", 0x08, false, false, false},
		{"power down", 0x0c, false, false, true},
	} {
		t.Run(test.name, func(t *testing.T) {
			cmds := []byte{0x20, test.cmd}
			if test.powerOff {
				cmds = append(cmds, 0x24)
			}
			if err := p.Command(cmds...); err != nil {
				t.Fatal(err)
			}
			img := p.Snapshot()
			if v := img.BitAt(0, 0); v != test.at00 {
				t.Errorf("expected (0,0) to be %t, got %t", test.at00, v)
			}
			if v := img.BitAt(0, 1); v != test.at01 {
				t.Errorf("expected (0,1) to be %t, got %t", test.at01, v)
			}
		})
	}
}

func TestPanelTransfers(t *testing.T) {
	p, _ := newTestPanel()
	_ = p.Command(0x80, 0x40)
	_ = p.Data(1, 2)
	want := []Transfer{
		{Command: true, Bytes: []byte{0x80, 0x40}},
		{Command: false, Bytes: []byte{1, 2}},
	}
	if diff := cmp.Diff(p.Transfers(), want); diff != "" {
		t.Errorf("transfers difference (-got +want):\n%s", diff)
	}
	if v := want[0].String(); v != "cmd 80 40" {
		t.Errorf("unexpected transfer string %q", v)
	}

	p.ResetTransfers()
	if v := p.Transfers(); len(v) != 0 {
		t.Errorf("expected no transfers, got %v", v)
	}
}

func TestPanelErrors(t *testing.T) {
	p, _ := newTestPanel()
	fail := errors.New("bus error")
	p.SetError(fail)
	if err := p.Data(1); !errors.Is(err, fail) {
		t.Errorf("expected %v, got %v", fail, err)
	}
	if err := p.Reset(); !errors.Is(err, fail) {
		t.Errorf("expected %v, got %v", fail, err)
	}
	if p.RAM()[0] != 0 || len(p.Transfers()) != 0 {
		t.Error("expected failed transfers to have no effect")
	}

	p.SetError(nil)
	if err := p.Reset(); err != nil {
		t.Fatal(err)
	}
	if v := p.Resets(); v != 1 {
		t.Errorf("expected 1 reset, got %d", v)
	}

	_ = p.Close()
	if err := p.Command(0x20); err == nil {
		t.Error("expected transfers on a closed panel to fail")
	}
}

func TestPanelRender(t *testing.T) {
	p, out := newTestPanel()
	_ = p.Command(0x20, 0x0c)
	_ = p.Data(0xff)

	if err := p.Render(); err != nil {
		t.Fatal(err)
	}
	first := out.String()
	if v := strings.Count(first, "\n"); v != 24 {
		t.Errorf("expected 24 lines of output, got %d", v)
	}
	if strings.Contains(first, "\033[24A") {
		t.Error("expected the first rendering not to move the cursor up")
	}

	out.Reset()
	if err := p.Render(); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out.String(), "\033[24A") {
		t.Error("expected the next rendering to overwrite the previous one")
	}
	if out.Len() <= len(first) {
		t.Error("expected the next rendering to include the cursor movement")
	}
}
