package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"math"
	"os"
	"strings"
	"time"

	"github.com/fogleman/gg"
	"github.com/golang/freetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"periph.io/x/host/v3"

	"github.com/BeatGlow/pcd8544"
	"github.com/BeatGlow/pcd8544/pixel"
	"github.com/BeatGlow/pcd8544/sim"
)

func main() {
	var (
		spiSpeed = pcd8544.DefaultSPIConfig.Speed
		bbSpeed  = pcd8544.DefaultBitBangConfig.Speed
	)
	spiPortFlag := flag.String("spi-port", "", "SPI port (default: first available)")
	flag.Var(&spiSpeed, "spi-speed", "SPI clock speed")
	flag.Var(&bbSpeed, "bitbang-speed", "Bit-banged clock speed")
	resetPinFlag := flag.String("reset", pcd8544.DefaultSPIConfig.Reset, "Reset GPIO pin (RST)")
	dcPinFlag := flag.String("dc", pcd8544.DefaultSPIConfig.DC, "Data/Command GPIO pin (DC)")
	cePinFlag := flag.String("ce", "", "Chip enable GPIO pin (CE)")
	clkPinFlag := flag.String("clk", pcd8544.DefaultBitBangConfig.Clock, "Bit-banged clock GPIO pin (SCLK)")
	dinPinFlag := flag.String("din", pcd8544.DefaultBitBangConfig.Data, "Bit-banged data GPIO pin (DIN)")
	contrastFlag := flag.Uint("contrast", uint(pcd8544.DefaultOpts.Contrast), "Contrast (0-127)")
	biasFlag := flag.Uint("bias", uint(pcd8544.DefaultOpts.Bias), "Bias (0-7)")
	invertFlag := flag.Bool("invert", false, "Invert the display")
	ttfFlag := flag.String("ttf", "", "TrueType font file for the ttf demo")
	imageFlag := flag.String("image", "", "Image file for the image demo")
	durationFlag := flag.Duration("duration", 5*time.Second, "Time to run each demo")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <spi|bitbang|sim> [demo...]\n", os.Args[0])
		fmt.Fprintln(os.Stderr, "Demos: logo, shapes, text, font, ttf, gauge, image (default: all that need no files)")
		os.Exit(1)
	}

	var (
		conn  pcd8544.Conn
		panel *sim.Panel
		err   error
	)
	switch busType := flag.Arg(0); busType {
	case "spi":
		if _, err = host.Init(); err != nil {
			fatal(err)
		}
		conn, err = pcd8544.OpenSPI(&pcd8544.SPIConfig{
			Port:  *spiPortFlag,
			Speed: spiSpeed,
			Mode:  pcd8544.DefaultSPIConfig.Mode,
			Reset: *resetPinFlag,
			DC:    *dcPinFlag,
			CE:    *cePinFlag,
		})
	case "bitbang":
		if _, err = host.Init(); err != nil {
			fatal(err)
		}
		ce := *cePinFlag
		if ce == "" {
			ce = pcd8544.DefaultBitBangConfig.CE
		}
		conn, err = pcd8544.OpenBitBang(&pcd8544.BitBangConfig{
			Speed: bbSpeed,
			Clock: *clkPinFlag,
			Data:  *dinPinFlag,
			CE:    ce,
			Reset: *resetPinFlag,
			DC:    *dcPinFlag,
		})
	case "sim":
		panel = sim.New(nil)
		conn = panel
	default:
		err = fmt.Errorf("unsupported bus type %q", busType)
	}
	if err != nil {
		fatal(err)
	}
	fmt.Printf("using connection: %s\n", conn)

	opts := pcd8544.DefaultOpts
	opts.Contrast = uint8(*contrastFlag)
	opts.Bias = uint8(*biasFlag)
	d, err := pcd8544.New(conn, &opts)
	if err != nil {
		fatal(err)
	}
	defer d.Close()
	fmt.Printf("using driver: %s\n", d)

	if *invertFlag {
		if err = d.Invert(true); err != nil {
			fatal(err)
		}
	}

	demos := flag.Args()[1:]
	if len(demos) == 0 {
		demos = []string{"logo", "shapes", "text", "font", "gauge"}
	}
	for _, name := range demos {
		fmt.Printf("running demo: %s\n", name)
		if err = run(d, strings.ToLower(name), panel, *durationFlag, *ttfFlag, *imageFlag); err != nil {
			fatal(err)
		}
	}
}

func run(d *pcd8544.Dev, name string, panel *sim.Panel, duration time.Duration, ttfPath, imagePath string) error {
	var (
		ticker   = time.NewTicker(100 * time.Millisecond)
		deadline = time.Now().Add(duration)
		frame    int
	)
	defer ticker.Stop()

	d.Zero()
	for time.Now().Before(deadline) {
		var err error
		switch name {
		case "logo":
			err = d.ShowLogo()
		case "shapes":
			err = shapes(d, frame)
		case "text":
			err = textDemo(d, frame)
		case "font":
			err = fontDemo(d)
		case "ttf":
			err = ttfDemo(d, ttfPath)
		case "gauge":
			err = gauge(d, frame)
		case "image":
			err = imageDemo(d, imagePath)
		default:
			err = fmt.Errorf("unsupported demo %q", name)
		}
		if err != nil {
			return err
		}
		if panel != nil {
			if err = panel.Render(); err != nil {
				return err
			}
		}
		frame++
		<-ticker.C
	}
	return nil
}

func shapes(d *pcd8544.Dev, frame int) error {
	r := d.Bounds()
	d.FillRect(0, 0, r.Dx(), r.Dy(), pixel.Off)
	d.Rect(0, 0, r.Dx(), r.Dy(), pixel.On)

	x := 10 + frame%(r.Dx()-20)
	d.Circle(x, r.Dy()/2, 8, pixel.On)
	d.FillCircle(r.Dx()-x, r.Dy()/2, 5, pixel.On)
	d.Line(0, 0, x, r.Dy()-1, pixel.On)
	d.Line(r.Dx()-1, 0, r.Dx()-x, r.Dy()-1, pixel.On)
	return d.Update()
}

func textDemo(d *pcd8544.Dev, frame int) error {
	d.FillRect(0, 0, d.Bounds().Dx(), d.Bounds().Dy(), pixel.Off)
	c := d.Text()
	c.SetSize(1)
	c.SetColor(pixel.On)
	d.DrawString(0, 0, "PCD8544\nNokia 5110\n")
	fmt.Fprintf(c, "frame %d\n", frame)

	c.SetColor(pixel.Off)
	fmt.Fprint(c, time.Now().Format("15:04:05"))
	c.SetColor(pixel.On)

	c.SetSize(2)
	d.DrawString(0, 32, fmt.Sprintf("%03d", frame%1000))
	c.SetSize(1)
	return d.Update()
}

// fontDemo draws with a golang.org/x/image font directly onto the display.
func fontDemo(d *pcd8544.Dev) error {
	d.FillRect(0, 0, d.Bounds().Dx(), d.Bounds().Dy(), pixel.Off)
	f := basicfont.Face7x13
	drawer := font.Drawer{
		Dst:  d,
		Src:  image.NewUniform(pixel.On),
		Face: f,
	}
	for i, line := range []string{"Hello", "from", "periph!"} {
		drawer.Dot = fixed.P(0, (i+1)*f.Height-f.Descent)
		drawer.DrawString(line)
	}
	return d.Update()
}

func ttfDemo(d *pcd8544.Dev, path string) error {
	if path == "" {
		return errors.New("ttf demo needs a font, use -ttf")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	f, err := freetype.ParseFont(data)
	if err != nil {
		return err
	}

	d.FillRect(0, 0, d.Bounds().Dx(), d.Bounds().Dy(), pixel.Off)
	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(f)
	ctx.SetFontSize(16)
	ctx.SetClip(d.Bounds())
	ctx.SetDst(d)
	ctx.SetSrc(image.NewUniform(pixel.On))
	ctx.SetHinting(font.HintingFull)
	if _, err = ctx.DrawString(time.Now().Format("15:04"), freetype.Pt(4, 30)); err != nil {
		return err
	}
	return d.Update()
}

// gauge renders an anti-aliased dial with gg and converts it to one bit.
func gauge(d *pcd8544.Dev, frame int) error {
	var (
		r     = d.Bounds()
		w, h  = float64(r.Dx()), float64(r.Dy())
		value = (math.Sin(float64(frame)/10) + 1) / 2
		angle = gg.Radians(180 + 180*value)
	)
	dc := gg.NewContext(r.Dx(), r.Dy())
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(3)
	dc.DrawArc(w/2, h-4, h-8, gg.Radians(180), gg.Radians(360))
	dc.Stroke()
	dc.SetLineWidth(2)
	dc.DrawLine(w/2, h-4, w/2+(h-12)*math.Cos(angle), h-4+(h-12)*math.Sin(angle))
	dc.Stroke()
	dc.DrawCircle(w/2, h-4, 3)
	dc.Fill()

	img := pixel.FromImage(dc.Image(), r.Dx(), r.Dy())
	if err := d.LoadFrame(img.Pix, false); err != nil {
		return err
	}
	return d.Update()
}

func imageDemo(d *pcd8544.Dev, path string) error {
	if path == "" {
		return errors.New("image demo needs a file, use -image")
	}
	src, err := gg.LoadImage(path)
	if err != nil {
		return err
	}
	return d.Draw(d.Bounds(), pixel.FromImage(src, d.Bounds().Dx(), d.Bounds().Dy()), image.Point{})
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
	os.Exit(1)
}
