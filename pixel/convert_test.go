package pixel

import (
	"image"
	"image/color"
	"image/draw"
	"testing"
)

func TestFromImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 84, 48))
	draw.Draw(src, src.Bounds(), image.White, image.Point{}, draw.Src)
	draw.Draw(src, image.Rect(0, 0, 42, 48), image.Black, image.Point{}, draw.Src)

	i := FromImage(src, 84, 48)
	for y := 0; y < 48; y++ {
		for x := 0; x < 84; x++ {
			if want := x < 42; i.BitAt(x, y) != want {
				t.Fatalf("pixel (%d,%d) expected %t", x, y, want)
			}
		}
	}
}

func TestFromImageScaled(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 168, 96))
	for y := 0; y < 96; y++ {
		for x := 0; x < 168; x++ {
			if y < 48 {
				src.SetGray(x, y, color.Gray{Y: 0x00})
			} else {
				src.SetGray(x, y, color.Gray{Y: 0xff})
			}
		}
	}

	i := FromImage(src, 84, 48)
	if !i.BitAt(40, 2) {
		t.Error("expected top half to be on")
	}
	if i.BitAt(40, 45) {
		t.Error("expected bottom half to be off")
	}
}

func TestFromImageEmpty(t *testing.T) {
	i := FromImage(nil, 84, 48)
	for j, b := range i.Pix {
		if b != 0 {
			t.Fatalf("byte %d is %#02x", j, b)
		}
	}
}
