package pixel

import (
	"image"
	"testing"
)

func TestRegion(t *testing.T) {
	r := NewRegion(84, 48)
	if !r.Empty() {
		t.Fatalf("expected new region to be empty, got %s", r)
	}
	if r.XMin != 83 || r.XMax != 0 || r.YMin != 47 || r.YMax != 0 {
		t.Errorf("unexpected empty sentinel %+v", *r)
	}
	if v := r.Rect(); v != (image.Rectangle{}) {
		t.Errorf("expected zero rectangle, got %s", v)
	}

	r.Merge(2, 3, 10, 10)
	r.Merge(20, 1, 25, 5)
	if r.Empty() {
		t.Fatal("expected region not to be empty")
	}
	if r.XMin != 2 || r.YMin != 1 || r.XMax != 25 || r.YMax != 10 {
		t.Errorf("expected (2,1)-(25,10), got %s", r)
	}
	if v, want := r.Rect(), image.Rect(2, 1, 25, 11); v != want {
		t.Errorf("expected %s, got %s", want, v)
	}

	r.Reset()
	if !r.Empty() {
		t.Errorf("expected region to be empty after reset, got %s", r)
	}
}

func TestRegionClamp(t *testing.T) {
	for _, test := range []struct {
		name                   string
		xmin, ymin, xmax, ymax int
		want                   image.Rectangle
	}{
		{"inside", 10, 9, 15, 9, image.Rect(10, 9, 15, 10)},
		{"negative", -5, -3, 4, 4, image.Rect(0, 0, 4, 5)},
		{"past edges", 80, 40, 200, 100, image.Rect(80, 40, 84, 48)},
		{"everything", -100, -100, 1000, 1000, image.Rect(0, 0, 84, 48)},
		{"right of panel", 90, 0, 95, 0, image.Rectangle{}},
		{"left of panel", -10, 5, 0, 8, image.Rectangle{}},
		{"above panel", 10, -10, 20, -5, image.Rectangle{}},
		{"below panel", 10, 48, 20, 60, image.Rectangle{}},
		{"top left corner", -10, -10, -5, -5, image.Rectangle{}},
	} {
		t.Run(test.name, func(t *testing.T) {
			r := NewRegion(84, 48)
			r.Merge(test.xmin, test.ymin, test.xmax, test.ymax)
			if empty := test.want.Empty(); r.Empty() != empty {
				t.Errorf("expected empty %t, got %s", empty, r)
			}
			if v := r.Rect(); v != test.want {
				t.Errorf("expected %s, got %s", test.want, v)
			}
		})
	}
}

func TestRegionMergeRect(t *testing.T) {
	r := NewRegion(84, 48)
	r.MergeRect(image.Rectangle{})
	if !r.Empty() {
		t.Fatalf("expected empty rectangle to be ignored, got %s", r)
	}
	r.MergeRect(image.Rect(-4, 44, 3, 52))
	if v, want := r.Rect(), image.Rect(0, 44, 3, 48); v != want {
		t.Errorf("expected %s, got %s", want, v)
	}

	r.Reset()
	r.MarkAll()
	if v, want := r.Rect(), image.Rect(0, 0, 84, 48); v != want {
		t.Errorf("expected %s, got %s", want, v)
	}
}
