package layout

import (
	"image"
	"testing"
)

func TestNormalize(t *testing.T) {
	got := Normalize(Box{Min: Pt(10, 8), Max: Pt(2, 4)})
	want := Box{Min: Pt(2, 4), Max: Pt(10, 8)}
	if got != want {
		t.Fatalf("Normalize = %+v, want %+v", got, want)
	}
}

func TestInset(t *testing.T) {
	box := Box{Min: Pt(0, 0), Max: Pt(10, 10)}
	if got, want := Inset(box, 2), (Box{Min: Pt(2, 2), Max: Pt(8, 8)}); got != want {
		t.Errorf("Inset(2) = %+v, want %+v", got, want)
	}
	if got, want := Inset(box, -1), (Box{Min: Pt(-1, -1), Max: Pt(11, 11)}); got != want {
		t.Errorf("Inset(-1) = %+v, want %+v", got, want)
	}
}

func TestCenterAndRadii(t *testing.T) {
	box := BoxAround(Pt(60, 55), 6, 4)
	if c := box.Center(); c != Pt(60, 55) {
		t.Errorf("Center = %+v", c)
	}
	rx, ry := box.Radii()
	if rx != 6 || ry != 4 {
		t.Errorf("Radii = (%v,%v), want (6,4)", rx, ry)
	}
}

func TestContains(t *testing.T) {
	box := Box{Min: Pt(0, 0), Max: Pt(4, 4)}
	for _, p := range []Point{Pt(0, 0), Pt(4, 4), Pt(2, 3)} {
		if !box.Contains(p) {
			t.Errorf("Contains(%+v) = false", p)
		}
	}
	if box.Contains(Pt(4.01, 2)) {
		t.Error("Contains(4.01,2) = true")
	}
}

func TestBoundsOf(t *testing.T) {
	if got := BoundsOf(nil); got != (Box{}) {
		t.Errorf("BoundsOf(nil) = %+v", got)
	}
	got := BoundsOf([]Point{Pt(55, 15), Pt(50, 5), Pt(65, 5)})
	want := Box{Min: Pt(50, 5), Max: Pt(65, 15)}
	if got != want {
		t.Errorf("BoundsOf = %+v, want %+v", got, want)
	}
}

func TestPixels(t *testing.T) {
	box := Box{Min: Pt(1.5, 2.25), Max: Pt(3.1, 4)}
	if got, want := box.Pixels(), image.Rect(1, 2, 4, 4); got != want {
		t.Errorf("Pixels = %v, want %v", got, want)
	}
}

func TestTransform(t *testing.T) {
	tr := Transform{Origin: Pt(96, 96), Scale: 1.6}
	if got := tr.Point(Pt(-10, 5)); got != Pt(80, 104) {
		t.Errorf("Point = %+v, want (80,104)", got)
	}
	if got := tr.Length(5); got != 8 {
		t.Errorf("Length(5) = %v, want 8", got)
	}
	got := tr.Box(Box{Min: Pt(10, 10), Max: Pt(-10, -10)})
	want := Box{Min: Pt(80, 80), Max: Pt(112, 112)}
	if got != want {
		t.Errorf("Box = %+v, want %+v", got, want)
	}
}
