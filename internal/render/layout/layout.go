package layout

import (
	"image"
	"math"
)

// Point is a position in canvas space.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Box is an axis-aligned bounding box with float coordinates.
// Min is the top-left corner and Max the bottom-right.
type Box struct {
	Min, Max Point
}

// BoxAround returns the box of half-extent (rx,ry) centered on c.
func BoxAround(c Point, rx, ry float64) Box {
	return Box{Min: Pt(c.X-rx, c.Y-ry), Max: Pt(c.X+rx, c.Y+ry)}
}

// Normalize ensures Min is <= Max on both axes.
func Normalize(box Box) Box {
	if box.Min.X > box.Max.X {
		box.Min.X, box.Max.X = box.Max.X, box.Min.X
	}
	if box.Min.Y > box.Max.Y {
		box.Min.Y, box.Max.Y = box.Max.Y, box.Min.Y
	}
	return box
}

// Inset shrinks box by padding on all sides. A negative padding grows it.
func Inset(box Box, padding float64) Box {
	box = Normalize(box)
	out := Box{
		Min: Pt(box.Min.X+padding, box.Min.Y+padding),
		Max: Pt(box.Max.X-padding, box.Max.Y-padding),
	}
	return Normalize(out)
}

// Center returns the midpoint of box.
func (box Box) Center() Point {
	return Pt((box.Min.X+box.Max.X)/2, (box.Min.Y+box.Max.Y)/2)
}

// Radii returns the half-width and half-height of box.
func (box Box) Radii() (rx, ry float64) {
	box = Normalize(box)
	return (box.Max.X - box.Min.X) / 2, (box.Max.Y - box.Min.Y) / 2
}

// Contains reports whether p lies inside box, edges included.
func (box Box) Contains(p Point) bool {
	box = Normalize(box)
	return p.X >= box.Min.X && p.X <= box.Max.X && p.Y >= box.Min.Y && p.Y <= box.Max.Y
}

// Union returns the smallest box covering both a and b.
func Union(a, b Box) Box {
	a, b = Normalize(a), Normalize(b)
	return Box{
		Min: Pt(math.Min(a.Min.X, b.Min.X), math.Min(a.Min.Y, b.Min.Y)),
		Max: Pt(math.Max(a.Max.X, b.Max.X), math.Max(a.Max.Y, b.Max.Y)),
	}
}

// BoundsOf returns the box enclosing all points. It returns the zero Box
// when pts is empty.
func BoundsOf(pts []Point) Box {
	if len(pts) == 0 {
		return Box{}
	}
	box := Box{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		box = Union(box, Box{Min: p, Max: p})
	}
	return box
}

// Pixels returns the integer rectangle of all pixels box touches.
func (box Box) Pixels() image.Rectangle {
	box = Normalize(box)
	return image.Rect(
		int(math.Floor(box.Min.X)), int(math.Floor(box.Min.Y)),
		int(math.Ceil(box.Max.X)), int(math.Ceil(box.Max.Y)),
	)
}

// Transform maps points from design space into canvas space: it scales
// by Scale and then translates by Origin.
type Transform struct {
	Origin Point
	Scale  float64
}

// Point maps a single design-space point.
func (t Transform) Point(p Point) Point {
	return Pt(t.Origin.X+p.X*t.Scale, t.Origin.Y+p.Y*t.Scale)
}

// Box maps a design-space box.
func (t Transform) Box(box Box) Box {
	return Normalize(Box{Min: t.Point(box.Min), Max: t.Point(box.Max)})
}

// Length scales a design-space distance.
func (t Transform) Length(d float64) float64 { return d * t.Scale }
