// Package icon describes the tomato artwork as an ordered list of filled
// shapes scaled from a 120x120 design.
package icon

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/focusme/tomato-icons/internal/render/layout"
)

// ErrInvalidSize is returned when the requested icon size is not positive.
var ErrInvalidSize = errors.New("icon: size must be a positive integer")

// Kind is the geometry of a Shape.
type Kind int

const (
	Ellipse Kind = iota
	Polygon
)

func (k Kind) String() string {
	switch k {
	case Ellipse:
		return "ellipse"
	case Polygon:
		return "polygon"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Layer selects the raster a shape is drawn on. Highlight shapes go to a
// separate transparent layer that is alpha-composited over Base last.
type Layer int

const (
	Base Layer = iota
	Highlight
)

// Shape is a single fill instruction. Ellipses use Box as their bounding
// box; polygons use Points in order.
type Shape struct {
	Name   string
	Kind   Kind
	Box    layout.Box
	Points []layout.Point
	Fill   color.NRGBA
	Layer  Layer
}

// Bounds returns the canvas-space box covered by the shape.
func (s Shape) Bounds() layout.Box {
	if s.Kind == Polygon {
		return layout.BoundsOf(s.Points)
	}
	return s.Box
}

// Scale returns the ratio between size and the design size.
func Scale(size int) float64 { return float64(size) / DesignSize }

// Tomato returns the draw list for a size x size icon. Later shapes
// overlay earlier ones.
func Tomato(size int) ([]Shape, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	half := float64(size / 2)
	t := layout.Transform{Origin: layout.Pt(half, half), Scale: Scale(size)}
	b := &builder{t: t}

	// Body and the shading overlay.
	b.ellipseBox("body", layout.Box{Min: layout.Pt(-42, -35), Max: layout.Pt(42, 50)}, BodyRed)
	b.ellipseBox("body-shade", layout.Box{Min: layout.Pt(-42, -40), Max: layout.Pt(42, 45)}, ShadeRed)

	// Eyes, pupils, glints.
	const eyeY = -5.0
	b.ellipse("eye-left", layout.Pt(-12, eyeY), 6, 6, White)
	b.ellipse("eye-right", layout.Pt(12, eyeY), 6, 6, White)
	b.ellipse("pupil-left", layout.Pt(-12, eyeY), 3.5, 3.5, Ink)
	b.ellipse("pupil-right", layout.Pt(12, eyeY), 3.5, 3.5, Ink)
	b.ellipse("eye-glint-left", layout.Pt(-11, eyeY-7), 1.5, 2, White)
	b.ellipse("eye-glint-right", layout.Pt(13, eyeY-7), 1.5, 2, White)

	// Smile: dots along y = 7 + 0.1*i^2.
	const smileY = 7.0
	for i := -8; i <= 8; i++ {
		x := float64(i)
		y := smileY + x*x*0.1
		b.ellipse(fmt.Sprintf("smile-dot%+d", i), layout.Pt(x, y), 1.5, 1.5, Ink)
	}

	b.ellipse("blush-left", layout.Pt(-22, 3), 6, 5, Blush)
	b.ellipse("blush-right", layout.Pt(22, 3), 6, 5, Blush)

	b.polygon("stem", StemGreen, layout.Pt(-5, -45), layout.Pt(-10, -55), layout.Pt(5, -55))
	b.ellipseBox("stem-base", layout.Box{Min: layout.Pt(-7, -57.5), Max: layout.Pt(3, -52.5)}, StemDark)
	b.ellipse("leaf", layout.Pt(7, -52), 3, 6, StemGreen)

	b.layer = Highlight
	b.ellipse("gloss", layout.Pt(-10, -15), 12, 20, Gloss)

	return b.shapes, nil
}

type builder struct {
	t      layout.Transform
	layer  Layer
	shapes []Shape
}

func (b *builder) ellipseBox(name string, box layout.Box, fill color.NRGBA) {
	b.shapes = append(b.shapes, Shape{
		Name:  name,
		Kind:  Ellipse,
		Box:   b.t.Box(box),
		Fill:  fill,
		Layer: b.layer,
	})
}

// ellipse scales the center offset and the radii independently so the
// box edges come out as center +/- radius*scale.
func (b *builder) ellipse(name string, c layout.Point, rx, ry float64, fill color.NRGBA) {
	b.shapes = append(b.shapes, Shape{
		Name:  name,
		Kind:  Ellipse,
		Box:   layout.BoxAround(b.t.Point(c), b.t.Length(rx), b.t.Length(ry)),
		Fill:  fill,
		Layer: b.layer,
	})
}

func (b *builder) polygon(name string, fill color.NRGBA, pts ...layout.Point) {
	scaled := make([]layout.Point, len(pts))
	for i, p := range pts {
		scaled[i] = b.t.Point(p)
	}
	b.shapes = append(b.shapes, Shape{
		Name:   name,
		Kind:   Polygon,
		Points: scaled,
		Fill:   fill,
		Layer:  b.layer,
	})
}
