package render

import (
	"fmt"
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/focusme/tomato-icons/internal/render/layout"
)

func init() { Register(VectorBackend{}) }

// kappa places cubic control points for a quarter ellipse.
const kappa = 0.5522847498307936

// VectorBackend rasterizes with golang.org/x/image/vector and composites
// layers with golang.org/x/image/draw.
type VectorBackend struct{}

func (VectorBackend) Name() string { return "vector" }

func (VectorBackend) NewCanvas(size int) (Canvas, error) {
	if size <= 0 {
		return nil, fmt.Errorf("vector canvas size %d", size)
	}
	base := image.NewRGBA(image.Rect(0, 0, size, size))
	return &vectorCanvas{
		size:   size,
		layers: []*image.RGBA{base},
		raster: vector.NewRasterizer(size, size),
	}, nil
}

type vectorCanvas struct {
	size   int
	layers []*image.RGBA
	raster *vector.Rasterizer
}

func (c *vectorCanvas) Size() int { return c.size }

func (c *vectorCanvas) target() *image.RGBA { return c.layers[len(c.layers)-1] }

func (c *vectorCanvas) FillEllipse(box layout.Box, fill color.NRGBA) error {
	center := box.Center()
	rx, ry := box.Radii()
	x, y := float32(center.X), float32(center.Y)
	ox, oy := float32(rx*kappa), float32(ry*kappa)
	fx, fy := float32(rx), float32(ry)

	c.raster.Reset(c.size, c.size)
	c.raster.MoveTo(x+fx, y)
	c.raster.CubeTo(x+fx, y+oy, x+ox, y+fy, x, y+fy)
	c.raster.CubeTo(x-ox, y+fy, x-fx, y+oy, x-fx, y)
	c.raster.CubeTo(x-fx, y-oy, x-ox, y-fy, x, y-fy)
	c.raster.CubeTo(x+ox, y-fy, x+fx, y-oy, x+fx, y)
	c.raster.ClosePath()
	c.fill(fill)
	return nil
}

func (c *vectorCanvas) FillPolygon(pts []layout.Point, fill color.NRGBA) error {
	if len(pts) < 3 {
		return fmt.Errorf("polygon needs at least 3 points, got %d", len(pts))
	}
	c.raster.Reset(c.size, c.size)
	c.raster.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		c.raster.LineTo(float32(p.X), float32(p.Y))
	}
	c.raster.ClosePath()
	c.fill(fill)
	return nil
}

func (c *vectorCanvas) fill(fill color.NRGBA) {
	dst := c.target()
	c.raster.DrawOp = xdraw.Over
	c.raster.Draw(dst, dst.Bounds(), image.NewUniform(fill), image.Point{})
}

func (c *vectorCanvas) PushLayer() {
	c.layers = append(c.layers, image.NewRGBA(image.Rect(0, 0, c.size, c.size)))
}

func (c *vectorCanvas) PopLayer() {
	if len(c.layers) < 2 {
		return
	}
	top := c.target()
	c.layers = c.layers[:len(c.layers)-1]
	parent := c.target()
	xdraw.Draw(parent, parent.Bounds(), top, image.Point{}, xdraw.Over)
}

func (c *vectorCanvas) Image() (*image.RGBA, error) {
	for len(c.layers) > 1 {
		c.PopLayer()
	}
	return c.layers[0], nil
}
