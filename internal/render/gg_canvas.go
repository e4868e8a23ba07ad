package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/gg"
	xdraw "golang.org/x/image/draw"

	"github.com/focusme/tomato-icons/internal/render/layout"
)

func init() { Register(GGBackend{}) }

// GGBackend rasterizes with github.com/gogpu/gg on the CPU.
type GGBackend struct{}

func (GGBackend) Name() string { return "gg" }

func (GGBackend) NewCanvas(size int) (Canvas, error) {
	if size <= 0 {
		return nil, fmt.Errorf("gg canvas size %d", size)
	}
	return &ggCanvas{size: size, layers: []*gg.Context{newGGContext(size)}}, nil
}

func newGGContext(size int) *gg.Context {
	dc := gg.NewContext(size, size)
	dc.Clear()
	return dc
}

// ggCanvas keeps one gg context per layer. gg's own PushLayer/PopLayer
// composite already-premultiplied pixels with alpha applied a second
// time, so layers are flattened here with x/image/draw instead.
type ggCanvas struct {
	size   int
	layers []*gg.Context
	err    error
}

func (c *ggCanvas) Size() int { return c.size }

func (c *ggCanvas) top() *gg.Context { return c.layers[len(c.layers)-1] }

// setFill passes straight (non-premultiplied) components; gg.FromColor
// would feed it premultiplied values.
func (c *ggCanvas) setFill(dc *gg.Context, fill color.NRGBA) {
	dc.SetRGBA(
		float64(fill.R)/0xFF,
		float64(fill.G)/0xFF,
		float64(fill.B)/0xFF,
		float64(fill.A)/0xFF,
	)
}

func (c *ggCanvas) FillEllipse(box layout.Box, fill color.NRGBA) error {
	dc := c.top()
	center := box.Center()
	rx, ry := box.Radii()
	c.setFill(dc, fill)
	dc.DrawEllipse(center.X, center.Y, rx, ry)
	return dc.Fill()
}

func (c *ggCanvas) FillPolygon(pts []layout.Point, fill color.NRGBA) error {
	if len(pts) < 3 {
		return fmt.Errorf("polygon needs at least 3 points, got %d", len(pts))
	}
	dc := c.top()
	c.setFill(dc, fill)
	dc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		dc.LineTo(p.X, p.Y)
	}
	dc.ClosePath()
	return dc.Fill()
}

func (c *ggCanvas) PushLayer() {
	c.layers = append(c.layers, newGGContext(c.size))
}

// PopLayer composites the top layer over its parent with alpha-over and
// writes the result back into the parent's pixmap. Errors are kept for Image.
func (c *ggCanvas) PopLayer() {
	if len(c.layers) < 2 {
		return
	}
	src, err := flatten(c.top())
	c.layers = c.layers[:len(c.layers)-1]
	if err != nil {
		c.keepErr(err)
		return
	}
	dst, err := flatten(c.top())
	if err != nil {
		c.keepErr(err)
		return
	}
	xdraw.Draw(dst, dst.Bounds(), src, image.Point{}, xdraw.Over)
	copy(c.top().ResizeTarget().Data(), dst.Pix)
}

func (c *ggCanvas) keepErr(err error) {
	if c.err == nil {
		c.err = err
	}
}

func (c *ggCanvas) Image() (*image.RGBA, error) {
	for len(c.layers) > 1 {
		c.PopLayer()
	}
	if c.err != nil {
		return nil, c.err
	}
	return flatten(c.layers[0])
}

// flatten flushes pending GPU work and returns the context's pixels.
func flatten(dc *gg.Context) (*image.RGBA, error) {
	if err := dc.FlushGPU(); err != nil {
		return nil, fmt.Errorf("gg flush: %w", err)
	}
	img := dc.Image()
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba, nil
	}
	out := image.NewRGBA(img.Bounds())
	xdraw.Draw(out, out.Bounds(), img, img.Bounds().Min, xdraw.Src)
	return out, nil
}
