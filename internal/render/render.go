package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"sort"
	"sync"

	"github.com/focusme/tomato-icons/internal/icon"
	"github.com/focusme/tomato-icons/internal/render/layout"
)

// ErrMissingCapability is returned when the requested drawing backend is
// not available or fails its probe.
var ErrMissingCapability = errors.New("render: drawing capability unavailable")

// Canvas is an abstraction the backends provide to the renderer to fill
// primitives without exposing their rasterizer.
type Canvas interface {
	// Size returns the canvas edge length in pixels.
	Size() int

	FillEllipse(box layout.Box, fill color.NRGBA) error
	FillPolygon(pts []layout.Point, fill color.NRGBA) error

	// PushLayer starts drawing onto a fresh transparent layer; PopLayer
	// composites it over the layer below with alpha-over.
	PushLayer()
	PopLayer()

	// Image composites any open layers and returns the raster.
	Image() (*image.RGBA, error)
}

// Backend creates canvases. Implementations register themselves with
// Register from an init function.
type Backend interface {
	Name() string
	NewCanvas(size int) (Canvas, error)
}

// DefaultBackend is the backend used when none is requested.
const DefaultBackend = "gg"

var (
	registryMu sync.RWMutex
	registry   = map[string]Backend{}
)

// Register makes a backend available by name. Registering the same name
// twice replaces the earlier backend.
func Register(b Backend) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[b.Name()] = b
}

// Lookup returns the backend registered under name.
func Lookup(name string) (Backend, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	b, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: no backend %q", ErrMissingCapability, name)
	}
	return b, nil
}

// Backends lists the registered backend names in sorted order.
func Backends() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Probe checks that the backend can actually rasterize by filling a test
// ellipse on a tiny canvas. Panics inside the backend are reported as
// ErrMissingCapability.
func Probe(b Backend) (err error) {
	if b == nil {
		return fmt.Errorf("%w: nil backend", ErrMissingCapability)
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %s probe panicked: %v", ErrMissingCapability, b.Name(), r)
		}
	}()

	const probeSize = 4
	c, err := b.NewCanvas(probeSize)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMissingCapability, b.Name(), err)
	}
	box := layout.Inset(layout.Box{Max: layout.Pt(probeSize, probeSize)}, 0.5)
	if err := c.FillEllipse(box, icon.BodyRed); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMissingCapability, b.Name(), err)
	}
	img, err := c.Image()
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMissingCapability, b.Name(), err)
	}
	if img == nil || img.Bounds().Dx() != probeSize || img.RGBAAt(probeSize/2, probeSize/2).A == 0 {
		return fmt.Errorf("%w: %s produced no pixels", ErrMissingCapability, b.Name())
	}
	return nil
}

// Render draws the tomato icon at size x size using backend b.
func Render(b Backend, size int) (*image.RGBA, error) {
	shapes, err := icon.Tomato(size)
	if err != nil {
		return nil, err
	}
	c, err := b.NewCanvas(size)
	if err != nil {
		return nil, fmt.Errorf("%s canvas: %w", b.Name(), err)
	}
	if err := Draw(c, shapes); err != nil {
		return nil, err
	}
	img, err := c.Image()
	if err != nil {
		return nil, fmt.Errorf("%s image: %w", b.Name(), err)
	}
	return img, nil
}

// Draw fills shapes onto c in order. Consecutive shapes on the highlight
// layer are drawn onto one pushed layer that is composited when the run
// ends or the list is exhausted. A shape that touches no canvas pixel is
// an error.
func Draw(c Canvas, shapes []icon.Shape) error {
	canvas := image.Rect(0, 0, c.Size(), c.Size())
	onHighlight := false
	for _, s := range shapes {
		if px := s.Bounds().Pixels(); !px.Overlaps(canvas) {
			return fmt.Errorf("draw %s: bounds %v outside canvas %v", s.Name, px, canvas)
		}
		switch {
		case s.Layer == icon.Highlight && !onHighlight:
			c.PushLayer()
			onHighlight = true
		case s.Layer != icon.Highlight && onHighlight:
			c.PopLayer()
			onHighlight = false
		}

		var err error
		switch s.Kind {
		case icon.Ellipse:
			err = c.FillEllipse(s.Box, s.Fill)
		case icon.Polygon:
			err = c.FillPolygon(s.Points, s.Fill)
		default:
			err = fmt.Errorf("unknown shape kind %v", s.Kind)
		}
		if err != nil {
			return fmt.Errorf("draw %s: %w", s.Name, err)
		}
	}
	if onHighlight {
		c.PopLayer()
	}
	return nil
}
