package app

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/focusme/tomato-icons/internal/render"
)

// Target is one icon file to produce.
type Target struct {
	Name string
	Size int
}

// DefaultTargets are the PWA icons written by a plain run.
var DefaultTargets = []Target{
	{Name: "icon-192.png", Size: 192},
	{Name: "icon-512.png", Size: 512},
}

// App writes each Target as a PNG rendered by Backend.
type App struct {
	Backend render.Backend
	OutDir  string
	Targets []Target
	Logger  Logger

	// Out receives the human-readable progress lines.
	Out io.Writer
}

// New returns an App for the default targets writing into outDir.
func New(backend render.Backend, outDir string) *App {
	if outDir == "" {
		outDir = "."
	}
	return &App{
		Backend: backend,
		OutDir:  outDir,
		Targets: DefaultTargets,
		Logger:  NoopLogger{},
		Out:     os.Stdout,
	}
}

// Run renders and writes every target in order. It stops at the first
// failure; files written before it are left in place.
func (app *App) Run(ctx context.Context) error {
	if app.Backend == nil {
		return fmt.Errorf("%w: no backend configured", render.ErrMissingCapability)
	}
	app.Logger.Infof("app", "backend=%s out=%s targets=%d", app.Backend.Name(), app.OutDir, len(app.Targets))

	for _, target := range app.Targets {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprintf(app.Out, "Generating %s...\n", target.Name)
		if err := app.generate(target); err != nil {
			app.Logger.Errorf("app", "%s: %v", target.Name, err)
			return err
		}
		fmt.Fprintf(app.Out, "✓ Created %s\n", target.Name)
	}

	fmt.Fprintln(app.Out)
	fmt.Fprintln(app.Out, "✅ Icons generated successfully!")
	fmt.Fprintln(app.Out, "Files created:")
	for _, target := range app.Targets {
		fmt.Fprintf(app.Out, "  - %s (%dx%d)\n", target.Name, target.Size, target.Size)
	}
	return nil
}

func (app *App) generate(target Target) error {
	img, err := render.Render(app.Backend, target.Size)
	if err != nil {
		return fmt.Errorf("render %s: %w", target.Name, err)
	}
	path := filepath.Join(app.OutDir, target.Name)
	if err := writePNG(path, img); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	app.Logger.Infof("app", "wrote %s (%dx%d)", path, img.Bounds().Dx(), img.Bounds().Dy())
	return nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
