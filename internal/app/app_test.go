package app

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/focusme/tomato-icons/internal/icon"
	"github.com/focusme/tomato-icons/internal/render"
)

func newTestApp(t *testing.T, backendName string) (*App, *bytes.Buffer) {
	t.Helper()
	backend, err := render.Lookup(backendName)
	if err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	a := New(backend, t.TempDir())
	a.Out = &out
	return a, &out
}

func TestRunWritesIcons(t *testing.T) {
	for _, name := range render.Backends() {
		a, out := newTestApp(t, name)
		if err := a.Run(context.Background()); err != nil {
			t.Fatalf("%s: Run: %v", name, err)
		}

		for _, target := range DefaultTargets {
			f, err := os.Open(filepath.Join(a.OutDir, target.Name))
			if err != nil {
				t.Fatalf("%s: %v", name, err)
			}
			img, err := png.Decode(f)
			f.Close()
			if err != nil {
				t.Fatalf("%s: decode %s: %v", name, target.Name, err)
			}
			b := img.Bounds()
			if b.Dx() != target.Size || b.Dy() != target.Size {
				t.Errorf("%s: %s is %dx%d, want %dx%d", name, target.Name, b.Dx(), b.Dy(), target.Size, target.Size)
			}
			_, _, _, alpha := img.At(target.Size/2, target.Size/2).RGBA()
			if alpha != 0xFFFF {
				t.Errorf("%s: %s center alpha = %d, want opaque", name, target.Name, alpha)
			}
		}

		for _, want := range []string{
			"Generating icon-192.png...",
			"✓ Created icon-192.png",
			"Generating icon-512.png...",
			"✓ Created icon-512.png",
			"  - icon-512.png (512x512)",
		} {
			if !strings.Contains(out.String(), want) {
				t.Errorf("%s: output missing %q:\n%s", name, want, out.String())
			}
		}
	}
}

func TestRunIsIdempotent(t *testing.T) {
	a, _ := newTestApp(t, render.DefaultBackend)
	if err := a.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	first := readAll(t, a.OutDir)
	if err := a.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	second := readAll(t, a.OutDir)
	for name, data := range first {
		if !bytes.Equal(data, second[name]) {
			t.Errorf("%s changed between runs", name)
		}
	}
}

func TestRunInvalidTarget(t *testing.T) {
	a, _ := newTestApp(t, "vector")
	a.Targets = []Target{{Name: "icon-0.png", Size: 0}}
	err := a.Run(context.Background())
	if !errors.Is(err, icon.ErrInvalidSize) {
		t.Fatalf("Run err = %v, want ErrInvalidSize", err)
	}
	if _, statErr := os.Stat(filepath.Join(a.OutDir, "icon-0.png")); !os.IsNotExist(statErr) {
		t.Errorf("icon-0.png should not exist, stat err = %v", statErr)
	}
}

func TestRunWithoutBackend(t *testing.T) {
	a := New(nil, t.TempDir())
	a.Out = &bytes.Buffer{}
	if err := a.Run(context.Background()); !errors.Is(err, render.ErrMissingCapability) {
		t.Fatalf("Run err = %v, want ErrMissingCapability", err)
	}
}

func TestRunCancelled(t *testing.T) {
	a, out := newTestApp(t, render.DefaultBackend)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := a.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("Run err = %v, want context.Canceled", err)
	}
	if out.Len() != 0 {
		t.Errorf("unexpected output after cancel: %q", out.String())
	}
}

func TestRunLogs(t *testing.T) {
	a, _ := newTestApp(t, "vector")
	var logBuf bytes.Buffer
	a.Logger = NewFileLogger(&logBuf)
	a.Targets = []Target{{Name: "small.png", Size: 32}}
	if err := a.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	log := logBuf.String()
	if !strings.Contains(log, "[INFO] app: backend=vector") {
		t.Errorf("log missing startup line:\n%s", log)
	}
	if !strings.Contains(log, "small.png (32x32)") {
		t.Errorf("log missing write line:\n%s", log)
	}
}

func readAll(t *testing.T, dir string) map[string][]byte {
	t.Helper()
	out := map[string][]byte{}
	for _, target := range DefaultTargets {
		data, err := os.ReadFile(filepath.Join(dir, target.Name))
		if err != nil {
			t.Fatal(err)
		}
		out[target.Name] = data
	}
	return out
}
