package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gogpu/gg"

	"github.com/focusme/tomato-icons/internal/app"
	"github.com/focusme/tomato-icons/internal/render"
)

const debugLogPath = "./tomato-icons-debug.log"

func main() {
	os.Exit(run())
}

func run() int {
	backendName := flag.String("backend", render.DefaultBackend, "drawing backend: "+strings.Join(render.Backends(), " | "))
	outDir := flag.String("out", ".", "directory the icons are written to")
	debug := flag.Bool("debug", false, "enable debug logging to "+debugLogPath)
	stdioLog := flag.String("stdio-log", "", "redirect stdout+stderr (including panics) to this file; also configurable via TOMATO_ICONS_STDIO_LOG")
	flag.Parse()

	logPath := *stdioLog
	if logPath == "" {
		logPath = os.Getenv("TOMATO_ICONS_STDIO_LOG")
	}
	if logPath != "" {
		if err := redirectStdIO(logPath); err != nil {
			fmt.Println("stdio log redirect error:", err)
		}
	}

	var logger app.Logger = app.NoopLogger{}
	if *debug {
		f, err := os.OpenFile(debugLogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err == nil {
			defer f.Close()
			logger = app.NewFileLogger(f)
			logger.Infof("main", "debug logging enabled")
			// Route the rasterizer's own diagnostics into the same file.
			gg.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
		} else {
			fmt.Println("debug log open error:", err)
		}
	}

	backend, err := render.Lookup(*backendName)
	if err == nil {
		err = render.Probe(backend)
	}
	if err != nil {
		logger.Errorf("main", "capability check failed: %v", err)
		fmt.Println(err)
		fmt.Println("Drawing support is not available. Install it with: go get github.com/gogpu/gg")
		fmt.Println("or pick another backend with -backend (" + strings.Join(render.Backends(), ", ") + ")")
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := app.New(backend, *outDir)
	a.Logger = logger
	if err := a.Run(ctx); err != nil {
		fmt.Println("generate error:", err)
		return 1
	}
	return 0
}
