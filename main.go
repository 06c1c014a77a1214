package main

import (
	"flag"
	"fmt"
	"os"

	"mzl/internal/color"
	"mzl/internal/platform"
	"mzl/internal/window"

	"go.uber.org/zap"
)

func init() {
	platform.LockMainThread()
}

func main() {
	cfg := window.DefaultConfig()

	flag.IntVar(&cfg.Width, "width", cfg.Width, "Window width in pixels")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "Window height in pixels")
	flag.StringVar(&cfg.Title, "title", cfg.Title, "Window title")
	flag.BoolVar(&cfg.Hints.Resizable, "resizable", cfg.Hints.Resizable, "Allow resizing the window")
	colorName := flag.String("color", "black", "Clear color (red|green|blue|yellow|cyan|magenta|black|white)")
	debug := flag.Bool("debug", false, "Development logging")
	flag.Parse()

	log, err := newLogger(*debug)
	if err != nil {
		fmt.Printf("Init logger error: %s\n", err.Error())
		os.Exit(1)
	}

	err = run(cfg, *colorName, log)
	if err != nil {
		log.Error("Run", zap.Error(err), zap.Stringer("status", window.StatusOf(err)))
	}
	log.Sync()
	if err != nil {
		os.Exit(1)
	}
}

func run(cfg window.Config, colorName string, log *zap.Logger) (err error) {
	const op = "main.run"

	bg, ok := color.Named(colorName)
	if !ok {
		return fmt.Errorf("%s: unknown color %q", op, colorName)
	}

	ctx, err := window.Create(platform.New(true), cfg, log)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		if cerr := ctx.Cleanup(); cerr != nil && err == nil {
			err = fmt.Errorf("%s: %w", op, cerr)
		}
	}()

	if err := ctx.SetColor(color.White.Color()); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	for {
		closing, err := ctx.ShouldClose()
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		if closing {
			return nil
		}

		if err := ctx.Clear(bg); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		if err := ctx.SwapBuffers(); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		platform.PollEvents()
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
