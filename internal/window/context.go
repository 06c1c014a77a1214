package window

import (
	"fmt"
	"sync"

	"mzl/internal/color"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Only one Context may be live per process: the windowing library and the GL
// loader keep global state.
var (
	guardMu sync.Mutex
	inUse   bool
)

func acquireGuard() bool {
	guardMu.Lock()
	defer guardMu.Unlock()
	if inUse {
		return false
	}
	inUse = true
	return true
}

func releaseGuard() {
	guardMu.Lock()
	inUse = false
	guardMu.Unlock()
}

// Context owns one window and its rendering context. It must be used from the
// goroutine, locked to its OS thread, that called Create.
type Context struct {
	backend   Backend
	handle    Handle
	cfg       Config
	destroyed bool

	log *zap.Logger
}

// Create initializes the backend, opens a window and loads GL against it.
// On failure every step that already succeeded is undone and no Context is returned.
func Create(b Backend, cfg Config, log *zap.Logger) (*Context, error) {
	const op = "window.Create"

	if log == nil {
		log = zap.NewNop()
	}
	if b == nil {
		return nil, fail(op, GeneralError, fmt.Errorf("%w: nil backend", ErrInvalidArgument))
	}

	if err := cfg.validate(); err != nil {
		for _, e := range multierr.Errors(err) {
			log.Warn("Assertion failed", zap.Error(e))
		}
		return nil, fail(op, GeneralError, err)
	}

	if !acquireGuard() {
		return nil, fail(op, GeneralError, ErrContextLive)
	}

	var undo []func()
	done := false
	defer func() {
		if done {
			return
		}
		for i := len(undo) - 1; i >= 0; i-- {
			undo[i]()
		}
	}()
	undo = append(undo, releaseGuard)

	if err := b.Init(); err != nil {
		log.Error("Init windowing", zap.Error(err))
		return nil, fail(op, GeneralError, fmt.Errorf("init windowing: %w", err))
	}
	undo = append(undo, b.Terminate)

	c := &Context{backend: b, cfg: cfg, log: log}

	h, err := b.CreateWindow(cfg.Width, cfg.Height, cfg.Title, cfg.Hints)
	if err != nil {
		log.Error("Create window", zap.Error(err))
		return nil, fail(op, WindowError, fmt.Errorf("create window: %w", err))
	}
	if h == nil {
		log.Error("Create window", zap.Error(ErrNoWindow))
		return nil, fail(op, WindowError, fmt.Errorf("create window: %w", ErrNoWindow))
	}
	undo = append(undo, h.Destroy)

	h.MakeContextCurrent()

	if err := b.LoadGL(); err != nil {
		log.Error("Load GL", zap.Error(err))
		return nil, fail(op, GraphicsError, fmt.Errorf("load gl: %w", err))
	}

	c.handle = h
	done = true

	log.Info("Window created",
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.String("title", cfg.Title))

	return c, nil
}

func (c *Context) check(op string) error {
	if c == nil || (c.handle == nil && !c.destroyed) {
		return fail(op, GeneralError, ErrNilContext)
	}
	if c.destroyed {
		return fail(op, GeneralError, ErrDestroyed)
	}
	return nil
}

// ShouldClose reports whether a close was requested for the window.
func (c *Context) ShouldClose() (bool, error) {
	if err := c.check("window.ShouldClose"); err != nil {
		return false, err
	}
	return c.handle.ShouldClose(), nil
}

func (c *Context) RequestClose() error {
	if err := c.check("window.RequestClose"); err != nil {
		return err
	}
	c.handle.SetShouldClose(true)
	return nil
}

// SetColor sets the current GL drawing color. Out-of-range colors leave GL untouched.
func (c *Context) SetColor(col color.Color) error {
	const op = "window.SetColor"

	if err := c.check(op); err != nil {
		return err
	}
	if err := col.Validate(); err != nil {
		c.log.Warn("Rejected color", zap.Error(err))
		return fail(op, GeneralError, fmt.Errorf("%w: %w", ErrInvalidArgument, err))
	}

	v := [4]float32(col)
	c.backend.Color4fv(&v)
	return nil
}

func (c *Context) SetColorSlice(v []float32) error {
	const op = "window.SetColor"

	if err := c.check(op); err != nil {
		return err
	}
	col, err := color.FromSlice(v)
	if err != nil {
		c.log.Warn("Rejected color", zap.Error(err))
		return fail(op, GeneralError, fmt.Errorf("%w: %w", ErrInvalidArgument, err))
	}
	return c.SetColor(col)
}

// SetColor is SetColorSlice on ctx.
func SetColor(ctx *Context, v []float32) error {
	return ctx.SetColorSlice(v)
}

// Clear fills the framebuffer with col.
func (c *Context) Clear(col color.Color) error {
	const op = "window.Clear"

	if err := c.check(op); err != nil {
		return err
	}
	if err := col.Validate(); err != nil {
		c.log.Warn("Rejected color", zap.Error(err))
		return fail(op, GeneralError, fmt.Errorf("%w: %w", ErrInvalidArgument, err))
	}

	c.backend.ClearColor(col.RGBA())
	c.backend.Clear()
	return nil
}

func (c *Context) SwapBuffers() error {
	if err := c.check("window.SwapBuffers"); err != nil {
		return err
	}
	c.handle.SwapBuffers()
	return nil
}

// Cleanup destroys the window and releases the backend. The Context is
// unusable afterwards; a second Cleanup returns ErrDestroyed.
func (c *Context) Cleanup() error {
	const op = "window.Cleanup"

	if err := c.check(op); err != nil {
		return err
	}

	c.handle.Destroy()
	c.backend.Terminate()
	c.handle = nil
	c.destroyed = true
	releaseGuard()

	c.log.Info("Window destroyed", zap.String("title", c.cfg.Title))
	return nil
}
