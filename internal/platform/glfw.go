package platform

import (
	"fmt"
	"runtime"

	"mzl/internal/window"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// LockMainThread pins the calling goroutine to its OS thread. GLFW must only
// be called from the main thread, so call it from main's init.
func LockMainThread() {
	runtime.LockOSThread()
}

// GLFW is the production window.Backend.
type GLFW struct {
	// CloseOnEscape sets the close flag of new windows when Escape is pressed.
	CloseOnEscape bool
}

func New(closeOnEscape bool) *GLFW {
	return &GLFW{CloseOnEscape: closeOnEscape}
}

func (*GLFW) Init() error {
	const op = "platform.Init"

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("%s glfw.Init: %w", op, err)
	}
	return nil
}

func (*GLFW) Terminate() {
	glfw.Terminate()
}

func (g *GLFW) CreateWindow(width, height int, title string, hints window.Hints) (window.Handle, error) {
	const op = "platform.CreateWindow"

	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.Resizable, boolHint(hints.Resizable))
	glfw.WindowHint(glfw.Decorated, boolHint(hints.Decorated))
	glfw.WindowHint(glfw.Visible, boolHint(hints.Visible))
	glfw.WindowHint(glfw.DoubleBuffer, boolHint(hints.DoubleBuffer))
	if hints.ContextVersionMajor > 0 {
		glfw.WindowHint(glfw.ContextVersionMajor, hints.ContextVersionMajor)
		glfw.WindowHint(glfw.ContextVersionMinor, hints.ContextVersionMinor)
	}
	if hints.CoreProfile {
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	}

	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("%s glfw.CreateWindow: %w", op, err)
	}

	if g.CloseOnEscape {
		win.SetKeyCallback(escapeCallback)
	}

	return &Window{win: win}, nil
}

func boolHint(v bool) int {
	if v {
		return glfw.True
	}
	return glfw.False
}

// Window wraps a *glfw.Window.
type Window struct {
	win *glfw.Window
}

func (w *Window) MakeContextCurrent() { w.win.MakeContextCurrent() }

func (w *Window) ShouldClose() bool { return w.win.ShouldClose() }

func (w *Window) SetShouldClose(value bool) { w.win.SetShouldClose(value) }

func (w *Window) SwapBuffers() { w.win.SwapBuffers() }

func (w *Window) Destroy() { w.win.Destroy() }

func escapeCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if key == glfw.KeyEscape && action == glfw.Press {
		w.SetShouldClose(true)
	}
}

// PollEvents processes pending window events.
func PollEvents() {
	glfw.PollEvents()
}
