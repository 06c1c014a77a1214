package window

// Backend is the windowing library plus the GL function loader.
// Both hold process-wide state.
type Backend interface {
	Init() error
	Terminate()
	CreateWindow(width, height int, title string, hints Hints) (Handle, error)

	// LoadGL resolves GL entry points. A context must be current.
	LoadGL() error

	Color4fv(c *[4]float32)
	ClearColor(r, g, b, a float32)
	Clear()
}

// Handle is one native window with its rendering context.
type Handle interface {
	MakeContextCurrent()
	ShouldClose() bool
	SetShouldClose(value bool)
	SwapBuffers()
	Destroy()
}
