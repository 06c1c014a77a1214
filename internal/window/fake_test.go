package window

import "errors"

var errFake = errors.New("fake failure")

// fakeBackend counts every acquire and release so tests can check for leaks.
type fakeBackend struct {
	failInit   bool
	failCreate bool
	failLoad   bool
	nilWindow  bool

	inits      int
	terminates int
	windows    []*fakeHandle
	loaded     bool

	colors [][4]float32
	clears []color4
}

type color4 struct{ r, g, b, a float32 }

type fakeHandle struct {
	width, height int
	title         string
	hints         Hints

	current      bool
	shouldClose  bool
	swaps        int
	destroyCalls int
}

func (b *fakeBackend) Init() error {
	if b.failInit {
		return errFake
	}
	b.inits++
	return nil
}

func (b *fakeBackend) Terminate() { b.terminates++ }

func (b *fakeBackend) CreateWindow(width, height int, title string, hints Hints) (Handle, error) {
	if b.failCreate {
		return nil, errFake
	}
	if b.nilWindow {
		return nil, nil
	}
	h := &fakeHandle{width: width, height: height, title: title, hints: hints}
	b.windows = append(b.windows, h)
	return h, nil
}

func (b *fakeBackend) LoadGL() error {
	if b.failLoad {
		return errFake
	}
	b.loaded = true
	return nil
}

func (b *fakeBackend) Color4fv(c *[4]float32) { b.colors = append(b.colors, *c) }

func (b *fakeBackend) ClearColor(r, g, bl, a float32) {
	b.clears = append(b.clears, color4{r, g, bl, a})
}

func (b *fakeBackend) Clear() {}

// liveResources is the number of acquisitions not yet released.
func (b *fakeBackend) liveResources() int {
	n := b.inits - b.terminates
	for _, w := range b.windows {
		if w.destroyCalls == 0 {
			n++
		}
	}
	return n
}

func (h *fakeHandle) MakeContextCurrent()       { h.current = true }
func (h *fakeHandle) ShouldClose() bool         { return h.shouldClose }
func (h *fakeHandle) SetShouldClose(value bool) { h.shouldClose = value }
func (h *fakeHandle) SwapBuffers()              { h.swaps++ }
func (h *fakeHandle) Destroy()                  { h.destroyCalls++ }
