package platform

import (
	"fmt"

	"github.com/go-gl/gl/v2.1/gl"
)

// LoadGL resolves GL entry points for the current context.
func (*GLFW) LoadGL() error {
	const op = "platform.LoadGL"

	if err := gl.Init(); err != nil {
		return fmt.Errorf("%s gl.Init: %w", op, err)
	}
	return nil
}

func (*GLFW) Color4fv(c *[4]float32) {
	gl.Color4fv(&c[0])
}

func (*GLFW) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (*GLFW) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
}
