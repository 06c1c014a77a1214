package color

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	ErrNil    = errors.New("color is nil")
	ErrLength = errors.New("color must have 4 components")
)

// Color is an RGBA value with every component in [0.0, 1.0].
type Color [4]float32

// Name indexes the predefined palette.
type Name int

const (
	Red Name = iota
	Green
	Blue
	Yellow
	Cyan
	Magenta
	Black
	White
)

var palette = [...]Color{
	Red:     {1.0, 0.0, 0.0, 1.0},
	Green:   {0.0, 1.0, 0.0, 1.0},
	Blue:    {0.0, 0.0, 1.0, 1.0},
	Yellow:  {1.0, 1.0, 0.0, 1.0},
	Cyan:    {0.0, 1.0, 1.0, 1.0},
	Magenta: {1.0, 0.0, 1.0, 1.0},
	Black:   {0.0, 0.0, 0.0, 1.0},
	White:   {1.0, 1.0, 1.0, 1.0},
}

var names = [...]string{
	Red:     "red",
	Green:   "green",
	Blue:    "blue",
	Yellow:  "yellow",
	Cyan:    "cyan",
	Magenta: "magenta",
	Black:   "black",
	White:   "white",
}

// Palette returns a copy of the predefined colors in a fixed order.
func Palette() [8]Color {
	return palette
}

// Color returns the palette entry for n, or the zero Color if n is not a palette name.
func (n Name) Color() Color {
	if n < 0 || int(n) >= len(palette) {
		return Color{}
	}
	return palette[n]
}

func (n Name) String() string {
	if n < 0 || int(n) >= len(names) {
		return fmt.Sprintf("color.Name(%d)", int(n))
	}
	return names[n]
}

type RangeError struct {
	Index int
	Value float32
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("color component %d out of range [0.0, 1.0]: %v", e.Index, e.Value)
}

func New(r, g, b, a float32) (Color, error) {
	c := Color{r, g, b, a}
	if err := c.Validate(); err != nil {
		return Color{}, err
	}
	return c, nil
}

// FromSlice copies v into a Color. v must hold exactly four in-range components.
func FromSlice(v []float32) (Color, error) {
	const op = "color.FromSlice"

	if v == nil {
		return Color{}, fmt.Errorf("%s: %w", op, ErrNil)
	}
	if len(v) != 4 {
		return Color{}, fmt.Errorf("%s: %w, got %d", op, ErrLength, len(v))
	}

	var c Color
	copy(c[:], v)
	if err := c.Validate(); err != nil {
		return Color{}, fmt.Errorf("%s: %w", op, err)
	}
	return c, nil
}

// Validate returns a *RangeError for the first component outside [0.0, 1.0].
// NaN is never in range.
func (c Color) Validate() error {
	for i, v := range c {
		if math.IsNaN(float64(v)) || v < 0.0 || v > 1.0 {
			return &RangeError{Index: i, Value: v}
		}
	}
	return nil
}

func (c Color) RGBA() (r, g, b, a float32) {
	return c[0], c[1], c[2], c[3]
}

// Named looks up a palette color by name, ignoring case.
func Named(name string) (Color, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range names {
		if n == name {
			return palette[i], true
		}
	}
	return Color{}, false
}
