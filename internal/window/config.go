package window

const (
	defaultW     = 640
	defaultH     = 480
	defaultTitle = "mzl"
)

// Hints are applied before the native window is created.
// A zero ContextVersionMajor leaves the version to the driver.
type Hints struct {
	Resizable           bool
	Decorated           bool
	Visible             bool
	DoubleBuffer        bool
	ContextVersionMajor int
	ContextVersionMinor int
	CoreProfile         bool
}

type Config struct {
	Width  int
	Height int
	Title  string
	Hints  Hints
}

// DefaultConfig asks for a legacy-compatible context, glColor4fv needs one.
func DefaultConfig() Config {
	return Config{
		Width:  defaultW,
		Height: defaultH,
		Title:  defaultTitle,
		Hints: Hints{
			Resizable:           false,
			Decorated:           true,
			Visible:             true,
			DoubleBuffer:        true,
			ContextVersionMajor: 2,
			ContextVersionMinor: 1,
		},
	}
}

func (cfg Config) validate() error {
	return Validate(
		Assert(cfg.Width > 0 && cfg.Height > 0, "invalid window dimensions"),
		Assert(cfg.Title != "", "title cannot be empty"),
	)
}
