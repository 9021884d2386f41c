package hal

// WindowConfig controls the desktop window runner.
type WindowConfig struct {
	Title  string
	Width  int
	Height int
	// Scale is the initial window size as a multiple of the framebuffer.
	Scale int
	TPS   int
	// HUD overlays frame rate text on the displayed image.
	HUD bool
}

func (c WindowConfig) withDefaults() WindowConfig {
	if c.Title == "" {
		c.Title = "glowfield"
	}
	if c.Scale <= 0 {
		c.Scale = 2
	}
	if c.TPS <= 0 {
		c.TPS = 60
	}
	return c
}
