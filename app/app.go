package app

import (
	"fmt"
	"time"

	"glowfield/field"
	"glowfield/hal"
	"glowfield/internal/buildinfo"
)

// Config holds the runtime switches of the glow app.
type Config struct {
	// Seed fixes the initial population. Zero picks one from the clock.
	Seed uint64
	// Clamp saturates the glow ramp instead of wrapping it.
	Clamp bool
	// Grid and Workers speed up rendering without changing the image.
	Grid    bool
	Workers int
	// StatsEvery logs average render time every N frames. Zero disables it.
	StatsEvery int
}

type glow struct {
	log hal.Logger
	fb  hal.Framebuffer
	kbd <-chan hal.KeyEvent

	field  *field.Field
	render *field.Renderer
	canvas field.Canvas

	seed   uint64
	paused bool

	frames     uint64
	statsEvery int
	statFrames int
	statTime   time.Duration
}

// New initializes the app with default config.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, Config{})
}

// NewWithConfig builds the field and renderer and returns the per-frame
// step. Setup failures are reported by the first call to step.
func NewWithConfig(h hal.HAL, cfg Config) func() error {
	g, err := newGlow(h, cfg)
	if err != nil {
		return func() error { return err }
	}
	return g.step
}

func newGlow(h hal.HAL, cfg Config) (*glow, error) {
	disp := h.Display()
	if disp == nil {
		return nil, fmt.Errorf("app: no display: %w", hal.ErrNotImplemented)
	}
	fb := disp.Framebuffer()
	if fb == nil {
		return nil, fmt.Errorf("app: no framebuffer: %w", hal.ErrNotImplemented)
	}
	if fb.Format() != hal.PixelFormatRGBA8888 {
		return nil, fmt.Errorf("app: pixel format %d: %w", fb.Format(), hal.ErrNotImplemented)
	}
	if fb.StrideBytes() != fb.Width()*field.BytesPerPixel {
		return nil, fmt.Errorf("app: stride %d for width %d: %w", fb.StrideBytes(), fb.Width(), field.ErrCanvasSize)
	}
	canvas, err := field.CanvasFrom(fb.Buffer(), fb.Width(), fb.Height())
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}

	g := &glow{
		log:        h.Logger(),
		fb:         fb,
		canvas:     canvas,
		seed:       cfg.Seed,
		statsEvery: cfg.StatsEvery,
		render: field.NewRenderer(field.Options{
			Clamp:   cfg.Clamp,
			Grid:    cfg.Grid,
			Workers: cfg.Workers,
		}),
	}
	if in := h.Input(); in != nil {
		if kbd := in.Keyboard(); kbd != nil {
			g.kbd = kbd.Events()
		}
	}
	if g.seed == 0 {
		g.seed = uint64(time.Now().UnixNano())
	}
	g.field = field.New(field.Population, canvas.Width, canvas.Height, field.NewRand(g.seed))

	w, ht := g.field.Size()
	g.logf("glow: %s %dx%d points=%d seed=%d %s",
		buildinfo.String(), w, ht, g.field.Len(), g.seed, g.modeString())
	return g, nil
}

func (g *glow) step() error {
	if err := g.pollInput(); err != nil {
		return err
	}
	if !g.paused {
		g.field.Advance()
	}

	start := time.Now()
	g.render.Render(g.field.Points(), g.canvas)
	g.trackFrame(time.Since(start))

	return g.fb.Present()
}

func (g *glow) pollInput() error {
	for {
		select {
		case ev, ok := <-g.kbd:
			if !ok {
				g.kbd = nil
				return nil
			}
			if err := g.handleKey(ev); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

func (g *glow) handleKey(ev hal.KeyEvent) error {
	if !ev.Press {
		return nil
	}
	if ev.Code == hal.KeyEscape {
		g.logf("glow: quit after %d frames", g.frames)
		return hal.ErrQuit
	}

	switch ev.Rune {
	case ' ':
		g.paused = !g.paused
		if g.paused {
			g.logf("glow: paused")
		} else {
			g.logf("glow: resumed")
		}
	case 'c', 'C':
		opts := g.render.Options()
		opts.Clamp = !opts.Clamp
		g.render.SetOptions(opts)
		g.logf("glow: %s", g.modeString())
	case 'g', 'G':
		opts := g.render.Options()
		opts.Grid = !opts.Grid
		g.render.SetOptions(opts)
		g.logf("glow: %s", g.modeString())
	case 'r', 'R':
		g.seed++
		g.field.Reset(field.NewRand(g.seed))
		g.logf("glow: reseeded seed=%d", g.seed)
	}
	return nil
}

func (g *glow) trackFrame(d time.Duration) {
	g.frames++
	if g.statsEvery <= 0 {
		return
	}
	g.statFrames++
	g.statTime += d
	if g.statFrames < g.statsEvery {
		return
	}
	g.logf("glow: frame=%d render avg=%s", g.frames, g.statTime/time.Duration(g.statFrames))
	g.statFrames = 0
	g.statTime = 0
}

func (g *glow) modeString() string {
	opts := g.render.Options()
	ramp := "wrap"
	if opts.Clamp {
		ramp = "clamp"
	}
	search := "brute"
	if opts.Grid {
		search = "grid"
	}
	return fmt.Sprintf("ramp=%s search=%s workers=%d", ramp, search, opts.Workers)
}

func (g *glow) logf(format string, args ...any) {
	if g.log == nil {
		return
	}
	g.log.WriteLineString(fmt.Sprintf(format, args...))
}
