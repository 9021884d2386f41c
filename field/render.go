package field

import (
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Options tunes how a Renderer computes a frame. None of them change the
// output except Clamp.
type Options struct {
	// Clamp saturates the glow ramp at 255 instead of wrapping.
	Clamp bool
	// Grid answers nearest-point queries through a uniform grid.
	Grid bool
	// Workers splits the frame into row bands. 0 or 1 renders on the
	// calling goroutine, negative uses one band per CPU.
	Workers int
}

// Renderer writes the glow image for a point set. It keeps no state
// between frames beyond its options.
type Renderer struct {
	opts    Options
	mapping *Mapping
}

var defaultRenderer = NewRenderer(Options{})

// Render draws points onto c with default options.
func Render(points []Point, c Canvas) {
	defaultRenderer.Render(points, c)
}

// NewRenderer returns a renderer configured by opts.
func NewRenderer(opts Options) *Renderer {
	r := &Renderer{}
	r.SetOptions(opts)
	return r
}

// Options returns the current configuration.
func (r *Renderer) Options() Options { return r.opts }

// SetOptions replaces the configuration.
func (r *Renderer) SetOptions(opts Options) {
	if r.mapping == nil || r.mapping.Clamped() != opts.Clamp {
		r.mapping = NewMapping(opts.Clamp)
	}
	r.opts = opts
}

// Render overwrites every pixel of c with opaque white whose alpha is the
// glow value for the nearest point.
func (r *Renderer) Render(points []Point, c Canvas) {
	if c.Width <= 0 || c.Height <= 0 {
		return
	}
	pos := Snapshot(points, nil)

	var near func(x, y int) float64
	if r.opts.Grid {
		near = newGrid(pos, c.Width, c.Height).nearest
	} else {
		near = func(x, y int) float64 { return Nearest(x, y, pos) }
	}

	workers := r.opts.Workers
	if workers < 0 {
		workers = runtime.NumCPU()
	}
	if workers <= 1 {
		r.renderRows(c, 0, c.Height, near)
		return
	}

	rowsPer := (c.Height + workers - 1) / workers
	var g errgroup.Group
	for y0 := 0; y0 < c.Height; y0 += rowsPer {
		y0, y1 := y0, min(y0+rowsPer, c.Height)
		g.Go(func() error {
			r.renderRows(c, y0, y1, near)
			return nil
		})
	}
	_ = g.Wait()
}

func (r *Renderer) renderRows(c Canvas, y0, y1 int, near func(x, y int) float64) {
	w := c.Width
	for i := y0 * w; i < y1*w; i++ {
		x := i % w
		y := i / w
		a := r.mapping.Alpha(DistanceByte(near(x, y)))
		off := i * BytesPerPixel
		px := c.Pix[off : off+BytesPerPixel : off+BytesPerPixel]
		px[0] = 0xFF
		px[1] = 0xFF
		px[2] = 0xFF
		px[3] = a
	}
}

// Nearest returns the Euclidean distance from (x, y) to the closest
// position, or +Inf when pos is empty.
func Nearest(x, y int, pos []Position) float64 {
	best := math.Inf(1)
	for _, p := range pos {
		if d := sqDist(x, y, p); d < best {
			best = d
		}
	}
	return math.Sqrt(best)
}

func sqDist(x, y int, p Position) float64 {
	dx := float64(int64(p.X) - int64(x))
	dy := float64(int64(p.Y) - int64(y))
	return dx*dx + dy*dy
}
