// Package field implements the moving point swarm and the distance-field
// renderer that turns it into a glow image.
package field

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/chewxy/math32"
)

const (
	// Width and Height are the canvas size the host allocates.
	Width  = 400
	Height = 400

	// Population is the fixed number of points created at startup.
	Population = 50

	// MaxSpeed bounds each velocity component.
	MaxSpeed float32 = 1.25
)

// Velocities are drawn from a lattice of speedSteps values spaced 1/speedDiv.
const (
	speedSteps = 100
	speedDiv   = 80
)

const maxUint32f = float32(1 << 32)

// ErrVelocity reports a velocity component that is not finite or not in [0, MaxSpeed].
var ErrVelocity = errors.New("field: velocity out of range")

// Point is a single glow source.
type Point struct {
	X, Y   uint32
	VX, VY float32
}

// Position is the integer location of a point at snapshot time.
type Position struct {
	X, Y uint32
}

// Field owns the point population and advances it once per tick.
type Field struct {
	width  int
	height int
	points []Point
}

// NewRand returns a PCG source seeded from seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// New creates count points spread over the canvas. Both coordinates are
// sampled from [0, width); height does not bound y.
func New(count, width, height int, rng *rand.Rand) *Field {
	if count < 0 {
		count = 0
	}
	f := &Field{
		width:  width,
		height: height,
		points: make([]Point, count),
	}
	f.Reset(rng)
	return f
}

// FromPoints builds a field around a fixed population.
func FromPoints(width, height int, points []Point) (*Field, error) {
	for i, p := range points {
		if !validSpeed(p.VX) || !validSpeed(p.VY) {
			return nil, fmt.Errorf("point %d (%v, %v): %w", i, p.VX, p.VY, ErrVelocity)
		}
	}
	pts := make([]Point, len(points))
	copy(pts, points)
	return &Field{width: width, height: height, points: pts}, nil
}

// Reset resamples every point in place. A nil rng is seeded from the clock.
func (f *Field) Reset(rng *rand.Rand) {
	if rng == nil {
		rng = NewRand(uint64(time.Now().UnixNano()))
	}
	span := f.width
	if span <= 0 {
		span = 1
	}
	for i := range f.points {
		f.points[i] = Point{
			X:  uint32(rng.IntN(span)),
			Y:  uint32(rng.IntN(span)),
			VX: float32(rng.IntN(speedSteps)) / speedDiv,
			VY: float32(rng.IntN(speedSteps)) / speedDiv,
		}
	}
}

// Advance moves every point by its velocity. The sum is taken in float32
// and truncated back to uint32; nothing keeps points on the canvas.
func (f *Field) Advance() {
	for i := range f.points {
		p := &f.points[i]
		p.X = step(p.X, p.VX)
		p.Y = step(p.Y, p.VY)
	}
}

// Points returns the live population. Callers must not modify it.
func (f *Field) Points() []Point { return f.points }

// Len returns the population size.
func (f *Field) Len() int { return len(f.points) }

// Size returns the canvas dimensions the field was created for.
func (f *Field) Size() (width, height int) { return f.width, f.height }

// Positions appends the current integer positions to dst[:0].
func (f *Field) Positions(dst []Position) []Position {
	return Snapshot(f.points, dst)
}

// Snapshot appends the integer positions of points to dst[:0].
func Snapshot(points []Point, dst []Position) []Position {
	dst = dst[:0]
	for _, p := range points {
		dst = append(dst, Position{X: p.X, Y: p.Y})
	}
	return dst
}

func step(pos uint32, vel float32) uint32 {
	return truncUint32(float32(pos) + vel)
}

// truncUint32 truncates toward zero and saturates at the uint32 range.
func truncUint32(v float32) uint32 {
	switch {
	case math32.IsNaN(v) || v <= 0:
		return 0
	case v >= maxUint32f:
		return math.MaxUint32
	}
	return uint32(v)
}

func validSpeed(v float32) bool {
	if math32.IsNaN(v) || math32.IsInf(v, 0) {
		return false
	}
	return v >= 0 && v <= MaxSpeed
}
