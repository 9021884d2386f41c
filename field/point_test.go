package field

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPopulation(t *testing.T) {
	f := New(Population, Width, Height, NewRand(1))
	require.Equal(t, Population, f.Len())

	for i, p := range f.Points() {
		assert.Less(t, p.X, uint32(Width), "point %d x", i)
		assert.Less(t, p.Y, uint32(Width), "point %d y", i)
		assert.GreaterOrEqual(t, p.VX, float32(0), "point %d vx", i)
		assert.LessOrEqual(t, p.VX, MaxSpeed, "point %d vx", i)
		assert.GreaterOrEqual(t, p.VY, float32(0), "point %d vy", i)
		assert.LessOrEqual(t, p.VY, MaxSpeed, "point %d vy", i)
	}
}

func TestNewSamplesYFromWidth(t *testing.T) {
	f := New(500, 10, 1000, NewRand(7))
	for _, p := range f.Points() {
		require.Less(t, p.Y, uint32(10))
	}
}

func TestNewSeedIsReproducible(t *testing.T) {
	a := New(Population, Width, Height, NewRand(42))
	b := New(Population, Width, Height, NewRand(42))
	assert.Equal(t, a.Points(), b.Points())

	c := New(Population, Width, Height, NewRand(43))
	assert.NotEqual(t, a.Points(), c.Points())
}

func TestNewNegativeCount(t *testing.T) {
	f := New(-3, Width, Height, NewRand(1))
	assert.Equal(t, 0, f.Len())
}

func TestFromPointsRejectsBadVelocity(t *testing.T) {
	bad := []float32{-0.1, 1.3, float32(math.NaN()), float32(math.Inf(1))}
	for _, v := range bad {
		_, err := FromPoints(10, 10, []Point{{VX: v}})
		assert.ErrorIs(t, err, ErrVelocity, "vx=%v", v)
		_, err = FromPoints(10, 10, []Point{{VY: v}})
		assert.ErrorIs(t, err, ErrVelocity, "vy=%v", v)
	}

	_, err := FromPoints(10, 10, []Point{{VX: 0, VY: MaxSpeed}})
	assert.NoError(t, err)
}

func TestFromPointsCopies(t *testing.T) {
	pts := []Point{{X: 1, Y: 2, VX: 1, VY: 1}}
	f, err := FromPoints(10, 10, pts)
	require.NoError(t, err)

	pts[0].X = 9
	assert.Equal(t, uint32(1), f.Points()[0].X)
}

func TestAdvanceTruncatesEachStep(t *testing.T) {
	f, err := FromPoints(400, 400, []Point{
		{X: 0, Y: 398, VX: 0.5, VY: 1.25},
		{X: 10, Y: 20, VX: 0.75, VY: 1},
	})
	require.NoError(t, err)

	want := [][]Position{
		{{X: 0, Y: 399}, {X: 10, Y: 21}},
		{{X: 0, Y: 400}, {X: 10, Y: 22}},
		{{X: 0, Y: 401}, {X: 10, Y: 23}},
	}
	for i, w := range want {
		f.Advance()
		assert.Equal(t, w, f.Positions(nil), "after step %d", i+1)
	}

	// A single multiplied displacement would have moved both slow axes.
	assert.Equal(t, uint32(1), truncUint32(0+3*0.5))
	assert.Equal(t, uint32(12), truncUint32(10+3*0.75))
}

func TestAdvanceSaturates(t *testing.T) {
	f, err := FromPoints(400, 400, []Point{{X: math.MaxUint32, Y: math.MaxUint32 - 1, VX: 1.25, VY: 1.25}})
	require.NoError(t, err)

	f.Advance()
	f.Advance()
	p := f.Points()[0]
	assert.Equal(t, uint32(math.MaxUint32), p.X)
	assert.Equal(t, uint32(math.MaxUint32), p.Y)
}

func TestTruncUint32(t *testing.T) {
	tests := []struct {
		in   float32
		want uint32
	}{
		{0, 0},
		{0.99, 0},
		{1, 1},
		{399.9, 399},
		{-5, 0},
		{float32(math.NaN()), 0},
		{maxUint32f, math.MaxUint32},
		{float32(math.Inf(1)), math.MaxUint32},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, truncUint32(tt.in), "truncUint32(%v)", tt.in)
	}
}

func TestResetKeepsCount(t *testing.T) {
	f := New(Population, Width, Height, NewRand(1))
	before := append([]Point(nil), f.Points()...)

	f.Reset(NewRand(2))
	assert.Equal(t, Population, f.Len())
	assert.NotEqual(t, before, f.Points())
}

func TestSnapshotReusesBuffer(t *testing.T) {
	pts := []Point{{X: 1, Y: 2}, {X: 3, Y: 4}}
	buf := make([]Position, 0, 8)
	got := Snapshot(pts, buf)
	assert.Equal(t, []Position{{1, 2}, {3, 4}}, got)
	assert.Equal(t, 8, cap(got))
}
