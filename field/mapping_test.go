package field

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMappingEndpoints(t *testing.T) {
	for _, clamp := range []bool{false, true} {
		m := NewMapping(clamp)
		assert.Equal(t, uint8(0), m.Alpha(0), "clamp=%v", clamp)
		assert.Equal(t, uint8(255), m.Alpha(GlowRange), "clamp=%v", clamp)
		assert.Equal(t, uint8(25), m.Alpha(5), "clamp=%v", clamp)
	}
}

func TestMappingOutOfRange(t *testing.T) {
	wrap := NewMapping(false)
	clamp := NewMapping(true)

	// 51*255/50 = 260.1 wraps to 4.
	assert.Equal(t, uint8(4), wrap.Alpha(51))
	assert.Equal(t, uint8(255), clamp.Alpha(51))

	// 255*255/50 = 1300.5, 1300 mod 256 = 20.
	assert.Equal(t, uint8(20), wrap.Alpha(255))
	assert.Equal(t, uint8(255), clamp.Alpha(255))
}

func TestMappingMonotoneInRange(t *testing.T) {
	m := NewMapping(false)
	for b := 1; b <= GlowRange; b++ {
		assert.GreaterOrEqual(t, m.Alpha(uint8(b)), m.Alpha(uint8(b-1)), "b=%d", b)
	}
}

func TestDistanceByte(t *testing.T) {
	tests := []struct {
		in   float64
		want uint8
	}{
		{0, 0},
		{5, 5},
		{5.99, 5},
		{255.5, 255},
		{256, 0},
		{300, 44},
		{-1, 0},
		{math.NaN(), 0},
		{math.Inf(1), 255},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DistanceByte(tt.in), "DistanceByte(%v)", tt.in)
	}
}

func TestMapRange(t *testing.T) {
	assert.Equal(t, 25.5, MapRange(glowDomain, byteRange, 5))
	assert.Equal(t, 255.0, MapRange(glowDomain, byteRange, 50))
	assert.Equal(t, -5.1, MapRange(glowDomain, byteRange, -1))
	assert.Equal(t, 5.0, MapRange([2]float64{10, 20}, [2]float64{0, 10}, 15))
}

func TestWrapByte(t *testing.T) {
	assert.Equal(t, uint8(251), wrapByte(-5.1))
	assert.Equal(t, uint8(0), wrapByte(256.7))
	assert.Equal(t, uint8(0), wrapByte(math.Inf(1)))
	assert.Equal(t, uint8(0), clampByte(-5.1))
}
