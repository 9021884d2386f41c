package field

import "math"

// GlowRange is the distance, in pixels, that maps to full alpha.
const GlowRange = 50

var (
	glowDomain = [2]float64{0, GlowRange}
	byteRange  = [2]float64{0, 255}
)

// DistanceByte converts a distance to the byte fed into the glow ramp.
// The float is cast to uint32 with saturation and then narrowed to its
// low byte, so distances past 255 wrap around.
func DistanceByte(d float64) uint8 {
	return uint8(saturateUint32(d))
}

// MapRange maps s linearly from the from range onto the to range.
// Values outside from extrapolate.
func MapRange(from, to [2]float64, s float64) float64 {
	return to[0] + (s-from[0])*(to[1]-to[0])/(from[1]-from[0])
}

// Mapping turns distance bytes into alpha values.
type Mapping struct {
	clamp bool
	table [256]uint8
}

// NewMapping precomputes the alpha for every distance byte. With clamp set,
// ramp values above 255 saturate instead of wrapping.
func NewMapping(clamp bool) *Mapping {
	m := &Mapping{clamp: clamp}
	for b := range m.table {
		m.table[b] = alphaFor(uint8(b), clamp)
	}
	return m
}

// Alpha returns the alpha for distance byte b.
func (m *Mapping) Alpha(b uint8) uint8 { return m.table[b] }

// Clamped reports whether out-of-range ramp values saturate.
func (m *Mapping) Clamped() bool { return m.clamp }

func alphaFor(b uint8, clamp bool) uint8 {
	v := MapRange(glowDomain, byteRange, float64(b))
	if clamp {
		return clampByte(v)
	}
	return wrapByte(v)
}

func saturateUint32(d float64) uint32 {
	switch {
	case math.IsNaN(d) || d <= 0:
		return 0
	case d >= 1<<32:
		return math.MaxUint32
	}
	return uint32(d)
}

// wrapByte truncates toward zero and keeps the low eight bits.
func wrapByte(v float64) uint8 {
	if math.IsNaN(v) || math.Abs(v) >= 1<<63 {
		return 0
	}
	return uint8(int64(v))
}

func clampByte(v float64) uint8 {
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v)
}
