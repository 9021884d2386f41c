package hal

// overBlack composites one straight-alpha channel value onto black.
func overBlack(c, a uint8) uint8 {
	return uint8((uint16(c)*uint16(a) + 127) / 255)
}

// compositeOverBlack converts straight-alpha RGBA in src to opaque RGBA in
// dst. Both slices hold whole pixels; the shorter one bounds the copy.
func compositeOverBlack(dst, src []byte) {
	n := min(len(dst), len(src)) &^ 3
	for i := 0; i < n; i += 4 {
		a := src[i+3]
		dst[i+0] = overBlack(src[i+0], a)
		dst[i+1] = overBlack(src[i+1], a)
		dst[i+2] = overBlack(src[i+2], a)
		dst[i+3] = 0xFF
	}
}
