package field

import (
	"errors"
	"fmt"
)

// BytesPerPixel is the size of one RGBA pixel.
const BytesPerPixel = 4

// ErrCanvasSize reports a buffer whose length does not match its dimensions.
var ErrCanvasSize = errors.New("field: canvas size mismatch")

// Canvas is a row-major RGBA buffer, four bytes per pixel.
type Canvas struct {
	Pix    []byte
	Width  int
	Height int
}

// NewCanvas allocates a zeroed canvas.
func NewCanvas(width, height int) Canvas {
	return Canvas{
		Pix:    make([]byte, width*height*BytesPerPixel),
		Width:  width,
		Height: height,
	}
}

// CanvasFrom wraps buf, which must hold exactly width*height pixels.
func CanvasFrom(buf []byte, width, height int) (Canvas, error) {
	if width <= 0 || height <= 0 {
		return Canvas{}, fmt.Errorf("%dx%d: %w", width, height, ErrCanvasSize)
	}
	if want := width * height * BytesPerPixel; len(buf) != want {
		return Canvas{}, fmt.Errorf("%dx%d needs %d bytes, got %d: %w", width, height, want, len(buf), ErrCanvasSize)
	}
	return Canvas{Pix: buf, Width: width, Height: height}, nil
}

// At returns the RGBA bytes of the pixel at (x, y).
func (c Canvas) At(x, y int) [4]byte {
	off := (y*c.Width + x) * BytesPerPixel
	return [4]byte{c.Pix[off], c.Pix[off+1], c.Pix[off+2], c.Pix[off+3]}
}

// Len returns the number of pixels.
func (c Canvas) Len() int { return c.Width * c.Height }
