package hal

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/draw"
)

// WriteSnapshot encodes the current contents of fb as PNG, composited
// onto black and scaled up by scale with nearest-neighbour sampling.
func WriteSnapshot(w io.Writer, fb Framebuffer, scale int) error {
	if fb == nil {
		return fmt.Errorf("snapshot: %w", ErrNotImplemented)
	}
	if fb.Format() != PixelFormatRGBA8888 {
		return fmt.Errorf("snapshot: pixel format %d: %w", fb.Format(), ErrNotImplemented)
	}
	if scale <= 0 {
		scale = 1
	}

	src := image.NewRGBA(image.Rect(0, 0, fb.Width(), fb.Height()))
	if hf, ok := fb.(*hostFramebuffer); ok {
		raw := make([]byte, len(hf.front))
		hf.snapshotRGBA(raw)
		compositeOverBlack(src.Pix, raw)
	} else {
		compositeOverBlack(src.Pix, fb.Buffer())
	}

	var out image.Image = src
	if scale > 1 {
		dst := image.NewRGBA(image.Rect(0, 0, fb.Width()*scale, fb.Height()*scale))
		draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
		out = dst
	}
	if err := png.Encode(w, out); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	return nil
}

// SaveSnapshot writes a PNG snapshot of fb to path.
func SaveSnapshot(path string, fb Framebuffer, scale int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	if err := WriteSnapshot(f, fb, scale); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
