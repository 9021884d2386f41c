package hal

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

const (
	hudPad        = 4
	hudLineHeight = 10
	hudCharWidth  = 6
)

var (
	hudForeground = color.RGBA{R: 0x4A, G: 0xD1, B: 0xFF, A: 0xFF}
	hudBackground = color.RGBA{R: 0x08, G: 0x0B, B: 0x10, A: 0xC0}
)

// imageDisplayer lets tinyfont draw into an *image.RGBA.
type imageDisplayer struct {
	img *image.RGBA
}

var _ drivers.Displayer = (*imageDisplayer)(nil)

func (d *imageDisplayer) Size() (x, y int16) {
	b := d.img.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

func (d *imageDisplayer) SetPixel(x, y int16, c color.RGBA) {
	d.img.SetRGBA(int(x), int(y), c)
}

func (d *imageDisplayer) Display() error { return nil }

// drawHUD paints lines of text in the top-left corner over a dark panel.
func drawHUD(img *image.RGBA, lines []string) {
	if img == nil || len(lines) == 0 {
		return
	}
	longest := 0
	for _, s := range lines {
		longest = max(longest, len(s))
	}
	panel := image.Rect(0, 0, longest*hudCharWidth+2*hudPad, len(lines)*hudLineHeight+2*hudPad)
	draw.Draw(img, panel.Intersect(img.Bounds()), image.NewUniform(hudBackground), image.Point{}, draw.Over)

	d := &imageDisplayer{img: img}
	y := int16(hudPad + hudLineHeight - 2)
	for _, s := range lines {
		tinyfont.WriteLine(d, &proggy.TinySZ8pt7b, hudPad, y, s, hudForeground)
		y += hudLineHeight
	}
}
