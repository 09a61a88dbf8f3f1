package render

import (
	"image/color"

	"github.com/fogleman/gg"
)

// Gradient is a vertical two-color gradient interpolated per channel.
type Gradient struct {
	Start color.NRGBA
	End   color.NRGBA
}

// BrandGradient runs from #1e40af at the top to #9333ea at the bottom.
var BrandGradient = Gradient{
	Start: color.NRGBA{R: 30, G: 64, B: 175, A: 255},
	End:   color.NRGBA{R: 147, G: 51, B: 234, A: 255},
}

// At returns the color of row y on a canvas of height h.
// Channels are truncated toward zero, so At(h-1, h) may sit one step
// short of End.
func (g Gradient) At(y, h int) color.NRGBA {
	if h <= 0 {
		return g.Start
	}
	return color.NRGBA{
		R: lerp(g.Start.R, g.End.R, y, h),
		G: lerp(g.Start.G, g.End.G, y, h),
		B: lerp(g.Start.B, g.End.B, y, h),
		A: 255,
	}
}

func lerp(a, b uint8, y, h int) uint8 {
	delta := float64((int(b) - int(a)) * y)
	return uint8(int(float64(a) + delta/float64(h)))
}

// FillGradient paints one full-width row per pixel line of dc.
func FillGradient(dc *gg.Context, g Gradient) {
	w, h := dc.Width(), dc.Height()
	for y := 0; y < h; y++ {
		dc.SetColor(g.At(y, h))
		dc.DrawRectangle(0, float64(y), float64(w), 1)
		dc.Fill()
	}
}
