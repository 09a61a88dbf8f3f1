package render

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
)

// RoundedMask returns a w x h alpha buffer that is opaque inside a
// rounded rectangle of the given corner radius and clear outside it,
// ready for (*gg.Context).SetMask.
func RoundedMask(w, h int, radius float64) *image.Alpha {
	dc := gg.NewContext(w, h)
	dc.SetColor(color.White)
	dc.DrawRoundedRectangle(0, 0, float64(w), float64(h), radius)
	dc.Fill()
	return dc.AsMask()
}
