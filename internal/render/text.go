package render

import (
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

// ShadowColor is drawn under every line of text.
var ShadowColor = color.NRGBA{R: 0, G: 0, B: 0, A: 100}

// Measure returns the ink bounding box of s rendered with face.
func Measure(face font.Face, s string) (w, h int) {
	b, _ := font.BoundString(face, s)
	return (b.Max.X - b.Min.X).Ceil(), (b.Max.Y - b.Min.Y).Ceil()
}

// DrawShadowedText draws s with its line box anchored at (x, y), the
// top-left corner at the ascender line. The shadow goes down first,
// shifted right and down by offset, then the foreground on top.
func DrawShadowedText(dc *gg.Context, face font.Face, s string, x, y int, fg color.Color, offset int) {
	dc.SetFontFace(face)
	baseline := y + face.Metrics().Ascent.Ceil()

	dc.SetColor(ShadowColor)
	dc.DrawString(s, float64(x+offset), float64(baseline+offset))

	dc.SetColor(fg)
	dc.DrawString(s, float64(x), float64(baseline))
}
