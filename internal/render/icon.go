package render

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
)

const (
	// IconSize is the side of the master icon every icon target is
	// downscaled from.
	IconSize         = 512
	IconCornerRadius = 80
	IconMark         = "U"

	iconShadowOffset = 5
	iconMarkLift     = 20
)

// Icon renders the rounded, gradient-filled master icon with the mark
// centered on it. Corners outside the rounded rectangle are transparent.
func Icon(spec FontSpec) (*image.RGBA, Face) {
	bg := gg.NewContext(IconSize, IconSize)
	FillGradient(bg, BrandGradient)

	dc := gg.NewContext(IconSize, IconSize)
	// The mask matches the canvas size, which is all SetMask checks.
	_ = dc.SetMask(RoundedMask(IconSize, IconSize, IconCornerRadius))
	dc.DrawImage(bg.Image(), 0, 0)

	face := LoadFace(spec)
	w, h := Measure(face, IconMark)
	x := (IconSize - w) / 2
	y := (IconSize-h)/2 - iconMarkLift
	DrawShadowedText(dc, face, IconMark, x, y, color.White, iconShadowOffset)

	return dc.Image().(*image.RGBA), face
}
