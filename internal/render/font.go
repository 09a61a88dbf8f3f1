package render

import (
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Preferred system fonts. Both are optional at runtime.
const (
	DejaVuSans     = "/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf"
	DejaVuSansBold = "/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf"
)

// FontSpec names a font file and the point size to rasterize it at.
// Bold selects the weight of the bundled fallback.
type FontSpec struct {
	Path string
	Size float64
	Bold bool
}

// Fonts groups every face the banner and the icon draw with.
type Fonts struct {
	Title       FontSpec
	Subtitle    FontSpec
	Description FontSpec
	Mark        FontSpec
}

// DefaultFonts prefers DejaVu Sans from the system font directory.
var DefaultFonts = Fonts{
	Title:       FontSpec{Path: DejaVuSansBold, Size: 80, Bold: true},
	Subtitle:    FontSpec{Path: DejaVuSans, Size: 40},
	Description: FontSpec{Path: DejaVuSans, Size: 32},
	Mark:        FontSpec{Path: DejaVuSansBold, Size: 300, Bold: true},
}

// Face is a loaded font face together with how it was resolved.
type Face struct {
	font.Face
	Spec     FontSpec
	Fallback bool // true when Spec.Path could not be loaded
}

// LoadFace loads spec.Path at spec.Size. Any failure falls back to the
// bundled Go fonts at the same size, and failing that to a fixed 7x13
// bitmap face. It never fails.
func LoadFace(spec FontSpec) Face {
	if spec.Path != "" {
		if f, err := gg.LoadFontFace(spec.Path, spec.Size); err == nil {
			return Face{Face: f, Spec: spec}
		}
	}
	return Face{Face: fallbackFace(spec), Spec: spec, Fallback: true}
}

func fallbackFace(spec FontSpec) font.Face {
	ttf := goregular.TTF
	if spec.Bold {
		ttf = gobold.TTF
	}
	f, err := truetype.Parse(ttf)
	if err != nil {
		return basicfont.Face7x13
	}
	return truetype.NewFace(f, &truetype.Options{Size: spec.Size})
}
