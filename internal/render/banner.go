// Package render draws the two master canvases, the social banner and
// the app icon, from compiled-in artwork constants.
package render

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
)

// Banner canvas size. The 1200x630 ratio is the Open Graph default.
const (
	BannerWidth  = 1200
	BannerHeight = 630
)

// Banner copy.
const (
	Title       = "UniShare"
	Subtitle    = "Nền tảng chia sẻ tài liệu học tập"
	Description = "Kết nối sinh viên • Chia sẻ kiến thức • Học tập thông minh"
)

const bannerShadowOffset = 3

// textLine is one centered line of banner copy. dy is measured from
// the canvas middle for the first line and from the previous line's
// anchor for the rest.
type textLine struct {
	text  string
	font  FontSpec
	color color.NRGBA
	dy    int
}

func bannerLines(fonts Fonts) []textLine {
	return []textLine{
		{text: Title, font: fonts.Title, color: color.NRGBA{R: 255, G: 255, B: 255, A: 255}, dy: -100},
		{text: Subtitle, font: fonts.Subtitle, color: color.NRGBA{R: 0xe0, G: 0xe7, B: 0xff, A: 255}, dy: 100},
		{text: Description, font: fonts.Description, color: color.NRGBA{R: 0xc7, G: 0xd2, B: 0xfe, A: 255}, dy: 60},
	}
}

// Banner renders the 1200x630 hero banner and returns it with the faces
// it was drawn with, in title, subtitle, description order.
func Banner(fonts Fonts) (*image.RGBA, []Face) {
	dc := gg.NewContext(BannerWidth, BannerHeight)
	FillGradient(dc, BrandGradient)
	DrawPattern(dc)

	lines := bannerLines(fonts)
	faces := make([]Face, 0, len(lines))
	y := BannerHeight / 2
	for _, l := range lines {
		face := LoadFace(l.font)
		faces = append(faces, face)

		w, _ := Measure(face, l.text)
		x := (BannerWidth - w) / 2
		y += l.dy
		DrawShadowedText(dc, face, l.text, x, y, l.color, bannerShadowOffset)
	}

	DrawBook(dc, 100, BannerHeight/2-50)
	DrawPaperPlane(dc, BannerWidth-160, BannerHeight/2-30)

	return dc.Image().(*image.RGBA), faces
}
