package render

import (
	"image/color"

	"github.com/fogleman/gg"
)

var (
	brandBlue    = color.NRGBA{R: 0x1e, G: 0x40, B: 0xaf, A: 255}
	telegramBlue = color.NRGBA{R: 0x00, G: 0x88, B: 0xcc, A: 255}
	patternColor = color.NRGBA{R: 255, G: 255, B: 255, A: 10}
)

const (
	patternStep   = 100
	patternRadius = 20
	bookOutline   = 3
)

// DrawPattern scatters faint white dots on a 100px grid, one at every
// point whose coordinate sum is a multiple of 200.
func DrawPattern(dc *gg.Context) {
	w, h := dc.Width(), dc.Height()
	dc.SetColor(patternColor)
	for x := 0; x < w; x += patternStep {
		for y := 0; y < h; y += patternStep {
			if (x+y)%(2*patternStep) != 0 {
				continue
			}
			dc.DrawCircle(float64(x), float64(y), patternRadius)
			dc.Fill()
		}
	}
}

// DrawBook draws a 61x81 book glyph with its top-left corner at (x, y).
func DrawBook(dc *gg.Context, x, y float64) {
	fillBox(dc, x, y, x+60, y+80, brandBlue)
	fillBox(dc, x+bookOutline, y+bookOutline, x+60-bookOutline, y+80-bookOutline, color.White)
	fillBox(dc, x+10, y+10, x+50, y+30, brandBlue)
	fillBox(dc, x+10, y+40, x+50, y+60, brandBlue)
}

// DrawPaperPlane draws a blue disc in the 61x61 box at (x, y) with a
// white paper plane on it.
func DrawPaperPlane(dc *gg.Context, x, y float64) {
	dc.SetColor(telegramBlue)
	dc.DrawCircle(x+30.5, y+30.5, 30.5)
	dc.Fill()

	dc.SetColor(color.White)
	dc.MoveTo(x+20, y+30)
	dc.LineTo(x+40, y+20)
	dc.LineTo(x+40, y+40)
	dc.LineTo(x+35, y+35)
	dc.LineTo(x+30, y+40)
	dc.ClosePath()
	dc.Fill()
}

// fillBox fills the pixel box with inclusive corners (x0,y0) and (x1,y1).
func fillBox(dc *gg.Context, x0, y0, x1, y1 float64, c color.Color) {
	dc.SetColor(c)
	dc.DrawRectangle(x0, y0, x1-x0+1, y1-y0+1)
	dc.Fill()
}
