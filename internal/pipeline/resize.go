package pipeline

import (
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// ErrUpscale is returned when a target is larger than its master.
var ErrUpscale = errors.New("target larger than source")

// Resize scales img to exactly w x h with a Lanczos filter. Aspect
// ratio is not preserved. Targets larger than the source in either
// dimension are rejected.
func Resize(img image.Image, w, h int) (*image.NRGBA, error) {
	b := img.Bounds()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("invalid target size %dx%d", w, h)
	}
	if w > b.Dx() || h > b.Dy() {
		return nil, fmt.Errorf("%w: %dx%d from %dx%d", ErrUpscale, w, h, b.Dx(), b.Dy())
	}
	return imaging.Resize(img, w, h, imaging.Lanczos), nil
}
