package encoder

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"

	ico "github.com/sergeymakinen/go-ico"
)

// ICOEncoder writes Windows icon containers, one frame per image.
type ICOEncoder struct{}

func (e *ICOEncoder) Format() string    { return "ico" }
func (e *ICOEncoder) Extension() string { return "ico" }
func (e *ICOEncoder) Available() bool   { return true }

// Encode writes a single-frame icon.
func (e *ICOEncoder) Encode(img image.Image, _ int) ([]byte, error) {
	return e.EncodeFrames([]image.Image{img})
}

// EncodeFrames writes every frame into one container, in order.
func (e *ICOEncoder) EncodeFrames(frames []image.Image) ([]byte, error) {
	if len(frames) == 0 {
		return nil, errors.New("ico: no frames")
	}
	for i, f := range frames {
		b := f.Bounds()
		if b.Dx() > 256 || b.Dy() > 256 {
			return nil, fmt.Errorf("ico: frame %d is %dx%d, max 256x256", i, b.Dx(), b.Dy())
		}
	}

	var buf bytes.Buffer
	if err := ico.EncodeAll(&buf, frames); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ICOFrames decodes every frame of an icon container and returns their
// sizes in directory order.
func ICOFrames(r io.Reader) ([]image.Point, error) {
	frames, err := ico.DecodeAll(r)
	if err != nil {
		return nil, fmt.Errorf("ico: %w", err)
	}
	sizes := make([]image.Point, len(frames))
	for i, f := range frames {
		sizes[i] = f.Bounds().Size()
	}
	return sizes, nil
}
