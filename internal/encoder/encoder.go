package encoder

import (
	"image"
)

// Encoder encodes an image to a specific format.
type Encoder interface {
	// Format returns the output format name (e.g. "jpeg", "png", "ico").
	Format() string

	// Encode converts the image to bytes at the given quality (1-100).
	// Lossless formats ignore quality.
	Encode(img image.Image, quality int) ([]byte, error)

	// Available returns true if the encoder is ready to use.
	Available() bool

	// Extension returns the file extension without dot.
	Extension() string
}

// FrameEncoder is implemented by container formats that hold several
// images in one file.
type FrameEncoder interface {
	Encoder
	EncodeFrames(frames []image.Image) ([]byte, error)
}
