package ports

import (
	"image"
	"image/color"
)

// Renderer converts decoded frames for the video writers and the debug sink.
type Renderer interface {
	// Resize scales img to exactly width x height, ignoring its aspect ratio.
	Resize(img image.Image, width, height int) image.Image

	// Letterbox scales img to the largest size that fits inside width x height
	// with its aspect ratio kept, centered on a bg background.
	Letterbox(img image.Image, width, height int, bg color.Color) image.Image

	// EncodeJPEG encodes img as baseline JPEG. quality is 1-100.
	EncodeJPEG(img image.Image, quality int) ([]byte, error)

	// EncodePNG encodes img as PNG.
	EncodePNG(img image.Image) ([]byte, error)
}
