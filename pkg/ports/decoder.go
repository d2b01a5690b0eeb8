package ports

import "image"

// FrameDecoder decodes a single frame file into an in-memory raster.
type FrameDecoder interface {
	// Decode reads and decodes the image stored at path.
	// An image with empty bounds is reported as an error.
	Decode(path string) (image.Image, error)
}
