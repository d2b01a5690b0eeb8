// Package imagedecoder decodes frame files into images.
//
// Supported formats: PNG, JPEG and GIF from the standard library, BMP, TIFF
// and WebP from golang.org/x/image, and the Netpbm family (PBM, PGM, PPM,
// PAM in both plain and raw variants).
package imagedecoder

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/spakin/netpbm"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/user/framereel/pkg/ports"
)

var (
	// ErrEmptyFile is returned for zero-length frame files.
	ErrEmptyFile = errors.New("imagedecoder: empty file")

	// ErrEmptyImage is returned when a file decodes to an image with no pixels.
	ErrEmptyImage = errors.New("imagedecoder: image has no pixels")
)

// Decoder implements ports.FrameDecoder.
type Decoder struct {
	fs ports.FileSystem
}

// New creates a Decoder that reads files through fs.
func New(fs ports.FileSystem) *Decoder {
	return &Decoder{fs: fs}
}

// Decode reads and decodes the image at path.
func (d *Decoder) Decode(path string) (image.Image, error) {
	data, err := d.fs.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return DecodeBytes(data)
}

// DecodeBytes decodes an in-memory image.
func DecodeBytes(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFile
	}

	var (
		img image.Image
		err error
	)
	if isNetpbm(data) {
		img, err = netpbm.Decode(bytes.NewReader(data), nil)
		if err != nil {
			return nil, fmt.Errorf("decode netpbm: %w", err)
		}
	} else {
		img, _, err = image.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decode image: %w", err)
		}
	}

	if img.Bounds().Empty() {
		return nil, ErrEmptyImage
	}
	return img, nil
}

// isNetpbm reports whether data starts with a Netpbm magic number (P1-P7).
func isNetpbm(data []byte) bool {
	return len(data) >= 2 && data[0] == 'P' && data[1] >= '1' && data[1] <= '7'
}

var _ ports.FrameDecoder = (*Decoder)(nil)
