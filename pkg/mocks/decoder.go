package mocks

import (
	"fmt"
	"image"

	"github.com/user/framereel/pkg/ports"
)

// FrameDecoder is a mock implementation of ports.FrameDecoder.
// Paths present in Errors fail; paths in Images decode to that image;
// any other path decodes to a DefaultWidth x DefaultHeight RGBA image.
type FrameDecoder struct {
	Images        map[string]image.Image
	Errors        map[string]error
	DefaultWidth  int
	DefaultHeight int

	Calls []string
}

// NewFrameDecoder creates a decoder producing width x height frames.
func NewFrameDecoder(width, height int) *FrameDecoder {
	return &FrameDecoder{
		Images:        make(map[string]image.Image),
		Errors:        make(map[string]error),
		DefaultWidth:  width,
		DefaultHeight: height,
	}
}

func (m *FrameDecoder) Decode(path string) (image.Image, error) {
	m.Calls = append(m.Calls, path)
	if err, ok := m.Errors[path]; ok {
		return nil, err
	}
	if img, ok := m.Images[path]; ok {
		return img, nil
	}
	if m.DefaultWidth <= 0 || m.DefaultHeight <= 0 {
		return nil, fmt.Errorf("mock: no image for %s", path)
	}
	return image.NewRGBA(image.Rect(0, 0, m.DefaultWidth, m.DefaultHeight)), nil
}

var _ ports.FrameDecoder = (*FrameDecoder)(nil)
