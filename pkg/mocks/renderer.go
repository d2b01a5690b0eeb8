package mocks

import (
	"image"
	"image/color"

	"github.com/user/framereel/pkg/ports"
)

// Renderer is a mock implementation of ports.Renderer.
// Resize and Letterbox return blank frames of the requested size.
type Renderer struct {
	EncodeJPEGFunc func(img image.Image, quality int) ([]byte, error)
	EncodePNGFunc  func(img image.Image) ([]byte, error)

	ResizeCalls    int
	LetterboxCalls int
	JPEGQualities  []int
}

func (m *Renderer) Resize(img image.Image, width, height int) image.Image {
	m.ResizeCalls++
	return image.NewRGBA(image.Rect(0, 0, width, height))
}

func (m *Renderer) Letterbox(img image.Image, width, height int, bg color.Color) image.Image {
	m.LetterboxCalls++
	return image.NewRGBA(image.Rect(0, 0, width, height))
}

func (m *Renderer) EncodeJPEG(img image.Image, quality int) ([]byte, error) {
	m.JPEGQualities = append(m.JPEGQualities, quality)
	if m.EncodeJPEGFunc != nil {
		return m.EncodeJPEGFunc(img, quality)
	}
	return []byte{0xFF, 0xD8, 0xFF, 0xD9}, nil
}

func (m *Renderer) EncodePNG(img image.Image) ([]byte, error) {
	if m.EncodePNGFunc != nil {
		return m.EncodePNGFunc(img)
	}
	return []byte("\x89PNG\r\n\x1a\n"), nil
}

var _ ports.Renderer = (*Renderer)(nil)
