package imagedecoder

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/user/framereel/pkg/mocks"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode failed: %v", err)
	}
	return buf.Bytes()
}

func TestDecoder_PNG(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.WriteFile("frames/frame_000.png", pngBytes(t, 12, 8))

	img, err := New(fs).Decode("frames/frame_000.png")
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if img.Bounds().Dx() != 12 || img.Bounds().Dy() != 8 {
		t.Errorf("expected 12x8, got %v", img.Bounds())
	}
}

func TestDecoder_PlainPBM(t *testing.T) {
	// Format written by the Game of Life frame generator.
	data := []byte("P1\n4 3\n0 1 0 1\n1 0 1 0\n0 0 0 0\n")

	img, err := DecodeBytes(data)
	if err != nil {
		t.Fatalf("DecodeBytes failed: %v", err)
	}
	if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 3 {
		t.Errorf("expected 4x3, got %v", img.Bounds())
	}
}

func TestDecoder_RawPPM(t *testing.T) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "P6\n%d %d\n255\n", 3, 2)
	for i := 0; i < 3*2; i++ {
		buf.Write([]byte{255, 0, 0})
	}

	img, err := DecodeBytes(buf.Bytes())
	if err != nil {
		t.Fatalf("DecodeBytes failed: %v", err)
	}
	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
		t.Errorf("expected 3x2, got %v", img.Bounds())
	}
	r, g, _, _ := img.At(1, 1).RGBA()
	if r>>8 != 255 || g>>8 != 0 {
		t.Errorf("expected red pixel, got r=%d g=%d", r>>8, g>>8)
	}
}

func TestDecoder_Errors(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.WriteFile("empty.ppm", []byte{})
	fs.WriteFile("garbage.png", []byte("definitely not an image"))
	fs.WriteFile("truncated.ppm", []byte("P6\n10 10\n255\n"))

	tests := []struct {
		name string
		path string
	}{
		{"missing file", "missing.ppm"},
		{"empty file", "empty.ppm"},
		{"garbage", "garbage.png"},
		{"truncated netpbm", "truncated.ppm"},
	}

	d := New(fs)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := d.Decode(tt.path); err == nil {
				t.Errorf("expected error decoding %s", tt.path)
			}
		})
	}
}
