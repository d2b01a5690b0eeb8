package mjpegsink

import (
	"encoding/binary"
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/user/framereel/pkg/adapters/ggrenderer"
	"github.com/user/framereel/pkg/mocks"
	"github.com/user/framereel/pkg/ports"
)

func solid(w, h int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestFactory_Metadata(t *testing.T) {
	f := New(ggrenderer.New())
	if f.Name() != "mjpeg" {
		t.Errorf("expected name mjpeg, got %s", f.Name())
	}
	if f.Codec() != "MJPG" {
		t.Errorf("expected codec MJPG, got %s", f.Codec())
	}
}

func TestWriter_WritesAVI(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.avi")
	f := New(ggrenderer.New())

	w, err := f.Open(ports.WriterOptions{Path: path, Width: 32, Height: 24, FPS: 25, Quality: 80})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	colors := []color.Color{color.Black, color.White, color.RGBA{255, 0, 0, 255}}
	for _, c := range colors {
		if err := w.WriteFrame(solid(32, 24, c)); err != nil {
			t.Fatalf("WriteFrame failed: %v", err)
		}
	}
	if got := w.(*Writer).Frames(); got != len(colors) {
		t.Errorf("expected %d frames written, got %d", len(colors), got)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if len(data) < 72 {
		t.Fatalf("output too small: %d bytes", len(data))
	}
	if string(data[0:4]) != "RIFF" || string(data[8:12]) != "AVI " {
		t.Fatalf("not an AVI file: %q", data[0:12])
	}
	if got := binary.LittleEndian.Uint32(data[48:52]); got != 3 {
		t.Errorf("expected 3 frames in header, got %d", got)
	}
	if got := binary.LittleEndian.Uint32(data[64:68]); got != 32 {
		t.Errorf("expected width 32, got %d", got)
	}
	if got := binary.LittleEndian.Uint32(data[68:72]); got != 24 {
		t.Errorf("expected height 24, got %d", got)
	}
}

func TestWriter_RejectsWrongSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.avi")
	w, err := New(ggrenderer.New()).Open(ports.WriterOptions{Path: path, Width: 16, Height: 16, FPS: 10})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer w.Abort()

	err = w.WriteFrame(solid(8, 8, color.White))
	if !errors.Is(err, ErrFrameSize) {
		t.Errorf("expected ErrFrameSize, got %v", err)
	}
}

func TestWriter_Abort(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.avi")
	w, err := New(ggrenderer.New()).Open(ports.WriterOptions{Path: path, Width: 8, Height: 8, FPS: 10})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := w.WriteFrame(solid(8, 8, color.White)); err != nil {
		t.Fatalf("WriteFrame failed: %v", err)
	}

	if err := w.Abort(); err != nil {
		t.Fatalf("Abort failed: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("expected output to be removed, stat err = %v", err)
	}
	if err := w.WriteFrame(solid(8, 8, color.White)); !errors.Is(err, ErrClosed) {
		t.Errorf("expected ErrClosed after abort, got %v", err)
	}
}

func TestFactory_OpenErrors(t *testing.T) {
	f := New(ggrenderer.New())
	dir := t.TempDir()

	tests := []struct {
		name string
		opts ports.WriterOptions
	}{
		{"zero width", ports.WriterOptions{Path: filepath.Join(dir, "a.avi"), Width: 0, Height: 8, FPS: 10}},
		{"zero fps", ports.WriterOptions{Path: filepath.Join(dir, "b.avi"), Width: 8, Height: 8, FPS: 0}},
		{"missing dir", ports.WriterOptions{Path: filepath.Join(dir, "nope", "c.avi"), Width: 8, Height: 8, FPS: 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := f.Open(tt.opts); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestWriter_PassesQualityAndEncodeErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.avi")
	errEncode := errors.New("encoder broke")
	calls := 0
	renderer := &mocks.Renderer{
		EncodeJPEGFunc: func(img image.Image, quality int) ([]byte, error) {
			calls++
			if calls == 2 {
				return nil, errEncode
			}
			return []byte{0xFF, 0xD8, 0xFF, 0xD9}, nil
		},
	}

	w, err := New(renderer).Open(ports.WriterOptions{Path: path, Width: 8, Height: 8, FPS: 30, Quality: 42})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer w.Abort()

	if err := w.WriteFrame(solid(8, 8, color.White)); err != nil {
		t.Fatalf("WriteFrame failed: %v", err)
	}
	if err := w.WriteFrame(solid(8, 8, color.White)); !errors.Is(err, errEncode) {
		t.Errorf("expected encode error, got %v", err)
	}
	if len(renderer.JPEGQualities) != 2 || renderer.JPEGQualities[0] != 42 {
		t.Errorf("expected quality 42 for every frame, got %v", renderer.JPEGQualities)
	}
}
