package videoprobe

import (
	"errors"
	"image"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/user/framereel/pkg/adapters/ffmpegsink"
	"github.com/user/framereel/pkg/adapters/ggrenderer"
	"github.com/user/framereel/pkg/adapters/mjpegsink"
	"github.com/user/framereel/pkg/ports"
)

func writeVideo(t *testing.T, factory ports.WriterFactory, path string, w, h, fps, frames int) {
	t.Helper()
	writer, err := factory.Open(ports.WriterOptions{Path: path, Width: w, Height: h, FPS: fps, Quality: 75})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	for i := 0; i < frames; i++ {
		if err := writer.WriteFrame(image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
			t.Fatalf("WriteFrame failed: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
}

func TestProbe_AVI(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.avi")
	writeVideo(t, mjpegsink.New(ggrenderer.New()), path, 48, 32, 60, 7)

	info, err := New().Probe(path)
	if err != nil {
		t.Fatalf("Probe failed: %v", err)
	}

	if info.Container != "avi" {
		t.Errorf("expected avi container, got %s", info.Container)
	}
	if info.Codec != "MJPG" {
		t.Errorf("expected MJPG codec, got %q", info.Codec)
	}
	if info.Width != 48 || info.Height != 32 {
		t.Errorf("expected 48x32, got %dx%d", info.Width, info.Height)
	}
	if info.FrameCount != 7 {
		t.Errorf("expected 7 frames, got %d", info.FrameCount)
	}
	if math.Abs(info.FPS-60) > 0.1 {
		t.Errorf("expected 60 fps, got %.3f", info.FPS)
	}
}

func TestProbe_MP4(t *testing.T) {
	if !ffmpegsink.IsAvailable() {
		t.Skip("ffmpeg not available")
	}

	path := filepath.Join(t.TempDir(), "out.mp4")
	writeVideo(t, ffmpegsink.New(), path, 64, 48, 30, 10)

	info, err := New().Probe(path)
	if err != nil {
		t.Fatalf("Probe failed: %v", err)
	}

	if info.Container != "mp4" {
		t.Errorf("expected mp4 container, got %s", info.Container)
	}
	if info.Codec != "mp4v" {
		t.Errorf("expected mp4v codec, got %q", info.Codec)
	}
	if info.Width != 64 || info.Height != 48 {
		t.Errorf("expected 64x48, got %dx%d", info.Width, info.Height)
	}
	if info.FrameCount != 10 {
		t.Errorf("expected 10 frames, got %d", info.FrameCount)
	}
	if math.Abs(info.FPS-30) > 0.01 {
		t.Errorf("expected 30 fps, got %.3f", info.FPS)
	}
}

func TestProbe_MP4OddSizeKeepsFrameSize(t *testing.T) {
	if !ffmpegsink.IsAvailable() {
		t.Skip("ffmpeg not available")
	}

	path := filepath.Join(t.TempDir(), "odd.mp4")
	writeVideo(t, ffmpegsink.New(), path, 63, 47, 30, 3)

	info, err := New().Probe(path)
	if err != nil {
		t.Fatalf("Probe failed: %v", err)
	}
	if info.Width != 63 || info.Height != 47 {
		t.Errorf("expected 63x47, got %dx%d", info.Width, info.Height)
	}
}

func TestProbe_Errors(t *testing.T) {
	dir := t.TempDir()

	garbage := filepath.Join(dir, "garbage.bin")
	if err := os.WriteFile(garbage, []byte("this is not a video file at all"), 0644); err != nil {
		t.Fatal(err)
	}
	short := filepath.Join(dir, "short.bin")
	if err := os.WriteFile(short, []byte("RIFF"), 0644); err != nil {
		t.Fatal(err)
	}
	truncatedAVI := filepath.Join(dir, "truncated.avi")
	if err := os.WriteFile(truncatedAVI, []byte("RIFF\x00\x00\x00\x00AVI LIST"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{"missing", filepath.Join(dir, "missing.mp4"), os.ErrNotExist},
		{"garbage", garbage, ErrUnknownContainer},
		{"short", short, ErrUnknownContainer},
		{"truncated avi", truncatedAVI, ErrUnknownContainer},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New().Probe(tt.path)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}
