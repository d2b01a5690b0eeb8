package ffmpegsink

import (
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"testing"

	"github.com/user/framereel/pkg/ports"
)

func requireFFmpeg(t *testing.T) {
	t.Helper()
	if !IsAvailable() {
		t.Skip("ffmpeg not available")
	}
}

func TestBuildArgs(t *testing.T) {
	args := buildArgs(ports.WriterOptions{Path: "out.mp4", Width: 64, Height: 48, FPS: 60, Quality: 100})

	for _, want := range [][]string{
		{"-c:v", "mpeg4"},
		{"-tag:v", "mp4v"},
		{"-s", "64x48"},
		{"-r", "60"},
		{"-q:v", "2"},
	} {
		i := slices.Index(args, want[0])
		if i < 0 || i+1 >= len(args) || args[i+1] != want[1] {
			t.Errorf("expected %s %s in %v", want[0], want[1], args)
		}
	}
	if args[len(args)-1] != "out.mp4" {
		t.Errorf("expected output path last, got %s", args[len(args)-1])
	}
	if slices.Contains(args, "-vf") {
		t.Error("expected no video filter")
	}
}

func TestBuildArgs_OddDimensions(t *testing.T) {
	args := buildArgs(ports.WriterOptions{Path: "out.mp4", Width: 63, Height: 47, FPS: 30})
	if slices.Contains(args, "-vf") {
		t.Errorf("expected odd frames to be encoded unpadded, got %v", args)
	}
	i := slices.Index(args, "-s")
	if i < 0 || args[i+1] != "63x47" {
		t.Errorf("expected -s 63x47 in %v", args)
	}
}

func TestQscale(t *testing.T) {
	tests := []struct {
		quality int
		want    int
	}{
		{1, 31},
		{100, 2},
		{0, qscale(75)},
		{500, qscale(75)},
	}
	for _, tt := range tests {
		if got := qscale(tt.quality); got != tt.want {
			t.Errorf("qscale(%d) = %d, want %d", tt.quality, got, tt.want)
		}
	}
	if qscale(90) >= qscale(50) {
		t.Error("expected higher quality to give lower qscale")
	}
}

func TestFindFFmpeg_CustomPath(t *testing.T) {
	defer SetFFmpegPath("")

	SetFFmpegPath(filepath.Join(t.TempDir(), "missing-ffmpeg"))
	if _, err := FindFFmpeg(); !errors.Is(err, ErrFFmpegNotFound) {
		t.Errorf("expected ErrFFmpegNotFound, got %v", err)
	}

	fake := filepath.Join(t.TempDir(), "ffmpeg")
	if err := os.WriteFile(fake, []byte("#!/bin/sh\n"), 0755); err != nil {
		t.Fatal(err)
	}
	SetFFmpegPath(fake)
	got, err := FindFFmpeg()
	if err != nil || got != fake {
		t.Errorf("expected %s, got %s (%v)", fake, got, err)
	}
}

func TestFindFFmpeg_EnvPath(t *testing.T) {
	SetFFmpegPath("")
	t.Setenv("FFMPEG_PATH", filepath.Join(t.TempDir(), "nope"))
	if _, err := FindFFmpeg(); !errors.Is(err, ErrFFmpegNotFound) {
		t.Errorf("expected ErrFFmpegNotFound, got %v", err)
	}
}

func TestWriter_EncodesMP4(t *testing.T) {
	requireFFmpeg(t)

	path := filepath.Join(t.TempDir(), "out.mp4")
	w, err := New().Open(ports.WriterOptions{Path: path, Width: 32, Height: 32, FPS: 10, Quality: 75})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	for i := 0; i < 5; i++ {
		img := image.NewRGBA(image.Rect(0, 0, 32, 32))
		img.Set(i, i, color.White)
		if err := w.WriteFrame(img); err != nil {
			t.Fatalf("WriteFrame %d failed: %v", i, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat output: %v", err)
	}
	if info.Size() == 0 {
		t.Error("expected non-empty output")
	}
}

func TestWriter_EncoderExitReportedOnClose(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("needs a shell script as ffmpeg")
	}
	fake := filepath.Join(t.TempDir(), "ffmpeg")
	script := "#!/bin/sh\nexec 0<&-\necho \"encoder exploded\" >&2\nexit 1\n"
	if err := os.WriteFile(fake, []byte(script), 0755); err != nil {
		t.Fatal(err)
	}
	SetFFmpegPath(fake)
	t.Cleanup(func() { SetFFmpegPath("") })

	path := filepath.Join(t.TempDir(), "out.mp4")
	w, err := New().Open(ports.WriterOptions{Path: path, Width: 256, Height: 256, FPS: 10})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	frame := image.NewRGBA(image.Rect(0, 0, 256, 256))
	var writeErr error
	for i := 0; i < 100 && writeErr == nil; i++ {
		writeErr = w.WriteFrame(frame)
	}
	if writeErr == nil {
		t.Fatal("expected a write error once ffmpeg exited")
	}
	if strings.Contains(writeErr.Error(), "encoder exploded") {
		t.Errorf("write error should not carry stderr: %v", writeErr)
	}

	err = w.Close()
	if err == nil || !strings.Contains(err.Error(), "encoder exploded") {
		t.Errorf("expected Close to report ffmpeg stderr, got %v", err)
	}
}

func TestWriter_Abort(t *testing.T) {
	requireFFmpeg(t)

	path := filepath.Join(t.TempDir(), "out.mp4")
	w, err := New().Open(ports.WriterOptions{Path: path, Width: 16, Height: 16, FPS: 10})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := w.WriteFrame(image.NewRGBA(image.Rect(0, 0, 16, 16))); err != nil {
		t.Fatalf("WriteFrame failed: %v", err)
	}
	if err := w.Abort(); err != nil {
		t.Fatalf("Abort failed: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("expected output removed, stat err = %v", err)
	}
}

func TestFactory_OpenUnwritablePath(t *testing.T) {
	requireFFmpeg(t)

	_, err := New().Open(ports.WriterOptions{
		Path: filepath.Join(t.TempDir(), "missing", "out.mp4"), Width: 16, Height: 16, FPS: 10,
	})
	if err == nil {
		t.Error("expected error for missing directory")
	}
}
