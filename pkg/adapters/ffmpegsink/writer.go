// Package ffmpegsink writes MPEG-4 Part 2 video (fourcc mp4v) in an MP4
// container by piping raw RGBA frames into an external ffmpeg process.
package ffmpegsink

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"io"
	"os"
	"os/exec"
	"sync"

	"github.com/user/framereel/pkg/ports"
)

// Codec is the sample entry written by this backend.
const Codec = "mp4v"

// Factory starts one ffmpeg process per opened writer.
type Factory struct{}

// New creates a new ffmpeg writer factory.
func New() *Factory {
	return &Factory{}
}

// Name returns "ffmpeg".
func (f *Factory) Name() string {
	return "ffmpeg"
}

// Codec returns "mp4v".
func (f *Factory) Codec() string {
	return Codec
}

// Open starts ffmpeg writing to opts.Path.
func (f *Factory) Open(opts ports.WriterOptions) (ports.VideoWriter, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("ffmpegsink: invalid size %dx%d", opts.Width, opts.Height)
	}
	if opts.FPS <= 0 {
		return nil, fmt.Errorf("ffmpegsink: invalid frame rate %d", opts.FPS)
	}

	ffmpegPath, err := FindFFmpeg()
	if err != nil {
		return nil, err
	}

	// Fail early on an unwritable destination instead of waiting for ffmpeg to exit.
	probe, err := os.OpenFile(opts.Path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return nil, fmt.Errorf("create output: %w", err)
	}
	probe.Close()

	w := &Writer{
		path:   opts.Path,
		width:  opts.Width,
		height: opts.Height,
		rgba:   image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height)),
	}

	w.cmd = exec.Command(ffmpegPath, buildArgs(opts)...)
	w.cmd.Stderr = &w.stderr

	stdin, err := w.cmd.StdinPipe()
	if err != nil {
		os.Remove(opts.Path)
		return nil, fmt.Errorf("failed to get stdin pipe: %w", err)
	}
	w.stdin = stdin

	if err := w.cmd.Start(); err != nil {
		os.Remove(opts.Path)
		return nil, fmt.Errorf("failed to start ffmpeg: %w", err)
	}

	return w, nil
}

// buildArgs returns the ffmpeg command line for opts.
func buildArgs(opts ports.WriterOptions) []string {
	args := []string{
		"-y",
		"-loglevel", "error",
		"-f", "rawvideo",
		"-pix_fmt", "rgba",
		"-s", fmt.Sprintf("%dx%d", opts.Width, opts.Height),
		"-r", fmt.Sprintf("%d", opts.FPS),
		"-i", "pipe:0",
		"-c:v", "mpeg4",
		"-tag:v", Codec,
		"-q:v", fmt.Sprintf("%d", qscale(opts.Quality)),
		"-pix_fmt", "yuv420p",
		"-f", "mp4",
		opts.Path,
	}
	return args
}

// qscale maps quality 1-100 onto mpeg4's qscale 31 (worst) to 2 (best).
func qscale(quality int) int {
	if quality < 1 || quality > 100 {
		quality = 75
	}
	q := 31 - (quality-1)*29/99
	if q < 2 {
		q = 2
	}
	return q
}

// Writer streams frames to a running ffmpeg process.
type Writer struct {
	mu     sync.Mutex
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stderr bytes.Buffer

	path   string
	width  int
	height int
	rgba   *image.RGBA

	frames int
	closed bool
}

// WriteFrame converts img to RGBA and writes it to ffmpeg's stdin.
func (w *Writer) WriteFrame(img image.Image) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stdin == nil || w.closed {
		return ErrNotInitialized
	}

	bounds := img.Bounds()
	if bounds.Dx() != w.width || bounds.Dy() != w.height {
		return fmt.Errorf("%w: got %dx%d, want %dx%d", ErrFrameSize, bounds.Dx(), bounds.Dy(), w.width, w.height)
	}
	draw.Draw(w.rgba, w.rgba.Bounds(), img, bounds.Min, draw.Src)

	if _, err := w.stdin.Write(w.rgba.Pix); err != nil {
		// ffmpeg may still be writing stderr; Close reports it after Wait.
		return fmt.Errorf("failed to write frame: %w", err)
	}

	w.frames++
	return nil
}

// Close signals end of input and waits for ffmpeg to finish the file.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}
	w.closed = true

	w.stdin.Close()
	w.stdin = nil

	if err := w.cmd.Wait(); err != nil {
		return fmt.Errorf("ffmpeg encoding failed: %w\nstderr: %s", err, w.stderr.String())
	}
	return nil
}

// Abort kills ffmpeg and removes the partial output.
func (w *Writer) Abort() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.closed {
		w.closed = true
		if w.stdin != nil {
			w.stdin.Close()
			w.stdin = nil
		}
		if w.cmd != nil && w.cmd.Process != nil {
			w.cmd.Process.Kill()
			w.cmd.Wait()
		}
	}

	if err := os.Remove(w.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

var (
	_ ports.WriterFactory = (*Factory)(nil)
	_ ports.VideoWriter   = (*Writer)(nil)
)
