//go:build gocv

// Package gocvsink writes mp4v video through OpenCV's VideoWriter.
// Build with -tags=gocv to enable it.
package gocvsink

import (
	"errors"
	"fmt"
	"image"
	"os"
	"sync"

	"gocv.io/x/gocv"

	"github.com/user/framereel/pkg/ports"
)

// Available reports whether the OpenCV backend is compiled in.
const Available = true

// Factory opens OpenCV video writers.
type Factory struct{}

// New creates a new OpenCV writer factory.
func New() *Factory {
	return &Factory{}
}

// Name returns "gocv".
func (f *Factory) Name() string {
	return "gocv"
}

// Codec returns "mp4v".
func (f *Factory) Codec() string {
	return Codec
}

// Open creates an OpenCV VideoWriter for opts.Path.
func (f *Factory) Open(opts ports.WriterOptions) (ports.VideoWriter, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("gocvsink: invalid size %dx%d", opts.Width, opts.Height)
	}
	if opts.FPS <= 0 {
		return nil, fmt.Errorf("gocvsink: invalid frame rate %d", opts.FPS)
	}

	vw, err := gocv.VideoWriterFile(opts.Path, Codec, float64(opts.FPS), opts.Width, opts.Height, true)
	if err != nil {
		return nil, fmt.Errorf("open video writer: %w", err)
	}
	if !vw.IsOpened() {
		vw.Close()
		os.Remove(opts.Path)
		return nil, fmt.Errorf("open video writer: %w", ErrNotOpened)
	}

	return &Writer{vw: vw, path: opts.Path, width: opts.Width, height: opts.Height}, nil
}

// Writer appends frames to an OpenCV VideoWriter.
type Writer struct {
	mu     sync.Mutex
	vw     *gocv.VideoWriter
	path   string
	width  int
	height int
	closed bool
}

// WriteFrame converts img to a BGR Mat and writes it.
func (w *Writer) WriteFrame(img image.Image) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrClosed
	}
	b := img.Bounds()
	if b.Dx() != w.width || b.Dy() != w.height {
		return fmt.Errorf("%w: got %dx%d, want %dx%d", ErrFrameSize, b.Dx(), b.Dy(), w.width, w.height)
	}

	mat, err := gocv.ImageToMatRGB(img)
	if err != nil {
		return fmt.Errorf("convert frame: %w", err)
	}
	defer mat.Close()

	return w.vw.Write(mat)
}

// Close finalizes the video file.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}
	w.closed = true
	return w.vw.Close()
}

// Abort closes the writer and removes the output.
func (w *Writer) Abort() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.closed {
		w.closed = true
		_ = w.vw.Close()
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
