// Package mjpegsink writes Motion-JPEG AVI files in pure Go.
package mjpegsink

import (
	"errors"
	"fmt"
	"image"
	"os"
	"sync"

	"github.com/icza/mjpeg"

	"github.com/user/framereel/pkg/ports"
)

// Codec is the AVI stream handler written by this backend.
const Codec = "MJPG"

var (
	// ErrClosed is returned when writing to a finalized writer.
	ErrClosed = errors.New("mjpegsink: writer closed")

	// ErrFrameSize is returned when a frame does not match the opened size.
	ErrFrameSize = errors.New("mjpegsink: frame size mismatch")
)

// Factory opens MJPEG AVI writers. Frames are JPEG-encoded with the renderer.
type Factory struct {
	renderer ports.Renderer
}

// New creates a new MJPEG writer factory.
func New(renderer ports.Renderer) *Factory {
	return &Factory{renderer: renderer}
}

// Name returns "mjpeg".
func (f *Factory) Name() string {
	return "mjpeg"
}

// Codec returns "MJPG".
func (f *Factory) Codec() string {
	return Codec
}

// Open creates the AVI file at opts.Path.
func (f *Factory) Open(opts ports.WriterOptions) (ports.VideoWriter, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("mjpegsink: invalid size %dx%d", opts.Width, opts.Height)
	}
	if opts.FPS <= 0 {
		return nil, fmt.Errorf("mjpegsink: invalid frame rate %d", opts.FPS)
	}

	aw, err := mjpeg.New(opts.Path, int32(opts.Width), int32(opts.Height), int32(opts.FPS))
	if err != nil {
		return nil, fmt.Errorf("create avi: %w", err)
	}

	return &Writer{
		aw:       aw,
		renderer: f.renderer,
		path:     opts.Path,
		width:    opts.Width,
		height:   opts.Height,
		quality:  opts.Quality,
	}, nil
}

// Writer appends JPEG frames to an AVI file.
type Writer struct {
	mu       sync.Mutex
	aw       mjpeg.AviWriter
	renderer ports.Renderer

	path    string
	width   int
	height  int
	quality int

	frames int
	closed bool
}

// WriteFrame encodes img as JPEG and appends it.
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

	data, err := w.renderer.EncodeJPEG(img, w.quality)
	if err != nil {
		return fmt.Errorf("encode jpeg: %w", err)
	}
	if err := w.aw.AddFrame(data); err != nil {
		return fmt.Errorf("add frame: %w", err)
	}
	w.frames++
	return nil
}

// Close writes the AVI index and header.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}
	w.closed = true
	return w.aw.Close()
}

// Abort closes the file and removes it.
func (w *Writer) Abort() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.closed {
		w.closed = true
		_ = w.aw.Close()
	}
	if err := os.Remove(w.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// Frames returns the number of frames written so far.
func (w *Writer) Frames() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.frames
}

var (
	_ ports.WriterFactory = (*Factory)(nil)
	_ ports.VideoWriter   = (*Writer)(nil)
)
