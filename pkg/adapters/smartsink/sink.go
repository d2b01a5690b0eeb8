// Package smartsink selects a video writer backend, falling back to the
// best one available on this machine.
package smartsink

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/user/framereel/pkg/adapters/ffmpegsink"
	"github.com/user/framereel/pkg/adapters/gocvsink"
	"github.com/user/framereel/pkg/adapters/mjpegsink"
	"github.com/user/framereel/pkg/ports"
)

// Backend represents the encoding backend.
type Backend string

const (
	// BackendAuto picks a backend from the output extension and what is installed.
	BackendAuto Backend = "auto"
	// BackendMJPEG writes Motion-JPEG AVI in pure Go.
	BackendMJPEG Backend = "mjpeg"
	// BackendFFmpeg pipes frames into an external ffmpeg process.
	BackendFFmpeg Backend = "ffmpeg"
	// BackendGoCV uses OpenCV's VideoWriter (requires -tags=gocv).
	BackendGoCV Backend = "gocv"
)

// Info contains information about the selected backend.
type Info struct {
	// Backend is the backend being used.
	Backend Backend
	// Codec is the codec tag written by the backend.
	Codec string
	// Requested is the backend that was originally requested.
	Requested Backend
	// FallbackUsed indicates whether auto selection skipped ffmpeg.
	FallbackUsed bool
}

// Options configures backend selection.
type Options struct {
	// FFmpegPath is an optional custom path to the ffmpeg binary.
	FFmpegPath string
	// Renderer encodes JPEG frames for the mjpeg backend.
	Renderer ports.Renderer
	// Logger is used to log fallback warnings.
	Logger ports.Logger
}

var (
	// ErrNoBackendAvailable is returned when no backend can write the output.
	ErrNoBackendAvailable = errors.New("smartsink: no backend available")

	// ErrUnknownBackend is returned for an unrecognized backend name.
	ErrUnknownBackend = errors.New("smartsink: unknown backend")
)

// availability probes, replaceable in tests
var (
	ffmpegAvailable = ffmpegsink.IsAvailable
	gocvAvailable   = func() bool { return gocvsink.Available }
)

// ParseBackend parses a backend name. The empty string means auto.
func ParseBackend(s string) (Backend, error) {
	switch b := Backend(strings.ToLower(strings.TrimSpace(s))); b {
	case "", BackendAuto:
		return BackendAuto, nil
	case BackendMJPEG, BackendFFmpeg, BackendGoCV:
		return b, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownBackend, s)
	}
}

// New returns a writer factory for backend.
//
// The selection flow for auto:
//  1. mjpeg when the output ends in .avi
//  2. ffmpeg when it can be found
//  3. gocv when compiled in
//
// An explicitly requested backend is returned without checking availability;
// its Open reports the problem.
func New(backend Backend, outputPath string, opts Options) (ports.WriterFactory, Info, error) {
	if opts.FFmpegPath != "" {
		ffmpegsink.SetFFmpegPath(opts.FFmpegPath)
	}

	info := Info{Requested: backend}

	switch backend {
	case BackendMJPEG:
		return build(BackendMJPEG, opts, info)
	case BackendFFmpeg:
		return build(BackendFFmpeg, opts, info)
	case BackendGoCV:
		return build(BackendGoCV, opts, info)
	case "", BackendAuto:
		info.Requested = BackendAuto
		return selectAuto(outputPath, opts, info)
	default:
		return nil, Info{}, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}

func selectAuto(outputPath string, opts Options, info Info) (ports.WriterFactory, Info, error) {
	if strings.EqualFold(filepath.Ext(outputPath), ".avi") {
		return build(BackendMJPEG, opts, info)
	}

	if ffmpegAvailable() {
		return build(BackendFFmpeg, opts, info)
	}

	if gocvAvailable() {
		if opts.Logger != nil {
			opts.Logger.Warn("ffmpeg not found, falling back to %s", string(BackendGoCV))
		}
		info.FallbackUsed = true
		return build(BackendGoCV, opts, info)
	}

	return nil, Info{}, fmt.Errorf("%w: install ffmpeg, build with -tags=gocv, or write an .avi file", ErrNoBackendAvailable)
}

func build(backend Backend, opts Options, info Info) (ports.WriterFactory, Info, error) {
	var factory ports.WriterFactory
	switch backend {
	case BackendMJPEG:
		if opts.Renderer == nil {
			return nil, Info{}, errors.New("smartsink: mjpeg backend requires a renderer")
		}
		factory = mjpegsink.New(opts.Renderer)
	case BackendFFmpeg:
		factory = ffmpegsink.New()
	case BackendGoCV:
		factory = gocvsink.New()
	}

	info.Backend = backend
	info.Codec = factory.Codec()
	return factory, info, nil
}

// Deferred is a WriterFactory that selects its backend on first use, so a run
// that stops before the writer is needed never fails on backend selection.
type Deferred struct {
	backend    Backend
	outputPath string
	opts       Options

	once    sync.Once
	factory ports.WriterFactory
	info    Info
	err     error
}

// NewDeferred returns a factory that calls New with these arguments when it is first used.
func NewDeferred(backend Backend, outputPath string, opts Options) *Deferred {
	return &Deferred{backend: backend, outputPath: outputPath, opts: opts}
}

func (d *Deferred) resolve() (ports.WriterFactory, Info, error) {
	d.once.Do(func() {
		d.factory, d.info, d.err = New(d.backend, d.outputPath, d.opts)
		if d.err == nil && d.opts.Logger != nil {
			d.opts.Logger.Debug("Using %s backend (%s)", string(d.info.Backend), d.info.Codec)
		}
	})
	return d.factory, d.info, d.err
}

// Info reports the selected backend, selecting it if needed.
func (d *Deferred) Info() (Info, error) {
	_, info, err := d.resolve()
	return info, err
}

// Name returns the selected backend name, or the requested one if selection failed.
func (d *Deferred) Name() string {
	f, _, err := d.resolve()
	if err != nil {
		return string(d.backend)
	}
	return f.Name()
}

// Codec returns the selected backend's codec tag, or "" if selection failed.
func (d *Deferred) Codec() string {
	f, _, err := d.resolve()
	if err != nil {
		return ""
	}
	return f.Codec()
}

// Open selects the backend and opens a writer on it.
func (d *Deferred) Open(opts ports.WriterOptions) (ports.VideoWriter, error) {
	f, _, err := d.resolve()
	if err != nil {
		return nil, err
	}
	return f.Open(opts)
}

var _ ports.WriterFactory = (*Deferred)(nil)

// Available lists the backends usable on this machine.
func Available() []Backend {
	backends := []Backend{BackendMJPEG}
	if ffmpegAvailable() {
		backends = append(backends, BackendFFmpeg)
	}
	if gocvAvailable() {
		backends = append(backends, BackendGoCV)
	}
	return backends
}
