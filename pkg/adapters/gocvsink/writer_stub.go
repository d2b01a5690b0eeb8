//go:build !gocv

// Package gocvsink writes mp4v video through OpenCV's VideoWriter.
// Build with -tags=gocv to enable it.
package gocvsink

import (
	"fmt"

	"github.com/user/framereel/pkg/ports"
)

// Available reports whether the OpenCV backend is compiled in.
const Available = false

// Factory is a stub when GoCV/OpenCV is not available
type Factory struct{}

// New creates a stub factory (requires building with -tags=gocv)
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

// Open always fails.
func (f *Factory) Open(opts ports.WriterOptions) (ports.VideoWriter, error) {
	return nil, fmt.Errorf("%w (build with -tags=gocv)", ErrNotCompiled)
}

var _ ports.WriterFactory = (*Factory)(nil)
