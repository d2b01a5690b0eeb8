package gocvsink

import "errors"

// Codec is the fourcc passed to OpenCV.
const Codec = "mp4v"

var (
	// ErrNotCompiled is returned when the binary was built without OpenCV support.
	ErrNotCompiled = errors.New("gocvsink: OpenCV support not compiled in")

	// ErrNotOpened is returned when OpenCV could not open the output file.
	ErrNotOpened = errors.New("gocvsink: video writer not opened")

	// ErrClosed is returned when writing to a finalized writer.
	ErrClosed = errors.New("gocvsink: writer closed")

	// ErrFrameSize is returned when a frame does not match the opened size.
	ErrFrameSize = errors.New("gocvsink: frame size mismatch")
)
