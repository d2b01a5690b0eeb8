package pipeline

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when the frame directory is missing or holds no matching frames.
	ErrNotFound = errors.New("pipeline: not found")

	// ErrDecode is returned when the first frame cannot be decoded.
	ErrDecode = errors.New("pipeline: decode failed")

	// ErrSinkOpen is returned when the video writer cannot be opened.
	ErrSinkOpen = errors.New("pipeline: cannot open video writer")

	// ErrSinkWrite is returned when the video writer rejects a frame or fails to finalize.
	ErrSinkWrite = errors.New("pipeline: video write failed")

	// ErrDimensionMismatch is returned under PolicyFail when a frame size differs from the first frame.
	ErrDimensionMismatch = errors.New("pipeline: frame dimensions differ from first frame")

	// ErrInvalidConfig is returned for unusable settings such as a non-positive frame rate.
	ErrInvalidConfig = errors.New("pipeline: invalid configuration")

	// ErrOutputExists is returned when the output exists and overwriting was not confirmed.
	ErrOutputExists = errors.New("pipeline: output file already exists")
)

// FrameError attaches the frame position and path to an error.
type FrameError struct {
	Index int
	Path  string
	Err   error
}

func (e *FrameError) Error() string {
	return fmt.Sprintf("frame %d (%s): %v", e.Index, e.Path, e.Err)
}

func (e *FrameError) Unwrap() error {
	return e.Err
}
