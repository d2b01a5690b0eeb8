package ffmpegsink

import "errors"

var (
	// ErrNotInitialized is returned when writing to a writer that was closed or aborted.
	ErrNotInitialized = errors.New("ffmpegsink: writer not initialized")

	// ErrFFmpegNotFound is returned when ffmpeg cannot be located.
	ErrFFmpegNotFound = errors.New("ffmpegsink: ffmpeg not found in PATH")

	// ErrFrameSize is returned when a frame does not match the opened size.
	ErrFrameSize = errors.New("ffmpegsink: frame size mismatch")
)
