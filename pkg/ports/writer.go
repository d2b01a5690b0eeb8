package ports

import "image"

// WriterOptions configures a video writer.
type WriterOptions struct {
	Path    string // Output file path
	Width   int    // Frame width in pixels
	Height  int    // Frame height in pixels
	FPS     int    // Frames per second
	Quality int    // 1-100, higher is better
}

// VideoWriter is a stateful sink that encodes frames into a single video file.
// Frames must match the dimensions the writer was opened with.
type VideoWriter interface {
	// WriteFrame appends one frame to the video.
	WriteFrame(img image.Image) error

	// Close flushes and finalizes the output file.
	Close() error

	// Abort releases resources and removes the partially written output.
	Abort() error
}

// WriterFactory opens video writers for one backend.
type WriterFactory interface {
	// Open creates the output file and returns a writer bound to it.
	Open(opts WriterOptions) (VideoWriter, error)

	// Name returns the backend name (e.g. "mjpeg", "ffmpeg").
	Name() string

	// Codec returns the four-character codec tag written by this backend.
	Codec() string
}
