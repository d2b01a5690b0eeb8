package ports

import (
	"image"
)

// DebugSink abstracts debug output for intermediate results.
type DebugSink interface {
	// Enabled returns true if debug output is enabled.
	Enabled() bool

	// SaveFrame saves a frame exactly as it was handed to the video writer.
	SaveFrame(index int, img image.Image) error

	// SaveManifestJSON saves the run manifest (sorted inputs, skipped frames).
	SaveManifestJSON(data []byte) error
}
