package pipeline

import (
	"fmt"
	"strings"
)

// =============================================================================
// Scan Stage Types
// =============================================================================

// DefaultExtensions is the frame file filter used when none is configured.
var DefaultExtensions = []string{".ppm"}

// ScanInput contains parameters for enumerating frame files.
type ScanInput struct {
	Dir        string   // Frame source directory
	Extensions []string // Case-sensitive name suffixes (default: .ppm)
}

// ScanResult contains the ordered frame file set.
type ScanResult struct {
	Dir string

	// Frames holds matching paths sorted ascending by path string.
	// This order is the output frame order.
	Frames []string

	// ZeroPadded is false when the numeric indices in the file names have
	// varying widths, in which case lexicographic order may not be the
	// intended frame order.
	ZeroPadded bool
}

// =============================================================================
// Encode Stage Types
// =============================================================================

// DimensionPolicy decides what happens to a frame whose size differs from
// the first frame.
type DimensionPolicy string

const (
	// PolicyResize scales the frame to the first frame's size.
	PolicyResize DimensionPolicy = "resize"
	// PolicyFit scales the frame preserving aspect ratio and letterboxes it.
	PolicyFit DimensionPolicy = "fit"
	// PolicySkip drops the frame and records it as skipped.
	PolicySkip DimensionPolicy = "skip"
	// PolicyFail aborts the run with ErrDimensionMismatch.
	PolicyFail DimensionPolicy = "fail"
)

// ParseDimensionPolicy parses a policy name. The empty string means PolicyResize.
func ParseDimensionPolicy(s string) (DimensionPolicy, error) {
	switch DimensionPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", PolicyResize:
		return PolicyResize, nil
	case PolicyFit:
		return PolicyFit, nil
	case PolicySkip:
		return PolicySkip, nil
	case PolicyFail:
		return PolicyFail, nil
	default:
		return "", fmt.Errorf("%w: unknown dimension policy %q (expected resize|fit|skip|fail)", ErrInvalidConfig, s)
	}
}

// EncodeInput contains parameters for the encode stage.
type EncodeInput struct {
	Frames     []string // Sorted frame paths
	OutputPath string
	FPS        int
	Quality    int // 1-100
	Policy     DimensionPolicy
}

// SkippedFrame records a frame that was left out of the video.
type SkippedFrame struct {
	Index  int    // Position in the sorted frame list
	Path   string
	Reason string
}

// EncodeResult contains the encoding output.
type EncodeResult struct {
	OutputPath string
	Written    int
	Skipped    []SkippedFrame
	Width      int
	Height     int
	Codec      string
	Backend    string
	FileSize   int64
	DurationMs int
}
