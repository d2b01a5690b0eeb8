package summarizer

import "time"

// Summary contains all data collected during an assembly run.
type Summary struct {
	// Metadata
	GeneratedAt time.Time

	// Frame source
	Input InputInfo

	// Encoding settings
	Settings Settings

	// Video output details
	Video VideoInfo

	// Frames left out of the video
	Skipped []SkippedFrame

	// Container metadata read back from the output, nil when not verified
	Probe *ProbeInfo
}

// InputInfo describes the frame source.
type InputInfo struct {
	Dir         string
	Extensions  []string
	FramesFound int
	ZeroPadded  bool
}

// Settings contains the encoding configuration.
type Settings struct {
	FPS             int
	Quality         int
	QualityPreset   string
	Backend         string
	DimensionPolicy string
}

// VideoInfo contains information about the output video.
type VideoInfo struct {
	Path          string
	Codec         string
	FramesWritten int
	Width         int
	Height        int
	DurationMs    int
	FileSize      int64
}

// SkippedFrame is a frame that was not written.
type SkippedFrame struct {
	Index  int
	Path   string
	Reason string
}

// ProbeInfo is what the container reports about itself.
type ProbeInfo struct {
	Container  string
	Codec      string
	FrameCount int
	FPS        float64
	Width      int
	Height     int
}

// NewSummary creates a new Summary with the current timestamp.
func NewSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Now(),
	}
}

// Builder provides a fluent interface for building a Summary.
type Builder struct {
	summary *Summary
}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{
		summary: NewSummary(),
	}
}

// WithInput sets frame source information.
func (b *Builder) WithInput(input InputInfo) *Builder {
	b.summary.Input = input
	return b
}

// WithSettings sets encoding settings.
func (b *Builder) WithSettings(settings Settings) *Builder {
	b.summary.Settings = settings
	return b
}

// WithVideo sets video output information.
func (b *Builder) WithVideo(video VideoInfo) *Builder {
	b.summary.Video = video
	return b
}

// AddSkipped records a skipped frame.
func (b *Builder) AddSkipped(index int, path, reason string) *Builder {
	b.summary.Skipped = append(b.summary.Skipped, SkippedFrame{Index: index, Path: path, Reason: reason})
	return b
}

// WithProbe sets the container metadata read back from the output.
func (b *Builder) WithProbe(probe ProbeInfo) *Builder {
	b.summary.Probe = &probe
	return b
}

// Build returns the constructed Summary.
func (b *Builder) Build() *Summary {
	return b.summary
}
