package ports

// VideoInfo describes a finished video file as read back from its container.
type VideoInfo struct {
	Container  string  // "mp4" or "avi"
	Codec      string  // Sample entry or stream handler tag, e.g. "mp4v", "MJPG"
	Width      int
	Height     int
	FrameCount int
	FPS        float64
	DurationMs int
}

// VideoProber reads container metadata from a video file.
type VideoProber interface {
	Probe(path string) (VideoInfo, error)
}
