// Package framereel provides a high-level API for assembling image frames into a video.
package framereel

import (
	"github.com/user/framereel/pkg/adapters/smartsink"
	"github.com/user/framereel/pkg/orchestrator"
	"github.com/user/framereel/pkg/pipeline"
)

// QualityPreset represents a video quality preset name.
type QualityPreset string

const (
	QualityLow    QualityPreset = "low"
	QualityMedium QualityPreset = "medium"
	QualityHigh   QualityPreset = "high"
)

// GetQuality returns the 1-100 quality value for the given preset.
// Unknown presets map to medium.
func GetQuality(preset QualityPreset) int {
	switch preset {
	case QualityLow:
		return 50
	case QualityHigh:
		return 90
	default: // medium
		return 75
	}
}

// Config represents the configuration for a frame assembly run.
type Config struct {
	// Input
	FramesDir  string   // Directory holding the frames (default: images)
	Extensions []string // Case-sensitive file name suffixes (default: .ppm)

	// Output
	OutputPath string            // Video file path (default: game_of_life.mp4)
	FPS        int               // Frames per second (default: 60)
	Quality    int               // 1-100, higher is better (default: 75)
	Backend    smartsink.Backend // auto, mjpeg, ffmpeg or gocv
	FFmpegPath string            // Custom ffmpeg binary

	// Behavior
	DimensionPolicy pipeline.DimensionPolicy // resize, fit, skip or fail
	Overwrite       bool                     // Replace an existing output without asking
	Verify          bool                     // Probe the output after writing

	// Debug
	Debug    bool
	DebugDir string // default: ./debug
}

// ConfigBuilder provides a fluent interface for building Config.
type ConfigBuilder struct {
	config Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		config: defaults(),
	}
}

// defaults returns the default configuration.
func defaults() Config {
	return Config{
		// Input
		FramesDir:  "images",
		Extensions: append([]string(nil), pipeline.DefaultExtensions...),

		// Output
		OutputPath: "game_of_life.mp4",
		FPS:        60,
		Quality:    GetQuality(QualityMedium),
		Backend:    smartsink.BackendAuto,

		// Behavior
		DimensionPolicy: pipeline.PolicyResize,
		Verify:          true,

		// Debug
		DebugDir: "./debug",
	}
}

// Build returns the final Config, applying validation and constraints.
func (b *ConfigBuilder) Build() Config {
	cfg := b.config

	// Clamp quality to 1-100
	if cfg.Quality < 1 {
		cfg.Quality = 1
	}
	if cfg.Quality > 100 {
		cfg.Quality = 100
	}

	if len(cfg.Extensions) == 0 {
		cfg.Extensions = append([]string(nil), pipeline.DefaultExtensions...)
	}
	if cfg.Backend == "" {
		cfg.Backend = smartsink.BackendAuto
	}
	if cfg.DimensionPolicy == "" {
		cfg.DimensionPolicy = pipeline.PolicyResize
	}
	if cfg.DebugDir == "" {
		cfg.DebugDir = "./debug"
	}

	return cfg
}

// WithFramesDir sets the frame source directory.
func (b *ConfigBuilder) WithFramesDir(dir string) *ConfigBuilder {
	b.config.FramesDir = dir
	return b
}

// WithExtensions replaces the file name suffix filter.
func (b *ConfigBuilder) WithExtensions(exts ...string) *ConfigBuilder {
	b.config.Extensions = append([]string(nil), exts...)
	return b
}

// WithOutputPath sets the video file path.
func (b *ConfigBuilder) WithOutputPath(path string) *ConfigBuilder {
	b.config.OutputPath = path
	return b
}

// WithFPS sets the frame rate.
func (b *ConfigBuilder) WithFPS(fps int) *ConfigBuilder {
	b.config.FPS = fps
	return b
}

// WithQuality sets the quality (1-100, higher is better).
// Values outside the range will be clamped.
func (b *ConfigBuilder) WithQuality(quality int) *ConfigBuilder {
	b.config.Quality = quality
	return b
}

// WithQualityPreset applies a quality preset (low, medium, high).
func (b *ConfigBuilder) WithQualityPreset(preset QualityPreset) *ConfigBuilder {
	b.config.Quality = GetQuality(preset)
	return b
}

// WithBackend selects the writer backend.
func (b *ConfigBuilder) WithBackend(backend smartsink.Backend) *ConfigBuilder {
	b.config.Backend = backend
	return b
}

// WithFFmpegPath sets a custom ffmpeg binary.
func (b *ConfigBuilder) WithFFmpegPath(path string) *ConfigBuilder {
	b.config.FFmpegPath = path
	return b
}

// WithDimensionPolicy sets how frames of a different size are handled.
func (b *ConfigBuilder) WithDimensionPolicy(policy pipeline.DimensionPolicy) *ConfigBuilder {
	b.config.DimensionPolicy = policy
	return b
}

// WithOverwrite allows replacing an existing output file.
func (b *ConfigBuilder) WithOverwrite(overwrite bool) *ConfigBuilder {
	b.config.Overwrite = overwrite
	return b
}

// WithVerify enables probing the output after writing.
func (b *ConfigBuilder) WithVerify(verify bool) *ConfigBuilder {
	b.config.Verify = verify
	return b
}

// WithDebug enables the debug sink.
func (b *ConfigBuilder) WithDebug(enabled bool) *ConfigBuilder {
	b.config.Debug = enabled
	return b
}

// WithDebugDir sets the directory for debug output.
func (b *ConfigBuilder) WithDebugDir(dir string) *ConfigBuilder {
	b.config.DebugDir = dir
	return b
}

// ToOrchestratorConfig converts Config to orchestrator.Config.
func (c Config) ToOrchestratorConfig() orchestrator.Config {
	return orchestrator.Config{
		FramesDir:       c.FramesDir,
		Extensions:      c.Extensions,
		OutputPath:      c.OutputPath,
		FPS:             c.FPS,
		Quality:         c.Quality,
		DimensionPolicy: c.DimensionPolicy,
		Overwrite:       c.Overwrite,
		Verify:          c.Verify,
	}
}
