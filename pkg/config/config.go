// Package config provides configuration loading and management.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/user/framereel/pkg/adapters/smartsink"
	"github.com/user/framereel/pkg/framereel"
	"github.com/user/framereel/pkg/pipeline"
)

// Config represents a framereel YAML configuration file.
// Zero values mean "not set" and leave the defaults in place.
type Config struct {
	// Input/Output
	Frames     string   `yaml:"frames"`
	Extensions []string `yaml:"extensions"`
	Output     string   `yaml:"output"`

	// Encoding
	FPS        int    `yaml:"fps"`
	Quality    string `yaml:"quality"` // low, medium or high
	Backend    string `yaml:"backend"`
	FFmpegPath string `yaml:"ffmpeg_path"`

	// Behavior
	OnMismatch string `yaml:"on_mismatch"`
	Overwrite  *bool  `yaml:"overwrite"`
	Verify     *bool  `yaml:"verify"`

	// Debug
	Debug    bool   `yaml:"debug"`
	DebugDir string `yaml:"debug_dir"`

	// Logging
	LogLevel string `yaml:"log_level"`
	Summary  string `yaml:"summary"`
}

// LoadFromFile loads configuration from a YAML file.
func LoadFromFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML, rejecting unknown keys.
func Parse(data []byte) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %v", pipeline.ErrInvalidConfig, err)
	}
	return cfg, nil
}

// Apply copies every value set in c onto b.
func (c Config) Apply(b *framereel.ConfigBuilder) error {
	if c.Frames != "" {
		b.WithFramesDir(c.Frames)
	}
	if len(c.Extensions) > 0 {
		b.WithExtensions(c.Extensions...)
	}
	if c.Output != "" {
		b.WithOutputPath(c.Output)
	}
	if c.FPS != 0 {
		if c.FPS < 0 {
			return fmt.Errorf("%w: fps must be positive, got %d", pipeline.ErrInvalidConfig, c.FPS)
		}
		b.WithFPS(c.FPS)
	}
	if c.Quality != "" {
		preset, err := ParseQualityPreset(c.Quality)
		if err != nil {
			return err
		}
		b.WithQualityPreset(preset)
	}
	if c.Backend != "" {
		backend, err := smartsink.ParseBackend(c.Backend)
		if err != nil {
			return fmt.Errorf("%w: %v", pipeline.ErrInvalidConfig, err)
		}
		b.WithBackend(backend)
	}
	if c.FFmpegPath != "" {
		b.WithFFmpegPath(c.FFmpegPath)
	}
	if c.OnMismatch != "" {
		policy, err := pipeline.ParseDimensionPolicy(c.OnMismatch)
		if err != nil {
			return err
		}
		b.WithDimensionPolicy(policy)
	}
	if c.Overwrite != nil {
		b.WithOverwrite(*c.Overwrite)
	}
	if c.Verify != nil {
		b.WithVerify(*c.Verify)
	}
	if c.Debug {
		b.WithDebug(true)
	}
	if c.DebugDir != "" {
		b.WithDebugDir(c.DebugDir)
	}
	return nil
}

// ParseQualityPreset validates a quality preset name.
func ParseQualityPreset(s string) (framereel.QualityPreset, error) {
	switch p := framereel.QualityPreset(s); p {
	case framereel.QualityLow, framereel.QualityMedium, framereel.QualityHigh:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown quality %q (expected low|medium|high)", pipeline.ErrInvalidConfig, s)
	}
}
