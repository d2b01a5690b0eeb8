package framereel

import (
	"testing"

	"github.com/user/framereel/pkg/adapters/smartsink"
	"github.com/user/framereel/pkg/pipeline"
)

func TestNewConfigBuilder_Defaults(t *testing.T) {
	cfg := NewConfigBuilder().Build()

	if cfg.FramesDir != "images" {
		t.Errorf("expected frames dir images, got %s", cfg.FramesDir)
	}
	if cfg.OutputPath != "game_of_life.mp4" {
		t.Errorf("expected output game_of_life.mp4, got %s", cfg.OutputPath)
	}
	if cfg.FPS != 60 {
		t.Errorf("expected 60 fps, got %d", cfg.FPS)
	}
	if len(cfg.Extensions) != 1 || cfg.Extensions[0] != ".ppm" {
		t.Errorf("expected [.ppm], got %v", cfg.Extensions)
	}
	if cfg.Quality != 75 {
		t.Errorf("expected quality 75, got %d", cfg.Quality)
	}
	if cfg.Backend != smartsink.BackendAuto {
		t.Errorf("expected auto backend, got %s", cfg.Backend)
	}
	if cfg.DimensionPolicy != pipeline.PolicyResize {
		t.Errorf("expected resize policy, got %s", cfg.DimensionPolicy)
	}
	if !cfg.Verify || cfg.Overwrite || cfg.Debug {
		t.Errorf("unexpected flags %+v", cfg)
	}
	if cfg.DebugDir != "./debug" {
		t.Errorf("expected ./debug, got %s", cfg.DebugDir)
	}
}

func TestConfigBuilder_Overrides(t *testing.T) {
	cfg := NewConfigBuilder().
		WithFramesDir("frames").
		WithExtensions(".png", ".PNG").
		WithOutputPath("out.avi").
		WithFPS(24).
		WithQualityPreset(QualityHigh).
		WithBackend(smartsink.BackendMJPEG).
		WithFFmpegPath("/opt/ffmpeg").
		WithDimensionPolicy(pipeline.PolicyFit).
		WithOverwrite(true).
		WithVerify(false).
		WithDebug(true).
		WithDebugDir("dbg").
		Build()

	if cfg.FramesDir != "frames" || cfg.OutputPath != "out.avi" || cfg.FPS != 24 {
		t.Errorf("unexpected paths/fps %+v", cfg)
	}
	if len(cfg.Extensions) != 2 {
		t.Errorf("expected 2 extensions, got %v", cfg.Extensions)
	}
	if cfg.Quality != 90 {
		t.Errorf("expected quality 90, got %d", cfg.Quality)
	}
	if cfg.Backend != smartsink.BackendMJPEG || cfg.FFmpegPath != "/opt/ffmpeg" {
		t.Errorf("unexpected backend %+v", cfg)
	}
	if cfg.DimensionPolicy != pipeline.PolicyFit {
		t.Errorf("expected fit, got %s", cfg.DimensionPolicy)
	}
	if !cfg.Overwrite || cfg.Verify || !cfg.Debug || cfg.DebugDir != "dbg" {
		t.Errorf("unexpected flags %+v", cfg)
	}
}

func TestConfigBuilder_Constraints(t *testing.T) {
	tests := []struct {
		name    string
		quality int
		want    int
	}{
		{"too low", 0, 1},
		{"negative", -5, 1},
		{"too high", 150, 100},
		{"in range", 42, 42},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfigBuilder().WithQuality(tt.quality).Build()
			if cfg.Quality != tt.want {
				t.Errorf("expected %d, got %d", tt.want, cfg.Quality)
			}
		})
	}

	cfg := NewConfigBuilder().WithExtensions().WithDebugDir("").Build()
	if len(cfg.Extensions) != 1 || cfg.Extensions[0] != ".ppm" {
		t.Errorf("expected default extensions, got %v", cfg.Extensions)
	}
	if cfg.DebugDir != "./debug" {
		t.Errorf("expected default debug dir, got %s", cfg.DebugDir)
	}
}

func TestGetQuality(t *testing.T) {
	tests := []struct {
		preset QualityPreset
		want   int
	}{
		{QualityLow, 50},
		{QualityMedium, 75},
		{QualityHigh, 90},
		{"unknown", 75},
	}
	for _, tt := range tests {
		if got := GetQuality(tt.preset); got != tt.want {
			t.Errorf("GetQuality(%s) = %d, want %d", tt.preset, got, tt.want)
		}
	}
}

func TestConfig_ToOrchestratorConfig(t *testing.T) {
	cfg := NewConfigBuilder().WithFPS(30).WithOverwrite(true).Build()
	oc := cfg.ToOrchestratorConfig()

	if oc.FramesDir != cfg.FramesDir || oc.OutputPath != cfg.OutputPath {
		t.Errorf("paths not carried over: %+v", oc)
	}
	if oc.FPS != 30 || oc.Quality != cfg.Quality || !oc.Overwrite || !oc.Verify {
		t.Errorf("settings not carried over: %+v", oc)
	}
	if oc.DimensionPolicy != pipeline.PolicyResize {
		t.Errorf("expected resize policy, got %s", oc.DimensionPolicy)
	}
}
