// Package orchestrator coordinates all pipeline stages.
package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"github.com/ideamans/go-l10n"

	"github.com/user/framereel/pkg/pipeline"
	"github.com/user/framereel/pkg/ports"
)

// fpsTolerance is the relative frame rate difference accepted by verification.
// AVI stores microseconds per frame, so 60 fps reads back as 60.0024.
const fpsTolerance = 0.005

// Config contains all configuration for the orchestrator.
type Config struct {
	// Input
	FramesDir  string
	Extensions []string

	// Output
	OutputPath string
	FPS        int
	Quality    int // 1-100

	// Behavior
	DimensionPolicy pipeline.DimensionPolicy
	Overwrite       bool
	Verify          bool
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		FramesDir:       "images",
		Extensions:      append([]string(nil), pipeline.DefaultExtensions...),
		OutputPath:      "game_of_life.mp4",
		FPS:             60,
		Quality:         75,
		DimensionPolicy: pipeline.PolicyResize,
		Verify:          true,
	}
}

// Orchestrator coordinates the execution of all pipeline stages.
type Orchestrator struct {
	scanStage   pipeline.Stage[pipeline.ScanInput, pipeline.ScanResult]
	encodeStage pipeline.Stage[pipeline.EncodeInput, pipeline.EncodeResult]
	prober      ports.VideoProber
	prompter    ports.Prompter
	fs          ports.FileSystem
	sink        ports.DebugSink
	logger      ports.Logger
}

// New creates a new Orchestrator.
// prober and prompter may be nil: verification is then skipped and an
// existing output is never overwritten without Config.Overwrite.
func New(
	scanStage pipeline.Stage[pipeline.ScanInput, pipeline.ScanResult],
	encodeStage pipeline.Stage[pipeline.EncodeInput, pipeline.EncodeResult],
	prober ports.VideoProber,
	prompter ports.Prompter,
	fs ports.FileSystem,
	sink ports.DebugSink,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		scanStage:   scanStage,
		encodeStage: encodeStage,
		prober:      prober,
		prompter:    prompter,
		fs:          fs,
		sink:        sink,
		logger:      logger,
	}
}

// Run executes the complete pipeline.
func (o *Orchestrator) Run(ctx context.Context, config Config) (RunResult, error) {
	if config.FPS <= 0 {
		return RunResult{}, fmt.Errorf("%w: frame rate must be positive, got %d", pipeline.ErrInvalidConfig, config.FPS)
	}
	if config.OutputPath == "" {
		return RunResult{}, fmt.Errorf("%w: output path is empty", pipeline.ErrInvalidConfig)
	}
	if len(config.Extensions) == 0 {
		config.Extensions = pipeline.DefaultExtensions
	}

	result := RunResult{
		FramesDir:  config.FramesDir,
		Extensions: config.Extensions,
		OutputPath: config.OutputPath,
		FPS:        config.FPS,
	}

	// 1. Validate
	o.logger.Info("Assembling frames from %s", config.FramesDir)
	scanned, err := o.scanStage.Execute(ctx, pipeline.ScanInput{Dir: config.FramesDir, Extensions: config.Extensions})
	if err != nil {
		o.logger.Error("Failed to assemble video: %s", err.Error())
		return result, fmt.Errorf("scan stage: %w", err)
	}
	result.FramesFound = len(scanned.Frames)
	result.ZeroPadded = scanned.ZeroPadded
	o.logger.Info("Found %d frames", result.FramesFound)

	// 2. Guard the output
	if err := o.checkOutput(config); err != nil {
		o.logger.Error("Failed to assemble video: %s", err.Error())
		return result, err
	}

	// 3. Initialize, stream, finalize
	encoded, err := o.encodeStage.Execute(ctx, pipeline.EncodeInput{
		Frames:     scanned.Frames,
		OutputPath: config.OutputPath,
		FPS:        config.FPS,
		Quality:    config.Quality,
		Policy:     config.DimensionPolicy,
	})
	result.applyEncode(encoded)
	o.saveManifest(scanned, result)
	if err != nil {
		o.logger.Error("Failed to assemble video: %s", err.Error())
		return result, fmt.Errorf("encode stage: %w", err)
	}

	if len(result.Skipped) > 0 {
		o.logger.Warn("%d of %d frames were skipped", len(result.Skipped), result.FramesFound)
	}

	// 4. Read back
	if config.Verify && o.prober != nil {
		o.verify(&result)
	}

	return result, nil
}

func (o *Orchestrator) checkOutput(config Config) error {
	exists, err := o.fs.Exists(config.OutputPath)
	if err != nil {
		return fmt.Errorf("check output: %w", err)
	}
	if !exists {
		return nil
	}
	if config.Overwrite {
		o.logger.Info("Overwriting existing output %s", config.OutputPath)
		return nil
	}
	if o.prompter == nil {
		return fmt.Errorf("%w: %s", pipeline.ErrOutputExists, config.OutputPath)
	}

	ok, err := o.prompter.Confirm(l10n.F("%s already exists. Overwrite?", config.OutputPath), false)
	if err != nil {
		return fmt.Errorf("%w: %s (%v)", pipeline.ErrOutputExists, config.OutputPath, err)
	}
	if !ok {
		return fmt.Errorf("%w: %s", pipeline.ErrOutputExists, config.OutputPath)
	}
	o.logger.Info("Overwriting existing output %s", config.OutputPath)
	return nil
}

func (o *Orchestrator) verify(result *RunResult) {
	info, err := o.prober.Probe(result.OutputPath)
	if err != nil {
		o.logger.Warn("Could not probe output: %s", err.Error())
		return
	}
	result.Probe = &info
	o.logger.Debug("Probed %s: %d frames, %dx%d, %.2f fps", result.OutputPath, info.FrameCount, info.Width, info.Height, info.FPS)

	if info.FrameCount != result.FramesWritten {
		o.logger.Warn("Output has %d frames but %d were written", info.FrameCount, result.FramesWritten)
	}
	if info.Width != result.Width || info.Height != result.Height {
		o.logger.Warn("Output is %dx%d but frames are %dx%d", info.Width, info.Height, result.Width, result.Height)
	}
	if math.Abs(info.FPS-float64(result.FPS)) > float64(result.FPS)*fpsTolerance {
		o.logger.Warn("Output frame rate %.3f differs from requested %d", info.FPS, result.FPS)
	}
}

// manifest is the debug record of a run.
type manifest struct {
	FramesDir string                  `json:"framesDir"`
	Frames    []string                `json:"frames"`
	Skipped   []pipeline.SkippedFrame `json:"skipped"`
	Output    string                  `json:"output"`
	Width     int                     `json:"width"`
	Height    int                     `json:"height"`
	FPS       int                     `json:"fps"`
	Backend   string                  `json:"backend"`
	Codec     string                  `json:"codec"`
	Written   int                     `json:"written"`
}

func (o *Orchestrator) saveManifest(scanned pipeline.ScanResult, result RunResult) {
	if !o.sink.Enabled() {
		return
	}
	skipped := result.Skipped
	if skipped == nil {
		skipped = []pipeline.SkippedFrame{}
	}
	data, err := json.MarshalIndent(manifest{
		FramesDir: scanned.Dir,
		Frames:    scanned.Frames,
		Skipped:   skipped,
		Output:    result.OutputPath,
		Width:     result.Width,
		Height:    result.Height,
		FPS:       result.FPS,
		Backend:   result.Backend,
		Codec:     result.Codec,
		Written:   result.FramesWritten,
	}, "", "  ")
	if err != nil {
		return
	}
	if err := o.sink.SaveManifestJSON(data); err != nil {
		o.logger.Debug("save manifest: %s", err.Error())
	}
}

// RunResult contains the results of a pipeline run for summary generation.
type RunResult struct {
	// Input
	FramesDir   string
	Extensions  []string
	FramesFound int
	ZeroPadded  bool

	// Output
	OutputPath    string
	FramesWritten int
	Skipped       []pipeline.SkippedFrame
	Width         int
	Height        int
	FPS           int
	Codec         string
	Backend       string
	FileSize      int64
	DurationMs    int

	// Probe is the container metadata read back after writing, when verified.
	Probe *ports.VideoInfo
}

func (r *RunResult) applyEncode(e pipeline.EncodeResult) {
	r.FramesWritten = e.Written
	r.Skipped = e.Skipped
	r.Width = e.Width
	r.Height = e.Height
	r.Codec = e.Codec
	r.Backend = e.Backend
	r.FileSize = e.FileSize
	r.DurationMs = e.DurationMs
}
