package framereel

import (
	"context"
	"fmt"

	"github.com/user/framereel/pkg/adapters/filesink"
	"github.com/user/framereel/pkg/adapters/ggrenderer"
	"github.com/user/framereel/pkg/adapters/imagedecoder"
	"github.com/user/framereel/pkg/adapters/logger"
	"github.com/user/framereel/pkg/adapters/nullsink"
	"github.com/user/framereel/pkg/adapters/osfilesystem"
	"github.com/user/framereel/pkg/adapters/prompter"
	"github.com/user/framereel/pkg/adapters/smartsink"
	"github.com/user/framereel/pkg/adapters/videoprobe"
	"github.com/user/framereel/pkg/orchestrator"
	"github.com/user/framereel/pkg/ports"
	"github.com/user/framereel/pkg/stages/encode"
	"github.com/user/framereel/pkg/stages/scan"
)

// Options overrides the default adapters. Nil fields use the defaults.
type Options struct {
	Logger     ports.Logger
	Prompter   ports.Prompter
	FileSystem ports.FileSystem
}

// Assembler runs the frame assembly pipeline with the default adapters.
type Assembler struct {
	config  Config
	writers *smartsink.Deferred
	orch    *orchestrator.Orchestrator
}

// New wires the pipeline for cfg. The writer backend is selected when the
// first frame is encoded, so scan errors are reported before backend errors.
func New(cfg Config, opts Options) (*Assembler, error) {
	log := opts.Logger
	if log == nil {
		log = logger.NewNoop()
	}
	fs := opts.FileSystem
	if fs == nil {
		fs = osfilesystem.New()
	}
	ask := opts.Prompter
	if ask == nil {
		ask = prompter.New()
	}

	renderer := ggrenderer.New()

	backend, err := smartsink.ParseBackend(string(cfg.Backend))
	if err != nil {
		return nil, err
	}
	writers := smartsink.NewDeferred(backend, cfg.OutputPath, smartsink.Options{
		FFmpegPath: cfg.FFmpegPath,
		Renderer:   renderer,
		Logger:     log,
	})

	var sink ports.DebugSink
	if cfg.Debug {
		if err := fs.MkdirAll(cfg.DebugDir); err != nil {
			return nil, fmt.Errorf("create debug directory: %w", err)
		}
		sink = filesink.New(cfg.DebugDir, fs, renderer)
	} else {
		sink = nullsink.New()
	}

	scanStage := scan.NewStage(fs, log)
	encodeStage := encode.NewStage(imagedecoder.New(fs), writers, renderer, fs, sink, log)

	orch := orchestrator.New(
		scanStage,
		encodeStage,
		videoprobe.New(),
		ask,
		fs,
		sink,
		log,
	)

	return &Assembler{config: cfg, writers: writers, orch: orch}, nil
}

// Backend reports the selected writer backend, selecting it if Run has not.
// The zero Info is returned when no backend is usable.
func (a *Assembler) Backend() smartsink.Info {
	info, _ := a.writers.Info()
	return info
}

// Run assembles the frames into the output video.
func (a *Assembler) Run(ctx context.Context) (orchestrator.RunResult, error) {
	return a.orch.Run(ctx, a.config.ToOrchestratorConfig())
}

// Assemble is a shortcut for New followed by Run.
func Assemble(ctx context.Context, cfg Config, opts Options) (orchestrator.RunResult, error) {
	a, err := New(cfg, opts)
	if err != nil {
		return orchestrator.RunResult{}, err
	}
	return a.Run(ctx)
}
