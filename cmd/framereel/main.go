// Package main provides the CLI entry point for framereel.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/framereel/pkg/adapters/logger"
	"github.com/user/framereel/pkg/adapters/osfilesystem"
	"github.com/user/framereel/pkg/adapters/smartsink"
	"github.com/user/framereel/pkg/config"
	"github.com/user/framereel/pkg/framereel"
	"github.com/user/framereel/pkg/pipeline"
	"github.com/user/framereel/pkg/ports"
	"github.com/user/framereel/pkg/summarizer"
)

var version = "dev"

// Exit codes.
const (
	exitOK       = 0
	exitFailure  = 1
	exitNotFound = 2
	exitDecode   = 3
	exitSink     = 4
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	app := newApp(stdout, stderr)
	if err := app.Run(args); err != nil {
		fmt.Fprintln(stderr, l10n.F("Error: %s", err.Error()))
		return exitCode(err)
	}
	return exitOK
}

// exitCode maps an assembly error to the process exit status.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, pipeline.ErrNotFound):
		return exitNotFound
	case errors.Is(err, pipeline.ErrDecode):
		return exitDecode
	case errors.Is(err, pipeline.ErrSinkOpen),
		errors.Is(err, pipeline.ErrSinkWrite),
		errors.Is(err, smartsink.ErrNoBackendAvailable):
		return exitSink
	default:
		return exitFailure
	}
}

func newApp(stdout, stderr io.Writer) *cli.App {
	const (
		catInput  = "Input"
		catOutput = "Output"
		catVideo  = "Video and Quality"
		catConfig = "Configuration"
		catDebug  = "Debug"
		catLog    = "Logging"
	)

	return &cli.App{
		Name:      "framereel",
		Usage:     l10n.T("Assemble image frames into a video"),
		UsageText: "framereel [flags] [FRAMES_DIR]",
		Description: l10n.T("framereel reads still-image frames from a directory, " +
			"orders them by file name and encodes them into a video at a fixed frame rate."),
		Version:   version,
		Writer:    stdout,
		ErrWriter: stderr,
		// Errors are reported by run so the exit code can be derived from them.
		ExitErrHandler: func(*cli.Context, error) {},
		Flags: []cli.Flag{
			// Input
			&cli.StringFlag{
				Name:     "frames",
				Aliases:  []string{"i"},
				Value:    "images",
				Usage:    l10n.T("Directory containing the frame images"),
				Category: l10n.T(catInput),
			},
			&cli.StringSliceFlag{
				Name:     "ext",
				Value:    cli.NewStringSlice(".ppm"),
				Usage:    l10n.T("Frame file extension, repeatable (case-sensitive)"),
				Category: l10n.T(catInput),
			},

			// Output
			&cli.StringFlag{
				Name:     "output",
				Aliases:  []string{"o"},
				Value:    "game_of_life.mp4",
				Usage:    l10n.T("Output video file path"),
				Category: l10n.T(catOutput),
			},
			&cli.BoolFlag{
				Name:     "overwrite",
				Aliases:  []string{"y"},
				Usage:    l10n.T("Overwrite the output file without asking"),
				Category: l10n.T(catOutput),
			},
			&cli.BoolFlag{
				Name:     "verify",
				Value:    true,
				Usage:    l10n.T("Read the output back and check frame count and frame rate"),
				Category: l10n.T(catOutput),
			},

			// Video and quality
			&cli.IntFlag{
				Name:     "fps",
				Aliases:  []string{"r"},
				Value:    60,
				Usage:    l10n.T("Frames per second"),
				Category: l10n.T(catVideo),
			},
			&cli.StringFlag{
				Name:     "quality",
				Aliases:  []string{"q"},
				Value:    string(framereel.QualityMedium),
				Usage:    l10n.T("Quality preset (low, medium, high)"),
				Category: l10n.T(catVideo),
			},
			&cli.StringFlag{
				Name:     "backend",
				Value:    string(smartsink.BackendAuto),
				Usage:    l10n.T("Writer backend (auto, mjpeg, ffmpeg, gocv)"),
				Category: l10n.T(catVideo),
			},
			&cli.StringFlag{
				Name:     "on-mismatch",
				Value:    string(pipeline.PolicyResize),
				Usage:    l10n.T("Frames with a different size: resize, fit, skip or fail"),
				Category: l10n.T(catVideo),
			},
			&cli.StringFlag{
				Name:     "ffmpeg-path",
				Usage:    l10n.T("Path to ffmpeg executable"),
				EnvVars:  []string{"FFMPEG_PATH"},
				Category: l10n.T(catVideo),
			},

			// Configuration
			&cli.StringFlag{
				Name:     "config",
				Aliases:  []string{"c"},
				Usage:    l10n.T("YAML configuration file"),
				Category: l10n.T(catConfig),
			},
			&cli.StringFlag{
				Name:     "summary",
				Usage:    l10n.T("Output execution summary to file (Markdown format)"),
				Category: l10n.T(catConfig),
			},

			// Debug
			&cli.BoolFlag{
				Name:     "debug",
				Aliases:  []string{"d"},
				Usage:    l10n.T("Save every written frame and a manifest for inspection"),
				Category: l10n.T(catDebug),
			},
			&cli.StringFlag{
				Name:     "debug-dir",
				Value:    "./debug",
				Usage:    l10n.T("Directory for debug output"),
				Category: l10n.T(catDebug),
			},

			// Logging
			&cli.StringFlag{
				Name:     "log-level",
				Aliases:  []string{"l"},
				Value:    "info",
				Usage:    l10n.T("Log level (debug, info, warn, error)"),
				Category: l10n.T(catLog),
			},
			&cli.BoolFlag{
				Name:     "quiet",
				Aliases:  []string{"Q"},
				Usage:    l10n.T("Suppress all log output"),
				Category: l10n.T(catLog),
			},
		},
		Action: assemble,
	}
}

// settings is the resolved configuration of one invocation.
type settings struct {
	config      framereel.Config
	preset      framereel.QualityPreset
	summaryPath string
	logLevel    string
	quiet       bool
}

// resolveSettings layers defaults, the config file and command-line flags, in that order.
func resolveSettings(c *cli.Context) (settings, error) {
	var file config.Config
	if path := c.String("config"); path != "" {
		loaded, err := config.LoadFromFile(path)
		if err != nil {
			return settings{}, err
		}
		file = loaded
	}

	s := settings{
		preset:      framereel.QualityMedium,
		summaryPath: file.Summary,
		logLevel:    "info",
		quiet:       c.Bool("quiet"),
	}
	if file.LogLevel != "" {
		s.logLevel = file.LogLevel
	}
	if file.Quality != "" {
		preset, err := config.ParseQualityPreset(file.Quality)
		if err != nil {
			return settings{}, err
		}
		s.preset = preset
	}

	builder := framereel.NewConfigBuilder()
	if err := file.Apply(builder); err != nil {
		return settings{}, err
	}

	if c.IsSet("frames") {
		builder.WithFramesDir(c.String("frames"))
	}
	switch n := c.Args().Len(); {
	case n == 1:
		builder.WithFramesDir(c.Args().First())
	case n > 1:
		return settings{}, fmt.Errorf("%w: %s", pipeline.ErrInvalidConfig,
			l10n.F("Expected at most one FRAMES_DIR argument, got %d", n))
	}
	if c.IsSet("ext") {
		builder.WithExtensions(c.StringSlice("ext")...)
	}
	if c.IsSet("output") {
		builder.WithOutputPath(c.String("output"))
	}
	if c.IsSet("fps") {
		builder.WithFPS(c.Int("fps"))
	}
	if c.IsSet("quality") {
		preset, err := config.ParseQualityPreset(c.String("quality"))
		if err != nil {
			return settings{}, err
		}
		s.preset = preset
		builder.WithQualityPreset(preset)
	}
	if c.IsSet("backend") {
		backend, err := smartsink.ParseBackend(c.String("backend"))
		if err != nil {
			return settings{}, fmt.Errorf("%w: %v", pipeline.ErrInvalidConfig, err)
		}
		builder.WithBackend(backend)
	}
	if c.IsSet("on-mismatch") {
		policy, err := pipeline.ParseDimensionPolicy(c.String("on-mismatch"))
		if err != nil {
			return settings{}, err
		}
		builder.WithDimensionPolicy(policy)
	}
	if c.IsSet("ffmpeg-path") {
		builder.WithFFmpegPath(c.String("ffmpeg-path"))
	}
	if c.IsSet("overwrite") {
		builder.WithOverwrite(c.Bool("overwrite"))
	}
	if c.IsSet("verify") {
		builder.WithVerify(c.Bool("verify"))
	}
	if c.IsSet("debug") {
		builder.WithDebug(c.Bool("debug"))
	}
	if c.IsSet("debug-dir") {
		builder.WithDebugDir(c.String("debug-dir"))
	}
	if c.IsSet("summary") {
		s.summaryPath = c.String("summary")
	}
	if c.IsSet("log-level") {
		s.logLevel = c.String("log-level")
	}

	s.config = builder.Build()
	return s, nil
}

func assemble(c *cli.Context) error {
	s, err := resolveSettings(c)
	if err != nil {
		return err
	}

	// Create logger
	var log ports.Logger
	if s.quiet {
		log = logger.NewNoop()
	} else {
		log = logger.NewConsole(ports.ParseLogLevel(s.logLevel))
	}

	// Setup context with cancellation
	ctx, cancel := context.WithCancel(c.Context)
	defer cancel()

	// Handle signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			log.Warn("Interrupted, shutting down...")
			cancel()
		case <-ctx.Done():
		}
	}()

	fs := osfilesystem.New()
	assembler, err := framereel.New(s.config, framereel.Options{Logger: log, FileSystem: fs})
	if err != nil {
		return err
	}

	result, err := assembler.Run(ctx)
	if err != nil {
		return err
	}

	if s.summaryPath != "" {
		sum := buildSummary(s, assembler.Backend(), result)
		w := summarizer.NewWriter(summarizer.NewMarkdownFormatter(
			summarizer.WithTranslator(func(s string) string { return l10n.T(s) }),
			summarizer.WithVersion(version),
		), fs)
		if err := w.Write(s.summaryPath, sum); err != nil {
			log.Warn("Failed to write summary: %s", err.Error())
		} else {
			log.Info("Summary saved to %s", s.summaryPath)
		}
	}

	fmt.Fprintln(c.App.Writer, l10n.F("Video generated: %s", result.OutputPath))
	return nil
}
