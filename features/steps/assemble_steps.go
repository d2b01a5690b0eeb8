// Package steps holds the godog step definitions for the framereel features.
package steps

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/cucumber/godog"

	"github.com/user/framereel/pkg/adapters/smartsink"
	"github.com/user/framereel/pkg/adapters/videoprobe"
	"github.com/user/framereel/pkg/framereel"
	"github.com/user/framereel/pkg/mocks"
	"github.com/user/framereel/pkg/orchestrator"
	"github.com/user/framereel/pkg/pipeline"
	"github.com/user/framereel/pkg/ports"
)

// assembleContext holds test state for assemble scenarios
type assembleContext struct {
	root       string
	framesDir  string
	outputPath string
	logger     *mocks.Logger
	result     orchestrator.RunResult
	err        error
	probe      *ports.VideoInfo
}

// SharedAssembleContext is reset before each scenario via Before hook
var SharedAssembleContext *assembleContext

func getAssembleContext() *assembleContext {
	return SharedAssembleContext
}

func InitializeAssembleScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(c context.Context, sc *godog.Scenario) (context.Context, error) {
		root, err := os.MkdirTemp("", "framereel-features-")
		if err != nil {
			return c, err
		}
		SharedAssembleContext = &assembleContext{
			root:   root,
			logger: mocks.NewLogger(),
		}
		return c, nil
	})

	ctx.After(func(c context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		if a := getAssembleContext(); a != nil {
			os.RemoveAll(a.root)
		}
		return c, nil
	})

	ctx.Step(`^a frames directory$`, aFramesDirectory)
	ctx.Step(`^the frames directory does not exist$`, theFramesDirectoryDoesNotExist)
	ctx.Step(`^(\d+) frames of (\d+)x(\d+) pixels named "([^"]*)"$`, framesNamed)
	ctx.Step(`^frame "([^"]*)" is corrupt$`, frameIsCorrupt)
	ctx.Step(`^I assemble the frames at (\d+) fps into "([^"]*)"$`, iAssembleTheFrames)
	ctx.Step(`^the assembly succeeds$`, theAssemblySucceeds)
	ctx.Step(`^the assembly fails with a not found error$`, theAssemblyFailsWith(pipeline.ErrNotFound))
	ctx.Step(`^the assembly fails with a decode error$`, theAssemblyFailsWith(pipeline.ErrDecode))
	ctx.Step(`^the video contains (\d+) frames$`, theVideoContainsFrames)
	ctx.Step(`^the video is (\d+)x(\d+) pixels$`, theVideoIsPixels)
	ctx.Step(`^the video plays at (\d+) fps$`, theVideoPlaysAt)
	ctx.Step(`^no warnings were logged$`, noWarningsWereLogged)
	ctx.Step(`^exactly (\d+) warnings? mentions? "([^"]*)"$`, warningsMention)
	ctx.Step(`^frame "([^"]*)" is reported as skipped$`, frameIsReportedAsSkipped)
	ctx.Step(`^no output file exists$`, noOutputFileExists)
}

func aFramesDirectory() error {
	a := getAssembleContext()
	a.framesDir = filepath.Join(a.root, "images")
	return os.MkdirAll(a.framesDir, 0755)
}

func theFramesDirectoryDoesNotExist() error {
	a := getAssembleContext()
	return os.RemoveAll(a.framesDir)
}

// framesNamed writes plain PBM frames, the format the game of life renderer emits.
func framesNamed(n, w, h int, pattern string) error {
	a := getAssembleContext()
	for i := 0; i < n; i++ {
		var b strings.Builder
		fmt.Fprintf(&b, "P1\n%d %d\n", w, h)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if (x*y+i)%3 == 0 {
					b.WriteString("1 ")
				} else {
					b.WriteString("0 ")
				}
			}
			b.WriteString("\n")
		}
		path := filepath.Join(a.framesDir, fmt.Sprintf(pattern, i))
		if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
			return err
		}
	}
	return nil
}

func frameIsCorrupt(name string) error {
	a := getAssembleContext()
	return os.WriteFile(filepath.Join(a.framesDir, name), []byte("P1\nnot a frame"), 0644)
}

func iAssembleTheFrames(fps int, output string) error {
	a := getAssembleContext()
	a.outputPath = filepath.Join(a.root, output)

	cfg := framereel.NewConfigBuilder().
		WithFramesDir(a.framesDir).
		WithOutputPath(a.outputPath).
		WithFPS(fps).
		WithBackend(smartsink.BackendMJPEG).
		Build()

	a.result, a.err = framereel.Assemble(context.Background(), cfg, framereel.Options{
		Logger:   a.logger,
		Prompter: &mocks.Prompter{},
	})
	return nil
}

func theAssemblySucceeds() error {
	a := getAssembleContext()
	if a.err != nil {
		return fmt.Errorf("expected success, got %w", a.err)
	}
	info, err := videoprobe.New().Probe(a.outputPath)
	if err != nil {
		return fmt.Errorf("probe output: %w", err)
	}
	a.probe = &info
	return nil
}

func theAssemblyFailsWith(target error) func() error {
	return func() error {
		a := getAssembleContext()
		if a.err == nil {
			return fmt.Errorf("expected %v, got success", target)
		}
		if !errors.Is(a.err, target) {
			return fmt.Errorf("expected %v, got %v", target, a.err)
		}
		return nil
	}
}

func theVideoContainsFrames(n int) error {
	a := getAssembleContext()
	if a.result.FramesWritten != n {
		return fmt.Errorf("expected %d frames written, got %d", n, a.result.FramesWritten)
	}
	if a.probe.FrameCount != n {
		return fmt.Errorf("expected %d frames in file, got %d", n, a.probe.FrameCount)
	}
	return nil
}

func theVideoIsPixels(w, h int) error {
	a := getAssembleContext()
	if a.probe.Width != w || a.probe.Height != h {
		return fmt.Errorf("expected %dx%d, got %dx%d", w, h, a.probe.Width, a.probe.Height)
	}
	return nil
}

func theVideoPlaysAt(fps int) error {
	a := getAssembleContext()
	if a.result.FPS != fps {
		return fmt.Errorf("expected result fps %d, got %d", fps, a.result.FPS)
	}
	// AVI stores the frame period in whole microseconds.
	if math.Abs(a.probe.FPS-float64(fps)) > 0.01 {
		return fmt.Errorf("expected %d fps in file, got %.4f", fps, a.probe.FPS)
	}
	return nil
}

func noWarningsWereLogged() error {
	a := getAssembleContext()
	if len(a.logger.Warns) != 0 {
		return fmt.Errorf("expected no warnings, got %v", a.logger.Warns)
	}
	return nil
}

func warningsMention(n int, name string) error {
	a := getAssembleContext()
	count := 0
	for _, w := range a.logger.Warns {
		if strings.Contains(w, name) {
			count++
		}
	}
	if count != n {
		return fmt.Errorf("expected %d warnings mentioning %s, got %d: %v", n, name, count, a.logger.Warns)
	}
	return nil
}

func frameIsReportedAsSkipped(name string) error {
	a := getAssembleContext()
	for _, sk := range a.result.Skipped {
		if filepath.Base(sk.Path) == name {
			return nil
		}
	}
	return fmt.Errorf("expected %s among skipped frames %v", name, a.result.Skipped)
}

func noOutputFileExists() error {
	a := getAssembleContext()
	if _, err := os.Stat(a.outputPath); !os.IsNotExist(err) {
		return fmt.Errorf("expected no file at %s", a.outputPath)
	}
	return nil
}
