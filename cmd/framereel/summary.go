package main

import (
	"github.com/user/framereel/pkg/adapters/smartsink"
	"github.com/user/framereel/pkg/orchestrator"
	"github.com/user/framereel/pkg/summarizer"
)

// buildSummary collects the run result into a report.
func buildSummary(s settings, backend smartsink.Info, r orchestrator.RunResult) *summarizer.Summary {
	b := summarizer.NewBuilder().
		WithInput(summarizer.InputInfo{
			Dir:         r.FramesDir,
			Extensions:  r.Extensions,
			FramesFound: r.FramesFound,
			ZeroPadded:  r.ZeroPadded,
		}).
		WithSettings(summarizer.Settings{
			FPS:             r.FPS,
			Quality:         s.config.Quality,
			QualityPreset:   string(s.preset),
			Backend:         string(backend.Backend),
			DimensionPolicy: string(s.config.DimensionPolicy),
		}).
		WithVideo(summarizer.VideoInfo{
			Path:          r.OutputPath,
			Codec:         r.Codec,
			FramesWritten: r.FramesWritten,
			Width:         r.Width,
			Height:        r.Height,
			DurationMs:    r.DurationMs,
			FileSize:      r.FileSize,
		})

	for _, sk := range r.Skipped {
		b.AddSkipped(sk.Index, sk.Path, sk.Reason)
	}

	if p := r.Probe; p != nil {
		b.WithProbe(summarizer.ProbeInfo{
			Container:  p.Container,
			Codec:      p.Codec,
			FrameCount: p.FrameCount,
			FPS:        p.FPS,
			Width:      p.Width,
			Height:     p.Height,
		})
	}

	return b.Build()
}
