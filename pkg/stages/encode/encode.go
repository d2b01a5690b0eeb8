// Package encode implements the video encoding stage.
package encode

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/user/framereel/pkg/pipeline"
	"github.com/user/framereel/pkg/ports"
)

// DefaultQuality is used when EncodeInput.Quality is out of range.
const DefaultQuality = 75

// Stage decodes the sorted frames and streams them into a video writer.
type Stage struct {
	decoder  ports.FrameDecoder
	writers  ports.WriterFactory
	renderer ports.Renderer
	fs       ports.FileSystem
	sink     ports.DebugSink
	logger   ports.Logger
}

// NewStage creates a new encode stage.
func NewStage(
	decoder ports.FrameDecoder,
	writers ports.WriterFactory,
	renderer ports.Renderer,
	fs ports.FileSystem,
	sink ports.DebugSink,
	logger ports.Logger,
) *Stage {
	return &Stage{
		decoder:  decoder,
		writers:  writers,
		renderer: renderer,
		fs:       fs,
		sink:     sink,
		logger:   logger.WithComponent("encode"),
	}
}

// Execute opens a writer sized to the first frame, writes every decodable
// frame in order and finalizes the output.
//
// Failing to decode the first frame is fatal. Later frames that fail to
// decode are skipped and reported in the result. Any fatal error after the
// writer was opened removes the partial output.
func (s *Stage) Execute(ctx context.Context, input pipeline.EncodeInput) (pipeline.EncodeResult, error) {
	result := pipeline.EncodeResult{
		OutputPath: input.OutputPath,
	}

	if len(input.Frames) == 0 {
		return result, fmt.Errorf("%w: no frames to encode", pipeline.ErrNotFound)
	}
	if input.FPS <= 0 {
		return result, fmt.Errorf("%w: frame rate must be positive, got %d", pipeline.ErrInvalidConfig, input.FPS)
	}
	if err := ctx.Err(); err != nil {
		return result, err
	}

	quality := input.Quality
	if quality < 1 || quality > 100 {
		quality = DefaultQuality
	}
	policy := input.Policy
	if policy == "" {
		policy = pipeline.PolicyResize
	}

	// Initialize from the first frame
	firstPath := input.Frames[0]
	first, err := s.decoder.Decode(firstPath)
	if err != nil {
		return result, &pipeline.FrameError{Index: 0, Path: firstPath, Err: fmt.Errorf("%w: %w", pipeline.ErrDecode, err)}
	}

	bounds := first.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	result.Width = width
	result.Height = height

	writer, err := s.writers.Open(ports.WriterOptions{
		Path:    input.OutputPath,
		Width:   width,
		Height:  height,
		FPS:     input.FPS,
		Quality: quality,
	})
	if err != nil {
		return result, fmt.Errorf("%w: %w", pipeline.ErrSinkOpen, err)
	}
	result.Codec = s.writers.Codec()
	result.Backend = s.writers.Name()
	s.logger.Debug("Opened %s writer (%s) %dx%d at %d fps", result.Backend, result.Codec, width, height, input.FPS)

	abort := func(cause error) (pipeline.EncodeResult, error) {
		if err := writer.Abort(); err != nil {
			s.logger.Debug("abort writer: %s", err.Error())
		}
		result.Written = 0
		return result, cause
	}

	if err := s.write(writer, first, 0, firstPath); err != nil {
		return abort(err)
	}
	result.Written++

	// Stream the remaining frames
	for i := 1; i < len(input.Frames); i++ {
		select {
		case <-ctx.Done():
			return abort(ctx.Err())
		default:
		}

		path := input.Frames[i]
		img, err := s.decoder.Decode(path)
		if err != nil {
			s.logger.Warn("Failed to read frame %s: %s", path, err.Error())
			result.Skipped = append(result.Skipped, pipeline.SkippedFrame{Index: i, Path: path, Reason: err.Error()})
			continue
		}

		img, reason, err := s.conform(img, width, height, policy, path)
		if err != nil {
			return abort(&pipeline.FrameError{Index: i, Path: path, Err: err})
		}
		if reason != "" {
			s.logger.Warn("Skipping frame %s: %s", path, reason)
			result.Skipped = append(result.Skipped, pipeline.SkippedFrame{Index: i, Path: path, Reason: reason})
			continue
		}

		if err := s.write(writer, img, result.Written, path); err != nil {
			return abort(&pipeline.FrameError{Index: i, Path: path, Err: err})
		}
		result.Written++
	}

	// Finalize
	if err := writer.Close(); err != nil {
		if rmErr := s.fs.Remove(input.OutputPath); rmErr != nil {
			s.logger.Debug("remove partial output: %s", rmErr.Error())
		}
		result.Written = 0
		return result, fmt.Errorf("%w: finalize video: %w", pipeline.ErrSinkWrite, err)
	}

	if info, err := s.fs.Stat(input.OutputPath); err == nil {
		result.FileSize = info.Size()
	}
	result.DurationMs = result.Written * 1000 / input.FPS

	s.logger.Debug("Encoded %d frames in %s", result.Written, input.OutputPath)
	return result, nil
}

func (s *Stage) write(writer ports.VideoWriter, img image.Image, index int, path string) error {
	if err := writer.WriteFrame(img); err != nil {
		return fmt.Errorf("%w: %w", pipeline.ErrSinkWrite, err)
	}
	s.logger.Debug("Wrote frame %d: %s", index, path)

	if s.sink.Enabled() {
		if err := s.sink.SaveFrame(index, img); err != nil {
			s.logger.Warn("Failed to save debug frame %d: %s", index, err.Error())
		}
	}
	return nil
}

// conform makes img match width x height according to policy.
// A non-empty reason means the frame must be skipped.
func (s *Stage) conform(img image.Image, width, height int, policy pipeline.DimensionPolicy, path string) (image.Image, string, error) {
	b := img.Bounds()
	if b.Dx() == width && b.Dy() == height {
		return img, "", nil
	}

	switch policy {
	case pipeline.PolicyFail:
		return nil, "", fmt.Errorf("%w: got %dx%d, want %dx%d", pipeline.ErrDimensionMismatch, b.Dx(), b.Dy(), width, height)
	case pipeline.PolicySkip:
		return nil, fmt.Sprintf("dimensions %dx%d differ from first frame %dx%d", b.Dx(), b.Dy(), width, height), nil
	case pipeline.PolicyFit:
		s.logger.Debug("Resized frame %s from %dx%d", path, b.Dx(), b.Dy())
		return s.renderer.Letterbox(img, width, height, color.Black), "", nil
	case pipeline.PolicyResize:
		s.logger.Debug("Resized frame %s from %dx%d", path, b.Dx(), b.Dy())
		return s.renderer.Resize(img, width, height), "", nil
	default:
		return nil, "", errors.New("unknown dimension policy " + string(policy))
	}
}
