// Package scan implements the frame enumeration stage.
package scan

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/user/framereel/pkg/pipeline"
	"github.com/user/framereel/pkg/ports"
)

// Stage lists the frame files of a directory in output order.
type Stage struct {
	fs     ports.FileSystem
	logger ports.Logger
}

// NewStage creates a new scan stage.
func NewStage(fs ports.FileSystem, logger ports.Logger) *Stage {
	return &Stage{
		fs:     fs,
		logger: logger.WithComponent("scan"),
	}
}

// Execute validates the directory and returns matching files sorted by path.
func (s *Stage) Execute(ctx context.Context, input pipeline.ScanInput) (pipeline.ScanResult, error) {
	result := pipeline.ScanResult{Dir: input.Dir}

	if err := ctx.Err(); err != nil {
		return result, err
	}

	exts := input.Extensions
	if len(exts) == 0 {
		exts = pipeline.DefaultExtensions
	}

	info, err := s.fs.Stat(input.Dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return result, fmt.Errorf("%w: directory %s does not exist", pipeline.ErrNotFound, input.Dir)
		}
		return result, fmt.Errorf("stat %s: %w", input.Dir, err)
	}
	if !info.IsDir() {
		return result, fmt.Errorf("%w: %s is not a directory", pipeline.ErrNotFound, input.Dir)
	}

	s.logger.Debug("Scanning %s for %s", input.Dir, strings.Join(exts, ", "))

	entries, err := s.fs.ReadDir(input.Dir)
	if err != nil {
		return result, fmt.Errorf("read directory %s: %w", input.Dir, err)
	}

	var frames []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if matchesExtension(entry.Name(), exts) {
			frames = append(frames, filepath.Join(input.Dir, entry.Name()))
		}
	}

	if len(frames) == 0 {
		return result, fmt.Errorf("%w: no frames matching %s in %s", pipeline.ErrNotFound, strings.Join(exts, ", "), input.Dir)
	}

	sort.Strings(frames)

	result.Frames = frames
	result.ZeroPadded = ZeroPadded(frames)
	if !result.ZeroPadded {
		s.logger.Warn("Frame names are not zero-padded consistently; lexicographic order may not match frame order")
	}

	return result, nil
}

func matchesExtension(name string, exts []string) bool {
	for _, ext := range exts {
		// A file named exactly ".ppm" still matches.
		if ext != "" && strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// ZeroPadded reports whether the trailing numeric index of every file name
// has the same width. Names without a numeric index are ignored.
//
// frame_009.ppm and frame_010.ppm are padded; frame_9.ppm and frame_10.ppm
// are not, and sort as frame_10 < frame_9.
func ZeroPadded(paths []string) bool {
	width := -1
	for _, p := range paths {
		w := trailingDigits(p)
		if w == 0 {
			continue
		}
		if width == -1 {
			width = w
		} else if w != width {
			return false
		}
	}
	return true
}

// trailingDigits returns the length of the last run of digits in the base
// name with its extension removed.
func trailingDigits(path string) int {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	end := len(base)
	for end > 0 && !isDigit(base[end-1]) {
		end--
	}
	start := end
	for start > 0 && isDigit(base[start-1]) {
		start--
	}
	return end - start
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
