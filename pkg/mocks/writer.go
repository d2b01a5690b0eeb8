package mocks

import (
	"image"

	"github.com/user/framereel/pkg/ports"
)

// WriterFactory is a mock implementation of ports.WriterFactory.
type WriterFactory struct {
	OpenFunc func(opts ports.WriterOptions) (ports.VideoWriter, error)

	// Recorded calls for verification
	OpenCalls []ports.WriterOptions
	Writer    *VideoWriter
}

func (m *WriterFactory) Open(opts ports.WriterOptions) (ports.VideoWriter, error) {
	m.OpenCalls = append(m.OpenCalls, opts)
	if m.OpenFunc != nil {
		return m.OpenFunc(opts)
	}
	if m.Writer == nil {
		m.Writer = &VideoWriter{}
	}
	return m.Writer, nil
}

func (m *WriterFactory) Name() string { return "mock" }

func (m *WriterFactory) Codec() string { return "MOCK" }

var _ ports.WriterFactory = (*WriterFactory)(nil)

// VideoWriter is a mock implementation of ports.VideoWriter.
type VideoWriter struct {
	WriteFrameFunc func(img image.Image) error
	CloseFunc      func() error

	// Recorded calls for verification
	Frames      []image.Image
	CloseCalled int
	AbortCalled int
}

func (m *VideoWriter) WriteFrame(img image.Image) error {
	if m.WriteFrameFunc != nil {
		if err := m.WriteFrameFunc(img); err != nil {
			return err
		}
	}
	m.Frames = append(m.Frames, img)
	return nil
}

func (m *VideoWriter) Close() error {
	m.CloseCalled++
	if m.CloseFunc != nil {
		return m.CloseFunc()
	}
	return nil
}

func (m *VideoWriter) Abort() error {
	m.AbortCalled++
	return nil
}

var _ ports.VideoWriter = (*VideoWriter)(nil)
