package mocks

import "github.com/user/framereel/pkg/ports"

// VideoProber is a mock implementation of ports.VideoProber.
type VideoProber struct {
	Info  ports.VideoInfo
	Err   error
	Calls []string
}

func (m *VideoProber) Probe(path string) (ports.VideoInfo, error) {
	m.Calls = append(m.Calls, path)
	return m.Info, m.Err
}

var _ ports.VideoProber = (*VideoProber)(nil)

// Prompter is a mock implementation of ports.Prompter.
type Prompter struct {
	Answer   bool
	Err      error
	Messages []string
}

func (m *Prompter) Confirm(message string, defaultYes bool) (bool, error) {
	m.Messages = append(m.Messages, message)
	return m.Answer, m.Err
}

var _ ports.Prompter = (*Prompter)(nil)
