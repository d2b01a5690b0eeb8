// Package prompter asks yes/no questions on the terminal.
package prompter

import (
	"errors"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/mattn/go-isatty"

	"github.com/user/framereel/pkg/ports"
)

// ErrNotInteractive is returned when no terminal is attached to answer.
var ErrNotInteractive = errors.New("prompter: not an interactive terminal")

// Survey implements ports.Prompter using the survey library.
type Survey struct{}

// Confirm asks message and waits for y/n.
func (p *Survey) Confirm(message string, defaultYes bool) (bool, error) {
	result := defaultYes
	prompt := &survey.Confirm{
		Message: message,
		Default: defaultYes,
	}
	if err := survey.AskOne(prompt, &result); err != nil {
		return false, err
	}
	return result, nil
}

// NonInteractive refuses every question.
type NonInteractive struct{}

// Confirm always returns ErrNotInteractive.
func (p *NonInteractive) Confirm(message string, defaultYes bool) (bool, error) {
	return false, ErrNotInteractive
}

// New returns a Survey prompter when stdin and stdout are terminals,
// otherwise a NonInteractive one.
func New() ports.Prompter {
	if IsInteractive() {
		return &Survey{}
	}
	return &NonInteractive{}
}

// IsInteractive reports whether stdin and stdout are both terminals.
func IsInteractive() bool {
	return isTerminal(os.Stdin.Fd()) && isTerminal(os.Stdout.Fd())
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

var (
	_ ports.Prompter = (*Survey)(nil)
	_ ports.Prompter = (*NonInteractive)(nil)
)
