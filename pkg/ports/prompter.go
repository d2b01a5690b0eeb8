package ports

// Prompter asks the user yes/no questions.
type Prompter interface {
	// Confirm asks message and returns the answer.
	Confirm(message string, defaultYes bool) (bool, error)
}
