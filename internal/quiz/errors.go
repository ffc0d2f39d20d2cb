package quiz

import "errors"

var (
	// ErrNoQuestions is returned when a question set has no prompts.
	ErrNoQuestions = errors.New("question set is empty")
	// ErrBlankQuestion is returned when a prompt is empty or whitespace.
	ErrBlankQuestion = errors.New("question prompt is blank")
)
