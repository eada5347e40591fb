package util

import "errors"

var (
	ErrQuestionNotFound = errors.New("question not found")
	ErrEmptyQuestion    = errors.New("question text is required")
	ErrNoAnswers        = errors.New("at least one answer is required")
)
