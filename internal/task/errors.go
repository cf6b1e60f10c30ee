package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrEmptyInput          = errors.New("input text is empty")
	ErrProviderUnavailable = errors.New("no LLM provider is configured")
	ErrEmptyResponse       = errors.New("empty response from LLM")
	ErrExtractionParse     = errors.New("failed to parse extraction response")
	ErrTaskNotFound        = errors.New("task not found")
	ErrRemoteCalendar      = errors.New("remote calendar operation failed")
	ErrInvalidDate         = errors.New("invalid date")
	ErrInvalidTime         = errors.New("invalid time of day")
)
