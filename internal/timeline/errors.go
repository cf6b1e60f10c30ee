package timeline

import "errors"

// Domain-specific errors for the timeline package.
var (
	ErrDragActive   = errors.New("another drag is already active")
	ErrNoActiveDrag = errors.New("no drag is active")
	ErrDragNotFound = errors.New("drag session not found")
)
