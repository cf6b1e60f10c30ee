package http

import (
	"errors"

	"taskpilot/internal/task"
	"taskpilot/internal/timeline"
	pkgErrors "taskpilot/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, timeline.ErrDragActive):
		return pkgErrors.NewHTTPError(409, "another drag is already active")
	case errors.Is(err, timeline.ErrDragNotFound), errors.Is(err, timeline.ErrNoActiveDrag):
		return pkgErrors.NewHTTPError(404, "drag session not found")
	case errors.Is(err, task.ErrTaskNotFound):
		return pkgErrors.NewHTTPError(404, "task not found")
	case errors.Is(err, task.ErrInvalidTime):
		return pkgErrors.NewHTTPError(400, "invalid time of day")
	case errors.Is(err, task.ErrRemoteCalendar):
		return pkgErrors.NewHTTPError(502, "calendar operation failed")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
