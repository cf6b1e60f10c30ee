package http

import (
	"errors"

	"taskpilot/internal/task"
	pkgErrors "taskpilot/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrEmptyInput):
		return pkgErrors.NewHTTPError(400, "input text is empty")
	case errors.Is(err, task.ErrInvalidDate):
		return pkgErrors.NewHTTPError(400, "invalid date")
	case errors.Is(err, task.ErrInvalidTime):
		return pkgErrors.NewHTTPError(400, "invalid time of day")
	case errors.Is(err, task.ErrProviderUnavailable):
		return pkgErrors.NewHTTPError(500, "task extraction is unavailable")
	case errors.Is(err, task.ErrEmptyResponse), errors.Is(err, task.ErrExtractionParse):
		return pkgErrors.NewHTTPError(500, "task extraction failed")
	case errors.Is(err, task.ErrTaskNotFound):
		return pkgErrors.NewHTTPError(404, "task not found")
	case errors.Is(err, task.ErrRemoteCalendar):
		return pkgErrors.NewHTTPError(502, "calendar operation failed")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
