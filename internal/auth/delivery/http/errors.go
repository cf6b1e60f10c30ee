package http

import (
	"errors"
	"net/http"

	"taskpilot/internal/auth"
	pkgErrors "taskpilot/pkg/errors"
)

// mapError translates auth domain errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, auth.ErrExchangeFailed):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "authorization code exchange failed")
	case errors.Is(err, auth.ErrProfileFetch):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, "failed to fetch user profile from Google")
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "sign-in failed")
	}
}
