package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/fixpoint/repairdesk/internal/api/envelope"
	"github.com/fixpoint/repairdesk/internal/core/domain"
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Renders validation failures as structured 422s keyed by field.
//   - Maps known domain errors to deterministic HTTP status codes.
//   - Keeps 401 (no valid token) and 403 (valid token, missing role) distinct.
//   - Logs unexpected errors internally without leaking details to the client.
//
// Every response, including router-level 404/405, uses the envelope shape.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		env := resolveError(err, log, c)
		_ = c.JSON(env.Status, env)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) envelope.Envelope {
	// Field-level validation failures, wherever they were raised.
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return envelope.Error(http.StatusUnprocessableEntity, "validation failed", ve.Fields)
	}

	// Echo's own errors: bind failures, 404 from the router, 405, etc.
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return envelope.Error(he.Code, fmt.Sprintf("%v", he.Message), nil)
	}

	switch {
	case errors.Is(err, domain.ErrUserExists):
		return envelope.Error(http.StatusUnprocessableEntity, "validation failed",
			map[string][]string{"email": {"this email is already registered"}})
	case errors.Is(err, domain.ErrOldPasswordMismatch):
		return envelope.Error(http.StatusUnprocessableEntity, "validation failed",
			map[string][]string{"old_password": {"the current password is incorrect"}})
	case errors.Is(err, domain.ErrResetNotFound), errors.Is(err, domain.ErrResetMismatch):
		return envelope.Error(http.StatusUnprocessableEntity, "password reset failed",
			map[string][]string{"token": {"the reset token is invalid or has expired"}})
	case errors.Is(err, domain.ErrUnauthenticated):
		return envelope.Error(http.StatusUnauthorized, "unauthenticated", nil)
	case errors.Is(err, domain.ErrForbidden):
		return envelope.Error(http.StatusForbidden, "access forbidden", nil)
	case errors.Is(err, domain.ErrUserNotFound):
		return envelope.Error(http.StatusNotFound, "user not found", nil)
	case errors.Is(err, domain.ErrCategoryNotFound):
		return envelope.Error(http.StatusNotFound, "category not found", nil)
	case errors.Is(err, domain.ErrArticleNotFound):
		return envelope.Error(http.StatusNotFound, "article not found", nil)
	case errors.Is(err, domain.ErrRepairNotFound):
		return envelope.Error(http.StatusNotFound, "repair request not found", nil)
	case errors.Is(err, domain.ErrSupportNotFound):
		return envelope.Error(http.StatusNotFound, "support request not found", nil)
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return envelope.Error(http.StatusInternalServerError, "internal server error", nil)
}
