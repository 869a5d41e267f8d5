package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/quicknote/notes-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// internalErrorResponse mirrors the original server's 500 body shape; the
// error field stays generic so internals never leak.
type internalErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Renders unmatched routes as {"message": "Route not found"}.
//   - Logs unexpected errors internally without leaking details to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		// The router's own 404 keeps the legacy body shape.
		if errors.Is(err, echo.ErrNotFound) {
			_ = c.JSON(http.StatusNotFound, map[string]string{"message": "Route not found"})
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			_ = c.JSON(he.Code, errorResponse{Message: fmt.Sprintf("%v", he.Message)})
			return
		}

		if code, msg, ok := resolveDomainError(err); ok {
			_ = c.JSON(code, errorResponse{Message: msg})
			return
		}

		// Unexpected error: log the real cause, return a generic message.
		log.Error().
			Err(err).
			Str("method", c.Request().Method).
			Str("path", c.Path()).
			Msg("unhandled error")

		_ = c.JSON(http.StatusInternalServerError, internalErrorResponse{
			Message: "Something went wrong",
			Error:   "internal server error",
		})
	}
}

func resolveDomainError(err error) (int, string, bool) {
	switch {
	case errors.Is(err, domain.ErrTitleRequired),
		errors.Is(err, domain.ErrContentRequired),
		errors.Is(err, domain.ErrTitleTooLong):
		return http.StatusBadRequest, err.Error(), true
	case errors.Is(err, domain.ErrInvalidNoteID):
		return http.StatusBadRequest, "Invalid note ID", true
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials", true
	case errors.Is(err, domain.ErrNoteNotFound):
		return http.StatusNotFound, "Note not found", true
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "user not found", true
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict, "email already registered", true
	case errors.Is(err, domain.ErrTooManyAttempts):
		return http.StatusTooManyRequests, "too many failed login attempts, try again later", true
	}
	return 0, "", false
}
