package http

import (
	"errors"
	"net/http"

	"granary/internal/core/domain/model/storage"
	"granary/internal/generated/servers"
	"granary/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusOf maps domain errors onto HTTP status codes.
func statusOf(err error) int {
	var httpErr *echo.HTTPError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, storage.ErrNoFreeContainerSlot):
		return http.StatusConflict
	case errs.IsInvalidArgument(err):
		return http.StatusBadRequest
	case errors.As(err, &httpErr):
		return httpErr.Code
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err as a servers.Error. Client errors carry the error
// text; server errors carry fallback and are logged instead.
func (s *Server) respondError(ctx echo.Context, err error, fallback string) error {
	status := statusOf(err)
	message := err.Error()

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message = httpErrorMessage(httpErr)
	}

	if status >= http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"request_id", ctx.Response().Header().Get(echo.HeaderXRequestID),
			"error", err)
		if fallback != "" {
			message = fallback
		} else {
			message = http.StatusText(status)
		}
	}

	return ctx.JSON(status, servers.Error{
		Code:    int32(status), //nolint:gosec // HTTP status codes fit in int32
		Message: message,
	})
}

// ErrorHandler renders errors that escape the handlers (routing, binding,
// validation and panics turned into errors) with the API error model.
func (s *Server) ErrorHandler(err error, ctx echo.Context) {
	if ctx.Response().Committed {
		return
	}

	if respondErr := s.respondError(ctx, err, ""); respondErr != nil {
		s.logger.Error("failed to write error response", "error", respondErr)
	}
}

func httpErrorMessage(err *echo.HTTPError) string {
	if message, ok := err.Message.(string); ok {
		return message
	}
	return http.StatusText(err.Code)
}
