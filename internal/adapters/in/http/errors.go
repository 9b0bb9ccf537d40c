package http

import (
	"errors"
	"net/http"

	"fabtrack/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// respondError maps the domain error taxonomy to HTTP status codes:
// validation and range errors to 400, absent objects (including ownership
// mismatches) to 404, state conflicts to 409, everything else to 500.
func respondError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	message := "internal server error"

	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, errs.ErrStateConflict):
		status = http.StatusConflict
		message = err.Error()
	}

	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: message,
	})
}
