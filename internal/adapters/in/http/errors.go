package http

import (
	"errors"
	"net/http"

	"campuseats/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// respondError maps a use case error onto the HTTP status space:
// missing objects are 404, claim races and illegal lifecycle moves are 409,
// rejected input is 400, everything else is a 500 with a generic message so
// internals never leak to clients.
func respondError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return respondErrorWithStatus(ctx, http.StatusNotFound, err)
	case errors.Is(err, errs.ErrConflict), errors.Is(err, errs.ErrInvalidTransition):
		return respondErrorWithStatus(ctx, http.StatusConflict, err)
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return respondErrorWithStatus(ctx, http.StatusBadRequest, err)
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}

func respondErrorWithStatus(ctx echo.Context, status int, err error) error {
	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	})
}

// respondBadRequest reports a malformed or unparsable request body.
func respondBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
