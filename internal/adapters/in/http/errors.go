package http

import (
	"errors"
	"net/http"

	"freight/internal/core/domain/model/hauler"
	"freight/internal/core/domain/model/load"
	"freight/internal/core/domain/services"
	"freight/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the error body returned by every endpoint.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// writeError maps domain and application errors onto HTTP status codes.
//
// Validation failures are client mistakes (400). Authorization failures are
// 403. Missing objects are 404. Conflicts that a client can retry or
// re-read, lost transition races and capacity exhaustion, are 409.
// Transitions the lifecycle forbids outright are 422.
func writeError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	var notFound *errs.ObjectNotFoundError
	var notAuthorized *errs.NotAuthorizedError

	switch {
	case errors.As(err, &notFound):
		status = http.StatusNotFound
	case errors.As(err, &notAuthorized):
		status = http.StatusForbidden
	case errors.Is(err, load.ErrStatusConflict),
		errors.Is(err, hauler.ErrInsufficientCapacity),
		errors.Is(err, hauler.ErrVehicleNotEmpty):
		status = http.StatusConflict
	case errors.Is(err, load.ErrTerminalState),
		errors.Is(err, load.ErrRoleNotPermitted),
		errors.Is(err, load.ErrInvalidTransition),
		errors.Is(err, services.ErrLoadNotClaimable),
		errors.Is(err, services.ErrVehicleTypeMismatch):
		status = http.StatusUnprocessableEntity
	case isValidationError(err):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	})
}

func isValidationError(err error) bool {
	var required *errs.ValueIsRequiredError
	var invalid *errs.ValueIsInvalidError
	var outOfRange *errs.ValueIsOutOfRangeError

	return errors.As(err, &required) ||
		errors.As(err, &invalid) ||
		errors.As(err, &outOfRange)
}
