package errors

import (
	stderrors "errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tjwaterman99/quicksplit-api/pkg/domain"
	"github.com/tjwaterman99/quicksplit-api/pkg/models"
)

// statusFor maps each domain error code onto an HTTP status. The
// mapping is total so every business-rule failure has a distinct,
// stable presentation at the boundary.
func statusFor(code string) int {
	switch code {
	case domain.ErrCodeNotFound:
		return http.StatusNotFound
	case domain.ErrCodeDuplicateName:
		return http.StatusConflict
	case domain.ErrCodeInactiveExperiment, domain.ErrCodeCapacityExceeded, domain.ErrCodeInsufficientData:
		return http.StatusUnprocessableEntity
	case domain.ErrCodeValidation:
		return http.StatusBadRequest
	case domain.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// Respond renders a domain error as JSON. Internal errors are logged
// with their cause but presented generically.
func Respond(c echo.Context, err error) error {
	var de *domain.Error
	if !stderrors.As(err, &de) {
		return InternalError(c, err)
	}

	status := statusFor(de.Code)
	if status == http.StatusInternalServerError {
		return InternalError(c, err)
	}

	return c.JSON(status, models.ErrorResponse{
		Error:   de.Code,
		Message: de.Message,
	})
}

// ValidationError returns a generic validation error without exposing internal details
func ValidationError(c echo.Context, err error) error {
	log.Printf("[VALIDATION ERROR] Path: %s, Error: %v", c.Request().URL.Path, err)

	return c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error:   domain.ErrCodeValidation,
		Message: "Invalid request data. Please check your input and try again.",
	})
}

// InternalError returns a generic internal server error
func InternalError(c echo.Context, err error) error {
	log.Printf("[INTERNAL ERROR] Path: %s, Error: %v", c.Request().URL.Path, err)

	return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error:   domain.ErrCodeInternal,
		Message: "An internal error occurred. Please try again later.",
	})
}
