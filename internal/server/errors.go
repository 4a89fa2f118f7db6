// Package server provides the HTTP REST API for the talent marketplace admin platform.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/mikhail/talenthub/internal/db"
	"github.com/mikhail/talenthub/internal/lifecycle"
)

// ErrInvalidCredentials indicates invalid login credentials
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid email or password"
}

// ErrNotFound indicates a requested resource was not found
type ErrNotFound struct {
	Resource string
	ID       uuid.UUID
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ErrJobNotOpen indicates the job does not accept applications in its current status
type ErrJobNotOpen struct {
	JobID uuid.UUID
}

func (e *ErrJobNotOpen) Error() string {
	return fmt.Sprintf("job is not published: %s", e.JobID)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s", e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		invalidCredentials *ErrInvalidCredentials
		notFound           *ErrNotFound
		jobNotOpen         *ErrJobNotOpen
		validation         *ErrValidation
		applicationExists  *db.ErrApplicationExists
		statusConflict     *db.ErrStatusConflict
		invalidTransition  *lifecycle.ErrInvalidTransition
		noteTooLong        *lifecycle.ErrNoteTooLong
	)

	switch {
	case errors.As(err, &invalidCredentials):
		return http.StatusUnauthorized
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &validation), errors.As(err, &noteTooLong):
		return http.StatusBadRequest
	case errors.As(err, &jobNotOpen),
		errors.As(err, &applicationExists),
		errors.As(err, &statusConflict),
		errors.As(err, &invalidTransition):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
