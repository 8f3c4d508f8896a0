// Package server provides the HTTP REST API for the roadmap service.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/codecraft/roadmap-api/internal/db"
	"github.com/codecraft/roadmap-api/internal/generation"
)

// ErrEmailAlreadyExists indicates email is already registered
type ErrEmailAlreadyExists struct {
	Email string
}

func (e *ErrEmailAlreadyExists) Error() string {
	return fmt.Sprintf("email already registered: %s", e.Email)
}

// ErrInvalidCredentials indicates invalid login credentials
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid email or password"
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error.
// Pipeline failures deliberately collapse to 500: the caller cannot act
// on upstream or model-output problems beyond resubmitting, and no
// partial result is ever exposed. Only input and auth problems are
// distinguished.
func HTTPStatus(err error) int {
	var (
		inputErr      *generation.InputError
		validationErr *ErrValidation
	)
	switch {
	case errors.As(err, &inputErr), errors.As(err, &validationErr):
		return http.StatusBadRequest
	case isType[*ErrInvalidCredentials](err):
		return http.StatusUnauthorized
	case isType[*ErrEmailAlreadyExists](err):
		return http.StatusConflict
	case errors.Is(err, db.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func isType[T error](err error) bool {
	var target T
	return errors.As(err, &target)
}
