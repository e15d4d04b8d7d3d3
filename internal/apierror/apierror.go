// Package apierror provides the error taxonomy shared by services and the
// standardized response envelopes returned to clients. All errors surfaced to
// the mobile app go through this package so that internal details (stack
// traces, DB errors, etc.) never leak.
package apierror

import (
	"fmt"
	"net/http"
)

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// NotFoundError signals that a referenced entity does not exist. The message
// always names the offending id so clients can tell which reference broke.
type NotFoundError struct {
	Recurso string
	ID      string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s no encontrado: %s", e.Recurso, e.ID)
}

func NotFound(recurso, id string) *NotFoundError {
	return &NotFoundError{Recurso: recurso, ID: id}
}

// ValidationError carries the complete set of offending fields, not just the
// first one found.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s (%d campos)", e.Detail, len(e.Fields))
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Error de validacion", Fields: fields}
}

// ForbiddenError rejects an authenticated caller that does not own the
// resource it is trying to mutate.
type ForbiddenError struct {
	Detail string
}

func (e *ForbiddenError) Error() string { return e.Detail }

func Forbidden(detail string) *ForbiddenError {
	return &ForbiddenError{Detail: detail}
}

// PersistenceError wraps an unexpected storage failure. It is never retried
// here; the handler surfaces a generic message and logs the cause.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("fallo de persistencia en %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

func Persistence(op string, err error) *PersistenceError {
	return &PersistenceError{Op: op, Err: err}
}

// StatusCode maps a taxonomy error to its HTTP status.
func StatusCode(err error) int {
	switch err.(type) {
	case *NotFoundError:
		return http.StatusNotFound
	case *ValidationError:
		return http.StatusUnprocessableEntity
	case *ForbiddenError:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
