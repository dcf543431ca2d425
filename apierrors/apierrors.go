// Package apierrors defines the error taxonomy for the API and its JSON
// envelope. Every business-rule failure is raised as an *APIError at the
// controller boundary and translated to the envelope at the route layer;
// the label strings are part of the HTTP contract and must stay stable.
package apierrors

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"
)

type FieldError struct {
	FieldName string `json:"fieldName"`
	Message   string `json:"message"`
}

type APIError struct {
	StatusCode int
	Label      string
	Message    string
	Fields     []FieldError
}

func (e *APIError) Error() string {
	return e.Message
}

func NewValidation(fields []FieldError) *APIError {
	return &APIError{
		StatusCode: http.StatusUnprocessableEntity,
		Label:      "Validation Exception",
		Message:    "Invalid request content",
		Fields:     fields,
	}
}

func NewNotFound(message string) *APIError {
	return &APIError{
		StatusCode: http.StatusNotFound,
		Label:      "Resource not found",
		Message:    message,
	}
}

func NewAlreadyExists(message string) *APIError {
	return &APIError{
		StatusCode: http.StatusBadRequest,
		Label:      "Resource already exists",
		Message:    message,
	}
}

func NewUnauthorizedAction() *APIError {
	return &APIError{
		StatusCode: http.StatusForbidden,
		Label:      "Unauthorized action",
		Message:    "Access denied. Should be self or admin",
	}
}

func NewDatabase(message string) *APIError {
	return &APIError{
		StatusCode: http.StatusBadRequest,
		Label:      "Data Integrity Violation Exception",
		Message:    message,
	}
}

func NewInvalidCredentials() *APIError {
	return &APIError{
		StatusCode: http.StatusUnauthorized,
		Label:      "Invalid Credentials",
		Message:    "Email or Password invalid",
	}
}

func NewBadRequest(message string) *APIError {
	return &APIError{
		StatusCode: http.StatusBadRequest,
		Label:      "Bad request",
		Message:    message,
	}
}

// Envelope is the wire shape of every error response.
type Envelope struct {
	Timestamp time.Time    `json:"timestamp"`
	Status    int          `json:"status"`
	Error     string       `json:"error"`
	Message   string       `json:"message"`
	Path      string       `json:"path"`
	Errors    []FieldError `json:"errors,omitempty"`
}

// Write serializes err into the envelope. Unknown errors become a 500
// with a generic message so driver internals never leak to clients.
func Write(w http.ResponseWriter, r *http.Request, err error) {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		apiErr = &APIError{
			StatusCode: http.StatusInternalServerError,
			Label:      "Internal server error",
			Message:    "Unexpected error",
		}
	}

	env := Envelope{
		Timestamp: time.Now().UTC(),
		Status:    apiErr.StatusCode,
		Error:     apiErr.Label,
		Message:   apiErr.Message,
		Path:      r.URL.Path,
		Errors:    apiErr.Fields,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(apiErr.StatusCode)
	json.NewEncoder(w).Encode(env)
}
