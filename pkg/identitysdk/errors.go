package identitysdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/aryamangoenka/User-Management-System/pkg/httpx"
)

// Error codes shared by the server and SDK client. Authentication failures
// all surface as ErrorCodeInvalidToken regardless of cause; the server logs
// the cause but never puts it on the wire.
const (
	ErrorCodeInvalidRequest  = "invalid_request"
	ErrorCodeInvalidToken    = "invalid_token"
	ErrorCodeInactiveAccount = "inactive_account"
	ErrorCodeAccessDenied    = "access_denied"
	ErrorCodeNotFound        = "not_found"
	ErrorCodeConflict        = "conflict"
	ErrorCodeServerError     = "server_error"
)

// APIError is the uniform wire error. It implements the error interface and
// serves both sides: handlers call WriteError, the SDK client decodes
// responses back into it.
type APIError struct {
	// StatusCode is the HTTP status code for this error.
	StatusCode int `json:"-"`

	// Code is the machine-readable error code.
	Code string `json:"error"`

	// Description is a human-readable description of the error.
	Description string `json:"error_description"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// WriteError writes this APIError to an HTTP response writer.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error":             e.Code,
		"error_description": e.Description,
	})
}

// WithDescription returns a copy of the error with a different description.
func (e *APIError) WithDescription(desc string) *APIError {
	return &APIError{
		StatusCode:  e.StatusCode,
		Code:        e.Code,
		Description: desc,
	}
}

var (
	// ErrInvalidRequest covers malformed bodies and missing parameters.
	ErrInvalidRequest = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidRequest,
		Description: "the request is malformed or missing required parameters",
	}

	// ErrUnauthorized is the single response for every failed credential:
	// unknown token, expired token, revoked session, deleted account.
	ErrUnauthorized = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeInvalidToken,
		Description: "could not validate credentials",
	}

	// ErrInactiveAccount is returned when valid credentials map to a
	// disabled account.
	ErrInactiveAccount = &APIError{
		StatusCode:  http.StatusForbidden,
		Code:        ErrorCodeInactiveAccount,
		Description: "account is inactive",
	}

	// ErrAccessDenied is returned when an authenticated principal lacks the
	// required permission or superuser flag.
	ErrAccessDenied = &APIError{
		StatusCode:  http.StatusForbidden,
		Code:        ErrorCodeAccessDenied,
		Description: "not enough privileges",
	}

	// ErrNotFound is returned when the addressed resource does not exist.
	ErrNotFound = &APIError{
		StatusCode:  http.StatusNotFound,
		Code:        ErrorCodeNotFound,
		Description: "resource not found",
	}

	// ErrConflict is returned on unique-constraint collisions.
	ErrConflict = &APIError{
		StatusCode:  http.StatusConflict,
		Code:        ErrorCodeConflict,
		Description: "resource already exists",
	}

	// ErrServerError is returned for storage and other internal faults.
	ErrServerError = &APIError{
		StatusCode:  http.StatusInternalServerError,
		Code:        ErrorCodeServerError,
		Description: "internal server error",
	}
)
