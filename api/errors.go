package api

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// FieldErrors maps a form field to the list of validation messages the server
// returned for it. The same shape is produced by local validation so forms
// have a single error surface.
type FieldErrors map[string][]string

// Error is the structured failure every request resolves to when the server
// answers with a non-2xx status, or when no response was received at all.
type Error struct {
	Status  int         // HTTP status, 0 when no response was received
	Message string      // Server-provided message, or a fallback
	Fields  FieldErrors // Field-level validation errors, when present
	Network bool        // True when the failure is connectivity, not application
	cause   error
}

func (e *Error) Error() string {
	if e.Network {
		return fmt.Sprintf("network error: %s", e.Message)
	}
	return fmt.Sprintf("api error (%d): %s", e.Status, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// AsError finds the first *Error in err's chain.
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsAuthFailure reports whether err is an authorization failure (401).
func IsAuthFailure(err error) bool {
	e, ok := AsError(err)
	return ok && e.Status == http.StatusUnauthorized
}

// IsValidation reports whether err is a validation failure carrying
// field-level errors.
func IsValidation(err error) bool {
	e, ok := AsError(err)
	return ok && len(e.Fields) > 0
}

// IsNetwork reports whether err is a connectivity failure. Network failures
// never clear the session; the user may simply retry.
func IsNetwork(err error) bool {
	e, ok := AsError(err)
	return ok && e.Network
}

// IsNotFound reports whether err is a 404.
func IsNotFound(err error) bool {
	e, ok := AsError(err)
	return ok && e.Status == http.StatusNotFound
}

func fallbackMessage(status int) string {
	if text := http.StatusText(status); text != "" {
		return text
	}
	return "request failed"
}
