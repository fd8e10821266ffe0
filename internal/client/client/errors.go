package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

var (
	ErrUnavailable        = errors.New("server unavailable")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrValidation         = errors.New("validation error")
	ErrSessionExpired     = errors.New("session expired")
)

const maxDetailLen = 200

// HTTPError is any non-2xx response from the backend.
type HTTPError struct {
	StatusCode int
	Body       []byte
}

func (e *HTTPError) Error() string {
	if d := e.Detail(); d != "" {
		return fmt.Sprintf("http %d: %s", e.StatusCode, d)
	}
	return fmt.Sprintf("http %d", e.StatusCode)
}

// Is lets callers match well-known statuses with errors.Is.
func (e *HTTPError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	}
	return false
}

// Detail returns the backend's "detail" message when present, otherwise a
// shortened body.
func (e *HTTPError) Detail() string {
	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(e.Body, &body); err == nil && body.Detail != "" {
		return body.Detail
	}

	s := strings.TrimSpace(string(e.Body))
	if len(s) > maxDetailLen {
		s = s[:maxDetailLen] + "..."
	}
	return s
}

// ValidationError carries per-field messages of a rejected payload.
type ValidationError struct {
	Fields map[string][]string
	Err    error
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidation.Error()
	}

	names := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		names = append(names, k)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, k := range names {
		parts = append(parts, k+": "+strings.Join(e.Fields[k], ", "))
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

func (e *ValidationError) Unwrap() error { return e.Err }

// newValidationError decodes a field-keyed error body. Values may be a list
// of messages, a single message, or a nested object.
func newValidationError(he *HTTPError) *ValidationError {
	ve := &ValidationError{Fields: map[string][]string{}, Err: he}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(he.Body, &raw); err != nil {
		return ve
	}

	for field, v := range raw {
		var list []string
		if err := json.Unmarshal(v, &list); err == nil {
			ve.Fields[field] = list
			continue
		}
		var one string
		if err := json.Unmarshal(v, &one); err == nil {
			ve.Fields[field] = []string{one}
			continue
		}
		ve.Fields[field] = []string{string(v)}
	}
	return ve
}

// AsValidation converts a 400 *HTTPError found in err into a
// *ValidationError. Any other error is returned unchanged.
func AsValidation(err error) error {
	var he *HTTPError
	if errors.As(err, &he) && he.StatusCode == http.StatusBadRequest {
		return newValidationError(he)
	}
	return err
}

// SessionExpiredError is returned when no usable credential remains. The
// credential store has already been cleared when it is returned.
type SessionExpiredError struct {
	Cause error
}

func (e *SessionExpiredError) Error() string {
	if e.Cause == nil {
		return ErrSessionExpired.Error()
	}
	return ErrSessionExpired.Error() + ": " + e.Cause.Error()
}

func (e *SessionExpiredError) Is(target error) bool { return target == ErrSessionExpired }

func (e *SessionExpiredError) Unwrap() error { return e.Cause }
