package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
)

// ErrNilResponse indicates a handler returned nil instead of a Response.
var ErrNilResponse = errors.New("handler returned nil response")

// HTTPError is an error carrying an HTTP status code and a message key.
type HTTPError struct {
	Code int
	Key  string
}

func (e HTTPError) Error() string { return e.Key }

// NewHTTPError creates an HTTPError.
func NewHTTPError(code int, key string) HTTPError {
	return HTTPError{Code: code, Key: key}
}

var (
	ErrBadRequest         = HTTPError{Code: http.StatusBadRequest, Key: "bad_request"}
	ErrNotFound           = HTTPError{Code: http.StatusNotFound, Key: "not_found"}
	ErrTooManyRequests    = HTTPError{Code: http.StatusTooManyRequests, Key: "too_many_requests"}
	ErrServiceUnavailable = HTTPError{Code: http.StatusServiceUnavailable, Key: "service_unavailable"}
)

// ValidationError collects field validation messages.
type ValidationError url.Values

func NewValidationError() ValidationError {
	return make(ValidationError)
}

// Error lists the first message of every field, ordered by field name.
func (e ValidationError) Error() string {
	if len(e) == 0 {
		return "validation error"
	}
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		if msgs := e[field]; len(msgs) > 0 {
			parts = append(parts, fmt.Sprintf("%s: %s", field, msgs[0]))
		}
	}
	return "validation error: " + strings.Join(parts, ", ")
}

func (e ValidationError) Add(field, message string) { url.Values(e).Add(field, message) }
func (e ValidationError) Get(field string) string   { return url.Values(e).Get(field) }
func (e ValidationError) Has(field string) bool     { return len(e[field]) > 0 }
func (e ValidationError) IsEmpty() bool             { return len(e) == 0 }

// Err returns e as an error, or nil when no field failed.
func (e ValidationError) Err() error {
	if e.IsEmpty() {
		return nil
	}
	return e
}
