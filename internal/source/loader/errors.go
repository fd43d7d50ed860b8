package loader

import (
	"errors"
	"fmt"
)

// LoadErrorType represents the type of load error.
type LoadErrorType int

const (
	// EmptyInput indicates no source URL was given.
	EmptyInput LoadErrorType = iota
	// HTTPError indicates both the primary and the relay fetch failed.
	HTTPError
	// ParseError indicates the response body is not a valid source document.
	ParseError
)

// String returns the string representation of the error type.
func (t LoadErrorType) String() string {
	switch t {
	case EmptyInput:
		return "EmptyInput"
	case HTTPError:
		return "HTTPError"
	case ParseError:
		return "ParseError"
	default:
		return "Unknown"
	}
}

// LoadError is the single failure reason surfaced by a load attempt.
type LoadError struct {
	// Type is the error type classification.
	Type LoadErrorType
	// URL is the resolved source URL (empty for EmptyInput).
	URL string
	// Status is the HTTP status of the last attempt, 0 for network failures.
	Status int
	// Message is the human-readable error message.
	Message string
	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	switch {
	case e.Type == EmptyInput:
		return e.Message
	case e.Status != 0:
		return fmt.Sprintf("%s: HTTP %d", e.Message, e.Status)
	case e.Cause != nil:
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	default:
		return e.Message
	}
}

// Unwrap returns the underlying cause for error wrapping.
func (e *LoadError) Unwrap() error {
	return e.Cause
}

// NewEmptyInputError creates an empty input error.
func NewEmptyInputError() *LoadError {
	return &LoadError{
		Type:    EmptyInput,
		Message: "please enter a source URL",
	}
}

// NewHTTPError creates an error for a failed relay fallback. status is the
// relay response status, or 0 when the request did not complete.
func NewHTTPError(url string, status int, cause error) *LoadError {
	return &LoadError{
		Type:    HTTPError,
		URL:     url,
		Status:  status,
		Message: "failed to load source",
		Cause:   cause,
	}
}

// NewParseError creates a parse error.
func NewParseError(url string, cause error) *LoadError {
	return &LoadError{
		Type:    ParseError,
		URL:     url,
		Message: "failed to parse source",
		Cause:   cause,
	}
}

// TypeOf returns the LoadErrorType of err, and false when err is not a LoadError.
func TypeOf(err error) (LoadErrorType, bool) {
	var le *LoadError
	if errors.As(err, &le) {
		return le.Type, true
	}
	return 0, false
}

// IsEmptyInput reports whether err is an EmptyInput load error.
func IsEmptyInput(err error) bool {
	t, ok := TypeOf(err)
	return ok && t == EmptyInput
}

// IsHTTPError reports whether err is an HTTPError load error.
func IsHTTPError(err error) bool {
	t, ok := TypeOf(err)
	return ok && t == HTTPError
}

// IsParseError reports whether err is a ParseError load error.
func IsParseError(err error) bool {
	t, ok := TypeOf(err)
	return ok && t == ParseError
}
