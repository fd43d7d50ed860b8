package app

import (
	"errors"
	"fmt"
)

// AppErrorType represents the type of application error.
type AppErrorType int

const (
	// StaleResult indicates a load completed after a newer load was started.
	StaleResult AppErrorType = iota
	// NothingDisplayed indicates an action needs a displayed source.
	NothingDisplayed
	// ClipboardFailed indicates the clipboard could not be written.
	ClipboardFailed
	// ShareFailed indicates a share link could not be built.
	ShareFailed
)

// AppError represents an application-layer error.
type AppError struct {
	// Type is the error type.
	Type AppErrorType
	// Message is the error message.
	Message string
	// Cause is the underlying error.
	Cause error
}

// Error returns the error message.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewAppError creates a new AppError.
func NewAppError(errType AppErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// NewStaleResultError creates a stale result error.
func NewStaleResultError(token, latest uint64) *AppError {
	return NewAppError(StaleResult, fmt.Sprintf("load %d superseded by load %d", token, latest), nil)
}

// NewNothingDisplayedError creates an error for actions without a displayed source.
func NewNothingDisplayedError() *AppError {
	return NewAppError(NothingDisplayed, "no source is displayed", nil)
}

// NewClipboardError creates a clipboard error.
func NewClipboardError(cause error) *AppError {
	return NewAppError(ClipboardFailed, "failed to write clipboard", cause)
}

// NewShareError creates a share link error.
func NewShareError(cause error) *AppError {
	return NewAppError(ShareFailed, "failed to build share link", cause)
}

// IsStaleResult reports whether err is a StaleResult error.
func IsStaleResult(err error) bool {
	var ae *AppError
	return errors.As(err, &ae) && ae.Type == StaleResult
}

// IsNothingDisplayed reports whether err is a NothingDisplayed error.
func IsNothingDisplayed(err error) bool {
	var ae *AppError
	return errors.As(err, &ae) && ae.Type == NothingDisplayed
}
