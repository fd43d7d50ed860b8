package config

import (
	"errors"
	"fmt"
	"strings"
)

// ConfigErrorType classifies a failure to read or accept the altadder
// settings file.
type ConfigErrorType int

const (
	// ConfigNotFound indicates the settings file does not exist.
	ConfigNotFound ConfigErrorType = iota
	// ConfigInvalid indicates the file could not be read, parsed or written.
	ConfigInvalid
	// ConfigValidationFailed indicates a setting such as http.relay_url or
	// server.public_url holds an unusable value.
	ConfigValidationFailed
)

// String returns the string representation of the error type.
func (t ConfigErrorType) String() string {
	switch t {
	case ConfigNotFound:
		return "ConfigNotFound"
	case ConfigInvalid:
		return "ConfigInvalid"
	case ConfigValidationFailed:
		return "ConfigValidationFailed"
	default:
		return "Unknown"
	}
}

// ConfigError reports a problem with the settings file.
type ConfigError struct {
	Type ConfigErrorType
	// File is empty when a Config built in memory failed validation.
	File string
	// Field is the dotted TOML key, e.g. "http.relay_url".
	Field   string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	var b strings.Builder
	b.WriteString("altadder config")
	if e.File != "" {
		fmt.Fprintf(&b, " %s", e.File)
	}
	if e.Field != "" {
		fmt.Fprintf(&b, ": %s", e.Field)
	}
	fmt.Fprintf(&b, ": %s", e.Message)
	if e.Cause != nil {
		fmt.Fprintf(&b, ": %v", e.Cause)
	}
	if e.Type == ConfigNotFound {
		b.WriteString(" (run 'altadder config init' to create it)")
	}
	return b.String()
}

// Unwrap returns the underlying cause error.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// IsNotFound reports whether err is a ConfigError for a missing settings file.
func IsNotFound(err error) bool {
	var cfgErr *ConfigError
	return errors.As(err, &cfgErr) && cfgErr.Type == ConfigNotFound
}

// NewConfigErrorWithField creates a validation error for a single setting.
func NewConfigErrorWithField(typ ConfigErrorType, file, field, message string) *ConfigError {
	return &ConfigError{
		Type:    typ,
		File:    file,
		Field:   field,
		Message: message,
	}
}

// NewConfigErrorWithCause creates a new ConfigError with a cause.
func NewConfigErrorWithCause(typ ConfigErrorType, file, message string, cause error) *ConfigError {
	return &ConfigError{
		Type:    typ,
		File:    file,
		Message: message,
		Cause:   cause,
	}
}
