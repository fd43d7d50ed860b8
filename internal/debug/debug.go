// Package debug provides the process-wide debug logger enabled by --debug.
package debug

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"

	"charm.land/log/v2"
	"github.com/charmbracelet/colorprofile"
)

var (
	mu      sync.RWMutex
	enabled bool
	noColor bool
	output  io.Writer = os.Stderr
	logger            = newLogger(os.Stderr, false)
)

func newLogger(w io.Writer, plain bool) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		Level:           log.DebugLevel,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.000",
		Prefix:          "[DEBUG]",
	})
	if plain {
		l.SetColorProfile(colorprofile.NoTTY)
	}
	return l
}

// SetDebug enables or disables debug mode
func SetDebug(enable bool) {
	mu.Lock()
	defer mu.Unlock()
	enabled = enable
}

// IsEnabled returns whether debug mode is enabled
func IsEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

// SetNoColor enables or disables colored output
func SetNoColor(disable bool) {
	mu.Lock()
	defer mu.Unlock()
	noColor = disable
	logger = newLogger(output, noColor)
}

// SetOutput redirects debug output. Tests use it to capture log lines.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
	logger = newLogger(output, noColor)
}

// Logger returns the underlying logger when debug mode is enabled, nil otherwise.
func Logger() *log.Logger {
	mu.RLock()
	defer mu.RUnlock()
	if !enabled {
		return nil
	}
	return logger
}

// Debug prints a debug message with timestamp
func Debug(format string, args ...interface{}) {
	l := Logger()
	if l == nil {
		return
	}
	l.Debug(fmt.Sprintf(format, args...))
}

// DebugSection prints a section header for debug output
func DebugSection(section string) {
	l := Logger()
	if l == nil {
		return
	}
	l.Debug("=== " + section + " ===")
}

// DebugValue prints key=value style debug info
func DebugValue(key string, value interface{}) {
	l := Logger()
	if l == nil {
		return
	}
	l.Debug(fmt.Sprintf("%s = %v", key, value))
}

// DebugJSON prints structured data as JSON for debugging
func DebugJSON(key string, v interface{}) {
	l := Logger()
	if l == nil {
		return
	}

	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		Debug("Failed to marshal %s to JSON: %v", key, err)
		return
	}
	l.Debug(key + ":\n" + string(jsonBytes))
}
