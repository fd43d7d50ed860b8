package app

import (
	"errors"

	"github.com/atotto/clipboard"
)

var errClipboardUnsupported = errors.New("no clipboard utility available")

// Clipboard writes text to a clipboard.
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard writes to the operating system clipboard.
type SystemClipboard struct{}

// WriteAll implements Clipboard.
func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return errClipboardUnsupported
	}
	return clipboard.WriteAll(text)
}

// Notice is the confirmation or failure message shown after a clipboard action.
type Notice struct {
	OK      bool
	Message string
}

// Clipboard action messages.
const (
	ShareCopiedMessage     = "Share link copied to clipboard!"
	ShareNotCopiedMessage  = "Could not copy link"
	SourceCopiedMessage    = "Source URL copied to clipboard!"
	SourceNotCopiedMessage = "Could not copy source URL"
)
