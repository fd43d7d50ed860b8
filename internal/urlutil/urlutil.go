// Package urlutil holds URL encoding helpers shared by the loader, the
// projector and share links.
package urlutil

import (
	"net/url"
	"strings"
)

// Characters QueryEscape encodes that stay literal in a URI component.
var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EncodeComponent percent-encodes s for embedding as a single URL component,
// leaving A-Z a-z 0-9 and - _ . ! ~ * ' ( ) literal. Spaces become %20, so
// the result is safe in both query values and path segments.
func EncodeComponent(s string) string {
	return componentUnescaper.Replace(url.QueryEscape(s))
}
