// Package share builds and parses shareable page links carrying a source URL.
package share

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/tacogips/altadder/internal/urlutil"
)

// QueryParam is the query parameter carrying the percent-encoded source URL.
const QueryParam = "source"

// ErrNoSource is returned when a link carries no source parameter.
var ErrNoSource = errors.New("link has no source parameter")

// Link returns base's origin and path with the source parameter set to
// sourceURL. Any query or fragment on base is dropped.
func Link(base, sourceURL string) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid base URL %q: %w", base, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("base URL must be absolute: %s", base)
	}

	path := u.EscapedPath()
	if path == "" {
		path = "/"
	}
	return u.Scheme + "://" + u.Host + path + "?" + QueryParam + "=" + urlutil.EncodeComponent(sourceURL), nil
}

// SourceFromLink extracts the decoded source URL from a share link.
func SourceFromLink(link string) (string, error) {
	u, err := url.Parse(link)
	if err != nil {
		return "", fmt.Errorf("invalid link %q: %w", link, err)
	}
	return SourceFromQuery(u.Query())
}

// SourceFromQuery extracts the source URL from parsed query values.
func SourceFromQuery(q url.Values) (string, error) {
	source := q.Get(QueryParam)
	if source == "" {
		return "", ErrNoSource
	}
	return source, nil
}
