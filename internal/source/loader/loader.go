// Package loader fetches source documents, falling back once to a relay
// endpoint when the direct fetch fails.
package loader

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tacogips/altadder/internal/build"
	"github.com/tacogips/altadder/internal/config"
	"github.com/tacogips/altadder/internal/debug"
	"github.com/tacogips/altadder/internal/source/model"
	"github.com/tacogips/altadder/internal/source/trust"
	"github.com/tacogips/altadder/internal/urlutil"
)

// Shorthand inputs that expand to the canonical AltStore catalog.
var altStoreShorthands = map[string]struct{}{
	"apps.altstore.io": {},
	"altstore.io":      {},
}

// Attempt identifies which request of a load produced an outcome.
type Attempt string

const (
	// AttemptPrimary is the direct GET of the resolved URL.
	AttemptPrimary Attempt = "primary"
	// AttemptRelay is the fallback GET through the relay endpoint.
	AttemptRelay Attempt = "relay"
)

// Recorder observes fetch attempts. It is implemented by the metrics package.
type Recorder interface {
	ObserveAttempt(attempt Attempt, ok bool)
	ObserveLoad(err error)
}

type nopRecorder struct{}

func (nopRecorder) ObserveAttempt(Attempt, bool) {}
func (nopRecorder) ObserveLoad(error) {}

// Options configures a Loader.
type Options struct {
	// HTTPClient performs both attempts. Its Timeout bounds each attempt.
	HTTPClient *http.Client
	// RelayURL is the pass-through endpoint; the resolved URL is appended as
	// the "url" query parameter.
	RelayURL string
	// UserAgent is sent with every request.
	UserAgent string
	// MaxBodyBytes caps the response size (0 = unlimited).
	MaxBodyBytes int64
	// Recorder observes attempts and load outcomes (optional).
	Recorder Recorder
}

// LoadResult is the immutable outcome of a successful load.
type LoadResult struct {
	// Document is the parsed source document.
	Document *model.SourceDocument
	// ResolvedURL is the source identity used for trust checks, deep links
	// and share links. It is never the relay URL.
	ResolvedURL string
	// ViaRelay reports whether the body came from the relay endpoint.
	ViaRelay bool
}

// Loader loads source documents.
type Loader struct {
	client    *http.Client
	relayURL  string
	userAgent string
	maxBody   int64
	recorder  Recorder
}

// New creates a Loader from options, filling unset fields with defaults.
func New(opts Options) *Loader {
	l := &Loader{
		client:    opts.HTTPClient,
		relayURL:  opts.RelayURL,
		userAgent: opts.UserAgent,
		maxBody:   opts.MaxBodyBytes,
		recorder:  opts.Recorder,
	}
	if l.client == nil {
		l.client = &http.Client{
			Timeout: config.DefaultTimeoutSeconds * time.Second,
		}
	}
	if l.relayURL == "" {
		l.relayURL = config.DefaultRelayURL
	}
	if l.userAgent == "" {
		l.userAgent = build.UserAgent()
	}
	if l.recorder == nil {
		l.recorder = nopRecorder{}
	}
	return l
}

// NewFromConfig creates a Loader from the global configuration.
func NewFromConfig(cfg *config.Config, recorder Recorder) *Loader {
	return New(Options{
		HTTPClient: &http.Client{
			Timeout: time.Duration(cfg.HTTP.TimeoutSeconds) * time.Second,
		},
		RelayURL:     cfg.HTTP.RelayURL,
		UserAgent:    cfg.HTTP.UserAgent,
		MaxBodyBytes: cfg.HTTP.MaxBodyBytes,
		Recorder:     recorder,
	})
}

// ResolveInput trims raw input and expands the AltStore shorthands.
// Empty input returns an EmptyInput error.
func ResolveInput(raw string) (string, error) {
	url := strings.TrimSpace(raw)
	if url == "" {
		return "", NewEmptyInputError()
	}
	if _, ok := altStoreShorthands[url]; ok {
		return trust.AltStoreURL, nil
	}
	return url, nil
}

// RelayURLFor returns the relay request URL for a resolved source URL.
func (l *Loader) RelayURLFor(resolved string) string {
	sep := "?"
	if strings.Contains(l.relayURL, "?") {
		sep = "&"
	}
	return l.relayURL + sep + "url=" + urlutil.EncodeComponent(resolved)
}

// Load resolves rawInput and fetches the source document. The primary GET is
// retried exactly once through the relay when it does not complete or returns
// a non-2xx status.
func (l *Loader) Load(ctx context.Context, rawInput string) (*LoadResult, error) {
	result, err := l.load(ctx, rawInput)
	l.recorder.ObserveLoad(err)
	return result, err
}

func (l *Loader) load(ctx context.Context, rawInput string) (*LoadResult, error) {
	debug.DebugSection("[loader] Load")
	debug.DebugValue("[loader] Input", rawInput)

	resolved, err := ResolveInput(rawInput)
	if err != nil {
		debug.Debug("[loader] Rejected input: %v", err)
		return nil, err
	}
	debug.DebugValue("[loader] Resolved URL", resolved)

	viaRelay := false
	body, _, primaryErr := l.get(ctx, resolved)
	l.recorder.ObserveAttempt(AttemptPrimary, primaryErr == nil)
	if primaryErr != nil {
		debug.Debug("[loader] Primary fetch failed: %v", primaryErr)

		relay := l.RelayURLFor(resolved)
		debug.DebugValue("[loader] Relay URL", relay)

		var status int
		var relayErr error
		body, status, relayErr = l.get(ctx, relay)
		l.recorder.ObserveAttempt(AttemptRelay, relayErr == nil)
		if relayErr != nil {
			debug.Debug("[loader] Relay fetch failed: %v", relayErr)
			if status != 0 {
				return nil, NewHTTPError(resolved, status, nil)
			}
			return nil, NewHTTPError(resolved, 0, relayErr)
		}
		viaRelay = true
	}

	doc, err := model.Decode(body)
	if err != nil {
		debug.Debug("[loader] Parse failed: %v", err)
		return nil, NewParseError(resolved, err)
	}
	debug.Debug("[loader] Loaded %d apps (relay: %v)", len(doc.Apps), viaRelay)

	return &LoadResult{
		Document:    doc,
		ResolvedURL: resolved,
		ViaRelay:    viaRelay,
	}, nil
}

// FetchCard fetches a document without the relay fallback. Trusted source
// cards use it and skip sources that fail.
func (l *Loader) FetchCard(ctx context.Context, url string) (*model.SourceDocument, error) {
	body, _, err := l.get(ctx, url)
	l.recorder.ObserveAttempt(AttemptPrimary, err == nil)
	if err != nil {
		return nil, NewHTTPError(url, 0, err)
	}
	doc, err := model.Decode(body)
	if err != nil {
		return nil, NewParseError(url, err)
	}
	return doc, nil
}

// get performs a single GET. It returns the response status alongside an
// error for non-2xx responses, and status 0 when the request did not complete.
func (l *Loader) get(ctx context.Context, target string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", l.userAgent)

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, resp.StatusCode, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var reader io.Reader = resp.Body
	if l.maxBody > 0 {
		reader = io.LimitReader(resp.Body, l.maxBody+1)
	}
	body, err := io.ReadAll(reader)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read response body: %w", err)
	}
	if l.maxBody > 0 && int64(len(body)) > l.maxBody {
		return nil, 0, fmt.Errorf("response body exceeds %d bytes", l.maxBody)
	}
	return body, resp.StatusCode, nil
}
