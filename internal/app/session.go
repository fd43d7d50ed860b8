package app

import (
	"context"
	"sync"

	"github.com/tacogips/altadder/internal/debug"
	"github.com/tacogips/altadder/internal/share"
	"github.com/tacogips/altadder/internal/source/loader"
	"github.com/tacogips/altadder/internal/source/trust"
	"github.com/tacogips/altadder/internal/view"
)

// SourceLoader loads a source document from raw user input.
type SourceLoader interface {
	Load(ctx context.Context, rawInput string) (*loader.LoadResult, error)
}

// View is an immutable displayed source: the load result and its projection.
type View struct {
	// Token is the request token of the load that produced the view.
	Token uint64
	// Result is the load result.
	Result *loader.LoadResult
	// Model is the projected presentation model.
	Model view.PresentationModel
}

// SourceURL returns the resolved URL of the displayed source.
func (v *View) SourceURL() string {
	return v.Result.ResolvedURL
}

// ShareLink returns the share link for the view relative to base.
func (v *View) ShareLink(base string) (string, error) {
	link, err := share.Link(base, v.SourceURL())
	if err != nil {
		return "", NewShareError(err)
	}
	return link, nil
}

// Session is the page-level state machine. Each load is tagged with a
// monotonically increasing token; completions for anything but the latest
// token are discarded.
type Session struct {
	loader    SourceLoader
	registry  *trust.Registry
	clipboard Clipboard

	mu     sync.Mutex
	state  State
	latest uint64
	view   *View
	err    error
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithRegistry sets the trusted source registry used for projection.
func WithRegistry(r *trust.Registry) SessionOption {
	return func(s *Session) { s.registry = r }
}

// WithClipboard sets the clipboard used by copy actions.
func WithClipboard(c Clipboard) SessionOption {
	return func(s *Session) { s.clipboard = c }
}

// NewSession creates an idle session.
func NewSession(l SourceLoader, opts ...SessionOption) *Session {
	s := &Session{
		loader:    l,
		registry:  trust.Default(),
		clipboard: SystemClipboard{},
		state:     Idle,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the current state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Current returns the displayed view, if any.
func (s *Session) Current() (*View, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != Displaying {
		return nil, false
	}
	return s.view, true
}

// Err returns the error shown in the ErrorShown state.
func (s *Session) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != ErrorShown {
		return nil
	}
	return s.err
}

// Begin enters Loading and returns the token for the new load.
func (s *Session) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latest++
	s.state = Loading
	debug.Debug("[app] Load %d started", s.latest)
	return s.latest
}

// Complete displays result if token is the latest load. It reports whether
// the result was accepted.
func (s *Session) Complete(token uint64, result *loader.LoadResult) (*View, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if token != s.latest || s.state != Loading {
		debug.Debug("[app] Discarding stale result of load %d (latest %d)", token, s.latest)
		return nil, false
	}

	v := &View{
		Token:  token,
		Result: result,
		Model:  view.Project(result.Document, result.ResolvedURL, s.registry),
	}
	s.view = v
	s.err = nil
	s.state = Displaying
	return v, true
}

// Fail shows err if token is the latest load. It reports whether the error
// was accepted.
func (s *Session) Fail(token uint64, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if token != s.latest || s.state != Loading {
		debug.Debug("[app] Discarding stale error of load %d (latest %d)", token, s.latest)
		return false
	}
	s.view = nil
	s.err = err
	s.state = ErrorShown
	return true
}

// Back returns to Idle from Displaying or ErrorShown.
func (s *Session) Back() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != Displaying && s.state != ErrorShown {
		return false
	}
	s.state = Idle
	s.view = nil
	s.err = nil
	return true
}

// Load runs a full load: Begin, fetch, then Complete or Fail. When a newer
// load started meanwhile the outcome is discarded and a StaleResult error is
// returned.
func (s *Session) Load(ctx context.Context, rawInput string) (*View, error) {
	token := s.Begin()

	result, err := s.loader.Load(ctx, rawInput)
	if err != nil {
		if !s.Fail(token, err) {
			return nil, NewStaleResultError(token, s.latestToken())
		}
		return nil, err
	}

	v, ok := s.Complete(token, result)
	if !ok {
		return nil, NewStaleResultError(token, s.latestToken())
	}
	return v, nil
}

func (s *Session) latestToken() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest
}

// ShareLink returns the share link of the displayed source.
func (s *Session) ShareLink(base string) (string, error) {
	v, ok := s.Current()
	if !ok {
		return "", NewNothingDisplayedError()
	}
	return v.ShareLink(base)
}

// CopyShareLink writes the share link of the displayed source to the clipboard.
func (s *Session) CopyShareLink(base string) (Notice, error) {
	link, err := s.ShareLink(base)
	if err != nil {
		return Notice{Message: ShareNotCopiedMessage}, err
	}
	if err := s.clipboard.WriteAll(link); err != nil {
		return Notice{Message: ShareNotCopiedMessage}, NewClipboardError(err)
	}
	return Notice{OK: true, Message: ShareCopiedMessage}, nil
}

// CopySourceURL writes the resolved URL of the displayed source to the clipboard.
func (s *Session) CopySourceURL() (Notice, error) {
	v, ok := s.Current()
	if !ok {
		return Notice{Message: SourceNotCopiedMessage}, NewNothingDisplayedError()
	}
	if err := s.clipboard.WriteAll(v.SourceURL()); err != nil {
		return Notice{Message: SourceNotCopiedMessage}, NewClipboardError(err)
	}
	return Notice{OK: true, Message: SourceCopiedMessage}, nil
}
