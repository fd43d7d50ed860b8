package app

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/tacogips/altadder/internal/share"
	"github.com/tacogips/altadder/internal/source/loader"
	"github.com/tacogips/altadder/internal/source/model"
	"github.com/tacogips/altadder/internal/source/trust"
	"github.com/tacogips/altadder/internal/view"
)

// fakeLoader serves documents by resolved URL.
type fakeLoader struct {
	docs map[string]string
}

func (f *fakeLoader) Load(ctx context.Context, rawInput string) (*loader.LoadResult, error) {
	resolved, err := loader.ResolveInput(rawInput)
	if err != nil {
		return nil, err
	}
	body, ok := f.docs[resolved]
	if !ok {
		return nil, loader.NewHTTPError(resolved, 404, nil)
	}
	doc, err := model.Decode([]byte(body))
	if err != nil {
		return nil, loader.NewParseError(resolved, err)
	}
	return &loader.LoadResult{Document: doc, ResolvedURL: resolved}, nil
}

type fakeClipboard struct {
	text string
	err  error
}

func (c *fakeClipboard) WriteAll(text string) error {
	if c.err != nil {
		return c.err
	}
	c.text = text
	return nil
}

const (
	exampleURL = "https://example.com/apps.json"
	brokenURL  = "https://example.com/broken.json"
)

func newTestSession(clip Clipboard) *Session {
	l := &fakeLoader{docs: map[string]string{
		exampleURL:        `{"name": "Example", "apps": [{"name": "A", "iconURL": "a.png", "versions": [{"version": "1.0"}]}]}`,
		trust.AltStoreURL: `{"name": "AltStore"}`,
		brokenURL:         `{"name": `,
	}}
	return NewSession(l, WithClipboard(clip))
}

func TestSession_LoadDisplaysSource(t *testing.T) {
	s := newTestSession(&fakeClipboard{})
	if s.State() != Idle {
		t.Fatalf("initial state = %v, want Idle", s.State())
	}

	v, err := s.Load(context.Background(), exampleURL)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.State() != Displaying {
		t.Errorf("state = %v, want Displaying", s.State())
	}
	if v.Model.Name != "Example" || v.SourceURL() != exampleURL {
		t.Errorf("unexpected view: %+v", v.Model)
	}
	cur, ok := s.Current()
	if !ok || cur != v {
		t.Error("Current() should return the displayed view")
	}
}

func TestSession_ErrorsAndBack(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(error) bool
	}{
		{name: "empty input", input: "  ", check: loader.IsEmptyInput},
		{name: "http error", input: "https://example.com/missing.json", check: loader.IsHTTPError},
		{name: "parse error", input: brokenURL, check: loader.IsParseError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(&fakeClipboard{})
			_, err := s.Load(context.Background(), tt.input)
			if !tt.check(err) {
				t.Fatalf("Load() error = %v", err)
			}
			if s.State() != ErrorShown {
				t.Errorf("state = %v, want ErrorShown", s.State())
			}
			if s.Err() != err {
				t.Errorf("Err() = %v, want %v", s.Err(), err)
			}
			if _, ok := s.Current(); ok {
				t.Error("no view should be displayed after an error")
			}

			if !s.Back() {
				t.Fatal("Back() from ErrorShown should succeed")
			}
			if s.State() != Idle || s.Err() != nil {
				t.Errorf("after Back: state = %v, err = %v", s.State(), s.Err())
			}
		})
	}
}

func TestSession_Transitions(t *testing.T) {
	s := newTestSession(&fakeClipboard{})

	if s.Back() {
		t.Error("Back() from Idle should be rejected")
	}

	token := s.Begin()
	if s.State() != Loading {
		t.Fatalf("state = %v, want Loading", s.State())
	}
	if s.Back() {
		t.Error("Back() from Loading should be rejected")
	}

	result, err := (&fakeLoader{docs: map[string]string{exampleURL: `{}`}}).Load(context.Background(), exampleURL)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := s.Complete(token, result); !ok {
		t.Fatal("Complete() with latest token should be accepted")
	}
	if _, ok := s.Complete(token, result); ok {
		t.Error("Complete() outside Loading should be rejected")
	}

	// Displaying -> Loading -> ErrorShown -> Loading -> Displaying
	token = s.Begin()
	if !s.Fail(token, errors.New("boom")) {
		t.Fatal("Fail() with latest token should be accepted")
	}
	token = s.Begin()
	if _, ok := s.Complete(token, result); !ok {
		t.Fatal("Complete() after ErrorShown should be accepted")
	}
	if !s.Back() || s.State() != Idle {
		t.Errorf("Back() from Displaying should return to Idle, state = %v", s.State())
	}
}

func TestSession_StaleResultsDiscarded(t *testing.T) {
	s := newTestSession(&fakeClipboard{})
	result := &loader.LoadResult{Document: &model.SourceDocument{Name: "Old"}, ResolvedURL: "old"}
	newer := &loader.LoadResult{Document: &model.SourceDocument{Name: "New"}, ResolvedURL: "new"}

	first := s.Begin()
	second := s.Begin()

	// The newer load resolves first, then the older one arrives late.
	if _, ok := s.Complete(second, newer); !ok {
		t.Fatal("latest completion should be accepted")
	}
	if _, ok := s.Complete(first, result); ok {
		t.Error("stale completion should be discarded")
	}
	if s.Fail(first, errors.New("late failure")) {
		t.Error("stale failure should be discarded")
	}

	v, ok := s.Current()
	if !ok || v.Model.Name != "New" || v.Token != second {
		t.Errorf("displayed view = %+v, want load %d", v, second)
	}
}

// blockingLoader blocks each load until released.
type blockingLoader struct {
	mu      sync.Mutex
	started chan string
	release map[string]chan struct{}
}

func (b *blockingLoader) gate(url string) chan struct{} {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.release[url] == nil {
		b.release[url] = make(chan struct{})
	}
	return b.release[url]
}

func (b *blockingLoader) Load(ctx context.Context, rawInput string) (*loader.LoadResult, error) {
	gate := b.gate(rawInput)
	b.started <- rawInput
	<-gate
	return &loader.LoadResult{
		Document:    &model.SourceDocument{Name: model.Text(rawInput)},
		ResolvedURL: rawInput,
	}, nil
}

func TestSession_OverlappingLoads(t *testing.T) {
	bl := &blockingLoader{started: make(chan string, 2), release: map[string]chan struct{}{}}
	s := NewSession(bl, WithClipboard(&fakeClipboard{}))

	errs := make(chan error, 2)
	go func() {
		_, err := s.Load(context.Background(), "first")
		errs <- err
	}()
	<-bl.started
	go func() {
		_, err := s.Load(context.Background(), "second")
		errs <- err
	}()
	<-bl.started

	close(bl.gate("second"))
	if err := <-errs; err != nil {
		t.Fatalf("second load error = %v", err)
	}
	close(bl.gate("first"))
	if err := <-errs; !IsStaleResult(err) {
		t.Fatalf("first load error = %v, want StaleResult", err)
	}

	v, ok := s.Current()
	if !ok || v.SourceURL() != "second" {
		t.Errorf("displayed %+v, want second", v)
	}
}

func TestSession_ShareRoundTrip(t *testing.T) {
	s := newTestSession(&fakeClipboard{})
	original, err := s.Load(context.Background(), exampleURL)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	link, err := s.ShareLink("https://altadder.example.com/")
	if err != nil {
		t.Fatalf("ShareLink() error = %v", err)
	}
	embedded, err := share.SourceFromLink(link)
	if err != nil {
		t.Fatalf("SourceFromLink() error = %v", err)
	}

	restored, err := newTestSession(&fakeClipboard{}).Load(context.Background(), embedded)
	if err != nil {
		t.Fatalf("restore Load() error = %v", err)
	}
	if diff := cmp.Diff(original.Model, restored.Model); diff != "" {
		t.Errorf("restored model differs (-original +restored):\n%s", diff)
	}
}

func TestSession_ShorthandShareUsesResolvedURL(t *testing.T) {
	s := newTestSession(&fakeClipboard{})
	if _, err := s.Load(context.Background(), "altstore.io"); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	link, err := s.ShareLink("https://altadder.example.com/")
	if err != nil {
		t.Fatal(err)
	}
	got, _ := share.SourceFromLink(link)
	if got != trust.AltStoreURL {
		t.Errorf("shared source = %q, want %q", got, trust.AltStoreURL)
	}
}

func TestSession_CopyActions(t *testing.T) {
	clip := &fakeClipboard{}
	s := newTestSession(clip)

	if _, err := s.CopySourceURL(); !IsNothingDisplayed(err) {
		t.Errorf("CopySourceURL() without view error = %v", err)
	}

	if _, err := s.Load(context.Background(), exampleURL); err != nil {
		t.Fatal(err)
	}

	notice, err := s.CopySourceURL()
	if err != nil || !notice.OK || notice.Message != SourceCopiedMessage {
		t.Errorf("CopySourceURL() = %+v, %v", notice, err)
	}
	if clip.text != exampleURL {
		t.Errorf("clipboard = %q, want %q", clip.text, exampleURL)
	}

	notice, err = s.CopyShareLink("https://altadder.example.com/")
	if err != nil || !notice.OK || notice.Message != ShareCopiedMessage {
		t.Errorf("CopyShareLink() = %+v, %v", notice, err)
	}
	if want := "https://altadder.example.com/?source=https%3A%2F%2Fexample.com%2Fapps.json"; clip.text != want {
		t.Errorf("clipboard = %q, want %q", clip.text, want)
	}

	clip.err = errors.New("no clipboard")
	notice, err = s.CopyShareLink("https://altadder.example.com/")
	if err == nil || notice.OK || notice.Message != ShareNotCopiedMessage {
		t.Errorf("CopyShareLink() with failing clipboard = %+v, %v", notice, err)
	}
}

// cardFetcher serves documents for trusted cards.
type cardFetcher map[string]string

func (c cardFetcher) FetchCard(ctx context.Context, url string) (*model.SourceDocument, error) {
	body, ok := c[url]
	if !ok {
		return nil, errors.New("unavailable")
	}
	return model.Decode([]byte(body))
}

func TestTrustedCards(t *testing.T) {
	fetcher := cardFetcher{
		trust.AltStoreURL:      `{"name": "AltStore", "subtitle": "Official"}`,
		trust.LiveContainerURL: `{"iconURL": "lc.png"}`,
	}

	cards := TrustedCards(context.Background(), fetcher, trust.Default())
	want := []view.Card{
		{URL: trust.AltStoreURL, Name: "AltStore", Subtitle: "Official"},
		{URL: trust.LiveContainerURL, Name: view.UnknownCardName, IconURL: "lc.png"},
	}
	if diff := cmp.Diff(want, cards); diff != "" {
		t.Errorf("TrustedCards mismatch (-want +got):\n%s", diff)
	}
}

// barrierFetcher answers only after every expected fetch has started.
type barrierFetcher struct {
	started chan struct{}
	all     chan struct{}
}

func (b *barrierFetcher) FetchCard(ctx context.Context, url string) (*model.SourceDocument, error) {
	b.started <- struct{}{}
	select {
	case <-b.all:
	case <-time.After(5 * time.Second):
		return nil, errors.New("fetches did not run concurrently")
	}
	return &model.SourceDocument{Name: model.Text(url)}, nil
}

func TestTrustedCards_FetchesConcurrently(t *testing.T) {
	registry := trust.Default()
	urls := registry.URLs()
	b := &barrierFetcher{started: make(chan struct{}, len(urls)), all: make(chan struct{})}

	go func() {
		for range urls {
			<-b.started
		}
		close(b.all)
	}()

	cards := TrustedCards(context.Background(), b, registry)
	if len(cards) != len(urls) {
		t.Fatalf("len(cards) = %d, want %d", len(cards), len(urls))
	}
	for i, c := range cards {
		if c.URL != urls[i] || c.Name != urls[i] {
			t.Errorf("cards[%d] = %+v, want registry order", i, c)
		}
	}
}

func TestStateString(t *testing.T) {
	for state, want := range map[State]string{
		Idle:       "Idle",
		Loading:    "Loading",
		Displaying: "Displaying",
		ErrorShown: "ErrorShown",
		State(9):   "Unknown",
	} {
		if got := state.String(); got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	}
}
