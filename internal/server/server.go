// Package server serves the AltAdder web page and its JSON API.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/singleflight"

	"github.com/tacogips/altadder/internal/app"
	"github.com/tacogips/altadder/internal/debug"
	"github.com/tacogips/altadder/internal/render"
	"github.com/tacogips/altadder/internal/share"
	"github.com/tacogips/altadder/internal/source/loader"
	"github.com/tacogips/altadder/internal/source/model"
	"github.com/tacogips/altadder/internal/source/trust"
)

// SourceLoader loads sources with relay fallback and fetches trusted cards.
type SourceLoader interface {
	app.SourceLoader
	app.CardFetcher
}

// Options configures a Server.
type Options struct {
	Loader   SourceLoader
	Registry *trust.Registry
	// Metrics serves /metrics when set.
	Metrics http.Handler
	// PublicURL is the base of share links. When empty it is derived from
	// the request.
	PublicURL string
}

// Server is the HTTP front end. Each request is an independent page session.
type Server struct {
	loader    SourceLoader
	registry  *trust.Registry
	publicURL string
	group     singleflight.Group
	router    chi.Router
}

// New creates a Server and its routes.
func New(opts Options) *Server {
	s := &Server{
		loader:    opts.Loader,
		registry:  opts.Registry,
		publicURL: opts.PublicURL,
	}
	if s.registry == nil {
		s.registry = trust.Default()
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if opts.Metrics != nil {
		r.Handle("/metrics", opts.Metrics)
	}
	r.Get("/", s.handleHome)
	r.Get("/api/source", s.handleAPISource)

	s.router = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		debug.Debug("[server] Listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		debug.Debug("[server] Shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	// A share link with an empty source opens the plain home page; an empty
	// form submission reports the missing URL.
	q := r.URL.Query()
	input := q.Get(share.QueryParam)
	if input == "" && !q.Has(render.SubmitParam) {
		s.renderHome(w, r, render.HomePage{})
		return
	}

	sess := s.newSession()
	v, err := sess.Load(r.Context(), input)
	if err != nil {
		s.renderHome(w, r, render.HomePage{Input: input, Error: err.Error()})
		return
	}

	page := render.SourcePage{Model: v.Model}
	if link, err := v.ShareLink(s.shareBase(r)); err == nil {
		page.ShareLink = link
	} else {
		debug.Debug("[server] Share link unavailable: %v", err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := render.Source(w, page); err != nil {
		debug.Debug("[server] Failed to render source page: %v", err)
	}
}

func (s *Server) renderHome(w http.ResponseWriter, r *http.Request, page render.HomePage) {
	page.Cards = app.TrustedCards(r.Context(), coalescing{s}, s.registry)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := render.Home(w, page); err != nil {
		debug.Debug("[server] Failed to render home page: %v", err)
	}
}

// apiError is the JSON body of a failed API load.
type apiError struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

func (s *Server) handleAPISource(w http.ResponseWriter, r *http.Request) {
	sess := s.newSession()
	v, err := sess.Load(r.Context(), r.URL.Query().Get("url"))
	if err != nil {
		status, kind := http.StatusInternalServerError, "Unknown"
		if t, ok := loader.TypeOf(err); ok {
			kind = t.String()
			status = statusFor(t)
		}
		writeJSON(w, status, apiError{Error: err.Error(), Kind: kind})
		return
	}
	writeJSON(w, http.StatusOK, v.Model)
}

func statusFor(t loader.LoadErrorType) int {
	switch t {
	case loader.EmptyInput:
		return http.StatusBadRequest
	case loader.HTTPError:
		return http.StatusBadGateway
	case loader.ParseError:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		debug.Debug("[server] Failed to encode response: %v", err)
	}
}

// newSession starts a page session whose loads are coalesced across
// concurrent requests.
func (s *Server) newSession() *app.Session {
	return app.NewSession(coalescing{s}, app.WithRegistry(s.registry))
}

// shareBase returns the configured public URL or the request's origin.
func (s *Server) shareBase(r *http.Request) string {
	if s.publicURL != "" {
		return s.publicURL
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto == "http" || proto == "https" {
		scheme = proto
	}
	return scheme + "://" + r.Host + "/"
}

// coalescing shares one in-flight load between concurrent requests for the
// same resolved URL, and one in-flight card fetch per trusted source.
type coalescing struct {
	s *Server
}

func (c coalescing) Load(ctx context.Context, rawInput string) (*loader.LoadResult, error) {
	resolved, err := loader.ResolveInput(rawInput)
	if err != nil {
		return nil, err
	}

	val, err := c.do(ctx, "load:"+resolved, func(shared context.Context) (any, error) {
		return c.s.loader.Load(shared, resolved)
	})
	if err != nil {
		return nil, err
	}
	return val.(*loader.LoadResult), nil
}

func (c coalescing) FetchCard(ctx context.Context, url string) (*model.SourceDocument, error) {
	val, err := c.do(ctx, "card:"+url, func(shared context.Context) (any, error) {
		return c.s.loader.FetchCard(shared, url)
	})
	if err != nil {
		return nil, err
	}
	return val.(*model.SourceDocument), nil
}

// do runs fn once per key among concurrent callers. The shared call outlives
// any single caller; a cancelled caller stops waiting.
func (c coalescing) do(ctx context.Context, key string, fn func(context.Context) (any, error)) (any, error) {
	shared := context.WithoutCancel(ctx)
	ch := c.s.group.DoChan(key, func() (any, error) {
		return fn(shared)
	})

	select {
	case res := <-ch:
		if res.Shared {
			debug.Debug("[server] Shared in-flight %s", key)
		}
		return res.Val, res.Err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !debug.IsEnabled() {
			next.ServeHTTP(w, r)
			return
		}
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		debug.Debug("[server] %s %s %d %s (request %s)",
			r.Method, r.URL.RequestURI(), ww.Status(), time.Since(start), middleware.GetReqID(r.Context()))
	})
}
