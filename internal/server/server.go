// Package server exposes the tag-cloud renderer over HTTP.
//
// This is the hosted equivalent of a wiki invoking the tag inline: GET
// /cloud accepts the same attributes as query parameters and responds with
// the HTML fragment. The requested refresh TTL is surfaced to downstream
// caches via Cache-Control, mirroring how the wiki's output cache would
// honor the hint.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mhelmke/wikicloud/pkg/cloud"
	"github.com/mhelmke/wikicloud/pkg/errors"
	"github.com/mhelmke/wikicloud/pkg/pipeline"
)

// attrParams are the query parameters forwarded as tag attributes.
// Anything else in the query string is ignored, like unknown attributes.
var attrParams = []string{
	cloud.AttrMin,
	cloud.AttrMax,
	cloud.AttrExclude,
	cloud.AttrOnly,
	cloud.AttrMinSize,
	cloud.AttrMaxSize,
	cloud.AttrRefresh,
}

// Server renders tag clouds for HTTP clients.
type Server struct {
	runner   *pipeline.Runner
	logger   *log.Logger
	defaults map[string]string
}

// New creates a Server. defaults supplies attribute values for parameters
// the request omits; nil means no server-side defaults.
func New(runner *pipeline.Runner, logger *log.Logger, defaults map[string]string) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{runner: runner, logger: logger, defaults: defaults}
}

// Router builds the HTTP routing table.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(s.requestID)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)
	r.Get("/cloud", s.handleCloud)

	return r
}

// Serve runs the server until the listener fails or ctx is cancelled.
// Cancellation triggers a graceful shutdown with a short drain window.
func (s *Server) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	s.logger.Infof("listening on %s", addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, "ok")
}

func (s *Server) handleCloud(w http.ResponseWriter, r *http.Request) {
	result, err := s.runner.Execute(r.Context(), s.attrs(r))
	if err != nil {
		// The data source boundary owns retries; here a failure is final.
		s.logger.Errorf("render failed: %v", err)
		status := http.StatusBadGateway
		if errors.GetCode(err) == "" || errors.Is(err, errors.ErrCodeInternal) {
			status = http.StatusInternalServerError
		}
		http.Error(w, errors.UserMessage(err), status)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if result.TTL > 0 {
		w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(result.TTL.Seconds())))
	}
	_, _ = w.Write(result.Fragment)
}

// attrs merges server defaults with request parameters; the request wins.
func (s *Server) attrs(r *http.Request) map[string]string {
	attrs := make(map[string]string, len(s.defaults)+len(attrParams))
	for k, v := range s.defaults {
		attrs[k] = v
	}
	query := r.URL.Query()
	for _, p := range attrParams {
		if query.Has(p) {
			attrs[p] = query.Get(p)
		}
	}
	return attrs
}

// requestIDHeader carries the request correlation ID.
const requestIDHeader = "X-Request-Id"

// requestID assigns each request a correlation ID, echoed in the response.
func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r)
	})
}

// logRequests logs one line per request with method, path, and duration.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debugf("%s %s (%s)", r.Method, r.URL.Path, time.Since(start).Round(time.Millisecond))
	})
}
