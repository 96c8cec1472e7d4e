// Package api implements the REST boundary adapter (C11): a thin
// go-chi layer translating HTTP requests into the Graph/Dictionary
// operations named by spec §6's boundary operations table. It carries
// no evaluation logic of its own — every handler parses its request,
// calls straight into graph or dictionary, and maps the result (or
// error, per §7's taxonomy) to JSON.
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/trueprep/fact-graph/dictionary"
	"github.com/trueprep/fact-graph/graph"
	"github.com/trueprep/fact-graph/migrate"
)

// Server wires a single Graph, its Dictionary, and a migration Registry
// behind an HTTP API. A Server is not safe for concurrent requests that
// mutate the graph (spec §5: one graph per worker) — callers that need
// concurrent handling should front it with their own serialization
// (a per-request mutex, or one Server per worker goroutine).
type Server struct {
	g        *graph.Graph
	dict     *dictionary.Dictionary
	registry *migrate.Registry
	log      logrus.FieldLogger
}

// NewServer returns a Server over g and dict. registry may be nil if the
// deployment never needs /load (a fresh graph with no persisted facts
// to bring forward). log may be nil to disable request logging.
func NewServer(g *graph.Graph, dict *dictionary.Dictionary, registry *migrate.Registry, log logrus.FieldLogger) *Server {
	return &Server{g: g, dict: dict, registry: registry, log: log}
}

// Router builds the chi.Mux implementing spec §6's boundary operations
// table. Fact paths themselves contain slashes, so each resource group
// is mounted on a wildcard and the handler splits the trailing verb
// segment itself rather than leaning on chi's per-segment matching.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(s.requestLogger)
	r.Use(middlewareRecoverer)

	r.Get("/paths", s.handleListPaths)
	r.Post("/reset", s.handleReset)
	r.Get("/snapshot", s.handleSnapshot)
	r.Post("/load", s.handleLoad)
	r.Post("/diff", s.handleDiff)
	r.Post("/batch-set", s.handleBatchSet)

	r.Get("/facts/*", s.handleFactGet)
	r.Put("/facts/*", s.handleFactPut)
	r.Post("/facts/*", s.handleFactPost)
	r.Delete("/facts/*", s.handleFactDelete)

	return r
}

// requestLogger logs method, path, status-implying duration, grounded
// on orbas1-Synnergy's logrus-based HTTP middleware.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		if s.log != nil {
			s.log.WithFields(logrus.Fields{
				"method":   r.Method,
				"path":     r.URL.Path,
				"duration": time.Since(start).String(),
			}).Info("request")
		}
	})
}

// middlewareRecoverer converts a panicking handler into a 500 instead of
// taking the whole process down, matching chi's own middleware.Recoverer
// in spirit (kept local so the adapter depends on no more of chi's
// subpackages than the router itself).
func middlewareRecoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				writeJSON(w, http.StatusInternalServerError, errorBody{Success: false, Error: "internal error"})
			}
		}()
		next.ServeHTTP(w, r)
	})
}
