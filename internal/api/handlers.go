package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/trueprep/fact-graph/fgpath"
	"github.com/trueprep/fact-graph/graph"
	"github.com/trueprep/fact-graph/limit"
	"github.com/trueprep/fact-graph/migrate"
	"github.com/trueprep/fact-graph/store"
	"github.com/trueprep/fact-graph/value"
)

// factPath recovers the dictionary/store path (leading slash restored)
// from chi's wildcard capture under /facts/*.
func factPath(r *http.Request) string {
	return "/" + chi.URLParam(r, "*")
}

// splitVerb strips a trailing "/verb" segment from path, returning the
// fact path it was attached to and whether the suffix matched.
func splitVerb(path, verb string) (string, bool) {
	suffix := "/" + verb
	if !strings.HasSuffix(path, suffix) {
		return "", false
	}
	return strings.TrimSuffix(path, suffix), true
}

func (s *Server) handleListPaths(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"paths": s.dict.AbstractPaths()})
}

func (s *Server) handleReset(w http.ResponseWriter, _ *http.Request) {
	s.g.Reset()
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (s *Server) handleSnapshot(w http.ResponseWriter, _ *http.Request) {
	raw, err := s.g.Store().ToJSON(false)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(raw)
}

func (s *Server) handleLoad(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, err)
		return
	}
	registry := s.registry
	if registry == nil {
		registry = migrate.NewRegistry()
	}
	st, err := migrate.Load(raw, registry, nil)
	if err != nil {
		writeError(w, err)
		return
	}
	s.g.LoadStore(st)
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (s *Server) handleDiff(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, err)
		return
	}
	other, err := store.FromJSON(raw, nil)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.g.Diff(other))
}

type batchSetItem struct {
	Path  string          `json:"path"`
	Value json.RawMessage `json:"value"`
}

type batchSetResult struct {
	Path       string            `json:"path"`
	OK         bool              `json:"ok"`
	Violations []limit.Violation `json:"violations,omitempty"`
	Error      string            `json:"error,omitempty"`
}

func (s *Server) handleBatchSet(w http.ResponseWriter, r *http.Request) {
	var items []batchSetItem
	if err := json.NewDecoder(r.Body).Decode(&items); err != nil {
		writeError(w, err)
		return
	}
	results := make([]batchSetResult, len(items))
	for i, item := range items {
		ok, violations, err := s.setOne(item.Path, item.Value)
		res := batchSetResult{Path: item.Path, OK: ok, Violations: violations}
		if err != nil {
			res.Error = err.Error()
		}
		results[i] = res
	}
	writeJSON(w, http.StatusOK, results)
}

// setOne decodes raw against path's declared type and writes it, shared
// by the single-fact PUT handler and batch-set.
func (s *Server) setOne(path string, raw json.RawMessage) (bool, []limit.Violation, error) {
	def, ok := s.dict.Lookup(pathToAbstract(path))
	if !ok {
		return false, nil, fmt.Errorf("%w: %s", graph.ErrUnknownPath, path)
	}
	v, err := value.UnmarshalPlain(def.DeclaredType, raw, nil)
	if err != nil {
		return false, nil, err
	}
	return s.g.Set(path, v)
}

func (s *Server) handleFactGet(w http.ResponseWriter, r *http.Request) {
	wildcard := factPath(r)

	if path, ok := splitVerb(wildcard, "value"); ok {
		s.getValue(w, path)
		return
	}
	if path, ok := splitVerb(wildcard, "explain"); ok {
		s.explain(w, path)
		return
	}
	if path, ok := splitVerb(wildcard, "forward-deps"); ok {
		s.forwardDeps(w, path)
		return
	}
	if path, ok := splitVerb(wildcard, "reverse-deps"); ok {
		s.reverseDeps(w, path)
		return
	}
	s.describeFact(w, wildcard)
}

func (s *Server) getValue(w http.ResponseWriter, path string) {
	r, err := s.g.Get(path)
	if err != nil {
		writeError(w, err)
		return
	}
	body := map[string]any{"is_complete": r.IsComplete()}
	if v, ok := r.Value(); ok {
		raw, err := value.MarshalPlain(v)
		if err != nil {
			writeError(w, err)
			return
		}
		body["value"] = json.RawMessage(raw)
	}
	writeJSON(w, http.StatusOK, body)
}

func (s *Server) explain(w http.ResponseWriter, path string) {
	// include-xml is always false: no XML dictionary source is wired
	// in-process (SPEC_FULL.md §12).
	text, err := s.g.Explain(path)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"derivation": text, "include_xml": false})
}

func (s *Server) forwardDeps(w http.ResponseWriter, path string) {
	deps, err := s.dict.ForwardDeps(pathToAbstract(path))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"deps": deps})
}

func (s *Server) reverseDeps(w http.ResponseWriter, path string) {
	deps, err := s.dict.ReverseDeps(pathToAbstract(path))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"deps": deps})
}

func (s *Server) describeFact(w http.ResponseWriter, path string) {
	def, ok := s.dict.Lookup(pathToAbstract(path))
	if !ok {
		writeError(w, fmt.Errorf("%w: %s", graph.ErrUnknownPath, path))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"type_tag":    def.DeclaredType.String(),
		"is_writable": def.IsWritable,
		"include_xml": false,
	})
}

func (s *Server) handleFactPut(w http.ResponseWriter, r *http.Request) {
	path, ok := splitVerb(factPath(r), "value")
	if !ok {
		writeError(w, fmt.Errorf("%w: PUT requires a /value suffix", graph.ErrGraph))
		return
	}
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, err)
		return
	}

	def, ok := s.dict.Lookup(pathToAbstract(path))
	if !ok {
		writeError(w, fmt.Errorf("%w: %s", graph.ErrUnknownPath, path))
		return
	}
	v, err := value.UnmarshalPlain(def.DeclaredType, raw, nil)
	if err != nil {
		writeError(w, err)
		return
	}

	var setOK bool
	var violations []limit.Violation
	if r.URL.Query().Get("strict") == "true" {
		setOK, violations, err = s.g.TrySet(path, v)
	} else {
		setOK, violations, err = s.g.Set(path, v)
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": setOK, "violations": violations})
}

type memberRequest struct {
	ID string `json:"id,omitempty"`
}

func (s *Server) handleFactPost(w http.ResponseWriter, r *http.Request) {
	path, ok := splitVerb(factPath(r), "members")
	if !ok {
		writeError(w, fmt.Errorf("%w: POST requires a /members suffix", graph.ErrGraph))
		return
	}

	var req memberRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, err)
			return
		}
	}

	if req.ID != "" {
		if err := s.g.AddMember(path, req.ID); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"ok": true, "id": req.ID})
		return
	}
	id, err := s.g.AddMemberAuto(path)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "id": id})
}

func (s *Server) handleFactDelete(w http.ResponseWriter, r *http.Request) {
	wildcard := factPath(r)
	idx := strings.LastIndex(wildcard, "/members/")
	if idx < 0 {
		writeError(w, fmt.Errorf("%w: DELETE requires /members/<id>", graph.ErrGraph))
		return
	}
	collectionPath := wildcard[:idx]
	id := wildcard[idx+len("/members/"):]
	if err := s.g.RemoveMember(collectionPath, id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// pathToAbstract parses path and replaces every concrete member selector
// (#id) with a wildcard, the form a dictionary lookup needs. Falls back
// to path unchanged if it doesn't parse (the lookup then simply misses
// and the caller reports ErrUnknownPath).
func pathToAbstract(path string) string {
	p, err := fgpath.Parse(path)
	if err != nil {
		return path
	}
	return p.ToAbstract().String()
}
