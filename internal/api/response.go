package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/trueprep/fact-graph/dictionary"
	"github.com/trueprep/fact-graph/fgpath"
	"github.com/trueprep/fact-graph/graph"
	"github.com/trueprep/fact-graph/result"
	"github.com/trueprep/fact-graph/value"
)

// writeJSON encodes v as the response body with the given status code.
// Mirrors the teacher stack's json.NewEncoder(w).Encode(...) handler
// idiom (orbas1-Synnergy's wallet controllers).
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// errorBody is the user-visible error envelope (spec §7: "maps the
// taxonomy to structured responses (success: false, error: …) and never
// leaks internal representations").
type errorBody struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// writeError classifies err against the spec §7 error taxonomy and
// writes the matching HTTP status alongside an errorBody carrying
// err.Error(). Unrecognized errors default to 500.
func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusFor(err), errorBody{Success: false, Error: err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, graph.ErrUnknownPath):
		return http.StatusNotFound
	case errors.Is(err, fgpath.ErrInvalidPath):
		return http.StatusBadRequest
	case errors.Is(err, value.ErrInvalidValue):
		return http.StatusBadRequest
	case errors.Is(err, graph.ErrTypeMismatch):
		return http.StatusBadRequest
	case errors.Is(err, graph.ErrGraph):
		return http.StatusBadRequest
	case errors.Is(err, result.ErrShapeMismatch):
		return http.StatusInternalServerError
	case errors.Is(err, graph.ErrEvaluationCycle):
		return http.StatusInternalServerError
	case errors.Is(err, dictionary.ErrDictionary):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
