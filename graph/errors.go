package graph

import "errors"

var (
	// ErrGraph reports a structural misuse of the graph API: a set
	// targeting a non-writable or abstract path, a duplicate/missing
	// collection member, or similar caller error.
	ErrGraph = errors.New("graph")

	// ErrUnknownPath reports a path whose abstract form has no
	// declaration in the dictionary.
	ErrUnknownPath = errors.New("graph: unknown path")

	// ErrTypeMismatch reports a set whose value kind differs from the
	// dictionary's declared writable type at that path.
	ErrTypeMismatch = errors.New("graph: type mismatch")

	// ErrEvaluationCycle reports that forcing a concrete path recursively
	// depends on itself within the same evaluation.
	ErrEvaluationCycle = errors.New("graph: evaluation cycle")
)
