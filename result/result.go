// Package result provides the three-state completeness model (C2) that
// every Fact Graph expression evaluation produces, and the MaybeVector
// packaging that lets a single expression tree transparently evaluate
// against both scalar and wildcard-expanded (collection) facts.
package result

import "github.com/trueprep/fact-graph/value"

// Status is the three-valued completeness of a Result.
type Status uint8

// The three completeness states, ordered Incomplete < Placeholder <
// Complete for the monotonicity invariant (spec §8.1).
const (
	Incomplete Status = iota
	Placeholder
	Complete
)

// String returns the Status's name.
func (s Status) String() string {
	switch s {
	case Complete:
		return "Complete"
	case Placeholder:
		return "Placeholder"
	default:
		return "Incomplete"
	}
}

// Result is a completeness-tagged value: Complete(v), Placeholder(v), or
// Incomplete.
type Result struct {
	status Status
	value  value.Value
}

// OfComplete returns a definitive Result wrapping v.
func OfComplete(v value.Value) Result { return Result{status: Complete, value: v} }

// OfPlaceholder returns a Result wrapping v that signals some input is
// still missing.
func OfPlaceholder(v value.Value) Result { return Result{status: Placeholder, value: v} }

// OfIncomplete returns a Result with no value.
func OfIncomplete() Result { return Result{status: Incomplete} }

// Status returns r's completeness state.
func (r Result) Status() Status { return r.status }

// IsComplete reports whether r is Complete.
func (r Result) IsComplete() bool { return r.status == Complete }

// HasValue reports whether r carries a value (Complete or Placeholder).
func (r Result) HasValue() bool { return r.status != Incomplete }

// Value returns r's value and whether it has one. Callers must check ok
// before using v; an Incomplete Result's v is nil.
func (r Result) Value() (v value.Value, ok bool) { return r.value, r.HasValue() }

// MustValue returns r's value, panicking if r is Incomplete. Intended for
// use after HasValue/IsComplete has already been checked.
func (r Result) MustValue() value.Value {
	if !r.HasValue() {
		panic("result: MustValue called on an Incomplete Result")
	}
	return r.value
}

// DemoteToPlaceholder converts a Complete Result to Placeholder, carrying
// the same value. Placeholder and Incomplete Results are returned
// unchanged.
func (r Result) DemoteToPlaceholder() Result {
	if r.status == Complete {
		return Result{status: Placeholder, value: r.value}
	}
	return r
}

// Map applies f to r's value if r has one, preserving r's status.
// Incomplete Results are returned unchanged without calling f.
func (r Result) Map(f func(value.Value) value.Value) Result {
	if !r.HasValue() {
		return r
	}
	return Result{status: r.status, value: f(r.value)}
}

// AndThen chains a function that itself returns a Result, combining the
// chained Result's status with r's using Combine. Incomplete Results
// short-circuit without calling f.
func (r Result) AndThen(f func(value.Value) Result) Result {
	if !r.HasValue() {
		return r
	}
	next := f(r.value)
	return Result{status: combineStatus(r.status, next.status), value: next.value}
}

// combineStatus applies the propagation rule from spec §3: Incomplete
// dominates, then Placeholder, else Complete.
func combineStatus(a, b Status) Status {
	if a == Incomplete || b == Incomplete {
		return Incomplete
	}
	if a == Placeholder || b == Placeholder {
		return Placeholder
	}
	return Complete
}

// Combine folds the propagation rule over a set of input statuses: any
// Incomplete input yields Incomplete; otherwise any Placeholder input
// yields Placeholder; else Complete.
func Combine(statuses ...Status) Status {
	out := Complete
	for _, s := range statuses {
		out = combineStatus(out, s)
	}
	return out
}
