package result

import (
	"errors"
	"fmt"
)

// ErrShapeMismatch is a programmer/dictionary error (spec §7): vectorized
// inputs had incompatible multiplicities. It is never produced by data, so
// it's reported fatally rather than folded into Incomplete.
var ErrShapeMismatch = errors.New("shape mismatch")

// Vector packages a Result as either a single value or a same-shaped list
// of values produced by resolving a wildcard path against a collection.
type Vector struct {
	single   *Result
	multiple []Result
	complete bool // meaningful only when multiple != nil
}

// Single wraps a single Result.
func Single(r Result) Vector { return Vector{single: &r} }

// Multiple wraps a list of Results produced by enumerating a collection.
// complete reports whether the backing collection's membership is itself
// fully known (independent of whether each element Result is Complete).
func Multiple(rs []Result, complete bool) Vector {
	return Vector{multiple: rs, complete: complete}
}

// IsSingle reports whether v wraps exactly one Result (not from a
// wildcard expansion).
func (v Vector) IsSingle() bool { return v.single != nil }

// IsMultiple reports whether v wraps a (possibly empty) list of Results
// from a wildcard expansion.
func (v Vector) IsMultiple() bool { return v.multiple != nil }

// MustSingle returns v's single Result, panicking if v is Multiple.
// Intended for callers (such as Graph.Get) that have already asserted the
// resolved path was concrete.
func (v Vector) MustSingle() Result {
	if v.single == nil {
		panic("result: MustSingle called on a Multiple Vector")
	}
	return *v.single
}

// Flatten returns every Result in v, in order: a one-element slice for
// Single, or the full list for Multiple.
func (v Vector) Flatten() []Result {
	if v.single != nil {
		return []Result{*v.single}
	}
	out := make([]Result, len(v.multiple))
	copy(out, v.multiple)
	return out
}

// Len returns 1 for a Single Vector or the element count for a Multiple
// one.
func (v Vector) Len() int {
	if v.single != nil {
		return 1
	}
	return len(v.multiple)
}

// CollectionComplete reports whether the backing collection's membership
// is fully known. Always true for a Single Vector.
func (v Vector) CollectionComplete() bool {
	if v.single != nil {
		return true
	}
	return v.complete
}

// shape describes a Vector's broadcasting behavior for vectorize.
type shape struct {
	isMultiple bool
	length     int
	complete   bool
}

func shapeOf(v Vector) shape {
	if v.IsMultiple() {
		return shape{isMultiple: true, length: len(v.multiple), complete: v.complete}
	}
	return shape{isMultiple: false, length: 1, complete: true}
}

// VectorizeN lifts the pure n-ary function f, applied elementwise to
// Results, into the Vector functor, per the four rules in spec §4.2:
//
//  1. If every input is Single, apply f once and return Single.
//  2. If any input is Multiple, every Multiple input must share the same
//     length; Single inputs broadcast across it; the output is Multiple
//     of that length, with complete the AND of every Multiple input's
//     complete flag.
//  3. Each elementwise application combines inputs via the Result
//     propagation rule inside f (f is responsible for that; VectorizeN
//     only handles packaging).
//  4. A length mismatch returns ErrShapeMismatch, a fatal programmer
//     error, not a data error.
func VectorizeN(f func(...Result) Result, inputs ...Vector) (Vector, error) {
	n := -1
	complete := true
	anyMultiple := false
	for _, in := range inputs {
		s := shapeOf(in)
		if s.isMultiple {
			anyMultiple = true
			complete = complete && s.complete
			if n == -1 {
				n = s.length
			} else if n != s.length {
				return Vector{}, fmt.Errorf("%w: vectorize: lengths %d and %d", ErrShapeMismatch, n, s.length)
			}
		}
	}

	if !anyMultiple {
		args := make([]Result, len(inputs))
		for i, in := range inputs {
			args[i] = in.MustSingle()
		}
		return Single(f(args...)), nil
	}

	out := make([]Result, n)
	args := make([]Result, len(inputs))
	for i := 0; i < n; i++ {
		for j, in := range inputs {
			if in.IsMultiple() {
				args[j] = in.multiple[i]
			} else {
				args[j] = in.MustSingle()
			}
		}
		out[i] = f(args...)
	}
	return Multiple(out, complete), nil
}

// VectorizeList is like VectorizeN but for a variadic operator (e.g.
// Paste's operand list) whose input is a single slice of
// Vectors rather than a fixed arity. It's implemented in terms of
// VectorizeN by treating the slice itself as the input list.
func VectorizeList(f func([]Result) Result, inputs []Vector) (Vector, error) {
	return VectorizeN(func(args ...Result) Result { return f(args) }, inputs...)
}
