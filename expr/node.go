// Package expr implements the Fact Graph expression algebra (C7): a typed
// tree of Nodes that, evaluated against an EvalContext, produces a
// result.Vector. Every n-ary operator vectorizes transparently over
// wildcard-expanded (Multiple) inputs via result.VectorizeN /
// result.VectorizeList.
//
// expr depends only on fgpath, result, and value — never on graph — so
// that graph can implement EvalContext without an import cycle.
package expr

import (
	"errors"

	"github.com/trueprep/fact-graph/fgpath"
	"github.com/trueprep/fact-graph/result"
	"github.com/trueprep/fact-graph/value"
)

// ErrEval reports an expression evaluation error that cannot be modeled
// as Incomplete: a malformed tree, e.g. a type mismatch the dictionary
// should have caught at definition time.
var ErrEval = errors.New("expr")

// Node is one node of an expression tree. Every concrete type in the
// algebra implements it:
//
//   - leaves: Const, WritableRef, Dep
//   - control: Switch, ConditionalList
//   - boolean: Not, All, Any
//   - compare: Equal, NotEqual, GreaterThan, LessThan, GreaterThanOrEqual,
//     LessThanOrEqual, GreaterOf, LesserOf, Maximum, Minimum
//   - math: Add, Subtract, Multiply, Divide, Round, RoundToInt, Ceiling, Floor
//   - strings: Length, Paste, AsString, AsDecimalString, Trim, ToUpper,
//     StripChars, TruncateNameForMeF
//   - dates: Today, LastDayOfMonthExpr, AddPayrollMonths
//   - collections: Count, CollectionSum, Filter, Find, IndexOf
//   - enum options: EnumOptions, ConditionalOption, EnumOptionsContains,
//     EnumOptionsSize
//   - introspection: IsComplete
type Node interface {
	// Eval evaluates the node against ctx, producing a Vector of Results.
	Eval(ctx EvalContext) (result.Vector, error)
	// String renders the node for explain traces (C10).
	String() string
}

// EvalContext is the per-fact evaluation context a Node is evaluated
// against. graph.FactInstance implements it; expr never imports graph.
type EvalContext interface {
	// CurrentPath is the concrete path of the fact instance currently
	// being evaluated. Relative Dep paths resolve against it.
	CurrentPath() fgpath.Path

	// Resolve resolves path (relative to CurrentPath if not absolute),
	// expands any wildcards against current collection membership,
	// forces each resulting fact's memoized thunk, and returns the
	// assembled Vector.
	Resolve(path fgpath.Path) (result.Vector, error)

	// ReadWritable returns the current fact's own stored value, or
	// Incomplete when nothing is stored, without consulting the fact's
	// placeholder or overrides (used by the WritableRef leaf inside
	// override/placeholder expressions).
	ReadWritable() (result.Result, error)

	// ResolveModule maps a named module qualifier to its root path, for
	// Dep nodes that reference another module. ok is false if name is
	// unknown.
	ResolveModule(name string) (fgpath.Path, bool)

	// Today returns the evaluation-time current date.
	Today() value.Day

	// WithCurrentPath returns an EvalContext scoped to path, for
	// evaluating a predicate "with the member as current" (Filter,
	// Find). path must be concrete.
	WithCurrentPath(path fgpath.Path) (EvalContext, error)
}

// single is a convenience for leaves and operators that never vectorize
// on their own (their operands already carry any Multiple-ness).
func single(r result.Result) (result.Vector, error) { return result.Single(r), nil }
