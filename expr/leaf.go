package expr

import (
	"fmt"

	"github.com/trueprep/fact-graph/fgpath"
	"github.com/trueprep/fact-graph/result"
	"github.com/trueprep/fact-graph/value"
)

// Const is a literal value, always Complete.
type Const struct {
	Value value.Value
}

func (c Const) Eval(EvalContext) (result.Vector, error) {
	return single(result.OfComplete(c.Value))
}

func (c Const) String() string { return c.Value.String() }

// WritableRef reads the current fact's own stored value (Incomplete when
// nothing is stored; the placeholder is not consulted).
// It never resolves a path of its own; it defers to the owning fact
// instance via EvalContext.ReadWritable, so it's only meaningful on a
// writable fact's own expression tree (e.g. inside an override).
type WritableRef struct{}

func (WritableRef) Eval(ctx EvalContext) (result.Vector, error) {
	r, err := ctx.ReadWritable()
	if err != nil {
		return result.Vector{}, err
	}
	return single(r)
}

func (WritableRef) String() string { return "$this" }

// Dep resolves Path — relative to the owning fact unless Path is
// absolute — and reads its value(s). If Module is non-empty, Path is
// resolved relative to that module's root instead of the current fact.
type Dep struct {
	Path   fgpath.Path
	Module string
}

func (d Dep) Eval(ctx EvalContext) (result.Vector, error) {
	if d.Module == "" {
		return ctx.Resolve(d.Path)
	}
	root, ok := ctx.ResolveModule(d.Module)
	if !ok {
		return result.Vector{}, fmt.Errorf("%w: unknown module %q", ErrEval, d.Module)
	}
	resolved, err := root.Resolve(d.Path)
	if err != nil {
		return result.Vector{}, fmt.Errorf("%w: %w", ErrEval, err)
	}
	return ctx.Resolve(resolved)
}

func (d Dep) String() string {
	if d.Module == "" {
		return d.Path.String()
	}
	return d.Module + "!" + d.Path.String()
}
