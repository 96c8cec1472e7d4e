package graph

import (
	"github.com/trueprep/fact-graph/dictionary"
	"github.com/trueprep/fact-graph/expr"
	"github.com/trueprep/fact-graph/fgpath"
	"github.com/trueprep/fact-graph/result"
	"github.com/trueprep/fact-graph/value"
)

// FactInstance is the runtime binding of a dictionary definition to one
// concrete path (spec §3: {concrete_path, expression, limits, parent?,
// graph}). It implements expr.EvalContext, so an expression tree
// evaluates against the instance it belongs to without any implicit
// global state. "parent?" from the spec isn't a separate field here:
// fgpath's ".." segments already resolve structurally through
// Path.Resolve, so a parent lookup never needs a dedicated pointer.
//
// Fact instances are created on demand by Graph.factInstance and cached
// there for the life of the graph; once created, an instance is never
// mutated.
type FactInstance struct {
	path  fgpath.Path
	def   dictionary.FactDefinition
	graph *Graph
}

// Path returns the concrete path this instance was created for.
func (fi *FactInstance) Path() fgpath.Path { return fi.path }

// Definition returns the dictionary definition this instance instantiates.
func (fi *FactInstance) Definition() dictionary.FactDefinition { return fi.def }

// CurrentPath implements expr.EvalContext.
func (fi *FactInstance) CurrentPath() fgpath.Path { return fi.path }

// Resolve implements expr.EvalContext: path is interpreted relative to
// fi's own concrete path (unless already absolute), then forced through
// the owning graph.
func (fi *FactInstance) Resolve(path fgpath.Path) (result.Vector, error) {
	resolved, err := fi.path.Resolve(path)
	if err != nil {
		return result.Vector{}, err
	}
	return fi.graph.resolveAbsolute(resolved)
}

// ReadWritable implements expr.EvalContext: the fact's own raw stored
// value, ignoring placeholder and overrides. Meaningful only within a
// writable fact's own override/placeholder expression tree (WritableRef
// is how such an expression refers to "whatever is actually stored, if
// anything").
func (fi *FactInstance) ReadWritable() (result.Result, error) {
	if v, ok := fi.graph.store.Get(fi.path.String()); ok {
		return result.OfComplete(v), nil
	}
	return result.OfIncomplete(), nil
}

// ResolveModule implements expr.EvalContext by delegating to the
// dictionary's named module roots.
func (fi *FactInstance) ResolveModule(name string) (fgpath.Path, bool) {
	return fi.graph.dict.ResolveModule(name)
}

// Today implements expr.EvalContext.
func (fi *FactInstance) Today() value.Day { return fi.graph.today }

// WithCurrentPath implements expr.EvalContext: returns the (possibly
// newly created) fact instance at path, scoped to the same graph.
func (fi *FactInstance) WithCurrentPath(path fgpath.Path) (expr.EvalContext, error) {
	return fi.graph.factInstance(path)
}

// force evaluates this instance's defining expression (derived facts) or
// its writable read rules (overrides, then stored value, then
// placeholder, then Incomplete).
func (fi *FactInstance) force() (result.Result, error) {
	if fi.def.IsWritable {
		return fi.forceWritable()
	}
	v, err := fi.def.Expression.Eval(fi)
	if err != nil {
		return result.Result{}, err
	}
	return v.MustSingle(), nil
}

func (fi *FactInstance) forceWritable() (result.Result, error) {
	for _, ov := range fi.def.Overrides {
		v, err := ov.Condition.Eval(fi)
		if err != nil {
			return result.Result{}, err
		}
		r := v.MustSingle()
		val, ok := r.Value()
		if !ok {
			continue
		}
		b, ok := val.(value.Bool)
		if ok && r.IsComplete() && bool(b) {
			rv, err := ov.Replacement.Eval(fi)
			if err != nil {
				return result.Result{}, err
			}
			return rv.MustSingle(), nil
		}
	}

	if v, ok := fi.graph.store.Get(fi.path.String()); ok {
		return result.OfComplete(v), nil
	}

	if fi.def.Placeholder != nil {
		v, err := fi.def.Placeholder.Eval(fi)
		if err != nil {
			return result.Result{}, err
		}
		return v.MustSingle().DemoteToPlaceholder(), nil
	}

	return result.OfIncomplete(), nil
}
