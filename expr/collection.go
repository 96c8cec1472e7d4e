package expr

import (
	"fmt"

	"github.com/trueprep/fact-graph/fgpath"
	"github.com/trueprep/fact-graph/result"
	"github.com/trueprep/fact-graph/value"
)

// Count returns the number of Complete elements resolved from Path (an
// abstract path ending in a wildcard over a collection's elements).
type Count struct{ Path fgpath.Path }

func (c Count) Eval(ctx EvalContext) (result.Vector, error) {
	v, err := ctx.Resolve(c.Path)
	if err != nil {
		return result.Vector{}, err
	}
	n := 0
	for _, r := range v.Flatten() {
		if r.IsComplete() {
			n++
		}
	}
	return single(result.OfComplete(value.Int(n)))
}
func (c Count) String() string { return "Count(" + c.Path.String() + ")" }

// CollectionSum sums the element-type values resolved from Path.
// Incomplete elements are skipped; a Placeholder element demotes the
// overall sum to Placeholder.
type CollectionSum struct{ Path fgpath.Path }

func (c CollectionSum) Eval(ctx EvalContext) (result.Vector, error) {
	v, err := ctx.Resolve(c.Path)
	if err != nil {
		return result.Vector{}, err
	}
	elems := v.Flatten()
	placeholder := false
	var sum value.Value
	for _, r := range elems {
		// Incomplete elements are skipped entirely: they neither
		// contribute to the sum nor demote its status.
		if !r.HasValue() {
			continue
		}
		val := r.MustValue()
		if sum == nil {
			sum = zeroLike(val)
		}
		combined, err := addValues(sum, val)
		if err != nil {
			return result.Vector{}, err
		}
		sum = combined
		if !r.IsComplete() {
			placeholder = true
		}
	}
	if sum == nil {
		sum = value.NewDollarCents(0)
	}
	if placeholder {
		return single(result.OfPlaceholder(sum))
	}
	return single(result.OfComplete(sum))
}
func (c CollectionSum) String() string { return "CollectionSum(" + c.Path.String() + ")" }

func zeroLike(v value.Value) value.Value {
	switch v.(type) {
	case value.Dollar:
		return value.NewDollarCents(0)
	case value.Int:
		return value.Int(0)
	default:
		r, _ := value.NewRational(0, 1)
		return r
	}
}

// Filter resolves CollectionPath's member ids and returns a Collection of
// those for which Predicate (evaluated with the member as current)
// returns Complete(true).
type Filter struct {
	CollectionPath fgpath.Path
	Predicate      Node
}

func (f Filter) Eval(ctx EvalContext) (result.Vector, error) {
	members, err := collectionMembers(ctx, f.CollectionPath)
	if err != nil {
		return result.Vector{}, err
	}
	var matched []string
	for _, id := range members {
		memberCtx, err := memberContext(ctx, f.CollectionPath, id)
		if err != nil {
			return result.Vector{}, err
		}
		v, err := f.Predicate.Eval(memberCtx)
		if err != nil {
			return result.Vector{}, err
		}
		r := v.MustSingle()
		if val, ok := r.Value(); ok && r.IsComplete() {
			b, ok := val.(value.Bool)
			if !ok {
				return result.Vector{}, fmt.Errorf("%w: Filter predicate must be Bool, got %T", ErrEval, val)
			}
			if bool(b) {
				matched = append(matched, id)
			}
		}
	}
	c, err := value.NewCollection(matched)
	if err != nil {
		return result.Vector{}, err
	}
	return single(result.OfComplete(c))
}
func (f Filter) String() string {
	return "Filter(" + f.CollectionPath.String() + ", " + f.Predicate.String() + ")"
}

// Find returns the first member id (as a Str) for which Predicate returns
// Complete(true); Incomplete if none matches.
type Find struct {
	CollectionPath fgpath.Path
	Predicate      Node
}

func (f Find) Eval(ctx EvalContext) (result.Vector, error) {
	members, err := collectionMembers(ctx, f.CollectionPath)
	if err != nil {
		return result.Vector{}, err
	}
	for _, id := range members {
		memberCtx, err := memberContext(ctx, f.CollectionPath, id)
		if err != nil {
			return result.Vector{}, err
		}
		v, err := f.Predicate.Eval(memberCtx)
		if err != nil {
			return result.Vector{}, err
		}
		r := v.MustSingle()
		if val, ok := r.Value(); ok && r.IsComplete() {
			b, ok := val.(value.Bool)
			if !ok {
				return result.Vector{}, fmt.Errorf("%w: Find predicate must be Bool, got %T", ErrEval, val)
			}
			if bool(b) {
				return single(result.OfComplete(value.Str(id)))
			}
		}
	}
	return single(result.OfIncomplete())
}
func (f Find) String() string {
	return "Find(" + f.CollectionPath.String() + ", " + f.Predicate.String() + ")"
}

// IndexOf returns the member at position Index within the collection at
// CollectionPath; out-of-bounds is Incomplete.
type IndexOf struct {
	CollectionPath fgpath.Path
	Index          Node
}

func (i IndexOf) Eval(ctx EvalContext) (result.Vector, error) {
	members, err := collectionMembers(ctx, i.CollectionPath)
	if err != nil {
		return result.Vector{}, err
	}
	v, err := i.Index.Eval(ctx)
	if err != nil {
		return result.Vector{}, err
	}
	r := v.MustSingle()
	idxVal, ok := r.Value()
	if !ok {
		return single(result.OfIncomplete())
	}
	idx := int(idxVal.(value.Int))
	if idx < 0 || idx >= len(members) {
		return single(result.OfIncomplete())
	}
	status := result.Complete
	if !r.IsComplete() {
		status = result.Placeholder
	}
	if status == result.Placeholder {
		return single(result.OfPlaceholder(value.Str(members[idx])))
	}
	return single(result.OfComplete(value.Str(members[idx])))
}
func (i IndexOf) String() string {
	return "IndexOf(" + i.CollectionPath.String() + ", " + i.Index.String() + ")"
}

// collectionMembers resolves collectionPath's Collection value from the
// fact graph and returns its member ids in order.
func collectionMembers(ctx EvalContext, collectionPath fgpath.Path) ([]string, error) {
	v, err := ctx.Resolve(collectionPath)
	if err != nil {
		return nil, err
	}
	r := v.MustSingle()
	val, ok := r.Value()
	if !ok {
		return nil, nil
	}
	c, ok := val.(value.Collection)
	if !ok {
		return nil, fmt.Errorf("%w: %s does not resolve to a Collection", ErrEval, collectionPath)
	}
	return c.Members(), nil
}

// memberContext builds the EvalContext a Filter/Find predicate runs
// under: the concrete member path, resolved by appending #id to
// collectionPath.
func memberContext(ctx EvalContext, collectionPath fgpath.Path, id string) (EvalContext, error) {
	memberPath := collectionPath.WithMember(id)
	return ctx.WithCurrentPath(memberPath)
}
