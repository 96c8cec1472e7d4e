package expr

import (
	"fmt"
	"strings"

	"github.com/trueprep/fact-graph/result"
	"github.com/trueprep/fact-graph/value"
)

// Case is one (condition, branch) pair of a Switch.
type Case struct {
	Cond   Node
	Branch Node
}

// Switch evaluates Cases in order and returns the first branch whose
// condition is Complete(true). If an earlier condition is Incomplete,
// evaluation stops there — the whole expression is Incomplete, since an
// unresolved earlier condition could still decide the outcome. If every
// condition evaluates to Complete(false) and Default is nil, the result
// is Incomplete.
type Switch struct {
	Cases   []Case
	Default Node // optional catch-all, evaluated if every Cond is Complete(false)
}

func (s Switch) Eval(ctx EvalContext) (result.Vector, error) {
	for _, c := range s.Cases {
		v, err := c.Cond.Eval(ctx)
		if err != nil {
			return result.Vector{}, err
		}
		r := v.MustSingle()
		if !r.IsComplete() {
			return single(result.OfIncomplete())
		}
		val, ok := r.Value()
		if ok {
			b, ok := val.(value.Bool)
			if !ok {
				return result.Vector{}, fmt.Errorf("%w: Switch condition must be Bool, got %T", ErrEval, val)
			}
			if bool(b) {
				return c.Branch.Eval(ctx)
			}
		}
	}
	if s.Default != nil {
		return s.Default.Eval(ctx)
	}
	return single(result.OfIncomplete())
}

func (s Switch) String() string {
	var b strings.Builder
	b.WriteString("Switch(")
	for i, c := range s.Cases {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(c.Cond.String())
		b.WriteString(" => ")
		b.WriteString(c.Branch.String())
	}
	if s.Default != nil {
		b.WriteString(", else => ")
		b.WriteString(s.Default.String())
	}
	b.WriteString(")")
	return b.String()
}

// ConditionalList emits a value for every case whose condition holds,
// as a Multiple Vector (rather than Switch's first-match semantics).
type ConditionalList struct {
	Cases []Case
}

func (c ConditionalList) Eval(ctx EvalContext) (result.Vector, error) {
	var out []result.Result
	complete := true
	for _, item := range c.Cases {
		v, err := item.Cond.Eval(ctx)
		if err != nil {
			return result.Vector{}, err
		}
		r := v.MustSingle()
		if !r.IsComplete() {
			complete = false
			continue
		}
		val, ok := r.Value()
		if !ok {
			continue
		}
		b, ok := val.(value.Bool)
		if !ok {
			return result.Vector{}, fmt.Errorf("%w: ConditionalList condition must be Bool, got %T", ErrEval, val)
		}
		if !bool(b) {
			continue
		}
		branchVec, err := item.Branch.Eval(ctx)
		if err != nil {
			return result.Vector{}, err
		}
		out = append(out, branchVec.MustSingle())
	}
	return result.Multiple(out, complete), nil
}

func (c ConditionalList) String() string {
	var b strings.Builder
	b.WriteString("ConditionalList(")
	for i, item := range c.Cases {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(item.Cond.String())
		b.WriteString(" => ")
		b.WriteString(item.Branch.String())
	}
	b.WriteString(")")
	return b.String()
}
