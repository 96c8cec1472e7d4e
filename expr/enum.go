package expr

import (
	"fmt"

	"github.com/trueprep/fact-graph/result"
	"github.com/trueprep/fact-graph/value"
)

// ConditionalOption contributes Value to an EnumOptions list only when
// Cond evaluates to Complete(true).
type ConditionalOption struct {
	Cond  Node
	Value string
}

// EnumOptions evaluates to the option set available for an Enum/MultiEnum
// fact: the union of Static values and every ConditionalOption whose
// condition holds. The option set is only Complete if every condition
// resolved (no Incomplete conditions).
type EnumOptions struct {
	Static       []string
	Conditionals []ConditionalOption
}

func (e EnumOptions) options(ctx EvalContext) ([]string, bool, error) {
	opts := append([]string{}, e.Static...)
	complete := true
	for _, c := range e.Conditionals {
		v, err := c.Cond.Eval(ctx)
		if err != nil {
			return nil, false, err
		}
		r := v.MustSingle()
		if !r.HasValue() {
			complete = false
			continue
		}
		if !r.IsComplete() {
			complete = false
		}
		val, _ := r.Value()
		b, ok := val.(value.Bool)
		if !ok {
			return nil, false, fmt.Errorf("%w: EnumOptions condition must be Bool, got %T", ErrEval, val)
		}
		if bool(b) {
			opts = append(opts, c.Value)
		}
	}
	return opts, complete, nil
}

func (e EnumOptions) Eval(ctx EvalContext) (result.Vector, error) {
	opts, complete, err := e.options(ctx)
	if err != nil {
		return result.Vector{}, err
	}
	c, err := value.NewCollection(opts)
	if err != nil {
		return result.Vector{}, fmt.Errorf("%w: EnumOptions produced duplicate values: %w", ErrEval, err)
	}
	if !complete {
		return single(result.OfPlaceholder(c))
	}
	return single(result.OfComplete(c))
}
func (e EnumOptions) String() string { return "EnumOptions(...)" }

// EnumOptionsContains reports whether Value is among Options' resolved
// option set.
type EnumOptionsContains struct {
	Options EnumOptions
	Value   Node
}

func (e EnumOptionsContains) Eval(ctx EvalContext) (result.Vector, error) {
	opts, complete, err := e.Options.options(ctx)
	if err != nil {
		return result.Vector{}, err
	}
	v, err := e.Value.Eval(ctx)
	if err != nil {
		return result.Vector{}, err
	}
	return result.VectorizeN(func(args ...result.Result) result.Result {
		return args[0].AndThen(func(val value.Value) result.Result {
			s, ok := val.(value.Str)
			found := ok && contains(opts, string(s))
			if !complete && !found {
				return result.OfIncomplete()
			}
			return result.OfComplete(value.Bool(found))
		})
	}, v)
}
func (e EnumOptionsContains) String() string {
	return "EnumOptionsContains(" + e.Options.String() + ", " + e.Value.String() + ")"
}

func contains(opts []string, s string) bool {
	for _, o := range opts {
		if o == s {
			return true
		}
	}
	return false
}

// EnumOptionsSize returns the number of options in Options' resolved set.
type EnumOptionsSize struct{ Options EnumOptions }

func (e EnumOptionsSize) Eval(ctx EvalContext) (result.Vector, error) {
	opts, complete, err := e.Options.options(ctx)
	if err != nil {
		return result.Vector{}, err
	}
	if !complete {
		return single(result.OfPlaceholder(value.Int(len(opts))))
	}
	return single(result.OfComplete(value.Int(len(opts))))
}
func (e EnumOptionsSize) String() string { return "EnumOptionsSize(" + e.Options.String() + ")" }
