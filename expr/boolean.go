package expr

import (
	"fmt"
	"strings"

	"github.com/trueprep/fact-graph/result"
	"github.com/trueprep/fact-graph/value"
)

// Not negates a Bool operand.
type Not struct{ Operand Node }

func (n Not) Eval(ctx EvalContext) (result.Vector, error) {
	return unaryOp(ctx, n.Operand, func(v value.Value) (value.Value, error) {
		b, ok := v.(value.Bool)
		if !ok {
			return nil, fmt.Errorf("%w: Not requires a Bool operand, got %T", ErrEval, v)
		}
		return value.Bool(!bool(b)), nil
	})
}

func (n Not) String() string { return "Not(" + n.Operand.String() + ")" }

// All is short-circuit AND over Operands, in order. As soon as a
// Complete(false) operand is seen, the result is Complete(false) even if
// later operands are Incomplete — an unresolved later operand can't
// change an already-false conjunction. Otherwise, any Incomplete operand
// makes the whole result Incomplete; any Placeholder operand demotes an
// otherwise-Complete(true) result to Placeholder.
type All struct{ Operands []Node }

func (a All) Eval(ctx EvalContext) (result.Vector, error) {
	return evalShortCircuit(ctx, a.Operands, false)
}

func (a All) String() string { return "All(" + joinNodes(a.Operands) + ")" }

// Any is short-circuit OR over Operands: symmetric to All, short-circuits
// on a Complete(true) operand.
type Any struct{ Operands []Node }

func (a Any) Eval(ctx EvalContext) (result.Vector, error) {
	return evalShortCircuit(ctx, a.Operands, true)
}

func (a Any) String() string { return "Any(" + joinNodes(a.Operands) + ")" }

// evalShortCircuit implements both All (decisive=false) and Any
// (decisive=true) over scalar (Single) operands. Wildcard-expanded
// boolean operands aren't meaningful for All/Any, so operands are
// required to be Single.
func evalShortCircuit(ctx EvalContext, operands []Node, decisive bool) (result.Vector, error) {
	status := result.Complete
	placeholderDecisive := false
	for _, op := range operands {
		v, err := op.Eval(ctx)
		if err != nil {
			return result.Vector{}, err
		}
		r := v.MustSingle()
		if r.IsComplete() {
			val, _ := r.Value()
			b, ok := val.(value.Bool)
			if !ok {
				return result.Vector{}, fmt.Errorf("%w: All/Any operand must be Bool, got %T", ErrEval, val)
			}
			if bool(b) == decisive {
				return single(result.OfComplete(value.Bool(decisive)))
			}
			continue
		}
		if !r.HasValue() {
			status = result.Incomplete
			continue
		}
		if status != result.Incomplete {
			status = result.Placeholder
		}
		if b, ok := r.MustValue().(value.Bool); ok && bool(b) == decisive {
			placeholderDecisive = true
		}
	}
	final := !decisive
	if placeholderDecisive {
		final = decisive
	}
	switch status {
	case result.Incomplete:
		return single(result.OfIncomplete())
	case result.Placeholder:
		return single(result.OfPlaceholder(value.Bool(final)))
	default:
		return single(result.OfComplete(value.Bool(final)))
	}
}

func joinNodes(nodes []Node) string {
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		parts[i] = n.String()
	}
	return strings.Join(parts, ", ")
}
