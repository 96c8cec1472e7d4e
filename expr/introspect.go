package expr

import (
	"github.com/trueprep/fact-graph/result"
	"github.com/trueprep/fact-graph/value"
)

// IsComplete reports, as an always-Complete Bool, whether Operand
// evaluated to Complete.
type IsComplete struct{ Operand Node }

func (i IsComplete) Eval(ctx EvalContext) (result.Vector, error) {
	v, err := i.Operand.Eval(ctx)
	if err != nil {
		return result.Vector{}, err
	}
	return result.VectorizeN(func(args ...result.Result) result.Result {
		return result.OfComplete(value.Bool(args[0].IsComplete()))
	}, v)
}
func (i IsComplete) String() string { return "IsComplete(" + i.Operand.String() + ")" }
