package expr

import (
	"fmt"
	"time"

	"github.com/trueprep/fact-graph/result"
	"github.com/trueprep/fact-graph/value"
)

// Today returns the evaluation-time current date, always Complete.
type Today struct{}

func (Today) Eval(ctx EvalContext) (result.Vector, error) {
	return single(result.OfComplete(ctx.Today()))
}
func (Today) String() string { return "Today()" }

// LastDayOfMonthExpr returns the last day of Operand's month.
type LastDayOfMonthExpr struct{ Operand Node }

func (l LastDayOfMonthExpr) Eval(ctx EvalContext) (result.Vector, error) {
	return unaryOp(ctx, l.Operand, func(v value.Value) (value.Value, error) {
		d, ok := v.(value.Day)
		if !ok {
			return nil, fmt.Errorf("%w: LastDayOfMonth requires a Day operand, got %T", ErrEval, v)
		}
		return d.LastDayOfMonth(), nil
	})
}
func (l LastDayOfMonthExpr) String() string { return "LastDayOfMonth(" + l.Operand.String() + ")" }

// AddPayrollMonths adds N calendar months to Operand. A last-day-of-month
// anchor is preserved: adding months to e.g. 2024-02-29 yields the last
// day of the target month, not simply "the 29th" (which may not exist).
type AddPayrollMonths struct {
	Operand Node
	N       int
}

func (a AddPayrollMonths) Eval(ctx EvalContext) (result.Vector, error) {
	return unaryOp(ctx, a.Operand, func(v value.Value) (value.Value, error) {
		d, ok := v.(value.Day)
		if !ok {
			return nil, fmt.Errorf("%w: AddPayrollMonths requires a Day operand, got %T", ErrEval, v)
		}
		if d.IsLastDayOfMonth() {
			return value.NewDay(d.Year, d.Month+time.Month(a.N), 1).LastDayOfMonth(), nil
		}
		return value.NewDay(d.Year, d.Month+time.Month(a.N), d.Day), nil
	})
}
func (a AddPayrollMonths) String() string {
	return fmt.Sprintf("AddPayrollMonths(%s, %d)", a.Operand.String(), a.N)
}
