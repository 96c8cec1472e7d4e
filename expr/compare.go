package expr

import (
	"fmt"

	"github.com/trueprep/fact-graph/result"
	"github.com/trueprep/fact-graph/value"
)

// CompareOrdered returns -1, 0, or 1 as a is less than, equal to, or
// greater than b. Only the ordered value kinds (Int, Dollar, Rational,
// Day, Days) are supported; any other pairing is a dictionary error.
func CompareOrdered(a, b value.Value) (int, error) {
	switch av := a.(type) {
	case value.Int:
		bv, ok := b.(value.Int)
		if !ok {
			return 0, fmt.Errorf("%w: cannot compare Int with %T", ErrEval, b)
		}
		return cmpInt64(int64(av), int64(bv)), nil
	case value.Dollar:
		bv, ok := b.(value.Dollar)
		if !ok {
			return 0, fmt.Errorf("%w: cannot compare Dollar with %T", ErrEval, b)
		}
		return cmpInt64(av.Cents(), bv.Cents()), nil
	case value.Rational:
		bv, ok := b.(value.Rational)
		if !ok {
			return 0, fmt.Errorf("%w: cannot compare Rational with %T", ErrEval, b)
		}
		return cmpFloat(av.Float64(), bv.Float64()), nil
	case value.Days:
		bv, ok := b.(value.Days)
		if !ok {
			return 0, fmt.Errorf("%w: cannot compare Days with %T", ErrEval, b)
		}
		return cmpInt64(int64(av), int64(bv)), nil
	case value.Day:
		bv, ok := b.(value.Day)
		if !ok {
			return 0, fmt.Errorf("%w: cannot compare Day with %T", ErrEval, b)
		}
		switch {
		case av.Before(bv):
			return -1, nil
		case av.After(bv):
			return 1, nil
		default:
			return 0, nil
		}
	default:
		return 0, fmt.Errorf("%w: %T is not an ordered value", ErrEval, a)
	}
}

func cmpInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func binaryCompare(ctx EvalContext, left, right Node, f func(int) bool) (result.Vector, error) {
	lv, err := left.Eval(ctx)
	if err != nil {
		return result.Vector{}, err
	}
	rv, err := right.Eval(ctx)
	if err != nil {
		return result.Vector{}, err
	}
	return result.VectorizeN(func(args ...result.Result) result.Result {
		return args[0].AndThen(func(lval value.Value) result.Result {
			rval, ok := args[1].Value()
			if !ok {
				return result.OfIncomplete()
			}
			c, err := CompareOrdered(lval, rval)
			if err != nil {
				return result.OfIncomplete()
			}
			out := result.OfComplete(value.Bool(f(c)))
			if !args[1].IsComplete() {
				return out.DemoteToPlaceholder()
			}
			return out
		})
	}, lv, rv)
}

// Equal reports structural equality via each value's own Equal method,
// which is defined across kinds (an Int never equals a Str).
type Equal struct{ Left, Right Node }

func (e Equal) Eval(ctx EvalContext) (result.Vector, error) {
	lv, err := e.Left.Eval(ctx)
	if err != nil {
		return result.Vector{}, err
	}
	rv, err := e.Right.Eval(ctx)
	if err != nil {
		return result.Vector{}, err
	}
	return result.VectorizeN(func(args ...result.Result) result.Result {
		return args[0].AndThen(func(lval value.Value) result.Result {
			return args[1].Map(func(rval value.Value) value.Value { return value.Bool(lval.Equal(rval)) })
		})
	}, lv, rv)
}

func (e Equal) String() string { return "Equal(" + e.Left.String() + ", " + e.Right.String() + ")" }

// NotEqual is the negation of Equal.
type NotEqual struct{ Left, Right Node }

func (n NotEqual) Eval(ctx EvalContext) (result.Vector, error) {
	return Not{Operand: Equal(n)}.Eval(ctx)
}

func (n NotEqual) String() string { return "NotEqual(" + n.Left.String() + ", " + n.Right.String() + ")" }

// GreaterThan, LessThan, GreaterThanOrEqual, LessThanOrEqual compare
// ordered values (Int, Dollar, Rational, Day, Days).
type GreaterThan struct{ Left, Right Node }

func (g GreaterThan) Eval(ctx EvalContext) (result.Vector, error) {
	return binaryCompare(ctx, g.Left, g.Right, func(c int) bool { return c > 0 })
}
func (g GreaterThan) String() string {
	return "GreaterThan(" + g.Left.String() + ", " + g.Right.String() + ")"
}

type LessThan struct{ Left, Right Node }

func (l LessThan) Eval(ctx EvalContext) (result.Vector, error) {
	return binaryCompare(ctx, l.Left, l.Right, func(c int) bool { return c < 0 })
}
func (l LessThan) String() string { return "LessThan(" + l.Left.String() + ", " + l.Right.String() + ")" }

type GreaterThanOrEqual struct{ Left, Right Node }

func (g GreaterThanOrEqual) Eval(ctx EvalContext) (result.Vector, error) {
	return binaryCompare(ctx, g.Left, g.Right, func(c int) bool { return c >= 0 })
}
func (g GreaterThanOrEqual) String() string {
	return "GreaterThanOrEqual(" + g.Left.String() + ", " + g.Right.String() + ")"
}

type LessThanOrEqual struct{ Left, Right Node }

func (l LessThanOrEqual) Eval(ctx EvalContext) (result.Vector, error) {
	return binaryCompare(ctx, l.Left, l.Right, func(c int) bool { return c <= 0 })
}
func (l LessThanOrEqual) String() string {
	return "LessThanOrEqual(" + l.Left.String() + ", " + l.Right.String() + ")"
}

// GreaterOf and LesserOf return whichever operand compares greater/lesser,
// passing the winning operand's Result through unchanged.
type GreaterOf struct{ Left, Right Node }

func (g GreaterOf) Eval(ctx EvalContext) (result.Vector, error) {
	return pickCompare(ctx, g.Left, g.Right, func(c int) bool { return c >= 0 })
}
func (g GreaterOf) String() string { return "GreaterOf(" + g.Left.String() + ", " + g.Right.String() + ")" }

type LesserOf struct{ Left, Right Node }

func (l LesserOf) Eval(ctx EvalContext) (result.Vector, error) {
	return pickCompare(ctx, l.Left, l.Right, func(c int) bool { return c <= 0 })
}
func (l LesserOf) String() string { return "LesserOf(" + l.Left.String() + ", " + l.Right.String() + ")" }

func pickCompare(ctx EvalContext, left, right Node, takeLeft func(int) bool) (result.Vector, error) {
	lv, err := left.Eval(ctx)
	if err != nil {
		return result.Vector{}, err
	}
	rv, err := right.Eval(ctx)
	if err != nil {
		return result.Vector{}, err
	}
	return result.VectorizeN(func(args ...result.Result) result.Result {
		return args[0].AndThen(func(lval value.Value) result.Result {
			rval, ok := args[1].Value()
			if !ok {
				return result.OfIncomplete()
			}
			c, err := CompareOrdered(lval, rval)
			if err != nil {
				return result.OfIncomplete()
			}
			if takeLeft(c) {
				return args[0]
			}
			return args[1]
		})
	}, lv, rv)
}

// Maximum and Minimum fold GreaterOf/LesserOf across a list of operands.
type Maximum struct{ Operands []Node }

func (m Maximum) Eval(ctx EvalContext) (result.Vector, error) {
	acc, err := foldOperands(m.Operands, true)
	if err != nil {
		return result.Vector{}, err
	}
	return acc.Eval(ctx)
}
func (m Maximum) String() string { return "Maximum(" + joinNodes(m.Operands) + ")" }

type Minimum struct{ Operands []Node }

func (m Minimum) Eval(ctx EvalContext) (result.Vector, error) {
	acc, err := foldOperands(m.Operands, false)
	if err != nil {
		return result.Vector{}, err
	}
	return acc.Eval(ctx)
}
func (m Minimum) String() string { return "Minimum(" + joinNodes(m.Operands) + ")" }

func foldOperands(operands []Node, greatest bool) (Node, error) {
	if len(operands) == 0 {
		return nil, fmt.Errorf("%w: fold over zero operands", ErrEval)
	}
	acc := operands[0]
	for _, next := range operands[1:] {
		if greatest {
			acc = GreaterOf{Left: acc, Right: next}
		} else {
			acc = LesserOf{Left: acc, Right: next}
		}
	}
	return acc, nil
}
