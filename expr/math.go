package expr

import (
	"fmt"
	"math/big"

	"github.com/trueprep/fact-graph/result"
	"github.com/trueprep/fact-graph/value"
)

// numeric abstracts over the arithmetic representations used by Add,
// Subtract, and Multiply: Dollar (exact cents) and Rational (exact
// fraction). Mixed-kind arithmetic is a dictionary error.
func addValues(a, b value.Value) (value.Value, error) {
	switch av := a.(type) {
	case value.Dollar:
		bv, ok := b.(value.Dollar)
		if !ok {
			return nil, fmt.Errorf("%w: cannot add Dollar and %T", ErrEval, b)
		}
		return value.NewDollarCents(av.Cents() + bv.Cents()), nil
	case value.Rational:
		bv, ok := b.(value.Rational)
		if !ok {
			return nil, fmt.Errorf("%w: cannot add Rational and %T", ErrEval, b)
		}
		r := new(big.Rat).Add(ratOf(av), ratOf(bv))
		return value.NewRational(r.Num().Int64(), r.Denom().Int64())
	case value.Int:
		bv, ok := b.(value.Int)
		if !ok {
			return nil, fmt.Errorf("%w: cannot add Int and %T", ErrEval, b)
		}
		return value.Int(int32(av) + int32(bv)), nil
	default:
		return nil, fmt.Errorf("%w: %T is not an arithmetic value", ErrEval, a)
	}
}

func subValues(a, b value.Value) (value.Value, error) {
	neg, err := negate(b)
	if err != nil {
		return nil, err
	}
	return addValues(a, neg)
}

func negate(v value.Value) (value.Value, error) {
	switch x := v.(type) {
	case value.Dollar:
		return value.NewDollarCents(-x.Cents()), nil
	case value.Rational:
		r := new(big.Rat).Neg(ratOf(x))
		return value.NewRational(r.Num().Int64(), r.Denom().Int64())
	case value.Int:
		return value.Int(-int32(x)), nil
	default:
		return nil, fmt.Errorf("%w: %T is not an arithmetic value", ErrEval, v)
	}
}

func ratOf(r value.Rational) *big.Rat { return big.NewRat(r.Num(), r.Den()) }

func mulValues(a, b value.Value) (value.Value, error) {
	switch av := a.(type) {
	case value.Dollar:
		bv, ok := b.(value.Rational)
		if !ok {
			return nil, fmt.Errorf("%w: Multiply(Dollar, x) requires a Rational multiplier, got %T", ErrEval, b)
		}
		return value.MultiplyDollarRational(av, bv), nil
	case value.Rational:
		bv, ok := b.(value.Rational)
		if !ok {
			return nil, fmt.Errorf("%w: cannot multiply Rational and %T", ErrEval, b)
		}
		r := new(big.Rat).Mul(ratOf(av), ratOf(bv))
		return value.NewRational(r.Num().Int64(), r.Denom().Int64())
	case value.Int:
		bv, ok := b.(value.Int)
		if !ok {
			return nil, fmt.Errorf("%w: cannot multiply Int and %T", ErrEval, b)
		}
		return value.Int(int32(av) * int32(bv)), nil
	default:
		return nil, fmt.Errorf("%w: %T is not an arithmetic value", ErrEval, a)
	}
}

func binaryArith(ctx EvalContext, left, right Node, f func(value.Value, value.Value) (value.Value, error)) (result.Vector, error) {
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
			out, err := f(lval, rval)
			if err != nil {
				return result.OfIncomplete()
			}
			if args[1].IsComplete() {
				return result.OfComplete(out)
			}
			return result.OfPlaceholder(out)
		})
	}, lv, rv)
}

// Add sums Left and Right, both Dollar, Rational, or Int (matched kinds).
type Add struct{ Left, Right Node }

func (a Add) Eval(ctx EvalContext) (result.Vector, error) { return binaryArith(ctx, a.Left, a.Right, addValues) }
func (a Add) String() string                               { return "Add(" + a.Left.String() + ", " + a.Right.String() + ")" }

// Subtract computes Minuend minus each of Subtrahends in turn.
type Subtract struct {
	Minuend     Node
	Subtrahends []Node
}

func (s Subtract) Eval(ctx EvalContext) (result.Vector, error) {
	acc := s.Minuend
	for _, sub := range s.Subtrahends {
		acc = subtractPair{Left: acc, Right: sub}
	}
	return acc.Eval(ctx)
}
func (s Subtract) String() string { return "Subtract(" + s.Minuend.String() + ", " + joinNodes(s.Subtrahends) + ")" }

type subtractPair struct{ Left, Right Node }

func (s subtractPair) Eval(ctx EvalContext) (result.Vector, error) {
	return binaryArith(ctx, s.Left, s.Right, subValues)
}
func (s subtractPair) String() string { return "Subtract(" + s.Left.String() + ", " + s.Right.String() + ")" }

// Multiply multiplies Left by Right. Multiplying a Dollar requires a
// Rational multiplier (value.MultiplyDollarRational), consistent with
// Dollar's exact-cents representation.
type Multiply struct{ Left, Right Node }

func (m Multiply) Eval(ctx EvalContext) (result.Vector, error) {
	return binaryArith(ctx, m.Left, m.Right, mulValues)
}
func (m Multiply) String() string { return "Multiply(" + m.Left.String() + ", " + m.Right.String() + ")" }

// Divide computes Dividend / Divisor as a Rational. Division by zero
// yields Incomplete rather than an error, per spec §4.6.
type Divide struct{ Dividend, Divisor Node }

func (d Divide) Eval(ctx EvalContext) (result.Vector, error) {
	lv, err := d.Dividend.Eval(ctx)
	if err != nil {
		return result.Vector{}, err
	}
	rv, err := d.Divisor.Eval(ctx)
	if err != nil {
		return result.Vector{}, err
	}
	return result.VectorizeN(func(args ...result.Result) result.Result {
		return args[0].AndThen(func(lval value.Value) result.Result {
			rval, ok := args[1].Value()
			if !ok {
				return result.OfIncomplete()
			}
			out, ok := divideAsRational(lval, rval)
			if !ok {
				return result.OfIncomplete()
			}
			if args[1].IsComplete() {
				return result.OfComplete(out)
			}
			return result.OfPlaceholder(out)
		})
	}, lv, rv)
}
func (d Divide) String() string { return "Divide(" + d.Dividend.String() + ", " + d.Divisor.String() + ")" }

func divideAsRational(a, b value.Value) (value.Value, bool) {
	var ra, rb *big.Rat
	switch av := a.(type) {
	case value.Rational:
		ra = ratOf(av)
	case value.Dollar:
		ra = big.NewRat(av.Cents(), 100)
	case value.Int:
		ra = big.NewRat(int64(av), 1)
	default:
		return nil, false
	}
	switch bv := b.(type) {
	case value.Rational:
		rb = ratOf(bv)
	case value.Dollar:
		rb = big.NewRat(bv.Cents(), 100)
	case value.Int:
		rb = big.NewRat(int64(bv), 1)
	default:
		return nil, false
	}
	if rb.Sign() == 0 {
		return nil, false
	}
	out := new(big.Rat).Quo(ra, rb)
	v, err := value.NewRational(out.Num().Int64(), out.Denom().Int64())
	if err != nil {
		return nil, false
	}
	return v, true
}

func unaryOp(ctx EvalContext, operand Node, f func(value.Value) (value.Value, error)) (result.Vector, error) {
	v, err := operand.Eval(ctx)
	if err != nil {
		return result.Vector{}, err
	}
	return result.VectorizeN(func(args ...result.Result) result.Result {
		return args[0].AndThen(func(val value.Value) result.Result {
			out, err := f(val)
			if err != nil {
				return result.OfIncomplete()
			}
			return result.OfComplete(out)
		})
	}, v)
}

// Round rounds a Rational to the nearest Dollar via banker's rounding.
type Round struct{ Operand Node }

func (r Round) Eval(ctx EvalContext) (result.Vector, error) {
	return unaryOp(ctx, r.Operand, func(v value.Value) (value.Value, error) {
		rat, ok := v.(value.Rational)
		if !ok {
			return nil, fmt.Errorf("%w: Round requires a Rational operand, got %T", ErrEval, v)
		}
		return value.RationalToDollar(rat), nil
	})
}
func (r Round) String() string { return "Round(" + r.Operand.String() + ")" }

// RoundToInt rounds a Rational to the nearest Int via banker's rounding.
type RoundToInt struct{ Operand Node }

func (r RoundToInt) Eval(ctx EvalContext) (result.Vector, error) {
	return unaryOp(ctx, r.Operand, func(v value.Value) (value.Value, error) {
		rat, ok := v.(value.Rational)
		if !ok {
			return nil, fmt.Errorf("%w: RoundToInt requires a Rational operand, got %T", ErrEval, v)
		}
		return value.RationalToInt(rat), nil
	})
}
func (r RoundToInt) String() string { return "RoundToInt(" + r.Operand.String() + ")" }

// Ceiling and Floor round a Rational toward positive / negative infinity
// to a whole number of cents, yielding a Dollar.
type Ceiling struct{ Operand Node }

func (c Ceiling) Eval(ctx EvalContext) (result.Vector, error) {
	return unaryOp(ctx, c.Operand, func(v value.Value) (value.Value, error) {
		rat, ok := v.(value.Rational)
		if !ok {
			return nil, fmt.Errorf("%w: Ceiling requires a Rational operand, got %T", ErrEval, v)
		}
		return roundDollarDirectional(rat, true), nil
	})
}
func (c Ceiling) String() string { return "Ceiling(" + c.Operand.String() + ")" }

type Floor struct{ Operand Node }

func (f Floor) Eval(ctx EvalContext) (result.Vector, error) {
	return unaryOp(ctx, f.Operand, func(v value.Value) (value.Value, error) {
		rat, ok := v.(value.Rational)
		if !ok {
			return nil, fmt.Errorf("%w: Floor requires a Rational operand, got %T", ErrEval, v)
		}
		return roundDollarDirectional(rat, false), nil
	})
}
func (f Floor) String() string { return "Floor(" + f.Operand.String() + ")" }

func roundDollarDirectional(r value.Rational, up bool) value.Value {
	cents := new(big.Rat).Mul(ratOf(r), big.NewRat(100, 1))
	q := new(big.Int).Quo(cents.Num(), cents.Denom())
	rem := new(big.Int).Rem(cents.Num(), cents.Denom())
	if rem.Sign() != 0 {
		if up && cents.Sign() > 0 {
			q.Add(q, big.NewInt(1))
		} else if !up && cents.Sign() < 0 {
			q.Sub(q, big.NewInt(1))
		}
	}
	return value.NewDollarCents(q.Int64())
}
