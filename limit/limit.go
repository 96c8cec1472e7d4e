// Package limit implements Fact Graph's declarative validators (C4):
// Min/Max/MinLength/MaxLength/MaxCollectionSize/Match limits attached to
// writable facts, plus the intrinsic limits certain value kinds always
// carry (Enum/MultiEnum option membership).
package limit

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/trueprep/fact-graph/expr"
	"github.com/trueprep/fact-graph/value"
)

// ErrLimit reports a malformed limit definition (wrong operand kind for
// its Kind) or a MinLength/MaxLength/MaxCollectionSize bound that has not
// resolved, as distinct from a Violation, which reports a value that
// failed a well-formed limit.
var ErrLimit = errors.New("limit")

// Severity distinguishes a hard failure from an advisory one.
type Severity uint8

const (
	Error Severity = iota
	Warning
)

func (s Severity) String() string {
	if s == Warning {
		return "Warning"
	}
	return "Error"
}

// Kind enumerates the supported limit shapes (spec §4.4).
type Kind uint8

const (
	Min Kind = iota
	Max
	MinLength
	MaxLength
	MaxCollectionSize
	Match
)

// Limit is an evaluable predicate with a severity and a naming context,
// attached to a writable fact's declaration. Bound is an expression
// evaluated against the same graph as the fact itself, so limits may
// reference other facts (spec §4.4).
type Limit struct {
	Kind     Kind
	Severity Severity
	Name     string
	Bound    expr.Node      // Min, Max, MinLength, MaxLength, MaxCollectionSize
	Pattern  *regexp.Regexp // Match
}

// Violation reports one limit (declared or intrinsic) failing against a
// writable fact's current value.
type Violation struct {
	Path     string
	Name     string
	Severity Severity
	Message  string
}

func (v Violation) Error() string { return fmt.Sprintf("%s: %s: %s", v.Path, v.Name, v.Message) }

// Evaluate checks l against actual, the writable fact's current value,
// using ctx to evaluate l.Bound (if any). A nil return means l is
// satisfied, or l is a Min/Max limit whose bound has no value yet (it
// vacuously passes). For MinLength, MaxLength and MaxCollectionSize an
// unresolved bound is an ErrLimit error.
func Evaluate(ctx expr.EvalContext, path string, l Limit, actual value.Value) (*Violation, error) {
	switch l.Kind {
	case Min, Max:
		return evaluateBound(ctx, path, l, actual)
	case MinLength:
		n, err := lengthOf(actual)
		if err != nil {
			return nil, err
		}
		bound, err := boundInt(ctx, l.Bound)
		if err != nil {
			return nil, err
		}
		if n < bound {
			return &Violation{Path: path, Name: l.Name, Severity: l.Severity,
				Message: fmt.Sprintf("length %d is below minimum %d", n, bound)}, nil
		}
	case MaxLength:
		n, err := lengthOf(actual)
		if err != nil {
			return nil, err
		}
		bound, err := boundInt(ctx, l.Bound)
		if err != nil {
			return nil, err
		}
		if n > bound {
			return &Violation{Path: path, Name: l.Name, Severity: l.Severity,
				Message: fmt.Sprintf("length %d exceeds maximum %d", n, bound)}, nil
		}
	case MaxCollectionSize:
		c, ok := actual.(value.Collection)
		if !ok {
			return nil, fmt.Errorf("%w: MaxCollectionSize requires a Collection, got %T", ErrLimit, actual)
		}
		bound, err := boundInt(ctx, l.Bound)
		if err != nil {
			return nil, err
		}
		if c.Len() > bound {
			return &Violation{Path: path, Name: l.Name, Severity: l.Severity,
				Message: fmt.Sprintf("%d members exceeds maximum %d", c.Len(), bound)}, nil
		}
	case Match:
		s, ok := actual.(value.Str)
		if !ok {
			return nil, fmt.Errorf("%w: Match requires a Str, got %T", ErrLimit, actual)
		}
		if l.Pattern == nil {
			return nil, fmt.Errorf("%w: Match limit has no pattern", ErrLimit)
		}
		if !l.Pattern.MatchString(string(s)) {
			return &Violation{Path: path, Name: l.Name, Severity: l.Severity,
				Message: fmt.Sprintf("%q does not match %s", s, l.Pattern.String())}, nil
		}
	default:
		return nil, fmt.Errorf("%w: unknown limit kind %d", ErrLimit, l.Kind)
	}
	return nil, nil
}

func evaluateBound(ctx expr.EvalContext, path string, l Limit, actual value.Value) (*Violation, error) {
	v, err := l.Bound.Eval(ctx)
	if err != nil {
		return nil, err
	}
	r := v.MustSingle()
	bound, ok := r.Value()
	if !ok {
		// The bound itself hasn't resolved yet; nothing to check against.
		return nil, nil
	}
	c, err := expr.CompareOrdered(actual, bound)
	if err != nil {
		return nil, err
	}
	if l.Kind == Min && c < 0 {
		return &Violation{Path: path, Name: l.Name, Severity: l.Severity,
			Message: fmt.Sprintf("%s is below minimum %s", actual.String(), bound.String())}, nil
	}
	if l.Kind == Max && c > 0 {
		return &Violation{Path: path, Name: l.Name, Severity: l.Severity,
			Message: fmt.Sprintf("%s exceeds maximum %s", actual.String(), bound.String())}, nil
	}
	return nil, nil
}

func boundInt(ctx expr.EvalContext, bound expr.Node) (int, error) {
	v, err := bound.Eval(ctx)
	if err != nil {
		return 0, err
	}
	r := v.MustSingle()
	val, ok := r.Value()
	if !ok {
		return 0, fmt.Errorf("%w: limit bound is not yet resolved", ErrLimit)
	}
	n, ok := val.(value.Int)
	if !ok {
		return 0, fmt.Errorf("%w: limit bound must be an Int, got %T", ErrLimit, val)
	}
	return int(n), nil
}

func lengthOf(v value.Value) (int, error) {
	switch x := v.(type) {
	case value.Str:
		return len([]rune(string(x))), nil
	case value.Collection:
		return x.Len(), nil
	default:
		return 0, fmt.Errorf("%w: length limit requires a Str or Collection, got %T", ErrLimit, v)
	}
}
