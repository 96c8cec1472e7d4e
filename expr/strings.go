package expr

import (
	"fmt"
	"strings"

	"github.com/trueprep/fact-graph/result"
	"github.com/trueprep/fact-graph/value"
)

func asStringValue(v value.Value) string {
	if s, ok := v.(value.Str); ok {
		return string(s)
	}
	return v.String()
}

// Length returns the rune length of a Str operand.
type Length struct{ Operand Node }

func (l Length) Eval(ctx EvalContext) (result.Vector, error) {
	return unaryOp(ctx, l.Operand, func(v value.Value) (value.Value, error) {
		s, ok := v.(value.Str)
		if !ok {
			return nil, fmt.Errorf("%w: Length requires a Str operand, got %T", ErrEval, v)
		}
		return value.Int(len([]rune(string(s)))), nil
	})
}
func (l Length) String() string { return "Length(" + l.Operand.String() + ")" }

// Paste concatenates Operands' lossless string conversions.
type Paste struct{ Operands []Node }

func (p Paste) Eval(ctx EvalContext) (result.Vector, error) {
	vecs := make([]result.Vector, len(p.Operands))
	for i, op := range p.Operands {
		v, err := op.Eval(ctx)
		if err != nil {
			return result.Vector{}, err
		}
		vecs[i] = v
	}
	return result.VectorizeList(func(args []result.Result) result.Result {
		status := result.Complete
		var b strings.Builder
		for _, a := range args {
			status = result.Combine(status, a.Status())
			if v, ok := a.Value(); ok {
				b.WriteString(asStringValue(v))
			}
		}
		switch status {
		case result.Incomplete:
			return result.OfIncomplete()
		case result.Placeholder:
			return result.OfPlaceholder(value.Str(b.String()))
		default:
			return result.OfComplete(value.Str(b.String()))
		}
	}, vecs)
}
func (p Paste) String() string { return "Paste(" + joinNodes(p.Operands) + ")" }

// AsString converts any scalar value to its lossless string rendering.
type AsString struct{ Operand Node }

func (a AsString) Eval(ctx EvalContext) (result.Vector, error) {
	return unaryOp(ctx, a.Operand, func(v value.Value) (value.Value, error) {
		return value.Str(asStringValue(v)), nil
	})
}
func (a AsString) String() string { return "AsString(" + a.Operand.String() + ")" }

// AsDecimalString renders a Dollar as a plain decimal string without the
// sign/grouping conventions of Dollar.String (e.g. for tax-form output).
type AsDecimalString struct{ Operand Node }

func (a AsDecimalString) Eval(ctx EvalContext) (result.Vector, error) {
	return unaryOp(ctx, a.Operand, func(v value.Value) (value.Value, error) {
		d, ok := v.(value.Dollar)
		if !ok {
			return nil, fmt.Errorf("%w: AsDecimalString requires a Dollar operand, got %T", ErrEval, v)
		}
		return value.Str(d.String()), nil
	})
}
func (a AsDecimalString) String() string { return "AsDecimalString(" + a.Operand.String() + ")" }

// Trim removes leading/trailing whitespace from a Str operand.
type Trim struct{ Operand Node }

func (t Trim) Eval(ctx EvalContext) (result.Vector, error) {
	return unaryOp(ctx, t.Operand, func(v value.Value) (value.Value, error) {
		s, ok := v.(value.Str)
		if !ok {
			return nil, fmt.Errorf("%w: Trim requires a Str operand, got %T", ErrEval, v)
		}
		return value.Str(strings.TrimSpace(string(s))), nil
	})
}
func (t Trim) String() string { return "Trim(" + t.Operand.String() + ")" }

// ToUpper upper-cases a Str operand.
type ToUpper struct{ Operand Node }

func (u ToUpper) Eval(ctx EvalContext) (result.Vector, error) {
	return unaryOp(ctx, u.Operand, func(v value.Value) (value.Value, error) {
		s, ok := v.(value.Str)
		if !ok {
			return nil, fmt.Errorf("%w: ToUpper requires a Str operand, got %T", ErrEval, v)
		}
		return value.Str(strings.ToUpper(string(s))), nil
	})
}
func (u ToUpper) String() string { return "ToUpper(" + u.Operand.String() + ")" }

// StripChars removes every rune in Chars from Operand.
type StripChars struct {
	Operand Node
	Chars   string
}

func (s StripChars) Eval(ctx EvalContext) (result.Vector, error) {
	return unaryOp(ctx, s.Operand, func(v value.Value) (value.Value, error) {
		str, ok := v.(value.Str)
		if !ok {
			return nil, fmt.Errorf("%w: StripChars requires a Str operand, got %T", ErrEval, v)
		}
		return value.Str(strings.Map(func(r rune) rune {
			if strings.ContainsRune(s.Chars, r) {
				return -1
			}
			return r
		}, string(str))), nil
	})
}
func (s StripChars) String() string {
	return fmt.Sprintf("StripChars(%s, %q)", s.Operand.String(), s.Chars)
}

// mefAllowed is the character set the MeF (Modernized e-File) schema
// allows in a taxpayer name line: letters, digits, space, hyphen,
// ampersand, and apostrophe.
const mefAllowed = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789 -&'"

// TruncateNameForMeF strips characters outside the MeF name-line charset
// and truncates to MaxLen runes.
type TruncateNameForMeF struct {
	Operand Node
	MaxLen  int
}

func (t TruncateNameForMeF) Eval(ctx EvalContext) (result.Vector, error) {
	return unaryOp(ctx, t.Operand, func(v value.Value) (value.Value, error) {
		s, ok := v.(value.Str)
		if !ok {
			return nil, fmt.Errorf("%w: TruncateNameForMeF requires a Str operand, got %T", ErrEval, v)
		}
		cleaned := strings.Map(func(r rune) rune {
			if strings.ContainsRune(mefAllowed, r) {
				return r
			}
			return -1
		}, string(s))
		runes := []rune(cleaned)
		if t.MaxLen > 0 && len(runes) > t.MaxLen {
			runes = runes[:t.MaxLen]
		}
		return value.Str(string(runes)), nil
	})
}
func (t TruncateNameForMeF) String() string {
	return fmt.Sprintf("TruncateNameForMeF(%s, %d)", t.Operand.String(), t.MaxLen)
}
