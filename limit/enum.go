package limit

import (
	"fmt"

	"github.com/trueprep/fact-graph/expr"
	"github.com/trueprep/fact-graph/value"
)

// EvaluateEnumOptions checks an Enum or MultiEnum value against its
// declared option set, evaluated fresh against ctx since the set may be
// conditional (spec invariant 8: a set of an Enum value succeeds only if
// the value is in the option set produced by the referenced option
// expression). Unlike the declared Min/Max/... limits, this one is
// intrinsic to the value kind and isn't attached via Limit.
func EvaluateEnumOptions(ctx expr.EvalContext, path string, options expr.EnumOptions, actual value.Value) (*Violation, error) {
	v, err := options.Eval(ctx)
	if err != nil {
		return nil, err
	}
	r := v.MustSingle()
	resolved, ok := r.Value()
	if !ok {
		// The option set itself hasn't resolved yet; nothing to check against.
		return nil, nil
	}
	opts, ok := resolved.(value.Collection)
	if !ok {
		return nil, fmt.Errorf("%w: EnumOptions did not resolve to a Collection, got %T", ErrLimit, resolved)
	}

	switch actual := actual.(type) {
	case value.Enum:
		if !opts.Contains(actual.Value()) {
			return &Violation{Path: path, Name: "enumOptions", Severity: Error,
				Message: fmt.Sprintf("%q is not among the options %s", actual.Value(), opts.String())}, nil
		}
	case value.MultiEnum:
		for _, val := range actual.Values() {
			if !opts.Contains(val) {
				return &Violation{Path: path, Name: "enumOptions", Severity: Error,
					Message: fmt.Sprintf("%q is not among the options %s", val, opts.String())}, nil
			}
		}
	default:
		return nil, fmt.Errorf("%w: EvaluateEnumOptions requires an Enum or MultiEnum, got %T", ErrLimit, actual)
	}
	return nil, nil
}
