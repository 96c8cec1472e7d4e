package value

import (
	"fmt"
	"slices"
	"strings"
)

// Enum is a single chosen value from an option set declared elsewhere in the
// dictionary. Equality requires both the options path and the chosen value
// to match.
type Enum struct {
	optionsPath string
	value       string
}

// NewEnum returns an Enum with chosen as its current value, validated
// against the option set at optionsPath. Callers that don't have the
// option set handy (e.g. decoding from JSON before the dictionary is
// available) should use NewEnumUnchecked and validate later via the
// intrinsic limit (see package limit).
func NewEnum(optionsPath, chosen string, options []string) (Enum, error) {
	if !slices.Contains(options, chosen) {
		return Enum{}, fmt.Errorf("%w: Enum %q not in option set %v", ErrInvalidValue, chosen, options)
	}
	return Enum{optionsPath: optionsPath, value: chosen}, nil
}

// NewEnumUnchecked returns an Enum without validating chosen against an
// option set.
func NewEnumUnchecked(optionsPath, chosen string) Enum {
	return Enum{optionsPath: optionsPath, value: chosen}
}

// Kind returns KindEnum.
func (Enum) Kind() Kind { return KindEnum }

// String returns the chosen value.
func (v Enum) String() string { return v.value }

// OptionsPath returns the path to the fact defining this Enum's option set.
func (v Enum) OptionsPath() string { return v.optionsPath }

// Value returns the chosen value.
func (v Enum) Value() string { return v.value }

// Equal reports whether other is an Enum with the same options path and
// chosen value.
func (v Enum) Equal(other Value) bool {
	o, ok := other.(Enum)
	return ok && v.optionsPath == o.optionsPath && v.value == o.value
}

// MultiEnum is an order-insensitive set of chosen values from an option set
// declared elsewhere in the dictionary.
type MultiEnum struct {
	optionsPath string
	values      []string
}

// NewMultiEnum returns a MultiEnum with chosen as its current values, each
// validated against options.
func NewMultiEnum(optionsPath string, chosen, options []string) (MultiEnum, error) {
	for _, c := range chosen {
		if !slices.Contains(options, c) {
			return MultiEnum{}, fmt.Errorf("%w: MultiEnum %q not in option set %v", ErrInvalidValue, c, options)
		}
	}
	return MultiEnum{optionsPath: optionsPath, values: slices.Clone(chosen)}, nil
}

// NewMultiEnumUnchecked returns a MultiEnum without validating chosen
// against an option set.
func NewMultiEnumUnchecked(optionsPath string, chosen []string) MultiEnum {
	return MultiEnum{optionsPath: optionsPath, values: slices.Clone(chosen)}
}

// Kind returns KindMultiEnum.
func (MultiEnum) Kind() Kind { return KindMultiEnum }

// String returns the chosen values joined by a comma, in their stored
// order.
func (v MultiEnum) String() string { return strings.Join(v.values, ",") }

// OptionsPath returns the path to the fact defining this MultiEnum's option
// set.
func (v MultiEnum) OptionsPath() string { return v.optionsPath }

// Values returns the chosen values in their stored order.
func (v MultiEnum) Values() []string { return slices.Clone(v.values) }

// Equal reports whether other is a MultiEnum with the same options path and
// the same set of chosen values, irrespective of order.
func (v MultiEnum) Equal(other Value) bool {
	o, ok := other.(MultiEnum)
	if !ok || v.optionsPath != o.optionsPath || len(v.values) != len(o.values) {
		return false
	}
	a, b := slices.Clone(v.values), slices.Clone(o.values)
	slices.Sort(a)
	slices.Sort(b)
	return slices.Equal(a, b)
}
