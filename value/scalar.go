package value

import (
	"fmt"
	"math/big"
	"strconv"
	"time"
)

// Bool is a writable boolean value.
type Bool bool

// NewBool returns a Bool wrapping b.
func NewBool(b bool) Bool { return Bool(b) }

// Kind returns KindBool.
func (Bool) Kind() Kind { return KindBool }

// String returns "true" or "false".
func (v Bool) String() string { return strconv.FormatBool(bool(v)) }

// Equal reports whether other is a Bool with the same value.
func (v Bool) Equal(other Value) bool {
	o, ok := other.(Bool)
	return ok && v == o
}

// Int is a writable signed 32-bit integer value.
type Int int32

// NewInt parses raw as a base-10 32-bit integer. Returns ErrInvalidValue on
// overflow or malformed input.
func NewInt(raw string) (Int, error) {
	n, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: Int %q: %w", ErrInvalidValue, raw, err)
	}
	return Int(n), nil
}

// Kind returns KindInt.
func (Int) Kind() Kind { return KindInt }

// String returns the base-10 rendering of v.
func (v Int) String() string { return strconv.FormatInt(int64(v), 10) }

// Equal reports whether other is an Int with the same value.
func (v Int) Equal(other Value) bool {
	o, ok := other.(Int)
	return ok && v == o
}

// Str is a writable UTF-8 string value.
type Str string

// NewStr returns a Str wrapping raw.
func NewStr(raw string) Str { return Str(raw) }

// Kind returns KindStr.
func (Str) Kind() Kind { return KindStr }

// String returns v unchanged.
func (v Str) String() string { return string(v) }

// Equal reports whether other is a Str with the same value.
func (v Str) Equal(other Value) bool {
	o, ok := other.(Str)
	return ok && v == o
}

// Dollar is a money value stored as an exact integer count of cents.
type Dollar int64

// NewDollarCents returns a Dollar representing cents exactly.
func NewDollarCents(cents int64) Dollar { return Dollar(cents) }

// NewDollar parses raw, a decimal string such as "123.45" or "-5", into a
// Dollar. Returns ErrInvalidValue if raw isn't a valid decimal number or
// carries more than two fractional digits.
func NewDollar(raw string) (Dollar, error) {
	neg := false
	s := raw
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}

	whole, frac, hasFrac := s, "", false
	for i, r := range s {
		if r == '.' {
			whole, frac, hasFrac = s[:i], s[i+1:], true
			break
		}
	}
	if hasFrac && len(frac) > 2 {
		return 0, fmt.Errorf("%w: Dollar %q: more than two fractional digits", ErrInvalidValue, raw)
	}
	for len(frac) < 2 {
		frac += "0"
	}
	if whole == "" {
		whole = "0"
	}

	w, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: Dollar %q: %w", ErrInvalidValue, raw, err)
	}
	f, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: Dollar %q: %w", ErrInvalidValue, raw, err)
	}

	cents := w*100 + f
	if neg {
		cents = -cents
	}
	return Dollar(cents), nil
}

// Kind returns KindDollar.
func (Dollar) Kind() Kind { return KindDollar }

// String returns the canonical decimal rendering of v, e.g. "-5.00".
func (v Dollar) String() string {
	neg := v < 0
	cents := int64(v)
	if neg {
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", signPrefix(neg), cents/100, cents%100)
}

func signPrefix(neg bool) string {
	if neg {
		return "-"
	}
	return ""
}

// Equal reports whether other is a Dollar with the same value.
func (v Dollar) Equal(other Value) bool {
	o, ok := other.(Dollar)
	return ok && v == o
}

// Cents returns v as an integer count of cents.
func (v Dollar) Cents() int64 { return int64(v) }

// Rational is a reduced fraction with a non-zero, positive denominator.
type Rational struct {
	num, den int64
}

// NewRational returns a Rational equal to num/den in lowest terms with a
// positive denominator. Returns ErrInvalidValue if den is zero.
func NewRational(num, den int64) (Rational, error) {
	if den == 0 {
		return Rational{}, fmt.Errorf("%w: Rational: zero denominator", ErrInvalidValue)
	}
	if den < 0 {
		num, den = -num, -den
	}
	g := gcd(absInt64(num), den)
	if g == 0 {
		g = 1
	}
	return Rational{num: num / g, den: den / g}, nil
}

// ParseRational parses raw in "n/d" form.
func ParseRational(raw string) (Rational, error) {
	var n, d int64
	if _, err := fmt.Sscanf(raw, "%d/%d", &n, &d); err != nil {
		return Rational{}, fmt.Errorf("%w: Rational %q: %w", ErrInvalidValue, raw, err)
	}
	return NewRational(n, d)
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func absInt64(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}

// Kind returns KindRational.
func (Rational) Kind() Kind { return KindRational }

// String returns the canonical "n/d" rendering of v.
func (v Rational) String() string { return fmt.Sprintf("%d/%d", v.num, v.den) }

// Equal reports whether other is a Rational with the same reduced value.
func (v Rational) Equal(other Value) bool {
	o, ok := other.(Rational)
	return ok && v.num == o.num && v.den == o.den
}

// Num returns the reduced numerator.
func (v Rational) Num() int64 { return v.num }

// Den returns the reduced, positive denominator.
func (v Rational) Den() int64 { return v.den }

// Float64 returns v as a float64, for comparison and display only; exact
// arithmetic goes through Num/Den or big.Rat.
func (v Rational) Float64() float64 {
	r := new(big.Rat).SetFrac64(v.num, v.den)
	f, _ := r.Float64()
	return f
}

// Day is a civil date with no time-of-day or timezone component.
type Day struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDay returns a Day for the given year, month, and day, normalizing
// out-of-range components the way time.Date does (e.g. month 13 rolls into
// the next year).
func NewDay(year int, month time.Month, day int) Day {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return Day{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// ParseDay parses raw in "YYYY-MM-DD" form.
func ParseDay(raw string) (Day, error) {
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return Day{}, fmt.Errorf("%w: Day %q: %w", ErrInvalidValue, raw, err)
	}
	return Day{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

// Kind returns KindDay.
func (Day) Kind() Kind { return KindDay }

// String returns the canonical "YYYY-MM-DD" rendering of v.
func (v Day) String() string {
	return v.toTime().Format("2006-01-02")
}

func (v Day) toTime() time.Time {
	return time.Date(v.Year, v.Month, v.Day, 0, 0, 0, 0, time.UTC)
}

// Equal reports whether other is a Day with the same calendar date.
func (v Day) Equal(other Value) bool {
	o, ok := other.(Day)
	return ok && v == o
}

// Before reports whether v is strictly before other.
func (v Day) Before(other Day) bool { return v.toTime().Before(other.toTime()) }

// After reports whether v is strictly after other.
func (v Day) After(other Day) bool { return v.toTime().After(other.toTime()) }

// AddDays returns the Day n calendar days after v (n may be negative).
func (v Day) AddDays(n int) Day {
	t := v.toTime().AddDate(0, 0, n)
	return Day{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// LastDayOfMonth returns the last calendar day of v's month.
func (v Day) LastDayOfMonth() Day {
	t := time.Date(v.Year, v.Month+1, 0, 0, 0, 0, 0, time.UTC)
	return Day{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// IsLastDayOfMonth reports whether v is the last day of its month.
func (v Day) IsLastDayOfMonth() bool { return v == v.LastDayOfMonth() }

// Sub returns the signed number of days between v and other (v - other).
func (v Day) Sub(other Day) int64 {
	hours := v.toTime().Sub(other.toTime()).Hours()
	return int64(hours / 24)
}

// Days is a signed integer count of days, used for durations such as
// "add 30 days."
type Days int64

// NewDays returns a Days wrapping n.
func NewDays(n int64) Days { return Days(n) }

// Kind returns KindDays.
func (Days) Kind() Kind { return KindDays }

// String returns the base-10 rendering of v.
func (v Days) String() string { return strconv.FormatInt(int64(v), 10) }

// Equal reports whether other is a Days with the same value.
func (v Days) Equal(other Value) bool {
	o, ok := other.(Days)
	return ok && v == o
}
