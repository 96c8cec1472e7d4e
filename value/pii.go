package value

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
)

// digitsOnly strips every non-digit rune from s.
func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Tin is a validated taxpayer identification number (SSN-shaped: 9 digits),
// canonically rendered as "XXX-XX-XXXX".
type Tin string

var tinShape = regexp.MustCompile(`^\d{9}$`)

// NewTin parses raw, stripping separators, and validates its shape and
// checksum-adjacent area-number rule (area 000, 666, and 900-999 are
// invalid, matching SSA rules).
func NewTin(raw string) (Tin, error) {
	digits := digitsOnly(raw)
	if !tinShape.MatchString(digits) {
		return "", fmt.Errorf("%w: Tin %q: must be 9 digits", ErrInvalidValue, raw)
	}
	area := digits[0:3]
	if area == "000" || area == "666" || area[0] == '9' {
		return "", fmt.Errorf("%w: Tin %q: invalid area number %q", ErrInvalidValue, raw, area)
	}
	if digits[3:5] == "00" || digits[5:9] == "0000" {
		return "", fmt.Errorf("%w: Tin %q: group or serial number is zero", ErrInvalidValue, raw)
	}
	return Tin(digits[0:3] + "-" + digits[3:5] + "-" + digits[5:9]), nil
}

// Kind returns KindTin.
func (Tin) Kind() Kind { return KindTin }

// String returns the canonical "XXX-XX-XXXX" rendering of v.
func (v Tin) String() string { return string(v) }

// Equal reports whether other is a Tin with the same value.
func (v Tin) Equal(other Value) bool {
	o, ok := other.(Tin)
	return ok && v == o
}

// Ein is a validated employer identification number (2 digits, a hyphen,
// then 7 digits), canonically rendered as "XX-XXXXXXX".
type Ein string

var einShape = regexp.MustCompile(`^\d{9}$`)

// NewEin parses raw, stripping separators, and validates its shape.
func NewEin(raw string) (Ein, error) {
	digits := digitsOnly(raw)
	if !einShape.MatchString(digits) {
		return "", fmt.Errorf("%w: Ein %q: must be 9 digits", ErrInvalidValue, raw)
	}
	return Ein(digits[0:2] + "-" + digits[2:9]), nil
}

// Kind returns KindEin.
func (Ein) Kind() Kind { return KindEin }

// String returns the canonical "XX-XXXXXXX" rendering of v.
func (v Ein) String() string { return string(v) }

// Equal reports whether other is an Ein with the same value.
func (v Ein) Equal(other Value) bool {
	o, ok := other.(Ein)
	return ok && v == o
}

// IpPin is a validated IRS Identity Protection PIN: exactly 6 digits.
type IpPin string

var ipPinShape = regexp.MustCompile(`^\d{6}$`)

// NewIpPin parses raw and validates its shape.
func NewIpPin(raw string) (IpPin, error) {
	digits := digitsOnly(raw)
	if !ipPinShape.MatchString(digits) {
		return "", fmt.Errorf("%w: IpPin %q: must be 6 digits", ErrInvalidValue, raw)
	}
	return IpPin(digits), nil
}

// Kind returns KindIpPin.
func (IpPin) Kind() Kind { return KindIpPin }

// String returns v unchanged.
func (v IpPin) String() string { return string(v) }

// Equal reports whether other is an IpPin with the same value.
func (v IpPin) Equal(other Value) bool {
	o, ok := other.(IpPin)
	return ok && v == o
}

// Pin is a validated e-file self-select PIN: exactly 5 digits, not all
// zero.
type Pin string

var pinShape = regexp.MustCompile(`^\d{5}$`)

// NewPin parses raw and validates its shape.
func NewPin(raw string) (Pin, error) {
	digits := digitsOnly(raw)
	if !pinShape.MatchString(digits) {
		return "", fmt.Errorf("%w: Pin %q: must be 5 digits", ErrInvalidValue, raw)
	}
	if digits == "00000" {
		return "", fmt.Errorf("%w: Pin %q: must not be all zeros", ErrInvalidValue, raw)
	}
	return Pin(digits), nil
}

// Kind returns KindPin.
func (Pin) Kind() Kind { return KindPin }

// String returns v unchanged.
func (v Pin) String() string { return string(v) }

// Equal reports whether other is a Pin with the same value.
func (v Pin) Equal(other Value) bool {
	o, ok := other.(Pin)
	return ok && v == o
}

// Phone is a validated US phone number, canonically rendered as
// "(XXX) XXX-XXXX".
type Phone string

var phoneShape = regexp.MustCompile(`^1?(\d{10})$`)

// NewPhone parses raw, stripping separators and an optional leading
// country code 1, and validates its shape.
func NewPhone(raw string) (Phone, error) {
	digits := digitsOnly(raw)
	m := phoneShape.FindStringSubmatch(digits)
	if m == nil {
		return "", fmt.Errorf("%w: Phone %q: must be 10 digits", ErrInvalidValue, raw)
	}
	d := m[1]
	return Phone(fmt.Sprintf("(%s) %s-%s", d[0:3], d[3:6], d[6:10])), nil
}

// Kind returns KindPhone.
func (Phone) Kind() Kind { return KindPhone }

// String returns the canonical "(XXX) XXX-XXXX" rendering of v.
func (v Phone) String() string { return string(v) }

// Equal reports whether other is a Phone with the same value.
func (v Phone) Equal(other Value) bool {
	o, ok := other.(Phone)
	return ok && v == o
}

// Email is a validated email address, canonically rendered in lower case.
type Email string

// NewEmail parses raw using RFC 5322 address syntax.
func NewEmail(raw string) (Email, error) {
	addr, err := mail.ParseAddress(raw)
	if err != nil {
		return "", fmt.Errorf("%w: Email %q: %w", ErrInvalidValue, raw, err)
	}
	return Email(strings.ToLower(addr.Address)), nil
}

// Kind returns KindEmail.
func (Email) Kind() Kind { return KindEmail }

// String returns the canonical lower-cased rendering of v.
func (v Email) String() string { return string(v) }

// Equal reports whether other is an Email with the same value.
func (v Email) Equal(other Value) bool {
	o, ok := other.(Email)
	return ok && v == o
}
