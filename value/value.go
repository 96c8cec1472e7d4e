// Package value provides the typed scalar and composite values that flow
// through a Fact Graph: the user-writable types a dictionary can declare for
// a fact, each with its own construction, equality, and JSON codec rules.
//
// The complete list of types that implement [Value]:
//
//   - [Bool]
//   - [Int]
//   - [Str]
//   - [Dollar]
//   - [Rational]
//   - [Day]
//   - [Days]
//   - [Enum]
//   - [MultiEnum]
//   - [Tin], [Ein], [IpPin], [Pin], [Phone], [Email]
//   - [Address]
//   - [BankAccount]
//   - [Collection]
package value

import "errors"

// ErrInvalidValue wraps errors returned when a raw input fails a type's
// invariants (bad checksum, malformed address, wrong enum option, and so
// on).
var ErrInvalidValue = errors.New("invalid value")

// Kind identifies a Value's concrete type. It's a closed, stable
// enumeration used internally for dictionary type-checking and at
// boundary adapters, in place of ad hoc string type tags.
type Kind uint8

// The complete set of writable value kinds.
const (
	KindBool Kind = iota
	KindInt
	KindStr
	KindDollar
	KindRational
	KindDay
	KindDays
	KindEnum
	KindMultiEnum
	KindTin
	KindEin
	KindIpPin
	KindPin
	KindPhone
	KindEmail
	KindAddress
	KindBankAccount
	KindCollection
)

// Value is the tagged union of every writable fact type. Each variant
// provides its own raw-input constructor (which may fail with
// [ErrInvalidValue]), canonical rendering, equality, and JSON codec.
type Value interface {
	// Kind returns the Value's concrete type tag.
	Kind() Kind

	// String returns the canonical rendering of the value, e.g. a
	// normalized SSN or a decimal dollar amount.
	String() string

	// Equal reports whether v represents the same value as other. Equal
	// returns false, rather than panicking, when other is a different
	// Kind.
	Equal(other Value) bool
}
