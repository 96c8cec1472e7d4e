package value

import (
	"fmt"
	"regexp"
)

// Address is a US-shaped postal address.
type Address struct {
	Street  string
	Line2   string
	City    string
	Region  string // state or territory, two letters
	Postal  string // ZIP or ZIP+4
	Country string // ISO 3166-1 alpha-2, defaults to "US"
}

var (
	regionShape = regexp.MustCompile(`^[A-Z]{2}$`)
	postalShape = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
)

// NewAddress validates a as an intrinsically well-formed address: Street,
// City, and Region are required, Region must be a two-letter code, and
// for a US address (Country empty or "US") Postal must be a 5- or 9-digit
// ZIP code.
func NewAddress(a Address) (Address, error) {
	if a.Country == "" {
		a.Country = "US"
	}
	if a.Street == "" || a.City == "" {
		return Address{}, fmt.Errorf("%w: Address: street and city are required", ErrInvalidValue)
	}
	if !regionShape.MatchString(a.Region) {
		return Address{}, fmt.Errorf("%w: Address: region %q must be a two-letter code", ErrInvalidValue, a.Region)
	}
	if a.Country == "US" && !postalShape.MatchString(a.Postal) {
		return Address{}, fmt.Errorf("%w: Address: postal code %q is malformed", ErrInvalidValue, a.Postal)
	}
	return a, nil
}

// Kind returns KindAddress.
func (Address) Kind() Kind { return KindAddress }

// String returns a single-line rendering of v.
func (v Address) String() string {
	line2 := ""
	if v.Line2 != "" {
		line2 = " " + v.Line2
	}
	return fmt.Sprintf("%s%s, %s, %s %s", v.Street, line2, v.City, v.Region, v.Postal)
}

// Equal reports whether other is an Address with identical fields.
func (v Address) Equal(other Value) bool {
	o, ok := other.(Address)
	return ok && v == o
}

// BankAccountType distinguishes checking from savings accounts.
type BankAccountType uint8

// The two supported bank account types.
const (
	BankAccountChecking BankAccountType = iota
	BankAccountSavings
)

func (t BankAccountType) String() string {
	if t == BankAccountSavings {
		return "savings"
	}
	return "checking"
}

// BankAccount is a validated US bank account for direct deposit/debit.
type BankAccount struct {
	Type    BankAccountType
	Routing string
	Account string
}

var routingShape = regexp.MustCompile(`^\d{9}$`)

// NewBankAccount validates a's routing number shape (9 digits, valid ABA
// checksum) and that an account number is present.
func NewBankAccount(a BankAccount) (BankAccount, error) {
	if !routingShape.MatchString(a.Routing) {
		return BankAccount{}, fmt.Errorf("%w: BankAccount: routing number %q must be 9 digits", ErrInvalidValue, a.Routing)
	}
	if !validABAChecksum(a.Routing) {
		return BankAccount{}, fmt.Errorf("%w: BankAccount: routing number %q fails checksum", ErrInvalidValue, a.Routing)
	}
	if a.Account == "" {
		return BankAccount{}, fmt.Errorf("%w: BankAccount: account number is required", ErrInvalidValue)
	}
	return a, nil
}

// validABAChecksum implements the standard ABA routing number checksum:
// 3*(d1+d4+d7) + 7*(d2+d5+d8) + (d3+d6+d9) must be divisible by 10.
func validABAChecksum(routing string) bool {
	sum := 0
	weights := [9]int{3, 7, 1, 3, 7, 1, 3, 7, 1}
	for i, r := range routing {
		sum += int(r-'0') * weights[i]
	}
	return sum%10 == 0
}

// Kind returns KindBankAccount.
func (BankAccount) Kind() Kind { return KindBankAccount }

// String returns a masked rendering of v, e.g. "checking ...1234".
func (v BankAccount) String() string {
	acct := v.Account
	if len(acct) > 4 {
		acct = acct[len(acct)-4:]
	}
	return fmt.Sprintf("%s ...%s", v.Type, acct)
}

// Equal reports whether other is a BankAccount with identical fields.
func (v BankAccount) Equal(other Value) bool {
	o, ok := other.(BankAccount)
	return ok && v == o
}
