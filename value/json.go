package value

import (
	"encoding/json"
	"fmt"
)

// MarshalPlain encodes v in its canonical per-type JSON form (§3 of the
// spec): a bare boolean/number/string for scalars, an object for Address
// and BankAccount, and an array of strings for Collection and MultiEnum.
func MarshalPlain(v Value) ([]byte, error) {
	switch v := v.(type) {
	case Bool:
		return json.Marshal(bool(v))
	case Int:
		return json.Marshal(int32(v))
	case Str:
		return json.Marshal(string(v))
	case Dollar:
		return json.Marshal(int64(v))
	case Rational:
		return json.Marshal(v.String())
	case Day:
		return json.Marshal(v.String())
	case Days:
		return json.Marshal(int64(v))
	case Enum:
		return json.Marshal(v.value)
	case MultiEnum:
		return json.Marshal(v.values)
	case Tin:
		return json.Marshal(string(v))
	case Ein:
		return json.Marshal(string(v))
	case IpPin:
		return json.Marshal(string(v))
	case Pin:
		return json.Marshal(string(v))
	case Phone:
		return json.Marshal(string(v))
	case Email:
		return json.Marshal(string(v))
	case Address:
		return json.Marshal(addressJSON{
			Street:  v.Street,
			Line2:   v.Line2,
			City:    v.City,
			Region:  v.Region,
			Postal:  v.Postal,
			Country: v.Country,
		})
	case BankAccount:
		return json.Marshal(bankAccountJSON{
			Type:    v.Type.String(),
			Routing: v.Routing,
			Account: v.Account,
		})
	case Collection:
		return json.Marshal(v.members)
	default:
		return nil, fmt.Errorf("%w: unsupported value type %T", ErrInvalidValue, v)
	}
}

type addressJSON struct {
	Street  string `json:"street"`
	Line2   string `json:"line2,omitempty"`
	City    string `json:"city"`
	Region  string `json:"region"`
	Postal  string `json:"postal"`
	Country string `json:"country"`
}

type bankAccountJSON struct {
	Type    string `json:"type"`
	Routing string `json:"routing"`
	Account string `json:"account"`
}

// OptionSource supplies the option set and declared options-path for
// decoding Enum/MultiEnum values, since neither is self-describing in its
// canonical JSON form. Callers that don't need validation (e.g. replaying
// already-validated store data) may pass a nil options slice.
type OptionSource struct {
	Path    string
	Options []string
}

// UnmarshalPlain decodes raw, in the canonical JSON form for kind, into a
// Value. opts supplies the Enum/MultiEnum option set and is ignored for
// every other kind.
func UnmarshalPlain(kind Kind, raw []byte, opts *OptionSource) (Value, error) {
	switch kind {
	case KindBool:
		var b bool
		if err := json.Unmarshal(raw, &b); err != nil {
			return nil, wrapDecode(kind, err)
		}
		return Bool(b), nil
	case KindInt:
		var n int32
		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, wrapDecode(kind, err)
		}
		return Int(n), nil
	case KindStr:
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, wrapDecode(kind, err)
		}
		return Str(s), nil
	case KindDollar:
		var n int64
		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, wrapDecode(kind, err)
		}
		return Dollar(n), nil
	case KindRational:
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, wrapDecode(kind, err)
		}
		return ParseRational(s)
	case KindDay:
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, wrapDecode(kind, err)
		}
		return ParseDay(s)
	case KindDays:
		var n int64
		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, wrapDecode(kind, err)
		}
		return Days(n), nil
	case KindEnum:
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, wrapDecode(kind, err)
		}
		if opts == nil || opts.Options == nil {
			return NewEnumUnchecked(optPath(opts), s), nil
		}
		return NewEnum(opts.Path, s, opts.Options)
	case KindMultiEnum:
		var ss []string
		if err := json.Unmarshal(raw, &ss); err != nil {
			return nil, wrapDecode(kind, err)
		}
		if opts == nil || opts.Options == nil {
			return NewMultiEnumUnchecked(optPath(opts), ss), nil
		}
		return NewMultiEnum(opts.Path, ss, opts.Options)
	case KindTin:
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, wrapDecode(kind, err)
		}
		return NewTin(s)
	case KindEin:
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, wrapDecode(kind, err)
		}
		return NewEin(s)
	case KindIpPin:
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, wrapDecode(kind, err)
		}
		return NewIpPin(s)
	case KindPin:
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, wrapDecode(kind, err)
		}
		return NewPin(s)
	case KindPhone:
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, wrapDecode(kind, err)
		}
		return NewPhone(s)
	case KindEmail:
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, wrapDecode(kind, err)
		}
		return NewEmail(s)
	case KindAddress:
		var a addressJSON
		if err := json.Unmarshal(raw, &a); err != nil {
			return nil, wrapDecode(kind, err)
		}
		return NewAddress(Address{
			Street: a.Street, Line2: a.Line2, City: a.City,
			Region: a.Region, Postal: a.Postal, Country: a.Country,
		})
	case KindBankAccount:
		var a bankAccountJSON
		if err := json.Unmarshal(raw, &a); err != nil {
			return nil, wrapDecode(kind, err)
		}
		typ := BankAccountChecking
		if a.Type == "savings" {
			typ = BankAccountSavings
		}
		return NewBankAccount(BankAccount{Type: typ, Routing: a.Routing, Account: a.Account})
	case KindCollection:
		var ss []string
		if err := json.Unmarshal(raw, &ss); err != nil {
			return nil, wrapDecode(kind, err)
		}
		return NewCollection(ss)
	default:
		return nil, fmt.Errorf("%w: unsupported kind %v", ErrInvalidValue, kind)
	}
}

func optPath(opts *OptionSource) string {
	if opts == nil {
		return ""
	}
	return opts.Path
}

func wrapDecode(kind Kind, err error) error {
	return fmt.Errorf("%w: decoding %v: %w", ErrInvalidValue, kind, err)
}

// tagged is the {"$type":"<tag>","item":<json>} container used by
// migrations and persistence to carry a Value's kind alongside its
// canonical JSON form.
type tagged struct {
	Type string          `json:"$type"`
	Item json.RawMessage `json:"item"`
}

// MarshalTagged encodes v as a {"$type":...,"item":...} container.
func MarshalTagged(v Value) ([]byte, error) {
	item, err := MarshalPlain(v)
	if err != nil {
		return nil, err
	}
	return json.Marshal(tagged{Type: v.Kind().String(), Item: item})
}

// UnmarshalTagged decodes a {"$type":...,"item":...} container into a
// Value. opts supplies the Enum/MultiEnum option set, as in UnmarshalPlain.
func UnmarshalTagged(raw []byte, opts *OptionSource) (Value, error) {
	var t tagged
	if err := json.Unmarshal(raw, &t); err != nil {
		return nil, fmt.Errorf("%w: tagged value: %w", ErrInvalidValue, err)
	}
	kind, ok := kindFromString(t.Type)
	if !ok {
		return nil, fmt.Errorf("%w: unknown $type %q", ErrInvalidValue, t.Type)
	}
	return UnmarshalPlain(kind, t.Item, opts)
}

func kindFromString(s string) (Kind, bool) {
	for i, name := range kindNames {
		if name == s {
			return Kind(i), true
		}
	}
	return 0, false
}

// ParseKind returns the Kind named s (its String() form, e.g. "Dollar"),
// for adapters that read a type tag from outside the package (a
// dictionary-definition file, a CLI flag) rather than from a tagged
// value's "$type".
func ParseKind(s string) (Kind, bool) { return kindFromString(s) }
