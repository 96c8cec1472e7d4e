package value

var kindNames = [...]string{
	KindBool:        "Bool",
	KindInt:         "Int",
	KindStr:         "Str",
	KindDollar:      "Dollar",
	KindRational:    "Rational",
	KindDay:         "Day",
	KindDays:        "Days",
	KindEnum:        "Enum",
	KindMultiEnum:   "MultiEnum",
	KindTin:         "Tin",
	KindEin:         "Ein",
	KindIpPin:       "IpPin",
	KindPin:         "Pin",
	KindPhone:       "Phone",
	KindEmail:       "Email",
	KindAddress:     "Address",
	KindBankAccount: "BankAccount",
	KindCollection:  "Collection",
}

// String returns the Kind's name, e.g. "Dollar" or "MultiEnum".
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(unknown)"
}
