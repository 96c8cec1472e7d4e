package value

import "math/big"

// RationalToDollar converts r to a Dollar amount, rounding to the nearest
// cent with banker's rounding (round-half-to-even), as required when
// Dollar and Rational values combine (spec §4.1).
func RationalToDollar(r Rational) Dollar {
	cents, _ := NewRational(r.num*100, r.den)
	return dollarFromCentsRational(cents)
}

// RationalToInt rounds r to the nearest whole integer with banker's
// rounding (round-half-to-even), e.g. for RoundToInt (spec §4.6). Unlike
// RationalToDollar, there is no cents scaling: r is rounded directly.
func RationalToInt(r Rational) Int {
	return Int(roundRationalToInt64(r))
}

// MultiplyDollarRational multiplies d by r, rounding the result to the
// nearest cent with banker's rounding.
func MultiplyDollarRational(d Dollar, r Rational) Dollar {
	prod, _ := NewRational(int64(d)*r.num, r.den)
	return dollarFromCentsRational(prod)
}

// dollarFromCentsRational rounds a Rational already expressed in cents
// (num/den) to the nearest integer cent with banker's rounding.
func dollarFromCentsRational(r Rational) Dollar {
	return Dollar(roundRationalToInt64(r))
}

// roundRationalToInt64 rounds r's num/den to the nearest int64 with
// banker's rounding (round-half-to-even).
func roundRationalToInt64(r Rational) int64 {
	num := big.NewInt(r.num)
	den := big.NewInt(r.den)
	q, rem := new(big.Int), new(big.Int)
	q.QuoRem(num, den, rem)

	if rem.Sign() == 0 {
		return q.Int64()
	}

	twiceRem := new(big.Int).Mul(rem, big.NewInt(2))
	twiceRem.Abs(twiceRem)
	denAbs := new(big.Int).Abs(den)
	cmp := twiceRem.Cmp(denAbs)

	if cmp > 0 || (cmp == 0 && q.Bit(0) == 1) {
		if num.Sign() < 0 {
			q.Sub(q, big.NewInt(1))
		} else {
			q.Add(q, big.NewInt(1))
		}
	}
	return q.Int64()
}

// DivideDollarRational divides d by r, rounding the result to the nearest
// cent with banker's rounding. ok is false if r is zero.
func DivideDollarRational(d Dollar, r Rational) (Dollar, bool) {
	if r.num == 0 {
		return 0, false
	}
	inv, _ := NewRational(r.den, r.num)
	return MultiplyDollarRational(d, inv), true
}
