package bignum

// Pow returns x raised to the integer power exp. x^0 is 1 for every x. A
// negative exponent yields the reciprocal of the positive power, computed to
// prec fractional digits. Pow fails with ErrNonIntegerExponent if exp has a
// fractional part and with ErrDivisionByZero for 0 raised to a negative power.
func Pow(x Number, exp Decimal, prec int) (Number, error) {
	exp = exp.ok()
	if !exp.integer {
		return nil, &OpError{Op: "^", X: x, Y: exp, Err: ErrNonIntegerExponent}
	}
	if exp.IsZero() {
		return one, nil
	}
	r := powsq(x, exp.Abs())
	if exp.neg {
		return Quo(one, r, prec)
	}
	return r, nil
}

// powsq computes x^exp for a positive integer exp by squaring.
func powsq(x Number, exp Decimal) Number {
	switch exp.mag {
	case "1":
		return x
	case "2":
		return Mul(x, x)
	}
	// Truncating division by 2 yields floor(exp/2) for positive integers.
	half, err := exp.Quo(two, 0)
	if err != nil {
		panic(err)
	}
	h := powsq(x, half)
	r := Mul(h, h)
	if !exp.even {
		r = Mul(r, x)
	}
	return r
}
