package bignum

import "strings"

// Sqrt returns the square root of x truncated to prec fractional digits. It
// fails with ErrUnsupported if x is negative; use SqrtComplex for a complex
// root.
func (x Decimal) Sqrt(prec int) (Decimal, error) {
	x = x.ok()
	if x.neg {
		return Decimal{}, &OpError{Op: "sqrt", X: x, Err: ErrUnsupported}
	}
	if x.IsZero() {
		return zero, nil
	}
	if prec < 0 {
		prec = 0
	}
	// Babylonian iteration from 1. After the first step the iterates decrease
	// toward the root; truncation ends the descent either at a fixed point or
	// with a step back up.
	a := one
	down := false
	for {
		q, err := x.Quo(a, prec)
		if err != nil {
			return Decimal{}, err
		}
		next, err := q.Add(a).Quo(two, prec)
		if err != nil {
			return Decimal{}, err
		}
		if next.IsZero() {
			// The root is below the resolution of prec.
			a = next
			break
		}
		c := next.Cmp(a)
		if c == 0 || c > 0 && down {
			break
		}
		if c < 0 {
			down = true
		}
		a = next
	}
	return fixroot(x, a, prec), nil
}

// fixroot adjusts an approximate root of x by units in the last place until it
// is exactly the root truncated to prec fractional digits.
func fixroot(x, a Decimal, prec int) Decimal {
	ulp := one
	if prec > 0 {
		ulp = fromCanonical(false, "0."+strings.Repeat("0", prec-1)+"1")
	}
	for a.Sign() > 0 && a.Mul(a).Cmp(x) > 0 {
		a = a.Sub(ulp)
	}
	for {
		b := a.Add(ulp)
		if b.Mul(b).Cmp(x) > 0 {
			return a
		}
		a = b
	}
}

// SqrtComplex returns the square root of x as a complex number: sqrt(|x|)i
// when x is negative, and the real root otherwise.
func SqrtComplex(x Decimal, prec int) (Complex, error) {
	r, err := x.Abs().Sqrt(prec)
	if err != nil {
		return Complex{}, err
	}
	if x.Sign() < 0 {
		return Complex{re: zero, im: r}, nil
	}
	return Complex{re: r, im: zero}, nil
}
