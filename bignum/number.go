package bignum

import "fmt"

// Number is a Decimal or a Complex. No other types implement Number.
type Number interface {
	fmt.Stringer
	// Hash returns a hash consistent with equality of values of the same
	// kind.
	Hash() uint64

	number()
}

func (Decimal) number() {}
func (Complex) number() {}

// ParseNumber parses s as a Decimal if possible and as a Complex otherwise.
func ParseNumber(s string) (Number, error) {
	if x, err := ParseDecimal(s); err == nil {
		return x, nil
	}
	z, err := ParseComplex(s)
	if err != nil {
		return nil, err
	}
	return simplify(z), nil
}

// Equal returns whether x and y are the same number. A Complex with a zero
// imaginary part equals the Decimal of its real part.
func Equal(x, y Number) bool {
	return complexOf(x).Equal(complexOf(y))
}

// complexOf promotes x to Complex.
func complexOf(x Number) Complex {
	switch x := x.(type) {
	case Decimal:
		return Complex{re: x.ok(), im: zero}
	case Complex:
		return x
	default:
		panic(fmt.Sprintf("bignum: unknown Number type %T", x))
	}
}

// simplify demotes a Complex with no imaginary part to a Decimal.
func simplify(z Complex) Number {
	if z.im.IsZero() {
		return z.Real()
	}
	return z
}

// decimals returns x and y as Decimals if both are.
func decimals(x, y Number) (Decimal, Decimal, bool) {
	a, ok := x.(Decimal)
	if !ok {
		return Decimal{}, Decimal{}, false
	}
	b, ok := y.(Decimal)
	return a, b, ok
}

// Add returns x + y. If either operand is Complex, the other is promoted.
func Add(x, y Number) Number {
	if a, b, ok := decimals(x, y); ok {
		return a.Add(b)
	}
	return simplify(complexOf(x).Add(complexOf(y)))
}

// Sub returns x - y. If either operand is Complex, the other is promoted.
func Sub(x, y Number) Number {
	if a, b, ok := decimals(x, y); ok {
		return a.Sub(b)
	}
	return simplify(complexOf(x).Sub(complexOf(y)))
}

// Mul returns x * y. If either operand is Complex, the other is promoted.
func Mul(x, y Number) Number {
	if a, b, ok := decimals(x, y); ok {
		return a.Mul(b)
	}
	return simplify(complexOf(x).Mul(complexOf(y)))
}

// Quo returns x / y to prec fractional digits. If either operand is Complex,
// the other is promoted.
func Quo(x, y Number, prec int) (Number, error) {
	if a, b, ok := decimals(x, y); ok {
		return a.Quo(b, prec)
	}
	z, err := complexOf(x).Quo(complexOf(y), prec)
	if err != nil {
		return nil, err
	}
	return simplify(z), nil
}

// Rem returns the remainder of x / y. It fails with ErrUnsupported if either
// operand is Complex.
func Rem(x, y Number) (Number, error) {
	if a, b, ok := decimals(x, y); ok {
		return a.Rem(b)
	}
	return nil, &OpError{Op: "%", X: x, Y: y, Err: ErrUnsupported}
}

// Neg returns -x.
func Neg(x Number) Number {
	switch x := x.(type) {
	case Decimal:
		return x.Neg()
	case Complex:
		return x.Neg()
	default:
		panic(fmt.Sprintf("bignum: unknown Number type %T", x))
	}
}

// Abs returns the absolute value of a Decimal or the modulus of a Complex, to
// prec fractional digits.
func Abs(x Number, prec int) (Decimal, error) {
	switch x := x.(type) {
	case Decimal:
		return x.Abs(), nil
	case Complex:
		return x.Abs(prec)
	default:
		panic(fmt.Sprintf("bignum: unknown Number type %T", x))
	}
}
