package bignum

import (
	"regexp"
	"strings"

	"github.com/spaolacci/murmur3"
)

var (
	// complexRE validates a complex literal with whitespace still in place.
	complexRE = regexp.MustCompile(`^\s*(?:[+-]?\d+(?:\.\d+)?\s*[+-]\s*)?[+-]?(?:\d+(?:\.\d+)?)?\s*[iI]\s*$|^\s*[+-]?\d+(?:\.\d+)?\s*$`)
	// complexPartsRE splits a validated literal with whitespace removed into
	// its real part, separating sign, coefficient sign, and coefficient.
	complexPartsRE = regexp.MustCompile(`^(?:([+-]?\d+(?:\.\d+)?)([+-]))?([+-]?)(\d+(?:\.\d+)?)?i$`)
)

// Complex is an immutable complex number with Decimal components. The zero
// value is 0.
type Complex struct {
	re, im Decimal
}

// NewComplex creates a complex number from its components.
func NewComplex(re, im Decimal) Complex {
	return Complex{re: re.ok(), im: im.ok()}
}

// ParseComplex parses a complex literal of the form [real][+|-][coefficient]i,
// a bare real, or a bare imaginary term. The imaginary unit may be i or I, and
// whitespace is allowed around the sign between the parts. A bare i denotes a
// coefficient of 1.
func ParseComplex(s string) (Complex, error) {
	if !complexRE.MatchString(s) {
		return Complex{}, &SyntaxError{Kind: "complex", Text: s}
	}
	t := strings.ToLower(strings.Join(strings.Fields(s), ""))
	if re, err := ParseDecimal(t); err == nil {
		return Complex{re: re, im: zero}, nil
	}
	m := complexPartsRE.FindStringSubmatch(t)
	if m == nil {
		return Complex{}, &SyntaxError{Kind: "complex", Text: s}
	}
	re := zero
	if m[1] != "" {
		re = MustParseDecimal(m[1])
	}
	im := one
	if m[4] != "" {
		im = MustParseDecimal(m[4])
	}
	if (m[2] == "-") != (m[3] == "-") {
		im = im.Neg()
	}
	return Complex{re: re, im: im}, nil
}

// MustParseComplex is like ParseComplex but panics if s is invalid.
func MustParseComplex(s string) Complex {
	z, err := ParseComplex(s)
	if err != nil {
		panic(err)
	}
	return z
}

// Real returns the real part of z.
func (z Complex) Real() Decimal {
	return z.re.ok()
}

// Imag returns the imaginary part of z.
func (z Complex) Imag() Decimal {
	return z.im.ok()
}

// IsZero returns whether z is 0.
func (z Complex) IsZero() bool {
	return z.re.IsZero() && z.im.IsZero()
}

// Equal returns whether z and w have the same value.
func (z Complex) Equal(w Complex) bool {
	return z.re.Equal(w.re) && z.im.Equal(w.im)
}

// Hash returns a hash of z consistent with Equal.
func (z Complex) Hash() uint64 {
	return murmur3.Sum64([]byte(z.String()))
}

// String renders z in the form a+bi, omitting a zero real part, a zero
// imaginary part, and a unit coefficient. 0+0i is "0".
func (z Complex) String() string {
	re, im := z.Real(), z.Imag()
	if re.IsZero() && im.IsZero() {
		return "0"
	}
	var b strings.Builder
	if !re.IsZero() {
		b.WriteString(re.String())
	}
	if im.IsZero() {
		return b.String()
	}
	switch {
	case im.neg:
		b.WriteByte('-')
	case b.Len() > 0:
		b.WriteByte('+')
	}
	if im.mag != "1" {
		b.WriteString(im.mag)
	}
	b.WriteByte('i')
	return b.String()
}

// Neg returns -z.
func (z Complex) Neg() Complex {
	return Complex{re: z.re.Neg(), im: z.im.Neg()}
}

// Conj returns the complex conjugate of z.
func (z Complex) Conj() Complex {
	return Complex{re: z.Real(), im: z.im.Neg()}
}

// Add returns z + w.
func (z Complex) Add(w Complex) Complex {
	return Complex{re: z.re.Add(w.re), im: z.im.Add(w.im)}
}

// Sub returns z - w.
func (z Complex) Sub(w Complex) Complex {
	return Complex{re: z.re.Sub(w.re), im: z.im.Sub(w.im)}
}

// Mul returns z * w = (ac - bd) + (ad + bc)i.
func (z Complex) Mul(w Complex) Complex {
	a, b, c, d := z.re, z.im, w.re, w.im
	return Complex{
		re: a.Mul(c).Sub(b.Mul(d)),
		im: a.Mul(d).Add(b.Mul(c)),
	}
}

// Quo returns z / w with each component truncated to prec fractional digits.
func (z Complex) Quo(w Complex, prec int) (Complex, error) {
	a1, b1, a2, b2 := z.re, z.im, w.re, w.im
	den := a2.Mul(a2).Add(b2.Mul(b2))
	if den.IsZero() {
		return Complex{}, &OpError{Op: "/", X: z, Y: w, Err: ErrDivisionByZero}
	}
	re, err := a1.Mul(a2).Add(b1.Mul(b2)).Quo(den, prec)
	if err != nil {
		return Complex{}, err
	}
	im, err := a2.Mul(b1).Sub(a1.Mul(b2)).Quo(den, prec)
	if err != nil {
		return Complex{}, err
	}
	return Complex{re: re, im: im}, nil
}

// Rem always fails with ErrUnsupported. The remainder of complex division is
// undefined.
func (z Complex) Rem(w Complex) (Complex, error) {
	return Complex{}, &OpError{Op: "%", X: z, Y: w, Err: ErrUnsupported}
}

// Abs returns the modulus of z, sqrt(re² + im²), to prec fractional digits.
func (z Complex) Abs(prec int) (Decimal, error) {
	return z.re.Mul(z.re).Add(z.im.Mul(z.im)).Sqrt(prec)
}
