package bignum

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/spaolacci/murmur3"
)

// DefaultPrec is the default number of fractional digits produced by
// divisions and square roots whose exact results do not terminate.
const DefaultPrec = 20

var decimalRE = regexp.MustCompile(`^\s*([+-]?)(\d+(?:\.\d+)?)\s*$`)

// Decimal is an immutable signed decimal number of arbitrary precision. The
// zero value is 0.
type Decimal struct {
	neg bool
	// mag is the canonical magnitude: no leading zeros in the integer part
	// beyond a single 0, no trailing zeros in the fractional part, no sign.
	mag string

	intLen  int
	fracLen int
	integer bool
	even    bool
}

var (
	zero = fromCanonical(false, "0")
	one  = fromCanonical(false, "1")
	two  = fromCanonical(false, "2")
)

// fromCanonical creates a Decimal from a canonical magnitude, computing all
// derived fields.
func fromCanonical(neg bool, mag string) Decimal {
	x := Decimal{neg: neg && mag != "0", mag: mag}
	x.intLen = strings.IndexByte(mag, '.')
	if x.intLen < 0 {
		x.intLen = len(mag)
	} else {
		x.fracLen = len(mag) - x.intLen - 1
	}
	x.integer = x.fracLen == 0
	x.even = x.integer && (mag[len(mag)-1]-'0')%2 == 0
	return x
}

// canonical strips superfluous zeros from an unsigned digit string with an
// optional decimal point.
func canonical(s string) string {
	ip, fp := s, ""
	if k := strings.IndexByte(s, '.'); k >= 0 {
		ip, fp = s[:k], s[k+1:]
	}
	ip = strings.TrimLeft(ip, "0")
	if ip == "" {
		ip = "0"
	}
	fp = strings.TrimRight(fp, "0")
	if fp == "" {
		return ip
	}
	return ip + "." + fp
}

// ParseDecimal parses a decimal literal: optional surrounding whitespace, an
// optional sign, one or more digits, and optionally a point followed by one or
// more digits.
func ParseDecimal(s string) (Decimal, error) {
	m := decimalRE.FindStringSubmatch(s)
	if m == nil {
		return Decimal{}, &SyntaxError{Kind: "decimal", Text: s}
	}
	return fromCanonical(m[1] == "-", canonical(m[2])), nil
}

// MustParseDecimal is like ParseDecimal but panics if s is invalid.
func MustParseDecimal(s string) Decimal {
	x, err := ParseDecimal(s)
	if err != nil {
		panic(err)
	}
	return x
}

// NewDecimal creates a Decimal with an integer value.
func NewDecimal(v int64) Decimal {
	if v < 0 {
		// Avoid negating math.MinInt64.
		return fromCanonical(true, strings.TrimPrefix(strconv.FormatInt(v, 10), "-"))
	}
	return fromCanonical(false, strconv.FormatInt(v, 10))
}

// ok replaces the zero value with a properly initialized zero.
func (x Decimal) ok() Decimal {
	if x.mag == "" {
		return zero
	}
	return x
}

// parts returns the integer and fractional digits of the magnitude.
func (x Decimal) parts() (string, string) {
	x = x.ok()
	if x.fracLen == 0 {
		return x.mag, ""
	}
	return x.mag[:x.intLen], x.mag[x.intLen+1:]
}

// String returns the canonical representation of x.
func (x Decimal) String() string {
	x = x.ok()
	if x.neg {
		return "-" + x.mag
	}
	return x.mag
}

// Sign returns -1, 0, or +1 according to the sign of x.
func (x Decimal) Sign() int {
	x = x.ok()
	switch {
	case x.neg:
		return -1
	case x.mag == "0":
		return 0
	default:
		return 1
	}
}

// IsZero returns whether x is 0.
func (x Decimal) IsZero() bool {
	return x.Sign() == 0
}

// IsInteger returns whether x has no fractional part.
func (x Decimal) IsInteger() bool {
	return x.ok().integer
}

// IsEven returns whether x is an even integer.
func (x Decimal) IsEven() bool {
	return x.ok().even
}

// IntLen returns the number of digits in the integer part of x. It is at
// least 1.
func (x Decimal) IntLen() int {
	return x.ok().intLen
}

// FracLen returns the number of digits in the fractional part of x.
func (x Decimal) FracLen() int {
	return x.ok().fracLen
}

// Equal returns whether x and y have the same value.
func (x Decimal) Equal(y Decimal) bool {
	return x.ok() == y.ok()
}

// Hash returns a hash of x consistent with Equal.
func (x Decimal) Hash() uint64 {
	return murmur3.Sum64([]byte(x.String()))
}

// Cmp compares x and y, returning -1 if x < y, 0 if x == y, and +1 if x > y.
func (x Decimal) Cmp(y Decimal) int {
	x, y = x.ok(), y.ok()
	if x.neg != y.neg {
		if x.neg {
			return -1
		}
		return 1
	}
	c := cmpMag(x, y)
	if x.neg {
		return -c
	}
	return c
}

// cmpMag compares the magnitudes of x and y. Canonical magnitudes with equal
// integer lengths order the same lexicographically as numerically.
func cmpMag(x, y Decimal) int {
	switch {
	case x.intLen < y.intLen:
		return -1
	case x.intLen > y.intLen:
		return 1
	}
	return strings.Compare(x.mag, y.mag)
}

// Neg returns -x.
func (x Decimal) Neg() Decimal {
	x = x.ok()
	return fromCanonical(!x.neg, x.mag)
}

// Abs returns |x|.
func (x Decimal) Abs() Decimal {
	x = x.ok()
	return fromCanonical(false, x.mag)
}

// Add returns x + y.
func (x Decimal) Add(y Decimal) Decimal {
	x, y = x.ok(), y.ok()
	if x.neg != y.neg {
		return x.Sub(y.Neg())
	}
	il, fl := max(x.intLen, y.intLen), max(x.fracLen, y.fracLen)
	r := sum(decimalDigits(x, il, fl), decimalDigits(y, il, fl)).normalize()
	return r.decimal(fl, x.neg)
}

// Sub returns x - y.
func (x Decimal) Sub(y Decimal) Decimal {
	x, y = x.ok(), y.ok()
	switch {
	case !x.neg && y.neg:
		return x.Add(y.Neg())
	case x.neg && !y.neg:
		return y.Add(x.Neg()).Neg()
	case x.neg && y.neg:
		return y.Neg().Sub(x.Neg())
	}
	// Both operands are non-negative here.
	neg := false
	if x.Cmp(y) < 0 {
		x, y = y, x
		neg = true
	}
	il, fl := max(x.intLen, y.intLen), max(x.fracLen, y.fracLen)
	r := sub(decimalDigits(x, il, fl), decimalDigits(y, il, fl)).normalize()
	return r.decimal(fl, neg)
}

// Mul returns x * y. The result is exact.
func (x Decimal) Mul(y Decimal) Decimal {
	x, y = x.ok(), y.ok()
	r := mul(decimalDigits(x, 0, 0), decimalDigits(y, 0, 0))
	return r.decimal(x.fracLen+y.fracLen, x.neg != y.neg)
}

// Quo returns x / y truncated to prec fractional digits. A negative prec is
// treated as 0.
func (x Decimal) Quo(y Decimal, prec int) (Decimal, error) {
	x, y = x.ok(), y.ok()
	if y.IsZero() {
		return Decimal{}, &OpError{Op: "/", X: x, Y: y, Err: ErrDivisionByZero}
	}
	if prec < 0 {
		prec = 0
	}
	// Scale both operands to integers, extending the dividend by prec more
	// digits so that the integer quotient carries prec fractional digits.
	m := max(x.fracLen, y.fracLen)
	q, _ := quo(decimalDigits(x, 0, m+prec), decimalDigits(y, 0, m))
	return q.decimal(prec, x.neg != y.neg), nil
}

// Rem returns x - y*trunc(x/y). The result has the sign of x.
func (x Decimal) Rem(y Decimal) (Decimal, error) {
	x, y = x.ok(), y.ok()
	if y.IsZero() {
		return Decimal{}, &OpError{Op: "%", X: x, Y: y, Err: ErrDivisionByZero}
	}
	q, err := x.Quo(y, 0)
	if err != nil {
		return Decimal{}, err
	}
	return x.Sub(q.Mul(y)), nil
}

// Pow returns x raised to an integer power. Negative exponents produce
// reciprocals truncated to prec fractional digits.
func (x Decimal) Pow(exp Decimal, prec int) (Decimal, error) {
	r, err := Pow(x, exp, prec)
	if err != nil {
		return Decimal{}, err
	}
	// Powers of a Decimal are always Decimals.
	return r.(Decimal), nil
}
