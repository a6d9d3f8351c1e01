package computor

import (
	"sort"

	"github.com/zephyrtronium/computor/bignum"
)

// builtin is a function of one number. prec is the number of fractional
// digits for inexact results.
type builtin func(x bignum.Number, prec int) (bignum.Number, error)

var builtins = map[string]builtin{
	// abs is the absolute value of a real or the modulus of a complex number.
	"abs": func(x bignum.Number, prec int) (bignum.Number, error) {
		r, err := bignum.Abs(x, prec)
		if err != nil {
			return nil, err
		}
		return r, nil
	},
	"sqrt": func(x bignum.Number, prec int) (bignum.Number, error) {
		d, ok := x.(bignum.Decimal)
		if !ok {
			return nil, &bignum.OpError{Op: "sqrt", X: x, Err: bignum.ErrUnsupported}
		}
		r, err := d.Sqrt(prec)
		if err != nil {
			return nil, err
		}
		return r, nil
	},
	// csqrt is like sqrt, but the root of a negative number is imaginary.
	"csqrt": func(x bignum.Number, prec int) (bignum.Number, error) {
		d, ok := x.(bignum.Decimal)
		if !ok {
			return nil, &bignum.OpError{Op: "csqrt", X: x, Err: bignum.ErrUnsupported}
		}
		z, err := bignum.SqrtComplex(d, prec)
		if err != nil {
			return nil, err
		}
		if z.Imag().IsZero() {
			return z.Real(), nil
		}
		return z, nil
	},
}

func isBuiltin(name string) bool {
	_, ok := builtins[name]
	return ok
}

// Builtins returns the sorted names of the built-in functions.
func Builtins() []string {
	r := make([]string, 0, len(builtins))
	for k := range builtins {
		r = append(r, k)
	}
	sort.Strings(r)
	return r
}
