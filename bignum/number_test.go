package bignum_test

import (
	"errors"
	"testing"

	"github.com/zephyrtronium/computor/bignum"
)

func TestParseNumber(t *testing.T) {
	cases := []struct {
		src     string
		want    string
		complex bool
	}{
		{"3", "3", false},
		{"-0.50", "-0.5", false},
		{"2i", "2i", true},
		{"1+i", "1+i", true},
		{"3+0i", "3", false},
		{"0i", "0", false},
	}
	for _, c := range cases {
		x, err := bignum.ParseNumber(c.src)
		if err != nil {
			t.Errorf("%q: %v", c.src, err)
			continue
		}
		if got := x.String(); got != c.want {
			t.Errorf("%q: want %s, got %s", c.src, c.want, got)
		}
		if _, ok := x.(bignum.Complex); ok != c.complex {
			t.Errorf("%q parsed as %T", c.src, x)
		}
	}
	if _, err := bignum.ParseNumber("1..2"); !errors.Is(err, bignum.ErrSyntax) {
		t.Errorf("1..2: want syntax error, got %v", err)
	}
}

func TestNumberPromotion(t *testing.T) {
	d := bignum.MustParseDecimal("3")
	z := bignum.MustParseComplex("2i")
	cases := []struct {
		name string
		f    func() (bignum.Number, error)
		want string
	}{
		{"add", func() (bignum.Number, error) { return bignum.Add(d, z), nil }, "3+2i"},
		{"add-rev", func() (bignum.Number, error) { return bignum.Add(z, d), nil }, "3+2i"},
		{"sub", func() (bignum.Number, error) { return bignum.Sub(d, z), nil }, "3-2i"},
		{"mul", func() (bignum.Number, error) { return bignum.Mul(d, z), nil }, "6i"},
		{"quo", func() (bignum.Number, error) { return bignum.Quo(d, z, bignum.DefaultPrec) }, "-1.5i"},
		{"demote-mul", func() (bignum.Number, error) { return bignum.Mul(z, z), nil }, "-4"},
		{"demote-sub", func() (bignum.Number, error) { return bignum.Sub(z, z), nil }, "0"},
		{"neg", func() (bignum.Number, error) { return bignum.Neg(z), nil }, "-2i"},
		{"decimal-rem", func() (bignum.Number, error) { return bignum.Rem(bignum.NewDecimal(-6), bignum.NewDecimal(5)) }, "-1"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := c.f()
			if err != nil {
				t.Fatal(err)
			}
			if got := r.String(); got != c.want {
				t.Errorf("want %s, got %s", c.want, got)
			}
		})
	}
}

func TestNumberDemotion(t *testing.T) {
	r := bignum.Mul(bignum.MustParseComplex("1+i"), bignum.MustParseComplex("1-i"))
	if _, ok := r.(bignum.Decimal); !ok {
		t.Errorf("(1+i)(1-i) is %T, not Decimal", r)
	}
	if !bignum.Equal(r, bignum.NewComplex(bignum.NewDecimal(2), bignum.Decimal{})) {
		t.Errorf("(1+i)(1-i) = %v does not equal 2+0i", r)
	}
}

func TestNumberRemUnsupported(t *testing.T) {
	_, err := bignum.Rem(bignum.MustParseComplex("2i"), bignum.NewDecimal(2))
	if !errors.Is(err, bignum.ErrUnsupported) {
		t.Errorf("2i %% 2: want unsupported, got %v", err)
	}
	_, err = bignum.Rem(bignum.NewDecimal(2), bignum.MustParseComplex("2i"))
	if !errors.Is(err, bignum.ErrUnsupported) {
		t.Errorf("2 %% 2i: want unsupported, got %v", err)
	}
}

func TestNumberAbs(t *testing.T) {
	cases := []struct {
		x    bignum.Number
		want string
	}{
		{bignum.NewDecimal(-7), "7"},
		{bignum.MustParseComplex("-3+4i"), "5"},
		{bignum.MustParseComplex("2i"), "2"},
	}
	for _, c := range cases {
		r, err := bignum.Abs(c.x, bignum.DefaultPrec)
		if err != nil {
			t.Errorf("abs(%v): %v", c.x, err)
			continue
		}
		if got := r.String(); got != c.want {
			t.Errorf("abs(%v): want %s, got %s", c.x, c.want, got)
		}
	}
}

func TestOpErrorMessage(t *testing.T) {
	cases := []struct {
		name string
		op   func() error
		want string
	}{
		{"decimal", func() error {
			_, err := bignum.Quo(bignum.NewDecimal(1), bignum.Decimal{}, 5)
			return err
		}, "division by zero: 1 / 0"},
		{"complex-left", func() error {
			_, err := bignum.Rem(bignum.MustParseComplex("2+i"), bignum.NewDecimal(2))
			return err
		}, "unsupported operation: (2+i) % 2"},
		{"complex-right", func() error {
			_, err := bignum.Rem(bignum.NewDecimal(3), bignum.MustParseComplex("-2i"))
			return err
		}, "unsupported operation: 3 % (-2i)"},
		{"unary", func() error {
			_, err := bignum.NewDecimal(-4).Sqrt(5)
			return err
		}, "unsupported operation: sqrt -4"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.op()
			if err == nil {
				t.Fatal("no error")
			}
			if got := err.Error(); got != c.want {
				t.Errorf("wrong message: want %q, got %q", c.want, got)
			}
		})
	}
}
