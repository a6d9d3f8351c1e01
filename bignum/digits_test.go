package bignum

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecimalDigits(t *testing.T) {
	cases := []struct {
		name         string
		x            string
		intLen, frac int
		want         digits
	}{
		{"zero", "0", 0, 0, digits{0}},
		{"int", "123", 0, 0, digits{3, 2, 1}},
		{"frac", "1.25", 0, 0, digits{5, 2, 1}},
		{"pad-int", "1.25", 3, 0, digits{5, 2, 1, 0, 0}},
		{"pad-frac", "1.25", 0, 4, digits{0, 0, 5, 2, 1}},
		{"pad-both", "0.5", 2, 2, digits{0, 5, 0, 0}},
		{"negative", "-42", 0, 1, digits{0, 2, 4}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := decimalDigits(MustParseDecimal(c.x), c.intLen, c.frac)
			if diff := cmp.Diff(c.want, got); diff != "" {
				t.Errorf("wrong digits for %s (-want +got):\n%s", c.x, diff)
			}
		})
	}
}

func TestDigitsDecimal(t *testing.T) {
	cases := []struct {
		name string
		d    digits
		frac int
		neg  bool
		want string
	}{
		{"zero", digits{0}, 0, false, "0"},
		{"negative-zero", digits{0, 0}, 1, true, "0"},
		{"int", digits{3, 2, 1}, 0, false, "123"},
		{"frac", digits{5, 2, 1}, 2, false, "1.25"},
		{"trailing", digits{0, 0, 5, 2, 1}, 4, false, "1.25"},
		{"leading", digits{5, 2, 1, 0, 0}, 2, true, "-1.25"},
		{"short", digits{5}, 3, false, "0.005"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.d.decimal(c.frac, c.neg).String(); got != c.want {
				t.Errorf("wrong decimal: want %s, got %s", c.want, got)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		d    digits
		want digits
	}{
		{"noop", digits{1, 2, 3}, digits{1, 2, 3}},
		{"carry", digits{12, 0}, digits{2, 1}},
		{"carry-chain", digits{10, 9, 9}, digits{0, 0, 0, 1}},
		{"carry-out", digits{81, 81}, digits{1, 9, 8}},
		{"borrow", digits{-1, 1}, digits{9, 0}},
		{"borrow-chain", digits{-1, 0, 1}, digits{9, 9, 0}},
		{"borrow-ten", digits{-10, 2}, digits{0, 1}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := append(digits(nil), c.d...).normalize()
			if diff := cmp.Diff(c.want, got); diff != "" {
				t.Errorf("wrong normalization of %v (-want +got):\n%s", c.d, diff)
			}
		})
	}
}

func TestNormalizeNegative(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("normalizing a negative vector didn't panic")
		}
	}()
	digits{0, -1}.normalize()
}

func TestDigitOps(t *testing.T) {
	num := func(s string) digits { return decimalDigits(MustParseDecimal(s), 0, 0) }
	cases := []struct {
		name string
		op   func(a, b digits) digits
		a, b string
		want string
	}{
		{"sum", func(a, b digits) digits { return sum(a, b).normalize() }, "999", "1", "1000"},
		{"sum-short", func(a, b digits) digits { return sum(a, b).normalize() }, "5", "12345", "12350"},
		{"sub", func(a, b digits) digits { return sub(a, b).normalize() }, "1000", "1", "999"},
		{"sub-equal", func(a, b digits) digits { return sub(a, b).normalize() }, "777", "777", "0"},
		{"mul", mul, "123", "456", "56088"},
		{"mul-zero", mul, "123", "0", "0"},
		{"mul-zeros", mul, "1001", "101", "101101"},
		{"quo", func(a, b digits) digits { q, _ := quo(a, b); return q }, "56088", "456", "123"},
		{"quo-trunc", func(a, b digits) digits { q, _ := quo(a, b); return q }, "100", "7", "14"},
		{"quo-small", func(a, b digits) digits { q, _ := quo(a, b); return q }, "3", "7", "0"},
		{"rem", func(a, b digits) digits { _, r := quo(a, b); return r }, "100", "7", "2"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := c.op(num(c.a), num(c.b)).trim().decimal(0, false).String()
			if got != c.want {
				t.Errorf("%s(%s, %s): want %s, got %s", c.name, c.a, c.b, c.want, got)
			}
		})
	}
}

func TestCmpDigits(t *testing.T) {
	cases := []struct {
		a, b digits
		want int
	}{
		{digits{1}, digits{1}, 0},
		{digits{1, 0, 0}, digits{1}, 0},
		{digits{2}, digits{1}, 1},
		{digits{0, 1}, digits{9}, 1},
		{digits{9}, digits{0, 1}, -1},
		{digits{1, 2}, digits{2, 2}, -1},
	}
	for _, c := range cases {
		if got := cmpDigits(c.a, c.b); got != c.want {
			t.Errorf("cmpDigits(%v, %v): want %d, got %d", c.a, c.b, c.want, got)
		}
	}
}
