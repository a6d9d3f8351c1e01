package bignum

import "strings"

// digits is an unsigned magnitude as a sequence of decimal digits, least
// significant first. Between operations an element may hold any int; only
// normalize guarantees that every element is in [0, 9].
type digits []int

// decimalDigits converts the magnitude of x to a digit vector with at least
// intLen integer digits and fracLen fractional digits, padding with zeros. The
// decimal point sits after the first max(fracLen, x.fracLen) elements.
func decimalDigits(x Decimal, intLen, fracLen int) digits {
	ip, fp := x.parts()
	if intLen < len(ip) {
		intLen = len(ip)
	}
	if fracLen < len(fp) {
		fracLen = len(fp)
	}
	d := make(digits, 0, intLen+fracLen)
	for i := len(fp); i < fracLen; i++ {
		d = append(d, 0)
	}
	for i := len(fp) - 1; i >= 0; i-- {
		d = append(d, int(fp[i]-'0'))
	}
	for i := len(ip) - 1; i >= 0; i-- {
		d = append(d, int(ip[i]-'0'))
	}
	for i := len(ip); i < intLen; i++ {
		d = append(d, 0)
	}
	return d
}

// decimal reads a normalized digit vector back as a Decimal whose lowest
// fracLen digits are fractional.
func (d digits) decimal(fracLen int, neg bool) Decimal {
	var b strings.Builder
	b.Grow(len(d) + 2)
	n := len(d)
	if n <= fracLen {
		b.WriteByte('0')
	}
	for i := n - 1; i >= fracLen; i-- {
		b.WriteByte(byte('0' + d[i]))
	}
	if fracLen > 0 {
		b.WriteByte('.')
		for i := fracLen - 1; i >= n; i-- {
			b.WriteByte('0')
		}
		for i := min(fracLen, n) - 1; i >= 0; i-- {
			b.WriteByte(byte('0' + d[i]))
		}
	}
	return fromCanonical(neg, canonical(b.String()))
}

// at returns d[i], or 0 past the end of d.
func (d digits) at(i int) int {
	if i < len(d) {
		return d[i]
	}
	return 0
}

// trim removes high zero digits, keeping at least one digit.
func (d digits) trim() digits {
	n := len(d)
	for n > 1 && d[n-1] == 0 {
		n--
	}
	if n == 0 {
		return digits{0}
	}
	return d[:n]
}

// normalize resolves borrows and carries so that every digit is in [0, 9],
// appending digits for any final carry. Panics if the vector represents a
// negative number.
func (d digits) normalize() digits {
	if len(d) == 0 {
		return d
	}
	i := 0
	for ; i < len(d)-1; i++ {
		switch {
		case d[i] < 0:
			borrow := (9 - d[i]) / 10
			d[i] += 10 * borrow
			d[i+1] -= borrow
		case d[i] > 9:
			d[i+1] += d[i] / 10
			d[i] %= 10
		}
	}
	if d[i] < 0 {
		panic("bignum: negative digit vector")
	}
	for d[i] > 9 {
		d = append(d, d[i]/10)
		d[i] %= 10
		i++
	}
	return d
}

// sum adds two digit vectors elementwise. The result is not normalized.
func sum(a, b digits) digits {
	n := max(len(a), len(b))
	r := make(digits, n)
	for i := range r {
		r[i] = a.at(i) + b.at(i)
	}
	return r
}

// sub subtracts b from a elementwise. The result is not normalized. Panics if
// b is greater than a.
func sub(a, b digits) digits {
	if cmpDigits(a, b) < 0 {
		panic("bignum: subtrahend exceeds minuend")
	}
	r := make(digits, max(len(a), len(b)))
	for i := range r {
		r[i] = a.at(i) - b.at(i)
	}
	return r
}

// mulDigit multiplies a by a single digit k, shifted up by shift positions.
// The result is not normalized.
func mulDigit(a digits, k, shift int) digits {
	r := make(digits, shift, shift+len(a))
	for _, v := range a {
		r = append(r, v*k)
	}
	return r
}

// mul is schoolbook long multiplication. Partial products are summed without
// carrying; the result is normalized once at the end.
func mul(a, b digits) digits {
	if len(a) < len(b) {
		a, b = b, a
	}
	r := digits{0}
	for i, k := range b {
		if k == 0 {
			continue
		}
		r = sum(r, mulDigit(a, k, i))
	}
	return r.normalize()
}

// cmpDigits compares the magnitudes of two normalized vectors, ignoring high
// zero digits.
func cmpDigits(a, b digits) int {
	a, b = a.trim(), b.trim()
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// quo divides the integer n by the nonzero integer d using long division. The
// remainder window slides down n one digit at a time; each quotient digit is
// the number of times d can be subtracted from the window.
func quo(n, d digits) (q, r digits) {
	d = d.trim()
	if len(d) == 1 && d[0] == 0 {
		panic("bignum: digit vector division by zero")
	}
	q = make(digits, len(n))
	r = digits{0}
	for i := len(n) - 1; i >= 0; i-- {
		r = append(digits{n[i]}, r...).trim()
		k := 0
		for cmpDigits(r, d) >= 0 {
			r = sub(r, d).normalize().trim()
			k++
		}
		q[i] = k
	}
	return q.trim(), r
}
