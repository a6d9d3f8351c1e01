package computor

import "github.com/zephyrtronium/computor/bignum"

type assoc int

const (
	leftAssoc assoc = iota
	rightAssoc
)

// operator describes the precedence of an operator lexeme and how to apply
// it. Exactly one of unary and binary is set.
type operator struct {
	prec   int
	assoc  assoc
	unary  func(x bignum.Number) bignum.Number
	binary func(x, y bignum.Number, prec int) (bignum.Number, error)
}

var unops = map[string]operator{
	"+": {prec: 3, assoc: rightAssoc, unary: func(x bignum.Number) bignum.Number { return x }},
	"-": {prec: 3, assoc: rightAssoc, unary: bignum.Neg},
}

var binops = map[string]operator{
	"+": {prec: 1, binary: exact(bignum.Add)},
	"-": {prec: 1, binary: exact(bignum.Sub)},
	"*": {prec: 2, binary: exact(bignum.Mul)},
	"/": {prec: 2, binary: bignum.Quo},
	"%": {prec: 2, binary: func(x, y bignum.Number, _ int) (bignum.Number, error) { return bignum.Rem(x, y) }},
	"^": {prec: 2, assoc: rightAssoc, binary: pow},
}

// exact adapts an operation which cannot fail and needs no precision.
func exact(f func(x, y bignum.Number) bignum.Number) func(x, y bignum.Number, prec int) (bignum.Number, error) {
	return func(x, y bignum.Number, _ int) (bignum.Number, error) {
		return f(x, y), nil
	}
}

// pow raises x to a real integer power. Complex exponents are unsupported.
func pow(x, y bignum.Number, prec int) (bignum.Number, error) {
	e, ok := y.(bignum.Decimal)
	if !ok {
		return nil, &bignum.OpError{Op: "^", X: x, Y: y, Err: bignum.ErrUnsupported}
	}
	return bignum.Pow(x, e, prec)
}

// operatorFor returns the operator for an operator lexeme. Panics if lx is
// not a known operator.
func operatorFor(lx Lexeme) operator {
	var op operator
	var ok bool
	switch lx.Kind {
	case UnaryOp:
		op, ok = unops[lx.Text]
	case BinaryOp:
		op, ok = binops[lx.Text]
	}
	if !ok {
		panic("computor: unknown " + lx.Kind.String() + " " + lx.Text)
	}
	return op
}

// isOperator returns whether lx is a unary or binary operator.
func isOperator(lx Lexeme) bool {
	return lx.Kind == UnaryOp || lx.Kind == BinaryOp
}

// yields returns whether an operator already on the buffer must be applied
// before op is pushed.
func (op operator) yields(top operator) bool {
	return top.prec > op.prec || top.prec == op.prec && op.assoc == leftAssoc
}
