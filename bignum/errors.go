package bignum

import (
	"errors"
	"strconv"
)

var (
	// ErrSyntax indicates that a literal does not match the grammar of the
	// numeric kind being parsed.
	ErrSyntax = errors.New("invalid literal")
	// ErrDivisionByZero indicates a division or remainder by zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrUnsupported indicates an operation that is undefined for its
	// operands, e.g. a complex remainder or the square root of a negative
	// Decimal.
	ErrUnsupported = errors.New("unsupported operation")
	// ErrNonIntegerExponent indicates an exponentiation by a Decimal with a
	// fractional part.
	ErrNonIntegerExponent = errors.New("exponent is not an integer")
)

// SyntaxError records a literal that failed to parse. It unwraps to ErrSyntax.
type SyntaxError struct {
	// Kind is the numeric kind being parsed, "decimal" or "complex".
	Kind string
	// Text is the literal.
	Text string
}

func (err *SyntaxError) Error() string {
	return "invalid " + err.Kind + " literal " + strconv.Quote(err.Text)
}

func (err *SyntaxError) Unwrap() error {
	return ErrSyntax
}

// OpError records a failed arithmetic operation. It unwraps to one of
// ErrDivisionByZero, ErrUnsupported, or ErrNonIntegerExponent.
type OpError struct {
	// Op is the operator or function name.
	Op string
	// X is the left or only operand.
	X Number
	// Y is the right operand, or nil for unary operations.
	Y Number
	// Err is the reason for the failure.
	Err error
}

func (err *OpError) Error() string {
	s := err.Op + " " + operand(err.X)
	if err.Y != nil {
		s = operand(err.X) + " " + err.Op + " " + operand(err.Y)
	}
	return err.Err.Error() + ": " + s
}

// operand formats an operand for an error message. Complex operands are
// bracketed so that the message shows the grouping of the operation.
func operand(x Number) string {
	if _, ok := x.(Complex); ok {
		return "(" + x.String() + ")"
	}
	return x.String()
}

func (err *OpError) Unwrap() error {
	return err.Err
}
