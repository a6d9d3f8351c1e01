package computor

import "strconv"

// NameError is an error indicating a name that is not a function, the
// parameter of the function being declared, or a variable. It implements
// InputError.
type NameError struct {
	// Name is the lowercased name.
	Name string
	// Col is the position of the name, or 0 if it is unknown.
	Col int
}

func (err *NameError) Error() string {
	return errpos(err.Col, "invalid token: undefined name "+strconv.Quote(err.Name))
}

func (err *NameError) Pos() int {
	return err.Col
}

// BracketError is an error indicating unbalanced brackets.
type BracketError struct {
	// Left is the opening bracket when it has no close bracket.
	Left string
	// Right is the closing bracket when it has no open bracket.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return "close bracket " + err.Right + " with no open bracket"
	}
	return "open bracket " + err.Left + " with no close bracket"
}

// OperandError is an error indicating an operator or function applied where
// there are not enough values, e.g. at the end of an expression.
type OperandError struct {
	// Op is the operator or function.
	Op string
}

func (err *OperandError) Error() string {
	if err.Op == "" {
		return "expression has no value"
	}
	return "missing operand for " + strconv.Quote(err.Op)
}

// TrailingValuesError is an error indicating that evaluation left more than
// one value.
type TrailingValuesError struct {
	// Len is the number of values left.
	Len int
}

func (err *TrailingValuesError) Error() string {
	return "remaining buffer contains extra numbers (" + strconv.Itoa(err.Len) + " values)"
}

// RecursionError is an error indicating that user function calls nested too
// deeply, usually because a function refers to itself.
type RecursionError struct {
	// Func is the function whose call exceeded the limit.
	Func string
	// Depth is the limit.
	Depth int
}

func (err *RecursionError) Error() string {
	return "recursion limit of " + strconv.Itoa(err.Depth) + " exceeded calling " + err.Func
}

// DeclarationError is an error indicating an invalid variable or function
// declaration.
type DeclarationError struct {
	// Decl is the declared name or function signature.
	Decl string
	// Reason describes the problem.
	Reason string
}

func (err *DeclarationError) Error() string {
	return "invalid declaration " + strconv.Quote(err.Decl) + ": " + err.Reason
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	if pos <= 0 {
		return msg
	}
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information.
type InputError interface {
	error
	// Pos returns the 1-based rune column of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*NameError)(nil)
)
