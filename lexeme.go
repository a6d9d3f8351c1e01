package computor

import (
	"strconv"
	"strings"

	"github.com/zephyrtronium/computor/bignum"
)

// LexemeKind is the semantic kind of a lexeme.
type LexemeKind int

const (
	lexemeNone LexemeKind = iota
	// BinaryOp is an infix operator.
	BinaryOp
	// UnaryOp is a prefix + or -.
	UnaryOp
	// OpenBracket is (.
	OpenBracket
	// CloseBracket is ).
	CloseBracket
	// DecimalLiteral is a real number.
	DecimalLiteral
	// ComplexLiteral is a number with an imaginary part, e.g. 2i or 1-i.
	ComplexLiteral
	// Function is a built-in or user function name.
	Function
	// FunctionParameter is the formal parameter of the function being
	// declared. It always has the text of Placeholder.
	FunctionParameter
	// Variable is a variable reference. Classify inlines variables, so it
	// never emits this kind.
	Variable
)

var lexemeKindNames = [...]string{
	lexemeNone:        "None",
	BinaryOp:          "BinaryOp",
	UnaryOp:           "UnaryOp",
	OpenBracket:       "OpenBracket",
	CloseBracket:      "CloseBracket",
	DecimalLiteral:    "DecimalLiteral",
	ComplexLiteral:    "ComplexLiteral",
	Function:          "Function",
	FunctionParameter: "FunctionParameter",
	Variable:          "Variable",
}

func (k LexemeKind) String() string {
	if k < 0 || int(k) >= len(lexemeKindNames) {
		return "LexemeKind(" + strconv.Itoa(int(k)) + ")"
	}
	return lexemeKindNames[k]
}

// Lexeme is a classified token.
type Lexeme struct {
	Text string
	Kind LexemeKind
}

func (l Lexeme) String() string {
	return l.Text
}

// Placeholder is the lexeme which stands for a function's parameter in its
// stored body.
var Placeholder = Lexeme{Text: "x", Kind: FunctionParameter}

var (
	openLexeme  = Lexeme{Text: "(", Kind: OpenBracket}
	closeLexeme = Lexeme{Text: ")", Kind: CloseBracket}
)

// Literal returns the lexeme for a number.
func Literal(x bignum.Number) Lexeme {
	if _, ok := x.(bignum.Complex); ok {
		return Lexeme{Text: x.String(), Kind: ComplexLiteral}
	}
	return Lexeme{Text: x.String(), Kind: DecimalLiteral}
}

// Lookup provides the variables and functions available to Classify and to
// evaluation.
type Lookup interface {
	// ContainsVariable returns whether name is a variable.
	ContainsVariable(name string) bool
	// ContainsFunction returns whether name is a user function.
	ContainsFunction(name string) bool
	// LexemesFor returns the stored lexemes of a variable or the body of a
	// function. The caller must not modify the result.
	LexemesFor(name string) []Lexeme
}

// emptyLookup is a Lookup with no names.
type emptyLookup struct{}

func (emptyLookup) ContainsVariable(string) bool { return false }
func (emptyLookup) ContainsFunction(string) bool { return false }
func (emptyLookup) LexemesFor(string) []Lexeme   { return nil }

// Classify converts raw tokens to lexemes. Names are case-insensitive.
//
// A + or - is binary when it follows a closing bracket, a literal, or a
// parameter and unary otherwise. A name is, in order of preference, a built-in
// function, the parameter param if it is not empty, a user function from
// lookup, the imaginary unit, or a variable from lookup. Variables are
// replaced with their stored lexemes wrapped in brackets, so they keep the
// value they had when the expression was classified. Any other name is an
// error of type *NameError. lookup may be nil.
func Classify(tokens []Token, lookup Lookup, param string) ([]Lexeme, error) {
	if lookup == nil {
		lookup = emptyLookup{}
	}
	param = strings.ToLower(param)
	r := make([]Lexeme, 0, len(tokens))
	prev := lexemeNone
	for _, tok := range tokens {
		text := strings.ToLower(tok.Text)
		var lx Lexeme
		switch {
		case text == "+", text == "-":
			lx = Lexeme{Text: text, Kind: UnaryOp}
			switch prev {
			case CloseBracket, DecimalLiteral, ComplexLiteral, FunctionParameter, Variable:
				lx.Kind = BinaryOp
			}
		case text == "*", text == "/", text == "%", text == "^":
			lx = Lexeme{Text: text, Kind: BinaryOp}
		case text == "(":
			lx = openLexeme
		case text == ")":
			lx = closeLexeme
		case isBuiltin(text):
			lx = Lexeme{Text: text, Kind: Function}
		case param != "" && text == param:
			lx = Placeholder
		case lookup.ContainsFunction(text):
			lx = Lexeme{Text: text, Kind: Function}
		case text != "" && isDigit(rune(text[0])):
			var err error
			lx, err = numberLexeme(text)
			if err != nil {
				return nil, err
			}
		case text == "i":
			lx = Lexeme{Text: text, Kind: ComplexLiteral}
		case lookup.ContainsVariable(text):
			r = append(r, openLexeme)
			r = append(r, lookup.LexemesFor(text)...)
			r = append(r, closeLexeme)
			prev = CloseBracket
			continue
		default:
			return nil, &NameError{Name: text, Col: tok.Pos}
		}
		r = append(r, lx)
		prev = lx.Kind
	}
	return r, nil
}

// numberLexeme classifies a numeric token as a decimal or complex literal.
func numberLexeme(text string) (Lexeme, error) {
	if strings.HasSuffix(text, "i") {
		if _, err := bignum.ParseComplex(text); err != nil {
			return Lexeme{}, err
		}
		return Lexeme{Text: text, Kind: ComplexLiteral}, nil
	}
	if _, err := bignum.ParseDecimal(text); err != nil {
		return Lexeme{}, err
	}
	return Lexeme{Text: text, Kind: DecimalLiteral}, nil
}
