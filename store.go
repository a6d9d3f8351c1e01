package computor

import (
	"regexp"
	"sort"
	"strings"

	"github.com/zephyrtronium/computor/bignum"
)

var (
	nameRE = regexp.MustCompile(`^[a-z]+$`)
	declRE = regexp.MustCompile(`^\s*([A-Za-z]+)\s*\(\s*([A-Za-z]+)\s*\)\s*$`)
)

// Expression is a stored variable or function.
type Expression struct {
	// Source is the text the expression was declared with.
	Source string
	// Lexemes is a single literal for a variable, or the classified body of a
	// function with its parameter replaced by Placeholder.
	Lexemes []Lexeme
	// Func is whether the expression is a function.
	Func bool
	// Param is the declared parameter name of a function.
	Param string
}

// Store is an in-memory set of variables and functions. Variables and
// functions share one namespace. It implements Lookup. The zero value is an
// empty store. A Store is not safe for concurrent use.
type Store struct {
	names map[string]Expression
}

var _ Lookup = (*Store)(nil)

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{names: make(map[string]Expression)}
}

// ValidName returns an error if name cannot be used as a variable, function,
// or parameter name. Names are letters only, case-insensitive, and neither i
// nor a built-in function.
func ValidName(name string) error {
	low := strings.ToLower(name)
	switch {
	case !nameRE.MatchString(low):
		return &DeclarationError{Decl: name, Reason: "names must contain only letters"}
	case low == "i":
		return &DeclarationError{Decl: name, Reason: "i is the imaginary unit"}
	case isBuiltin(low):
		return &DeclarationError{Decl: name, Reason: low + " is a built-in function"}
	}
	return nil
}

// ContainsVariable returns whether name is a variable.
func (s *Store) ContainsVariable(name string) bool {
	e, ok := s.names[name]
	return ok && !e.Func
}

// ContainsFunction returns whether name is a function.
func (s *Store) ContainsFunction(name string) bool {
	e, ok := s.names[name]
	return ok && e.Func
}

// LexemesFor returns the stored lexemes for name.
func (s *Store) LexemesFor(name string) []Lexeme {
	return s.names[name].Lexemes
}

// SetVar evaluates src in ctx with the store as its Lookup and assigns the
// result to a variable, replacing any variable or function with the same
// name. If ctx is nil, SetVar uses a new default context.
func (s *Store) SetVar(name, src string, ctx *Context) (bignum.Number, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if err := ValidName(name); err != nil {
		return nil, err
	}
	if ctx == nil {
		ctx = NewContext()
	}
	v, err := ctx.Clone(WithLookup(s)).EvalString(src)
	if err != nil {
		return nil, err
	}
	s.set(name, Expression{Source: src, Lexemes: []Lexeme{Literal(v)}})
	return v, nil
}

// SetFunc declares a function. decl has the form name(param). The body src is
// classified immediately, so variables it refers to are bound to their current
// values, but functions it calls are resolved when it is evaluated.
func (s *Store) SetFunc(decl, src string) (Expression, error) {
	m := declRE.FindStringSubmatch(decl)
	if m == nil {
		return Expression{}, &DeclarationError{Decl: decl, Reason: "want name(parameter)"}
	}
	name, param := strings.ToLower(m[1]), strings.ToLower(m[2])
	if err := ValidName(name); err != nil {
		return Expression{}, err
	}
	if err := ValidName(param); err != nil {
		return Expression{}, err
	}
	switch {
	case param == name:
		return Expression{}, &DeclarationError{Decl: decl, Reason: "parameter has the function's name"}
	case s.ContainsVariable(param):
		return Expression{}, &DeclarationError{Decl: decl, Reason: "parameter " + param + " is a variable"}
	}
	toks, err := Tokenize(src)
	if err != nil {
		return Expression{}, err
	}
	lexemes, err := Classify(toks, s, param)
	if err != nil {
		return Expression{}, err
	}
	e := Expression{Source: src, Lexemes: lexemes, Func: true, Param: param}
	s.set(name, e)
	return e, nil
}

func (s *Store) set(name string, e Expression) {
	if s.names == nil {
		s.names = make(map[string]Expression)
	}
	s.names[name] = e
}

// Var returns the value of a variable.
func (s *Store) Var(name string) (bignum.Number, bool) {
	e, ok := s.names[strings.ToLower(name)]
	if !ok || e.Func {
		return nil, false
	}
	v, err := bignum.ParseNumber(e.Lexemes[0].Text)
	if err != nil {
		panic("computor: stored variable " + name + " is not a literal: " + err.Error())
	}
	return v, true
}

// Func returns a function.
func (s *Store) Func(name string) (Expression, bool) {
	e, ok := s.names[strings.ToLower(name)]
	if !ok || !e.Func {
		return Expression{}, false
	}
	return e, true
}

// Names returns the sorted names of all variables and functions.
func (s *Store) Names() []string {
	r := make([]string, 0, len(s.names))
	for k := range s.names {
		r = append(r, k)
	}
	sort.Strings(r)
	return r
}

// Reset removes all variables and functions.
func (s *Store) Reset() {
	s.names = make(map[string]Expression)
}

// String lists the variables and functions in name order, one per line, as
// "name = value" or "name(param) = body".
func (s *Store) String() string {
	var b strings.Builder
	for _, k := range s.Names() {
		e := s.names[k]
		b.WriteString(k)
		if e.Func {
			b.WriteString("(" + e.Param + ") = " + strings.TrimSpace(e.Source))
		} else {
			b.WriteString(" = " + e.Lexemes[0].Text)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
