package computor

import (
	"github.com/zephyrtronium/computor/bignum"
)

// DefaultMaxDepth is the default limit on nested user function calls.
const DefaultMaxDepth = 256

// Context is a context for evaluating expressions. A Context never changes
// after it is created, but its Lookup and Tracer might not be safe to use
// concurrently.
type Context struct {
	prec     int
	lookup   Lookup
	tracer   Tracer
	maxDepth int
}

// ContextOption is an option used when creating a context.
type ContextOption interface {
	ctxOption()
}

type (
	precopt   int
	lookupopt struct{ l Lookup }
	traceopt  struct{ t Tracer }
	depthopt  int
)

func (precopt) ctxOption()   {}
func (lookupopt) ctxOption() {}
func (traceopt) ctxOption()  {}
func (depthopt) ctxOption()  {}

// Prec sets the number of fractional digits kept by divisions, square roots,
// and negative powers. Negative values are treated as 0.
func Prec(prec int) ContextOption {
	return precopt(prec)
}

// WithLookup sets the variables and user functions available to the context.
func WithLookup(l Lookup) ContextOption {
	return lookupopt{l}
}

// WithTracer sets a tracer to receive each evaluation step. A nil tracer
// disables tracing.
func WithTracer(t Tracer) ContextOption {
	return traceopt{t}
}

// MaxDepth sets the limit on nested user function calls.
func MaxDepth(n int) ContextOption {
	return depthopt(n)
}

// NewContext creates a new evaluation context. If no precision is given, the
// default is bignum.DefaultPrec.
func NewContext(opts ...ContextOption) *Context {
	ctx := Context{
		prec:     bignum.DefaultPrec,
		lookup:   emptyLookup{},
		maxDepth: DefaultMaxDepth,
	}
	return ctx.Clone(opts...)
}

// Clone creates a copy of a context and applies options to it.
func (ctx *Context) Clone(opts ...ContextOption) *Context {
	n := *ctx
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case precopt:
			n.prec = max(int(opt), 0)
		case lookupopt:
			n.lookup = opt.l
			if n.lookup == nil {
				n.lookup = emptyLookup{}
			}
		case traceopt:
			n.tracer = opt.t
		case depthopt:
			n.maxDepth = max(int(opt), 0)
		default:
			panic("computor: unknown option type")
		}
	}
	return &n
}

// Prec returns the number of fractional digits kept by inexact operations.
func (ctx *Context) Prec() int {
	return ctx.prec
}

// Lookup returns the context's variables and user functions.
func (ctx *Context) Lookup() Lookup {
	return ctx.lookup
}

// Eval evaluates a classified expression. An empty expression evaluates to 0.
func (ctx *Context) Eval(lexemes []Lexeme) (bignum.Number, error) {
	return ctx.eval(lexemes, 0)
}

// EvalString tokenizes, classifies, and evaluates src using the context's
// Lookup.
func (ctx *Context) EvalString(src string) (bignum.Number, error) {
	toks, err := Tokenize(src)
	if err != nil {
		return nil, err
	}
	lexemes, err := Classify(toks, ctx.lookup, "")
	if err != nil {
		return nil, err
	}
	return ctx.Eval(lexemes)
}

// EvalString is a shortcut to evaluate an expression in a new context.
func EvalString(src string, opts ...ContextOption) (bignum.Number, error) {
	return NewContext(opts...).EvalString(src)
}

// machine holds the state of one evaluation: the remaining input, the buffer
// of pending operators, functions, and open brackets, and the value stack.
type machine struct {
	ctx   *Context
	depth int
	input []Lexeme
	buf   []Lexeme
	vals  []bignum.Number
}

func (ctx *Context) eval(lexemes []Lexeme, depth int) (bignum.Number, error) {
	m := machine{ctx: ctx, depth: depth, input: lexemes}
	for len(m.input) > 0 {
		lx := m.input[0]
		m.input = m.input[1:]
		if err := m.step(lx); err != nil {
			return nil, err
		}
		m.trace(lx)
	}
	for len(m.buf) > 0 {
		lx := m.popbuf()
		if lx.Kind == OpenBracket {
			return nil, &BracketError{Left: lx.Text}
		}
		if err := m.apply(lx); err != nil {
			return nil, err
		}
		m.trace(lx)
	}
	switch len(m.vals) {
	case 0:
		if len(lexemes) == 0 {
			return bignum.Decimal{}, nil
		}
		return nil, &OperandError{}
	case 1:
		return m.vals[0], nil
	default:
		return nil, &TrailingValuesError{Len: len(m.vals)}
	}
}

// step handles one input lexeme.
func (m *machine) step(lx Lexeme) error {
	switch lx.Kind {
	case DecimalLiteral:
		x, err := bignum.ParseDecimal(lx.Text)
		if err != nil {
			return err
		}
		m.push(x)
	case ComplexLiteral:
		x, err := bignum.ParseNumber(lx.Text)
		if err != nil {
			return err
		}
		m.push(x)
	case Variable:
		if !m.ctx.lookup.ContainsVariable(lx.Text) {
			return &NameError{Name: lx.Text}
		}
		x, err := m.ctx.eval(m.ctx.lookup.LexemesFor(lx.Text), m.depth)
		if err != nil {
			return err
		}
		m.push(x)
	case FunctionParameter:
		// Parameters are substituted before a function body is evaluated.
		return &NameError{Name: lx.Text}
	case Function, OpenBracket:
		m.buf = append(m.buf, lx)
	case UnaryOp, BinaryOp:
		op := operatorFor(lx)
		for len(m.buf) > 0 {
			top := m.buf[len(m.buf)-1]
			if top.Kind != Function && !(isOperator(top) && op.yields(operatorFor(top))) {
				break
			}
			if err := m.apply(m.popbuf()); err != nil {
				return err
			}
		}
		m.buf = append(m.buf, lx)
	case CloseBracket:
		for {
			if len(m.buf) == 0 {
				return &BracketError{Right: lx.Text}
			}
			top := m.popbuf()
			if top.Kind == OpenBracket {
				break
			}
			if err := m.apply(top); err != nil {
				return err
			}
		}
		if len(m.buf) > 0 && m.buf[len(m.buf)-1].Kind == Function {
			if err := m.apply(m.popbuf()); err != nil {
				return err
			}
		}
	default:
		panic("computor: invalid lexeme kind " + lx.Kind.String())
	}
	return nil
}

// apply applies an operator or function from the buffer to the value stack.
func (m *machine) apply(lx Lexeme) error {
	switch lx.Kind {
	case UnaryOp:
		if len(m.vals) < 1 {
			return &OperandError{Op: lx.Text}
		}
		m.push(operatorFor(lx).unary(m.pop()))
	case BinaryOp:
		if len(m.vals) < 2 {
			return &OperandError{Op: lx.Text}
		}
		y := m.pop()
		x := m.pop()
		r, err := operatorFor(lx).binary(x, y, m.ctx.prec)
		if err != nil {
			return err
		}
		m.push(r)
	case Function:
		if len(m.vals) < 1 {
			return &OperandError{Op: lx.Text}
		}
		r, err := m.call(lx.Text, m.pop())
		if err != nil {
			return err
		}
		m.push(r)
	default:
		panic("computor: cannot apply " + lx.Kind.String() + " " + lx.Text)
	}
	return nil
}

// call applies a built-in or user function. A user function's body is
// evaluated one level deeper with the argument in place of each placeholder.
func (m *machine) call(name string, x bignum.Number) (bignum.Number, error) {
	if f := builtins[name]; f != nil {
		return f(x, m.ctx.prec)
	}
	if !m.ctx.lookup.ContainsFunction(name) {
		return nil, &NameError{Name: name}
	}
	if m.depth >= m.ctx.maxDepth {
		return nil, &RecursionError{Func: name, Depth: m.ctx.maxDepth}
	}
	return m.ctx.eval(substitute(m.ctx.lookup.LexemesFor(name), x), m.depth+1)
}

// substitute replaces each placeholder in body with x in brackets.
func substitute(body []Lexeme, x bignum.Number) []Lexeme {
	lit := Literal(x)
	r := make([]Lexeme, 0, len(body)+2)
	for _, lx := range body {
		if lx == Placeholder {
			r = append(r, openLexeme, lit, closeLexeme)
			continue
		}
		r = append(r, lx)
	}
	return r
}

func (m *machine) push(x bignum.Number) {
	m.vals = append(m.vals, x)
}

// pop removes the top value from the stack and returns it.
func (m *machine) pop() bignum.Number {
	r := m.vals[len(m.vals)-1]
	m.vals = m.vals[:len(m.vals)-1]
	return r
}

// popbuf removes the top lexeme from the buffer and returns it.
func (m *machine) popbuf() Lexeme {
	r := m.buf[len(m.buf)-1]
	m.buf = m.buf[:len(m.buf)-1]
	return r
}
