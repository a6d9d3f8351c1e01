package computor

import (
	"io"
	"slices"
	"strings"

	"github.com/zephyrtronium/computor/bignum"
)

// Step is the state of an evaluation after handling one lexeme.
type Step struct {
	// Token is the lexeme just handled: an input lexeme, or an operator or
	// function applied while draining the buffer at the end of the input.
	Token Lexeme
	// Input is the remaining input.
	Input []Lexeme
	// Buffer holds the pending operators, functions, and open brackets,
	// bottom first.
	Buffer []Lexeme
	// Values is the value stack, bottom first.
	Values []bignum.Number
	// Depth is the number of user function calls enclosing the evaluation.
	Depth int
}

// String formats the step as one line: the token, the remaining input, the
// buffer, and the values, separated by bars. Trailing spaces are trimmed.
func (s Step) String() string {
	var b strings.Builder
	b.WriteString(s.Token.Text)
	b.WriteString(" | ")
	join(&b, s.Input)
	b.WriteString(" | ")
	join(&b, s.Buffer)
	b.WriteString(" | ")
	join(&b, s.Values)
	return strings.TrimRight(b.String(), " ")
}

func join[T interface{ String() string }](b *strings.Builder, v []T) {
	for i, x := range v {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(x.String())
	}
}

// Tracer receives evaluation steps.
type Tracer interface {
	Trace(Step)
}

// TracerFunc adapts a function to a Tracer.
type TracerFunc func(Step)

func (f TracerFunc) Trace(s Step) {
	f(s)
}

type writerTracer struct {
	w io.Writer
}

func (t writerTracer) Trace(s Step) {
	io.WriteString(t.w, s.String()+"\n")
}

// WriterTracer returns a Tracer which writes each step to w as one line.
// Write errors are ignored.
func WriterTracer(w io.Writer) Tracer {
	return writerTracer{w}
}

// trace sends the machine's current state to the context's tracer, if any.
func (m *machine) trace(lx Lexeme) {
	if m.ctx.tracer == nil {
		return
	}
	m.ctx.tracer.Trace(Step{
		Token:  lx,
		Input:  slices.Clone(m.input),
		Buffer: slices.Clone(m.buf),
		Values: slices.Clone(m.vals),
		Depth:  m.depth,
	})
}
