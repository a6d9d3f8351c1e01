package computor

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Token is a raw token scanned from an expression.
type Token struct {
	// Text is the token text without surrounding whitespace.
	Text string
	// Pos is the 1-based rune column where the token starts.
	Pos int
}

func (t Token) String() string {
	return t.Text + "@" + strconv.Itoa(t.Pos)
}

// Symbols contains the runes which form single-rune tokens: the operators and
// the brackets.
const Symbols = "+-*/%^()"

type lexer struct {
	src string
	off int
	// col is the 1-based column of the rune at off.
	col int
	buf strings.Builder
}

func lex(src string) *lexer {
	return &lexer{src: src, col: 1}
}

// peek returns the rune at the current offset without consuming it. The
// result is utf8.RuneError with size 0 at the end of the input.
func (l *lexer) peek() (rune, int) {
	return utf8.DecodeRuneInString(l.src[l.off:])
}

// readRune consumes a rune and updates the lexer's position info.
func (l *lexer) readRune() (rune, bool) {
	r, sz := l.peek()
	if sz == 0 {
		return 0, false
	}
	l.off += sz
	l.col++
	return r, true
}

// more returns whether there is input left.
func (l *lexer) more() bool {
	return l.off < len(l.src)
}

// next scans the next token from the input. At the end of the input, the
// result is a zero token and ok is false.
func (l *lexer) next() (tok Token, ok bool, err error) {
	defer l.buf.Reset()
	for l.more() {
		r, sz := l.peek()
		switch {
		case unicode.IsSpace(r):
			l.readRune()
		case isDigit(r):
			tok.Pos = l.col
			if err := l.scanNum(); err != nil {
				return tok, false, err
			}
			tok.Text = l.buf.String()
			return tok, true, nil
		case isLetter(r):
			tok.Pos = l.col
			l.scanName()
			tok.Text = l.buf.String()
			return tok, true, nil
		case strings.ContainsRune(Symbols, r):
			tok.Pos = l.col
			tok.Text = l.src[l.off : l.off+sz]
			l.readRune()
			return tok, true, nil
		default:
			// Write the rune so that it shows up in the error message.
			l.buf.WriteRune(r)
			return tok, false, l.error("", l.col)
		}
	}
	return tok, false, nil
}

// scanNum scans a decimal literal with an optional imaginary unit suffix. The
// suffix belongs to the number only if no further letter follows it, so that
// "2in" scans as 2 followed by the name in.
func (l *lexer) scanNum() error {
	l.scanDigits()
	if r, _ := l.peek(); r == '.' {
		l.readRune()
		l.buf.WriteByte('.')
		if l.scanDigits() == 0 {
			return l.error("number", l.col-1)
		}
	}
	if r, _ := l.peek(); r == 'i' || r == 'I' {
		if l.off+1 < len(l.src) && isLetter(rune(l.src[l.off+1])) {
			return nil
		}
		l.readRune()
		l.buf.WriteRune(r)
	}
	return nil
}

// scanDigits scans a run of decimal digits and returns its length.
func (l *lexer) scanDigits() int {
	n := 0
	for {
		r, _ := l.peek()
		if !isDigit(r) {
			return n
		}
		l.readRune()
		l.buf.WriteRune(r)
		n++
	}
}

func (l *lexer) scanName() {
	for {
		r, _ := l.peek()
		if !isLetter(r) {
			return
		}
		l.readRune()
		l.buf.WriteRune(r)
	}
}

func (l *lexer) error(kind string, col int) error {
	return &LexError{
		Text: l.buf.String(),
		Kind: kind,
		Col:  col,
	}
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isLetter(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z'
}

// Tokenize splits an expression into raw tokens: decimal literals, which may
// carry an imaginary unit suffix, runs of ASCII letters, and the runes in
// Symbols. Whitespace between tokens is discarded. Any other input is an
// error of type *LexError.
func Tokenize(src string) ([]Token, error) {
	var toks []Token
	l := lex(src)
	for {
		tok, ok, err := l.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return toks, nil
		}
		toks = append(toks, tok)
	}
}

// LexError indicates an invalid token. It implements InputError.
type LexError struct {
	// Text is the token the lexer was scanning when the invalid rune was
	// encountered, plus the invalid rune.
	Text string
	// Kind is the type of token the lexer was scanning. This is "number" or
	// the empty string if a token kind hadn't been decided.
	Kind string
	// Col is the column of the invalid rune.
	Col int
}

func (err *LexError) Error() string {
	pos := "column " + strconv.Itoa(err.Col)
	if err.Kind == "" {
		return "expression invalid: bad token at " + pos + ": " + strconv.Quote(err.Text)
	}
	return "expression invalid: bad " + err.Kind + " at " + pos + ": " + strconv.Quote(err.Text)
}

func (err *LexError) Pos() int {
	return err.Col
}
