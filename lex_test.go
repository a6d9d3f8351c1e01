package computor

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTokenize(t *testing.T) {
	cases := []struct {
		src    string
		tokens []Token
	}{
		// spaces
		{"", nil},
		{" \t \r\n ", nil},
		// numbers
		{"0", []Token{{"0", 1}}},
		{"9876543210", []Token{{"9876543210", 1}}},
		{"1 0", []Token{{"1", 1}, {"0", 3}}},
		{"1.25", []Token{{"1.25", 1}}},
		{"007.500", []Token{{"007.500", 1}}},
		{"-1", []Token{{"-", 1}, {"1", 2}}},
		{"2i", []Token{{"2i", 1}}},
		{"2.5I", []Token{{"2.5I", 1}}},
		{"2in", []Token{{"2", 1}, {"in", 2}}},
		{"2x", []Token{{"2", 1}, {"x", 2}}},
		{"2i*i", []Token{{"2i", 1}, {"*", 3}, {"i", 4}}},
		// names
		{"x", []Token{{"x", 1}}},
		{"varA", []Token{{"varA", 1}}},
		{"abs(x)", []Token{{"abs", 1}, {"(", 4}, {"x", 5}, {")", 6}}},
		{"x2", []Token{{"x", 1}, {"2", 2}}},
		// operators and brackets
		{"+-*/%^()", []Token{{"+", 1}, {"-", 2}, {"*", 3}, {"/", 4}, {"%", 5}, {"^", 6}, {"(", 7}, {")", 8}}},
		{" 8 * 3 % 5 ", []Token{{"8", 2}, {"*", 4}, {"3", 6}, {"%", 8}, {"5", 10}}},
		{"2+--3", []Token{{"2", 1}, {"+", 2}, {"-", 3}, {"-", 4}, {"3", 5}}},
		{"(2+i)*(-2i)", []Token{{"(", 1}, {"2", 2}, {"+", 3}, {"i", 4}, {")", 5}, {"*", 6}, {"(", 7}, {"-", 8}, {"2i", 9}, {")", 11}}},
		// columns count runes
		{" 1", []Token{{"1", 2}}},
	}
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			got, err := Tokenize(c.src)
			if err != nil {
				t.Fatalf("tokenizing %q: %v", c.src, err)
			}
			if diff := cmp.Diff(c.tokens, got); diff != "" {
				t.Errorf("tokenizing %q (-want +got):\n%s", c.src, diff)
			}
		})
	}
}

func TestTokenizeErrors(t *testing.T) {
	cases := []struct {
		src  string
		text string
		kind string
		col  int
	}{
		{"$", "$", "", 1},
		{"1 + $", "$", "", 5},
		{"1.", "1.", "number", 2},
		{"1.x", "1.", "number", 2},
		{"1.5.2", ".", "", 4},
		{".5", ".", "", 1},
		{"2,5", ",", "", 2},
		{"π", "π", "", 1},
		{"x = 2", "=", "", 3},
		{"[1]", "[", "", 1},
	}
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			toks, err := Tokenize(c.src)
			if err == nil {
				t.Fatalf("tokenizing %q gave %v with no error", c.src, toks)
			}
			if toks != nil {
				t.Errorf("tokenizing %q gave tokens %v with error", c.src, toks)
			}
			var lerr *LexError
			if !errors.As(err, &lerr) {
				t.Fatalf("error %#v is not a *LexError", err)
			}
			want := &LexError{Text: c.text, Kind: c.kind, Col: c.col}
			if diff := cmp.Diff(want, lerr); diff != "" {
				t.Errorf("wrong error (-want +got):\n%s", diff)
			}
			var ierr InputError
			if !errors.As(err, &ierr) || ierr.Pos() != c.col {
				t.Errorf("error %v doesn't report position %d", err, c.col)
			}
		})
	}
}

func FuzzTokenize(f *testing.F) {
	f.Add("1+2")
	f.Add("(2.5i - abc)%x^3")
	f.Add("2in 3.x")
	f.Add("1×2")
	f.Fuzz(func(t *testing.T, src string) {
		toks, err := Tokenize(src)
		if err != nil {
			if toks != nil {
				t.Errorf("%q: tokens %v with error %v", src, toks, err)
			}
			return
		}
		pos := 0
		for _, tok := range toks {
			if tok.Text == "" {
				t.Errorf("%q: empty token at %d", src, tok.Pos)
			}
			if tok.Pos <= pos {
				t.Errorf("%q: token %v does not follow column %d", src, tok, pos)
			}
			pos = tok.Pos
		}
	})
}
