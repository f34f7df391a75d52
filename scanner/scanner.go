/*
Package scanner defines an interface for scanners splitting automaton input into
tokens, together with a lexmachine-backed implementation.

An Alphabet is compiled once from the terminal names of a rule set. Every terminal
becomes a literal and '$' is the end-marker. Any other input, blanks included,
is returned as a token of type pushdown.Illegal, leaving it to the automaton to
reject it. Adjacent illegal bytes are joined into a single token.

    A, err := scanner.NewAlphabet([]string{"a", "b"})
    tokens, err := A.Tokenize("aabb$")

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/npillmayer/pushdown"
	"github.com/npillmayer/schuko/tracing"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// tracer traces with key 'pushdown.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("pushdown.scanner")
}

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() pushdown.Token
	SetErrorHandler(func(error))
}

// Default error reporting function for scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// --- Alphabet --------------------------------------------------------------

// Alphabet is a compiled lexer for a set of terminals. Terminal i (0-based) is
// reported with token type i+1. An Alphabet may be shared between goroutines;
// each scanner it creates must not.
type Alphabet struct {
	lexer     *lexmachine.Lexer
	terminals []string
}

// NewAlphabet creates and compiles a lexer for a list of terminals. It returns an
// error if a terminal is empty or collides with the end-marker, or if compiling
// the DFA failed.
func NewAlphabet(terminals []string) (*Alphabet, error) {
	A := &Alphabet{
		lexer:     lexmachine.NewLexer(),
		terminals: append([]string(nil), terminals...),
	}
	A.lexer.Add([]byte(`\$`), MakeToken("$", int(pushdown.EndMarker)))
	for i, lit := range terminals {
		if lit == "" || lit == "$" {
			return nil, fmt.Errorf("illegal terminal %q", lit)
		}
		A.lexer.Add([]byte(quote(lit)), MakeToken(lit, i+1))
	}
	A.lexer.Add([]byte(`.`), MakeToken("illegal", int(pushdown.Illegal)))
	if err := A.lexer.Compile(); err != nil {
		tracer().Errorf("error compiling DFA: %v", err)
		return nil, err
	}
	return A, nil
}

// Terminals returns the terminal names in token type order.
func (A *Alphabet) Terminals() []string {
	return append([]string(nil), A.terminals...)
}

// Scanner creates a scanner for a given input. The scanner implements the
// Tokenizer interface.
func (A *Alphabet) Scanner(input string) (*LMScanner, error) {
	text := []byte(input)
	s, err := A.lexer.Scanner(text)
	if err != nil {
		return nil, err
	}
	return &LMScanner{scanner: s, text: text, Error: logError}, nil
}

// Tokenize scans a complete input and returns its tokens, excluding EOF.
// A run of illegal input, e.g. the bytes of a multi-byte rune, results in a
// single Illegal token.
func (A *Alphabet) Tokenize(input string) ([]pushdown.Token, error) {
	scan, err := A.Scanner(input)
	if err != nil {
		return nil, err
	}
	var tokens []pushdown.Token
	for {
		token := scan.NextToken()
		if token.TokType() == pushdown.EOF {
			break
		}
		if n := len(tokens); n > 0 && token.TokType() == pushdown.Illegal {
			if prev := tokens[n-1]; prev.TokType() == pushdown.Illegal &&
				prev.Span().To() == token.Span().From() {
				span := prev.Span().Extend(token.Span())
				tokens[n-1] = Token{
					kind:   pushdown.Illegal,
					lexeme: input[span.From():span.To()],
					span:   span,
				}
				continue
			}
		}
		tokens = append(tokens, token)
	}
	tracer().Debugf("input %q has %d tokens", input, len(tokens))
	return tokens, nil
}

// quote escapes every rune of a literal which might carry a meaning in a
// lexmachine regular expression.
func quote(lit string) string {
	var b strings.Builder
	for _, r := range lit {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// --- Scanner ---------------------------------------------------------------

// LMScanner is a scanner type for lexmachine scanners, implementing the
// Tokenizer interface.
type LMScanner struct {
	scanner *lexmachine.Scanner
	text    []byte
	Error   func(error)
}

var _ Tokenizer = (*LMScanner)(nil)

// SetErrorHandler sets an error handler for the scanner.
func (lms *LMScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		lms.Error = logError
		return
	}
	lms.Error = h
}

// NextToken is part of the Tokenizer interface. Input the lexer cannot match is
// reported to the error handler and returned as an Illegal token.
func (lms *LMScanner) NextToken() pushdown.Token {
	tok, err, eof := lms.scanner.Next()
	if eof {
		end := uint64(len(lms.text))
		return Token{kind: pushdown.EOF, span: pushdown.Span{end, end}}
	}
	if err != nil {
		lms.Error(err)
		if ui, is := err.(*machines.UnconsumedInput); is {
			from, to := ui.StartTC, ui.FailTC
			if to <= from {
				to = from + 1
			}
			if to > len(lms.text) {
				to = len(lms.text)
			}
			lms.scanner.TC = to
			return Token{
				kind:   pushdown.Illegal,
				lexeme: string(lms.text[from:to]),
				span:   pushdown.Span{uint64(from), uint64(to)},
			}
		}
		return Token{kind: pushdown.EOF, span: pushdown.Span{uint64(len(lms.text)), uint64(len(lms.text))}}
	}
	token := tok.(*lexmachine.Token)
	return Token{
		kind:   pushdown.TokType(token.Type),
		lexeme: string(token.Lexeme),
		span:   pushdown.Span{uint64(token.TC), uint64(token.TC + len(token.Lexeme))},
	}
}

// --- Tokens ----------------------------------------------------------------

// Token is a very unsophisticated token type.
type Token struct {
	kind   pushdown.TokType
	lexeme string
	span   pushdown.Span
}

var _ pushdown.Token = Token{}

func (t Token) TokType() pushdown.TokType {
	return t.kind
}

func (t Token) Lexeme() string {
	return t.lexeme
}

func (t Token) Span() pushdown.Span {
	return t.span
}

func (t Token) String() string {
	return fmt.Sprintf("%q|%d%s", t.lexeme, t.kind, t.span)
}

// ---------------------------------------------------------------------------

// MakeToken is a pre-defined action which wraps a scanned match into a token.
func MakeToken(name string, id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, name, m), nil
	}
}
