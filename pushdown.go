package pushdown

import "fmt"

// --- A general purpose interface for input tokens --------------------------

// TokType is a category type for a Token. Scanners define their own constants,
// with the exception of the few categories every scanner has to share (see below).
type TokType int

// Token categories every tokenizer of this module agrees upon.
const (
	EOF       TokType = -1 // end of input reached
	Illegal   TokType = -2 // input not belonging to the alphabet
	EndMarker TokType = -3 // the end-marker '$'
)

// Tokens represent input tokens. They are produced by a scanner and
// reflect terminals of an automaton's input alphabet.
//
// An example would be a token for a terminal 'a':
//
//    TokType = 1           // identifier for this kind of tokens (scanner specific)
//    Lexeme  = "a"         // lexeme how it appeared in the input stream
//    Span    = 3…4         // occured from byte position 3 in the input stream
//
type Token interface {
	TokType() TokType
	Lexeme() string
	Span() Span
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a run of input bytes. A span denotes
// a start position and the position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

// Extend returns a span covering both s and other.
func (s Span) Extend(other Span) Span {
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
