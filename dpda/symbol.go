package dpda

import "fmt"

// Kind is the category of a grammar symbol.
type Kind uint8

// Symbol kinds. Only terminals and nonterminals may be pushed onto a stack.
const (
	EpsilonKind Kind = iota
	TerminalKind
	NonterminalKind
	EndMarkerKind
	EOFKind
)

func (k Kind) String() string {
	switch k {
	case EpsilonKind:
		return "epsilon"
	case TerminalKind:
		return "terminal"
	case NonterminalKind:
		return "nonterminal"
	case EndMarkerKind:
		return "end-marker"
	case EOFKind:
		return "eof"
	}
	return fmt.Sprintf("kind(%d)", k)
}

// Symbol is an atomic unit of input and stack alphabets. Symbols are values and
// are compared with ==. Create terminals with T and nonterminals with N.
type Symbol struct {
	kind Kind
	name string
}

// Pre-defined symbols.
var (
	// Epsilon is the empty symbol ε. As a lookahead it matches any input without
	// examining it, as a stack top it denotes the empty stack.
	Epsilon = Symbol{kind: EpsilonKind}
	// EndMarker is the symbol '$' terminating well-formed input.
	EndMarker = Symbol{kind: EndMarkerKind, name: "$"}
	// EOF is the lookahead once the input is exhausted.
	EOF = Symbol{kind: EOFKind}
)

// T creates a terminal symbol.
func T(name string) Symbol {
	if name == "" {
		panic("terminal symbol must have a name")
	}
	return Symbol{kind: TerminalKind, name: name}
}

// N creates a nonterminal symbol.
func N(name string) Symbol {
	if name == "" {
		panic("nonterminal symbol must have a name")
	}
	return Symbol{kind: NonterminalKind, name: name}
}

// Kind returns the category of a symbol.
func (s Symbol) Kind() Kind {
	return s.kind
}

// Name returns the name of a terminal or nonterminal, "$" for the end-marker
// and "" otherwise.
func (s Symbol) Name() string {
	return s.name
}

func (s Symbol) IsTerminal() bool {
	return s.kind == TerminalKind
}

func (s Symbol) IsNonterminal() bool {
	return s.kind == NonterminalKind
}

func (s Symbol) IsEpsilon() bool {
	return s.kind == EpsilonKind
}

// IsStackSymbol is true for symbols which may be pushed onto a stack.
func (s Symbol) IsStackSymbol() bool {
	return s.kind == TerminalKind || s.kind == NonterminalKind
}

// IsConcrete is true for lookaheads denoting an actual input symbol,
// i.e. terminals and the end-marker.
func (s Symbol) IsConcrete() bool {
	return s.kind == TerminalKind || s.kind == EndMarkerKind
}

func (s Symbol) String() string {
	switch s.kind {
	case EpsilonKind:
		return "ε"
	case EOFKind:
		return "⊣"
	}
	return s.name
}

// symbolComparator orders symbols by kind first, then by name.
func symbolComparator(a, b interface{}) int {
	s1, s2 := a.(Symbol), b.(Symbol)
	switch {
	case s1.kind < s2.kind:
		return -1
	case s1.kind > s2.kind:
		return 1
	case s1.name < s2.name:
		return -1
	case s1.name > s2.name:
		return 1
	}
	return 0
}
