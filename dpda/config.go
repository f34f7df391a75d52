package dpda

import (
	"fmt"

	"github.com/npillmayer/pushdown"
)

// tape is the read-only input of a run: the raw input string and its symbols.
// All configurations of a run share a single tape.
type tape struct {
	raw    string
	tokens []pushdown.Token
	syms   []Symbol
}

func (t *tape) len() int {
	if t == nil {
		return 0
	}
	return len(t.syms)
}

// Configuration is a snapshot of a DPDA: control state, input cursor and
// stack contents. Configurations are values and never change once created;
// every step produces a new one.
type Configuration struct {
	state  string
	cursor int
	stack  []Symbol // top first, never modified after construction
	input  *tape
}

// State returns the control state.
func (c Configuration) State() string {
	return c.state
}

// Cursor returns the index of the next unread input symbol, 0 ≤ cursor ≤ |input|.
func (c Configuration) Cursor() int {
	return c.cursor
}

// Lookahead returns the input symbol at the cursor, or EOF if the input is exhausted.
func (c Configuration) Lookahead() Symbol {
	if c.cursor >= c.input.len() {
		return EOF
	}
	return c.input.syms[c.cursor]
}

// Unread returns the input text from the cursor to the end.
func (c Configuration) Unread() string {
	if c.cursor >= c.input.len() {
		return ""
	}
	return c.input.raw[c.input.tokens[c.cursor].Span().From():]
}

// Token returns the input token at the cursor, or nil if the input is exhausted.
func (c Configuration) Token() pushdown.Token {
	if c.cursor >= c.input.len() {
		return nil
	}
	return c.input.tokens[c.cursor]
}

// Stack returns a new stack holding the contents of the configuration's stack.
// Modifying it does not affect the configuration.
func (c Configuration) Stack() *Stack {
	return NewStack(c.stack...)
}

// StackSize returns the number of symbols on the stack.
func (c Configuration) StackSize() int {
	return len(c.stack)
}

// StackString renders the stack top to bottom, "e" for the empty stack.
func (c Configuration) StackString() string {
	return renderStack(c.stack)
}

// top returns the stack top, or ε for an empty stack.
func (c Configuration) top() Symbol {
	if len(c.stack) == 0 {
		return Epsilon
	}
	return c.stack[0]
}

func (c Configuration) String() string {
	unread := c.Unread()
	if unread == "" {
		unread = "e"
	}
	return fmt.Sprintf("(%s, %s, %s)", c.state, unread, c.StackString())
}
