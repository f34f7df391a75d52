package dpda

import (
	"strings"

	"github.com/emirpasic/gods/stacks/arraystack"
)

// Stack is a LIFO stack of grammar symbols. The zero value is not usable,
// create one with NewStack.
type Stack struct {
	syms *arraystack.Stack
}

// NewStack creates a stack holding syms, where syms[0] ends up on top.
func NewStack(syms ...Symbol) *Stack {
	st := &Stack{syms: arraystack.New()}
	for i := len(syms) - 1; i >= 0; i-- {
		st.syms.Push(syms[i])
	}
	return st
}

// Push puts sym on top of the stack.
func (st *Stack) Push(sym Symbol) {
	st.syms.Push(sym)
}

// Pop removes and returns the top of the stack. It fails with ErrEmptyStack
// if the stack is empty.
func (st *Stack) Pop() (Symbol, error) {
	v, ok := st.syms.Pop()
	if !ok {
		return Epsilon, ErrEmptyStack
	}
	return v.(Symbol), nil
}

// Peek returns the top of the stack without removing it. It fails with ErrEmptyStack
// if the stack is empty.
func (st *Stack) Peek() (Symbol, error) {
	v, ok := st.syms.Peek()
	if !ok {
		return Epsilon, ErrEmptyStack
	}
	return v.(Symbol), nil
}

// IsEmpty is a predicate: is the stack empty?
func (st *Stack) IsEmpty() bool {
	return st.syms.Empty()
}

// Size returns the number of symbols on the stack.
func (st *Stack) Size() int {
	return st.syms.Size()
}

// ReplaceTop pops the top symbol and pushes seq in reverse order, so that seq[0]
// becomes the new top. This is how the right hand side of a production replaces
// its nonterminal.
func (st *Stack) ReplaceTop(seq []Symbol) error {
	if _, err := st.Pop(); err != nil {
		return err
	}
	for i := len(seq) - 1; i >= 0; i-- {
		st.syms.Push(seq[i])
	}
	return nil
}

// Symbols returns the stack contents, top first. The slice is a copy.
func (st *Stack) Symbols() []Symbol {
	vals := st.syms.Values() // LIFO order
	syms := make([]Symbol, len(vals))
	for i, v := range vals {
		syms[i] = v.(Symbol)
	}
	return syms
}

// Copy returns an independent stack with equal contents.
func (st *Stack) Copy() *Stack {
	return NewStack(st.Symbols()...)
}

// String renders the stack top to bottom, "e" for the empty stack.
func (st *Stack) String() string {
	return renderStack(st.Symbols())
}

// renderTop renders a stack top as part of a transition, "e" for the empty stack.
func renderTop(top Symbol) string {
	if top.IsEpsilon() {
		return "e"
	}
	return top.String()
}

func renderStack(syms []Symbol) string {
	if len(syms) == 0 {
		return "e"
	}
	var b strings.Builder
	for _, s := range syms {
		b.WriteString(s.String())
	}
	return b.String()
}
