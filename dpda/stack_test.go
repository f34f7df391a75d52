package dpda

import (
	"errors"
	"testing"
)

func TestStackPushPop(t *testing.T) {
	st := NewStack()
	if !st.IsEmpty() {
		t.Fatalf("expected new stack to be empty")
	}
	st.Push(N("S"))
	st.Push(T("a"))
	if st.Size() != 2 {
		t.Errorf("expected stack size 2, is %d", st.Size())
	}
	top, err := st.Peek()
	if err != nil || top != T("a") {
		t.Errorf("expected top to be a, is %v (%v)", top, err)
	}
	if sym, _ := st.Pop(); sym != T("a") {
		t.Errorf("expected to pop a, got %v", sym)
	}
	if sym, _ := st.Pop(); sym != N("S") {
		t.Errorf("expected to pop S, got %v", sym)
	}
	if !st.IsEmpty() {
		t.Errorf("expected stack to be empty after popping all symbols")
	}
}

func TestStackEmptyErrors(t *testing.T) {
	st := NewStack()
	if _, err := st.Pop(); !errors.Is(err, ErrEmptyStack) {
		t.Errorf("expected Pop on empty stack to fail with ErrEmptyStack, got %v", err)
	}
	if _, err := st.Peek(); !errors.Is(err, ErrEmptyStack) {
		t.Errorf("expected Peek on empty stack to fail with ErrEmptyStack, got %v", err)
	}
	if err := st.ReplaceTop([]Symbol{T("a")}); !errors.Is(err, ErrEmptyStack) {
		t.Errorf("expected ReplaceTop on empty stack to fail with ErrEmptyStack, got %v", err)
	}
	if !st.IsEmpty() {
		t.Errorf("failed ReplaceTop must not push anything")
	}
}

func TestStackReplaceTop(t *testing.T) {
	st := NewStack(N("S"), T("b"))
	if s := st.String(); s != "Sb" {
		t.Fatalf("expected stack Sb, is %s", s)
	}
	if err := st.ReplaceTop([]Symbol{T("a"), N("S"), T("b")}); err != nil {
		t.Fatal(err)
	}
	if s := st.String(); s != "aSbb" {
		t.Errorf("expected leftmost symbol of replacement on top: aSbb, is %s", s)
	}
	if err := st.ReplaceTop(nil); err != nil {
		t.Fatal(err)
	}
	if s := st.String(); s != "Sbb" {
		t.Errorf("expected empty replacement to pop top: Sbb, is %s", s)
	}
}

func TestStackCopyIsIndependent(t *testing.T) {
	st := NewStack(N("S"))
	cp := st.Copy()
	cp.Push(T("a"))
	if st.Size() != 1 || cp.Size() != 2 {
		t.Errorf("expected copy to be independent, sizes are %d and %d", st.Size(), cp.Size())
	}
	syms := st.Symbols()
	syms[0] = T("x")
	if top, _ := st.Peek(); top != N("S") {
		t.Errorf("modifying Symbols() must not change the stack")
	}
	if NewStack().String() != "e" {
		t.Errorf("expected empty stack to render as e")
	}
}
