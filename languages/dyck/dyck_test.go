package dyck

import (
	"testing"

	"github.com/npillmayer/pushdown/dpda"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestBalanced(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pushdown.dpda")
	defer teardown()
	//
	A, err := Automaton()
	if err != nil {
		t.Fatal(err)
	}
	for _, input := range append(Inputs, "$", "((()))$") {
		result, err := A.Run(input)
		if err != nil {
			t.Fatal(err)
		}
		if !result.Accepted {
			t.Errorf("valid input %q not accepted: %s", input, result)
		}
	}
}

func TestUnbalanced(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pushdown.dpda")
	defer teardown()
	//
	A, err := Automaton()
	if err != nil {
		t.Fatal(err)
	}
	var inputs = []struct {
		input  string
		reason dpda.Reason
	}{
		{"(", dpda.UnexpectedEndOfInput},
		{"($", dpda.NoMatchingRule},
		{")($", dpda.NoMatchingRule},
		{"(()$", dpda.NoMatchingRule},
		{"())$", dpda.NoMatchingRule},
		{"()", dpda.UnexpectedEndOfInput},
		{"(a)$", dpda.NoMatchingRule},
		{"( )$", dpda.NoMatchingRule},
	}
	for _, x := range inputs {
		result, err := A.Run(x.input)
		if err != nil {
			t.Fatal(err)
		}
		if result.Accepted {
			t.Errorf("invalid input %q accepted", x.input)
		} else if result.Reason != x.reason {
			t.Errorf("%q: expected rejection with %s, is %s", x.input, x.reason, result)
		}
	}
}

func TestExpansion(t *testing.T) {
	A, err := Automaton()
	if err != nil {
		t.Fatal(err)
	}
	result, err := A.Run("()$")
	if err != nil {
		t.Fatal(err)
	}
	e, _ := result.Trace.At(2)
	if e.Config.StackString() != "(S)S" || e.Action != "S -> ( S ) S" {
		t.Errorf("expected expansion S -> ( S ) S, have %s %s", e.Config.StackString(), e.Action)
	}
}
