/*
Package anbn provides a rule set for the language { aⁿbⁿ$ | n ≥ 0 },
generated by the grammar

    S ➞ a S b  |  ε

The automaton starts in state p, pushes S and moves to q, where it expands S
depending on the lookahead and matches terminals. Once the stack is empty and the
end-marker has been read, it moves to q$ and accepts at the end of input.

    (p, ε, e) -> (q, S)                push(S)
    (q, a, S) -> (q, a S b)            S -> a S b
    (q, b, S) -> (q, ε)                S -> ε (pop S)
    (q, $, S) -> (q, ε)                S -> ε (pop S)
    (q, a, a) -> (q, ε)                read(a) & pop(a)
    (q, b, b) -> (q, ε)                read(b) & pop(b)
    (q, $, e) -> (q$, ε)               move->q$
    (q$, ⊣, e) -> (finalize)           finalize
*/
package anbn

import (
	"sync"

	"github.com/npillmayer/pushdown/dpda"
)

// Inputs are the sample inputs of the interactive menu.
var Inputs = []string{
	"aabb$",
	"aaabbb$",
	"aaaabbbb$",
	"aaaaabbbbb$",
	"aaaaaabbbbbb$",
}

var (
	a, b, S = dpda.T("a"), dpda.T("b"), dpda.N("S")
)

// Builder returns a builder holding all rules for aⁿbⁿ$. Clients may add rules
// before building, e.g. for experiments with non-determinism.
func Builder() *dpda.RuleSetBuilder {
	rb := dpda.NewRuleSetBuilder("anbn")
	rb.Rule("p", dpda.Epsilon, dpda.Epsilon).Goto("q").Push(S).End()
	rb.Rule("q", a, S).Push(a, S, b).End()
	rb.Rule("q", b, S).End()
	rb.Rule("q", dpda.EndMarker, S).End()
	rb.Match("q", a, b)
	rb.Rule("q", dpda.EndMarker, dpda.Epsilon).Goto("q$").Consume().End()
	rb.Rule("q$", dpda.EOF, dpda.Epsilon).Accept().End()
	return rb
}

var ruleSet struct {
	once sync.Once
	rs   *dpda.RuleSet
	err  error
}

// RuleSet returns the rule set for aⁿbⁿ$. It is built once and shared.
func RuleSet() (*dpda.RuleSet, error) {
	ruleSet.once.Do(func() {
		ruleSet.rs, ruleSet.err = Builder().Build("p")
	})
	return ruleSet.rs, ruleSet.err
}

// Automaton returns a DPDA recognizing aⁿbⁿ$.
func Automaton(opts ...dpda.Option) (*dpda.Automaton, error) {
	rs, err := RuleSet()
	if err != nil {
		return nil, err
	}
	return dpda.New(rs, opts...)
}
