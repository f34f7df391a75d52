/*
Package dyck provides a rule set for balanced parentheses, terminated by '$':

    S ➞ ( S ) S  |  ε

The rule set uses the same control states as package anbn. It shows that the
stepping engine does not know about any particular grammar.
*/
package dyck

import (
	"github.com/npillmayer/pushdown/dpda"
)

// Inputs are the sample inputs of the interactive menu.
var Inputs = []string{
	"()$",
	"(())$",
	"()()$",
	"(()())()$",
	"((()))(())$",
}

var (
	open, closing, S = dpda.T("("), dpda.T(")"), dpda.N("S")
)

// RuleSet creates the rule set for balanced parentheses.
func RuleSet() (*dpda.RuleSet, error) {
	rb := dpda.NewRuleSetBuilder("dyck")
	rb.Rule("p", dpda.Epsilon, dpda.Epsilon).Goto("q").Push(S).End()
	rb.Rule("q", open, S).Push(open, S, closing, S).End()
	rb.Rule("q", closing, S).End()
	rb.Rule("q", dpda.EndMarker, S).End()
	rb.Match("q", open, closing)
	rb.Rule("q", dpda.EndMarker, dpda.Epsilon).Goto("q$").Consume().End()
	rb.Rule("q$", dpda.EOF, dpda.Epsilon).Accept().End()
	return rb.Build("p")
}

// Automaton returns a DPDA recognizing balanced parentheses.
func Automaton(opts ...dpda.Option) (*dpda.Automaton, error) {
	rs, err := RuleSet()
	if err != nil {
		return nil, err
	}
	return dpda.New(rs, opts...)
}
