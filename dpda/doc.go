/*
Package dpda implements a deterministic pushdown automaton (DPDA) which records
every configuration it passes through.

Building a Rule Set

Transition rules are specified using a rule set builder. Every rule is keyed by
a control state, a lookahead symbol (or ε) and a stack-top symbol (ε meaning
"stack is empty"). Rules which expand a nonterminal replace the stack top with a
sequence of symbols, leftmost symbol on top.

Example, for the language { aⁿbⁿ$ | n ≥ 0 }:

    b := dpda.NewRuleSetBuilder("anbn")
    b.Rule("p", dpda.Epsilon, dpda.Epsilon).Goto("q").Push(dpda.N("S")).Action("push(S)").End()
    b.Rule("q", dpda.T("a"), dpda.N("S")).Push(dpda.T("a"), dpda.N("S"), dpda.T("b")).End()
    b.Rule("q", dpda.T("b"), dpda.N("S")).End()            // S -> ε
    b.Rule("q", dpda.EndMarker, dpda.N("S")).End()         // S -> ε
    b.Match("q", dpda.T("a"), dpda.T("b"))                  // read(x) & pop(x)
    b.Rule("q", dpda.EndMarker, dpda.Epsilon).Goto("q$").Consume().End()
    b.Rule("q$", dpda.EOF, dpda.Epsilon).Accept().Action("finalize").End()
    rs, err := b.Build("p")

Build checks the rule set for determinism: no two rules may be applicable to
the same configuration. Ambiguous or malformed rule sets are rejected.

Running the Automaton

    A, err := dpda.New(rs)
    result, err := A.Run("aabb$")
    if result.Accepted { … }
    it := result.Trace.Entries()
    for it.Next() {
        fmt.Println(it.Entry())
    }

An error returned from Run indicates a malformed rule set or a run hitting the
step limit. Rejection of an input by the language is not an error, but a result.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dpda

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pushdown.dpda'.
func tracer() tracing.Trace {
	return tracing.Select("pushdown.dpda")
}
