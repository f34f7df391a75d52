package dpda

import (
	"fmt"
)

// RuleSetBuilder is a builder type for rule sets. Clients add rules one at a
// time, then call Build.
//
//    b := dpda.NewRuleSetBuilder("G")
//    b.Rule("q", dpda.T("a"), dpda.N("S")).Push(dpda.T("a"), dpda.N("S"), dpda.T("b")).End()
//
// A rule stays in its state unless Goto is called, and does not touch the input
// unless Consume is called.
type RuleSetBuilder struct {
	name  string
	rules []*Rule
}

// NewRuleSetBuilder creates a builder for a rule set.
func NewRuleSetBuilder(name string) *RuleSetBuilder {
	return &RuleSetBuilder{name: name}
}

// RuleBuilder configures a single rule. Finish it with End.
type RuleBuilder struct {
	b *RuleSetBuilder
	r *Rule
}

// Rule starts a new rule for (state, lookahead, top). Use Epsilon as lookahead
// for rules not examining the input, and as top for rules applying to the empty stack.
func (b *RuleSetBuilder) Rule(state string, la Symbol, top Symbol) *RuleBuilder {
	return &RuleBuilder{
		b: b,
		r: &Rule{state: state, la: la, top: top, next: state},
	}
}

// Match adds a read-and-pop rule (state, t, t) -> (state, ε) for every terminal t.
func (b *RuleSetBuilder) Match(state string, terminals ...Symbol) *RuleSetBuilder {
	for _, t := range terminals {
		b.Rule(state, t, t).Consume().End()
	}
	return b
}

// Goto sets the control state after the rule has fired.
func (rb *RuleBuilder) Goto(state string) *RuleBuilder {
	rb.r.next = state
	return rb
}

// Push sets the sequence replacing the stack top; syms[0] will be the new top.
func (rb *RuleBuilder) Push(syms ...Symbol) *RuleBuilder {
	rb.r.rhs = append(rb.r.rhs, syms...)
	return rb
}

// Consume lets the rule advance the input by one symbol.
func (rb *RuleBuilder) Consume() *RuleBuilder {
	rb.r.consumes = true
	return rb
}

// Accept lets the rule terminate a run as accepted.
func (rb *RuleBuilder) Accept() *RuleBuilder {
	rb.r.accepts = true
	return rb
}

// Action sets a label for the rule, replacing the generated default.
func (rb *RuleBuilder) Action(label string) *RuleBuilder {
	rb.r.action = label
	return rb
}

// End adds the rule to the rule set under construction.
func (rb *RuleBuilder) End() *RuleSetBuilder {
	rb.r.serial = len(rb.b.rules)
	rb.b.rules = append(rb.b.rules, rb.r)
	return rb.b
}

// Build validates the rules and creates a rule set with the given initial
// control state. All problems found are reported together, as an error matching
// ErrMalformedRuleSet (and ErrNondeterministic, if applicable) with errors.Is.
func (b *RuleSetBuilder) Build(initial string) (*RuleSet, error) {
	rs := newRuleSet(b.name)
	rs.initial = initial
	errs := &ruleSetError{name: b.name}
	rs.addState(initial)
	hasStartRule := false
	for _, r := range b.rules {
		checkRule(r, errs)
		if r.state == initial {
			hasStartRule = true
		}
		rs.addState(r.state)
		rs.addState(r.next)
		if _, ok := rs.tops[r.top]; !ok {
			rs.tops[r.top] = len(rs.tops)
		}
		if _, ok := rs.las[r.la]; !ok {
			rs.las[r.la] = len(rs.las)
		}
		rs.addSymbol(r.la)
		rs.addSymbol(r.top)
		for _, sym := range r.rhs {
			rs.addSymbol(sym)
		}
		rs.rules = append(rs.rules, r)
	}
	if !hasStartRule {
		errs.add(fmt.Errorf("no rule for initial state %q", initial))
	}
	rs.index(errs)
	if len(errs.problems) > 0 {
		tracer().Errorf("%v", errs)
		return nil, errs
	}
	tracer().Debugf("rule set %s has %d rules and %d states", rs.name, len(rs.rules), len(rs.stateList))
	return rs, nil
}

func checkRule(r *Rule, errs *ruleSetError) {
	complain := func(format string, args ...interface{}) {
		errs.add(fmt.Errorf("rule %d %s: %s", r.serial, keyString(r), fmt.Sprintf(format, args...)))
	}
	if r.state == "" || r.next == "" {
		complain("control states must be named")
	}
	for _, sym := range []Symbol{r.la, r.top} {
		if sym.IsTerminal() && sym.name == EndMarker.name {
			complain("terminal %q collides with the end-marker", sym.name)
		}
	}
	switch r.top.kind {
	case EpsilonKind, NonterminalKind:
	case TerminalKind:
		if r.la != r.top || !r.consumes {
			complain("terminal %s on stack top must be read from the input", r.top)
		}
	default:
		complain("%s cannot be a stack symbol", r.top.kind)
	}
	if r.la.kind == NonterminalKind {
		complain("nonterminal %s cannot be a lookahead", r.la)
	}
	if r.consumes && !r.la.IsConcrete() {
		complain("rule consumes input, but lookahead is %s", r.la)
	}
	for _, sym := range r.rhs {
		if !sym.IsStackSymbol() {
			complain("%s cannot be pushed onto the stack", sym.kind)
		} else if sym.IsTerminal() && sym.name == EndMarker.name {
			complain("terminal %q collides with the end-marker", sym.name)
		}
	}
}
