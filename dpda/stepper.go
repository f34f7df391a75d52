package dpda

import (
	"fmt"

	"github.com/npillmayer/schuko/gconf"
)

// Status is the state of a run.
type Status int

// A run is Running until a rule accepts or no rule applies. Both Accepted and
// Rejected are final.
const (
	Running Status = iota
	Accepted
	Rejected
)

func (s Status) String() string {
	switch s {
	case Running:
		return "Running"
	case Accepted:
		return "Accepted"
	case Rejected:
		return "Rejected"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Step is the outcome of applying a single rule.
type Step struct {
	Config Configuration // configuration after the step; unchanged if rejected
	Rule   *Rule         // rule applied, nil if rejected
	Status Status
	Reason Reason // set if Status is Rejected
}

// Stepper applies rules of a rule set to configurations, one rule per call.
// A Stepper holds no run state and may be used by concurrent runs.
type Stepper struct {
	rules *RuleSet
}

// NewStepper creates a stepper for a rule set.
func NewStepper(rs *RuleSet) *Stepper {
	return &Stepper{rules: rs}
}

// start returns the start configuration for an input tape: initial state,
// cursor 0, empty stack.
func (s *Stepper) start(input *tape) Configuration {
	return Configuration{state: s.rules.initial, input: input}
}

// Step applies the single rule matching configuration c. If no rule matches,
// the step is Rejected: with reason UnexpectedEndOfInput if the input is exhausted,
// NoMatchingRule otherwise. There is no backtracking.
//
// An error is returned only if the stack does not behave as the rule requires,
// which points to a broken rule set or automaton.
func (s *Stepper) Step(c Configuration) (Step, error) {
	la, top := c.Lookahead(), c.top()
	rule, ok := s.rules.Lookup(c.state, la, top)
	if !ok {
		reason := NoMatchingRule
		if la == EOF {
			reason = UnexpectedEndOfInput
		}
		tracer().Debugf("no rule for (%s, %s, %s)", c.state, la, top)
		return Step{Config: c, Status: Rejected, Reason: reason}, nil
	}
	next, err := s.apply(c, rule)
	if err != nil {
		return Step{Config: c, Status: Rejected}, err
	}
	st := Step{Config: next, Rule: rule, Status: Running}
	if rule.accepts {
		st.Status = Accepted
	}
	return st, nil
}

// apply executes rule r for configuration c on a fresh copy of c's stack. A rule
// with a stack top pops it from the stack, which must hold this very symbol.
func (s *Stepper) apply(c Configuration, r *Rule) (Configuration, error) {
	stack := c.Stack()
	if !r.top.IsEpsilon() {
		top, err := stack.Pop()
		if err != nil {
			return c, s.stackError(c, r, err)
		}
		if top != r.top {
			return c, s.stackError(c, r, fmt.Errorf("%w: top is %s", ErrStackMismatch, top))
		}
	}
	for i := len(r.rhs) - 1; i >= 0; i-- {
		stack.Push(r.rhs[i])
	}
	next := Configuration{
		state:  r.next,
		cursor: c.cursor,
		stack:  stack.Symbols(),
		input:  c.input,
	}
	if r.consumes {
		next.cursor++
	}
	return next, nil
}

func (s *Stepper) stackError(c Configuration, r *Rule, err error) error {
	msg := fmt.Sprintf("rule %d %s applied to %s", r.serial, r, c)
	tracer().Errorf("%s: %v", msg, err)
	if gconf.GetBool("panic-on-empty-stack") {
		panic(`DPDA stack is corrupt.

Configuration flag panic-on-empty-stack is set to true. It is aimed at helping
to debug a rule set and do a post-mortem of why the stack got out of sync. If you
did not expect this to panic, please unset panic-on-empty-stack to its default (false).

` + msg)
	}
	return fmt.Errorf("%s: %w", msg, err)
}
