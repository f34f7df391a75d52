package dpda

import (
	"errors"
	"fmt"
)

// Errors signalling a broken rule set or automaton. These are never the result
// of an input being rejected by the language.
var (
	// ErrEmptyStack is returned for Pop/Peek on an empty stack. If it reaches a client
	// of Run, the rule set is malformed.
	ErrEmptyStack = errors.New("empty stack")
	// ErrStackMismatch is returned if a rule is applied to a stack with a different top.
	ErrStackMismatch = errors.New("stack top does not match rule")
	// ErrMalformedRuleSet wraps every problem found when building a rule set.
	ErrMalformedRuleSet = errors.New("malformed rule set")
	// ErrNondeterministic flags rules competing for the same configuration.
	ErrNondeterministic = errors.New("rule set is not deterministic")
	// ErrStepLimit is returned when a run exceeds the configured number of steps,
	// usually due to a nonterminal expanding into itself.
	ErrStepLimit = errors.New("step limit exceeded")
)

// Errors describing why an input has been rejected. Run reports these as part of
// a Result, see Result.Err.
var (
	ErrNoMatchingRule       = errors.New("no matching rule")
	ErrUnexpectedEndOfInput = errors.New("unexpected end of input")
)

// Reason tells why a run has been rejected.
type Reason int

// Reasons for rejection.
const (
	NoReason Reason = iota
	NoMatchingRule
	UnexpectedEndOfInput
)

func (r Reason) String() string {
	switch r {
	case NoReason:
		return "-"
	case NoMatchingRule:
		return "NoMatchingRule"
	case UnexpectedEndOfInput:
		return "UnexpectedEndOfInput"
	}
	return fmt.Sprintf("Reason(%d)", int(r))
}

func (r Reason) err() error {
	switch r {
	case NoMatchingRule:
		return ErrNoMatchingRule
	case UnexpectedEndOfInput:
		return ErrUnexpectedEndOfInput
	}
	return nil
}

// RejectionError describes the configuration at which a run got stuck.
type RejectionError struct {
	Reason Reason
	Step   int           // index of the trace entry recording the rejection
	Config Configuration // the stuck configuration
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("input rejected at step %d in %s: %s", e.Step, e.Config, e.Reason.err())
}

// Unwrap makes RejectionError work with errors.Is.
func (e *RejectionError) Unwrap() error {
	return e.Reason.err()
}

// ruleSetError collects all problems of a rule set under construction.
type ruleSetError struct {
	name     string
	problems []error
}

func (e *ruleSetError) add(err error) {
	e.problems = append(e.problems, err)
}

func (e *ruleSetError) Error() string {
	s := fmt.Sprintf("%s %q", ErrMalformedRuleSet, e.name)
	for _, p := range e.problems {
		s += "\n\t" + p.Error()
	}
	return s
}

// Is lets callers test for ErrMalformedRuleSet as well as for the
// individual problems.
func (e *ruleSetError) Is(target error) bool {
	if target == ErrMalformedRuleSet {
		return true
	}
	for _, p := range e.problems {
		if errors.Is(p, target) {
			return true
		}
	}
	return false
}
