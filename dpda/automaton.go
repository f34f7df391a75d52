package dpda

import (
	"fmt"

	"github.com/npillmayer/pushdown"
	"github.com/npillmayer/pushdown/scanner"
	"golang.org/x/sync/errgroup"
)

// DefaultMaxSteps is the default step limit for a single run.
const DefaultMaxSteps = 1 << 16

// Automaton is a DPDA for a rule set. Runs do not share any mutable state,
// therefore an Automaton may be used by concurrent goroutines.
type Automaton struct {
	rules     *RuleSet
	stepper   *Stepper
	alphabet  *scanner.Alphabet
	terminals []Symbol // terminal for token type i+1
	maxSteps  int
}

// Option configures an automaton.
type Option func(*Automaton)

// MaxSteps limits the number of steps of a single run. A run exceeding the limit
// stops with error ErrStepLimit. n ≤ 0 removes the limit.
func MaxSteps(n int) Option {
	return func(A *Automaton) {
		A.maxSteps = n
	}
}

// New creates an automaton for a rule set. It compiles a scanner for the rule
// set's terminal alphabet, plus the end-marker.
func New(rs *RuleSet, opts ...Option) (*Automaton, error) {
	if rs == nil {
		return nil, fmt.Errorf("automaton needs a rule set: %w", ErrMalformedRuleSet)
	}
	A := &Automaton{
		rules:     rs,
		stepper:   NewStepper(rs),
		terminals: rs.Terminals(),
		maxSteps:  DefaultMaxSteps,
	}
	names := make([]string, len(A.terminals))
	for i, t := range A.terminals {
		names[i] = t.Name()
	}
	var err error
	if A.alphabet, err = scanner.NewAlphabet(names); err != nil {
		return nil, fmt.Errorf("cannot create scanner for rule set %s: %w", rs.Name(), err)
	}
	for _, opt := range opts {
		opt(A)
	}
	return A, nil
}

// Rules returns the rule set of the automaton.
func (A *Automaton) Rules() *RuleSet {
	return A.rules
}

// Stepper returns the stepper of the automaton, for clients wishing to
// drive a run themselves (see Start).
func (A *Automaton) Stepper() *Stepper {
	return A.stepper
}

// Start creates the start configuration for an input.
func (A *Automaton) Start(input string) (Configuration, error) {
	tokens, err := A.alphabet.Tokenize(input)
	if err != nil {
		return Configuration{}, err
	}
	t := &tape{raw: input, tokens: tokens, syms: make([]Symbol, len(tokens))}
	for i, tok := range tokens {
		t.syms[i] = A.symbolFor(tok)
	}
	return A.stepper.start(t), nil
}

func (A *Automaton) symbolFor(tok pushdown.Token) Symbol {
	switch typ := tok.TokType(); {
	case typ == pushdown.EndMarker:
		return EndMarker
	case typ > 0 && int(typ) <= len(A.terminals):
		return A.terminals[typ-1]
	}
	return T(tok.Lexeme()) // not part of the alphabet, no rule will match
}

// Result is the outcome of a run.
type Result struct {
	Accepted bool
	Reason   Reason        // why the input has been rejected
	Step     int           // index of the last trace entry
	Final    Configuration // last configuration reached
	Trace    *Tracer
}

// Err returns a *RejectionError for a rejected run, nil otherwise.
func (r *Result) Err() error {
	if r == nil || r.Accepted || r.Reason == NoReason {
		return nil
	}
	return &RejectionError{Reason: r.Reason, Step: r.Step, Config: r.Final}
}

func (r *Result) String() string {
	if r.Accepted {
		return fmt.Sprintf("accepted after %d steps", r.Step)
	}
	return fmt.Sprintf("rejected at step %d: %s", r.Step, r.Reason)
}

// Run simulates the automaton for an input and returns the result, including the
// complete trace. Rejection of the input is a regular result.
//
// An error is returned if the run hits the step limit or the stack contradicts
// a rule. In this case the result holds the trace up to the failing step, with
// Reason set to NoReason.
func (A *Automaton) Run(input string) (*Result, error) {
	c, err := A.Start(input)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("=== run %q ============================", input)
	trace := NewTracer()
	trace.Record(Entry{Step: 0, Config: c, Action: "-"})
	result := &Result{Trace: trace}
	for n := 1; ; n++ {
		if A.maxSteps > 0 && n > A.maxSteps {
			result.Step, result.Final = n-1, c
			tracer().Errorf("run stopped after %d steps in %s", A.maxSteps, c)
			return result, fmt.Errorf("run of %q: %w (%d)", input, ErrStepLimit, A.maxSteps)
		}
		step, err := A.stepper.Step(c)
		if err != nil {
			result.Step, result.Final = n-1, c
			return result, err
		}
		switch step.Status {
		case Rejected:
			trace.Record(Entry{
				Step:   n,
				Config: c,
				desc:   fmt.Sprintf("(%s, %s, %s) -> reject", c.state, c.Lookahead(), renderTop(c.top())),
				Action: "reject",
			})
			result.Reason, result.Step, result.Final = step.Reason, n, c
			tracer().Infof("input %q rejected at step %d: %s", input, n, step.Reason)
			return result, nil
		case Accepted:
			trace.Record(Entry{Step: n, Config: step.Config, Rule: step.Rule, Action: step.Rule.Action()})
			result.Accepted, result.Step, result.Final = true, n, step.Config
			tracer().Infof("input %q accepted after %d steps", input, n)
			return result, nil
		}
		tracer().Debugf("%3d %-28s %s", n, step.Rule, step.Config)
		trace.Record(Entry{Step: n, Config: step.Config, Rule: step.Rule, Action: step.Rule.Action()})
		c = step.Config
	}
}

// RunAll runs the automaton for a list of inputs concurrently. Results are
// returned in input order. If any run fails with an error, the first such error
// is returned; results of the failing runs may be incomplete.
func (A *Automaton) RunAll(inputs ...string) ([]*Result, error) {
	results := make([]*Result, len(inputs))
	var g errgroup.Group
	for i, input := range inputs {
		i, input := i, input
		g.Go(func() error {
			r, err := A.Run(input)
			results[i] = r
			return err
		})
	}
	err := g.Wait()
	return results, err
}
