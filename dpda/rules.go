package dpda

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/npillmayer/pushdown/dpda/sparse"
)

// Rule is a transition rule of a DPDA:
//
//    (state, lookahead, top) -> (next, replacement)
//
// A lookahead of ε applies regardless of the input symbol. A top of ε applies to the
// empty stack only. Rules are created by a RuleSetBuilder and are immutable.
type Rule struct {
	serial   int
	state    string
	la       Symbol
	top      Symbol
	next     string
	rhs      []Symbol
	consumes bool
	accepts  bool
	action   string
}

// Serial returns the number of a rule within its rule set, starting at 0.
func (r *Rule) Serial() int {
	return r.serial
}

// State is the control state a rule applies to.
func (r *Rule) State() string {
	return r.state
}

// Lookahead is the input symbol a rule applies to, or ε.
func (r *Rule) Lookahead() Symbol {
	return r.la
}

// Top is the stack-top symbol a rule applies to, or ε for the empty stack.
func (r *Rule) Top() Symbol {
	return r.top
}

// Next is the control state after the rule has been applied.
func (r *Rule) Next() string {
	return r.next
}

// RHS returns a copy of the sequence replacing the stack top, leftmost symbol
// becoming the new top.
func (r *Rule) RHS() []Symbol {
	return append([]Symbol(nil), r.rhs...)
}

// Consumes is true if the rule advances the input cursor.
func (r *Rule) Consumes() bool {
	return r.consumes
}

// Accepts is true if applying the rule terminates the run as accepted.
func (r *Rule) Accepts() bool {
	return r.accepts
}

// Action returns a short label for what the rule does, e.g. "push(S)" or "read(a) & pop(a)".
func (r *Rule) Action() string {
	if r.action != "" {
		return r.action
	}
	switch {
	case r.accepts:
		return "finalize"
	case r.top.IsTerminal() && r.consumes && len(r.rhs) == 0:
		return fmt.Sprintf("read(%s) & pop(%s)", r.la, r.top)
	case r.top.IsNonterminal() && len(r.rhs) == 0:
		return fmt.Sprintf("%s -> ε (pop %s)", r.top, r.top)
	case r.top.IsNonterminal():
		return fmt.Sprintf("%s -> %s", r.top, symbolList(r.rhs))
	case len(r.rhs) > 0:
		return fmt.Sprintf("push(%s)", symbolList(r.rhs))
	case r.next != r.state:
		return "move->" + r.next
	case r.consumes:
		return fmt.Sprintf("read(%s)", r.la)
	}
	return "noop"
}

// String describes a rule as transition, e.g. "(q, a, S) -> (q, a S b)".
func (r *Rule) String() string {
	lhs := fmt.Sprintf("(%s, %s, %s)", r.state, r.la, renderTop(r.top))
	if r.accepts {
		return lhs + " -> (finalize)"
	}
	rhs := "ε"
	if len(r.rhs) > 0 {
		rhs = symbolList(r.rhs)
	}
	return fmt.Sprintf("%s -> (%s, %s)", lhs, r.next, rhs)
}

func symbolList(syms []Symbol) string {
	s := make([]string, len(syms))
	for i, sym := range syms {
		s[i] = sym.String()
	}
	return strings.Join(s, " ")
}

// --- Rule sets -------------------------------------------------------------

// RuleSet is a validated, deterministic table of transition rules. It is read-only
// after construction and may be shared between concurrent runs.
type RuleSet struct {
	name      string
	initial   string
	rules     []*Rule
	states    map[string]int
	stateList []string
	tops      map[Symbol]int // stack-top symbols, including ε
	las       map[Symbol]int // lookahead symbols, including ε
	terminals *treeset.Set
	nonterms  *treeset.Set
	table     *sparse.IntMatrix
}

func newRuleSet(name string) *RuleSet {
	return &RuleSet{
		name:      name,
		states:    make(map[string]int),
		tops:      map[Symbol]int{Epsilon: 0},
		las:       map[Symbol]int{Epsilon: 0},
		terminals: treeset.NewWith(symbolComparator),
		nonterms:  treeset.NewWith(symbolComparator),
		table:     sparse.NewIntMatrix(sparse.DefaultNullValue),
	}
}

// Name returns the name given to the rule set builder.
func (rs *RuleSet) Name() string {
	return rs.name
}

// InitialState returns the control state every run starts in.
func (rs *RuleSet) InitialState() string {
	return rs.initial
}

// Size returns the number of rules.
func (rs *RuleSet) Size() int {
	return len(rs.rules)
}

// Rule returns rule number n, or nil.
func (rs *RuleSet) Rule(n int) *Rule {
	if n < 0 || n >= len(rs.rules) {
		return nil
	}
	return rs.rules[n]
}

// Rules returns all rules in the order they have been defined.
func (rs *RuleSet) Rules() []*Rule {
	return append([]*Rule(nil), rs.rules...)
}

// States returns all control states in order of appearance.
func (rs *RuleSet) States() []string {
	return append([]string(nil), rs.stateList...)
}

// Terminals returns the terminal alphabet, sorted by name.
func (rs *RuleSet) Terminals() []Symbol {
	return symbolsOf(rs.terminals)
}

// Nonterminals returns all nonterminals, sorted by name.
func (rs *RuleSet) Nonterminals() []Symbol {
	return symbolsOf(rs.nonterms)
}

func symbolsOf(set *treeset.Set) []Symbol {
	vals := set.Values()
	syms := make([]Symbol, len(vals))
	for i, v := range vals {
		syms[i] = v.(Symbol)
	}
	return syms
}

// Lookup finds the rule applicable to (state, lookahead, top), where top is ε for
// an empty stack. Rules for a concrete lookahead take precedence over ε-lookahead
// rules.
func (rs *RuleSet) Lookup(state string, la Symbol, top Symbol) (*Rule, bool) {
	si, ok := rs.states[state]
	if !ok {
		return nil, false
	}
	ti, ok := rs.tops[top]
	if !ok {
		return nil, false
	}
	row := rs.row(si, ti)
	if !la.IsEpsilon() {
		if li, ok := rs.las[la]; ok {
			if v := rs.table.Value(row, li); v != rs.table.NullValue() {
				return rs.rules[v], true
			}
		}
	}
	if v := rs.table.Value(row, rs.las[Epsilon]); v != rs.table.NullValue() {
		return rs.rules[v], true
	}
	return nil, false
}

func (rs *RuleSet) row(stateIndex, topIndex int) int {
	return stateIndex*len(rs.tops) + topIndex
}

// Dump is a debugging helper, tracing all rules.
func (rs *RuleSet) Dump() {
	tracer().Debugf("--- rule set %s, initial state %s -----------", rs.name, rs.initial)
	for _, r := range rs.rules {
		tracer().Debugf("%3d: %-28s %s", r.serial, r.String(), r.Action())
	}
	tracer().Debugf("-------------------------")
}

func (rs *RuleSet) addState(s string) {
	if _, ok := rs.states[s]; !ok {
		rs.states[s] = len(rs.stateList)
		rs.stateList = append(rs.stateList, s)
	}
}

func (rs *RuleSet) addSymbol(sym Symbol) {
	switch sym.kind {
	case TerminalKind:
		rs.terminals.Add(sym)
	case NonterminalKind:
		rs.nonterms.Add(sym)
	}
}

// index enters all rules into the lookup table and reports conflicts.
// It may be called only once all states and symbols are known.
func (rs *RuleSet) index(errs *ruleSetError) {
	for _, r := range rs.rules {
		row := rs.row(rs.states[r.state], rs.tops[r.top])
		rs.table.Add(row, rs.las[r.la], int32(r.serial))
	}
	for _, c := range rs.table.Conflicts() {
		errs.add(fmt.Errorf("rules %d and %d share key %s: %w",
			c.A, c.B, keyString(rs.rules[c.A]), ErrNondeterministic))
	}
	eps := rs.las[Epsilon]
	for row := 0; row < rs.table.M(); row++ {
		cols := rs.table.Columns(row)
		if len(cols) < 2 {
			continue
		}
		if e := rs.table.Value(row, eps); e != rs.table.NullValue() {
			for _, col := range cols {
				if col == eps {
					continue
				}
				other := rs.table.Value(row, col)
				errs.add(fmt.Errorf("ε-lookahead rule %d overlaps rule %d for %s: %w",
					e, other, keyString(rs.rules[other]), ErrNondeterministic))
			}
		}
	}
}

func keyString(r *Rule) string {
	return fmt.Sprintf("(%s, %s, %s)", r.state, r.la, r.top)
}
