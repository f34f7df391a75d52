package dpda

import (
	"fmt"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/lists/arraylist"
)

// Entry is a single record of a trace: the configuration reached at step Step,
// together with the rule which produced it. Entry 0 holds the start configuration
// and no rule. A rejected run ends with an entry repeating the stuck configuration,
// again without a rule.
type Entry struct {
	Step   int
	Config Configuration
	Rule   *Rule
	desc   string
	Action string
}

// Description describes the rule of an entry, "-" for the start entry.
func (e Entry) Description() string {
	if e.desc != "" {
		return e.desc
	}
	if e.Rule == nil {
		return "-"
	}
	return e.Rule.String()
}

func (e Entry) String() string {
	return fmt.Sprintf("%3d %s %s %s", e.Step, e.Config, e.Description(), e.Action)
}

// Record is the presentation view of an entry, with every column already rendered.
type Record struct {
	Step   int
	State  string
	Unread string // input from cursor to end, "" if exhausted
	Stack  string // top to bottom, "e" if empty
	Rule   string
	Action string
}

// Record returns the presentation view of an entry.
func (e Entry) Record() Record {
	return Record{
		Step:   e.Step,
		State:  e.Config.State(),
		Unread: e.Config.Unread(),
		Stack:  e.Config.StackString(),
		Rule:   e.Description(),
		Action: e.Action,
	}
}

// --- Tracer ----------------------------------------------------------------

// Tracer is an append-only log of trace entries, in step order. It is owned by
// the run which produced it and knows nothing about acceptance.
type Tracer struct {
	log *arraylist.List
}

// NewTracer creates an empty trace log.
func NewTracer() *Tracer {
	return &Tracer{log: arraylist.New()}
}

// Record appends an entry.
func (t *Tracer) Record(e Entry) {
	t.log.Add(e)
}

// Len returns the number of entries recorded.
func (t *Tracer) Len() int {
	return t.log.Size()
}

// At returns entry i.
func (t *Tracer) At(i int) (Entry, bool) {
	v, ok := t.log.Get(i)
	if !ok {
		return Entry{}, false
	}
	return v.(Entry), true
}

// Last returns the most recent entry.
func (t *Tracer) Last() (Entry, bool) {
	return t.At(t.log.Size() - 1)
}

// Entries returns an iterator over all entries, in the order recorded.
//
//     it := trace.Entries()
//     for it.Next() {
//         e := it.Entry()
//         …
//     }
//
func (t *Tracer) Entries() *Iterator {
	return &Iterator{it: t.log.Iterator()}
}

// Records returns the presentation views of all entries.
func (t *Tracer) Records() []Record {
	recs := make([]Record, 0, t.log.Size())
	it := t.Entries()
	for it.Next() {
		recs = append(recs, it.Entry().Record())
	}
	return recs
}

// Fingerprint returns a hash over all records. Traces of runs for the same
// input and rule set have equal fingerprints.
func (t *Tracer) Fingerprint() string {
	h, err := structhash.Hash(t.Records(), 1)
	if err != nil {
		tracer().Errorf("cannot hash trace: %v", err)
		return ""
	}
	return h
}

// Dump is a debugging helper, tracing all entries.
func (t *Tracer) Dump() {
	it := t.Entries()
	for it.Next() {
		tracer().Debugf("%s", it.Entry())
	}
}

// Iterator iterates over the entries of a trace. It may be restarted with Reset.
type Iterator struct {
	it arraylist.Iterator
}

// Next moves to the next entry and returns false if there is none.
func (i *Iterator) Next() bool {
	return i.it.Next()
}

// Entry returns the current entry.
func (i *Iterator) Entry() Entry {
	return i.it.Value().(Entry)
}

// Index returns the index of the current entry.
func (i *Iterator) Index() int {
	return i.it.Index()
}

// Reset moves the iterator before the first entry.
func (i *Iterator) Reset() {
	i.it.Begin()
}
