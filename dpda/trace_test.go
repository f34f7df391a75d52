package dpda

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestTracerKeepsOrder(t *testing.T) {
	tr := NewTracer()
	if _, ok := tr.Last(); ok {
		t.Errorf("expected empty trace to have no last entry")
	}
	for i := 0; i < 5; i++ {
		tr.Record(Entry{Step: i, Action: "-"})
	}
	if tr.Len() != 5 {
		t.Fatalf("expected 5 entries, have %d", tr.Len())
	}
	it := tr.Entries()
	n := 0
	for it.Next() {
		if it.Entry().Step != n {
			t.Errorf("expected entry %d, got %d", n, it.Entry().Step)
		}
		n++
	}
	if n != 5 {
		t.Errorf("expected iterator to visit 5 entries, visited %d", n)
	}
	it.Reset() // restart
	n = 0
	for it.Next() {
		n++
	}
	if n != 5 {
		t.Errorf("expected restarted iterator to visit 5 entries, visited %d", n)
	}
	if _, ok := tr.At(5); ok {
		t.Errorf("expected At(5) to fail")
	}
}

func TestIteratorsAreIndependent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pushdown.dpda")
	defer teardown()
	//
	A := makeAutomaton(t)
	result, err := A.Run("ab$")
	if err != nil {
		t.Fatal(err)
	}
	it1, it2 := result.Trace.Entries(), result.Trace.Entries()
	it1.Next()
	it1.Next()
	it2.Next()
	if it1.Entry().Step != 1 || it2.Entry().Step != 0 {
		t.Errorf("expected iterators to move independently, are at %d and %d",
			it1.Entry().Step, it2.Entry().Step)
	}
	first, _ := result.Trace.At(0)
	if first.Description() != "-" || first.Rule != nil {
		t.Errorf("expected start entry without rule, is %v", first)
	}
	t.Logf("%s", first)
}
