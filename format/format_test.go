package format

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/npillmayer/pushdown/languages/anbn"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestTextTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pushdown.dpda")
	defer teardown()
	//
	A, err := anbn.Automaton()
	if err != nil {
		t.Fatal(err)
	}
	result, err := A.Run("aabb$")
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := Text(&buf, result.Trace); err != nil {
		t.Fatal(err)
	}
	t.Logf("\n%s", buf.String())
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 12 {
		t.Fatalf("expected header and 11 rows, have %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "Step  State  Unread") {
		t.Errorf("unexpected header line %q", lines[0])
	}
	col := strings.Index(lines[0], "Δ Used")
	for i, line := range lines[1:] {
		if strings.Index(line, "(") != col && i > 0 {
			t.Errorf("row %d: rule column not aligned: %q", i, line)
		}
	}
	if f := strings.Fields(lines[2]); f[0] != "1" || f[1] != "q" || f[2] != "aabb$" || f[3] != "S" {
		t.Errorf("unexpected row 1: %q", lines[2])
	}
	if f := strings.Fields(lines[11]); f[2] != "e" || f[3] != "e" || f[len(f)-1] != "finalize" {
		t.Errorf("expected exhausted input and empty stack in last row: %q", lines[11])
	}
}

func TestRowsAndSummary(t *testing.T) {
	A, err := anbn.Automaton()
	if err != nil {
		t.Fatal(err)
	}
	result, err := A.Run("aab$")
	if err != nil {
		t.Fatal(err)
	}
	rows := Rows(result.Trace)
	if len(rows) != result.Trace.Len()+1 || rows[0][0] != Header[0] {
		t.Errorf("expected header and one row per entry, have %d rows", len(rows))
	}
	if last := rows[len(rows)-1]; last[5] != "reject" {
		t.Errorf("expected last row to show the rejection, is %v", last)
	}
	if s := Summary("aab$", result); !strings.HasPrefix(s, "aab$: rejected at step") {
		t.Errorf("unexpected summary %q", s)
	}
	if s := Summary("x", nil); s != "x: no result" {
		t.Errorf("unexpected summary for missing result %q", s)
	}
}

func TestWideRunesKeepColumnsAligned(t *testing.T) {
	A, err := anbn.Automaton()
	if err != nil {
		t.Fatal(err)
	}
	result, err := A.Run("ab$")
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := Text(&buf, result.Trace); err != nil {
		t.Fatal(err)
	}
	checkLastColumn(t, buf.String(), Rows(result.Trace))
	buf.Reset()
	rules := RuleRows(A.Rules())
	if len(rules) != A.Rules().Size()+1 || rules[1][1] != "(p, ε, e) -> (q, S)" {
		t.Fatalf("unexpected rule rows %v", rules)
	}
	if err := Table(&buf, rules); err != nil {
		t.Fatal(err)
	}
	checkLastColumn(t, buf.String(), rules)
}

// checkLastColumn asserts that the last cell of every row starts at the same
// rune offset in the rendered table.
func checkLastColumn(t *testing.T, text string, rows [][]string) {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(lines) != len(rows) {
		t.Fatalf("expected %d lines, have %d", len(rows), len(lines))
	}
	col := -1
	for i, line := range lines {
		last := rows[i][len(rows[i])-1]
		at := utf8.RuneCountInString(line[:strings.LastIndex(line, last)])
		if col < 0 {
			col = at
		} else if at != col {
			t.Errorf("line %d: last column starts at %d, expected %d: %q", i, at, col, line)
		}
	}
}
