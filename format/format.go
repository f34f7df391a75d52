/*
Package format renders DPDA traces as tables.

Text writes a plain column layout to an io.Writer, suitable for the terminal,
logs and golden files. Rows returns the table cells, e.g. for other table printers.

    Step  State  Unread  Stack(top->bottom)  Δ Used                    R Used
    0     p      aabb$   e                   -                         -
    1     q      aabb$   S                   (p, ε, e) -> (q, S)       push(S)
    …

Empty unread input and the empty stack are shown as "e".

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package format

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/npillmayer/pushdown/dpda"
)

// Header holds the column titles of a trace table.
var Header = []string{"Step", "State", "Unread", "Stack(top->bottom)", "Δ Used", "R Used"}

// Row returns the table cells for a single trace record.
func Row(r dpda.Record) []string {
	unread := r.Unread
	if unread == "" {
		unread = "e"
	}
	return []string{strconv.Itoa(r.Step), r.State, unread, r.Stack, r.Rule, r.Action}
}

// Rows returns the table cells of a trace, header first.
func Rows(trace *dpda.Tracer) [][]string {
	rows := [][]string{Header}
	for _, r := range trace.Records() {
		rows = append(rows, Row(r))
	}
	return rows
}

// RuleHeader holds the column titles of a rule set table.
var RuleHeader = []string{"#", "Rule", "Action"}

// RuleRows returns the table cells of a rule set, header first.
func RuleRows(rs *dpda.RuleSet) [][]string {
	rows := [][]string{RuleHeader}
	for _, r := range rs.Rules() {
		rows = append(rows, []string{strconv.Itoa(r.Serial()), r.String(), r.Action()})
	}
	return rows
}

// Text writes a trace as a column-aligned table.
func Text(w io.Writer, trace *dpda.Tracer) error {
	return Table(w, Rows(trace))
}

// Table writes table cells column-aligned. Column widths are measured in runes,
// thus symbols like 'ε' or '⊣' do not break the alignment.
func Table(w io.Writer, rows [][]string) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	for _, row := range rows {
		if _, err := fmt.Fprintln(tw, strings.Join(row, "\t")); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// Summary returns a one-line description of a result, e.g.
// `aabb$: accepted after 10 steps`.
func Summary(input string, result *dpda.Result) string {
	if result == nil {
		return fmt.Sprintf("%s: no result", input)
	}
	return fmt.Sprintf("%s: %s", input, result)
}
