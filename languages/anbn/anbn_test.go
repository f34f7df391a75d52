package anbn

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/pushdown/dpda"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

func TestSampleInputs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pushdown.dpda")
	defer teardown()
	//
	A, err := Automaton()
	require.NoError(t, err)
	for i, input := range Inputs {
		result, err := A.Run(input)
		require.NoError(t, err)
		require.Truef(t, result.Accepted, "sample input #%d %q not accepted", i+1, input)
		n := i + 2
		require.Equal(t, 3*n+5, result.Trace.Len(), "trace length of %q", input)
	}
}

func TestRunAllMatchesSequentialRuns(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pushdown.dpda")
	defer teardown()
	//
	A, err := Automaton()
	require.NoError(t, err)
	var inputs []string
	for n := 0; n < 20; n++ {
		inputs = append(inputs, strings.Repeat("a", n)+strings.Repeat("b", n)+"$")
		inputs = append(inputs, strings.Repeat("a", n+1)+strings.Repeat("b", n)+"$")
	}
	results, err := A.RunAll(inputs...)
	require.NoError(t, err)
	require.Len(t, results, len(inputs))
	for i, input := range inputs {
		sequential, err := A.Run(input)
		require.NoError(t, err)
		require.Equal(t, i%2 == 0, results[i].Accepted, "input %q", input)
		require.Equal(t, sequential.Trace.Records(), results[i].Trace.Records(), "input %q", input)
		require.Equal(t, sequential.Trace.Fingerprint(), results[i].Trace.Fingerprint())
	}
}

func TestRunAllReportsStepLimit(t *testing.T) {
	A, err := Automaton(dpda.MaxSteps(10))
	require.NoError(t, err)
	results, err := A.RunAll("ab$", "aaaaaabbbbbb$")
	require.True(t, errors.Is(err, dpda.ErrStepLimit))
	require.True(t, results[0].Accepted)
	require.False(t, results[1].Accepted)
}

func TestRuleSetIsShared(t *testing.T) {
	rs1, err := RuleSet()
	require.NoError(t, err)
	rs2, _ := RuleSet()
	require.Same(t, rs1, rs2)
	require.Equal(t, "p", rs1.InitialState())
}
