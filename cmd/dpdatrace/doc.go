/*
Command dpdatrace is an interactive command line tool for watching a deterministic
pushdown automaton at work. Users pick one of a few sample inputs, or type
their own, and get the complete trace of the run: every configuration, the rule
that produced it and what the rule did to the stack.

    dpdatrace [-lang anbn|dyck] [-trace Debug|Info|Error] [-maxsteps n] [input]

If an input is given as an argument, it is run once and the tool exits
with status 1 if the input is rejected or the run fails.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pushdown.cli'
func tracer() tracing.Trace {
	return tracing.Select("pushdown.cli")
}
