/*
Package pushdown is a toolbox for simulating deterministic pushdown automata.

Runs of an automaton produce a complete, inspectable execution trace, intended for
teaching and debugging, rather than a bare accept/reject answer. Package structure
is as follows:

■ dpda: Package dpda implements the automaton: symbols, stacks, transition rule sets,
configurations, the stepping engine and the trace log.

■ scanner: Package scanner splits input strings into tokens of an automaton's
terminal alphabet.

■ format: Package format renders traces as tables.

■ languages: Sub-packages contain ready-made rule sets, e.g. for { aⁿbⁿ$ | n ≥ 0 }.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package pushdown
