/*
Package fa implements finite automata for recognizing tokens.

Building an NFA

NFAs are built incrementally by adding transitions. States are plain integers
and are introduced by mentioning them; there is no need to declare them.
Start state and accepting states are fixed when the NFA is created.

Example, recognizing identifiers (a lowercase letter followed by lowercase
letters or digits):

    nfa := fa.NewNFA(0, 1)          // start state 0, accepting state 1
    nfa.AddRange(0, 'a', 'z', 1)    // 0 --[a-z]--> 1
    nfa.AddRange(1, 'a', 'z', 1)    // 1 --[a-z]--> 1
    nfa.AddRange(1, '0', '9', 1)    // 1 --[0-9]--> 1

A (state, symbol) pair may lead to more than one state. Adding the same
transition twice is a no-op.

Subset Construction

An NFA is converted to an equivalent DFA by the subset construction:
every DFA state stands for a set of NFA states reachable by the same input.
Only state sets reachable from the start state are materialized. The DFA is
not minimized.

    dfa := nfa.ToDFA()
    dfa.Accepts("x1")               // true
    dfa.Accepts("2h7h")             // false

DFA states are numbered in the order of their discovery, with the start state
always being 0. As the alphabet is explored in ascending order of code points,
converting the same NFA twice results in identical DFAs.

The step of computing epsilon-closures is kept separate, although NFAs of this
package have no epsilon-transitions (yet). EpsilonClosure therefore is the
identity on state sets.

Diagnostics

Both kinds of automata can be dumped to the tracer, listed as (from, symbol, to)
triples, and exported to Graphviz's Dot-format. DFAs may additionally be
converted to a sparse transition table, which can be exported in HTML-format.

Concurrency

NFAs must not be modified concurrently. DFAs are immutable after construction
and may be used by any number of goroutines.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fa

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lexaut.fa'.
func tracer() tracing.Trace {
	return tracing.Select("lexaut.fa")
}
