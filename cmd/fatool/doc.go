/*
Command fatool is a command line tool for experiments with finite automata and
tokenizers.

fatool converts a non-deterministic finite automaton to a DFA and checks input
strings against it. The NFA is either the built-in identifier automaton or is
read from an automaton description file:

    fatool -fa tokens.fa -name second-to-last -dot std.dot abba abab

Every input is reported as accepted or rejected. Without inputs, fatool checks
a set of sample strings. The DFA may be exported in GraphViz DOT format (-dot)
or as an HTML transition table (-html).

With -tokenize, fatool tokenizes a source file of a toy language (default
MyLang, or a YAML language configuration given by -lang) and prints a table of
the tokens. Flag -dfa selects DFA-based classification of tokens.

Flag -i starts an interactive session. Lines entered are checked against the
DFA; lines starting with ':' are commands (":help" lists them).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lexaut.fatool'
func tracer() tracing.Trace {
	return tracing.Select("lexaut.fatool")
}
