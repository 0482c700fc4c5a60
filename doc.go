/*
Package lexaut is a small toolbox for lexical automata.

It focusses on finite automata as recognizers for the tokens of small
languages. Package structure is as follows:

■ fa: Package fa implements nondeterministic and deterministic finite automata,
together with the subset construction to convert the former into the latter.
Sub-packages provide builders for frequently used recognizers, a description
language for automata and a sparse table type.

■ scanner: Package scanner implements a tokenizer for a toy language, with
token classification either by ad-hoc pattern checks or by DFAs.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexaut
