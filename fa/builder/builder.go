/*
Package builder provides NFAs for frequently used token shapes.

Every function returns a freshly built NFA, which clients may extend before
converting it. Character classes are given as range strings:

    "a-z0-9_"   // lowercase letters, digits and underscore

A '-' at the start or end of a class string stands for itself.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package builder

import (
	"github.com/npillmayer/lexaut/fa"
)

// Class returns the symbols of a class string in the order of their appearance.
// Duplicates are not removed.
func Class(class string) []rune {
	rs := []rune(class)
	var symbols []rune
	for i := 0; i < len(rs); i++ {
		if i+2 < len(rs) && rs[i+1] == '-' {
			for r := rs[i]; r <= rs[i+2]; r++ {
				symbols = append(symbols, r)
			}
			i += 2
			continue
		}
		symbols = append(symbols, rs[i])
	}
	return symbols
}

// AddClass adds a transition from state from to state to for every symbol of
// a class string. Returns the NFA (for chaining).
func AddClass(nfa *fa.NFA, from fa.State, class string, to fa.State) *fa.NFA {
	for _, r := range Class(class) {
		nfa.AddTransition(from, r, to)
	}
	return nfa
}

// Identifier returns an NFA recognizing a lowercase letter followed by zero or
// more lowercase letters or digits, i.e. [a-z][a-z0-9]*.
//
//    start state 0, accepting {1}
//    0 --[a-z]--> 1
//    1 --[a-z]--> 1
//    1 --[0-9]--> 1
//
func Identifier() *fa.NFA {
	nfa := fa.NewNFA(0, 1)
	AddClass(nfa, 0, "a-z", 1)
	AddClass(nfa, 1, "a-z", 1)
	AddClass(nfa, 1, "0-9", 1)
	return nfa
}

// Integer returns an NFA recognizing unsigned decimal integers, i.e. [0-9]+.
func Integer() *fa.NFA {
	nfa := fa.NewNFA(0, 1)
	AddClass(nfa, 0, "0-9", 1)
	AddClass(nfa, 1, "0-9", 1)
	return nfa
}

// maxFractionDigits is the maximum number of digits after the decimal point.
const maxFractionDigits = 5

// Decimal returns an NFA recognizing decimal numbers with 1 to 5 fractional
// digits, i.e. [0-9]+\.[0-9]{1,5}.
//
// The NFA is nondeterministic: the integral part may leave its loop on any digit,
// guessing that it is the last one before the decimal point.
func Decimal() *fa.NFA {
	const (
		intpart = 1
		lastint = 2
		point   = 3
	)
	var accepting []fa.State
	for i := 1; i <= maxFractionDigits; i++ {
		accepting = append(accepting, fa.State(point+i))
	}
	nfa := fa.NewNFA(0, accepting...)
	AddClass(nfa, 0, "0-9", intpart)
	AddClass(nfa, 0, "0-9", lastint)
	AddClass(nfa, intpart, "0-9", intpart)
	AddClass(nfa, intpart, "0-9", lastint)
	nfa.AddTransition(lastint, '.', point)
	from := fa.State(point)
	for _, to := range accepting {
		AddClass(nfa, from, "0-9", to)
		from = to
	}
	return nfa
}

// Keyword returns an NFA recognizing exactly the given word.
func Keyword(word string) *fa.NFA {
	rs := []rune(word)
	nfa := fa.NewNFA(0, fa.State(len(rs)))
	for i, r := range rs {
		nfa.AddTransition(fa.State(i), r, fa.State(i+1))
	}
	return nfa
}

// Words returns an NFA recognizing exactly the given words.
func Words(words ...string) *fa.NFA {
	nfas := make([]*fa.NFA, len(words))
	for i, w := range words {
		nfas[i] = Keyword(w)
	}
	return Union(nfas...)
}

// Union returns an NFA recognizing the union of the languages of the given NFAs.
// As there are no epsilon-transitions, the new start state 0 receives copies of
// the transitions leaving the start states of the operands. States of the
// operands are renumbered.
func Union(nfas ...*fa.NFA) *fa.NFA {
	offsets := make([]fa.State, len(nfas))
	var accepting []fa.State
	next := fa.State(1)
	for i, nfa := range nfas {
		offsets[i] = next - minState(nfa)
		for _, s := range nfa.AcceptingStates() {
			accepting = append(accepting, s+offsets[i])
			if s == nfa.Start() {
				accepting = append(accepting, 0)
			}
		}
		next += maxState(nfa) - minState(nfa) + 1
	}
	union := fa.NewNFA(0, accepting...)
	for i, nfa := range nfas {
		for _, t := range nfa.Triples() {
			union.AddTransition(t.From+offsets[i], t.Symbol, t.To+offsets[i])
			if t.From == nfa.Start() {
				union.AddTransition(0, t.Symbol, t.To+offsets[i])
			}
		}
	}
	return union
}

func minState(nfa *fa.NFA) fa.State {
	return nfa.States()[0] // States() always contains the start state
}

func maxState(nfa *fa.NFA) fa.State {
	states := nfa.States()
	return states[len(states)-1]
}
