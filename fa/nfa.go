package fa

import (
	"fmt"
	"sort"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// transition is the key of a transition table.
type transition struct {
	from   State
	symbol rune
}

// Triple is a single transition (from, symbol, to) of an automaton.
type Triple struct {
	From   State
	Symbol rune
	To     State
}

func (t Triple) String() string {
	return fmt.Sprintf("%d -- %q --> %d", t.From, t.Symbol, t.To)
}

// NFA is a nondeterministic finite automaton without epsilon-transitions.
// Create one with NewNFA and add transitions with AddTransition.
type NFA struct {
	start     State
	accepting *StateSet
	trans     map[transition]*StateSet
}

// NewNFA creates an NFA with a start state and a set of accepting states.
// Both cannot be changed afterwards.
func NewNFA(start State, accepting ...State) *NFA {
	return &NFA{
		start:     start,
		accepting: NewStateSet(accepting...),
		trans:     make(map[transition]*StateSet),
	}
}

// AddTransition adds a transition from state from to state to, consuming
// symbol. Adding a transition more than once has no effect.
// Returns the NFA (for chaining).
func (nfa *NFA) AddTransition(from State, symbol rune, to State) *NFA {
	key := transition{from: from, symbol: symbol}
	targets, ok := nfa.trans[key]
	if !ok {
		targets = NewStateSet()
		nfa.trans[key] = targets
	}
	targets.Add(to)
	return nfa
}

// AddRange adds transitions from state from to state to for every symbol
// in [lo…hi]. If lo > hi, nothing is added.
// Returns the NFA (for chaining).
func (nfa *NFA) AddRange(from State, lo, hi rune, to State) *NFA {
	for r := lo; r <= hi; r++ {
		nfa.AddTransition(from, r, to)
		if r == hi { // r++ would overflow for hi = MaxInt32
			break
		}
	}
	return nfa
}

// Start returns the start state.
func (nfa *NFA) Start() State {
	return nfa.start
}

// IsAccepting returns true if s is an accepting state.
func (nfa *NFA) IsAccepting(s State) bool {
	return nfa.accepting.Contains(s)
}

// AcceptingStates returns the accepting states in ascending order.
func (nfa *NFA) AcceptingStates() []State {
	return nfa.accepting.States()
}

// Alphabet returns all symbols occuring in a transition, in ascending order.
func (nfa *NFA) Alphabet() []rune {
	symbols := make(map[rune]struct{})
	for key := range nfa.trans {
		symbols[key.symbol] = struct{}{}
	}
	alphabet := maps.Keys(symbols)
	slices.Sort(alphabet)
	return alphabet
}

// States returns every state mentioned by the NFA, in ascending order.
func (nfa *NFA) States() []State {
	S := NewStateSet(nfa.start).Union(nfa.accepting)
	for key, targets := range nfa.trans {
		S.Add(key.from).Union(targets)
	}
	return S.States()
}

// TransitionsFrom returns the set of states reachable from s by consuming symbol.
// The set is empty if there is no such transition.
func (nfa *NFA) TransitionsFrom(s State, symbol rune) *StateSet {
	return nfa.trans[transition{from: s, symbol: symbol}].Copy()
}

// EpsilonClosure returns the set of states reachable from S by epsilon-moves.
// As there are no epsilon-transitions, this is a copy of S.
func (nfa *NFA) EpsilonClosure(S *StateSet) *StateSet {
	return S.Copy()
}

// move returns the set of states reachable from any state in T by consuming symbol.
func (nfa *NFA) move(T *StateSet, symbol rune) *StateSet {
	U := NewStateSet()
	for _, s := range T.States() {
		U.Union(nfa.trans[transition{from: s, symbol: symbol}])
	}
	return U
}

// Accepts simulates the NFA on input, tracking the set of possible states.
// This is much slower than using an equivalent DFA and mainly intended for
// checking DFAs against their NFAs.
func (nfa *NFA) Accepts(input string) bool {
	current := nfa.EpsilonClosure(NewStateSet(nfa.start))
	for _, r := range input {
		current = nfa.EpsilonClosure(nfa.move(current, r))
		if current.Empty() {
			return false
		}
	}
	return current.ContainsAny(nfa.accepting)
}

// Triples returns all transitions, ordered by source state, symbol and target state.
func (nfa *NFA) Triples() []Triple {
	keys := maps.Keys(nfa.trans)
	sortTransitions(keys)
	triples := make([]Triple, 0, len(keys))
	for _, key := range keys {
		for _, to := range nfa.trans[key].States() {
			triples = append(triples, Triple{From: key.from, Symbol: key.symbol, To: to})
		}
	}
	return triples
}

// Dump is a debugging helper
func (nfa *NFA) Dump() {
	tracer().Debugf("--- NFA transitions -------------")
	for _, t := range nfa.Triples() {
		tracer().Debugf("%v", t)
	}
	tracer().Debugf("Accepting states: %v", nfa.accepting)
	tracer().Debugf("---------------------------------")
}

func sortTransitions(keys []transition) {
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].from == keys[j].from {
			return keys[i].symbol < keys[j].symbol
		}
		return keys[i].from < keys[j].from
	})
}
