package fa

import (
	"golang.org/x/exp/maps"

	"github.com/cnf/structhash"
)

// DFA is a deterministic finite automaton, constructed from an NFA by
// (*NFA).ToDFA. The transition function is partial: a missing transition
// means rejecting the input.
//
// DFAs are immutable and may be shared between goroutines.
type DFA struct {
	accepting *StateSet            // accepting DFA states
	trans     map[transition]State // transition function
	sets      []*StateSet          // NFA states per DFA state
	alphabet  []rune               // alphabet of the source NFA, sorted
}

// Start returns the start state, which is always 0.
func (dfa *DFA) Start() State {
	return 0
}

// Size returns the number of states.
func (dfa *DFA) Size() int {
	return len(dfa.sets)
}

// IsAccepting returns true if s is an accepting state.
func (dfa *DFA) IsAccepting(s State) bool {
	return dfa.accepting.Contains(s)
}

// AcceptingStates returns the accepting states in ascending order.
func (dfa *DFA) AcceptingStates() []State {
	return dfa.accepting.States()
}

// Alphabet returns the input symbols of the DFA, in ascending order.
func (dfa *DFA) Alphabet() []rune {
	return append([]rune(nil), dfa.alphabet...)
}

// StateSet returns the set of NFA states DFA state s has been constructed from.
// Returns nil for unknown states.
func (dfa *DFA) StateSet(s State) *StateSet {
	if s < 0 || int(s) >= len(dfa.sets) {
		return nil
	}
	return dfa.sets[s].Copy()
}

// Step returns the state reached from s by consuming symbol. If there is no
// such transition, false is returned.
func (dfa *DFA) Step(s State, symbol rune) (State, bool) {
	to, ok := dfa.trans[transition{from: s, symbol: symbol}]
	return to, ok
}

// Accepts returns true if the DFA recognizes input. Reading stops at the first
// symbol without a transition.
func (dfa *DFA) Accepts(input string) bool {
	current := dfa.Start()
	for _, r := range input {
		next, ok := dfa.trans[transition{from: current, symbol: r}]
		if !ok {
			return false
		}
		current = next
	}
	return dfa.accepting.Contains(current)
}

// Triples returns all transitions, ordered by source state and symbol.
func (dfa *DFA) Triples() []Triple {
	keys := maps.Keys(dfa.trans)
	sortTransitions(keys)
	triples := make([]Triple, len(keys))
	for i, key := range keys {
		triples[i] = Triple{From: key.from, Symbol: key.symbol, To: dfa.trans[key]}
	}
	return triples
}

// Dump is a debugging helper
func (dfa *DFA) Dump() {
	tracer().Debugf("--- DFA with %d states ----------", dfa.Size())
	for s, S := range dfa.sets {
		tracer().Debugf("state %03d = %v", s, S)
	}
	for _, t := range dfa.Triples() {
		tracer().Debugf("%v", t)
	}
	tracer().Debugf("Accepting states: %v", dfa.accepting)
	tracer().Debugf("---------------------------------")
}

// dfaShape is what makes up the identity of a DFA for fingerprinting.
type dfaShape struct {
	States    int
	Accepting []State
	Triples   []Triple
}

// Fingerprint returns a hash over the structure of the DFA: its number of states,
// its accepting states and its transitions. Converting the same NFA repeatedly
// results in identical fingerprints.
func (dfa *DFA) Fingerprint() string {
	shape := dfaShape{
		States:    dfa.Size(),
		Accepting: dfa.AcceptingStates(),
		Triples:   dfa.Triples(),
	}
	h, err := structhash.Hash(shape, 1)
	if err != nil {
		tracer().Errorf("cannot compute DFA fingerprint: %v", err)
		return ""
	}
	return h
}
