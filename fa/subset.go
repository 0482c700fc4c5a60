package fa

import (
	"github.com/emirpasic/gods/lists/arraylist"
)

// Refer to "Compilers: Principles, Techniques, and Tools" by Aho, Lam, Sethi & Ullman,
// Section 3.7.1 Conversion of an NFA to a DFA

// dfaBuilder holds the intermediate data of a subset construction.
type dfaBuilder struct {
	nfa      *NFA
	dfa      *DFA
	ids      map[string]State // interned state sets, by key
	worklist *arraylist.List  // DFA states not yet expanded, in order of discovery
}

// ToDFA converts the NFA to an equivalent DFA, using the subset construction.
// The start state of the DFA is 0; further states are numbered in the order they
// are discovered. The NFA must not be modified during conversion.
func (nfa *NFA) ToDFA() *DFA {
	tracer().Debugf("=== subset construction =========================================")
	b := &dfaBuilder{
		nfa: nfa,
		dfa: &DFA{
			accepting: NewStateSet(),
			trans:     make(map[transition]State),
			alphabet:  nfa.Alphabet(),
		},
		ids:      make(map[string]State),
		worklist: arraylist.New(),
	}
	S0 := nfa.EpsilonClosure(NewStateSet(nfa.start))
	b.intern(S0)
	for !b.worklist.Empty() {
		x, _ := b.worklist.Get(0)
		b.worklist.Remove(0)
		b.expand(x.(State))
	}
	for s, S := range b.dfa.sets {
		if S.ContainsAny(nfa.accepting) {
			b.dfa.accepting.Add(State(s))
		}
	}
	tracer().Infof("subset construction: NFA with %d states => DFA with %d states",
		len(nfa.States()), b.dfa.Size())
	return b.dfa
}

// expand computes all transitions leaving DFA state from.
func (b *dfaBuilder) expand(from State) {
	T := b.dfa.sets[from]
	tracer().Debugf("expanding state %d = %v", from, T)
	for _, a := range b.dfa.alphabet {
		U := b.nfa.EpsilonClosure(b.nfa.move(T, a))
		if U.Empty() {
			continue
		}
		to := b.intern(U)
		tracer().Debugf("    %v --%q--> %v = state %d", T, a, U, to)
		b.dfa.trans[transition{from: from, symbol: a}] = to
	}
}

// intern returns the DFA state for a set of NFA states. Unseen sets get the
// next free state ID and are put on the worklist.
func (b *dfaBuilder) intern(S *StateSet) State {
	key := S.Key()
	if s, ok := b.ids[key]; ok {
		return s
	}
	s := State(len(b.dfa.sets))
	b.ids[key] = s
	b.dfa.sets = append(b.dfa.sets, S)
	b.worklist.Add(s)
	return s
}
