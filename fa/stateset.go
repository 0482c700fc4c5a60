package fa

import (
	"strconv"
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// State is a state of an automaton. States have no meaning beyond identity.
type State int

// We need this for sets of states. It sorts states by ID.
func stateComparator(s1, s2 interface{}) int {
	return utils.IntComparator(int(s1.(State)), int(s2.(State)))
}

// StateSet is a set of states, ordered by state ID. Two state sets are equal
// if they contain the same states.
//
// Unlike the result of most operations of this package, state sets are mutable.
// Add and Union are destructive.
type StateSet struct {
	items *treeset.Set
}

// NewStateSet creates a state set containing the given states.
func NewStateSet(states ...State) *StateSet {
	S := &StateSet{items: treeset.NewWith(stateComparator)}
	return S.Add(states...)
}

// Add adds states to S. Returns S (for chaining).
func (S *StateSet) Add(states ...State) *StateSet {
	for _, s := range states {
		S.items.Add(s)
	}
	return S
}

// Union adds all states of other to S. Returns S (for chaining).
func (S *StateSet) Union(other *StateSet) *StateSet {
	if other == nil {
		return S
	}
	S.items.Add(other.items.Values()...)
	return S
}

// Contains is a membership test.
func (S *StateSet) Contains(s State) bool {
	if S == nil {
		return false
	}
	return S.items.Contains(s)
}

// ContainsAny returns true if S and other have at least one state in common.
func (S *StateSet) ContainsAny(other *StateSet) bool {
	if S == nil || other == nil {
		return false
	}
	it := S.items.Iterator()
	for it.Next() {
		if other.items.Contains(it.Value()) {
			return true
		}
	}
	return false
}

// Size returns the number of states in S.
func (S *StateSet) Size() int {
	if S == nil {
		return 0
	}
	return S.items.Size()
}

// Empty returns true if S contains no state.
func (S *StateSet) Empty() bool {
	return S.Size() == 0
}

// States returns the states of S in ascending order.
func (S *StateSet) States() []State {
	if S == nil {
		return nil
	}
	states := make([]State, 0, S.items.Size())
	it := S.items.Iterator()
	for it.Next() {
		states = append(states, it.Value().(State))
	}
	return states
}

// Copy returns a new state set with the states of S.
func (S *StateSet) Copy() *StateSet {
	C := NewStateSet()
	if S != nil {
		C.items.Add(S.items.Values()...)
	}
	return C
}

// Equals compares two state sets by value.
func (S *StateSet) Equals(other *StateSet) bool {
	if S.Size() != other.Size() {
		return false
	}
	return S.Key() == other.Key()
}

// Key returns a canonical string representation of S, e.g. "{0,3,7}".
// Two state sets have the same key iff they contain the same states.
func (S *StateSet) Key() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, s := range S.States() {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(int(s)))
	}
	b.WriteByte('}')
	return b.String()
}

func (S *StateSet) String() string {
	return S.Key()
}
