package builder

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestClass(t *testing.T) {
	for _, test := range []struct {
		class    string
		expected string
	}{
		{"a-c", "abc"},
		{"0-2x", "012x"},
		{"-a", "-a"},
		{"a-", "a-"},
		{"(){};,", "(){};,"},
		{"z-a", ""},
	} {
		if s := string(Class(test.class)); s != test.expected {
			t.Errorf("expected class %q to be %q, is %q", test.class, test.expected, s)
		}
	}
}

func TestIdentifier(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexaut.fa")
	defer teardown()
	//
	nfa := Identifier()
	nfa.Dump()
	dfa := nfa.ToDFA()
	if dfa.Size() != 2 {
		t.Errorf("expected identifier DFA to have exactly 2 states, has %d", dfa.Size())
	}
	for _, test := range []struct {
		input  string
		accept bool
	}{
		{"abc", true}, {"x1", true}, {"123", false}, {"2h7h", false}, {"", false},
	} {
		if accept := dfa.Accepts(test.input); accept != test.accept {
			t.Errorf("identifier: expected accept(%q) to be %v", test.input, test.accept)
		}
	}
}

func TestNumbers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexaut.fa")
	defer teardown()
	//
	integer, decimal := Integer().ToDFA(), Decimal().ToDFA()
	if decimal.Size() != 8 {
		t.Errorf("expected decimal DFA to have 8 states, has %d", decimal.Size())
	}
	for _, test := range []struct {
		input     string
		isInteger bool
		isDecimal bool
	}{
		{"0", true, false},
		{"4711", true, false},
		{"3.14", false, true},
		{"12.12345", false, true},
		{"12.123456", false, false},
		{"12.", false, false},
		{".5", false, false},
		{"1.2.3", false, false},
		{"x1", false, false},
		{"", false, false},
	} {
		if integer.Accepts(test.input) != test.isInteger {
			t.Errorf("integer: expected accept(%q) to be %v", test.input, test.isInteger)
		}
		if decimal.Accepts(test.input) != test.isDecimal {
			t.Errorf("decimal: expected accept(%q) to be %v", test.input, test.isDecimal)
		}
	}
}

func TestWords(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexaut.fa")
	defer teardown()
	//
	nfa := Words("if", "int", "in", "else")
	dfa := nfa.ToDFA()
	t.Logf("keyword DFA has %d states", dfa.Size())
	for _, test := range []struct {
		input  string
		accept bool
	}{
		{"if", true}, {"in", true}, {"int", true}, {"else", true},
		{"i", false}, {"ints", false}, {"els", false}, {"", false},
	} {
		if nfa.Accepts(test.input) != test.accept || dfa.Accepts(test.input) != test.accept {
			t.Errorf("keywords: expected accept(%q) to be %v", test.input, test.accept)
		}
	}
	if Words("", "a").ToDFA().Accepts("") != true {
		t.Errorf("expected union with empty word to accept empty input")
	}
}

func TestUnionKeepsLanguages(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexaut.fa")
	defer teardown()
	//
	union := Union(Identifier(), Decimal(), Integer()).ToDFA()
	for _, input := range []string{"abc", "x1", "12", "3.14"} {
		if !union.Accepts(input) {
			t.Errorf("expected union to accept %q", input)
		}
	}
	for _, input := range []string{"2h7h", "+", "", "3."} {
		if union.Accepts(input) {
			t.Errorf("expected union to reject %q", input)
		}
	}
}
