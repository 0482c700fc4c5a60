package fa

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestTableAgreesWithDFA(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexaut.fa")
	defer teardown()
	//
	for _, nfa := range []*NFA{identifierNFA(), secondToLastNFA()} {
		dfa := nfa.ToDFA()
		table := dfa.Table()
		if table.Rows() != dfa.Size() || table.Columns() != len(dfa.Alphabet()) {
			t.Errorf("table dimensions %d x %d do not fit DFA", table.Rows(), table.Columns())
		}
		symbols := append(dfa.Alphabet(), '#')
		for s := 0; s < dfa.Size(); s++ {
			for _, r := range symbols {
				s1, ok1 := dfa.Step(State(s), r)
				s2, ok2 := table.Next(State(s), r)
				if ok1 != ok2 || s1 != s2 {
					t.Errorf("table and DFA disagree for (%d,%q): %d/%v vs %d/%v",
						s, r, s1, ok1, s2, ok2)
				}
			}
		}
	}
	table := identifierNFA().ToDFA().Table()
	for _, test := range identifierInputs {
		if table.Accepts(test.input) != test.accept {
			t.Errorf("table: expected accept(%q) to be %v", test.input, test.accept)
		}
	}
}

func TestGraphViz(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexaut.fa")
	defer teardown()
	//
	nfa := identifierNFA()
	var b bytes.Buffer
	if err := nfa.ToDFA().ToGraphViz(&b); err != nil {
		t.Fatal(err)
	}
	dot := b.String()
	t.Logf("\n%s", dot)
	for _, expected := range []string{
		"digraph {",
		`s000 -> s001 [label="a-z"]`,
		`s001 -> s001 [label="0-9,a-z"]`,
		`s001 [fillcolor=lightgray label="{001 | \{1\}}"]`,
	} {
		if !strings.Contains(dot, expected) {
			t.Errorf("expected DOT output to contain %q", expected)
		}
	}
	b.Reset()
	if err := nfa.ToGraphViz(&b); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(b.String(), `s000 [fillcolor=white label="{0 | start}"]`) {
		t.Errorf("expected NFA DOT output to mark the start state, is\n%s", b.String())
	}
}

func TestTableAsHTML(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexaut.fa")
	defer teardown()
	//
	var b bytes.Buffer
	if err := secondToLastNFA().ToDFA().TableAsHTML(&b); err != nil {
		t.Fatal(err)
	}
	html := b.String()
	if !strings.Contains(html, "<td>state 0</td>") || !strings.Contains(html, "<td><b>state 3</b></td>") {
		t.Errorf("expected HTML to contain rows for states 0…3, is\n%s", html)
	}
	if strings.Count(html, "<tr>") != 4 {
		t.Errorf("expected 4 state rows in HTML table")
	}
}

func TestSymbolRanges(t *testing.T) {
	for _, test := range []struct {
		symbols  string
		expected string
	}{
		{"", ""},
		{"a", "a"},
		{"ab", "a,b"},
		{"abc", "a-c"},
		{"0123456789abcdefghijklmnopqrstuvwxyz", "0-9,a-z"},
		{"acde+", "a,c-e,+"},
	} {
		if s := SymbolRanges([]rune(test.symbols)); s != test.expected {
			t.Errorf("expected ranges of %q to be %q, are %q", test.symbols, test.expected, s)
		}
	}
}
