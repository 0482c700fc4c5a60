package main

import (
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/npillmayer/lexaut/scanner"
)

func TestLoadAutomaton(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexaut.fatool")
	defer teardown()
	//
	nfa, label, err := loadAutomaton("", "")
	if err != nil || label != "identifier" {
		t.Fatalf("expected built-in identifier automaton, have %q, %v", label, err)
	}
	if dfa := nfa.ToDFA(); !check(dfa, "x1") || check(dfa, "2h7h") {
		t.Errorf("identifier automaton does not work as expected")
	}
	nfa, label, err = loadAutomaton("../../fa/fadl/testdata/tokens.fa", "second-to-last")
	if err != nil {
		t.Fatal(err)
	}
	if label != "second-to-last" || nfa.ToDFA().Size() != 4 {
		t.Errorf("expected 4-state DFA for second-to-last, have %q", label)
	}
	if _, _, err = loadAutomaton("../../fa/fadl/testdata/tokens.fa", "nope"); err == nil {
		t.Errorf("expected error for unknown automaton")
	}
	if _, _, err = loadAutomaton("nope.fa", ""); err == nil {
		t.Errorf("expected error for missing file")
	}
}

func TestSessionEval(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexaut.fatool")
	defer teardown()
	//
	nfa, label, _ := loadAutomaton("", "")
	lang := scanner.MyLang()
	s := &Session{
		dfa:        nfa.ToDFA(),
		label:      label,
		lang:       lang,
		classifier: makeClassifier(lang, true),
	}
	for _, line := range []string{"abc", "123", ":states", ":tokens var x = 1;", ":what", ":help"} {
		if s.Eval(line) {
			t.Errorf("expected %q not to quit the session", line)
		}
	}
	s.Eval(":load ../../fa/fadl/testdata/tokens.fa second-to-last")
	if s.label != "second-to-last" || s.dfa.Size() != 4 {
		t.Errorf("expected :load to switch to second-to-last automaton, have %s", s.label)
	}
	if !s.Eval(":quit") {
		t.Errorf("expected :quit to end the session")
	}
}

func TestSetTraceLevels(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexaut.fatool")
	defer teardown()
	//
	setTraceLevels("Error")
	for _, key := range []string{"lexaut.fatool", "lexaut.fa", "lexaut.fadl", "lexaut.scanner"} {
		if level := tracing.Select(key).GetTraceLevel(); level != tracing.LevelError {
			t.Errorf("expected trace level of %s to be Error, is %v", key, level)
		}
	}
	setTraceLevels("Debug")
	if tracing.Select("lexaut.fa").GetTraceLevel() != tracing.LevelDebug {
		t.Errorf("expected trace level of lexaut.fa to follow -trace")
	}
}
