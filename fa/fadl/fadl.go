/*
Package fadl implements a small description language for finite automata.

An automaton is described by its start state, its accepting states and a list
of transitions. Symbols are given as Go character literals, ranges of symbols
as lo .. hi:

    // identifiers: a lowercase letter, followed by lowercase letters or digits
    automaton "identifier" {
        start 0
        accept 1
        0 -> 1 on 'a' .. 'z'
        1 -> 1 on 'a' .. 'z', '0' .. '9'
    }

A source may contain more than one automaton. Comments follow Go conventions.
Parsing results in definitions, which will create NFAs on request:

    defs, err := fadl.Parse("my.fa", source)
    …
    nfa := defs[0].NFA()

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fadl

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/npillmayer/schuko/tracing"

	"github.com/npillmayer/lexaut/fa"
)

// tracer traces with key 'lexaut.fadl'.
func tracer() tracing.Trace {
	return tracing.Select("lexaut.fadl")
}

type source struct {
	Automata []*Definition `parser:"@@*"`
}

// Definition is the description of a single automaton.
type Definition struct {
	Pos       lexer.Position
	Name      string  `parser:"'automaton' @String '{'"`
	Start     int     `parser:"'start' @Int"`
	Accepting []int   `parser:"( 'accept' @Int ( ',' @Int )* )?"`
	Edges     []*Edge `parser:"@@* '}'"`
}

// Edge is a transition from one state to another, on a list of symbols.
type Edge struct {
	Pos     lexer.Position
	From    int            `parser:"@Int '-' '>'"`
	To      int            `parser:"@Int 'on'"`
	Symbols []*SymbolRange `parser:"@@ ( ',' @@ )*"`
}

// SymbolRange is either a single symbol or a range lo .. hi of symbols.
type SymbolRange struct {
	Pos lexer.Position
	Lo  string `parser:"@Char"`
	Hi  string `parser:"( '.' '.' @Char )?"`
}

var parser = participle.MustBuild[source](
	participle.Unquote("String", "Char"),
)

// Parse parses automata descriptions from src. name is used for error messages.
func Parse(name string, src string) ([]*Definition, error) {
	s, err := parser.ParseString(name, src)
	if err != nil {
		return nil, fmt.Errorf("cannot parse automata: %w", err)
	}
	names := make(map[string]bool)
	for _, def := range s.Automata {
		if names[def.Name] {
			return nil, fmt.Errorf("%s: duplicate automaton %q", def.Pos, def.Name)
		}
		names[def.Name] = true
		if err := def.check(); err != nil {
			return nil, err
		}
	}
	tracer().Debugf("parsed %d automata from %s", len(s.Automata), name)
	return s.Automata, nil
}

// ParseFile reads and parses automata descriptions from a file.
func ParseFile(path string) ([]*Definition, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read automata: %w", err)
	}
	return Parse(path, string(src))
}

// Find returns the definition with a given name, or nil.
func Find(defs []*Definition, name string) *Definition {
	for _, def := range defs {
		if def.Name == name {
			return def
		}
	}
	return nil
}

func (def *Definition) check() error {
	for _, e := range def.Edges {
		for _, sym := range e.Symbols {
			if utf8.RuneCountInString(sym.Lo) != 1 || sym.Hi != "" && utf8.RuneCountInString(sym.Hi) != 1 {
				return fmt.Errorf("%s: symbols must be single characters", sym.Pos)
			}
			if lo, hi := sym.bounds(); lo > hi {
				return fmt.Errorf("%s: empty symbol range %q .. %q", sym.Pos, lo, hi)
			}
		}
	}
	return nil
}

func (sym *SymbolRange) bounds() (rune, rune) {
	lo, _ := utf8.DecodeRuneInString(sym.Lo)
	if sym.Hi == "" {
		return lo, lo
	}
	hi, _ := utf8.DecodeRuneInString(sym.Hi)
	return lo, hi
}

// NFA creates a new NFA from the definition.
func (def *Definition) NFA() *fa.NFA {
	accepting := make([]fa.State, len(def.Accepting))
	for i, s := range def.Accepting {
		accepting[i] = fa.State(s)
	}
	nfa := fa.NewNFA(fa.State(def.Start), accepting...)
	for _, e := range def.Edges {
		for _, sym := range e.Symbols {
			lo, hi := sym.bounds()
			nfa.AddRange(fa.State(e.From), lo, hi, fa.State(e.To))
		}
	}
	return nfa
}

// Describe writes the description of an NFA to w. Runs of consecutive symbols
// between the same pair of states are written as ranges.
func Describe(w io.Writer, name string, nfa *fa.NFA) error {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("automaton %q {\n", name))
	b.WriteString(fmt.Sprintf("    start %d\n", nfa.Start()))
	if acc := nfa.AcceptingStates(); len(acc) > 0 {
		b.WriteString("    accept ")
		for i, s := range acc {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(fmt.Sprintf("%d", s))
		}
		b.WriteString("\n")
	}
	type pair struct{ from, to fa.State }
	symbols := make(map[pair][]rune)
	var order []pair
	for _, t := range nfa.Triples() {
		p := pair{t.From, t.To}
		if _, ok := symbols[p]; !ok {
			order = append(order, p)
		}
		symbols[p] = append(symbols[p], t.Symbol)
	}
	for _, p := range order {
		b.WriteString(fmt.Sprintf("    %d -> %d on %s\n", p.from, p.to, ranges(symbols[p])))
	}
	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	return err
}

// ranges formats sorted symbols as a list of character literals and ranges.
func ranges(symbols []rune) string {
	var parts []string
	for i := 0; i < len(symbols); {
		j := i
		for j+1 < len(symbols) && symbols[j+1] == symbols[j]+1 {
			j++
		}
		if j > i {
			parts = append(parts, fmt.Sprintf("%q .. %q", symbols[i], symbols[j]))
		} else {
			parts = append(parts, fmt.Sprintf("%q", symbols[i]))
		}
		i = j + 1
	}
	return strings.Join(parts, ", ")
}
