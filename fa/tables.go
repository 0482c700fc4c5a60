package fa

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/npillmayer/lexaut/fa/sparse"
)

// === Transition Tables =====================================================

// Table is the transition function of a DFA in tabular form. Rows are DFA
// states, columns are positions within the (sorted) alphabet.
type Table struct {
	matrix    *sparse.IntMatrix
	alphabet  []rune
	accepting *StateSet
}

// Table creates the transition table for a DFA.
func (dfa *DFA) Table() *Table {
	tracer().Infof("transition table of size %d x %d", dfa.Size(), len(dfa.alphabet))
	t := &Table{
		matrix:    sparse.NewIntMatrix(dfa.Size(), len(dfa.alphabet), sparse.DefaultNullValue),
		alphabet:  dfa.Alphabet(),
		accepting: dfa.accepting.Copy(),
	}
	for _, tr := range dfa.Triples() {
		j, _ := slices.BinarySearch(t.alphabet, tr.Symbol)
		t.matrix.Set(int(tr.From), j, int32(tr.To))
	}
	return t
}

// Rows returns the number of states.
func (t *Table) Rows() int {
	return t.matrix.M()
}

// Columns returns the number of symbols.
func (t *Table) Columns() int {
	return t.matrix.N()
}

// Next returns the state following s on input symbol r. If there is no such
// transition, false is returned.
func (t *Table) Next(s State, r rune) (State, bool) {
	j, found := slices.BinarySearch(t.alphabet, r)
	if !found || s < 0 || int(s) >= t.matrix.M() {
		return 0, false
	}
	v := t.matrix.Value(int(s), j)
	if v == t.matrix.NullValue() {
		return 0, false
	}
	return State(v), true
}

// Accepts runs the table on input, like (*DFA).Accepts.
func (t *Table) Accepts(input string) bool {
	var current State
	for _, r := range input {
		next, ok := t.Next(current, r)
		if !ok {
			return false
		}
		current = next
	}
	return t.accepting.Contains(current)
}

// TableAsHTML exports the transition table of a DFA in HTML-format.
// Columns for runs of symbols with identical transitions are not merged.
func (dfa *DFA) TableAsHTML(w io.Writer) error {
	t := dfa.Table()
	var b bytes.Buffer
	b.WriteString("<html><body>\n")
	b.WriteString(fmt.Sprintf("DFA transition table with %d entries<p>", t.matrix.ValueCount()))
	b.WriteString("<table border=1 cellspacing=0 cellpadding=5>\n")
	b.WriteString("<tr bgcolor=#cccccc><td></td>\n")
	for _, r := range t.alphabet {
		b.WriteString(fmt.Sprintf("<td>%s</td>", htmlEscape(string(r))))
	}
	b.WriteString("</tr>\n")
	var td string // table cell
	for i := 0; i < t.Rows(); i++ {
		if t.accepting.Contains(State(i)) {
			b.WriteString(fmt.Sprintf("<tr><td><b>state %d</b></td>\n", i))
		} else {
			b.WriteString(fmt.Sprintf("<tr><td>state %d</td>\n", i))
		}
		for j := range t.alphabet {
			if v := t.matrix.Value(i, j); v == t.matrix.NullValue() {
				td = "&nbsp;"
			} else {
				td = fmt.Sprintf("%d", v)
			}
			b.WriteString("<td>")
			b.WriteString(td)
			b.WriteString("</td>\n")
		}
		b.WriteString("</tr>\n")
	}
	b.WriteString("</table></body></html>\n")
	_, err := w.Write(b.Bytes())
	return err
}

// === Graphviz ==============================================================

const dotHeader = `digraph {
graph [rankdir=LR, splines=true, fontname=Helvetica, fontsize=10];
node [shape=Mrecord, style=filled, fontname=Helvetica, fontsize=10];
edge [fontname=Helvetica, fontsize=10];

`

// ToGraphViz exports a DFA to the Graphviz Dot format. Every node shows the
// DFA state and the NFA states it has been constructed from.
func (dfa *DFA) ToGraphViz(w io.Writer) error {
	var b bytes.Buffer
	b.WriteString(dotHeader)
	for s, S := range dfa.sets {
		b.WriteString(fmt.Sprintf("s%03d [fillcolor=%s label=\"{%03d | %s}\"]\n",
			s, nodecolor(dfa.IsAccepting(State(s))), s, recordEscape(S.String())))
	}
	writeEdges(&b, dfa.Triples())
	b.WriteString("}\n")
	_, err := w.Write(b.Bytes())
	return err
}

// ToGraphViz exports an NFA to the Graphviz Dot format.
func (nfa *NFA) ToGraphViz(w io.Writer) error {
	var b bytes.Buffer
	b.WriteString(dotHeader)
	for _, s := range nfa.States() {
		label := fmt.Sprintf("%d", s)
		if s == nfa.start {
			label = fmt.Sprintf("%d | start", s)
		}
		b.WriteString(fmt.Sprintf("s%03d [fillcolor=%s label=\"{%s}\"]\n",
			s, nodecolor(nfa.IsAccepting(s)), label))
	}
	writeEdges(&b, nfa.Triples())
	b.WriteString("}\n")
	_, err := w.Write(b.Bytes())
	return err
}

func nodecolor(accepting bool) string {
	if accepting {
		return "lightgray"
	}
	return "white"
}

// writeEdges writes one Dot edge per pair of states, labeled with all the
// symbols leading from one to the other. Triples have to be sorted.
func writeEdges(b *bytes.Buffer, triples []Triple) {
	type pair struct{ from, to State }
	labels := make(map[pair][]rune)
	var order []pair
	for _, t := range triples {
		p := pair{t.From, t.To}
		if _, ok := labels[p]; !ok {
			order = append(order, p)
		}
		labels[p] = append(labels[p], t.Symbol)
	}
	for _, p := range order {
		b.WriteString(fmt.Sprintf("s%03d -> s%03d [label=\"%s\"]\n", p.from, p.to,
			dotEscape(SymbolRanges(labels[p]))))
	}
}

// SymbolRanges is a short helper to stringify a sorted list of symbols,
// collapsing runs of consecutive symbols into ranges, e.g. "0-9,a-z".
func SymbolRanges(symbols []rune) string {
	var b strings.Builder
	for i := 0; i < len(symbols); {
		j := i
		for j+1 < len(symbols) && symbols[j+1] == symbols[j]+1 {
			j++
		}
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteRune(symbols[i])
		if j > i+1 {
			b.WriteByte('-')
			b.WriteRune(symbols[j])
		} else if j == i+1 {
			b.WriteByte(',')
			b.WriteRune(symbols[j])
		}
		i = j + 1
	}
	return b.String()
}

func dotEscape(s string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`, "\t", `\t`).Replace(s)
}

// recordEscape escapes characters with a special meaning in record labels.
func recordEscape(s string) string {
	return strings.NewReplacer("{", `\{`, "}", `\}`, "|", `\|`, "<", `\<`, ">", `\>`).Replace(s)
}

func htmlEscape(s string) string {
	return strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;", " ", "&nbsp;").Replace(s)
}
