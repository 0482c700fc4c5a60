package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/npillmayer/lexaut/fa"
	"github.com/npillmayer/lexaut/fa/builder"
	"github.com/npillmayer/lexaut/fa/fadl"
	"github.com/npillmayer/lexaut/scanner"
)

// sampleInputs are checked if no inputs are given on the command line.
var sampleInputs = []string{"abc", "x1", "123", "3.14", "var", "+", ";", "true", "2h7h"}

func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	fafile := flag.String("fa", "", "Automaton description file (default: identifier automaton)")
	name := flag.String("name", "", "Name of automaton in description file (default: first)")
	dotfile := flag.String("dot", "", "Write DFA in GraphViz DOT format to file")
	htmlfile := flag.String("html", "", "Write DFA transition table as HTML to file")
	langfile := flag.String("lang", "", "Language configuration in YAML (default: MyLang)")
	tokfile := flag.String("tokenize", "", "Tokenize a source file")
	useDFA := flag.Bool("dfa", false, "Classify tokens by DFAs instead of patterns")
	interactive := flag.Bool("i", false, "Interactive mode")
	flag.Parse()
	setTraceLevels(*tlevel)
	tracer().Infof("Trace level is %s", *tlevel)
	//
	lang := scanner.MyLang()
	if *langfile != "" {
		var err error
		if lang, err = scanner.LoadLanguage(*langfile); err != nil {
			fail(err)
		}
		pterm.Info.Println(fmt.Sprintf("Using language %s", lang.Name))
	}
	classifier := makeClassifier(lang, *useDFA)
	if *tokfile != "" {
		if err := tokenizeFile(*tokfile, lang, classifier); err != nil {
			fail(err)
		}
		if flag.NArg() == 0 && !*interactive && *fafile == "" {
			return
		}
	}
	//
	nfa, label, err := loadAutomaton(*fafile, *name)
	if err != nil {
		fail(err)
	}
	nfa.Dump() // visible with -trace Debug
	dfa := nfa.ToDFA()
	dfa.Dump()
	pterm.Info.Println(fmt.Sprintf("DFA for %s has %d states, %d accepting",
		label, dfa.Size(), len(dfa.AcceptingStates())))
	if *dotfile != "" {
		if err := export(*dotfile, dfa.ToGraphViz); err != nil {
			fail(err)
		}
	}
	if *htmlfile != "" {
		if err := export(*htmlfile, dfa.TableAsHTML); err != nil {
			fail(err)
		}
	}
	inputs := flag.Args()
	if len(inputs) == 0 && !*interactive {
		inputs = sampleInputs
	}
	for _, input := range inputs {
		check(dfa, input)
	}
	if *interactive {
		repl, err := readline.New("fatool> ")
		if err != nil {
			fail(err)
		}
		defer repl.Close()
		session := &Session{
			dfa:        dfa,
			label:      label,
			lang:       lang,
			classifier: classifier,
			repl:       repl,
		}
		tracer().Infof("Quit with <ctrl>D")
		session.REPL()
	}
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Success.Prefix = pterm.Prefix{
		Text:  "  ACCEPT",
		Style: pterm.NewStyle(pterm.BgGreen, pterm.FgBlack),
	}
	pterm.Warning.Prefix = pterm.Prefix{
		Text:  "  REJECT",
		Style: pterm.NewStyle(pterm.BgYellow, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func fail(err error) {
	pterm.Error.Println(err.Error())
	os.Exit(1)
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}

// traceKeys are the tracers of fatool and of the packages it uses.
var traceKeys = []string{"lexaut.fatool", "lexaut.fa", "lexaut.fadl", "lexaut.scanner"}

func setTraceLevels(l string) {
	level := traceLevel(l)
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
}

// --- Automata --------------------------------------------------------------

// loadAutomaton reads an NFA from a description file. Without a file, the
// built-in identifier automaton is used.
func loadAutomaton(path, name string) (*fa.NFA, string, error) {
	if path == "" {
		return builder.Identifier(), "identifier", nil
	}
	defs, err := fadl.ParseFile(path)
	if err != nil {
		return nil, "", err
	}
	if len(defs) == 0 {
		return nil, "", fmt.Errorf("no automaton found in %s", path)
	}
	def := defs[0]
	if name != "" {
		if def = fadl.Find(defs, name); def == nil {
			return nil, "", fmt.Errorf("no automaton %q in %s", name, path)
		}
	}
	return def.NFA(), def.Name, nil
}

func check(dfa *fa.DFA, input string) bool {
	if dfa.Accepts(input) {
		pterm.Success.Println(fmt.Sprintf("%q", input))
		return true
	}
	pterm.Warning.Println(fmt.Sprintf("%q", input))
	return false
}

func export(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot export DFA: %w", err)
	}
	if err = write(f); err != nil {
		f.Close()
		return fmt.Errorf("cannot export DFA: %w", err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("cannot export DFA: %w", err)
	}
	pterm.Info.Println(fmt.Sprintf("DFA written to %s", path))
	return nil
}

// showStates displays the DFA states as a tree: every state with the NFA
// states it stands for and its outgoing transitions.
func showStates(dfa *fa.DFA, label string) {
	ll := pterm.LeveledList{{Level: 0, Text: label}}
	triples := dfa.Triples()
	for s := 0; s < dfa.Size(); s++ {
		state := fa.State(s)
		text := fmt.Sprintf("state %d = %s", s, dfa.StateSet(state))
		if dfa.IsAccepting(state) {
			text += " (accepting)"
		}
		ll = append(ll, pterm.LeveledListItem{Level: 1, Text: text})
		targets := make(map[fa.State][]rune)
		var order []fa.State
		for _, t := range triples {
			if t.From != state {
				continue
			}
			if _, ok := targets[t.To]; !ok {
				order = append(order, t.To)
			}
			targets[t.To] = append(targets[t.To], t.Symbol)
		}
		for _, to := range order {
			ll = append(ll, pterm.LeveledListItem{
				Level: 2,
				Text:  fmt.Sprintf("%s → %d", fa.SymbolRanges(targets[to]), to),
			})
		}
	}
	root := pterm.NewTreeFromLeveledList(ll)
	pterm.DefaultTree.WithRoot(root).Render()
}

// --- Tokenizing ------------------------------------------------------------

func makeClassifier(lang *scanner.Language, useDFA bool) scanner.Classifier {
	if useDFA {
		return scanner.NewDFAClassifier(lang)
	}
	return scanner.NewPatternClassifier(lang)
}

func tokenizeFile(path string, lang *scanner.Language, c scanner.Classifier) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("cannot tokenize: %w", err)
	}
	defer f.Close()
	showTokens(tokenize(f, lang, c))
	return nil
}

func tokenize(r io.Reader, lang *scanner.Language, c scanner.Classifier) *scanner.LangTokenizer {
	t := scanner.NewTokenizer(lang, r, scanner.WithClassifier(c))
	t.SetErrorHandler(func(e error) {
		pterm.Error.Println(e.Error())
	})
	return t
}

func showTokens(t *scanner.LangTokenizer) {
	data := pterm.TableData{{"Token", "Category", "Span"}}
	for _, tok := range t.Tokens() {
		data = append(data, []string{
			tok.Lexeme(),
			scanner.CategoryString(tok.TokType()),
			tok.Span().String(),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	pterm.Info.Println(fmt.Sprintf("%d tokens", len(data)-1))
}

// --- Interactive mode ------------------------------------------------------

// Session is an interactive fatool session.
type Session struct {
	dfa        *fa.DFA
	label      string
	lang       *scanner.Language
	classifier scanner.Classifier
	repl       *readline.Instance
}

// REPL starts interactive mode.
func (s *Session) REPL() {
	for {
		line, err := s.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		if quit := s.Eval(line); quit {
			break
		}
	}
	println("Good bye!")
}

// Eval checks a line against the DFA or executes a command.
func (s *Session) Eval(line string) bool {
	if !strings.HasPrefix(line, ":") {
		check(s.dfa, line)
		return false
	}
	cmd, arg, _ := strings.Cut(strings.TrimSpace(line[1:]), " ")
	switch cmd {
	case "quit", "q":
		return true
	case "states":
		showStates(s.dfa, s.label)
	case "fingerprint":
		pterm.Info.Println(s.dfa.Fingerprint())
	case "tokens":
		showTokens(tokenize(strings.NewReader(arg), s.lang, s.classifier))
	case "load":
		name := ""
		path, rest, found := strings.Cut(strings.TrimSpace(arg), " ")
		if found {
			name = strings.TrimSpace(rest)
		}
		nfa, label, err := loadAutomaton(path, name)
		if err != nil {
			pterm.Error.Println(err.Error())
			return false
		}
		s.dfa, s.label = nfa.ToDFA(), label
		pterm.Info.Println(fmt.Sprintf("DFA for %s has %d states", label, s.dfa.Size()))
	case "help":
		pterm.Info.Println("<input>             check input against the DFA")
		pterm.Info.Println(":states             show the states of the DFA")
		pterm.Info.Println(":fingerprint        show the fingerprint of the DFA")
		pterm.Info.Println(":tokens <text>      tokenize text")
		pterm.Info.Println(":load <file> [name] load an automaton")
		pterm.Info.Println(":quit               quit")
	default:
		pterm.Error.Println(fmt.Sprintf("unknown command %q, try :help", cmd))
	}
	return false
}
