/*
Package lexmach provides a scanner for toy languages, backed by lexmachine.

The scanner splits input into the same tokens as the tokenizer of package
scanner, but uses lexmachine's DFA-based lexer to do so. Categories of the
tokens are determined by a scanner.Classifier.

    adapter, err := lexmach.NewLMAdapter(scanner.MyLang(), nil)
    …
    sc, err := adapter.Scanner("var x = 1;")
    for tok := sc.NextToken(); tok.TokType() != scanner.EOF; tok = sc.NextToken() {
        …
    }

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexmach

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/schuko/tracing"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"

	"github.com/npillmayer/lexaut"
	"github.com/npillmayer/lexaut/scanner"
)

// tracer traces with key 'lexaut.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("lexaut.scanner")
}

// LMAdapter is a lexmachine adapter to use lexmachine as a scanner.
type LMAdapter struct {
	Lexer *lexmachine.Lexer
}

// NewLMAdapter creates a new lexmachine adapter for a language. Tokens are
// categorized by classifier c; if c is nil, a scanner.PatternClassifier is used.
//
// lexmachine matches bytes, therefore operators and punctuation of the language
// have to be ASCII characters. NewLMAdapter will return an error if this is not
// the case or if compiling the DFA failed.
func NewLMAdapter(lang *scanner.Language, c scanner.Classifier) (*LMAdapter, error) {
	if lang == nil {
		lang = scanner.MyLang()
	}
	if c == nil {
		c = scanner.NewPatternClassifier(lang)
	}
	for _, r := range lang.Operators + lang.Punctuation {
		if r >= utf8.RuneSelf {
			return nil, fmt.Errorf("language %s: lexmachine cannot scan non-ASCII operator %q", lang.Name, r)
		}
	}
	adapter := &LMAdapter{}
	adapter.Lexer = lexmachine.NewLexer()
	adapter.Lexer.Add([]byte(`//[^\n]*\n?`), Skip)
	adapter.Lexer.Add([]byte(`/\*([^*]|\r|\n|(\*+([^*/]|\r|\n)))*\*+/`), Skip)
	adapter.Lexer.Add([]byte("["+whitespace+"]+"), Skip)
	adapter.Lexer.Add([]byte(`\"[^"]*\"`), MakeToken(c))
	for _, lit := range lang.Operators + lang.Punctuation {
		adapter.Lexer.Add([]byte(escape(lit)), MakeToken(c))
	}
	adapter.Lexer.Add([]byte(wordPattern(lang)), MakeToken(c))
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

// whitespace holds the characters for which scanner.IsSpace is true, as raw
// bytes for use in character classes.
const whitespace = " \t\n\v\f\r"

// wordPattern matches runs of characters up to the next delimiter.
func wordPattern(lang *scanner.Language) string {
	var b strings.Builder
	b.WriteString("[^" + whitespace + `\"`)
	for _, r := range lang.Operators + lang.Punctuation {
		b.WriteString(escape(r))
	}
	b.WriteString(`]+`)
	return b.String()
}

// escape quotes ASCII punctuation and symbols. Letters and digits are used
// as they are, as a backslash would turn them into escape sequences.
func escape(r rune) string {
	if r < utf8.RuneSelf && !isAlnum(r) {
		return "\\" + string(r)
	}
	return string(r)
}

func isAlnum(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || '0' <= r && r <= '9' || r == '_'
}

// Scanner creates a scanner for a given input. The scanner will implement the
// Tokenizer interface.
func (lm *LMAdapter) Scanner(input string) (*LMScanner, error) {
	s, err := lm.Lexer.Scanner([]byte(input))
	if err != nil {
		return &LMScanner{}, err
	}
	return &LMScanner{scanner: s, Error: logError}, nil
}

// LMScanner is a scanner type for lexmachine scanners, implementing the
// Tokenizer interface.
type LMScanner struct {
	scanner *lexmachine.Scanner
	Error   func(error)
}

var _ scanner.Tokenizer = (*LMScanner)(nil)

// SetErrorHandler sets an error handler for the scanner.
func (lms *LMScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		lms.Error = logError
		return
	}
	lms.Error = h
}

// Default error reporting function for lexmachine-based scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// NextToken is part of the Tokenizer interface.
//
// Input which cannot be matched, e.g. an unterminated string or comment, is
// reported to the error handler and skipped.
func (lms *LMScanner) NextToken() lexaut.Token {
	tok, err, eof := lms.scanner.Next()
	for err != nil {
		lms.Error(err)
		if ui, is := err.(*machines.UnconsumedInput); is {
			lms.scanner.TC = ui.FailTC
		}
		tok, err, eof = lms.scanner.Next()
	}
	if eof {
		end := uint64(lms.scanner.TC)
		return scanner.MakeDefaultToken(scanner.EOF, "", lexaut.Span{end, end})
	}
	tracer().Debugf("tok is %T | %v", tok, tok)
	token := tok.(*lexmachine.Token)
	lexeme := string(token.Lexeme)
	t := scanner.MakeDefaultToken(
		lexaut.TokType(token.Type),
		lexeme,
		lexaut.Span{uint64(token.TC), uint64(token.TC + len(token.Lexeme))},
	)
	t.Val = token.Value
	return t
}

// ---------------------------------------------------------------------------

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a pre-defined action which wraps a scanned match into a token,
// categorized by a classifier.
func MakeToken(c scanner.Classifier) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		lexeme := string(m.Bytes)
		cat := c.Classify(lexeme)
		return s.Token(int(cat), scanner.LiteralValue(cat, lexeme), m), nil
	}
}
