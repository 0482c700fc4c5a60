/*
Package scanner implements a tokenizer for small, C-like toy languages.

The tokenizer splits input into tokens by classifying characters: whitespace
separates tokens, operator and punctuation characters form single-character
tokens, double quotes delimit string literals, and line and block comments
are skipped. Every token is then classified as keyword, number, identifier,
etc. Two classifiers are provided: a PatternClassifier, which uses ad-hoc shape
checks, and a DFAClassifier, which runs deterministic finite automata built
with package fa.

Keywords, operators and punctuation are configured by a Language, which
may be loaded from a YAML file. MyLang is the default language.

An alternative scanner, backed by lexmachine, lives in sub-package `lexmach`.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"fmt"

	"github.com/npillmayer/lexaut"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lexaut.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("lexaut.scanner")
}

// Token categories.
const (
	EOF lexaut.TokType = iota - 1
	Unknown
	Keyword
	Boolean
	Integer
	Decimal
	Identifier
	Character
	String
	Operator
	Punctuation
	SingleLineComment
	MultiLineComment
)

var categoryNames = map[lexaut.TokType]string{
	EOF:               "EOF",
	Unknown:           "Unknown",
	Keyword:           "Keyword",
	Boolean:           "Boolean",
	Integer:           "Integer",
	Decimal:           "Decimal",
	Identifier:        "Identifier",
	Character:         "Character",
	String:            "String",
	Operator:          "Operator",
	Punctuation:       "Punctuation",
	SingleLineComment: "Single-line Comment",
	MultiLineComment:  "Multi-line Comment",
}

// CategoryString returns a readable name for a token category.
func CategoryString(t lexaut.TokType) string {
	if s, ok := categoryNames[t]; ok {
		return s
	}
	return fmt.Sprintf("<category %d>", t)
}

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() lexaut.Token
	SetErrorHandler(func(error))
}

// Default error reporting function for scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used by the tokenizer of
// this package as well as the LexMachine scanner.
type DefaultToken struct {
	kind   lexaut.TokType
	lexeme string
	Val    interface{}
	span   lexaut.Span
}

// MakeDefaultToken creates a token without a value.
func MakeDefaultToken(typ lexaut.TokType, lexeme string, span lexaut.Span) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
	}
}

func (t DefaultToken) TokType() lexaut.TokType {
	return t.kind
}

func (t DefaultToken) Value() interface{} {
	return t.Val
}

func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

func (t DefaultToken) Span() lexaut.Span {
	return t.span
}

func (t DefaultToken) String() string {
	return fmt.Sprintf("TOKEN: %s (Type: %s)", t.lexeme, CategoryString(t.kind))
}

// --- Scanner options ---------------------------------------------------------

// Option configures a tokenizer.
type Option func(t *LangTokenizer)

// KeepComments sets or clears option KeepComments: pass comments as tokens
// instead of skipping them.
func KeepComments(b bool) Option {
	return func(t *LangTokenizer) {
		t.keepComments = b
	}
}

// WithClassifier sets the classifier for tokens. The default is a
// PatternClassifier for the tokenizer's language.
func WithClassifier(c Classifier) Option {
	return func(t *LangTokenizer) {
		if c != nil {
			t.classifier = c
		}
	}
}
