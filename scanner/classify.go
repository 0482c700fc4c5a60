package scanner

import (
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/lexaut"
	"github.com/npillmayer/lexaut/fa"
	"github.com/npillmayer/lexaut/fa/builder"
)

// Classifier categorizes lexemes.
type Classifier interface {
	Classify(lexeme string) lexaut.TokType
}

// PatternClassifier categorizes lexemes by checking their shape.
//
// Checks are applied in order: keywords, booleans, integers, decimals,
// identifiers, character literals, comments, operators, punctuation and string
// literals. Anything else is Unknown.
type PatternClassifier struct {
	lang *Language
}

var _ Classifier = (*PatternClassifier)(nil)

// NewPatternClassifier creates a shape-checking classifier for a language.
func NewPatternClassifier(lang *Language) *PatternClassifier {
	return &PatternClassifier{lang: lang}
}

// Classify is part of interface Classifier.
func (pc *PatternClassifier) Classify(lexeme string) lexaut.TokType {
	switch {
	case lexeme == "":
		return Unknown
	case pc.lang.IsKeyword(lexeme):
		return Keyword
	case pc.lang.IsBoolean(lexeme):
		return Boolean
	case isInteger(lexeme):
		return Integer
	case isDecimal(lexeme):
		return Decimal
	case isIdentifier(lexeme):
		return Identifier
	}
	return classifyLiteral(pc.lang, lexeme)
}

// classifyLiteral categorizes lexemes which are neither words nor numbers.
func classifyLiteral(lang *Language, lexeme string) lexaut.TokType {
	first, _ := utf8.DecodeRuneInString(lexeme)
	switch {
	case isCharacter(lexeme):
		return Character
	case strings.HasPrefix(lexeme, "//"):
		return SingleLineComment
	case strings.HasPrefix(lexeme, "/*") && strings.HasSuffix(lexeme, "*/") && len(lexeme) >= 4:
		return MultiLineComment
	case lang.IsOperator(first):
		return Operator
	case lang.IsPunctuation(first):
		return Punctuation
	case len(lexeme) >= 2 && lexeme[0] == '"' && lexeme[len(lexeme)-1] == '"':
		return String
	}
	return Unknown
}

func isInteger(s string) bool {
	return s != "" && strings.Trim(s, "0123456789") == ""
}

// isDecimal checks for one or more digits before and 1 to 5 digits after a
// decimal point.
func isDecimal(s string) bool {
	ipart, fpart, found := strings.Cut(s, ".")
	return found && len(ipart) > 0 && len(fpart) >= 1 && len(fpart) <= 5 &&
		isInteger(ipart) && isInteger(fpart)
}

// isIdentifier checks for a lowercase letter, followed by lowercase letters
// or digits.
func isIdentifier(s string) bool {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return false
	}
	return strings.Trim(s, "abcdefghijklmnopqrstuvwxyz0123456789") == ""
}

func isCharacter(s string) bool {
	return utf8.RuneCountInString(s) == 3 && s[0] == '\'' && s[len(s)-1] == '\''
}

// --- DFA classifier --------------------------------------------------------

// DFAClassifier categorizes lexemes by running deterministic finite automata.
// Keywords, booleans, numbers and identifiers are recognized by DFAs, the
// remaining categories by their shape.
//
// A DFAClassifier is immutable and may be shared between tokenizers.
type DFAClassifier struct {
	lang        *Language
	recognizers []recognizer
}

type recognizer struct {
	category lexaut.TokType
	dfa      *fa.DFA
}

var _ Classifier = (*DFAClassifier)(nil)

// NewDFAClassifier creates DFAs for the words and numbers of a language.
func NewDFAClassifier(lang *Language) *DFAClassifier {
	dc := &DFAClassifier{lang: lang}
	for _, r := range []struct {
		category lexaut.TokType
		nfa      *fa.NFA
	}{
		{Keyword, builder.Words(lang.Keywords...)},
		{Boolean, builder.Words(lang.Booleans...)},
		{Integer, builder.Integer()},
		{Decimal, builder.Decimal()},
		{Identifier, builder.Identifier()},
	} {
		dfa := r.nfa.ToDFA()
		tracer().Debugf("%s recognizer has %d states", CategoryString(r.category), dfa.Size())
		dc.recognizers = append(dc.recognizers, recognizer{r.category, dfa})
	}
	return dc
}

// Classify is part of interface Classifier.
func (dc *DFAClassifier) Classify(lexeme string) lexaut.TokType {
	if lexeme == "" {
		return Unknown
	}
	for _, r := range dc.recognizers {
		if r.dfa.Accepts(lexeme) {
			return r.category
		}
	}
	return classifyLiteral(dc.lang, lexeme)
}

// Recognizer returns the DFA for a token category, or nil.
func (dc *DFAClassifier) Recognizer(category lexaut.TokType) *fa.DFA {
	for _, r := range dc.recognizers {
		if r.category == category {
			return r.dfa
		}
	}
	return nil
}
