package scanner

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/exp/slices"
	"sigs.k8s.io/yaml"
)

// Language is the configuration of a tokenizer. A language configuration is
// treated as immutable and may be shared between tokenizers.
//
// Languages may be read from YAML:
//
//    name: MyLang
//    keywords: [var, print, if, else, while]
//    booleans: ["true", "false"]
//    operators: "+-*/%^=<>!&|"
//    punctuation: "(){};,"
//
type Language struct {
	Name        string   `json:"name"`
	Keywords    []string `json:"keywords"`
	Booleans    []string `json:"booleans"`
	Operators   string   `json:"operators"`   // single-character operators
	Punctuation string   `json:"punctuation"` // single-character punctuation
}

// MyLang returns the default toy language.
func MyLang() *Language {
	return &Language{
		Name:        "MyLang",
		Keywords:    []string{"var", "print", "if", "else", "while"},
		Booleans:    []string{"true", "false"},
		Operators:   "+-*/%^=<>!&|",
		Punctuation: "(){};,",
	}
}

// ParseLanguage reads a language configuration from YAML.
func ParseLanguage(data []byte) (*Language, error) {
	lang := &Language{}
	if err := yaml.Unmarshal(data, lang); err != nil {
		return nil, fmt.Errorf("cannot read language configuration: %w", err)
	}
	if err := lang.check(); err != nil {
		return nil, err
	}
	return lang, nil
}

// LoadLanguage reads a language configuration from a YAML file.
func LoadLanguage(path string) (*Language, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot load language: %w", err)
	}
	return ParseLanguage(data)
}

func (lang *Language) check() error {
	if lang.Name == "" {
		return fmt.Errorf("language configuration without a name")
	}
	for _, r := range lang.Operators + lang.Punctuation {
		if IsSpace(r) || r == '"' {
			return fmt.Errorf("language %s: %q cannot be an operator or punctuation", lang.Name, r)
		}
		if strings.ContainsRune(lang.Operators, r) && strings.ContainsRune(lang.Punctuation, r) {
			return fmt.Errorf("language %s: %q is both operator and punctuation", lang.Name, r)
		}
	}
	for _, w := range append(lang.Keywords, lang.Booleans...) {
		if w == "" || strings.IndexFunc(w, lang.isDelimiter) >= 0 {
			return fmt.Errorf("language %s: %q cannot be a keyword", lang.Name, w)
		}
	}
	return nil
}

// IsKeyword returns true if s is a keyword of the language.
func (lang *Language) IsKeyword(s string) bool {
	return slices.Contains(lang.Keywords, s)
}

// IsBoolean returns true if s is a boolean literal of the language.
func (lang *Language) IsBoolean(s string) bool {
	return slices.Contains(lang.Booleans, s)
}

// IsOperator returns true if r is an operator of the language.
func (lang *Language) IsOperator(r rune) bool {
	return strings.ContainsRune(lang.Operators, r)
}

// IsPunctuation returns true if r is a punctuation character of the language.
func (lang *Language) IsPunctuation(r rune) bool {
	return strings.ContainsRune(lang.Punctuation, r)
}

// IsSpace returns true for the characters separating tokens. These are the ASCII
// whitespace characters only; other Unicode spaces are part of a token.
func IsSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// isDelimiter returns true for characters which end a token.
func (lang *Language) isDelimiter(r rune) bool {
	return IsSpace(r) || r == '"' || lang.IsOperator(r) || lang.IsPunctuation(r)
}
