package scanner

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/lexaut"
)

// LangTokenizer is a free-form tokenizer for a Language. It splits its input at
// whitespace, operator and punctuation characters, keeps string literals
// in double quotes whole and skips comments. Tokens are categorized by a
// Classifier.
//
// Offsets in token spans are byte positions of the input.
type LangTokenizer struct {
	lang         *Language
	classifier   Classifier
	reader       *bufio.Reader
	Error        func(error)
	keepComments bool
	pos          uint64          // byte offset of next rune to read
	lexeme       strings.Builder // token under construction
	start, end   uint64          // byte offsets of lexeme in input
	queue        []lexaut.Token  // completed tokens
	eof          bool
}

var _ Tokenizer = (*LangTokenizer)(nil)

// NewTokenizer creates a tokenizer for language lang. If lang is nil, MyLang
// will be used.
func NewTokenizer(lang *Language, input io.Reader, opts ...Option) *LangTokenizer {
	if lang == nil {
		lang = MyLang()
	}
	t := &LangTokenizer{
		lang:   lang,
		reader: bufio.NewReader(input),
		Error:  logError,
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.classifier == nil {
		t.classifier = NewPatternClassifier(lang)
	}
	return t
}

// SetErrorHandler sets an error handler for the scanner.
func (t *LangTokenizer) SetErrorHandler(h func(error)) {
	if h == nil {
		t.Error = logError
		return
	}
	t.Error = h
}

// NextToken is part of the Tokenizer interface. After the input is exhausted,
// NextToken returns tokens of type EOF.
func (t *LangTokenizer) NextToken() lexaut.Token {
	for len(t.queue) == 0 && !t.eof {
		t.scan()
	}
	if len(t.queue) == 0 {
		return MakeDefaultToken(EOF, "", lexaut.Span{t.pos, t.pos})
	}
	tok := t.queue[0]
	t.queue = t.queue[1:]
	tracer().Debugf("token %v at %v", tok, tok.Span())
	return tok
}

// Tokens reads all remaining tokens, excluding EOF.
func (t *LangTokenizer) Tokens() []lexaut.Token {
	var tokens []lexaut.Token
	for tok := t.NextToken(); tok.TokType() != EOF; tok = t.NextToken() {
		tokens = append(tokens, tok)
	}
	return tokens
}

// scan reads a single rune and acts on it. It may complete zero or more tokens.
func (t *LangTokenizer) scan() {
	r, at, ok := t.next()
	if !ok {
		t.flush()
		t.eof = true
		return
	}
	switch {
	case r == '/' && t.peek() == '/':
		t.flush()
		t.lineComment(at)
	case r == '/' && t.peek() == '*':
		t.flush()
		t.blockComment(at)
	case r == '"':
		t.flush()
		t.stringLiteral(at)
	case IsSpace(r):
		t.flush()
	case t.lang.IsOperator(r) || t.lang.IsPunctuation(r):
		t.flush()
		t.emit(string(r), at, t.pos)
	default:
		if t.lexeme.Len() == 0 {
			t.start = at
		}
		t.lexeme.WriteRune(r)
		t.end = t.pos
	}
}

// lineComment consumes a comment up to and including the end of the line.
// The newline is not part of the comment token.
func (t *LangTokenizer) lineComment(at uint64) {
	var b strings.Builder
	b.WriteRune('/')
	end := t.pos
	for {
		r, _, ok := t.next()
		if !ok || r == '\n' {
			break
		}
		b.WriteRune(r)
		end = t.pos
	}
	if t.keepComments {
		t.emit(b.String(), at, end)
	}
}

func (t *LangTokenizer) blockComment(at uint64) {
	var b strings.Builder
	b.WriteRune('/')
	t.next() // '*'
	b.WriteRune('*')
	for {
		r, _, ok := t.next()
		if !ok {
			t.Error(fmt.Errorf("offset %d: unterminated comment", at))
			return
		}
		b.WriteRune(r)
		if r == '*' && t.peek() == '/' {
			t.next()
			b.WriteRune('/')
			break
		}
	}
	if t.keepComments {
		t.emit(b.String(), at, t.pos)
	}
}

// stringLiteral collects a string literal. Comment starters inside the string
// are part of the string. An unterminated literal is reported and emitted as
// far as it goes.
func (t *LangTokenizer) stringLiteral(at uint64) {
	var b strings.Builder
	b.WriteRune('"')
	for {
		r, _, ok := t.next()
		if !ok {
			t.Error(fmt.Errorf("offset %d: unterminated string literal", at))
			break
		}
		b.WriteRune(r)
		if r == '"' {
			break
		}
	}
	t.emit(b.String(), at, t.pos)
}

// flush emits the token under construction, if any.
func (t *LangTokenizer) flush() {
	if t.lexeme.Len() == 0 {
		return
	}
	t.emit(t.lexeme.String(), t.start, t.end)
	t.lexeme.Reset()
}

func (t *LangTokenizer) emit(lexeme string, from, to uint64) {
	cat := t.classifier.Classify(lexeme)
	tok := MakeDefaultToken(cat, lexeme, lexaut.Span{from, to})
	tok.Val = LiteralValue(cat, lexeme)
	t.queue = append(t.queue, tok)
}

// next reads the next rune and returns it together with its byte offset.
func (t *LangTokenizer) next() (rune, uint64, bool) {
	r, size, err := t.reader.ReadRune()
	if err != nil {
		if !errors.Is(err, io.EOF) {
			t.Error(fmt.Errorf("offset %d: %w", t.pos, err))
		}
		return 0, t.pos, false
	}
	at := t.pos
	t.pos += uint64(size)
	return r, at, true
}

// peek returns the next rune without consuming it, or utf8.RuneError.
func (t *LangTokenizer) peek() rune {
	r, _, err := t.reader.ReadRune()
	if err != nil {
		return utf8.RuneError
	}
	_ = t.reader.UnreadRune()
	return r
}

// LiteralValue converts literals to Go values. Other tokens have their lexeme
// as value.
func LiteralValue(cat lexaut.TokType, lexeme string) interface{} {
	switch cat {
	case Integer:
		if n, err := strconv.ParseInt(lexeme, 10, 64); err == nil {
			return n
		}
	case Decimal:
		if f, err := strconv.ParseFloat(lexeme, 64); err == nil {
			return f
		}
	case Boolean:
		if b, err := strconv.ParseBool(lexeme); err == nil {
			return b
		}
	case Character:
		r, _ := utf8.DecodeRuneInString(lexeme[1:])
		return r
	case String:
		return strings.TrimSuffix(strings.TrimPrefix(lexeme, `"`), `"`)
	}
	return lexeme
}
