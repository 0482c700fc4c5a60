package lexmach

import (
	"os"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/npillmayer/lexaut"
	"github.com/npillmayer/lexaut/scanner"
)

var inputStrings = []string{
	"x",
	"x=1",
	"var x = 3.14;",
	`print "mystring" // commented `,
	`a"s"b`,
	"/* c */ if (a) { }",
	`print "a /* b */ c";`,
	"",
}

var tokenCounts = []int{1, 3, 5, 2, 3, 6, 3, 0}

func TestLM(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexaut.scanner")
	defer teardown()
	//
	LM, err := NewLMAdapter(scanner.MyLang(), nil)
	if err != nil {
		t.Fatal(err)
	}
	for i, input := range inputStrings {
		t.Logf("------+-----------------+--------")
		sc, err := LM.Scanner(input)
		if err != nil {
			t.Error(err)
		}
		token := sc.NextToken()
		count := 0
		for token.TokType() != scanner.EOF {
			t.Logf(" %4d | %15s | @%5d", token.TokType(), token.Lexeme(), token.Span().From())
			token = sc.NextToken()
			count++
		}
		if count != tokenCounts[i] {
			t.Errorf("Expected token count for #%d to be %d, is %d", i, tokenCounts[i], count)
		}
	}
	t.Logf("------+-----------------+--------")
}

func TestAgreesWithTokenizer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexaut.scanner")
	defer teardown()
	//
	src, err := os.ReadFile("../testdata/sample.mylang")
	if err != nil {
		t.Fatal(err)
	}
	lang := scanner.MyLang()
	LM, err := NewLMAdapter(lang, scanner.NewDFAClassifier(lang))
	if err != nil {
		t.Fatal(err)
	}
	sc, err := LM.Scanner(string(src))
	if err != nil {
		t.Fatal(err)
	}
	var lmTokens []lexaut.Token
	for tok := sc.NextToken(); tok.TokType() != scanner.EOF; tok = sc.NextToken() {
		lmTokens = append(lmTokens, tok)
	}
	tokens := scanner.NewTokenizer(lang, strings.NewReader(string(src))).Tokens()
	if len(lmTokens) != len(tokens) {
		t.Fatalf("expected %d tokens, lexmachine scanner produced %d", len(tokens), len(lmTokens))
	}
	for i, tok := range tokens {
		lmt := lmTokens[i]
		if lmt.Lexeme() != tok.Lexeme() || lmt.TokType() != tok.TokType() ||
			lmt.Span() != tok.Span() || lmt.Value() != tok.Value() {
			t.Errorf("token #%d: expected %v at %v, have %v at %v", i, tok, tok.Span(), lmt, lmt.Span())
		}
	}
}

func TestUnterminated(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexaut.scanner")
	defer teardown()
	//
	LM, err := NewLMAdapter(nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	sc, err := LM.Scanner(`x "abc`)
	if err != nil {
		t.Fatal(err)
	}
	errcnt := 0
	sc.SetErrorHandler(func(e error) {
		t.Logf("error: %v", e)
		errcnt++
	})
	tok := sc.NextToken()
	if tok.Lexeme() != "x" {
		t.Errorf("expected first token to be 'x', is %q", tok.Lexeme())
	}
	for tok.TokType() != scanner.EOF {
		tok = sc.NextToken()
	}
	if errcnt == 0 {
		t.Errorf("expected unterminated string to be reported")
	}
}

func TestAgreesForLanguages(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexaut.scanner")
	defer teardown()
	//
	toy, err := scanner.LoadLanguage("../testdata/toy.yaml")
	if err != nil {
		t.Fatal(err)
	}
	letters, err := scanner.ParseLanguage([]byte("name: Letters\noperators: \"n@\"\npunctuation: \"0;\""))
	if err != nil {
		t.Fatal(err)
	}
	for _, test := range []struct {
		lang  *scanner.Language
		input string
	}{
		{toy, "let x = y.z; fn f(a, b) return a+b; // sum\n\"s\" yes"},
		{toy, "a[1]:b/*c*/.d"},
		{letters, "anb c@d x0y;"},
		{scanner.MyLang(), "a\fb\vc\td e"},
	} {
		LM, err := NewLMAdapter(test.lang, nil)
		if err != nil {
			t.Fatal(err)
		}
		sc, err := LM.Scanner(test.input)
		if err != nil {
			t.Fatal(err)
		}
		var lmTokens []lexaut.Token
		for tok := sc.NextToken(); tok.TokType() != scanner.EOF; tok = sc.NextToken() {
			lmTokens = append(lmTokens, tok)
		}
		tokens := scanner.NewTokenizer(test.lang, strings.NewReader(test.input)).Tokens()
		if len(lmTokens) != len(tokens) {
			t.Errorf("%s %q: expected %d tokens, lexmachine scanner produced %d: %v",
				test.lang.Name, test.input, len(tokens), len(lmTokens), lmTokens)
			continue
		}
		for i, tok := range tokens {
			lmt := lmTokens[i]
			if lmt.Lexeme() != tok.Lexeme() || lmt.TokType() != tok.TokType() || lmt.Span() != tok.Span() {
				t.Errorf("%s %q: expected %v at %v, have %v at %v", test.lang.Name, test.input,
					tok, tok.Span(), lmt, lmt.Span())
			}
		}
	}
}

func TestNonASCIIOperators(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexaut.scanner")
	defer teardown()
	//
	lang, err := scanner.ParseLanguage([]byte("name: Arrows\noperators: \"→+\""))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := NewLMAdapter(lang, nil); err == nil {
		t.Errorf("expected error for non-ASCII operator")
	}
}
