package scanner

import (
	"testing"

	"github.com/npillmayer/pushdown"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestTokenizeAnBn(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pushdown.scanner")
	defer teardown()
	//
	A, err := NewAlphabet([]string{"a", "b"})
	if err != nil {
		t.Fatal(err)
	}
	tokens, err := A.Tokenize("aabb$")
	if err != nil {
		t.Fatal(err)
	}
	expected := []pushdown.TokType{1, 1, 2, 2, pushdown.EndMarker}
	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, have %d", len(expected), len(tokens))
	}
	for i, tok := range tokens {
		if tok.TokType() != expected[i] {
			t.Errorf("token #%d: expected type %d, is %v", i, expected[i], tok)
		}
		if tok.Span().From() != uint64(i) || tok.Span().Len() != 1 {
			t.Errorf("token #%d: unexpected span %s", i, tok.Span())
		}
	}
}

func TestBlanksAreIllegal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pushdown.scanner")
	defer teardown()
	//
	A, err := NewAlphabet([]string{"a", "b"})
	if err != nil {
		t.Fatal(err)
	}
	tokens, _ := A.Tokenize(" a\tb$")
	expected := []pushdown.TokType{pushdown.Illegal, 1, pushdown.Illegal, 2, pushdown.EndMarker}
	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, have %d: %v", len(expected), len(tokens), tokens)
	}
	for i, tok := range tokens {
		if tok.TokType() != expected[i] {
			t.Errorf("token #%d: expected type %d, is %v", i, expected[i], tok)
		}
	}
	if tokens[2].Lexeme() != "\t" || tokens[2].Span() != (pushdown.Span{2, 3}) {
		t.Errorf("expected tab at position 2, is %v", tokens[2])
	}
	tokens, _ = A.Tokenize("a \n b")
	if len(tokens) != 3 || tokens[1].Lexeme() != " \n " || tokens[1].Span() != (pushdown.Span{1, 4}) {
		t.Errorf("expected blanks between a and b to form a single illegal token, have %v", tokens)
	}
}

func TestMultiByteRuneIsOneToken(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pushdown.scanner")
	defer teardown()
	//
	A, err := NewAlphabet([]string{"a", "b"})
	if err != nil {
		t.Fatal(err)
	}
	tokens, _ := A.Tokenize("aéb")
	if len(tokens) != 3 {
		t.Fatalf("expected 3 tokens, have %d: %v", len(tokens), tokens)
	}
	if tokens[1].TokType() != pushdown.Illegal || tokens[1].Lexeme() != "é" || tokens[1].Span().Len() != 2 {
		t.Errorf("expected é to be a single illegal token, is %v", tokens[1])
	}
}

func TestIllegalInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pushdown.scanner")
	defer teardown()
	//
	A, err := NewAlphabet([]string{"a", "b"})
	if err != nil {
		t.Fatal(err)
	}
	tokens, _ := A.Tokenize("acb")
	if len(tokens) != 3 {
		t.Fatalf("expected 3 tokens, have %d", len(tokens))
	}
	if tokens[1].TokType() != pushdown.Illegal || tokens[1].Lexeme() != "c" {
		t.Errorf("expected c to be illegal, is %v", tokens[1])
	}
	if tokens[2].TokType() != 2 {
		t.Errorf("expected scanner to continue after illegal input, is %v", tokens[2])
	}
}

func TestQuotedLiterals(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pushdown.scanner")
	defer teardown()
	//
	A, err := NewAlphabet([]string{"(", ")", "+*"})
	if err != nil {
		t.Fatal(err)
	}
	tokens, _ := A.Tokenize("(+*)$")
	expected := []pushdown.TokType{1, 3, 2, pushdown.EndMarker}
	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, have %d: %v", len(expected), len(tokens), tokens)
	}
	for i, tok := range tokens {
		if tok.TokType() != expected[i] {
			t.Errorf("token #%d: expected type %d, is %v", i, expected[i], tok)
		}
	}
}

func TestScannerEOF(t *testing.T) {
	A, err := NewAlphabet([]string{"a"})
	if err != nil {
		t.Fatal(err)
	}
	scan, err := A.Scanner("a")
	if err != nil {
		t.Fatal(err)
	}
	scan.SetErrorHandler(func(e error) {
		t.Errorf("unexpected scanner error: %v", e)
	})
	if tok := scan.NextToken(); tok.TokType() != 1 {
		t.Errorf("expected token a, is %v", tok)
	}
	for i := 0; i < 2; i++ {
		if tok := scan.NextToken(); tok.TokType() != pushdown.EOF || tok.Span().From() != 1 || tok.Span().Len() != 0 {
			t.Errorf("expected EOF with empty span at end of input, is %v", tok)
		}
	}
}

func TestIllegalTerminals(t *testing.T) {
	for _, terms := range [][]string{{"a", "$"}, {""}} {
		if _, err := NewAlphabet(terms); err == nil {
			t.Errorf("expected alphabet %q to be rejected", terms)
		}
	}
}
