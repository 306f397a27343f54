package lexer

import (
	"testing"

	"github.com/funvibe/funbf/internal/token"
)

func TestTokenize_FiltersComments(t *testing.T) {
	input := "read a value +++ then move > and loop [-] done!"
	tokens := Tokenize(input)

	want := []token.Type{
		token.Increment, token.Increment, token.Increment,
		token.PointerRight,
		token.LoopOpen, token.Decrement, token.LoopClose,
	}
	if len(tokens) != len(want) {
		t.Fatalf("token count: got %d, want %d", len(tokens), len(want))
	}
	for i, tok := range tokens {
		if tok.Type != want[i] {
			t.Errorf("token %d: got %v, want %v", i, tok.Type, want[i])
		}
	}
}

func TestTokenize_CommentsDontChangeProgram(t *testing.T) {
	// The same instruction sequence with and without surrounding prose
	// must lex identically.
	dense := Tokenize("++[>+<-].")
	commented := Tokenize("+ add\n+ add again\n[ loop: > + < - ] then\n. print")

	if len(dense) != len(commented) {
		t.Fatalf("token count: got %d, want %d", len(commented), len(dense))
	}
	for i := range dense {
		if dense[i].Type != commented[i].Type {
			t.Errorf("token %d: got %v, want %v", i, commented[i].Type, dense[i].Type)
		}
	}
}

func TestTokenize_Empty(t *testing.T) {
	if tokens := Tokenize(""); len(tokens) != 0 {
		t.Errorf("empty input: got %d tokens, want 0", len(tokens))
	}
	if tokens := Tokenize("no instructions here at all"); len(tokens) != 0 {
		t.Errorf("comment-only input: got %d tokens, want 0", len(tokens))
	}
}

func TestTokenize_AllInstructions(t *testing.T) {
	tokens := Tokenize("><+-.,[]")
	want := []token.Type{
		token.PointerRight, token.PointerLeft,
		token.Increment, token.Decrement,
		token.Output, token.Input,
		token.LoopOpen, token.LoopClose,
	}
	if len(tokens) != len(want) {
		t.Fatalf("token count: got %d, want %d", len(tokens), len(want))
	}
	for i, tok := range tokens {
		if tok.Type != want[i] {
			t.Errorf("token %d: got %v, want %v", i, tok.Type, want[i])
		}
	}
}

func TestTokenize_Positions(t *testing.T) {
	tokens := Tokenize("+\nab+c+")

	want := []struct {
		line, column int
	}{
		{1, 1},
		{2, 3},
		{2, 5},
	}
	if len(tokens) != len(want) {
		t.Fatalf("token count: got %d, want %d", len(tokens), len(want))
	}
	for i, tok := range tokens {
		if tok.Line != want[i].line || tok.Column != want[i].column {
			t.Errorf("token %d position: got %d:%d, want %d:%d",
				i, tok.Line, tok.Column, want[i].line, want[i].column)
		}
	}
}

func TestNext_Exhausted(t *testing.T) {
	l := New("+")
	if _, ok := l.Next(); !ok {
		t.Fatal("first Next: got ok=false, want true")
	}
	if _, ok := l.Next(); ok {
		t.Error("second Next: got ok=true, want false")
	}
	if _, ok := l.Next(); ok {
		t.Error("Next after exhaustion: got ok=true, want false")
	}
}
