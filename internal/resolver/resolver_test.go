package resolver

import (
	"testing"

	"github.com/funvibe/funbf/internal/diagnostics"
	"github.com/funvibe/funbf/internal/lexer"
)

func TestResolve_NestedPartners(t *testing.T) {
	p, err := Resolve(lexer.Tokenize("[[]]"))
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	pairs := []struct{ open, close int }{
		{0, 3},
		{1, 2},
	}
	for _, pair := range pairs {
		if got := p.At(pair.open).Partner; got != pair.close {
			t.Errorf("partner of %d: got %d, want %d", pair.open, got, pair.close)
		}
		if got := p.At(pair.close).Partner; got != pair.open {
			t.Errorf("partner of %d: got %d, want %d", pair.close, got, pair.open)
		}
	}
}

func TestResolve_NonLoopsHaveNoPartner(t *testing.T) {
	p, err := Resolve(lexer.Tokenize("+[>-<]"))
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	for _, i := range []int{0, 2, 3, 4} {
		if got := p.At(i).Partner; got != -1 {
			t.Errorf("partner of non-loop %d: got %d, want -1", i, got)
		}
	}
	if p.At(1).Partner != 5 || p.At(5).Partner != 1 {
		t.Errorf("loop partners: got %d and %d, want 5 and 1", p.At(1).Partner, p.At(5).Partner)
	}
}

func TestResolve_UnmatchedClose(t *testing.T) {
	p, err := Resolve(lexer.Tokenize("+]"))
	if p != nil {
		t.Error("expected no program for unmatched close")
	}
	if err == nil {
		t.Fatal("expected error for unmatched close")
	}
	if err.Code != diagnostics.ErrE002 {
		t.Errorf("code: got %s, want %s", err.Code, diagnostics.ErrE002)
	}
	if err.Line != 1 || err.Column != 2 {
		t.Errorf("position: got %d:%d, want 1:2", err.Line, err.Column)
	}
}

func TestResolve_UnmatchedOpenReportsEarliest(t *testing.T) {
	// The inner pair matches; the leftmost '[' is the unmatched one.
	p, err := Resolve(lexer.Tokenize("[[]"))
	if p != nil {
		t.Error("expected no program for unmatched open")
	}
	if err == nil {
		t.Fatal("expected error for unmatched open")
	}
	if err.Code != diagnostics.ErrE001 {
		t.Errorf("code: got %s, want %s", err.Code, diagnostics.ErrE001)
	}
	if err.Line != 1 || err.Column != 1 {
		t.Errorf("position: got %d:%d, want 1:1", err.Line, err.Column)
	}
}

func TestResolve_AllOrNothing(t *testing.T) {
	// A mismatch anywhere rejects the whole program, even the part that
	// resolved cleanly.
	p, err := Resolve(lexer.Tokenize("[+]["))
	if p != nil {
		t.Error("expected no program when any bracket is unmatched")
	}
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestResolve_Empty(t *testing.T) {
	p, err := Resolve(nil)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if p.Len() != 0 {
		t.Errorf("length: got %d, want 0", p.Len())
	}
}
