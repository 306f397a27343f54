package program

import (
	"strings"
	"testing"
)

func TestDisassemble(t *testing.T) {
	out := Disassemble(buildProgram(t, "+[]"), "test.bf")

	if !strings.HasPrefix(out, "== test.bf ==\n") {
		t.Errorf("missing header: %q", out)
	}
	for _, want := range []string{
		"0000",
		"INC",
		"LOOP_OPEN",
		"-> 0002",
		"LOOP_CLOSE",
		"-> 0001",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("listing missing %q:\n%s", want, out)
		}
	}
}

func TestDisassemble_RepeatsLineMarker(t *testing.T) {
	p := buildProgram(t, "++")
	out := Disassemble(p, "x.bf")

	// Both instructions are on line 1; the second shows the repeat
	// marker instead of the line number.
	if !strings.Contains(out, "   | ") {
		t.Errorf("missing same-line marker:\n%s", out)
	}
}
