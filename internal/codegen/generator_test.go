package codegen

import (
	"strings"
	"testing"

	"github.com/funvibe/funbf/internal/lexer"
	"github.com/funvibe/funbf/internal/program"
	"github.com/funvibe/funbf/internal/resolver"
)

func generate(t *testing.T, src string, opts Options) string {
	t.Helper()
	p, derr := resolver.Resolve(lexer.Tokenize(src))
	if derr != nil {
		t.Fatalf("resolving %q: %v", src, derr)
	}
	code, err := New(opts).Generate(p)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	return code
}

func wantContains(t *testing.T, code string, wants ...string) {
	t.Helper()
	for _, w := range wants {
		if !strings.Contains(code, w) {
			t.Errorf("generated code missing %q:\n%s", w, code)
		}
	}
}

func TestGenerate_CollapsedRuns(t *testing.T) {
	code := generate(t, "+++>>--", Options{})
	wantContains(t, code,
		"tape[pointer] += 3",
		"pointer = min(pointer+2, memSize-1)",
		"tape[pointer] -= 2",
	)
}

func TestGenerate_LoopsBecomeFor(t *testing.T) {
	code := generate(t, "++[>+<-]", Options{})
	wantContains(t, code,
		"for tape[pointer] != 0 {",
		"tape[pointer] += 2",
	)
	if got := strings.Count(code, "for tape[pointer] != 0 {"); got != 1 {
		t.Errorf("loop count: got %d, want 1", got)
	}
}

func TestGenerate_DefaultMemorySize(t *testing.T) {
	code := generate(t, "+", Options{})
	wantContains(t, code, "const memSize = 30000")
}

func TestGenerate_PointerModes(t *testing.T) {
	tests := []struct {
		name string
		mode PointerMode
		want string
	}{
		{"clamp", PointerClamp, "pointer = max(pointer-1, 0)"},
		{"wrap", PointerWrap, "pointer = ((pointer-1)%memSize + memSize) % memSize"},
		{"unchecked", PointerUnchecked, "pointer -= 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code := generate(t, "<", Options{PointerMode: tt.mode})
			wantContains(t, code, tt.want)
		})
	}
}

func TestGenerate_FixedInput(t *testing.T) {
	code := generate(t, ",", Options{FixedInput: "hi"})
	wantContains(t, code, `input := []byte("hi")`)
	if strings.Contains(code, "os.Stdin") {
		t.Error("fixed input still reads stdin")
	}
	if strings.Contains(code, "import") {
		t.Error("fixed input without output needs no imports")
	}
}

func TestGenerate_StdinInput(t *testing.T) {
	code := generate(t, ",", Options{})
	wantContains(t, code,
		"input, _ := io.ReadAll(os.Stdin)",
		"if inputPos < len(input) {",
		"tape[pointer] = 0",
	)
}

func TestGenerate_EOFNoChange(t *testing.T) {
	code := generate(t, ",", Options{EOFMode: EOFNoChange})
	if strings.Contains(code, "tape[pointer] = 0") {
		t.Errorf("nochange mode still zeroes the cell:\n%s", code)
	}
}

func TestGenerate_InputNeverCollapsed(t *testing.T) {
	code := generate(t, ",,", Options{FixedInput: "ab"})
	if got := strings.Count(code, "inputPos++"); got != 2 {
		t.Errorf("distinct reads: got %d, want 2", got)
	}
}

func TestGenerate_OutputRun(t *testing.T) {
	code := generate(t, "..", Options{})
	wantContains(t, code,
		"out := bufio.NewWriter(os.Stdout)",
		"defer out.Flush()",
		"for i := 0; i < 2; i++ {",
	)
}

func TestGenerate_BigRunWrapsCounts(t *testing.T) {
	// 300 increments is 44 modulo 256 on an 8-bit cell.
	code := generate(t, strings.Repeat("+", 300), Options{})
	wantContains(t, code, "tape[pointer] += 44")
}

func TestGenerate_NoIOPrograms(t *testing.T) {
	code := generate(t, "+>+", Options{})
	if strings.Contains(code, "import") {
		t.Errorf("pure program needs no imports:\n%s", code)
	}
}

func TestGenerate_ProgramContractMatchesEngine(t *testing.T) {
	// The generator consumes the same resolved sequence the engine runs.
	p := &program.Program{}
	code, err := New(Options{}).Generate(p)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	wantContains(t, code, "package main", "func main() {")
}
