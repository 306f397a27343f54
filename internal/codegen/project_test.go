package codegen

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteProject(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "hello")

	err := WriteProject(ProjectOptions{
		Dir:        dir,
		SourcePath: "/somewhere/hello.bf",
		Source:     "+++.\n",
		Code:       "package main\n\nfunc main() {\n}\n",
	})
	if err != nil {
		t.Fatalf("WriteProject failed: %v", err)
	}

	mod, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		t.Fatalf("reading go.mod: %v", err)
	}
	if !strings.Contains(string(mod), "module hello") {
		t.Errorf("go.mod module line: got %q", mod)
	}

	readme, err := os.ReadFile(filepath.Join(dir, "README.md"))
	if err != nil {
		t.Fatalf("reading README.md: %v", err)
	}
	for _, want := range []string{"# hello", "hello.bf", "+++."} {
		if !strings.Contains(string(readme), want) {
			t.Errorf("README missing %q", want)
		}
	}

	if _, err := os.Stat(filepath.Join(dir, "hello.bf")); err != nil {
		t.Errorf("source copy missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "main.go")); err != nil {
		t.Errorf("main.go missing: %v", err)
	}
}

func TestWriteProject_Format(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "fmtcheck")

	err := WriteProject(ProjectOptions{
		Dir:        dir,
		SourcePath: "x.bf",
		Source:     "+",
		Code:       "package main\n\nfunc main() {\nvar x int\n_ = x\n}\n",
		Format:     true,
	})
	if err != nil {
		t.Fatalf("WriteProject failed: %v", err)
	}

	code, err := os.ReadFile(filepath.Join(dir, "main.go"))
	if err != nil {
		t.Fatalf("reading main.go: %v", err)
	}
	if !strings.Contains(string(code), "\tvar x int") {
		t.Errorf("main.go not formatted:\n%s", code)
	}
}

func TestWriteProject_FormatRejectsBadCode(t *testing.T) {
	err := WriteProject(ProjectOptions{
		Dir:        filepath.Join(t.TempDir(), "bad"),
		SourcePath: "x.bf",
		Source:     "+",
		Code:       "package main\n\nfunc main( {\n",
		Format:     true,
	})
	if err == nil {
		t.Error("expected error for unparseable generated code")
	}
}
