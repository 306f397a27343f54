package codegen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/tools/imports"
)

const manifestTemplate = `module %%PACKAGE_NAME%%

go 1.25
`

const readmeTemplate = `# %%PACKAGE_NAME%%

Generated by funbf on %%TIMESTAMP%% from ` + "`%%SOURCE_FILENAME%%`" + `.

Build and run with:

    go run .

Cells are 8-bit and wrap on overflow. The generated source collapses
runs of repeated instructions; this only makes the files smaller, it
does not make the program faster.

## Original source

` + "```" + `
%%SOURCE_CODE%%
` + "```" + `
`

type replacements struct {
	packageName    string
	sourceFilename string
	sourceCode     string
	timestamp      string
}

func (r replacements) apply(orig string) string {
	s := strings.ReplaceAll(orig, "%%PACKAGE_NAME%%", r.packageName)
	s = strings.ReplaceAll(s, "%%SOURCE_FILENAME%%", r.sourceFilename)
	s = strings.ReplaceAll(s, "%%SOURCE_CODE%%", r.sourceCode)
	s = strings.ReplaceAll(s, "%%TIMESTAMP%%", r.timestamp)
	return s
}

// ProjectOptions describe the on-disk module to generate.
type ProjectOptions struct {
	// Dir is the output directory; its base name becomes the module
	// name.
	Dir string

	// SourcePath is the original source file; it is copied into the
	// project and embedded in the README.
	SourcePath string

	// Source is the original source text.
	Source string

	// Code is the generated main.go text.
	Code string

	// Format passes the generated source through the goimports
	// formatter before writing it.
	Format bool
}

// WriteProject writes a complete Go module: go.mod, README.md, main.go
// and a copy of the original source file.
func WriteProject(opts ProjectOptions) error {
	if err := os.MkdirAll(opts.Dir, 0755); err != nil {
		return fmt.Errorf("creating project directory: %w", err)
	}

	repl := replacements{
		packageName:    filepath.Base(opts.Dir),
		sourceFilename: filepath.Base(opts.SourcePath),
		sourceCode:     strings.TrimRight(opts.Source, "\n"),
		timestamp:      time.Now().UTC().Format(time.RFC3339),
	}

	if err := os.WriteFile(filepath.Join(opts.Dir, "go.mod"), []byte(repl.apply(manifestTemplate)), 0644); err != nil {
		return fmt.Errorf("writing go.mod: %w", err)
	}

	if err := os.WriteFile(filepath.Join(opts.Dir, "README.md"), []byte(repl.apply(readmeTemplate)), 0644); err != nil {
		return fmt.Errorf("writing README.md: %w", err)
	}

	if err := os.WriteFile(filepath.Join(opts.Dir, repl.sourceFilename), []byte(opts.Source), 0644); err != nil {
		return fmt.Errorf("copying source: %w", err)
	}

	code := []byte(opts.Code)
	if opts.Format {
		formatted, err := imports.Process("main.go", code, nil)
		if err != nil {
			return fmt.Errorf("formatting generated code: %w", err)
		}
		code = formatted
	}

	if err := os.WriteFile(filepath.Join(opts.Dir, "main.go"), code, 0644); err != nil {
		return fmt.Errorf("writing main.go: %w", err)
	}

	return nil
}
