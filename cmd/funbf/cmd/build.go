package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/funvibe/funbf/internal/codegen"
)

var (
	buildOutput     string
	buildMemorySize int
	buildPointer    string
	buildEOF        string
	buildFixedInput string
	buildFormat     bool
)

var buildCmd = &cobra.Command{
	Use:   "build <file>",
	Short: "Generate a standalone Go module",
	Long: `Translates a program into the source of a self-contained Go module
with equivalent behavior: go.mod, main.go, a README and a copy of the
original source.

The generated program has a fixed-size tape, so the pointer mode covers
both boundaries; "unchecked" emits no bounds handling at all.`,
	Args: cobra.ExactArgs(1),
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().StringVarP(&buildOutput, "output", "o", "", "output directory (default: source name without extension)")
	buildCmd.Flags().IntVar(&buildMemorySize, "memory-size", 30000, "tape length compiled into the program")
	buildCmd.Flags().StringVar(&buildPointer, "pointer-mode", "clamp", "pointer bounds mode: clamp, wrap or unchecked")
	buildCmd.Flags().StringVar(&buildEOF, "eof-mode", "zero", "input exhaustion mode: zero or nochange")
	buildCmd.Flags().StringVar(&buildFixedInput, "fixed-input", "", "bake this input into the program instead of reading stdin")
	buildCmd.Flags().BoolVar(&buildFormat, "format", true, "run the generated source through goimports")
}

func runBuild(cmd *cobra.Command, args []string) error {
	source, err := loadSource(args[0])
	if err != nil {
		return err
	}

	ctx, err := frontend(source, args[0])
	if err != nil {
		return err
	}

	pm, err := codegen.ParsePointerMode(buildPointer)
	if err != nil {
		return err
	}
	em, err := codegen.ParseEOFMode(buildEOF)
	if err != nil {
		return err
	}

	gen := codegen.New(codegen.Options{
		MemorySize:  buildMemorySize,
		PointerMode: pm,
		EOFMode:     em,
		FixedInput:  buildFixedInput,
	})
	code, err := gen.Generate(ctx.Program)
	if err != nil {
		return err
	}

	dir := buildOutput
	if dir == "" {
		base := filepath.Base(args[0])
		dir = strings.TrimSuffix(base, filepath.Ext(base))
	}

	if err := codegen.WriteProject(codegen.ProjectOptions{
		Dir:        dir,
		SourcePath: args[0],
		Source:     source,
		Code:       code,
		Format:     buildFormat,
	}); err != nil {
		return err
	}

	fmt.Printf("wrote %s\n", dir)
	return nil
}
