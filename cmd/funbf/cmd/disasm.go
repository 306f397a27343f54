package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/funvibe/funbf/internal/program"
)

var disasmCmd = &cobra.Command{
	Use:   "disasm <file>",
	Short: "Print a program listing",
	Long: `Prints the resolved instruction listing: one instruction per line
with its source position, loop instructions annotated with the index of
their partner.`,
	Args: cobra.ExactArgs(1),
	RunE: runDisasm,
}

func init() {
	rootCmd.AddCommand(disasmCmd)
}

func runDisasm(cmd *cobra.Command, args []string) error {
	source, err := loadSource(args[0])
	if err != nil {
		return err
	}

	ctx, err := frontend(source, args[0])
	if err != nil {
		return err
	}

	fmt.Print(program.Disassemble(ctx.Program, filepath.Base(args[0])))
	return nil
}
