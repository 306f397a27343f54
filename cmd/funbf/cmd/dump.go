package cmd

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/funvibe/funbf/internal/program"
)

var dumpCmd = &cobra.Command{
	Use:   "dump <file>",
	Short: "Print the collapsed program structure as JSON",
	Long: `Prints the program as JSON after loop nesting and run-length
collapsing, the same structure the build command generates code from.`,
	Args: cobra.ExactArgs(1),
	RunE: runDump,
}

func init() {
	rootCmd.AddCommand(dumpCmd)
}

func runDump(cmd *cobra.Command, args []string) error {
	source, err := loadSource(args[0])
	if err != nil {
		return err
	}

	ctx, err := frontend(source, args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(program.NewDump(ctx.Program))
}
