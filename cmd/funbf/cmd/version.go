package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is overridden at build time with
// -ldflags "-X github.com/funvibe/funbf/cmd/funbf/cmd.version=...".
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("funbf %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
