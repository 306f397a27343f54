package main

import (
	"os"

	"github.com/funvibe/funbf/cmd/funbf/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
