package main

import (
	"os"

	"github.com/wonny/coppermetrics/cmd/copper/commands"
)

// main is the entry point for the coppermetrics CLI
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
