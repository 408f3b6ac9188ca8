package main

// Entry point of the chart demo
// Executes the Cobra root command and exits non-zero on error

import (
	"fmt"
	"os"

	"chart-demo/cmd/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
