package main

import (
	"fmt"
	"os"
)

var version = "0.1.0"

func main() {
	rootCmd := newRootCommand()
	rootCmd.AddCommand(newConfigCommand())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
