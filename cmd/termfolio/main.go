// Package main is the entry point for the termfolio CLI.
package main

import (
	"os"

	"termfolio/cmd/termfolio/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
