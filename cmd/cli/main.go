// Package main - Entry point for the logirate CLI
package main

import (
	"os"

	"logirate/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
