// Package main provides the entry point for the hollowkeep CLI.
package main

import (
	"os"

	"github.com/hollowkeep/hollowkeep/cmd/hollowkeep/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
