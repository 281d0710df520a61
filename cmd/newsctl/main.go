// Package main is the entry point for the newsctl CLI
package main

import (
	"os"

	"github.com/mohammed-danyal/brainrot-news/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Stderr.WriteString("Error: " + err.Error() + "\n")
		os.Exit(1)
	}
}
