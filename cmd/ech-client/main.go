// Package main is the entry point for the ech-client command line.
package main

import (
	"os"

	"github.com/ech-workers/ech-client/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
