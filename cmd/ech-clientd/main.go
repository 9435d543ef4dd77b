// Package main is the entry point for the ech-clientd daemon.
package main

import (
	"os"

	"github.com/ech-workers/ech-client/internal/daemon/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
