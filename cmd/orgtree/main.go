// Package main provides the orgtree CLI.
package main

import (
	"os"

	"github.com/leapstack-labs/orgtree/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
