// Package main is the tabread command-line entry point.
package main

import (
	"os"

	"github.com/leapstack-labs/tabread/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
