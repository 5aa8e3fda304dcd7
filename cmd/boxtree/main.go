// Package main provides the boxtree command.
//
// Usage:
//
//	boxtree compute [flags] <scene.yaml>...   Lay out scenes and print the layouts
//	boxtree check <scene.yaml>...             Validate scenes and tree invariants
//	boxtree version                           Print version information
//
// Examples:
//
//	boxtree compute scenes/app.yaml
//	boxtree compute --format json ./scenes/...
//	boxtree compute --fit-terminal scenes/app.yaml
//	boxtree check ./...
package main

import (
	"fmt"
	"os"

	"github.com/grindlemire/boxtree/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}
