// cmd/drafter/main.go
//
// This is the entry point for the drafter CLI.
// Running `drafter` with no subcommand opens the interactive drafter in the
// current directory. The draft, list and sort subcommands work on the same
// roster without a terminal UI.

package main

import (
	"fmt"
	"os"

	"github.com/gookit/color"
)

func main() {
	root := newRootCmd(os.Stdout, os.Stderr)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.Red.Sprintf("Error: %v", err))
		os.Exit(1)
	}
}
