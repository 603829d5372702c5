// Command skynet plays, generates and validates gateway pursuit puzzles.
package main

import (
	"fmt"
	"io"
	"os"
)

func main() {
	if err := run(os.Stdin, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "skynet:", err)
		os.Exit(1)
	}
}

// run wires the command tree to the given streams so tests can drive it.
func run(inR io.Reader, outW, errW io.Writer, args []string) error {
	root := newRootCmd(inR, outW, errW)
	root.SetArgs(args)

	return root.Execute()
}
