// Command zentube browses the YouTube catalog from the terminal.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, newRenderer(os.Stderr).errorLine(err))
		os.Exit(1)
	}
}
