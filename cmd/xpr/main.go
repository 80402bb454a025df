// Command xpr is a small CLI front end for the expression engine: lex,
// parse, and evaluate expressions against JSON/YAML-loaded variable
// contexts from the shell, for debugging and ad-hoc use the way
// go-dws's cmd/dwscript exercises its own pipeline.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/cwbudde/go-xpr/cmd/xpr/cmd"
	"github.com/cwbudde/go-xpr/pkg/xpr"
)

func main() {
	if err := cmd.Execute(); err != nil {
		var syn *xpr.SyntaxError
		if errors.As(err, &syn) {
			fmt.Fprintln(os.Stderr, syn.Format())
		} else {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		}
		os.Exit(1)
	}
}
