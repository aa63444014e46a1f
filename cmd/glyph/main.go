package main

// This is the command line front end of the Glyph parser.

import (
	"fmt"
	"os"

	"github.com/pkg/errors"

	"github.com/letung3105/glyph/cmd/glyph/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		// diagnostics have been printed already
		if !errors.Is(err, cmd.ErrHadDiagnostics) {
			fmt.Fprintf(os.Stderr, "glyph: %v\n", err)
		}
		os.Exit(1)
	}
}
