package main

import (
	"errors"
	"fmt"
	"os"

	app "github.com/scality/githooks/internal/hooks/commitvalidate"
)

func main() {
	err := app.Run(os.Stdin, os.Stdout, os.Args[1:])
	if err != nil {
		// Validation failures have already been reported on stdout.
		if !errors.Is(err, app.ErrValidationFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
