package main

import (
	"errors"
	"fmt"
	"os"
)

// Exit codes for different failure modes
const (
	ExitSuccess      = 0 // Evaluation or validation completed cleanly
	ExitInvalidInput = 1 // One or more input files failed validation
	ExitError        = 2 // Configuration or runtime error
)

// InvalidInputError indicates that the command ran successfully, but one or
// more input files failed schema validation.
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string {
	return e.Message
}

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)

		// Check error type to determine exit code
		var invalidInputErr *InvalidInputError
		if errors.As(err, &invalidInputErr) {
			os.Exit(ExitInvalidInput)
		}

		// All other errors are configuration/runtime errors
		os.Exit(ExitError)
	}
}
