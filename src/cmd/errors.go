package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/apimgr/xfetch/src/credentials"
)

// Exit codes
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// UsageError marks a bad invocation: no query, unknown template, missing
// template parameters or invalid flag values
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string {
	return e.Err.Error()
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

// ExitCode maps a command error to a process exit code
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var usage *UsageError
	if errors.As(err, &usage) {
		return ExitUsage
	}
	return ExitError
}

// reportError prints err once, with a hint for the error kinds that have one
func reportError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)

	var cfgErr *credentials.ConfigError
	if errors.As(err, &cfgErr) {
		fmt.Fprintln(w, cfgErr.Remediation())
		return
	}

	var usage *UsageError
	if errors.As(err, &usage) {
		fmt.Fprintf(w, "Run '%s --help' for usage.\n", ProjectName)
	}
}
