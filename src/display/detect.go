// Package display decides whether CLI output may be styled
package display

import (
	"io"
	"os"

	"golang.org/x/term"
)

// Package-level function variables for testing
var (
	isTerminalFunc = term.IsTerminal
	getenvFunc     = os.Getenv
)

// fder is implemented by *os.File
type fder interface {
	Fd() uintptr
}

// IsTerminal reports whether w is a TTY
func IsTerminal(w io.Writer) bool {
	f, ok := w.(fder)
	if !ok {
		return false
	}
	return isTerminalFunc(int(f.Fd()))
}

// ColorEnabled reports whether styled output should be written to w.
// mode is one of "auto", "always", "never"; unknown values mean auto.
func ColorEnabled(w io.Writer, mode string) bool {
	switch mode {
	case "never":
		return false
	case "always":
		return true
	}
	if !IsTerminal(w) {
		return false
	}
	return detectColorSupport()
}

func detectColorSupport() bool {
	// NO_COLOR environment variable (standard)
	if getenvFunc("NO_COLOR") != "" {
		return false
	}
	if getenvFunc("FORCE_COLOR") != "" {
		return true
	}

	termEnv := getenvFunc("TERM")
	if termEnv == "dumb" {
		return false
	}
	return true
}
