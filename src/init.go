package main

import (
	"fmt"
	"os"

	"github.com/apimgr/xfetch/src/paths"
)

// InitCLI prepares the CLI environment.
// Failures are reported but not fatal: the query can still run without
// a config or log directory.
func InitCLI() {
	if err := paths.EnsureDirs(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not create directories: %v\n", err)
	}
}
