package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/helxplatform/ddindex/internal/cli"
	"github.com/helxplatform/ddindex/pkg/ddindex"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(ddindex.ExitPanic)
		}
	}()

	if err := cli.Execute(); err != nil {
		os.Exit(ddindex.ExitCodeForError(err))
	}
}
