package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/nfsim/nfsim/internal/cli"
)

func main() {
	// Recover from panics so the terminal exits with a stack trace instead
	// of a bare runtime crash
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(2)
		}
	}()

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
