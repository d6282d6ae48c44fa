// ABOUTME: Main entry point for the Shop The Look API
// ABOUTME: Runs the cobra command tree; serve is the default command

package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
