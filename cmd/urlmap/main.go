// Urlmap resolves documentation namespaces to the base URLs of their online
// API reference.
//
// It exposes the built-in namespace table, optionally extended with map
// files, to people and scripts that need to build cross-reference links.
//
// Usage:
//
//	urlmap [command] [flags]
//
// See 'urlmap --help' for available commands.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
