// Package main is the entry point for the Stellar media adapter CLI.
package main

import "os"

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}
