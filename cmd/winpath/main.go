// Package main is the entry point for the winpath CLI.
package main

import (
	"fmt"
	"os"

	"github.com/EmergencyTemporalShift/Winpath/internal/cli"
	"github.com/EmergencyTemporalShift/Winpath/internal/types"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := cli.NewRootCommand(version, commit, date)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		// If it's an AppError with help text, print that too
		if appErr, ok := err.(*types.AppError); ok && appErr.Help != "" {
			fmt.Fprintf(os.Stderr, "\n%s\n", appErr.Help)
		}

		os.Exit(1)
	}
}
