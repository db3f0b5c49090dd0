// Package main provides the entry point for the compatibility scoring CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "compat_scorer",
	Short: "CV/JD compatibility scoring engine",
	Long:  "compat_scorer parses upstream comparison reports and composes deterministic 0-100 compatibility scores with category status and recommendation keys.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
