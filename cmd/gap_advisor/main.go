// Package main provides the entry point for the gap-advisor CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gap_advisor",
	Short: "Resume vs. job posting gap analysis",
	Long:  "gap_advisor extracts prioritized requirements from job postings, scores a resume against them, and generates follow-up questions to close the discovered gaps.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
