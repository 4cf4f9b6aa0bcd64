// Package main provides the entry point for the CV matching HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cv_match",
	Short: "CV parsing and job matching service",
	Long:  "cv_match parses resume PDFs into structured records and scores them against target job descriptions via a staged, interaction-aware model pipeline.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
