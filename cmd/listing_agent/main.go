// Package main provides the entry point for the Listing Copilot CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "listing_agent",
	Short: "Amazon listing compliance checker and seller assistant",
	Long:  "Listing Copilot checks Amazon listing content against compliance rules and answers seller questions over their dashboard metrics via an LLM assistant.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
