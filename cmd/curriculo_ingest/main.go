// Package main provides the entry point for the curriculo-ingest CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "curriculo_ingest",
	Short: "Resume ingestion and structuring pipeline",
	Long:  "curriculo_ingest turns a resume PDF, profile URL or raw text into a validated, structured resume record, degrading gracefully from remote AI structuring to a local parser to a safe default template.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
