package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/pedrohmarconato/curriculo-ingest/internal/db"
	"github.com/pedrohmarconato/curriculo-ingest/internal/observability"
	"github.com/pedrohmarconato/curriculo-ingest/internal/types"
)

var showCommand = &cobra.Command{
	Use:   "show",
	Short: "Show the stored resume for a previous ingestion run",
	Long:  "Loads the resume artifact persisted for an ingestion run and prints it as JSON. By default the final enriched resume is shown; --structured selects the pre-enrichment one.",
	RunE:  runShowCmd,
}

var (
	showRunID       string
	showStructured  bool
	showVerbose     bool
	showDatabaseURL string
)

func init() {
	showCommand.Flags().StringVar(&showRunID, "run-id", "", "Ingestion run UUID (required)")
	showCommand.Flags().BoolVar(&showStructured, "structured", false, "Show the pre-enrichment structured resume instead of the final one")
	showCommand.Flags().BoolVarP(&showVerbose, "verbose", "v", false, "Print a formatted summary before the JSON")
	showCommand.Flags().StringVar(&showDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(showCommand)
}

func runShowCmd(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	if showRunID == "" {
		return fmt.Errorf("--run-id is required")
	}
	runID, err := uuid.Parse(showRunID)
	if err != nil {
		return fmt.Errorf("invalid run-id format: %w", err)
	}

	dbURL := showDatabaseURL
	if dbURL == "" {
		dbURL = os.Getenv("DATABASE_URL")
	}
	if dbURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable or --db-url flag is required")
	}

	database, err := db.Connect(ctx, dbURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	var resume *types.ResumeData
	if showStructured {
		resume, err = database.GetStructuredResumeByRunID(ctx, runID)
	} else {
		resume, err = database.GetFinalResumeByRunID(ctx, runID)
	}
	if err != nil {
		return fmt.Errorf("failed to load resume artifact: %w", err)
	}
	if resume == nil {
		return fmt.Errorf("no resume stored for run %s", runID)
	}

	if showVerbose {
		observability.NewPrinter(os.Stdout).PrintResume(resume)
	}

	data, err := json.MarshalIndent(resume, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode resume: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
