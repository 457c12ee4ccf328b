package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pedrohmarconato/curriculo-ingest/internal/config"
	"github.com/pedrohmarconato/curriculo-ingest/internal/pipeline"
	"github.com/pedrohmarconato/curriculo-ingest/internal/types"
)

var ingestCommand = &cobra.Command{
	Use:   "ingest",
	Short: "Ingest a resume and produce a structured JSON record",
	Long: `Runs the full ingestion pipeline: text extraction -> plausibility check -> structuring (remote AI, local parser or default template) -> enrichment.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runIngestCmd,
}

var (
	ingestConfigPath  string
	ingestFile        string
	ingestFileURL     string
	ingestProfileURL  string
	ingestTextFile    string
	ingestName        string
	ingestEmail       string
	ingestOutput      string
	ingestAPIKey      string
	ingestUseBrowser  bool
	ingestVerbose     bool
	ingestLocalOnly   bool
	ingestDatabaseURL string
)

func init() {
	// Config file flag (processed first)
	ingestCommand.Flags().StringVar(&ingestConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	ingestCommand.Flags().StringVarP(&ingestFile, "file", "f", "", "Path to a local resume PDF")
	ingestCommand.Flags().StringVar(&ingestFileURL, "file-url", "", "URL of a resume PDF to download")
	ingestCommand.Flags().StringVar(&ingestProfileURL, "profile-url", "", "URL of a public profile page")
	ingestCommand.Flags().StringVar(&ingestTextFile, "text-file", "", "Path to a plain-text file with the resume content")
	ingestCommand.Flags().StringVarP(&ingestName, "name", "n", "", "Candidate name hint")
	ingestCommand.Flags().StringVar(&ingestEmail, "email", "", "Candidate email hint")
	ingestCommand.Flags().StringVarP(&ingestOutput, "out", "o", "", "Output path for the structured resume JSON (default resume.json)")
	ingestCommand.Flags().BoolVar(&ingestUseBrowser, "use-browser", false, "Use headless browser for JS-rendered profile pages (requires Chrome)")
	ingestCommand.Flags().BoolVarP(&ingestVerbose, "verbose", "v", false, "Print detailed debug information")
	ingestCommand.Flags().BoolVar(&ingestLocalOnly, "local-only", false, "Skip the remote structuring tier and use only the local parser")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	ingestCommand.Flags().StringVar(&ingestAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	// Database URL for artifact persistence
	ingestCommand.Flags().StringVar(&ingestDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(ingestCommand)
}

func runIngestCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if ingestConfigPath != "" {
		loadedCfg, err := config.LoadConfig(ingestConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loadedCfg
		if ingestVerbose {
			fmt.Printf("Loaded config from: %s\n", ingestConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	if cmd.Flags().Changed("file") {
		cfg.File = ingestFile
	}
	if cmd.Flags().Changed("file-url") {
		cfg.FileURL = ingestFileURL
	}
	if cmd.Flags().Changed("profile-url") {
		cfg.ProfileURL = ingestProfileURL
	}
	if cmd.Flags().Changed("name") {
		cfg.Name = ingestName
	}
	if cmd.Flags().Changed("email") {
		cfg.Email = ingestEmail
	}
	if cmd.Flags().Changed("out") {
		cfg.Output = ingestOutput
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = ingestAPIKey
	}
	if cmd.Flags().Changed("use-browser") {
		cfg.UseBrowser = ingestUseBrowser
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = ingestVerbose
	}
	if cmd.Flags().Changed("local-only") {
		cfg.LocalOnly = ingestLocalOnly
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = ingestDatabaseURL
	}

	// Step 3: Apply defaults for unset values
	cfg = cfg.MergeWithDefaults(config.Config{Output: "resume.json"})

	if err := cfg.Validate(); err != nil {
		return err
	}

	// Step 4: Resolve the raw-text source, if given
	var rawText string
	if ingestTextFile != "" {
		if cfg.File != "" || cfg.FileURL != "" || cfg.ProfileURL != "" {
			return fmt.Errorf("--text-file is mutually exclusive with --file, --file-url and --profile-url")
		}
		data, err := os.ReadFile(ingestTextFile)
		if err != nil {
			return fmt.Errorf("failed to read text file: %w", err)
		}
		rawText = string(data)
	}

	if cfg.File == "" && cfg.FileURL == "" && cfg.ProfileURL == "" && rawText == "" {
		return fmt.Errorf("one of --file, --file-url, --profile-url or --text-file must be provided (via flag or config)")
	}

	// Step 5: Env fallbacks
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	result, runErr := pipeline.Run(ctx, pipeline.RunOptions{
		File:        cfg.File,
		FileURL:     cfg.FileURL,
		ProfileURL:  cfg.ProfileURL,
		Text:        rawText,
		Name:        cfg.Name,
		Email:       cfg.Email,
		APIKey:      cfg.APIKey,
		LocalOnly:   cfg.LocalOnly,
		UseBrowser:  cfg.UseBrowser,
		Verbose:     cfg.Verbose,
		DatabaseURL: cfg.DatabaseURL,
	})

	// The pipeline always returns a usable resume, even on a fatal
	// extraction error, so the output is written before failing.
	if result != nil && result.Resume != nil {
		if err := writeOutput(cfg.Output, result); err != nil {
			return err
		}
		fmt.Printf("Structured resume written to %s\n", cfg.Output)
	}

	return runErr
}

// ingestOutputFile is the JSON document written by the ingest command.
type ingestOutputFile struct {
	Resume     *types.ResumeData `json:"resume"`
	Provenance types.Provenance  `json:"provenance"`
	Warnings   []string          `json:"warnings,omitempty"`
}

func writeOutput(path string, result *pipeline.Result) error {
	data, err := json.MarshalIndent(ingestOutputFile{
		Resume:     result.Resume,
		Provenance: result.Provenance,
		Warnings:   result.Warnings,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
