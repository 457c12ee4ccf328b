// Package pipeline provides the high-level orchestration for resume
// ingestion: text acquisition, plausibility classification, structuring
// with graceful degradation, enrichment, and optional persistence.
//
// The defining design decision is the three-tier structuring ladder:
// remote completion service, then local heuristic parser, then the
// static safe-default template. No input, however malformed, leaves the
// caller without a renderable resume.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/pedrohmarconato/curriculo-ingest/internal/classifier"
	"github.com/pedrohmarconato/curriculo-ingest/internal/db"
	"github.com/pedrohmarconato/curriculo-ingest/internal/enrichment"
	"github.com/pedrohmarconato/curriculo-ingest/internal/heuristics"
	"github.com/pedrohmarconato/curriculo-ingest/internal/llm"
	"github.com/pedrohmarconato/curriculo-ingest/internal/observability"
	"github.com/pedrohmarconato/curriculo-ingest/internal/structuring"
	"github.com/pedrohmarconato/curriculo-ingest/internal/types"
)

// Per-stage timeouts. A hung remote call counts as a tier failure and
// falls through to the next tier instead of stalling the run.
const (
	structuringTimeout = 60 * time.Second
	enrichmentTimeout  = 30 * time.Second
)

// ProgressEvent represents a progress update during pipeline execution.
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
	Content any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs.
type ProgressCallback func(event ProgressEvent)

// RunOptions holds configuration for running the pipeline. Exactly one
// of File, FileURL, ProfileURL or Text should be set; an empty Text is
// accepted and resolves through the default template.
type RunOptions struct {
	File       string // Local PDF path
	FileURL    string // URL of a PDF to download
	ProfileURL string // URL of a public profile page
	Text       string // Raw profile text, used when no other source is set

	Name  string // Candidate name hint
	Email string // Candidate email hint

	APIKey      string
	LocalOnly   bool // Skip the remote structuring tier
	UseBrowser  bool
	Verbose     bool
	DatabaseURL string

	// Client overrides the completion client built from APIKey. The
	// caller owns its lifecycle.
	Client     llm.Client
	OnProgress ProgressCallback
}

// Result is the pipeline output: a schema-valid resume, the tier that
// produced its structure, and every soft failure collected on the way.
type Result struct {
	Resume     *types.ResumeData
	Provenance types.Provenance
	Warnings   []string
	RunID      uuid.UUID
}

// finalArtifact is the persisted shape of a completed run.
type finalArtifact struct {
	Resume     *types.ResumeData `json:"resume"`
	Provenance types.Provenance  `json:"provenance"`
	Warnings   []string          `json:"warnings,omitempty"`
}

// emitProgress calls the progress callback if configured.
func emitProgress(opts *RunOptions, step, message string, content any) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{Step: step, Message: message, Content: content})
	}
}

// Run executes the ingestion pipeline. The returned Result is always
// non-nil with a validated Resume. The error is non-nil only when the
// source document could not be opened at all; even then the Result
// carries a placeholder resume built from the identity hints, so the
// caller never has to handle a "no data" case.
func Run(ctx context.Context, opts RunOptions) (*Result, error) {
	printer := observability.NewPrinter(os.Stdout)

	result := &Result{Provenance: types.Provenance{Source: types.SourceDefault}}
	warn := func(format string, args ...any) {
		msg := fmt.Sprintf(format, args...)
		result.Warnings = append(result.Warnings, msg)
		fmt.Printf("Warning: %s\n", msg)
	}

	// Database persistence is best-effort: connection failures downgrade
	// to a warning and the run continues in-memory.
	var database *db.DB
	var runID uuid.UUID
	if opts.DatabaseURL != "" {
		connected, err := db.Connect(ctx, opts.DatabaseURL)
		if err != nil {
			warn("failed to connect to database, continuing without persistence: %v", err)
		} else {
			defer connected.Close()
			database = connected
			if opts.Verbose {
				fmt.Printf("[VERBOSE] Connected to database\n")
			}
		}
	}
	if database != nil {
		id, err := database.CreateRun(ctx, opts.Name, opts.Email, describeSource(opts))
		if err != nil {
			warn("failed to create database run: %v", err)
		} else {
			runID = id
			result.RunID = id
			if opts.Verbose {
				fmt.Printf("[VERBOSE] Created database run: %s\n", id)
			}
		}
	}

	hints := types.Hints{Name: opts.Name, Email: opts.Email}

	fmt.Printf("Step 1/5: Extracting text from %s...\n", describeSource(opts))
	text, err := resolveText(ctx, opts, database, warn)
	if err != nil {
		// The document cannot be opened at all. Every text-based stage is
		// bypassed; the caller still receives a renderable resume.
		warn("document unreadable, returning placeholder resume: %v", err)
		result.Resume = types.DefaultResume(opts.Name, opts.Email)
		enrichment.Fallback(result.Resume)
		if database != nil && runID != uuid.Nil {
			_ = database.SaveArtifact(ctx, runID, db.StepFinal, db.CategoryPipeline, finalArtifact{
				Resume:     result.Resume,
				Provenance: result.Provenance,
				Warnings:   result.Warnings,
			})
			_ = database.CompleteRun(ctx, runID, "failed_safe")
		}
		emitProgress(&opts, db.StepFinal, "returned placeholder resume", result.Resume)
		return result, err
	}
	if database != nil && runID != uuid.Nil {
		_ = database.SaveTextArtifact(ctx, runID, db.StepRawText, db.CategoryExtraction, text)
	}
	emitProgress(&opts, db.StepRawText, fmt.Sprintf("extracted %d characters", len(text)), nil)

	fmt.Printf("Step 2/5: Classifying plausibility...\n")
	verdict := classifier.Classify(text)
	if opts.Verbose {
		printer.PrintVerdict(verdict)
	}
	if database != nil && runID != uuid.Nil {
		_ = database.SaveArtifact(ctx, runID, db.StepClassification, db.CategoryClassification, verdict)
	}
	emitProgress(&opts, db.StepClassification, fmt.Sprintf("plausible: %t", verdict.Plausible), verdict)

	// The completion client serves both structuring and enrichment, so it
	// is built once even when the classifier already ruled structuring out.
	client := opts.Client
	if client == nil && !opts.LocalOnly && opts.APIKey != "" {
		created, err := llm.NewClient(ctx, llm.DefaultGeminiConfig(), opts.APIKey)
		if err != nil {
			warn("completion client unavailable: %v", err)
		} else {
			defer func() { _ = created.Close() }()
			client = created
		}
	}

	fmt.Printf("Step 3/5: Structuring resume data...\n")
	var resume *types.ResumeData
	source := types.SourceDefault

	switch {
	case !verdict.Plausible:
		// Unreliable text is not fed to the heuristic parser; the caller
		// decides whether to proceed with the illustrative template.
		warn("text does not look like a resume, using the default template")
		resume = types.DefaultResume(opts.Name, opts.Email)
	case client != nil:
		sctx, cancel := context.WithTimeout(ctx, structuringTimeout)
		structured, err := structuring.New(client).Structure(sctx, text, hints)
		cancel()
		if err != nil {
			warn("remote structuring failed, falling back to local parser: %v", err)
		} else {
			resume = structured
			source = types.SourceRemote
		}
	default:
		if opts.Verbose {
			fmt.Printf("[VERBOSE] No completion service configured, using local parser\n")
		}
	}

	if resume == nil {
		parsed := heuristics.NewParser().Parse(text, hints)
		if err := parsed.Validate(); err != nil {
			warn("local parser produced an invalid resume, using the default template: %v", err)
			resume = types.DefaultResume(opts.Name, opts.Email)
		} else {
			resume = parsed
			source = types.SourceHeuristic
		}
	}
	if database != nil && runID != uuid.Nil {
		_ = database.SaveArtifact(ctx, runID, db.StepStructured, db.CategoryStructuring, resume)
	}
	emitProgress(&opts, db.StepStructured, fmt.Sprintf("structured via %s tier", source), resume)

	fmt.Printf("Step 4/5: Enriching resume...\n")
	if client != nil {
		ectx, cancel := context.WithTimeout(ctx, enrichmentTimeout)
		for _, w := range enrichment.NewEnricher(client).Enrich(ectx, resume, text) {
			warn("%s", w)
		}
		cancel()
	}
	// Guarantees the enrichment contract (objective present, market
	// projection built) even without a completion service.
	enrichment.Fallback(resume)
	if opts.Verbose {
		printer.PrintMarketExperience(resume.MarketExperience)
	}
	if database != nil && runID != uuid.Nil {
		_ = database.SaveArtifact(ctx, runID, db.StepEnriched, db.CategoryEnrichment, resume)
	}
	emitProgress(&opts, db.StepEnriched, "enrichment complete", nil)

	fmt.Printf("Step 5/5: Validating final resume...\n")
	if err := resume.Validate(); err != nil {
		warn("final resume failed validation, using the default template: %v", err)
		resume = types.DefaultResume(opts.Name, opts.Email)
		enrichment.Fallback(resume)
		source = types.SourceDefault
	}

	result.Resume = resume
	result.Provenance = types.Provenance{Source: source}

	if opts.Verbose {
		printer.PrintResume(resume)
		printer.PrintProvenance(result.Provenance, result.Warnings)
	}

	if database != nil && runID != uuid.Nil {
		_ = database.SaveArtifact(ctx, runID, db.StepFinal, db.CategoryPipeline, finalArtifact{
			Resume:     resume,
			Provenance: result.Provenance,
			Warnings:   result.Warnings,
		})
		_ = database.CompleteRun(ctx, runID, "completed")
	}
	emitProgress(&opts, db.StepFinal, fmt.Sprintf("done, source: %s", source), resume)

	fmt.Printf("Done! Resume structured via the %s tier.\n", source)
	return result, nil
}

// describeSource returns a short label for the configured input source.
func describeSource(opts RunOptions) string {
	switch {
	case opts.File != "":
		return opts.File
	case opts.FileURL != "":
		return opts.FileURL
	case opts.ProfileURL != "":
		return opts.ProfileURL
	default:
		return "raw text"
	}
}
