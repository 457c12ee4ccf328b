package pipeline

import (
	"context"
	"fmt"

	"github.com/pedrohmarconato/curriculo-ingest/internal/db"
	"github.com/pedrohmarconato/curriculo-ingest/internal/extraction"
	"github.com/pedrohmarconato/curriculo-ingest/internal/fetch"
)

// resolveText turns the configured input source into plain text. An
// error here means the document could not be opened at all; every other
// problem degrades to an empty or partial string.
func resolveText(ctx context.Context, opts RunOptions, database *db.DB, warn func(format string, args ...any)) (string, error) {
	switch {
	case opts.File != "":
		return extraction.NewPDFExtractor().ExtractFile(opts.File)

	case opts.FileURL != "":
		data, err := fetch.Document(ctx, opts.FileURL, nil)
		if err != nil {
			return "", &extraction.DocumentUnreadableError{Source: opts.FileURL, Cause: err}
		}
		return extraction.NewPDFExtractor().Extract(data)

	case opts.ProfileURL != "":
		return resolveProfileText(ctx, opts, database, warn)

	default:
		return opts.Text, nil
	}
}

// resolveProfileText fetches a profile page (through the cache when a
// database is available) and extracts its main text, escalating to a
// headless browser when the static fetch comes back too thin.
func resolveProfileText(ctx context.Context, opts RunOptions, database *db.DB, warn func(format string, args ...any)) (string, error) {
	fetcher := fetch.NewCachedFetcher(database, nil)
	result, err := fetcher.Fetch(ctx, opts.ProfileURL)
	if err != nil {
		return "", &extraction.DocumentUnreadableError{Source: opts.ProfileURL, Cause: err}
	}

	text := result.Text
	if opts.UseBrowser && !result.FromCache && fetch.ShouldUseBrowser(text) {
		if opts.Verbose {
			fmt.Printf("[VERBOSE] Static fetch returned %d characters, retrying with browser...\n", len(text))
		}
		html, err := fetch.BrowserSimple(ctx, opts.ProfileURL, opts.Verbose)
		if err != nil {
			warn("browser fetch failed, keeping static content: %v", err)
			return text, nil
		}

		platform := fetch.DetectPlatform(opts.ProfileURL)
		extracted, err := fetch.ExtractMainText(html, fetch.PlatformContentSelectors(platform), fetch.PlatformNoiseSelectors(platform)...)
		if err != nil {
			warn("failed to extract text from browser content: %v", err)
			return text, nil
		}
		if len(extracted) > len(text) {
			text = extracted
		}
	}

	return text, nil
}
