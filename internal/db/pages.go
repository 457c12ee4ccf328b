package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// DefaultPageCacheTTL is how long a fetched profile page stays fresh.
// Profiles change slowly; a week avoids hammering the platforms.
const DefaultPageCacheTTL = 7 * 24 * time.Hour

// maxFetchFailures is the failure count after which a URL is skipped.
const maxFetchFailures = 3

// Fetch status values for cached pages.
const (
	FetchStatusSuccess = "success"
	FetchStatusFailed  = "failed"
)

// CachedPage is one cached profile page.
type CachedPage struct {
	ID           uuid.UUID
	URL          string
	RawHTML      *string
	ParsedText   *string
	HTTPStatus   *int
	FetchStatus  string
	FailureCount int
	FetchedAt    time.Time
}

// GetFreshPage returns the cached page for a URL when it is younger than
// ttl, nil otherwise.
func (db *DB) GetFreshPage(ctx context.Context, urlStr string, ttl time.Duration) (*CachedPage, error) {
	var page CachedPage
	err := db.pool.QueryRow(ctx,
		`SELECT id, url, raw_html, parsed_text, http_status, fetch_status, failure_count, fetched_at
		 FROM profile_pages
		 WHERE url = $1 AND fetch_status = $2 AND fetched_at > NOW() - $3::interval`,
		urlStr, FetchStatusSuccess, fmt.Sprintf("%d seconds", int(ttl.Seconds())),
	).Scan(&page.ID, &page.URL, &page.RawHTML, &page.ParsedText, &page.HTTPStatus,
		&page.FetchStatus, &page.FailureCount, &page.FetchedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get cached page: %w", err)
	}
	return &page, nil
}

// UpsertPage stores a fetched page, keyed by URL.
func (db *DB) UpsertPage(ctx context.Context, page *CachedPage) error {
	err := db.pool.QueryRow(ctx,
		`INSERT INTO profile_pages (url, raw_html, parsed_text, http_status, fetch_status, failure_count, fetched_at)
		 VALUES ($1, $2, $3, $4, $5, 0, NOW())
		 ON CONFLICT (url) DO UPDATE SET
		   raw_html = $2, parsed_text = $3, http_status = $4,
		   fetch_status = $5, failure_count = 0, fetched_at = NOW()
		 RETURNING id`,
		page.URL, page.RawHTML, page.ParsedText, page.HTTPStatus, page.FetchStatus,
	).Scan(&page.ID)
	if err != nil {
		return fmt.Errorf("failed to upsert page: %w", err)
	}
	return nil
}

// RecordFailedFetch increments the failure count for a URL.
func (db *DB) RecordFailedFetch(ctx context.Context, urlStr string, httpStatus int, message string) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO profile_pages (url, http_status, fetch_status, failure_count, last_error, fetched_at)
		 VALUES ($1, $2, $3, 1, $4, NOW())
		 ON CONFLICT (url) DO UPDATE SET
		   http_status = $2, fetch_status = $3,
		   failure_count = profile_pages.failure_count + 1,
		   last_error = $4, fetched_at = NOW()`,
		urlStr, httpStatus, FetchStatusFailed, message,
	)
	if err != nil {
		return fmt.Errorf("failed to record fetch failure: %w", err)
	}
	return nil
}

// ShouldSkipURL reports whether a URL has failed enough times to stop
// retrying, with the reason when it should be skipped.
func (db *DB) ShouldSkipURL(ctx context.Context, urlStr string) (bool, string, error) {
	var failureCount int
	var lastError *string
	err := db.pool.QueryRow(ctx,
		`SELECT failure_count, last_error FROM profile_pages WHERE url = $1`,
		urlStr,
	).Scan(&failureCount, &lastError)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, "", nil
		}
		return false, "", fmt.Errorf("failed to check skip status: %w", err)
	}

	if failureCount >= maxFetchFailures {
		reason := fmt.Sprintf("%d consecutive failures", failureCount)
		if lastError != nil {
			reason = fmt.Sprintf("%s, last: %s", reason, *lastError)
		}
		return true, reason, nil
	}
	return false, "", nil
}
