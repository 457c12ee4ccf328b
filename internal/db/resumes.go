package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/pedrohmarconato/curriculo-ingest/internal/types"
)

// GetFinalResumeByRunID loads the final resume artifact for a run, nil
// when the run has none.
func (db *DB) GetFinalResumeByRunID(ctx context.Context, runID uuid.UUID) (*types.ResumeData, error) {
	return db.getResumeArtifact(ctx, runID, StepFinal)
}

// GetStructuredResumeByRunID loads the pre-enrichment structured resume
// for a run, nil when absent.
func (db *DB) GetStructuredResumeByRunID(ctx context.Context, runID uuid.UUID) (*types.ResumeData, error) {
	return db.getResumeArtifact(ctx, runID, StepStructured)
}

func (db *DB) getResumeArtifact(ctx context.Context, runID uuid.UUID, step string) (*types.ResumeData, error) {
	content, err := db.GetArtifact(ctx, runID, step)
	if err != nil {
		return nil, err
	}
	if content == nil {
		return nil, nil
	}

	var resume types.ResumeData
	if err := json.Unmarshal(content, &resume); err != nil {
		return nil, fmt.Errorf("failed to unmarshal resume artifact: %w", err)
	}
	return &resume, nil
}
