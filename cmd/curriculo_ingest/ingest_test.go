package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pedrohmarconato/curriculo-ingest/internal/pipeline"
	"github.com/pedrohmarconato/curriculo-ingest/internal/types"
)

func TestWriteOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.json")
	result := &pipeline.Result{
		Resume:     types.DefaultResume("Maria Oliveira", "maria@example.com"),
		Provenance: types.Provenance{Source: types.SourceDefault},
		Warnings:   []string{"aviso"},
	}

	require.NoError(t, writeOutput(path, result))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var out ingestOutputFile
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, "Maria Oliveira", out.Resume.PersonalInfo.Name)
	assert.Equal(t, types.SourceDefault, out.Provenance.Source)
	assert.Equal(t, []string{"aviso"}, out.Warnings)
}

func TestWriteOutput_BadPath(t *testing.T) {
	result := &pipeline.Result{
		Resume:     types.DefaultResume("", ""),
		Provenance: types.Provenance{Source: types.SourceDefault},
	}

	err := writeOutput(filepath.Join(t.TempDir(), "missing", "resume.json"), result)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write output file")
}

func TestIngestCommand_Registered(t *testing.T) {
	found := false
	for _, c := range rootCmd.Commands() {
		if c.Use == "ingest" {
			found = true
		}
	}
	assert.True(t, found)
}
