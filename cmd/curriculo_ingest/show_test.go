package main

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowCommand_Registered(t *testing.T) {
	found := false
	for _, c := range rootCmd.Commands() {
		if c.Use == "show" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestRunShowCmd_RequiresRunID(t *testing.T) {
	showRunID = ""

	err := runShowCmd(showCommand, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--run-id is required")
}

func TestRunShowCmd_InvalidRunID(t *testing.T) {
	showRunID = "not-a-uuid"
	t.Cleanup(func() { showRunID = "" })

	err := runShowCmd(showCommand, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid run-id format")
}

func TestRunShowCmd_RequiresDatabaseURL(t *testing.T) {
	showRunID = uuid.NewString()
	showDatabaseURL = ""
	t.Cleanup(func() { showRunID = "" })
	t.Setenv("DATABASE_URL", "")

	err := runShowCmd(showCommand, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--db-url")
}
