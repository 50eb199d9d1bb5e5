package main

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/InventarioBot_Go/internal/config"
	"github.com/osse101/InventarioBot_Go/internal/domain"
)

func setupFileBackend(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "inv.json")
	t.Setenv(config.EnvStoreBackend, config.BackendFile)
	t.Setenv(config.EnvDataFile, path)

	raw := `{"bot": {"ana": [{"id": "1", "objeto": "espada", "cantidad": 2}], "luis": [{"id": "2", "objeto": "arco", "cantidad": 1}]}}`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))
	return path
}

func readDocument(t *testing.T, path string) domain.Document {
	t.Helper()
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc domain.Document
	require.NoError(t, json.Unmarshal(raw, &doc))
	return doc
}

func TestRun_RequiresBotAndUserTogether(t *testing.T) {
	assert.ErrorIs(t, run(context.Background(), "bot", ""), errBotUserPair)
	assert.ErrorIs(t, run(context.Background(), "", "ana"), errBotUserPair)
}

func TestRun_ClearsWholeDocument(t *testing.T) {
	path := setupFileBackend(t)

	require.NoError(t, run(context.Background(), "", ""))

	assert.Empty(t, readDocument(t, path))
}

func TestRun_ClearsOneUser(t *testing.T) {
	path := setupFileBackend(t)

	require.NoError(t, run(context.Background(), "bot", "ana"))

	doc := readDocument(t, path)
	assert.Empty(t, doc["bot"]["ana"])
	require.Len(t, doc["bot"]["luis"], 1)
	assert.Equal(t, "arco", doc["bot"]["luis"][0].Name)
}

func TestRun_InvalidBackend(t *testing.T) {
	t.Setenv(config.EnvStoreBackend, "redis")

	assert.Error(t, run(context.Background(), "", ""))
}
