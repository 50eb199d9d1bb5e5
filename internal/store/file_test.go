package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/InventarioBot_Go/internal/domain"
	"github.com/osse101/InventarioBot_Go/internal/metrics"
)

func sampleDocument() domain.Document {
	return domain.Document{
		"bot-1": domain.BotInventory{
			"user-1": domain.ItemList{
				{ID: "a", Name: "espada", Description: "arma filosa", Quantity: 5, Rarity: "común", Price: 1250, Emoji: "🗡️", Category: "armas"},
				{ID: "b", Name: "poción", Description: "cura", Quantity: 1, Rarity: "rara", Emoji: "🧪", Category: "consumibles"},
			},
		},
	}
}

func TestFileStore_LoadMissingFile(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "inv.json"))

	doc, state, err := s.Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, LoadStateFresh, state)
	assert.Empty(t, doc)
	assert.NotNil(t, doc)
}

func TestFileStore_SaveCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "data", "inv.json")
	s := NewFileStore(path)

	require.NoError(t, s.Save(context.Background(), sampleDocument()))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestFileStore_RoundTrip(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "inv.json"))
	ctx := context.Background()

	saved := sampleDocument()
	require.NoError(t, s.Save(ctx, saved))

	loaded, state, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, LoadStateLoaded, state)
	assert.Equal(t, saved, loaded)
}

func TestFileStore_SaveWritesReadableUTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inv.json")
	s := NewFileStore(path)
	require.NoError(t, s.Save(context.Background(), sampleDocument()))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Contains(t, string(raw), "poción", "accents are written verbatim")
	assert.Contains(t, string(raw), "🗡️", "emoji are written verbatim")
	assert.Contains(t, string(raw), `"precio": 12.5`)
	assert.Contains(t, string(raw), "\n  ", "document is indented")
}

func TestFileStore_SaveNormalizesInPlace(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "inv.json"))
	doc := domain.Document{"bot": domain.BotInventory{"user": domain.ItemList{{Name: "x", Quantity: -3}}}}

	require.NoError(t, s.Save(context.Background(), doc))

	assert.Equal(t, domain.Quantity(domain.DefaultQuantity), doc["bot"]["user"][0].Quantity)
}

func TestFileStore_LoadDefaultsMissingQuantity(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inv.json")
	raw := `{"bot":{"u":[{"id":"1","objeto":"espada","description":"x"},{"id":"2","objeto":"arco","cantidad":-3}]}}`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	doc, state, err := NewFileStore(path).Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, LoadStateLoaded, state)
	require.Len(t, doc["bot"]["u"], 2)
	for _, item := range doc["bot"]["u"] {
		assert.Equal(t, domain.Quantity(1), item.Quantity, item.Name)
	}
}

func TestFileStore_LoadNormalizesDriftedQuantities(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inv.json")
	raw := `{"bot": {"user": [
		{"id": "1", "objeto": "espada", "cantidad": "3"},
		{"id": "2", "objeto": "escudo", "cantidad": 2e1},
		{"id": "3", "objeto": "arco", "cantidad": "muchos"},
		{"id": "4", "objeto": "flecha", "cantidad": 4.7}
	]}}`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	doc, state, err := NewFileStore(path).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, LoadStateLoaded, state)

	var got []domain.Quantity
	for _, item := range doc["bot"]["user"] {
		got = append(got, item.Quantity)
	}
	assert.Equal(t, []domain.Quantity{3, 20, 1, 4}, got)
}

func TestFileStore_LoadCorruptContent(t *testing.T) {
	cases := map[string]string{
		"truncated json": `{"bot": {"user": [`,
		"empty file":     ``,
		"array root":     `[1, 2, 3]`,
		"null root":      `null`,
		"wrong shape":    `{"bot": 42}`,
	}

	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "inv.json")
			require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

			doc, state, err := NewFileStore(path).Load(context.Background())

			require.NoError(t, err, "corruption is recovered, not surfaced")
			assert.Equal(t, LoadStateRecovered, state)
			assert.Empty(t, doc)
		})
	}
}

func TestFileStore_LoadUnreadablePathRecovers(t *testing.T) {
	// a directory in place of the file cannot be read as a document
	path := t.TempDir()
	counter := metrics.DocumentRecoveries.WithLabelValues(RecoveryReasonUnreadable)
	before := testutil.ToFloat64(counter)

	doc, state, err := NewFileStore(path).Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, LoadStateRecovered, state)
	assert.Empty(t, doc)
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestFileStore_SaveReplacesWholeDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inv.json")
	s := NewFileStore(path)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, sampleDocument()))
	require.NoError(t, s.Save(ctx, domain.Document{"other": domain.BotInventory{}}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var onDisk map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &onDisk))
	assert.Len(t, onDisk, 1)
	assert.Contains(t, onDisk, "other")

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files are left behind")
}

func TestFileStore_Ping(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	assert.NoError(t, NewFileStore(filepath.Join(dir, "inv.json")).Ping(ctx))
	assert.NoError(t, NewFileStore(filepath.Join(dir, "missing", "inv.json")).Ping(ctx))

	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))
	assert.Error(t, NewFileStore(filepath.Join(blocker, "inv.json")).Ping(ctx))
}

func TestLoadState_String(t *testing.T) {
	assert.Equal(t, "fresh", LoadStateFresh.String())
	assert.Equal(t, "loaded", LoadStateLoaded.String())
	assert.Equal(t, "recovered", LoadStateRecovered.String())
	assert.Equal(t, "LoadState(9)", LoadState(9).String())
}
