package cli

import (
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/postliste/internal/core/domain"
)

func TestShowCmd_RequiresOneArg(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, _, err := execute(t, "show")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestShowCmd_Golden(t *testing.T) {
	tests := []struct {
		name string
		id   string
	}{
		{"show_published", "2025003"},
		{"show_not_published", "2025001"},
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleanup := setupTestServices()
			defer cleanup()

			out, _, err := execute(t, "show", tt.id)

			require.NoError(t, err)
			g.Assert(t, tt.name, []byte(out))
		})
	}
}

func TestShowCmd_NotFound(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, _, err := execute(t, "show", "9999")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestShowCmd_BlankID(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, _, err := execute(t, "show", "  ")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestShowCmd_JSON(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, _, err := execute(t, "-f", "json", "show", "2025003")

	require.NoError(t, err)
	var rec domain.Record
	require.NoError(t, json.Unmarshal([]byte(out), &rec))
	assert.Equal(t, "Kulturrådet", rec.Counterparty)
	require.Len(t, rec.Files, 1)
}

func TestWriteRecord_Untitled(t *testing.T) {
	out := captureText(t, func(w *textBuffer) error {
		return writeRecord(w, domain.Record{DocumentID: "1"})
	})

	assert.Contains(t, out, "(untitled)\n==========\n")
	assert.Contains(t, out, "Type:         "+domain.UnknownType)
	assert.NotContains(t, out, "not published")
}
