package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/postliste/internal/core/domain"
)

func TestLinkCmd_QueryOnly(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, _, err := execute(t, "link", "budsjett", "--status", "Publisert")

	require.NoError(t, err)
	link := strings.TrimSpace(out)
	assert.True(t, strings.HasPrefix(link, "?"), link)
	state := domain.DecodeQueryState(link)
	assert.Equal(t, "budsjett", state.SearchText)
	assert.Equal(t, "Publisert", state.Status)
}

func TestLinkCmd_Default(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, _, err := execute(t, "link")

	require.NoError(t, err)
	assert.Equal(t, "?\n", out)
}

func TestLinkCmd_Base(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, _, err := execute(t, "link", "--base", "https://example.org/postliste/", "--sort", "title-asc", "--page", "3")

	require.NoError(t, err)
	link := strings.TrimSpace(out)
	assert.True(t, strings.HasPrefix(link, "https://example.org/postliste/?"), link)

	state, err := domain.ParseShareLink(link)
	require.NoError(t, err)
	assert.Equal(t, domain.SortTitleAsc, state.Sort)
	assert.Equal(t, 3, state.Page)
}

func TestLinkCmd_SettingsBase(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	require.NoError(t, settingsService.Set("share.base_url", "https://example.org/innsyn"))

	out, _, err := execute(t, "link", "avtale")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "https://example.org/innsyn"), out)
}

func TestLinkCmd_RoundTrip(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, _, err := execute(t, "link", "tilskudd", "--type", "Inngående brev", "--from", "2025-01-01")
	require.NoError(t, err)
	link := strings.TrimSpace(out)
	resetFlags(rootCmd)

	again, _, err := execute(t, "link", "--link", link)

	require.NoError(t, err)
	assert.Equal(t, link, strings.TrimSpace(again))
}

func TestShareLink(t *testing.T) {
	state := domain.DefaultQueryState().WithSearch("a b")

	assert.Equal(t, "?q=a+b", shareLink(state, ""))
	assert.Equal(t, "?", shareLink(domain.DefaultQueryState(), ""))
}
