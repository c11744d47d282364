package keymap

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	require.NotNil(t, km)
}

func TestDefaultKeyMap_Bindings(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name    string
		binding key.Binding
		keys    []string
	}{
		{"quit", km.Quit, []string{"q", "ctrl+c"}},
		{"force quit", km.ForceQuit, []string{"ctrl+c"}},
		{"help", km.Help, []string{"?"}},
		{"back", km.Back, []string{"esc"}},
		{"focus", km.Focus, []string{"tab"}},
		{"up", km.Up, []string{"up", "k"}},
		{"down", km.Down, []string{"down", "j"}},
		{"select", km.Select, []string{"enter"}},
		{"next page", km.NextPage, []string{"n", "right"}},
		{"prev page", km.PrevPage, []string{"p", "left"}},
		{"status", km.CycleStatus, []string{"s"}},
		{"type", km.CycleType, []string{"t"}},
		{"sort", km.CycleSort, []string{"o"}},
		{"reset", km.Reset, []string{"x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, k := range tt.keys {
				assert.Contains(t, tt.binding.Keys(), k)
			}
			assert.NotEmpty(t, tt.binding.Help().Desc)
		})
	}
}

func TestKeyMap_ShortHelp(t *testing.T) {
	km := DefaultKeyMap()

	help := km.ShortHelp()

	assert.Len(t, help, 2)
}

func TestKeyMap_ResultsHelp(t *testing.T) {
	km := DefaultKeyMap()

	help := km.ResultsHelp()

	require.NotEmpty(t, help)
	assert.Equal(t, "n", help[0].Help().Key)
}

func TestKeyMap_RecordHelp(t *testing.T) {
	km := DefaultKeyMap()

	assert.Len(t, km.RecordHelp(), 2)
}

func TestKeyMap_FullHelp(t *testing.T) {
	km := DefaultKeyMap()

	help := km.FullHelp()

	assert.Len(t, help, 4)
	for _, group := range help {
		assert.NotEmpty(t, group)
	}
}

func TestMatches(t *testing.T) {
	km := DefaultKeyMap()

	assert.True(t, Matches("q", km.Quit))
	assert.True(t, Matches("ctrl+c", km.Quit))
	assert.True(t, Matches("right", km.NextPage))
	assert.False(t, Matches("x", km.Quit))
	assert.False(t, Matches("", km.Quit))
}
