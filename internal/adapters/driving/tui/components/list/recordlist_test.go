package list

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/postliste/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/postliste/internal/core/domain"
)

func samplePage() domain.ResultPage {
	return domain.ResultPage{
		Items: []domain.Record{
			{DocumentID: "3", Date: "24.01.2025", Title: "Svar på søknad", DocumentType: "Utgående brev", Status: "Publisert"},
			{DocumentID: "2", Date: "10.01.2025", Title: "Søknad om tilskudd", DocumentType: "Inngående brev", Status: "Må bestilles"},
			{DocumentID: "1", Date: "bad", Title: "", Status: "Publisert"},
		},
		TotalMatched: 3,
		Page:         1,
		PageSize:     50,
		TotalPages:   1,
	}
}

func TestNewRecordList(t *testing.T) {
	list := NewRecordList(styles.DefaultStyles())

	require.NotNil(t, list)
	assert.Equal(t, 0, list.Selected())
	assert.True(t, list.IsEmpty())
	assert.Equal(t, 80, list.Width())
	assert.Equal(t, 10, list.Height())
}

func TestNewRecordList_NilStyles(t *testing.T) {
	list := NewRecordList(nil)

	require.NotNil(t, list)
	assert.NotNil(t, list.styles)
	assert.Nil(t, list.Init())
}

func TestRecordList_SetPage(t *testing.T) {
	list := NewRecordList(nil)
	list.SetSelected(0)

	list.SetPage(samplePage())

	assert.Equal(t, 3, list.Count())
	assert.False(t, list.IsEmpty())
	assert.Equal(t, 0, list.Selected())
	assert.Equal(t, 3, list.Page().TotalMatched)
}

func TestRecordList_SetPage_ResetsSelection(t *testing.T) {
	list := NewRecordList(nil)
	list.SetPage(samplePage())
	list.SetSelected(2)

	list.SetPage(samplePage())

	assert.Equal(t, 0, list.Selected())
}

func TestRecordList_Navigation(t *testing.T) {
	list := NewRecordList(nil)
	list.SetPage(samplePage())

	list.MoveUp()
	assert.Equal(t, 0, list.Selected())

	list.MoveDown()
	list.MoveDown()
	list.MoveDown()
	assert.Equal(t, 2, list.Selected())

	list.MoveUp()
	assert.Equal(t, 1, list.Selected())
}

func TestRecordList_Update_Keys(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		from int
		want int
	}{
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, 0, 1},
		{"j", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}, 0, 1},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, 2, 1},
		{"k", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}}, 2, 1},
		{"end", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'G'}}, 0, 2},
		{"home", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}}, 2, 0},
		{"other", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'z'}}, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := NewRecordList(nil)
			list.SetPage(samplePage())
			list.SetSelected(tt.from)

			updated, cmd := list.Update(tt.msg)

			assert.Same(t, list, updated)
			assert.Nil(t, cmd)
			assert.Equal(t, tt.want, list.Selected())
		})
	}
}

func TestRecordList_SetSelected_OutOfRange(t *testing.T) {
	list := NewRecordList(nil)
	list.SetPage(samplePage())

	list.SetSelected(10)
	assert.Equal(t, 0, list.Selected())

	list.SetSelected(-1)
	assert.Equal(t, 0, list.Selected())
}

func TestRecordList_SelectedRecord(t *testing.T) {
	list := NewRecordList(nil)

	_, ok := list.SelectedRecord()
	assert.False(t, ok)

	list.SetPage(samplePage())
	list.MoveDown()

	rec, ok := list.SelectedRecord()
	require.True(t, ok)
	assert.Equal(t, domain.DocumentID("2"), rec.DocumentID)
}

func TestRecordList_View_Empty(t *testing.T) {
	list := NewRecordList(nil)

	assert.Contains(t, list.View(), "No records found")
}

func TestRecordList_View_PastLastPage(t *testing.T) {
	list := NewRecordList(nil)
	list.SetPage(domain.ResultPage{TotalMatched: 3, Page: 5, PageSize: 50, TotalPages: 1})

	assert.Contains(t, list.View(), "past the last page")
}

func TestRecordList_View_Rows(t *testing.T) {
	list := NewRecordList(nil)
	list.SetDimensions(120, 20)
	list.SetPage(samplePage())

	view := list.View()

	assert.Contains(t, view, "Records 1-3 of 3")
	assert.Contains(t, view, "2025-01-24")
	assert.Contains(t, view, "Svar på søknad")
	assert.Contains(t, view, "(Untitled)")
	assert.Contains(t, view, domain.UnknownType)
	assert.Contains(t, view, "> ")
}

func TestRecordList_View_Scrolls(t *testing.T) {
	list := NewRecordList(nil)
	list.SetDimensions(120, 3)
	list.SetPage(samplePage())
	list.SetSelected(2)

	view := list.View()

	assert.Contains(t, view, "(Untitled)")
	assert.NotContains(t, view, "Svar på søknad")
}

func TestRecordList_View_HeaderUsesOffset(t *testing.T) {
	page := samplePage()
	page.Page = 2
	page.PageSize = 3
	page.TotalMatched = 6
	page.TotalPages = 2
	list := NewRecordList(nil)
	list.SetPage(page)

	assert.Contains(t, list.View(), "Records 4-6 of 6")
}
