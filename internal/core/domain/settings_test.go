package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultAppSettings(t *testing.T) {
	s := DefaultAppSettings()

	assert.Equal(t, "data", s.Data.Source)
	assert.Equal(t, "postliste_index.json", s.Data.IndexFile)
	assert.Equal(t, "postliste.json", s.Data.RecordsFile)
	assert.Equal(t, "changes.json", s.Data.ChangesFile)
	assert.Equal(t, 30, s.HTTP.TimeoutSeconds)
	assert.InDelta(t, 10.0, s.HTTP.RequestsPerSecond, 0.001)
	assert.Equal(t, DefaultPageSize, s.Query.PageSize)
	assert.Equal(t, DefaultSort, s.Query.Sort)
	assert.Empty(t, s.Share.BaseURL)
}

func TestDataSettings_IsRemote(t *testing.T) {
	tests := []struct {
		source string
		want   bool
	}{
		{"https://example.org/postliste/data", true},
		{"http://localhost:8080", true},
		{"data", false},
		{"/var/lib/postliste", false},
		{"httpdata", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			assert.Equal(t, tt.want, DataSettings{Source: tt.source}.IsRemote())
		})
	}
}

func TestAppSettings_BaseQuery(t *testing.T) {
	s := DefaultAppSettings()
	s.Query.PageSize = 25
	s.Query.Sort = SortTitleAsc

	q := s.BaseQuery()

	assert.Equal(t, 25, q.PageSize)
	assert.Equal(t, SortTitleAsc, q.Sort)
	assert.Equal(t, 1, q.Page)
	assert.Empty(t, q.SearchText)
}

func TestAppSettings_BaseQuery_NormalizesBadValues(t *testing.T) {
	s := DefaultAppSettings()
	s.Query.PageSize = 0
	s.Query.Sort = SortKey("random")

	q := s.BaseQuery()

	assert.Equal(t, DefaultQueryState(), q)
}
