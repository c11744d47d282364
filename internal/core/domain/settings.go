package domain

import "strings"

// DataSettings locates the published data files.
type DataSettings struct {
	// Source is a local directory or an http(s) base URL.
	Source string `validate:"required"`

	// IndexFile names the shard index, relative to Source.
	IndexFile string `validate:"required"`

	// RecordsFile names the unsharded record list, used when no index exists.
	RecordsFile string `validate:"required"`

	// ChangesFile names the change log.
	ChangesFile string `validate:"required"`
}

// IsRemote reports whether Source is a web location.
func (d DataSettings) IsRemote() bool {
	return strings.HasPrefix(d.Source, "http://") || strings.HasPrefix(d.Source, "https://")
}

// HTTPSettings tunes fetching from a remote Source.
type HTTPSettings struct {
	// TimeoutSeconds bounds each file request.
	TimeoutSeconds int `validate:"min=1,max=600"`

	// RequestsPerSecond throttles concurrent shard requests.
	RequestsPerSecond float64 `validate:"gt=0"`
}

// QuerySettings holds defaults for new queries.
type QuerySettings struct {
	// PageSize is the default number of records per page.
	PageSize int `validate:"min=1,max=1000"`

	// Sort is the default ordering.
	Sort SortKey `validate:"required"`
}

// ShareSettings configures share links.
type ShareSettings struct {
	// BaseURL is the published browser page that share links point to.
	BaseURL string `validate:"omitempty,url"`
}

// AppSettings holds all application settings.
type AppSettings struct {
	Data  DataSettings
	HTTP  HTTPSettings
	Query QuerySettings
	Share ShareSettings
}

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Data: DataSettings{
			Source:      "data",
			IndexFile:   "postliste_index.json",
			RecordsFile: "postliste.json",
			ChangesFile: "changes.json",
		},
		HTTP: HTTPSettings{
			TimeoutSeconds:    30,
			RequestsPerSecond: 10,
		},
		Query: QuerySettings{
			PageSize: DefaultPageSize,
			Sort:     DefaultSort,
		},
	}
}

// BaseQuery returns the starting query state for these settings.
func (s AppSettings) BaseQuery() QueryState {
	q := DefaultQueryState()
	q.PageSize = s.Query.PageSize
	q.Sort = s.Query.Sort
	return q.Normalized()
}
