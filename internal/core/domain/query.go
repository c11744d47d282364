package domain

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

// DefaultPageSize is the page size of a new query. MaxPageSize bounds
// page sizes typed by users; decoded states keep any positive size.
const (
	DefaultPageSize = 50
	MaxPageSize     = 1000
)

// Share link parameter names.
const (
	paramSearch   = "q"
	paramType     = "type"
	paramStatus   = "status"
	paramFrom     = "from"
	paramTo       = "to"
	paramSort     = "sort"
	paramPageSize = "perPage"
	paramPage     = "page"
)

// SortKey selects the result ordering.
type SortKey string

// Available sort keys.
const (
	SortDateDesc  SortKey = "date-desc"
	SortDateAsc   SortKey = "date-asc"
	SortTitleAsc  SortKey = "title-asc"
	SortTitleDesc SortKey = "title-desc"
	SortTypeAsc   SortKey = "type-asc"
	SortTypeDesc  SortKey = "type-desc"
)

// DefaultSort is the ordering used when none is requested.
const DefaultSort = SortDateDesc

// SortKeys returns every sort key in display order.
func SortKeys() []SortKey {
	return []SortKey{SortDateDesc, SortDateAsc, SortTitleAsc, SortTitleDesc, SortTypeAsc, SortTypeDesc}
}

// IsValid returns true if the sort key is recognised.
func (k SortKey) IsValid() bool {
	switch k {
	case SortDateDesc, SortDateAsc, SortTitleAsc, SortTitleDesc, SortTypeAsc, SortTypeDesc:
		return true
	default:
		return false
	}
}

// Descending reports whether the key orders from high to low.
func (k SortKey) Descending() bool {
	return strings.HasSuffix(string(k), "-desc")
}

// String returns the string representation.
func (k SortKey) String() string {
	return string(k)
}

// Description returns a human-readable description of the sort key.
func (k SortKey) Description() string {
	switch k {
	case SortDateDesc:
		return "Newest first"
	case SortDateAsc:
		return "Oldest first"
	case SortTitleAsc:
		return "Title A-Z"
	case SortTitleDesc:
		return "Title Z-A"
	case SortTypeAsc:
		return "Type A-Z"
	case SortTypeDesc:
		return "Type Z-A"
	default:
		return UnknownType
	}
}

// QueryState is the complete set of search, filter, sort and paging
// parameters. It is a value: the With methods return modified copies and
// leave the receiver untouched. Every transition except WithPage returns
// to the first page.
type QueryState struct {
	// SearchText is matched case-insensitively against title and counterparty.
	SearchText string

	// Type restricts results to one document type. Empty means all.
	Type string

	// Status restricts results to one status value. Empty means all.
	Status string

	// From and To bound the record date, inclusive. Zero means unbounded.
	From time.Time
	To   time.Time

	// Sort selects the ordering.
	Sort SortKey

	// Page is the 1-based page number.
	Page int

	// PageSize is the number of records per page.
	PageSize int
}

// DefaultQueryState returns the state of a fresh session.
func DefaultQueryState() QueryState {
	return QueryState{
		Sort:     DefaultSort,
		Page:     1,
		PageSize: DefaultPageSize,
	}
}

// Normalized returns a copy with out-of-range values replaced by defaults.
func (s QueryState) Normalized() QueryState {
	s.SearchText = strings.TrimSpace(s.SearchText)
	if !s.Sort.IsValid() {
		s.Sort = DefaultSort
	}
	if s.Page < 1 {
		s.Page = 1
	}
	if s.PageSize < 1 {
		s.PageSize = DefaultPageSize
	}
	if !s.From.IsZero() {
		s.From = truncateDay(s.From)
	}
	if !s.To.IsZero() {
		s.To = truncateDay(s.To)
	}
	return s
}

// HasDateRange reports whether either date bound is set.
func (s QueryState) HasDateRange() bool {
	return !s.From.IsZero() || !s.To.IsZero()
}

// WithSearch returns a copy searching for text.
func (s QueryState) WithSearch(text string) QueryState {
	s.SearchText = strings.TrimSpace(text)
	s.Page = 1
	return s
}

// WithType returns a copy filtered to a document type.
func (s QueryState) WithType(docType string) QueryState {
	s.Type = docType
	s.Page = 1
	return s
}

// WithStatus returns a copy filtered to a status value.
func (s QueryState) WithStatus(status string) QueryState {
	s.Status = status
	s.Page = 1
	return s
}

// WithDateRange returns a copy bounded to [from, to]. Zero values leave
// that side open.
func (s QueryState) WithDateRange(from, to time.Time) QueryState {
	s.From = from
	s.To = to
	s.Page = 1
	return s.Normalized()
}

// WithSort returns a copy with a new ordering.
func (s QueryState) WithSort(key SortKey) QueryState {
	s.Sort = key
	s.Page = 1
	return s.Normalized()
}

// WithPageSize returns a copy with a new page size.
func (s QueryState) WithPageSize(size int) QueryState {
	s.PageSize = size
	s.Page = 1
	return s.Normalized()
}

// WithPage returns a copy showing another page of the same result.
func (s QueryState) WithPage(page int) QueryState {
	s.Page = page
	return s.Normalized()
}

// Values returns the non-default fields as share link parameters.
func (s QueryState) Values() url.Values {
	s = s.Normalized()
	v := url.Values{}
	if s.SearchText != "" {
		v.Set(paramSearch, s.SearchText)
	}
	if s.Type != "" {
		v.Set(paramType, s.Type)
	}
	if s.Status != "" {
		v.Set(paramStatus, s.Status)
	}
	if !s.From.IsZero() {
		v.Set(paramFrom, FormatISODate(s.From))
	}
	if !s.To.IsZero() {
		v.Set(paramTo, FormatISODate(s.To))
	}
	if s.Sort != DefaultSort {
		v.Set(paramSort, s.Sort.String())
	}
	if s.PageSize != DefaultPageSize {
		v.Set(paramPageSize, strconv.Itoa(s.PageSize))
	}
	if s.Page != 1 {
		v.Set(paramPage, strconv.Itoa(s.Page))
	}
	return v
}

// Encode returns the state as a URL query string without the leading "?".
// Default fields are omitted; the default state encodes as "".
func (s QueryState) Encode() string {
	return s.Values().Encode()
}

// ShareLink returns base with the encoded state appended.
func (s QueryState) ShareLink(base string) string {
	q := s.Encode()
	if q == "" {
		return base
	}
	if i := strings.IndexByte(base, '?'); i >= 0 {
		base = base[:i]
	}
	return base + "?" + q
}

// DecodeQueryState parses a URL query string. Missing or invalid
// parameters take their default values; it never fails.
func DecodeQueryState(raw string) QueryState {
	values, err := url.ParseQuery(strings.TrimPrefix(raw, "?"))
	if err != nil && values == nil {
		return DefaultQueryState()
	}
	return QueryStateFromValues(values)
}

// QueryStateFromValues builds a state from already parsed parameters.
func QueryStateFromValues(v url.Values) QueryState {
	s := DefaultQueryState()
	s.SearchText = v.Get(paramSearch)
	s.Type = v.Get(paramType)
	s.Status = v.Get(paramStatus)
	if t, ok := ParseISODate(v.Get(paramFrom)); ok {
		s.From = t
	}
	if t, ok := ParseISODate(v.Get(paramTo)); ok {
		s.To = t
	}
	if k, ok := parseSortParam(v.Get(paramSort)); ok {
		s.Sort = k
	}
	if n, err := strconv.Atoi(v.Get(paramPageSize)); err == nil {
		s.PageSize = n
	}
	if n, err := strconv.Atoi(v.Get(paramPage)); err == nil {
		s.Page = n
	}
	return s.Normalized()
}

// legacySorts maps the sort values of links made by the published web page.
var legacySorts = map[string]SortKey{
	"dato-desc":         SortDateDesc,
	"dato-asc":          SortDateAsc,
	"tittel-asc":        SortTitleAsc,
	"tittel-desc":       SortTitleDesc,
	"dokumenttype-asc":  SortTypeAsc,
	"dokumenttype-desc": SortTypeDesc,
}

func parseSortParam(raw string) (SortKey, bool) {
	if k := SortKey(raw); k.IsValid() {
		return k, true
	}
	k, ok := legacySorts[raw]
	return k, ok
}

// ParseShareLink decodes the query part of a share link. A bare query
// string is accepted too.
func ParseShareLink(link string) (QueryState, error) {
	link = strings.TrimSpace(link)
	if !strings.Contains(link, "://") && !strings.HasPrefix(link, "/") {
		return DecodeQueryState(link), nil
	}
	u, err := url.Parse(link)
	if err != nil {
		return QueryState{}, ErrInvalidInput
	}
	return QueryStateFromValues(u.Query()), nil
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
