package services

import (
	"bytes"
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/sahilm/fuzzy"
	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/custodia-labs/postliste/internal/core/domain"
	"github.com/custodia-labs/postliste/internal/core/ports/driving"
	"github.com/custodia-labs/postliste/internal/logger"
)

// Ensure QueryEngine implements the interface.
var _ driving.QueryService = (*QueryEngine)(nil)

// maxSuggestions bounds Suggest results.
const maxSuggestions = 5

// QueryEngine filters, sorts and paginates a dataset.
// It holds no state; casers and collators are built per call because
// neither may be shared between goroutines.
type QueryEngine struct {
	lang language.Tag
}

// NewQueryEngine creates a query engine collating titles as Norwegian text.
func NewQueryEngine() *QueryEngine {
	return &QueryEngine{lang: language.MustParse("nb")}
}

// Query returns the requested page of records matching state.
// A page past the end has no items but reports the real totals.
func (e *QueryEngine) Query(ds *domain.Dataset, state domain.QueryState) domain.ResultPage {
	state = state.Normalized()
	matched := e.Filter(ds, state)

	total := len(matched)
	pages := total / state.PageSize
	if total%state.PageSize != 0 {
		pages++
	}

	// Compare page numbers before multiplying so huge pages cannot overflow.
	start := total
	if state.Page <= pages {
		start = (state.Page - 1) * state.PageSize
	}
	end := start + min(state.PageSize, total-start)
	pages = max(pages, 1)
	items := make([]domain.Record, end-start)
	copy(items, matched[start:end])

	return domain.ResultPage{
		Items:        items,
		TotalMatched: total,
		Page:         state.Page,
		PageSize:     state.PageSize,
		TotalPages:   pages,
	}
}

// Filter returns every record matching state's search and filters, sorted
// by state.Sort. Paging fields are ignored.
func (e *QueryEngine) Filter(ds *domain.Dataset, state domain.QueryState) []domain.Record {
	state = state.Normalized()
	records := ds.Records()

	if !state.From.IsZero() && !state.To.IsZero() && state.From.After(state.To) {
		logger.Debug("query: from %s is after to %s, nothing matches",
			domain.FormatISODate(state.From), domain.FormatISODate(state.To))
		return []domain.Record{}
	}

	folder := cases.Fold()
	needle := folder.String(state.SearchText)

	rows := make([]row, 0, len(records))
	for i := range records {
		r := records[i]
		if needle != "" && !strings.Contains(folder.String(r.Title), needle) &&
			!strings.Contains(folder.String(r.Counterparty), needle) {
			continue
		}
		if state.Type != "" && r.DocumentType != state.Type {
			continue
		}
		if state.Status != "" && r.Status != state.Status {
			continue
		}
		date, hasDate := r.ParsedDate()
		if state.HasDateRange() {
			if !hasDate {
				continue
			}
			if !state.From.IsZero() && date.Before(state.From) {
				continue
			}
			if !state.To.IsZero() && date.After(state.To) {
				continue
			}
		}
		rows = append(rows, row{record: r, date: date, hasDate: hasDate})
	}
	logger.Debug("query: %d of %d records match %q", len(rows), len(records), state.Encode())

	e.sortRows(rows, state.Sort)

	out := make([]domain.Record, len(rows))
	for i := range rows {
		out[i] = rows[i].record
	}
	return out
}

// row carries a matched record with its precomputed sort key.
type row struct {
	record  domain.Record
	date    time.Time
	hasDate bool
	key     []byte
}

// sortRows orders rows stably by key. Rows lacking the sort key go last
// whichever the direction.
func (e *QueryEngine) sortRows(rows []row, key domain.SortKey) {
	desc := key.Descending()

	switch key {
	case domain.SortDateAsc, domain.SortDateDesc:
		slices.SortStableFunc(rows, func(a, b row) int {
			if c, done := missingLast(!a.hasDate, !b.hasDate); done {
				return c
			}
			return direction(a.date.Compare(b.date), desc)
		})
		return
	}

	field := func(r domain.Record) string { return r.Title }
	if key == domain.SortTypeAsc || key == domain.SortTypeDesc {
		field = func(r domain.Record) string { return r.DocumentType }
	}

	col := collate.New(e.lang, collate.IgnoreCase)
	var buf collate.Buffer
	for i := range rows {
		if text := strings.TrimSpace(field(rows[i].record)); text != "" {
			rows[i].key = bytes.Clone(col.KeyFromString(&buf, text))
			buf.Reset()
		}
	}

	slices.SortStableFunc(rows, func(a, b row) int {
		if c, done := missingLast(a.key == nil, b.key == nil); done {
			return c
		}
		return direction(bytes.Compare(a.key, b.key), desc)
	})
}

// missingLast orders rows with a missing key after rows that have one.
// done is false when both keys are present.
func missingLast(aMissing, bMissing bool) (c int, done bool) {
	switch {
	case aMissing && bMissing:
		return 0, true
	case aMissing:
		return 1, true
	case bMissing:
		return -1, true
	}
	return 0, false
}

func direction(c int, desc bool) int {
	if desc {
		return -c
	}
	return c
}

// Suggest returns up to five candidates that fuzzily match input, best
// match first. Exact case-insensitive substring matches come before
// fuzzy ones.
func (e *QueryEngine) Suggest(candidates []string, input string) []string {
	input = strings.TrimSpace(input)
	if input == "" || len(candidates) == 0 {
		return nil
	}

	folder := cases.Fold()
	needle := folder.String(input)

	var out []string
	seen := make(map[string]struct{})
	add := func(s string) {
		if _, ok := seen[s]; ok || len(out) >= maxSuggestions {
			return
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}

	var contains []string
	for _, c := range candidates {
		if strings.Contains(folder.String(c), needle) {
			contains = append(contains, c)
		}
	}
	slices.SortStableFunc(contains, func(a, b string) int { return cmp.Compare(len(a), len(b)) })
	for _, c := range contains {
		add(c)
	}

	for _, m := range fuzzy.Find(input, candidates) {
		add(m.Str)
	}
	return out
}
